package metrics_test

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	experiment_metrics "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/metrics"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/commandline"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/fixture"
	"github.com/opst/trackboard/pkg/api/types/lists"
	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/rest/mock"
	"github.com/opst/trackboard/pkg/utils/logger"
	"github.com/opst/trackboard/pkg/utils/rfctime"
	"github.com/stretchr/testify/require"
	"github.com/youta-t/flarc"
)

func TestMetricsCommand(t *testing.T) {
	at := func(min int) rfctime.RFC3339 {
		return rfctime.RFC3339(time.Date(2018, 1, 9, 12, min, 0, 0, time.UTC))
	}
	reported := []metrics.Metric{
		{Id: 1, CreatedAt: at(31), Values: map[string]float64{"loss": 0.5, "accuracy": 0.7}},
		{Id: 2, CreatedAt: at(32), Values: map[string]float64{"loss": 0.25}},
	}

	run := func(t *testing.T, flags experiment_metrics.Flags, name string) (*fixture.Fixture, string, error) {
		f := fixture.New(t, "/app/alice/mnist/experiments/4")
		f.Client.Impl.Get = func(_ context.Context, path string, _ url.Values, v any) error {
			require.Equal(t, "/alice/mnist/experiments/4/metrics", path)
			return mock.Respond(v, lists.Page[metrics.Metric]{Count: 2, Results: reported})
		}
		stdout := new(strings.Builder)
		err := experiment_metrics.Task(
			context.Background(), logger.Null(), *env.New(), f.Runner,
			commandline.MockCommandline[experiment_metrics.Flags]{
				Stdout_: stdout, Stderr_: io.Discard,
				Flags_: flags,
				Args_:  map[string][]string{experiment_metrics.ARG_EXPERIMENT: {name}},
			},
			[]any{},
		)
		return f, stdout.String(), err
	}

	t.Run("it prints readings, without moving", func(t *testing.T) {
		f, stdout, err := run(t, experiment_metrics.Flags{Limit: 100}, "alice.mnist.4")
		require.NoError(t, err)
		require.Equal(t, "limit=100", f.Client.Calls.Get[0].Query.Encode())
		require.Equal(t, []string{"/app/alice/mnist/experiments/4"}, f.History.Entries())

		var actual common.Listing[metrics.Metric]
		require.NoError(t, json.Unmarshal([]byte(stdout), &actual))
		require.Equal(t, 2, actual.Count)
		require.Len(t, actual.Items, 2)
		require.True(t, actual.Items[0].Equal(reported[0]))
		require.True(t, actual.Items[1].Equal(reported[1]))
	})

	t.Run("it prints series of readings", func(t *testing.T) {
		_, stdout, err := run(t, experiment_metrics.Flags{Series: true}, "alice.mnist.4")
		require.NoError(t, err)

		var actual []metrics.Series
		require.NoError(t, json.Unmarshal([]byte(stdout), &actual))
		require.Equal(t, []metrics.Series{
			{Key: "accuracy", Values: []metrics.Point{{Index: "09-01 12:31", Value: 0.7}}},
			{Key: "loss", Values: []metrics.Point{
				{Index: "09-01 12:31", Value: 0.5},
				{Index: "09-01 12:32", Value: 0.25},
			}},
		}, actual)
	})

	t.Run("it is usage error for malformed names", func(t *testing.T) {
		f := fixture.New(t, "/app")
		err := experiment_metrics.Task(
			context.Background(), logger.Null(), *env.New(), f.Runner,
			commandline.MockCommandline[experiment_metrics.Flags]{
				Stdout_: io.Discard, Stderr_: io.Discard,
				Args_: map[string][]string{experiment_metrics.ARG_EXPERIMENT: {"alice.mnist"}},
			},
			[]any{},
		)
		require.ErrorIs(t, err, flarc.ErrUsage)
		require.Empty(t, f.Client.Calls.Get)
	})
}
