package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/dashboard"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/commandline"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/fixture"
	"github.com/opst/trackboard/pkg/api/types/activitylogs"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/api/types/experiments"
	"github.com/opst/trackboard/pkg/api/types/lists"
	"github.com/opst/trackboard/pkg/rest/mock"
	"github.com/opst/trackboard/pkg/utils/logger"
	"github.com/stretchr/testify/require"
)

func TestDashboardCommand(t *testing.T) {
	respond := func(fail string) func(context.Context, string, url.Values, any) error {
		return func(_ context.Context, path string, _ url.Values, v any) error {
			if path == fail {
				return errors.New("fake error")
			}
			switch path {
			case "/alice/mnist/builds":
				return mock.Respond(v, lists.Page[builds.Build]{Count: 10, Results: []builds.Build{
					{Id: 1, UniqueName: "alice.mnist.builds.1"},
				}})
			case "/alice/mnist/experiments":
				return mock.Respond(v, lists.Page[experiments.Experiment]{Count: 20, Results: []experiments.Experiment{
					{Id: 2, UniqueName: "alice.mnist.2"}, {Id: 1, UniqueName: "alice.mnist.1"},
				}})
			case "/activitylogs/alice/mnist":
				return mock.Respond(v, lists.Page[activitylogs.ActivityLog]{Count: 1, Results: []activitylogs.ActivityLog{
					{Id: 9, EventAction: "created", EventSubject: "experiment", Actor: "alice", ObjectName: "alice.mnist.2"},
				}})
			}
			t.Errorf("unexpected path: %s", path)
			return errors.New("unexpected")
		}
	}

	t.Run("it loads lists of the project at once", func(t *testing.T) {
		f := fixture.New(t, "/app/alice/mnist/")
		f.Client.Impl.Get = respond("")

		stdout := new(strings.Builder)
		err := dashboard.Task(
			context.Background(), logger.Null(), env.TrackboardEnv{User: "alice", Project: "mnist"}, f.Runner,
			commandline.MockCommandline[dashboard.Flags]{
				Stdout_: stdout, Stderr_: io.Discard,
				Flags_: dashboard.Flags{Limit: 5},
				Args_:  map[string][]string{},
			},
			[]any{},
		)
		require.NoError(t, err)
		require.Len(t, f.Client.Calls.Get, 3)
		for _, call := range f.Client.Calls.Get {
			require.Equal(t, "limit=5", call.Query.Encode())
		}

		var actual dashboard.Overview
		require.NoError(t, json.Unmarshal([]byte(stdout.String()), &actual))
		require.Equal(t, "alice.mnist", actual.Project)
		require.Equal(t, "/app/alice/mnist/?limit=5", actual.Location)
		require.Equal(t, 10, actual.Builds.Count)
		require.Len(t, actual.Builds.Items, 1)
		require.Equal(t, 20, actual.Experiments.Count)
		require.Equal(t, "alice.mnist.2", actual.Experiments.Items[0].UniqueName)
		require.Equal(t, "alice.mnist.1", actual.Experiments.Items[1].UniqueName)
		require.Equal(t, 1, actual.ActivityLogs.Count)
		require.Equal(t, 9, actual.ActivityLogs.Items[0].Id)
	})

	t.Run("it fails when any of lists failed", func(t *testing.T) {
		f := fixture.New(t, "/app/alice/mnist/")
		f.Client.Impl.Get = respond("/alice/mnist/experiments")

		stdout := new(strings.Builder)
		err := dashboard.Task(
			context.Background(), logger.Null(), *env.New(), f.Runner,
			commandline.MockCommandline[dashboard.Flags]{
				Stdout_: stdout, Stderr_: io.Discard,
				Args_: map[string][]string{dashboard.ARG_PROJECT: {"alice.mnist"}},
			},
			[]any{},
		)
		require.Error(t, err)
		require.Empty(t, stdout.String())
	})
}
