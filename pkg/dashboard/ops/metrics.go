package ops

import (
	"context"

	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/names"
)

// FetchMetrics fetches metrics reported by the experiment, like "alice.mnist.12".
func FetchMetrics(experimentName string, filter MetricFilter) Operation {
	return New("fetch metrics of "+experimentName, func(ctx context.Context, rt Runtime) error {
		e, err := names.ParseExperiment(experimentName)
		if err != nil {
			return err
		}
		return fetchList(
			ctx, rt, e.Url(false)+"/metrics", filter.Values(), false,
			action.RequestMetrics(),
			func(ms []metrics.Metric, count int) action.Action { return action.ReceiveMetrics(ms, count) },
		)
	})
}
