package metrics

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/dashboard/names"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/view"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Offset int  `flag:"offset" help:"skip this many readings."`
	Limit  int  `flag:"limit" help:"fetch at most this many readings. 0 means the default of the backend."`
	Series bool `flag:"series" help:"print readings grouped by metric names, for charts."`
}

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show metrics reported by an Experiment.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_EXPERIMENT, Required: true,
				Help: "unique name of the Experiment, like \"alice.mnist.4\".",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Show metrics reported by an Experiment, as JSON.

With --series, readings are grouped by metric names. Each series is a list of
points of {"index": "DD-MM hh:mm", "value": VALUE}.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	e env.TrackboardEnv,
	runner *ops.Runner,
	cl flarc.Commandline[Flags],
	params []any,
) error {
	name := cl.Args()[ARG_EXPERIMENT][0]
	if _, err := names.ParseExperiment(name); err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}

	flags := cl.Flags()
	filter := ops.MetricFilter{Offset: flags.Offset, Limit: flags.Limit}

	found, err := common.ShowList(ctx, runner, view.Metrics(name, filter, nil))
	if err != nil {
		return fmt.Errorf("%w: Experiment %s", err, name)
	}
	if flags.Series {
		return common.WriteJSON(cl.Stdout(), metrics.SeriesOf(found.Items))
	}
	return common.WriteJSON(cl.Stdout(), found)
}
