package find

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/names"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/view"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Query  string `flag:"query" alias:"q" help:"search expression, like \"status:running\"."`
	Sort   string `flag:"sort" help:"ordering, like \"-created_at\"."`
	Offset int    `flag:"offset" help:"skip this many Jobs."`
	Limit  int    `flag:"limit" help:"find at most this many Jobs. 0 means the default of the backend."`
}

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Jobs of an Experiment.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_EXPERIMENT, Required: true,
				Help: "unique name of the Experiment, like \"alice.mnist.4\".",
			},
		},
		common.NewTask(Task),
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
	x, err := names.ParseExperiment(name)
	if err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}

	flags := cl.Flags()
	filter := ops.ListFilter{
		Query: flags.Query, Sort: flags.Sort,
		Offset: flags.Offset, Limit: flags.Limit,
	}
	fetch := ops.FetchExperimentJobs(x.User, x.Name, x.Id, filter)

	found, err := common.ShowList(ctx, runner, view.ExperimentJobList(fetch, nil))
	if err != nil {
		return fmt.Errorf("%w: Experiment %s", err, name)
	}
	return common.WriteJSON(cl.Stdout(), found)
}
