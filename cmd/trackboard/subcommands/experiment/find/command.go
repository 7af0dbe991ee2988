package find

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/view"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Status      string `flag:"status" alias:"s" help:"Find Experiments with this status, like \"running\"."`
	Group       string `flag:"group" alias:"g" help:"Find Experiments in this experiment group."`
	Independent bool   `flag:"independent" help:"Find Experiments not in any experiment groups."`
	Query       string `flag:"query" alias:"q" help:"search expression, like \"metric.loss:<0.2\"."`
	Sort        string `flag:"sort" help:"ordering, like \"-created_at\"."`
	Offset      int    `flag:"offset" help:"skip this many Experiments."`
	Limit       int    `flag:"limit" help:"find at most this many Experiments. 0 means the default of the backend."`
	Bookmarked  bool   `flag:"bookmarked" alias:"b" help:"Find Experiments bookmarked by the user in trackboardenv, instead of ones in the project."`
}

const ARG_PROJECT = "PROJECT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Experiments of a project.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PROJECT, Required: false,
				Help: "unique name of the project, like \"alice.mnist\". Default is the project in trackboardenv.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Find Experiments of a project, and print them as JSON.

--group and --independent are exclusive.
With --bookmarked, it finds Experiments bookmarked by the user in trackboardenv.
PROJECT is ignored then.
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
	flags := cl.Flags()
	if flags.Group != "" && flags.Independent {
		return fmt.Errorf("%w: --group and --independent are exclusive", flarc.ErrUsage)
	}
	filter := ops.ExperimentFilter{
		ListFilter: ops.ListFilter{
			Query: flags.Query, Sort: flags.Sort,
			Offset: flags.Offset, Limit: flags.Limit,
		},
		Status:      flags.Status,
		Group:       flags.Group,
		Independent: flags.Independent,
	}

	var fetch ops.Operation
	if flags.Bookmarked {
		if e.User == "" {
			return fmt.Errorf("%w: --bookmarked needs user in trackboardenv", flarc.ErrUsage)
		}
		fetch = ops.FetchBookmarkedExperiments(e.User, filter)
	} else {
		project, err := common.ProjectOf(cl.Args(), ARG_PROJECT, e)
		if err != nil {
			return err
		}
		fetch = ops.FetchExperiments(project, filter)
	}

	found, err := common.ShowList(ctx, runner, view.ExperimentList(fetch, nil))
	if err != nil {
		return err
	}
	return common.WriteJSON(cl.Stdout(), found)
}
