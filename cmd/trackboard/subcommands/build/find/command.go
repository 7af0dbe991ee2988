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
	Status     string `flag:"status" alias:"s" help:"Find Builds with this status, like \"running\"."`
	Query      string `flag:"query" alias:"q" help:"search expression, like \"status:running\"."`
	Sort       string `flag:"sort" help:"ordering, like \"-created_at\"."`
	Offset     int    `flag:"offset" help:"skip this many Builds."`
	Limit      int    `flag:"limit" help:"find at most this many Builds. 0 means the default of the backend."`
	Bookmarked bool   `flag:"bookmarked" alias:"b" help:"Find Builds bookmarked by the user in trackboardenv, instead of Builds in the project."`
}

const ARG_PROJECT = "PROJECT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Builds of a project.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PROJECT, Required: false,
				Help: "unique name of the project, like \"alice.mnist\". Default is the project in trackboardenv.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Find Builds of a project, and print them as JSON.

With --bookmarked, it finds Builds bookmarked by the user in trackboardenv.
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
	filter := ops.BuildFilter{
		ListFilter: ops.ListFilter{
			Query: flags.Query, Sort: flags.Sort,
			Offset: flags.Offset, Limit: flags.Limit,
		},
		Status: flags.Status,
	}

	var fetch ops.Operation
	if flags.Bookmarked {
		if e.User == "" {
			return fmt.Errorf("%w: --bookmarked needs user in trackboardenv", flarc.ErrUsage)
		}
		fetch = ops.FetchBookmarkedBuilds(e.User, filter)
	} else {
		project, err := common.ProjectOf(cl.Args(), ARG_PROJECT, e)
		if err != nil {
			return err
		}
		fetch = ops.FetchBuilds(project, filter)
	}

	found, err := common.ShowList(ctx, runner, view.BuildList(fetch, nil))
	if err != nil {
		return err
	}
	return common.WriteJSON(cl.Stdout(), found)
}
