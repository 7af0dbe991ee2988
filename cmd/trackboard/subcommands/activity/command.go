package activity

import (
	"context"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/view"
	"github.com/youta-t/flarc"
)

type Flags struct {
	All    bool `flag:"all" alias:"a" help:"show activities of all projects."`
	Offset int  `flag:"offset" help:"skip this many activities."`
	Limit  int  `flag:"limit" help:"show at most this many activities. 0 means the default of the backend."`
}

const ARG_PROJECT = "PROJECT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show recent activities.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PROJECT, Required: false,
				Help: "unique name of the project, like \"alice.mnist\". Default is the project in trackboardenv.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Show recent activities in a project, like creating Experiments or stopping Builds.

With --all, or when no projects are known, it shows activities of all projects.
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
	filter := ops.ActivityLogFilter{Offset: flags.Offset, Limit: flags.Limit}

	fetch := ops.FetchActivityLogs(filter)
	if !flags.All {
		if project, err := common.ProjectOf(cl.Args(), ARG_PROJECT, e); err == nil {
			fetch = ops.FetchProjectActivityLogs(project, filter)
		}
	}

	found, err := common.ShowList(ctx, runner, view.ActivityLogList(fetch, nil))
	if err != nil {
		return err
	}
	return common.WriteJSON(cl.Stdout(), found)
}
