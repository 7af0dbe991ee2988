package dashboard

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/api/types/activitylogs"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/api/types/experiments"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Limit int `flag:"limit" help:"show at most this many items for each list. 0 means the default of the backend."`
}

const ARG_PROJECT = "PROJECT"

// Overview is what the project page shows.
type Overview struct {
	Project      string                                   `json:"project"`
	Location     string                                   `json:"location"`
	Builds       common.Listing[builds.Build]             `json:"builds"`
	Experiments  common.Listing[experiments.Experiment]   `json:"experiments"`
	ActivityLogs common.Listing[activitylogs.ActivityLog] `json:"activity_logs"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show an overview of a project.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PROJECT, Required: false,
				Help: "unique name of the project, like \"alice.mnist\". Default is the project in trackboardenv.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Show Builds, Experiments and activities of a project at once.

They are fetched concurrently. It fails when any of them failed.
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
	project, err := common.ProjectOf(cl.Args(), ARG_PROJECT, e)
	if err != nil {
		return err
	}
	limit := cl.Flags().Limit

	load := ops.All(
		"load overview of "+project,
		ops.FetchBuilds(project, ops.BuildFilter{ListFilter: ops.ListFilter{Limit: limit}}),
		ops.FetchExperiments(project, ops.ExperimentFilter{ListFilter: ops.ListFilter{Limit: limit}}),
		ops.FetchProjectActivityLogs(project, ops.ActivityLogFilter{Limit: limit}),
	)
	if err := runner.Run(ctx, load); err != nil {
		return fmt.Errorf("%w: project %s", err, project)
	}

	state := runner.State()
	return common.WriteJSON(cl.Stdout(), Overview{
		Project:      project,
		Location:     runner.Navigator().Location(),
		Builds:       common.ListingOf(state.Builds),
		Experiments:  common.ListingOf(state.Experiments),
		ActivityLogs: common.ListingOf(state.ActivityLogs),
	})
}
