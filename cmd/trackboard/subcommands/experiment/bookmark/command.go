package bookmark

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Remove bool `flag:"remove" alias:"r" help:"remove the bookmark instead."`
}

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Bookmark an Experiment.",
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

	op, done := ops.BookmarkExperiment(name), "bookmarked"
	if cl.Flags().Remove {
		op, done = ops.UnbookmarkExperiment(name), "unbookmarked"
	}
	if err := runner.Run(ctx, op); err != nil {
		return fmt.Errorf("%w: Experiment %s", err, name)
	}
	logger.Printf("Experiment %s is %s.", name, done)
	return nil
}
