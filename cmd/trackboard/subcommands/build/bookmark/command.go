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

const ARG_BUILD = "BUILD"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Bookmark a Build.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_BUILD, Required: true,
				Help: "unique name of the Build, like \"alice.mnist.builds.3\".",
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
	name := cl.Args()[ARG_BUILD][0]

	op, done := ops.BookmarkBuild(name), "bookmarked"
	if cl.Flags().Remove {
		op, done = ops.UnbookmarkBuild(name), "unbookmarked"
	}
	if err := runner.Run(ctx, op); err != nil {
		return fmt.Errorf("%w: Build %s", err, name)
	}
	logger.Printf("Build %s is %s.", name, done)
	return nil
}
