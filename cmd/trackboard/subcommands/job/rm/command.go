package rm

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
	Redirect bool `flag:"redirect" help:"move to the Experiment's Job list after deletion, and print the location."`
}

const ARG_JOB = "JOB"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Job.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_JOB, Required: true,
				Help: "unique name of the Job, like \"alice.mnist.4.1\".",
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
	name := cl.Args()[ARG_JOB][0]
	redirect := cl.Flags().Redirect

	if err := runner.Run(ctx, ops.DeleteExperimentJob(name, redirect)); err != nil {
		return fmt.Errorf("%w: Job %s", err, name)
	}
	logger.Printf("Job %s is deleted.", name)
	if redirect {
		fmt.Fprintln(cl.Stdout(), runner.Navigator().Location())
	}
	return nil
}
