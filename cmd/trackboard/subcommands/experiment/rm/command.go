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
	Redirect bool `flag:"redirect" help:"move to the project's Experiment list after deletion, and print the location."`
}

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete an Experiment.",
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
	redirect := cl.Flags().Redirect

	if err := runner.Run(ctx, ops.DeleteExperiment(name, redirect)); err != nil {
		return fmt.Errorf("%w: Experiment %s", err, name)
	}
	logger.Printf("Experiment %s is deleted.", name)
	if redirect {
		fmt.Fprintln(cl.Stdout(), runner.Navigator().Location())
	}
	return nil
}
