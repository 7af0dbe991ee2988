package stop

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/youta-t/flarc"
)

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Stop a running Experiment.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_EXPERIMENT, Required: true, Repeatable: true,
				Help: "unique names of Experiments, like \"alice.mnist.4\".",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Stop Experiments.

Stop requests are sent concurrently. It fails when any of them failed.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	e env.TrackboardEnv,
	runner *ops.Runner,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	experimentNames := cl.Args()[ARG_EXPERIMENT]

	stops := make([]ops.Operation, 0, len(experimentNames))
	for _, name := range experimentNames {
		stops = append(stops, ops.StopExperiment(name))
	}
	if err := runner.Run(ctx, ops.All("stop experiments", stops...)); err != nil {
		return fmt.Errorf("%w: Experiments %v", err, experimentNames)
	}
	for _, name := range experimentNames {
		logger.Printf("Experiment %s is stopping.", name)
	}
	return nil
}
