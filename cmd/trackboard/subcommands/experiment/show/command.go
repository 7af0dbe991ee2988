package show

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

const ARG_EXPERIMENT = "EXPERIMENT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show an Experiment.",
		struct{}{},
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
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	name := cl.Args()[ARG_EXPERIMENT][0]

	detail, err := view.ExperimentDetail(name, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}
	x, err := common.Show(ctx, runner, detail)
	if err != nil {
		return fmt.Errorf("%w: Experiment %s", err, name)
	}
	if x == nil {
		return fmt.Errorf("%w: Experiment %s", common.ErrNotFound, name)
	}
	return common.WriteJSON(cl.Stdout(), x)
}
