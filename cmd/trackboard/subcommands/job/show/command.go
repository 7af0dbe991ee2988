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

const ARG_JOB = "JOB"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Job of an Experiment.",
		struct{}{},
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
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	name := cl.Args()[ARG_JOB][0]

	detail, err := view.ExperimentJobDetail(name, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}
	j, err := common.Show(ctx, runner, detail)
	if err != nil {
		return fmt.Errorf("%w: Job %s", err, name)
	}
	if j == nil {
		return fmt.Errorf("%w: Job %s", common.ErrNotFound, name)
	}
	return common.WriteJSON(cl.Stdout(), j)
}
