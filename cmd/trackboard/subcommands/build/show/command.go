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

const ARG_BUILD = "BUILD"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Build.",
		struct{}{},
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
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	name := cl.Args()[ARG_BUILD][0]

	detail, err := view.BuildDetail(name, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}
	b, err := common.Show(ctx, runner, detail)
	if err != nil {
		return fmt.Errorf("%w: Build %s", err, name)
	}
	if b == nil {
		return fmt.Errorf("%w: Build %s", common.ErrNotFound, name)
	}
	return common.WriteJSON(cl.Stdout(), b)
}
