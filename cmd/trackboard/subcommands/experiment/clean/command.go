package clean

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/youta-t/flarc"
)

const ARG_PROJECT = "PROJECT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Stop Experiments already done in a project.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PROJECT, Required: false,
				Help: "unique name of the project, like \"alice.mnist\". Default is the project in trackboardenv.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Stop Experiments in a project whose status is done, like "succeeded" or "failed".

Unique names of stopped Experiments are printed as JSON.
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
	project, err := common.ProjectOf(cl.Args(), ARG_PROJECT, e)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	stopped := []string{}
	report := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		stopped = append(stopped, name)
	}

	err = runner.Run(ctx, ops.StopDoneExperiments(project, report))
	sort.Strings(stopped)
	if err != nil {
		return fmt.Errorf("%w: stopped %d Experiments %v before failing", err, len(stopped), stopped)
	}
	return common.WriteJSON(cl.Stdout(), stopped)
}
