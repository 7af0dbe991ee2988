package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/opst/trackboard/cmd/trackboard/subcommands/activity"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/build"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/dashboard"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/experiment"
	subinit "github.com/opst/trackboard/cmd/trackboard/subcommands/init"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/job"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/version"
	"github.com/opst/trackboard/pkg/utils/logger"
	"github.com/opst/trackboard/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	dashboard := try.To(dashboard.New()).OrFatal(logger)
	build := try.To(build.New()).OrFatal(logger)
	experiment := try.To(experiment.New()).OrFatal(logger)
	job := try.To(job.New()).OrFatal(logger)
	activity := try.To(activity.New()).OrFatal(logger)
	version := try.To(version.New()).OrFatal(logger)

	trackboard := try.To(
		flarc.NewCommandGroup(
			"Experiment tracking dashboard on the commandline",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("dashboard", dashboard),
			flarc.WithSubcommand("build", build),
			flarc.WithSubcommand("experiment", experiment),
			flarc.WithSubcommand("job", job),
			flarc.WithSubcommand("activity", activity),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, trackboard, flarc.WithHelp(true)))
}
