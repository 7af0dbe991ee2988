package experiment

import (
	experiment_bookmark "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/bookmark"
	experiment_clean "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/clean"
	experiment_find "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/find"
	experiment_metrics "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/metrics"
	experiment_rm "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/rm"
	experiment_show "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/show"
	experiment_stop "github.com/opst/trackboard/cmd/trackboard/subcommands/experiment/stop"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := experiment_find.New()
	if err != nil {
		return nil, err
	}
	show, err := experiment_show.New()
	if err != nil {
		return nil, err
	}
	stop, err := experiment_stop.New()
	if err != nil {
		return nil, err
	}
	rm, err := experiment_rm.New()
	if err != nil {
		return nil, err
	}
	bookmark, err := experiment_bookmark.New()
	if err != nil {
		return nil, err
	}
	clean, err := experiment_clean.New()
	if err != nil {
		return nil, err
	}
	metrics, err := experiment_metrics.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Experiments.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("stop", stop),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("bookmark", bookmark),
		flarc.WithSubcommand("clean", clean),
		flarc.WithSubcommand("metrics", metrics),
	)
}
