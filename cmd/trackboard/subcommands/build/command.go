package build

import (
	build_bookmark "github.com/opst/trackboard/cmd/trackboard/subcommands/build/bookmark"
	build_find "github.com/opst/trackboard/cmd/trackboard/subcommands/build/find"
	build_rm "github.com/opst/trackboard/cmd/trackboard/subcommands/build/rm"
	build_show "github.com/opst/trackboard/cmd/trackboard/subcommands/build/show"
	build_stop "github.com/opst/trackboard/cmd/trackboard/subcommands/build/stop"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := build_find.New()
	if err != nil {
		return nil, err
	}
	show, err := build_show.New()
	if err != nil {
		return nil, err
	}
	stop, err := build_stop.New()
	if err != nil {
		return nil, err
	}
	rm, err := build_rm.New()
	if err != nil {
		return nil, err
	}
	bookmark, err := build_bookmark.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Builds.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("stop", stop),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("bookmark", bookmark),
	)
}
