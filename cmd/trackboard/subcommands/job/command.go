package job

import (
	job_find "github.com/opst/trackboard/cmd/trackboard/subcommands/job/find"
	job_rm "github.com/opst/trackboard/cmd/trackboard/subcommands/job/rm"
	job_show "github.com/opst/trackboard/cmd/trackboard/subcommands/job/show"
	job_stop "github.com/opst/trackboard/cmd/trackboard/subcommands/job/stop"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := job_find.New()
	if err != nil {
		return nil, err
	}
	show, err := job_show.New()
	if err != nil {
		return nil, err
	}
	stop, err := job_stop.New()
	if err != nil {
		return nil, err
	}
	rm, err := job_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Jobs of Experiments.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("stop", stop),
		flarc.WithSubcommand("rm", rm),
	)
}
