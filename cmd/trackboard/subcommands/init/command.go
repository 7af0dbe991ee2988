package init

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/opst/trackboard/cmd/trackboard/config/credentials"
	"github.com/opst/trackboard/cmd/trackboard/config/profiles"
	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

type Flags struct {
	User      string `flag:"user" alias:"u" help:"default user, saved in trackboardenv."`
	Project   string `flag:"project" alias:"p" help:"default project name without user, saved in trackboardenv."`
	Token     string `flag:"token" help:"api token, saved in .env as TRACKBOARD_TOKEN."`
	CSRFToken string `flag:"csrf-token" help:"CSRF token, saved in .env as TRACKBOARD_CSRF_TOKEN."`
}

const ARG_PROFILE_FILE = "PROFILE_FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Initialize this directory to work with a tracking backend.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PROFILE_FILE, Required: true,
				Help: "filepath to a profile file, which tells where the backend is.",
			},
		},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Register a profile into your profile store, and use it in this directory.

A profile file is YAML like:

	apiRoot: https://tracking.example.com/api/v1
	cert:
	  ca: BASE64_ENCODED_CA_CERTIFICATE  # optional

The name of the profile is given by "--profile" (default: current filepath).
It is written in ".trackboardprofile".

With --user and --project, they are written in "trackboardenv".
With --token, it is written in ".env", which only you can read.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[Flags],
	params []any,
) error {
	profFile := cl.Args()[ARG_PROFILE_FILE][0]
	flags := cl.Flags()

	store, err := profiles.LoadProfileStore(cf.ProfileStore)
	if errors.Is(err, profiles.ErrProfileStoreNotFound) {
		store = profiles.ProfileStore{}
	} else if err != nil {
		return fmt.Errorf("%w: failed to load profile store (%s)", err, cf.ProfileStore)
	}

	prof := new(profiles.Profile)
	{
		content, err := os.ReadFile(profFile)
		if err != nil {
			return fmt.Errorf("%w: failed to read profile file (%s)", err, profFile)
		}
		if err := yaml.Unmarshal(content, prof); err != nil {
			return fmt.Errorf("%w: failed to parse profile file (%s)", err, profFile)
		}
	}
	if err := prof.Verify(); err != nil {
		return fmt.Errorf("%w: %s", err, profFile)
	}

	store[cf.Profile] = prof
	if err := store.Save(cf.ProfileStore); err != nil {
		return fmt.Errorf("%w: failed to save profile store (%s)", err, cf.ProfileStore)
	}
	logger.Printf("profile %s is saved to %s", cf.Profile, cf.ProfileStore)

	if err := os.WriteFile(common.ProfileFile, []byte(cf.Profile), os.FileMode(0600)); err != nil {
		return fmt.Errorf("%w: failed to write %s", err, common.ProfileFile)
	}

	if flags.User != "" || flags.Project != "" {
		e := env.TrackboardEnv{User: flags.User, Project: flags.Project}
		content, err := yaml.Marshal(e)
		if err != nil {
			return err
		}
		if err := os.WriteFile(common.EnvFile, content, os.FileMode(0644)); err != nil {
			return fmt.Errorf("%w: failed to write %s", err, common.EnvFile)
		}
		logger.Printf("defaults are saved to %s", common.EnvFile)
	}

	if flags.Token != "" || flags.CSRFToken != "" {
		creds := credentials.Credentials{Token: flags.Token, CSRFToken: flags.CSRFToken}
		if err := creds.Save(common.DotenvFile); err != nil {
			return fmt.Errorf("%w: failed to write %s", err, common.DotenvFile)
		}
		abs, _ := filepath.Abs(common.DotenvFile)
		logger.Printf("credentials are saved to %s. keep it out of version control.", abs)
	}

	return nil
}
