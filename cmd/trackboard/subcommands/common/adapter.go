package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/opst/trackboard/cmd/trackboard/config/credentials"
	"github.com/opst/trackboard/cmd/trackboard/config/profiles"
	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/session"
	"github.com/opst/trackboard/pkg/dashboard/store"
	"github.com/opst/trackboard/pkg/rest"
	"github.com/opst/trackboard/pkg/utils/logger"
	"github.com/youta-t/flarc"
)

type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		return task(
			ctx,
			logger.Prefixed(cl.Stderr(), cl.Fullname()),
			commonFlag,
			cl,
			newpos,
		)
	}
}

// Task is a command body working on the dashboard.
//
// runner is bound to the backend of the profile, with credentials of the session.
type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	trackboardEnv env.TrackboardEnv,
	runner *ops.Runner,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if err != nil {
			if errors.Is(err, profiles.ErrProfileStoreNotFound) {
				return fmt.Errorf(
					"%w: profile store (%s) is not found. Please try `trackboard init` first",
					err, commonFlag.ProfileStore,
				)
			}
			return fmt.Errorf(
				"%w: failed to load profile store (%s)",
				err, commonFlag.ProfileStore,
			)
		}
		prof, ok := store[commonFlag.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		e, err := env.LoadTrackboardEnv(commonFlag.Env)
		if err != nil {
			return fmt.Errorf("%w: failed to load trackboardenv (%s)", err, commonFlag.Env)
		}

		creds, err := credentials.Load(commonFlag.Dotenv)
		if err != nil {
			return fmt.Errorf("%w: failed to load credentials", err)
		}
		if creds.Token == "" {
			logger.Println("TRACKBOARD_TOKEN is not set. requests are sent without credentials.")
		}

		runner, err := NewRunner(prof, *e, creds, logger, commonFlag.Verbose)
		if err != nil {
			return fmt.Errorf(
				"%w: failed to create client. Your profile (%s in %s) can be broken.\n\nRemove it and try `trackboard init` again",
				err, commonFlag.Profile, commonFlag.ProfileStore,
			)
		}
		return task(ctx, logger, *e, runner, cl, params)
	})
}

// NewRunner builds a Runner for the backend of the profile.
//
// When the backend rejects credentials, the session is discarded and
// the navigation moves to the login location.
func NewRunner(
	prof *profiles.Profile,
	e env.TrackboardEnv,
	creds credentials.Credentials,
	logger *log.Logger,
	verbose bool,
) (*ops.Runner, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}

	sess := session.New(creds.Token, creds.CSRFToken)
	if sess.Expired(time.Now()) {
		exp, _ := sess.ExpiresAt()
		logger.Printf("TRACKBOARD_TOKEN has expired at %s. requests can be rejected.", exp.Format(time.RFC3339))
	}
	client, err := rest.NewClient(prof.ApiRoot, sess, prof.CACerts()...)
	if err != nil {
		return nil, err
	}

	navopts := []navigation.Option{}
	if verbose {
		navopts = append(navopts, navigation.WithListener(func(location string) {
			logger.Printf("location: %s", location)
		}))
	}
	history := navigation.NewHistory(e.StartLocation(), navopts...)

	return ops.NewRunner(
		client, store.New(), history,
		ops.WithLogger(logger),
		ops.WithAuthErrorHandler(session.RedirectToLogin(sess, history, logger)),
	), nil
}
