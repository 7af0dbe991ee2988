package rm_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/opst/trackboard/cmd/trackboard/env"
	build_rm "github.com/opst/trackboard/cmd/trackboard/subcommands/build/rm"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/commandline"
	"github.com/opst/trackboard/cmd/trackboard/subcommands/internal/fixture"
	"github.com/opst/trackboard/pkg/utils/logger"
)

func TestRmCommand(t *testing.T) {
	type When struct {
		redirect bool
		err      error
	}
	type Then struct {
		stdout   string
		location string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			f := fixture.New(t, "/app/alice/mnist/builds/3")
			f.Client.Impl.Delete = func(_ context.Context, path string) error {
				if path != "/alice/mnist/builds/3" {
					t.Errorf("unexpected path: %s", path)
				}
				return when.err
			}

			stdout := new(strings.Builder)
			err := build_rm.Task(
				context.Background(), logger.Null(), *env.New(), f.Runner,
				commandline.MockCommandline[build_rm.Flags]{
					Stdout_: stdout,
					Stderr_: io.Discard,
					Flags_:  build_rm.Flags{Redirect: when.redirect},
					Args_:   map[string][]string{build_rm.ARG_BUILD: {"alice.mnist.builds.3"}},
				},
				[]any{},
			)
			if !errors.Is(err, when.err) {
				t.Errorf("unexpected error: %v, want %v", err, when.err)
			}
			if stdout.String() != then.stdout {
				t.Errorf("stdout: %q, want %q", stdout, then.stdout)
			}
			if loc := f.History.Location(); loc != then.location {
				t.Errorf("location: %s, want %s", loc, then.location)
			}
		}
	}

	t.Run("it deletes the build and stays", theory(
		When{},
		Then{location: "/app/alice/mnist/builds/3"},
	))

	t.Run("it deletes the build and moves to the build list", theory(
		When{redirect: true},
		Then{
			stdout:   "/app/alice/mnist/#builds\n",
			location: "/app/alice/mnist/#builds",
		},
	))

	t.Run("it stays when deletion failed", theory(
		When{redirect: true, err: errors.New("fake error")},
		Then{location: "/app/alice/mnist/builds/3"},
	))
}
