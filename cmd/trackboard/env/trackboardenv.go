package env

import (
	"errors"
	"os"

	"github.com/opst/trackboard/pkg/dashboard/names"
	"gopkg.in/yaml.v3"
)

// TrackboardEnv is defaults for commands run in a directory.
type TrackboardEnv struct {
	// default user
	User string `yaml:"user"`

	// default project name, without user
	Project string `yaml:"project"`

	// location where the dashboard starts at
	Location string `yaml:"location"`
}

func New() *TrackboardEnv {
	return new(TrackboardEnv)
}

// ProjectName returns the default project unique name, like "alice.mnist".
//
// It is empty when user or project is not set.
func (e *TrackboardEnv) ProjectName() string {
	if e.User == "" || e.Project == "" {
		return ""
	}
	return names.Project{User: e.User, Name: e.Project}.UniqueName()
}

// StartLocation returns Location, or the project location if not set.
func (e *TrackboardEnv) StartLocation() string {
	if e.Location != "" {
		return e.Location
	}
	if e.User != "" && e.Project != "" {
		return names.ProjectUrl(e.User, e.Project, true)
	}
	return names.AppRoot
}

// LoadTrackboardEnv reads trackboardenv file.
//
// A missing file is an empty env.
func LoadTrackboardEnv(filepath string) (*TrackboardEnv, error) {
	env := New()

	content, err := os.ReadFile(filepath)
	if errors.Is(err, os.ErrNotExist) {
		return env, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, env); err != nil {
		return nil, err
	}
	return env, nil
}
