// Unique names of entities and resource paths derived from them.
//
// Unique names are dot-separated: "USER.PROJECT" for projects,
// "USER.PROJECT.builds.ID" for builds, "USER.PROJECT.ID" for experiments and
// "USER.PROJECT.EXPERIMENT_ID.JOB_ID" for experiment jobs.
//
// API paths are relative to the API root. App paths are locations of the dashboard.
package names

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedName = errors.New("malformed unique name")

// root of dashboard locations.
const AppRoot = "/app"

func root(app bool) string {
	if app {
		return AppRoot
	}
	return ""
}

// Project is a "USER.PROJECT" unique name split.
type Project struct {
	User string
	Name string
}

func ParseProject(uniqueName string) (Project, error) {
	values := strings.Split(uniqueName, ".")
	if len(values) != 2 || values[0] == "" || values[1] == "" {
		return Project{}, fmt.Errorf("%w: project %q", ErrMalformedName, uniqueName)
	}
	return Project{User: values[0], Name: values[1]}, nil
}

func (p Project) UniqueName() string {
	return p.User + "." + p.Name
}

// path of the project: "/USER/PROJECT"
func (p Project) Urlify() string {
	return "/" + p.User + "/" + p.Name
}

// ProjectUrl is location (or API path) of the project.
//
// It ends with "/" so that fragments like "#builds" can be appended.
func ProjectUrl(user, project string, app bool) string {
	return fmt.Sprintf("%s/%s/%s/", root(app), user, project)
}

// segments split the unique name and verifies its arity.
func segments(kind string, uniqueName string, arity int) ([]string, error) {
	values := strings.Split(uniqueName, ".")
	if len(values) != arity {
		return nil, fmt.Errorf("%w: %s %q", ErrMalformedName, kind, uniqueName)
	}
	for _, v := range values {
		if v == "" {
			return nil, fmt.Errorf("%w: %s %q", ErrMalformedName, kind, uniqueName)
		}
	}
	return values, nil
}
