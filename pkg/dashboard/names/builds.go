package names

import "fmt"

func BuildUniqueName(user, project string, buildId int) string {
	return fmt.Sprintf("%s.%s.builds.%d", user, project, buildId)
}

func BuildUrl(user, project string, buildId string, app bool) string {
	return fmt.Sprintf("%s/%s/%s/builds/%s", root(app), user, project, buildId)
}

// Build is "USER.PROJECT.builds.ID" split.
type Build struct {
	Project
	Id string
}

func ParseBuild(uniqueName string) (Build, error) {
	values, err := segments("build", uniqueName, 4)
	if err != nil {
		return Build{}, err
	}
	if values[2] != "builds" {
		return Build{}, fmt.Errorf("%w: build %q", ErrMalformedName, uniqueName)
	}
	return Build{Project: Project{User: values[0], Name: values[1]}, Id: values[3]}, nil
}

func (b Build) Url(app bool) string {
	return BuildUrl(b.User, b.Name, b.Id, app)
}

func BuildUrlFromName(uniqueName string, app bool) (string, error) {
	b, err := ParseBuild(uniqueName)
	if err != nil {
		return "", err
	}
	return b.Url(app), nil
}

func (b Build) UniqueName() string {
	return b.User + "." + b.Name + ".builds." + b.Id
}
