package names

import "fmt"

func ExperimentUniqueName(user, project string, experimentId int) string {
	return fmt.Sprintf("%s.%s.%d", user, project, experimentId)
}

func ExperimentUrl(user, project string, experimentId string, app bool) string {
	return fmt.Sprintf("%s/%s/%s/experiments/%s", root(app), user, project, experimentId)
}

// Experiment is "USER.PROJECT.ID" split.
type Experiment struct {
	Project
	Id string
}

func ParseExperiment(uniqueName string) (Experiment, error) {
	values, err := segments("experiment", uniqueName, 3)
	if err != nil {
		return Experiment{}, err
	}
	return Experiment{Project: Project{User: values[0], Name: values[1]}, Id: values[2]}, nil
}

func (e Experiment) Url(app bool) string {
	return ExperimentUrl(e.User, e.Name, e.Id, app)
}

func ExperimentUrlFromName(uniqueName string, app bool) (string, error) {
	e, err := ParseExperiment(uniqueName)
	if err != nil {
		return "", err
	}
	return e.Url(app), nil
}

func ExperimentJobUniqueName(user, project string, experimentId, jobId string) string {
	return fmt.Sprintf("%s.%s.%s.%s", user, project, experimentId, jobId)
}

func ExperimentJobUrl(user, project string, experimentId, jobId string, app bool) string {
	return ExperimentUrl(user, project, experimentId, app) + "/jobs/" + jobId
}

// ExperimentJob is "USER.PROJECT.EXPERIMENT_ID.JOB_ID" split.
type ExperimentJob struct {
	Experiment
	JobId string
}

func ParseExperimentJob(uniqueName string) (ExperimentJob, error) {
	values, err := segments("experiment job", uniqueName, 4)
	if err != nil {
		return ExperimentJob{}, err
	}
	return ExperimentJob{
		Experiment: Experiment{
			Project: Project{User: values[0], Name: values[1]},
			Id:      values[2],
		},
		JobId: values[3],
	}, nil
}

func (j ExperimentJob) UniqueName() string {
	return ExperimentJobUniqueName(j.User, j.Name, j.Id, j.JobId)
}

func (j ExperimentJob) Url(app bool) string {
	return ExperimentJobUrl(j.User, j.Name, j.Id, j.JobId, app)
}

func (e Experiment) UniqueName() string {
	return e.User + "." + e.Name + "." + e.Id
}
