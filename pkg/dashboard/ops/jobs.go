package ops

import (
	"context"

	"github.com/opst/trackboard/pkg/api/types/jobs"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/names"
)

// FetchExperimentJobs fetches jobs of the experiment.
func FetchExperimentJobs(user, project string, experimentId string, filter ListFilter) Operation {
	e := names.Experiment{Project: names.Project{User: user, Name: project}, Id: experimentId}
	return New("fetch jobs of "+e.UniqueName(), func(ctx context.Context, rt Runtime) error {
		return fetchList(
			ctx, rt, e.Url(false)+"/jobs", filter.Values(), true,
			action.RequestExperimentJobs(),
			func(js []jobs.Job, count int) action.Action { return action.ReceiveExperimentJobs(js, count) },
		)
	})
}

func FetchExperimentJob(user, project string, experimentId, jobId string) Operation {
	j := names.ExperimentJob{
		Experiment: names.Experiment{Project: names.Project{User: user, Name: project}, Id: experimentId},
		JobId:      jobId,
	}
	return New("fetch job "+j.UniqueName(), func(ctx context.Context, rt Runtime) error {
		return fetchOne(
			ctx, rt, j.Url(false),
			action.RequestExperimentJob(),
			func(j jobs.Job) action.Action { return action.ReceiveExperimentJob(j) },
		)
	})
}

// StopExperimentJob stops the job, like "alice.mnist.12.1".
func StopExperimentJob(jobName string) Operation {
	return New("stop job "+jobName, func(ctx context.Context, rt Runtime) error {
		j, err := names.ParseExperimentJob(jobName)
		if err != nil {
			return err
		}
		return post(ctx, rt, j.Url(false)+"/stop", action.StopExperimentJob(jobName))
	})
}

// DeleteExperimentJob deletes the job.
//
// If redirect is true, it moves to the experiment after deletion.
func DeleteExperimentJob(jobName string, redirect bool) Operation {
	return New("delete job "+jobName, func(ctx context.Context, rt Runtime) error {
		j, err := names.ParseExperimentJob(jobName)
		if err != nil {
			return err
		}
		if err := del(ctx, rt, j.Url(false), action.DeleteExperimentJob(jobName)); err != nil {
			return err
		}
		if redirect {
			rt.Navigator().Push(j.Experiment.Url(true) + "#jobs")
		}
		return nil
	})
}
