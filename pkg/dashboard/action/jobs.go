package action

import "github.com/opst/trackboard/pkg/api/types/jobs"

func CreateExperimentJob(j jobs.Job) Created[jobs.Job] {
	return Created[jobs.Job]{Entity: ExperimentJob, Item: j}
}

func UpdateExperimentJob(j jobs.Job) Updated[jobs.Job] {
	return Updated[jobs.Job]{Entity: ExperimentJob, Item: j}
}

func DeleteExperimentJob(jobName string) Deleted[string] {
	return Deleted[string]{Entity: ExperimentJob, Id: jobName}
}

func StopExperimentJob(jobName string) Stopped[string] {
	return Stopped[string]{Entity: ExperimentJob, Id: jobName}
}

func RequestExperimentJob() Requested {
	return Requested{Entity: ExperimentJob}
}

func RequestExperimentJobs() Requested {
	return Requested{Entity: ExperimentJob, Many: true}
}

func ReceiveExperimentJob(j jobs.Job) Received[jobs.Job] {
	return Received[jobs.Job]{Entity: ExperimentJob, Item: j}
}

func ReceiveExperimentJobs(js []jobs.Job, count int) ReceivedMany[jobs.Job] {
	return ReceivedMany[jobs.Job]{Entity: ExperimentJob, Items: js, Count: count}
}
