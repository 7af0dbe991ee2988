package jobs

import "github.com/opst/trackboard/pkg/utils/rfctime"

// Job is a replica (master, worker, ps, ...) of an experiment.
//
// UniqueName is formatted as "USER.PROJECT.EXPERIMENT_ID.JOB_ID".
type Job struct {
	Id         int              `json:"id"`
	Uuid       string           `json:"uuid"`
	UniqueName string           `json:"unique_name"`
	Role       string           `json:"role"`
	Experiment int              `json:"experiment"`
	LastStatus string           `json:"last_status"`
	CreatedAt  rfctime.RFC3339  `json:"created_at"`
	UpdatedAt  rfctime.RFC3339  `json:"updated_at"`
	StartedAt  *rfctime.RFC3339 `json:"started_at,omitempty"`
	FinishedAt *rfctime.RFC3339 `json:"finished_at,omitempty"`
}

func (j Job) Equal(o Job) bool {
	return j.Id == o.Id &&
		j.Uuid == o.Uuid &&
		j.UniqueName == o.UniqueName &&
		j.Role == o.Role &&
		j.Experiment == o.Experiment &&
		j.LastStatus == o.LastStatus &&
		j.CreatedAt.Equal(o.CreatedAt) &&
		j.UpdatedAt.Equal(o.UpdatedAt) &&
		rfctime.PEqual(j.StartedAt, o.StartedAt) &&
		rfctime.PEqual(j.FinishedAt, o.FinishedAt)
}
