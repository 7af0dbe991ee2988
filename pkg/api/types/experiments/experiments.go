package experiments

import (
	"reflect"

	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/utils/rfctime"
)

// Experiment is a training run tracked in a project.
//
// UniqueName is formatted as "USER.PROJECT.ID".
type Experiment struct {
	Id              int                `json:"id"`
	Uuid            string             `json:"uuid"`
	UniqueName      string             `json:"unique_name"`
	User            string             `json:"user"`
	Project         string             `json:"project"`
	ExperimentGroup *string            `json:"experiment_group,omitempty"`
	BuildJob        *string            `json:"build_job,omitempty"`
	Description     string             `json:"description,omitempty"`
	LastStatus      string             `json:"last_status"`
	CreatedAt       rfctime.RFC3339    `json:"created_at"`
	UpdatedAt       rfctime.RFC3339    `json:"updated_at"`
	StartedAt       *rfctime.RFC3339   `json:"started_at,omitempty"`
	FinishedAt      *rfctime.RFC3339   `json:"finished_at,omitempty"`
	NumJobs         int                `json:"num_jobs"`
	LastMetric      map[string]float64 `json:"last_metric,omitempty"`
	Declarations    map[string]any     `json:"declarations,omitempty"`
	Bookmarked      bool               `json:"bookmarked"`
	Tags            []string           `json:"tags,omitempty"`
}

func (e Experiment) Equal(o Experiment) bool {
	return e.Id == o.Id &&
		e.Uuid == o.Uuid &&
		e.UniqueName == o.UniqueName &&
		e.User == o.User &&
		e.Project == o.Project &&
		pStrEq(e.ExperimentGroup, o.ExperimentGroup) &&
		pStrEq(e.BuildJob, o.BuildJob) &&
		e.Description == o.Description &&
		e.LastStatus == o.LastStatus &&
		e.CreatedAt.Equal(o.CreatedAt) &&
		e.UpdatedAt.Equal(o.UpdatedAt) &&
		rfctime.PEqual(e.StartedAt, o.StartedAt) &&
		rfctime.PEqual(e.FinishedAt, o.FinishedAt) &&
		e.NumJobs == o.NumJobs &&
		cmp.MapEq(e.LastMetric, o.LastMetric) &&
		// declarations are free-form json values.
		(len(e.Declarations) == 0 && len(o.Declarations) == 0 ||
			reflect.DeepEqual(e.Declarations, o.Declarations)) &&
		e.Bookmarked == o.Bookmarked &&
		cmp.SliceEq(e.Tags, o.Tags)
}

func pStrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
