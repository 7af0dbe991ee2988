package builds

import (
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/utils/rfctime"
)

// Build is a container image build of a project.
//
// UniqueName is formatted as "USER.PROJECT.builds.ID".
type Build struct {
	Id          int              `json:"id"`
	Uuid        string           `json:"uuid"`
	UniqueName  string           `json:"unique_name"`
	User        string           `json:"user"`
	Project     string           `json:"project"`
	Description string           `json:"description,omitempty"`
	LastStatus  string           `json:"last_status"`
	CreatedAt   rfctime.RFC3339  `json:"created_at"`
	UpdatedAt   rfctime.RFC3339  `json:"updated_at"`
	StartedAt   *rfctime.RFC3339 `json:"started_at,omitempty"`
	FinishedAt  *rfctime.RFC3339 `json:"finished_at,omitempty"`
	Bookmarked  bool             `json:"bookmarked"`
	Tags        []string         `json:"tags,omitempty"`
}

func (b Build) Equal(o Build) bool {
	return b.Id == o.Id &&
		b.Uuid == o.Uuid &&
		b.UniqueName == o.UniqueName &&
		b.User == o.User &&
		b.Project == o.Project &&
		b.Description == o.Description &&
		b.LastStatus == o.LastStatus &&
		b.CreatedAt.Equal(o.CreatedAt) &&
		b.UpdatedAt.Equal(o.UpdatedAt) &&
		rfctime.PEqual(b.StartedAt, o.StartedAt) &&
		rfctime.PEqual(b.FinishedAt, o.FinishedAt) &&
		b.Bookmarked == o.Bookmarked &&
		cmp.SliceEq(b.Tags, o.Tags)
}
