package activitylogs

import "github.com/opst/trackboard/pkg/utils/rfctime"

// ActivityLog is an audit entry: Actor did EventAction on EventSubject.
type ActivityLog struct {
	Id           int             `json:"id"`
	EventAction  string          `json:"event_action"`
	EventSubject string          `json:"event_subject"`
	Actor        string          `json:"actor"`
	CreatedAt    rfctime.RFC3339 `json:"created_at"`
	ObjectId     int             `json:"object_id"`
	ObjectName   string          `json:"object_name"`
}

func (a ActivityLog) Equal(o ActivityLog) bool {
	return a.Id == o.Id &&
		a.EventAction == o.EventAction &&
		a.EventSubject == o.EventSubject &&
		a.Actor == o.Actor &&
		a.CreatedAt.Equal(o.CreatedAt) &&
		a.ObjectId == o.ObjectId &&
		a.ObjectName == o.ObjectName
}
