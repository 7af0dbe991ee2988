package experiments

// Lifecycle statuses shared by builds, experiments and jobs.
const (
	StatusCreated   = "created"
	StatusBuilding  = "building"
	StatusScheduled = "scheduled"
	StatusStarting  = "starting"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusStopped   = "stopped"
	StatusUnknown   = "unknown"
)

// IsDone reports whether the status will not change anymore.
func IsDone(status string) bool {
	switch status {
	case StatusSucceeded, StatusFailed, StatusStopped:
		return true
	default:
		return false
	}
}

// IsRunning reports whether the status is one of in-progress statuses.
func IsRunning(status string) bool {
	switch status {
	case StatusBuilding, StatusScheduled, StatusStarting, StatusRunning:
		return true
	default:
		return false
	}
}
