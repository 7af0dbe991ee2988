package store

import (
	"github.com/opst/trackboard/pkg/api/types/activitylogs"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/api/types/experiments"
	"github.com/opst/trackboard/pkg/api/types/jobs"
	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/dashboard/action"
)

// State is the whole client-side state of the dashboard.
type State struct {
	Builds       Container[string, builds.Build]
	Experiments  Container[string, experiments.Experiment]
	Jobs         Container[string, jobs.Job]
	ActivityLogs Container[int, activitylogs.ActivityLog]
	Metrics      Container[int, metrics.Metric]

	// Revision counts actions reduced into this state.
	Revision uint64
}

var Builds = Kind[string, builds.Build]{
	Entity: action.Build,
	Key:    func(b builds.Build) string { return b.UniqueName },
	Stop: func(b builds.Build) builds.Build {
		b.LastStatus = experiments.StatusStopped
		return b
	},
	Bookmark: func(b builds.Build, bookmarked bool) builds.Build {
		b.Bookmarked = bookmarked
		return b
	},
}

var Experiments = Kind[string, experiments.Experiment]{
	Entity: action.Experiment,
	Key:    func(e experiments.Experiment) string { return e.UniqueName },
	Stop: func(e experiments.Experiment) experiments.Experiment {
		e.LastStatus = experiments.StatusStopped
		return e
	},
	Bookmark: func(e experiments.Experiment, bookmarked bool) experiments.Experiment {
		e.Bookmarked = bookmarked
		return e
	},
}

var Jobs = Kind[string, jobs.Job]{
	Entity: action.ExperimentJob,
	Key:    func(j jobs.Job) string { return j.UniqueName },
	Stop: func(j jobs.Job) jobs.Job {
		j.LastStatus = experiments.StatusStopped
		return j
	},
}

var ActivityLogs = Kind[int, activitylogs.ActivityLog]{
	Entity: action.ActivityLog,
	Key:    func(l activitylogs.ActivityLog) int { return l.Id },
}

var Metrics = Kind[int, metrics.Metric]{
	Entity: action.Metric,
	Key:    func(m metrics.Metric) int { return m.Id },
}

// Initial is the state before anything happens.
func Initial() State {
	return State{
		Builds:       Builds.Empty(),
		Experiments:  Experiments.Empty(),
		Jobs:         Jobs.Empty(),
		ActivityLogs: ActivityLogs.Empty(),
		Metrics:      Metrics.Empty(),
	}
}

// Reduce folds an action into the state.
//
// Only the container of the action's subject can be changed.
func Reduce(s State, a action.Action) State {
	s.Builds = Builds.Reduce(s.Builds, a)
	s.Experiments = Experiments.Reduce(s.Experiments, a)
	s.Jobs = Jobs.Reduce(s.Jobs, a)
	s.ActivityLogs = ActivityLogs.Reduce(s.ActivityLogs, a)
	s.Metrics = Metrics.Reduce(s.Metrics, a)
	s.Revision += 1
	return s
}
