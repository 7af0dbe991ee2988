package view

import (
	"github.com/opst/trackboard/pkg/api/types/activitylogs"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/api/types/experiments"
	"github.com/opst/trackboard/pkg/api/types/jobs"
	"github.com/opst/trackboard/pkg/api/types/metrics"
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/dashboard/names"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/store"
)

type equaler[M any] interface {
	Equal(M) bool
}

// List is a slice of a list view.
type List[M equaler[M]] struct {
	Items []M

	// total number of items on the backend
	Count int

	Status store.Status
}

func (l List[M]) Equal(o List[M]) bool {
	return l.Count == o.Count &&
		l.Status == o.Status &&
		cmp.SliceEqWith(l.Items, o.Items, func(a, b M) bool { return a.Equal(b) })
}

func listOf[K comparable, M equaler[M]](c store.Container[K, M]) List[M] {
	return List[M]{Items: c.Items(), Count: c.LastFetched().Count, Status: c.Status()}
}

func listBinding[K comparable, M equaler[M]](
	container func(store.State) store.Container[K, M], fetch ops.Operation,
) Binding[List[M]] {
	return Binding[List[M]]{
		Select: func(s store.State) List[M] { return listOf(container(s)) },
		Equal:  func(a, b List[M]) bool { return a.Equal(b) },
		Fetch:  fetch,
	}
}

// item selects an item by id. nil if unknown.
func item[K comparable, M any](c store.Container[K, M], id K) *M {
	m, ok := c.Get(id)
	if !ok {
		return nil
	}
	return &m
}

func itemBinding[K comparable, M equaler[M]](
	container func(store.State) store.Container[K, M], id K, fetch ops.Operation,
) Binding[*M] {
	return Binding[*M]{
		Select: func(s store.State) *M { return item(container(s), id) },
		Equal: func(a, b *M) bool {
			if a == nil || b == nil {
				return a == nil && b == nil
			}
			return (*a).Equal(*b)
		},
		Resolved: func(m *M) bool { return m != nil },
		Fetch:    fetch,
	}
}

func buildsOf(s store.State) store.Container[string, builds.Build] { return s.Builds }
func experimentsOf(s store.State) store.Container[string, experiments.Experiment] {
	return s.Experiments
}
func jobsOf(s store.State) store.Container[string, jobs.Job] { return s.Jobs }
func activityLogsOf(s store.State) store.Container[int, activitylogs.ActivityLog] {
	return s.ActivityLogs
}
func metricsOf(s store.State) store.Container[int, metrics.Metric] { return s.Metrics }

// BuildList shows builds fetched by fetch, like ops.FetchBuilds.
func BuildList(fetch ops.Operation, render func(List[builds.Build])) *Connected[List[builds.Build]] {
	return Connect(listBinding(buildsOf, fetch), render)
}

// ExperimentList shows experiments fetched by fetch, like ops.FetchExperiments.
func ExperimentList(fetch ops.Operation, render func(List[experiments.Experiment])) *Connected[List[experiments.Experiment]] {
	return Connect(listBinding(experimentsOf, fetch), render)
}

// ExperimentJobList shows jobs fetched by fetch, like ops.FetchExperimentJobs.
func ExperimentJobList(fetch ops.Operation, render func(List[jobs.Job])) *Connected[List[jobs.Job]] {
	return Connect(listBinding(jobsOf, fetch), render)
}

// ActivityLogList shows activity logs fetched by fetch, like ops.FetchActivityLogs.
func ActivityLogList(fetch ops.Operation, render func(List[activitylogs.ActivityLog])) *Connected[List[activitylogs.ActivityLog]] {
	return Connect(listBinding(activityLogsOf, fetch), render)
}

// Metrics shows metrics of the experiment, like "alice.mnist.4".
func Metrics(experimentName string, filter ops.MetricFilter, render func(List[metrics.Metric])) *Connected[List[metrics.Metric]] {
	return Connect(listBinding(metricsOf, ops.FetchMetrics(experimentName, filter)), render)
}

// BuildDetail shows the build, like "alice.mnist.builds.3". It is nil while unknown.
func BuildDetail(buildName string, render func(*builds.Build)) (*Connected[*builds.Build], error) {
	b, err := names.ParseBuild(buildName)
	if err != nil {
		return nil, err
	}
	return Connect(
		itemBinding(buildsOf, buildName, ops.FetchBuild(b.User, b.Name, b.Id)),
		render,
	), nil
}

// ExperimentDetail shows the experiment, like "alice.mnist.4". It is nil while unknown.
func ExperimentDetail(experimentName string, render func(*experiments.Experiment)) (*Connected[*experiments.Experiment], error) {
	e, err := names.ParseExperiment(experimentName)
	if err != nil {
		return nil, err
	}
	return Connect(
		itemBinding(experimentsOf, experimentName, ops.FetchExperiment(e.User, e.Name, e.Id)),
		render,
	), nil
}

// ExperimentJobDetail shows the job, like "alice.mnist.4.1". It is nil while unknown.
func ExperimentJobDetail(jobName string, render func(*jobs.Job)) (*Connected[*jobs.Job], error) {
	j, err := names.ParseExperimentJob(jobName)
	if err != nil {
		return nil, err
	}
	return Connect(
		itemBinding(jobsOf, jobName, ops.FetchExperimentJob(j.User, j.Name, j.Id, j.JobId)),
		render,
	), nil
}
