package ops_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/opst/trackboard/pkg/api/types/jobs"
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/rest/mock"
)

func aJob(id string) jobs.Job {
	return jobs.Job{UniqueName: "alice.mnist.4." + id, Role: "master", LastStatus: "running"}
}

func TestFetchExperimentJobs(t *testing.T) {
	f := newFixture(t, "/app/alice/mnist/experiments/4")
	f.client.Impl.Get = func(_ context.Context, path string, _ url.Values, v any) error {
		if path != "/alice/mnist/experiments/4/jobs" {
			t.Errorf("unexpected path: %s", path)
		}
		return mock.Respond(v, page(2, aJob("1"), aJob("2")))
	}

	if err := f.runner.Run(context.Background(), ops.FetchExperimentJobs("alice", "mnist", "4", ops.ListFilter{})); err != nil {
		t.Fatal(err)
	}
	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"REQUEST_EXPERIMENT_JOBS", "RECEIVE_EXPERIMENT_JOBS"}) {
		t.Errorf("actions: %v", a)
	}
	if ids := f.store.State().Jobs.Ids(); !cmp.SliceEq(ids, []string{"alice.mnist.4.1", "alice.mnist.4.2"}) {
		t.Errorf("ids: %v", ids)
	}
}

func TestFetchExperimentJob(t *testing.T) {
	f := newFixture(t, "/app")
	f.client.Impl.Get = func(_ context.Context, path string, _ url.Values, v any) error {
		if path != "/alice/mnist/experiments/4/jobs/2" {
			t.Errorf("unexpected path: %s", path)
		}
		return mock.Respond(v, aJob("2"))
	}

	if err := f.runner.Run(context.Background(), ops.FetchExperimentJob("alice", "mnist", "4", "2")); err != nil {
		t.Fatal(err)
	}
	if j, ok := f.store.State().Jobs.Get("alice.mnist.4.2"); !ok || j.Role != "master" {
		t.Errorf("job: %+v, %v", j, ok)
	}
}

func TestJobMutations(t *testing.T) {
	f := newFixture(t, "/app/alice/mnist/experiments/4/jobs/2")
	f.client.Impl.Post = func(context.Context, string, any) error { return nil }
	f.client.Impl.Delete = func(context.Context, string) error { return nil }

	ctx := context.Background()
	if err := f.runner.Run(ctx, ops.StopExperimentJob("alice.mnist.4.2")); err != nil {
		t.Fatal(err)
	}
	if err := f.runner.Run(ctx, ops.DeleteExperimentJob("alice.mnist.4.2", true)); err != nil {
		t.Fatal(err)
	}

	if p := f.client.Calls.Post; !cmp.SliceEq(p, []string{"/alice/mnist/experiments/4/jobs/2/stop"}) {
		t.Errorf("posts: %v", p)
	}
	if d := f.client.Calls.Delete; !cmp.SliceEq(d, []string{"/alice/mnist/experiments/4/jobs/2"}) {
		t.Errorf("deletes: %v", d)
	}
	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"STOP_EXPERIMENT_JOB", "DELETE_EXPERIMENT_JOB"}) {
		t.Errorf("actions: %v", a)
	}
	if l := f.history.Location(); l != "/app/alice/mnist/experiments/4#jobs" {
		t.Errorf("location: %s", l)
	}
}
