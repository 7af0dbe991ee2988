package ops_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/api/types/lists"
	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	cerr "github.com/opst/trackboard/pkg/errors"
	"github.com/opst/trackboard/pkg/rest"
	"github.com/opst/trackboard/pkg/rest/mock"
)

func page[T any](count int, items ...T) lists.Page[T] {
	return lists.Page[T]{Count: count, Results: items}
}

func aBuild(id string) builds.Build {
	return builds.Build{UniqueName: "alice.mnist.builds." + id, User: "alice", Project: "mnist", LastStatus: "running"}
}

func TestFetchBuilds(t *testing.T) {
	type When struct {
		location string
		filter   ops.BuildFilter
	}
	type Then struct {
		query   string
		history []string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			f := newFixture(t, when.location)
			f.client.Impl.Get = func(_ context.Context, path string, query url.Values, v any) error {
				if path != "/alice/mnist/builds" {
					t.Errorf("unexpected path: %s", path)
				}
				return mock.Respond(v, page(7, aBuild("2"), aBuild("1")))
			}

			if err := f.runner.Run(context.Background(), ops.FetchBuilds("alice.mnist", when.filter)); err != nil {
				t.Fatal(err)
			}

			if q := f.client.Calls.Get[0].Query.Encode(); q != then.query {
				t.Errorf("query: %s, want %s", q, then.query)
			}
			if h := f.history.Entries(); !cmp.SliceEq(h, then.history) {
				t.Errorf("history: %v, want %v", h, then.history)
			}
			if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"REQUEST_BUILDS", "RECEIVE_BUILDS"}) {
				t.Errorf("actions: %v", a)
			}

			c := f.store.State().Builds
			if !cmp.SliceEq(c.Ids(), []string{"alice.mnist.builds.2", "alice.mnist.builds.1"}) || c.LastFetched().Count != 7 {
				t.Errorf("unexpected container: %v, %+v", c.Ids(), c.LastFetched())
			}
		}
	}

	t.Run("status filter is sent and reflected to the location", theory(
		When{
			location: "/app/alice/mnist/builds",
			filter:   ops.BuildFilter{Status: "running"},
		},
		Then{
			query:   "status=running",
			history: []string{"/app/alice/mnist/builds", "/app/alice/mnist/builds?status=running"},
		},
	))

	t.Run("filters replace the query of the location", theory(
		When{
			location: "/app/alice/mnist/builds?status=failed",
			filter:   ops.BuildFilter{ListFilter: ops.ListFilter{Sort: "-created_at", Limit: 20}},
		},
		Then{
			query: "limit=20&sort=-created_at",
			history: []string{
				"/app/alice/mnist/builds?status=failed",
				"/app/alice/mnist/builds?limit=20&sort=-created_at",
			},
		},
	))

	t.Run("empty filters clear a stale query", theory(
		When{location: "/app/alice/mnist/builds?status=running"},
		Then{
			query:   "",
			history: []string{"/app/alice/mnist/builds?status=running", "/app/alice/mnist/builds"},
		},
	))

	t.Run("empty filters without query do not move", theory(
		When{location: "/app/alice/mnist/builds"},
		Then{query: "", history: []string{"/app/alice/mnist/builds"}},
	))

	t.Run("malformed project name is an error without requests", func(t *testing.T) {
		f := newFixture(t, "/app")
		err := f.runner.Run(context.Background(), ops.FetchBuilds("alice", ops.BuildFilter{}))
		if err == nil {
			t.Fatal("no error")
		}
		if len(f.client.Calls.Get) != 0 || len(f.Actions()) != 0 {
			t.Errorf("unexpected side effects: %v, %v", f.client.Calls.Get, f.Actions())
		}
	})
}

func TestFetchBuilds_Unauthorized(t *testing.T) {
	f := newFixture(t, "/app/alice/mnist/builds")
	f.client.Impl.Get = func(context.Context, string, url.Values, any) error {
		return cerr.NewCuiError("unauthorized", cerr.WithCause(rest.ErrUnauthorized))
	}

	err := f.runner.Run(context.Background(), ops.FetchBuilds("alice.mnist", ops.BuildFilter{}))
	if !errors.Is(err, rest.ErrUnauthorized) {
		t.Fatalf("unexpected error: %v", err)
	}

	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"REQUEST_BUILDS"}) {
		t.Errorf("actions: %v", a)
	}
	if f.session.Authenticated() {
		t.Error("session is not discarded")
	}
	if l := f.history.Location(); l != navigation.LoginPath {
		t.Errorf("location: %s", l)
	}
}

func TestFetchBuilds_Failure(t *testing.T) {
	f := newFixture(t, "/app/alice/mnist/builds")
	f.client.Impl.Get = func(context.Context, string, url.Values, any) error {
		return errors.New("connection refused")
	}

	if err := f.runner.Run(context.Background(), ops.FetchBuilds("alice.mnist", ops.BuildFilter{})); err == nil {
		t.Fatal("no error")
	}
	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"REQUEST_BUILDS"}) {
		t.Errorf("actions: %v", a)
	}
	if !f.session.Authenticated() {
		t.Error("session is discarded for non-auth errors")
	}
}

func TestFetchBookmarkedBuilds(t *testing.T) {
	f := newFixture(t, "/app/bookmarks/alice/builds")
	f.client.Impl.Get = func(_ context.Context, path string, _ url.Values, v any) error {
		if path != "/bookmarks/alice/builds/" {
			t.Errorf("unexpected path: %s", path)
		}
		return mock.Respond(v, page(
			30,
			bookmarks.Bookmark[builds.Build]{Id: 1, User: "alice", ContentObject: aBuild("5")},
			bookmarks.Bookmark[builds.Build]{Id: 2, User: "alice", ContentObject: aBuild("3")},
		))
	}

	if err := f.runner.Run(context.Background(), ops.FetchBookmarkedBuilds("alice", ops.BuildFilter{})); err != nil {
		t.Fatal(err)
	}

	c := f.store.State().Builds
	if !cmp.SliceEq(c.Ids(), []string{"alice.mnist.builds.5", "alice.mnist.builds.3"}) {
		t.Errorf("ids: %v", c.Ids())
	}
	if lf := c.LastFetched(); lf.Count != 30 {
		t.Errorf("count: %d", lf.Count)
	}
}

func TestFetchBuild(t *testing.T) {
	f := newFixture(t, "/app")
	f.client.Impl.Get = func(_ context.Context, path string, query url.Values, v any) error {
		if path != "/alice/mnist/builds/5" || len(query) != 0 {
			t.Errorf("unexpected request: %s ? %v", path, query)
		}
		return mock.Respond(v, aBuild("5"))
	}

	if err := f.runner.Run(context.Background(), ops.FetchBuild("alice", "mnist", "5")); err != nil {
		t.Fatal(err)
	}
	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"REQUEST_BUILD", "RECEIVE_BUILD"}) {
		t.Errorf("actions: %v", a)
	}
	if !f.store.State().Builds.Has("alice.mnist.builds.5") {
		t.Error("build is not received")
	}
}

func TestDeleteBuild(t *testing.T) {
	t.Run("it dispatches after deletion, then redirects", func(t *testing.T) {
		var f *fixture
		f = newFixture(t, "/app/alice/mnist/builds/5", func(string) {
			if a := f.Actions(); len(a) == 0 || a[len(a)-1] != "DELETE_BUILD" {
				t.Errorf("redirected before dispatch: %v", a)
			}
		})
		f.client.Impl.Delete = func(_ context.Context, path string) error {
			if path != "/alice/mnist/builds/5" {
				t.Errorf("unexpected path: %s", path)
			}
			if a := f.Actions(); len(a) != 0 {
				t.Errorf("dispatched before deletion: %v", a)
			}
			return nil
		}

		if err := f.runner.Run(context.Background(), ops.DeleteBuild("alice.mnist.builds.5", true)); err != nil {
			t.Fatal(err)
		}
		if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"DELETE_BUILD"}) {
			t.Errorf("actions: %v", a)
		}
		if l := f.history.Location(); l != "/app/alice/mnist/#builds" {
			t.Errorf("location: %s", l)
		}
	})

	t.Run("without redirect, it stays", func(t *testing.T) {
		f := newFixture(t, "/app/alice/mnist/builds")
		f.client.Impl.Delete = func(context.Context, string) error { return nil }

		if err := f.runner.Run(context.Background(), ops.DeleteBuild("alice.mnist.builds.5", false)); err != nil {
			t.Fatal(err)
		}
		if l := f.history.Location(); l != "/app/alice/mnist/builds" {
			t.Errorf("location: %s", l)
		}
	})

	t.Run("when deletion fails, nothing is dispatched", func(t *testing.T) {
		f := newFixture(t, "/app/alice/mnist/builds/5")
		f.client.Impl.Delete = func(context.Context, string) error { return errors.New("fake") }

		if err := f.runner.Run(context.Background(), ops.DeleteBuild("alice.mnist.builds.5", true)); err == nil {
			t.Fatal("no error")
		}
		if a := f.Actions(); len(a) != 0 {
			t.Errorf("actions: %v", a)
		}
		if l := f.history.Location(); l != "/app/alice/mnist/builds/5" {
			t.Errorf("location: %s", l)
		}
	})
}

func TestBuildMutations(t *testing.T) {
	f := newFixture(t, "/app")
	f.client.Impl.Post = func(context.Context, string, any) error { return nil }
	f.client.Impl.Delete = func(context.Context, string) error { return nil }

	ctx := context.Background()
	for _, op := range []ops.Operation{
		ops.StopBuild("alice.mnist.builds.5"),
		ops.BookmarkBuild("alice.mnist.builds.5"),
		ops.UnbookmarkBuild("alice.mnist.builds.5"),
	} {
		if err := f.runner.Run(ctx, op); err != nil {
			t.Fatalf("%s: %s", op.Name(), err)
		}
	}

	if p := f.client.Calls.Post; !cmp.SliceEq(p, []string{"/alice/mnist/builds/5/stop", "/alice/mnist/builds/5/bookmark"}) {
		t.Errorf("posts: %v", p)
	}
	if d := f.client.Calls.Delete; !cmp.SliceEq(d, []string{"/alice/mnist/builds/5/unbookmark"}) {
		t.Errorf("deletes: %v", d)
	}
	if a := f.Actions(); !cmp.SliceEq(a, []action.Type{"STOP_BUILD", "BOOKMARK_BUILD", "UNBOOKMARK_BUILD"}) {
		t.Errorf("actions: %v", a)
	}
}
