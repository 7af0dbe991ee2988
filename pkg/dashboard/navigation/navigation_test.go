package navigation_test

import (
	"testing"

	"github.com/opst/trackboard/pkg/cmp"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
)

func TestSplit(t *testing.T) {
	type Then struct {
		base     string
		query    string
		hasQuery bool
	}

	theory := func(when string, then Then) func(*testing.T) {
		return func(t *testing.T) {
			base, query, hasQuery := navigation.Split(when)
			if base != then.base || query != then.query || hasQuery != then.hasQuery {
				t.Errorf(
					"unexpected: (base, query, hasQuery) = (%s, %s, %v), want (%s, %s, %v)",
					base, query, hasQuery, then.base, then.query, then.hasQuery,
				)
			}
		}
	}

	t.Run("without query", theory("/app/alice/mnist/builds", Then{base: "/app/alice/mnist/builds"}))
	t.Run("with query", theory(
		"/app/alice/mnist/builds?status=running",
		Then{base: "/app/alice/mnist/builds", query: "status=running", hasQuery: true},
	))
	t.Run("with empty query", theory(
		"/app/alice/mnist/builds?",
		Then{base: "/app/alice/mnist/builds", hasQuery: true},
	))
}

func TestHistory(t *testing.T) {
	heard := []string{}
	testee := navigation.NewHistory(
		"/app",
		navigation.WithListener(func(l string) { heard = append(heard, l) }),
	)

	if l := testee.Location(); l != "/app" {
		t.Errorf("initial location: %s", l)
	}

	testee.Push("/app/alice/mnist/")
	testee.Push(navigation.LoginPath)

	if l := testee.Location(); l != "/users/login" {
		t.Errorf("location: %s", l)
	}
	if e := testee.Entries(); !cmp.SliceEq(e, []string{"/app", "/app/alice/mnist/", "/users/login"}) {
		t.Errorf("entries: %v", e)
	}
	if !cmp.SliceEq(heard, []string{"/app/alice/mnist/", "/users/login"}) {
		t.Errorf("listener: %v", heard)
	}
}
