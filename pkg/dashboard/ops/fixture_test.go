package ops_test

import (
	"sync"
	"testing"

	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/session"
	"github.com/opst/trackboard/pkg/dashboard/store"
	"github.com/opst/trackboard/pkg/rest/mock"
	"github.com/opst/trackboard/pkg/utils/logger"
)

type fixture struct {
	client  *mock.MockClient
	history *navigation.History
	session *session.Session
	store   *store.Store
	runner  *ops.Runner

	mu      sync.Mutex
	actions []action.Type
}

func newFixture(t *testing.T, location string, listeners ...func(string)) *fixture {
	f := &fixture{
		client:  mock.New(t),
		session: session.New("tkn", "csrf"),
	}

	options := []navigation.Option{}
	for _, l := range listeners {
		options = append(options, navigation.WithListener(l))
	}
	f.history = navigation.NewHistory(location, options...)

	f.store = store.New(store.WithReducer(func(s store.State, a action.Action) store.State {
		f.mu.Lock()
		f.actions = append(f.actions, a.Type())
		f.mu.Unlock()
		return store.Reduce(s, a)
	}))

	f.runner = ops.NewRunner(
		f.client, f.store, f.history,
		ops.WithLogger(logger.Null()),
		ops.WithAuthErrorHandler(session.RedirectToLogin(f.session, f.history, logger.Null())),
	)
	return f
}

func (f *fixture) Actions() []action.Type {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]action.Type{}, f.actions...)
}
