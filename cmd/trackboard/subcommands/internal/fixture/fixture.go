// Runners on mock clients for command tests.
package fixture

import (
	"testing"

	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/session"
	"github.com/opst/trackboard/pkg/dashboard/store"
	"github.com/opst/trackboard/pkg/rest/mock"
	"github.com/opst/trackboard/pkg/utils/logger"
)

type Fixture struct {
	Client  *mock.MockClient
	History *navigation.History
	Session *session.Session
	Runner  *ops.Runner
}

func New(t *testing.T, location string) *Fixture {
	f := &Fixture{
		Client:  mock.New(t),
		History: navigation.NewHistory(location),
		Session: session.New("tkn", "csrf"),
	}
	f.Runner = ops.NewRunner(
		f.Client, store.New(), f.History,
		ops.WithLogger(logger.Null()),
		ops.WithAuthErrorHandler(session.RedirectToLogin(f.Session, f.History, logger.Null())),
	)
	return f
}
