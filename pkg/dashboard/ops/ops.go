// Operations against the backend, feeding the store.
//
// An Operation issues requests with the client of Runtime, and dispatches
// actions describing what has happened. Read operations dispatch a request
// action first, then a receive action on success. Nothing is dispatched
// after a failed request.
package ops

import (
	"context"
	"errors"
	"log"

	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
	"github.com/opst/trackboard/pkg/dashboard/session"
	"github.com/opst/trackboard/pkg/dashboard/store"
	"github.com/opst/trackboard/pkg/rest"
	"github.com/opst/trackboard/pkg/utils"
	"github.com/opst/trackboard/pkg/utils/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Runtime is what operations can use.
type Runtime interface {
	Client() rest.Client

	// Dispatch reduces the action into the state. It returns the given action.
	Dispatch(action.Action) action.Action

	Navigator() navigation.Navigator

	State() store.State
}

type Operation interface {
	// Name of the operation, for logs and traces.
	Name() string

	Run(ctx context.Context, rt Runtime) error
}

type operation struct {
	name string
	run  func(context.Context, Runtime) error
}

func (o operation) Name() string {
	return o.name
}

func (o operation) Run(ctx context.Context, rt Runtime) error {
	return o.run(ctx, rt)
}

// New creates an Operation from a function.
func New(name string, run func(ctx context.Context, rt Runtime) error) Operation {
	return operation{name: name, run: run}
}

// All creates an Operation running all ops concurrently.
//
// It fails when any of ops fails; the first error is returned
// and contexts of other ops are cancelled.
func All(name string, ops ...Operation) Operation {
	return New(name, func(ctx context.Context, rt Runtime) error {
		eg, ctx := errgroup.WithContext(ctx)
		for _, op := range ops {
			eg.Go(func() error { return op.Run(ctx, rt) })
		}
		return eg.Wait()
	})
}

// Runner runs operations against a store.
type Runner struct {
	client      rest.Client
	store       *store.Store
	nav         navigation.Navigator
	onAuthError session.AuthErrorHandler
	logger      *log.Logger
	tracer      trace.Tracer
}

type RunnerOption func(*Runner) *Runner

func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) *Runner {
		r.logger = l
		return r
	}
}

// WithAuthErrorHandler sets a handler called when the backend rejects credentials.
func WithAuthErrorHandler(h session.AuthErrorHandler) RunnerOption {
	return func(r *Runner) *Runner {
		r.onAuthError = h
		return r
	}
}

func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) *Runner {
		r.tracer = t
		return r
	}
}

func NewRunner(client rest.Client, st *store.Store, nav navigation.Navigator, options ...RunnerOption) *Runner {
	return utils.ApplyAll(
		&Runner{
			client: client,
			store:  st,
			nav:    nav,
			logger: logger.Null(),
			tracer: otel.Tracer("github.com/opst/trackboard/pkg/dashboard/ops"),
		},
		options...,
	)
}

func (r *Runner) Client() rest.Client {
	return r.client
}

func (r *Runner) Dispatch(a action.Action) action.Action {
	return r.store.Dispatch(a)
}

func (r *Runner) Navigator() navigation.Navigator {
	return r.nav
}

func (r *Runner) State() store.State {
	return r.store.State()
}

func (r *Runner) Store() *store.Store {
	return r.store
}

// Run runs the operation.
//
// Requests sent by the operation share a request id.
// When the backend rejects credentials, the auth error handler is called
// before the error is returned.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	ctx, rid := rest.WithRequestId(ctx)
	ctx, span := r.tracer.Start(
		ctx, op.Name(),
		trace.WithAttributes(attribute.String("trackboard.request_id", rid)),
	)
	defer span.End()

	err := op.Run(ctx, r)
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, op.Name()+" failed")

	if errors.Is(err, rest.ErrUnauthorized) {
		if r.onAuthError != nil {
			r.onAuthError(ctx, err)
		}
		return err
	}

	r.logger.Printf("%s failed (request id: %s): %s", op.Name(), rid, err)
	return err
}
