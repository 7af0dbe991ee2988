package mock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/opst/trackboard/pkg/rest/mock"
	"golang.org/x/sync/errgroup"
)

// reportingTB records errors instead of failing the test.
type reportingTB struct {
	testing.TB

	mu     sync.Mutex
	errors []string
}

func (r *reportingTB) Helper() {}

func (r *reportingTB) Error(args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, "error")
}

func TestMockClient_NotReady(t *testing.T) {
	tb := &reportingTB{TB: t}
	testee := mock.New(tb)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error { return testee.Get(ctx, "/builds", nil, nil) })
	eg.Go(func() error { return testee.Post(ctx, "/builds/1/stop", nil) })
	eg.Go(func() error { return testee.Delete(ctx, "/builds/1") })

	if err := eg.Wait(); !errors.Is(err, mock.ErrNotReady) {
		t.Errorf("unexpected error: %v", err)
	}
	if len(tb.errors) != 3 {
		t.Errorf("errors are not reported: %v", tb.errors)
	}
	if len(testee.Calls.Get) != 1 || len(testee.Calls.Post) != 1 || len(testee.Calls.Delete) != 1 {
		t.Errorf("calls are not recorded: %+v", testee.Calls)
	}
}
