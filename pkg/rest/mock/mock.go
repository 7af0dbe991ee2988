package mock

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
)

type GetArgs struct {
	Path  string
	Query url.Values
}

// ErrNotReady is returned by a method of MockClient whose Impl is not set.
var ErrNotReady = errors.New("mock: not ready to be called")

func New(t testing.TB) *MockClient {
	return &MockClient{t: t}
}

// MockClient is rest.Client for tests.
//
// Each method records its arguments in Calls, then calls Impl.
// When Impl is not set, the test fails and the method returns ErrNotReady.
// It does not stop the test, so methods can be called from any goroutine.
type MockClient struct {
	t  testing.TB
	mu sync.Mutex

	Impl struct {
		Get    func(ctx context.Context, path string, query url.Values, v any) error
		Post   func(ctx context.Context, path string, v any) error
		Delete func(ctx context.Context, path string) error
	}

	Calls struct {
		Get    []GetArgs
		Post   []string
		Delete []string
	}
}

func (m *MockClient) Get(ctx context.Context, path string, query url.Values, v any) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Get = append(m.Calls.Get, GetArgs{Path: path, Query: query})
	m.mu.Unlock()

	if m.Impl.Get == nil {
		m.t.Error("Get is not ready to be called")
		return ErrNotReady
	}
	return m.Impl.Get(ctx, path, query, v)
}

func (m *MockClient) Post(ctx context.Context, path string, v any) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Post = append(m.Calls.Post, path)
	m.mu.Unlock()

	if m.Impl.Post == nil {
		m.t.Error("Post is not ready to be called")
		return ErrNotReady
	}
	return m.Impl.Post(ctx, path, v)
}

func (m *MockClient) Delete(ctx context.Context, path string) error {
	m.t.Helper()

	m.mu.Lock()
	m.Calls.Delete = append(m.Calls.Delete, path)
	m.mu.Unlock()

	if m.Impl.Delete == nil {
		m.t.Error("Delete is not ready to be called")
		return ErrNotReady
	}
	return m.Impl.Delete(ctx, path)
}

// Respond puts payload into v, as if the backend responded with payload.
func Respond(v any, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}
