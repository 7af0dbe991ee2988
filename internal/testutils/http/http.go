// Fake backend for tests.
package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

// ApiRoot is the path where the fake backend serves.
const ApiRoot = "/api/v1"

// Request is a request the fake backend received.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// Backend is a fake backend server.
//
// Register handlers to Api, then send requests to URL().
type Backend struct {
	Echo *echo.Echo

	// group for paths under ApiRoot
	Api *echo.Group

	server   *httptest.Server
	mu       sync.Mutex
	requests []Request
}

// NewBackend starts a fake backend. It is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	b := &Backend{Echo: e}
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			b.mu.Lock()
			b.requests = append(b.requests, Request{
				Method:   req.Method,
				Path:     req.URL.Path,
				RawQuery: req.URL.RawQuery,
				Header:   req.Header.Clone(),
			})
			b.mu.Unlock()
			return next(c)
		}
	})
	b.Api = e.Group(ApiRoot)

	b.server = httptest.NewServer(e)
	t.Cleanup(b.server.Close)
	return b
}

// URL of the api root.
func (b *Backend) URL() string {
	return b.server.URL + ApiRoot
}

// Requests returns requests received, in order.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request{}, b.requests...)
}

// JSON is a handler responding payload with status code.
func JSON(code int, payload any) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(code, payload)
	}
}

// NoContent is a handler responding status code without body.
func NoContent(code int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(code)
	}
}
