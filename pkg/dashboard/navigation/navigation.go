// Navigation: where the user is looking at.
//
// Locations are paths with optional query, like "/app/alice/mnist/#builds" or
// "/app/alice/mnist/builds?status=running".
package navigation

import (
	"strings"
	"sync"

	"github.com/opst/trackboard/pkg/utils"
)

// LoginPath is the location to authenticate users.
const LoginPath = "/users/login"

type Navigator interface {
	// Location returns the current location.
	Location() string

	// Push moves to the location.
	Push(location string)
}

// Split splits location into the part before "?" and the query after it.
//
// hasQuery is true when location contains "?", even if query is empty.
func Split(location string) (base string, query string, hasQuery bool) {
	return strings.Cut(location, "?")
}

// History is an in-memory Navigator.
//
// History is safe for concurrent use.
type History struct {
	mu        sync.Mutex
	entries   []string
	listeners []func(string)
}

type Option func(*History) *History

// WithListener registers a function called on each Push with the new location.
func WithListener(l func(location string)) Option {
	return func(h *History) *History {
		h.listeners = append(h.listeners, l)
		return h
	}
}

// NewHistory creates History starting at location.
func NewHistory(location string, options ...Option) *History {
	return utils.ApplyAll(&History{entries: []string{location}}, options...)
}

func (h *History) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

func (h *History) Push(location string) {
	h.mu.Lock()
	h.entries = append(h.entries, location)
	listeners := h.listeners
	h.mu.Unlock()

	for _, l := range listeners {
		l(location)
	}
}

// Entries returns all locations visited, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.entries...)
}
