// Views bound to the store.
//
// A Connected view selects a slice of the state, renders it, and renders again
// only when the slice changes. On mount, it fetches what it shows unless the
// store already has it.
package view

import (
	"context"
	"sync"

	"github.com/opst/trackboard/pkg/dashboard/ops"
	"github.com/opst/trackboard/pkg/dashboard/store"
)

// Backend is where views get states from and run operations on.
//
// *ops.Runner is a Backend.
type Backend interface {
	Store() *store.Store
	Run(ctx context.Context, op ops.Operation) error
}

// Binding tells how a view is bound to the store.
type Binding[S any] struct {
	// Select picks the slice of the state which the view shows.
	Select func(store.State) S

	// Equal tells whether two slices look the same.
	Equal func(a, b S) bool

	// Resolved tells the slice has enough to be shown without fetching.
	//
	// If nil, the view always fetches on mount.
	Resolved func(S) bool

	// Fetch is run on mount to fill the slice. If nil, nothing is fetched.
	Fetch ops.Operation
}

type Connected[S any] struct {
	binding Binding[S]
	render  func(S)

	mu          sync.Mutex
	unsubscribe func()
	rendered    bool
	revision    uint64
	last        S
}

// Connect creates a view which calls render with the selected slice.
//
// render is called with the view's lock held, so it must not dispatch
// actions synchronously. render can be nil for views only read by Current.
func Connect[S any](binding Binding[S], render func(S)) *Connected[S] {
	return &Connected[S]{binding: binding, render: render}
}

// Mount starts rendering.
//
// It renders the current slice, and runs Fetch unless the slice is resolved.
// The error of Fetch is returned. Mounting a mounted view does nothing.
func (c *Connected[S]) Mount(ctx context.Context, b Backend) error {
	st := b.Store()

	c.mu.Lock()
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return nil
	}
	c.rendered = false
	c.unsubscribe = st.Subscribe(c.update)
	c.mu.Unlock()

	state := st.State()
	c.update(state)

	if c.binding.Fetch == nil {
		return nil
	}
	if c.binding.Resolved != nil && c.binding.Resolved(c.binding.Select(state)) {
		return nil
	}
	return b.Run(ctx, c.binding.Fetch)
}

// Unmount stops rendering.
func (c *Connected[S]) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
}

// Current returns the slice rendered last, and whether anything is rendered.
func (c *Connected[S]) Current() (S, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.rendered
}

func (c *Connected[S]) update(state store.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubscribe == nil {
		return
	}
	if c.rendered && state.Revision < c.revision {
		// notified out of order. a newer state has been rendered already.
		return
	}
	c.revision = state.Revision

	slice := c.binding.Select(state)
	if c.rendered && c.binding.Equal(c.last, slice) {
		return
	}
	c.last = slice
	c.rendered = true
	if c.render != nil {
		c.render(slice)
	}
}
