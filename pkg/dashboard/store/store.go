package store

import (
	"slices"
	"sync"

	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/utils"
)

// Reducer folds an action into a state. It should be pure.
type Reducer func(State, action.Action) State

// Store holds the current State and notifies subscribers on changes.
//
// Store is safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	state       State
	reduce      Reducer
	subscribers map[int]func(State)
	nextId      int
}

type Option func(*Store) *Store

// WithState replaces the initial state.
func WithState(s State) Option {
	return func(st *Store) *Store {
		st.state = s
		return st
	}
}

// WithReducer replaces the reducer.
func WithReducer(r Reducer) Option {
	return func(st *Store) *Store {
		st.reduce = r
		return st
	}
}

func New(options ...Option) *Store {
	return utils.ApplyAll(
		&Store{
			state:       Initial(),
			reduce:      Reduce,
			subscribers: map[int]func(State){},
		},
		options...,
	)
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces the action into the state, then notifies subscribers.
//
// Subscribers are called outside the lock, so they can Dispatch in turn.
// When Dispatch is called concurrently, a subscriber may see states out of order;
// compare State.Revision to detect it.
//
// It returns the given action.
func (s *Store) Dispatch(a action.Action) action.Action {
	s.mu.Lock()
	s.state = s.reduce(s.state, a)
	state := s.state
	subs := make([]func(State), 0, len(s.subscribers))
	for _, id := range sortedIds(s.subscribers) {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
	return a
}

// Subscribe registers fn to be called after each Dispatch.
//
// Subscribers are called in the order of subscription.
//
// Call the returned function to unsubscribe. It is safe to call it twice.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextId
	s.nextId += 1
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func sortedIds(m map[int]func(State)) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
