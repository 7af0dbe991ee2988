// Action records: what happened to which entity.
//
// Records are plain values. Each Type() is a tag like "RECEIVE_BUILDS",
// composed of a verb and the entity name (pluralized for list-wide events).
package action

import "fmt"

// Entity names a slice of the dashboard state.
type Entity string

const (
	Build         Entity = "BUILD"
	Experiment    Entity = "EXPERIMENT"
	ExperimentJob Entity = "EXPERIMENT_JOB"
	ActivityLog   Entity = "ACTIVITY_LOG"
	Metric        Entity = "METRIC"
)

func (e Entity) plural() string {
	return string(e) + "S"
}

// Type is a tag of Action.
type Type string

type Action interface {
	Type() Type

	// Subject is the entity this action is about.
	Subject() Entity
}

// Requested tells a request for the entity has been issued.
type Requested struct {
	Entity Entity

	// true when a list is requested.
	Many bool
}

func (a Requested) Type() Type {
	if a.Many {
		return Type("REQUEST_" + a.Entity.plural())
	}
	return Type("REQUEST_" + string(a.Entity))
}

func (a Requested) Subject() Entity { return a.Entity }

// Created tells Item has been created.
type Created[M any] struct {
	Entity Entity
	Item   M
}

func (a Created[M]) Type() Type      { return Type("CREATE_" + string(a.Entity)) }
func (a Created[M]) Subject() Entity { return a.Entity }

// Updated carries a full replacement record.
type Updated[M any] struct {
	Entity Entity
	Item   M
}

func (a Updated[M]) Type() Type      { return Type("UPDATE_" + string(a.Entity)) }
func (a Updated[M]) Subject() Entity { return a.Entity }

// Received tells Item has been fetched.
type Received[M any] struct {
	Entity Entity
	Item   M
}

func (a Received[M]) Type() Type      { return Type("RECEIVE_" + string(a.Entity)) }
func (a Received[M]) Subject() Entity { return a.Entity }

// ReceivedMany tells a list has been fetched.
//
// Count is the total number of items on the backend, for pagination.
type ReceivedMany[M any] struct {
	Entity Entity
	Items  []M
	Count  int
}

func (a ReceivedMany[M]) Type() Type      { return Type("RECEIVE_" + a.Entity.plural()) }
func (a ReceivedMany[M]) Subject() Entity { return a.Entity }

// Deleted tells the item identified by Id has been deleted.
type Deleted[K comparable] struct {
	Entity Entity
	Id     K
}

func (a Deleted[K]) Type() Type      { return Type("DELETE_" + string(a.Entity)) }
func (a Deleted[K]) Subject() Entity { return a.Entity }

// Stopped tells the item identified by Id has been stopped.
type Stopped[K comparable] struct {
	Entity Entity
	Id     K
}

func (a Stopped[K]) Type() Type      { return Type("STOP_" + string(a.Entity)) }
func (a Stopped[K]) Subject() Entity { return a.Entity }

// Bookmarked tells the item identified by Id has been (un)bookmarked.
type Bookmarked[K comparable] struct {
	Entity     Entity
	Id         K
	Bookmarked bool
}

func (a Bookmarked[K]) Type() Type {
	if a.Bookmarked {
		return Type("BOOKMARK_" + string(a.Entity))
	}
	return Type("UNBOOKMARK_" + string(a.Entity))
}

func (a Bookmarked[K]) Subject() Entity { return a.Entity }

func (t Type) String() string {
	return string(t)
}

// Describe gives a one-line description of the action for logging.
func Describe(a Action) string {
	if l, ok := a.(interface{ Len() int }); ok {
		return fmt.Sprintf("%s (%d items)", a.Type(), l.Len())
	}
	return a.Type().String()
}

func (a ReceivedMany[M]) Len() int { return len(a.Items) }
