package store

import (
	"github.com/opst/trackboard/pkg/dashboard/action"
)

// Status of a Container.
type Status int

const (
	// no requests have been issued.
	Idle Status = iota

	// a request has been issued and not received yet.
	InFlight

	// items have been received at least once. It can be empty.
	Populated
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in flight"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// LastFetched is the bookkeeping of the latest list received.
type LastFetched[K comparable] struct {
	Ids   []K
	Count int
}

// Container is a normalized slice of the state for an entity.
//
// Every id in the ordered sequence has its item, and vice versa.
//
// Container is a value. Reduce builds a new Container when something changes,
// so a Container once obtained never changes.
type Container[K comparable, M any] struct {
	byIds       map[K]M
	ids         []K
	lastFetched LastFetched[K]
	status      Status
}

func (c Container[K, M]) Get(id K) (M, bool) {
	m, ok := c.byIds[id]
	return m, ok
}

func (c Container[K, M]) Has(id K) bool {
	_, ok := c.byIds[id]
	return ok
}

func (c Container[K, M]) Len() int {
	return len(c.ids)
}

// Ids returns ids in known order.
func (c Container[K, M]) Ids() []K {
	return append([]K{}, c.ids...)
}

// Items returns items in known order.
func (c Container[K, M]) Items() []M {
	ret := make([]M, 0, len(c.ids))
	for _, id := range c.ids {
		ret = append(ret, c.byIds[id])
	}
	return ret
}

func (c Container[K, M]) LastFetched() LastFetched[K] {
	return LastFetched[K]{
		Ids:   append([]K{}, c.lastFetched.Ids...),
		Count: c.lastFetched.Count,
	}
}

func (c Container[K, M]) Status() Status {
	return c.status
}

func (c Container[K, M]) withStatus(s Status) Container[K, M] {
	c.status = s
	return c
}

// put inserts or replaces the item.
//
// New ids are appended to the sequence.
func (c Container[K, M]) put(id K, m M) Container[K, M] {
	byIds := make(map[K]M, len(c.byIds)+1)
	for k, v := range c.byIds {
		byIds[k] = v
	}
	ids := c.ids
	if _, ok := byIds[id]; !ok {
		ids = append(append(make([]K, 0, len(c.ids)+1), c.ids...), id)
	}
	byIds[id] = m

	c.byIds = byIds
	c.ids = ids
	return c
}

func (c Container[K, M]) remove(id K) Container[K, M] {
	if !c.Has(id) {
		return c
	}

	byIds := make(map[K]M, len(c.byIds))
	for k, v := range c.byIds {
		if k != id {
			byIds[k] = v
		}
	}
	ids := make([]K, 0, len(c.ids))
	for _, k := range c.ids {
		if k != id {
			ids = append(ids, k)
		}
	}

	c.byIds = byIds
	c.ids = ids
	return c
}

// Kind tells how items of an entity are stored and mutated.
type Kind[K comparable, M any] struct {
	Entity action.Entity

	// Key gives id of the item.
	Key func(M) K

	// Stop gives a stopped copy of the item. nil if the entity cannot be stopped.
	Stop func(M) M

	// Bookmark gives a (un)bookmarked copy of the item. nil if the entity cannot be bookmarked.
	Bookmark func(M, bool) M
}

// Empty is a Container before any requests.
func (k Kind[K, M]) Empty() Container[K, M] {
	return Container[K, M]{byIds: map[K]M{}, ids: []K{}}
}

// Reduce folds an action into the container.
//
// Actions for other entities are ignored, and the given container is returned as is.
func (k Kind[K, M]) Reduce(c Container[K, M], a action.Action) Container[K, M] {
	if a.Subject() != k.Entity {
		return c
	}

	switch a := a.(type) {
	case action.Requested:
		return c.withStatus(InFlight)

	case action.ReceivedMany[M]:
		return k.replaceAll(a.Items, a.Count)

	case action.Received[M]:
		return c.put(k.Key(a.Item), a.Item).withStatus(Populated)

	case action.Created[M]:
		return c.put(k.Key(a.Item), a.Item).withStatus(Populated)

	case action.Updated[M]:
		id := k.Key(a.Item)
		if !c.Has(id) {
			return c
		}
		return c.put(id, a.Item)

	case action.Deleted[K]:
		return c.remove(a.Id)

	case action.Stopped[K]:
		m, ok := c.Get(a.Id)
		if !ok || k.Stop == nil {
			return c
		}
		return c.put(a.Id, k.Stop(m))

	case action.Bookmarked[K]:
		m, ok := c.Get(a.Id)
		if !ok || k.Bookmark == nil {
			return c
		}
		return c.put(a.Id, k.Bookmark(m, a.Bookmarked))
	}

	return c
}

// replaceAll builds a container holding exactly items.
//
// When ids collide, the latter item wins and keeps the position of the former.
func (k Kind[K, M]) replaceAll(items []M, count int) Container[K, M] {
	byIds := make(map[K]M, len(items))
	ids := make([]K, 0, len(items))
	for _, m := range items {
		id := k.Key(m)
		if _, ok := byIds[id]; !ok {
			ids = append(ids, id)
		}
		byIds[id] = m
	}

	return Container[K, M]{
		byIds: byIds,
		ids:   ids,
		lastFetched: LastFetched[K]{
			Ids:   append([]K{}, ids...),
			Count: count,
		},
		status: Populated,
	}
}
