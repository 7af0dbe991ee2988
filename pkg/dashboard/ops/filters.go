package ops

import (
	"net/url"
	"strconv"

	"github.com/opst/trackboard/pkg/dashboard/navigation"
)

// ListFilter is common query for lists.
//
// Zero fields are not sent.
type ListFilter struct {
	// search expression, like "status:running"
	Query string

	// ordering, like "-created_at"
	Sort string

	Offset int
	Limit  int
}

func (f ListFilter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	if f.Offset != 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.Limit != 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

type BuildFilter struct {
	ListFilter
	Status string
}

func (f BuildFilter) Values() url.Values {
	v := f.ListFilter.Values()
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	return v
}

type ExperimentFilter struct {
	ListFilter
	Status string

	// experiment group id
	Group string

	// only experiments not in any groups.
	Independent bool
}

func (f ExperimentFilter) Values() url.Values {
	v := f.ListFilter.Values()
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Group != "" {
		v.Set("group", f.Group)
	}
	if f.Independent {
		v.Set("independent", "true")
	}
	return v
}

type ActivityLogFilter struct {
	Offset int
	Limit  int
}

func (f ActivityLogFilter) Values() url.Values {
	return ListFilter{Offset: f.Offset, Limit: f.Limit}.Values()
}

type MetricFilter struct {
	Offset int
	Limit  int
}

func (f MetricFilter) Values() url.Values {
	return ListFilter{Offset: f.Offset, Limit: f.Limit}.Values()
}

// syncLocation makes the query of the current location follow filters.
//
// With non-empty query, it moves to the location with the query.
// With empty query, it drops the query from the location if any.
func syncLocation(nav navigation.Navigator, query url.Values) {
	base, _, hasQuery := navigation.Split(nav.Location())
	if encoded := query.Encode(); encoded != "" {
		if base != "" {
			nav.Push(base + "?" + encoded)
		}
		return
	}
	if hasQuery {
		nav.Push(base)
	}
}
