package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/opst/trackboard/cmd/trackboard/env"
	"github.com/opst/trackboard/pkg/dashboard/store"
	"github.com/opst/trackboard/pkg/dashboard/view"
	"github.com/youta-t/flarc"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// Listing is a list printed by commands.
type Listing[T any] struct {
	// total number of items on the backend
	Count int `json:"count"`
	Items []T `json:"items"`
}

// Show mounts v, and returns what v renders after fetching.
func Show[S any](ctx context.Context, backend view.Backend, v *view.Connected[S]) (S, error) {
	defer v.Unmount()
	if err := v.Mount(ctx, backend); err != nil {
		return *new(S), err
	}
	s, _ := v.Current()
	return s, nil
}

// ShowList is Show for list views.
func ShowList[M interface{ Equal(M) bool }](
	ctx context.Context, backend view.Backend, v *view.Connected[view.List[M]],
) (Listing[M], error) {
	l, err := Show(ctx, backend, v)
	if err != nil {
		return Listing[M]{}, err
	}
	items := l.Items
	if items == nil {
		items = []M{}
	}
	return Listing[M]{Count: l.Count, Items: items}, nil
}

var ErrNoProject = fmt.Errorf("%w: project is not specified", flarc.ErrUsage)

// ProjectOf returns the project unique name passed as the argument,
// or the default one in trackboardenv.
func ProjectOf(args map[string][]string, name string, e env.TrackboardEnv) (string, error) {
	if vs := args[name]; 0 < len(vs) && vs[0] != "" {
		return vs[0], nil
	}
	if p := e.ProjectName(); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("%w. pass %s or set user and project in trackboardenv", ErrNoProject, name)
}

var ErrNotFound = errors.New("not found")

// ListingOf is the list in c, in fetched order.
func ListingOf[K comparable, M any](c store.Container[K, M]) Listing[M] {
	items := c.Items()
	if items == nil {
		items = []M{}
	}
	return Listing[M]{Count: c.LastFetched().Count, Items: items}
}
