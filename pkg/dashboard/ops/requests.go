package ops

import (
	"context"
	"net/url"

	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/lists"
	"github.com/opst/trackboard/pkg/dashboard/action"
)

// fetchList dispatches request, fetches a page and dispatches receive for it.
//
// If sync is true, the current location follows query before fetching.
func fetchList[M any](
	ctx context.Context, rt Runtime,
	path string, query url.Values, sync bool,
	request action.Action, receive func([]M, int) action.Action,
) error {
	rt.Dispatch(request)
	if sync {
		syncLocation(rt.Navigator(), query)
	}

	page := lists.Page[M]{}
	if err := rt.Client().Get(ctx, path, query, &page); err != nil {
		return err
	}
	rt.Dispatch(receive(page.Results, page.Count))
	return nil
}

// fetchBookmarks fetches a page of bookmarks, and dispatches receive for the bookmarked items.
func fetchBookmarks[M any](
	ctx context.Context, rt Runtime,
	path string, query url.Values,
	request action.Action, receive func([]bookmarks.Bookmark[M], int) action.Action,
) error {
	return fetchList(ctx, rt, path, query, true, request, receive)
}

// fetchOne dispatches request, fetches an item and dispatches receive for it.
func fetchOne[M any](
	ctx context.Context, rt Runtime,
	path string,
	request action.Action, receive func(M) action.Action,
) error {
	rt.Dispatch(request)

	var item M
	if err := rt.Client().Get(ctx, path, nil, &item); err != nil {
		return err
	}
	rt.Dispatch(receive(item))
	return nil
}

// post sends POST request to path, then dispatches done.
func post(ctx context.Context, rt Runtime, path string, done action.Action) error {
	if err := rt.Client().Post(ctx, path, nil); err != nil {
		return err
	}
	rt.Dispatch(done)
	return nil
}

// del sends DELETE request to path, then dispatches done.
func del(ctx context.Context, rt Runtime, path string, done action.Action) error {
	if err := rt.Client().Delete(ctx, path); err != nil {
		return err
	}
	rt.Dispatch(done)
	return nil
}
