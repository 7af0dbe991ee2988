package bookmarks

import "github.com/opst/trackboard/pkg/utils/rfctime"

// Bookmark relates a user and an object bookmarked by the user.
//
// The bookmarked object is carried inline as ContentObject.
type Bookmark[T any] struct {
	Id            int             `json:"id"`
	User          string          `json:"user"`
	ContentObject T               `json:"content_object"`
	CreatedAt     rfctime.RFC3339 `json:"created_at"`
}

// Contents unwraps bookmarks into bookmarked objects, keeping order.
func Contents[T any](bms []Bookmark[T]) []T {
	ret := make([]T, 0, len(bms))
	for _, bm := range bms {
		ret = append(ret, bm.ContentObject)
	}
	return ret
}
