package lists

// Page is the envelope of list endpoints.
//
// Count is the total number of items matching the query on the backend,
// not len(Results).
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether the backend has a further page.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}
