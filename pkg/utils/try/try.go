// Shorthands for (value, error) pairs in tests and main functions.
package try

// Fataler is something like *testing.T or *log.Logger.
type Fataler interface {
	Fatal(...any)
}

// Either is a (value, error) pair.
//
// It is "ok" when error is nil.
type Either[T any] interface {
	Get() (T, error)

	// OrFatal returns the value if ok. Otherwise, it calls ftl.Fatal(err).
	//
	// If ftl has Helper method, like *testing.T, it is called before Fatal.
	OrFatal(ftl Fataler) T

	// OrDefault returns the value if ok, or d.
	OrDefault(d T) T
}

func To[T any](value T, err error) Either[T] {
	return either[T]{value: value, err: err}
}

type either[T any] struct {
	value T
	err   error
}

func (e either[T]) Get() (T, error) {
	if e.err != nil {
		return *new(T), e.err
	}
	return e.value, nil
}

func (e either[T]) OrDefault(d T) T {
	if e.err != nil {
		return d
	}
	return e.value
}

func (e either[T]) OrFatal(ftl Fataler) T {
	if e.err == nil {
		return e.value
	}
	if hlp, ok := ftl.(interface{ Helper() }); ok {
		hlp.Helper()
	}
	ftl.Fatal(e.err)
	return *new(T)
}
