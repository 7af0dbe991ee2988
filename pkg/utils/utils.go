package utils

// ApplyAll applies modifiers to value in order, and returns the result.
func ApplyAll[T any, F ~func(*T) *T](value *T, modifier ...F) *T {
	for _, mod := range modifier {
		value = mod(value)
	}
	return value
}

// Map returns mapper(v) for each v in sli, in order.
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}
