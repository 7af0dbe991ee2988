package cmp

type BiPredicator[V any, U any] func(a V, b U) bool

// a == b as BiPredicator function
func EqEq[T comparable](a, b T) bool {
	return a == b
}

func SliceEq[T comparable](a []T, b []T) bool {
	return SliceEqWith(a, b, EqEq[T])
}

// check 2 slices have equivarent elements in same order.
func SliceEqWith[T any, U any](a []T, b []U, pred func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}

	return true
}

// check 2 slice has equivarent content but its ordering.
//
// In other words, this function answers equivalence of two bags (or multi-sets).
//
// example:
//
//	SliceContentEqWith([]string{"a", "b", "c"}, []string{"c", "b", "a"}, EqEq[string])       // ==> true
//	SliceContentEqWith([]string{"a", "b", "c", "c"}, []string{"a", "b", "c"}, EqEq[string])  // ==> false
func SliceContentEqWith[S, T any](a []S, b []T, equiv BiPredicator[S, T]) bool {
	if len(a) != len(b) {
		return false
	}

	rest := make([]*T, len(b))
	for i := range b {
		rest[i] = &b[i]
	}

NEXT_A:
	for _, va := range a {
		for k, vb := range rest {
			if equiv(va, *vb) {
				rest = append(rest[:k], rest[k+1:]...)
				continue NEXT_A
			}
		}
		return false
	}

	return len(rest) == 0
}
