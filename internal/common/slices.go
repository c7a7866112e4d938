package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// FirstWhere returns the first element satisfying pred, preserving slice order.
func FirstWhere[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	for _, e := range s {
		if pred(e) {
			return e, true
		}
	}

	var zero E

	return zero, false
}
