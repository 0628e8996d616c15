// Package filterx implements the optional-equality filters used by list
// endpoints. A nil filter matches everything; set filters combine with AND.
package filterx

// Match reports whether got satisfies an optional equality filter.
// A nil want is vacuously true.
func Match[T comparable](want *T, got T) bool {
	return want == nil || *want == got
}

// Apply returns the elements of items for which every predicate holds.
// The input order is preserved.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, p := range preds {
			if !p(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}
