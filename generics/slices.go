package generics

// ── First / Last ─────────────────────────────────────────────────────────────
// `var zero T` is the idiomatic "nothing" for a type parameter; the bool tells
// an empty slice apart from a slice whose element happens to be the zero value.

func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}
