package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceSlice treats an empty slice like an absent field.
func CoalesceSlice[T any](s []T, fallback []T) []T {
	if len(s) > 0 {
		return s
	}
	return fallback
}

// AnySet reports whether at least one optional field of a partial update was supplied.
func AnySet(fields ...bool) bool {
	for _, f := range fields {
		if f {
			return true
		}
	}
	return false
}
