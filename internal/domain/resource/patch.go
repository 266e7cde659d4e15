package resource

// Append adds item at the end.
func Append[T any](item T) Patch[T] {
	return func(items []T) []T { return append(items, item) }
}

// Prepend adds item at the front.
func Prepend[T any](item T) Patch[T] {
	return func(items []T) []T { return append([]T{item}, items...) }
}

// RemoveWhere drops every item matching pred.
func RemoveWhere[T any](pred func(T) bool) Patch[T] {
	return func(items []T) []T {
		out := items[:0:0]
		for _, it := range items {
			if !pred(it) {
				out = append(out, it)
			}
		}
		return out
	}
}

// ReplaceWhere rewrites every item matching pred with update.
func ReplaceWhere[T any](pred func(T) bool, update func(T) T) Patch[T] {
	return func(items []T) []T {
		out := make([]T, len(items))
		for i, it := range items {
			if pred(it) {
				it = update(it)
			}
			out[i] = it
		}
		return out
	}
}
