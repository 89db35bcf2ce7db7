package utils

// FilterSlice maps every element through fn and keeps the results fn
// approves.
func FilterSlice[T any, R any](in []T, fn func(T) (R, bool)) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		if r, ok := fn(item); ok {
			out = append(out, r)
		}
	}
	return out
}
