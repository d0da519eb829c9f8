package engine

// Band pairs a lower bound with a payload. Band tables are ordered from the
// highest threshold down; Pick returns the first band the value clears.
// Both the task generator and the roadmap projection select canned content
// this way, so the lookup lives in one place.
type Band[T any] struct {
	Above float64
	Value T
}

// Pick returns the payload of the first band with value > Above.
func Pick[T any](bands []Band[T], value float64) (T, bool) {
	for _, b := range bands {
		if value > b.Above {
			return b.Value, true
		}
	}
	var zero T
	return zero, false
}
