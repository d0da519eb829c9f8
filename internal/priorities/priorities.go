// Package priorities holds the dashboard's daily priority checklist.
package priorities

// Priority is one checklist entry.
type Priority struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CompletionRate is the percentage of completed entries, 0 for an empty list.
func CompletionRate(list []Priority) float64 {
	if len(list) == 0 {
		return 0
	}
	done := 0
	for _, p := range list {
		if p.Completed {
			done++
		}
	}
	return float64(done) / float64(len(list)) * 100
}
