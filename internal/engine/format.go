package engine

import (
	"math"
	"strconv"
)

// Dollars renders an amount rounded to whole units with grouped thousands.
// NaN stays visible rather than being masked.
func Dollars(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
