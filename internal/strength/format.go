package strength

import (
	"math"
	"strconv"
)

var timeUnits = []struct {
	divisor float64
	next    string
}{
	{60, "m"},
	{60, "h"},
	{24, "d"},
	{365, "y"},
}

// FormatSeconds renders a duration in the largest unit it reaches, with one decimal.
// Units cascade s, m, h, d, y; years are never divided further.
// Non-finite or non-positive values render as "instant".
func FormatSeconds(seconds float64) string {
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) || seconds <= 0 {
		return "instant"
	}

	value := seconds
	label := "s"
	for _, unit := range timeUnits {
		if value < unit.divisor {
			break
		}
		value /= unit.divisor
		label = unit.next
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + label
}
