package aggregate

import "math"

// roundTo rounds v to the given number of decimal places, halves away from zero
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// percentage returns part/total*100 rounded to the nearest integer, or 0 when total is 0
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
