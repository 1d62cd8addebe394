package utils

import "math"

// RoundWithTwoDecimalPlace rounds to two decimals, matching the ROUND(x, 2)
// the metric queries apply in SQL.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
