package reservation

import "math"

// RoundCents rounds to currency precision (two decimals, half away from
// zero).
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// DiscountAmount applies a percentage to a subtotal, rounded to cents.
func DiscountAmount(subtotal, percent float64) float64 {
	return RoundCents(subtotal * percent / 100)
}
