package pairwise

import "math"

// Phi computes the phi coefficient from a 2x2 presence contingency table.
//
//	phi = (n11*n00 - n10*n01) / sqrt((n11+n10)(n01+n00)(n11+n01)(n10+n00))
//
// Where n11 counts groups containing both items, n10/n01 groups containing
// exactly one, and n00 groups containing neither. Returns ok = false when
// the denominator is zero, which happens exactly when an item is present in
// zero groups or in all groups.
func Phi(n11, n10, n01, n00 int64) (phi float64, ok bool) {
	a := float64(n11 + n10)
	b := float64(n01 + n00)
	c := float64(n11 + n01)
	d := float64(n10 + n00)

	denom := math.Sqrt(a * b * c * d)
	if denom == 0 {
		return 0, false
	}
	num := float64(n11)*float64(n00) - float64(n10)*float64(n01)
	return num / denom, true
}

// PhiFromCounts derives the contingency table for a pair from a counter and
// computes its phi coefficient.
func PhiFromCounts(c *Counter, a, b string) (phi float64, ok bool) {
	n11 := c.PairCount(a, b)
	n10 := c.ItemCount(a) - n11
	n01 := c.ItemCount(b) - n11
	n00 := c.G - n11 - n10 - n01
	return Phi(n11, n10, n01, n00)
}
