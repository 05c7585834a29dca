package filter

import "domainbloom/internal/bitmap"

// FillRatio returns the fraction of table bits that are set.
func FillRatio(f Filter) float64 {
	return float64(f.TrueBits()) / float64(bitmap.NumBits)
}

// EstimatedFalsePositiveRate approximates the chance that a key never added
// lands on two set bits, treating both sub-hashes as uniform.
func EstimatedFalsePositiveRate(f Filter) float64 {
	r := FillRatio(f)
	return r * r
}
