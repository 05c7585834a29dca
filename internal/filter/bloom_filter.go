package filter

import (
	"unicode/utf16"

	"domainbloom/internal/bitmap"
)

const (
	lowMask  = 0x0000FFFF
	highMask = 0xFFFF0000
)

// bloomFilter addresses a fixed 65536-bit table with two 16-bit slices
// of a single 32-bit string hash.
type bloomFilter struct {
	bitmap bitmap.Bitmap
}

var _ Filter = (*bloomFilter)(nil)

// NewBloomFilter creates an empty bloom filter.
func NewBloomFilter() Filter {
	return &bloomFilter{
		bitmap: bitmap.NewBitmap(),
	}
}

// Add sets the bits addressed by both sub-hashes of key.
func (bf *bloomFilter) Add(key string) {
	lo, hi := subHashes(StringHash(key))
	bf.bitmap.Add(lo)
	bf.bitmap.Add(hi)
}

// MightContain reports whether both bits addressed by key are set.
func (bf *bloomFilter) MightContain(key string) bool {
	lo, hi := subHashes(StringHash(key))
	return bf.bitmap.Contains(lo) && bf.bitmap.Contains(hi)
}

// TrueBits returns the population count of the table.
func (bf *bloomFilter) TrueBits() int {
	return bf.bitmap.Count()
}

// StringHash computes s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1] over the
// UTF-16 code units of s, wrapping on int32 overflow. Invalid UTF-8 bytes
// are hashed as U+FFFD.
func StringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			h = 31*h + r1
			h = 31*h + r2
			continue
		}
		h = 31*h + r
	}
	return h
}

// subHashes splits h into its low and high 16 bits. Both are valid
// indices into a table of bitmap.NumBits bits.
func subHashes(h int32) (lo, hi uint32) {
	u := uint32(h)
	return u & lowMask, (u & highMask) >> 16
}
