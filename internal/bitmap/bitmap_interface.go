package bitmap

// Bitmap is a fixed-size set of bit indices backed by 64-bit words.
// Bits can be set but never cleared.
type Bitmap interface {
	// Add sets the bit at position i to 1 (adds i to the set).
	Add(i uint32)

	// Contains returns true if bit at position i is set (i is in the set).
	Contains(i uint32) bool

	// Count returns the number of bits set to 1.
	Count() int
}
