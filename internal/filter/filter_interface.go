package filter

// Filter answers "has this key possibly been added before?".
// It can definitively say a key was NOT added, but can only say a key
// MIGHT have been added (false positives possible, false negatives not).
//
// A Filter is not safe for concurrent use. Callers sharing one across
// goroutines must guard Add with a write lock and the other methods with
// at least a read lock.
type Filter interface {
	// Add records key. Adding the same key again has no effect.
	Add(key string)

	// MightContain returns true if key might have been added.
	// Returns false if key was definitely never added.
	MightContain(key string) bool

	// TrueBits returns the number of bits set in the table.
	TrueBits() int
}
