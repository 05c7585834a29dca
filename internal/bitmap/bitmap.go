package bitmap

import (
	"fmt"
	"math/bits"
)

const (
	WordBits = 64                  // bits per word
	NumWords = 1024                // words in the table
	NumBits  = NumWords * WordBits // 65536
)

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	words [NumWords]uint64
}

var _ Bitmap = (*bitmapImpl)(nil)

// NewBitmap creates a bitmap of NumBits bits, all initialized to 0.
func NewBitmap() Bitmap {
	return &bitmapImpl{}
}

// locate returns the word holding bit i and the mask selecting it.
func locate(i uint32) (uint32, uint64) {
	if i >= NumBits {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, NumBits))
	}
	return i / WordBits, uint64(1) << (i % WordBits)
}

// Add sets the bit at position i to 1 (adds i to the set).
func (b *bitmapImpl) Add(i uint32) {
	w, mask := locate(i)
	b.words[w] |= mask
}

// Contains returns true if bit at position i is set (i is in the set).
func (b *bitmapImpl) Contains(i uint32) bool {
	w, mask := locate(i)
	return b.words[w]&mask != 0
}

// Count returns the population count across all words.
func (b *bitmapImpl) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}
