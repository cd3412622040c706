package tachyon

import "math/bits"

// bitset is a fixed-width set of columns packed into 64 bit words, lowest
// column in the lowest bit. bits at or past the width are always zero, and
// every mutation reestablishes that before returning.
type bitset struct {
	words []uint64
	tail  uint64 // mask keeping only the valid bits of the final word
}

func newBitset(width int) *bitset {
	tail := ^uint64(0)
	if width%64 != 0 {
		tail = 1<<(uint(width)%64) - 1
	}
	return &bitset{
		words: make([]uint64, (width+63)/64),
		tail:  tail,
	}
}

func (b *bitset) set(i int)       { b.words[i/64] |= 1 << (uint(i) % 64) }
func (b *bitset) test(i int) bool { return b.words[i/64]&(1<<(uint(i)%64)) != 0 }

func (b *bitset) count() (n int) {
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// and sets b = x & y.
func (b *bitset) and(x, y *bitset) {
	for i := range b.words {
		b.words[i] = x.words[i] & y.words[i]
	}
}

// andNot sets b = x &^ y.
func (b *bitset) andNot(x, y *bitset) {
	for i := range b.words {
		b.words[i] = x.words[i] &^ y.words[i]
	}
}

// or sets b = b | x.
func (b *bitset) or(x *bitset) {
	for i := range b.words {
		b.words[i] |= x.words[i]
	}
}

// shiftLeftOne sets b = x << 1, moving every column one to the right. the
// high bit of each word carries into the low bit of the next word, and the
// bit at the final column is discarded rather than wrapped.
func (b *bitset) shiftLeftOne(x *bitset) {
	carry := uint64(0)
	for i, w := range x.words {
		b.words[i] = w<<1 | carry
		carry = w >> 63
	}
	b.words[len(b.words)-1] &= b.tail
}

// shiftRightOne sets b = x >> 1, moving every column one to the left. the
// low bit of each word carries into the high bit of the previous word, and
// the bit at column 0 is discarded rather than wrapped.
func (b *bitset) shiftRightOne(x *bitset) {
	carry := uint64(0)
	for i := len(x.words) - 1; i >= 0; i-- {
		w := x.words[i]
		b.words[i] = w>>1 | carry<<63
		carry = w & 1
	}
}
