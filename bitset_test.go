package tachyon

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestBitset(t *testing.T) {
	t.Run("Carry Left", func(t *testing.T) {
		b := newBitset(130)
		b.set(63)
		b.set(127)

		out := newBitset(130)
		out.shiftLeftOne(b)

		assert.That(t, out.test(64))
		assert.That(t, out.test(128))
		assert.Equal(t, out.count(), 2)
	})

	t.Run("Carry Right", func(t *testing.T) {
		b := newBitset(130)
		b.set(64)
		b.set(128)

		out := newBitset(130)
		out.shiftRightOne(b)

		assert.That(t, out.test(63))
		assert.That(t, out.test(127))
		assert.Equal(t, out.count(), 2)
	})

	t.Run("No Wraparound", func(t *testing.T) {
		b := newBitset(70)
		b.set(0)
		b.set(69)

		left := newBitset(70)
		left.shiftLeftOne(b)
		assert.That(t, left.test(1))
		assert.Equal(t, left.count(), 1)

		right := newBitset(70)
		right.shiftRightOne(b)
		assert.That(t, right.test(68))
		assert.Equal(t, right.count(), 1)
	})

	t.Run("Tail Invariant", func(t *testing.T) {
		// shifting the last valid column left must not leave bits past
		// the width in the final word.
		b := newBitset(65)
		b.set(64)

		out := newBitset(65)
		out.shiftLeftOne(b)
		assert.Equal(t, out.count(), 0)
		assert.Equal(t, out.words[len(out.words)-1], uint64(0))
	})

	t.Run("Fuzz", func(t *testing.T) {
		var rng pcg.T

		for _, width := range []int{1, 5, 63, 64, 65, 127, 128, 130, 200} {
			ref := make([]bool, width)
			b := newBitset(width)
			for i := 0; i < width; i++ {
				if rng.Uint32n(2) == 0 {
					ref[i] = true
					b.set(i)
				}
			}

			exp := 0
			for _, on := range ref {
				if on {
					exp++
				}
			}
			assert.Equal(t, b.count(), exp)

			left := newBitset(width)
			left.shiftLeftOne(b)
			right := newBitset(width)
			right.shiftRightOne(b)

			for i := 0; i < width; i++ {
				assert.Equal(t, b.test(i), ref[i])
				assert.Equal(t, left.test(i), i > 0 && ref[i-1])
				assert.Equal(t, right.test(i), i < width-1 && ref[i+1])
			}
		}
	})
}
