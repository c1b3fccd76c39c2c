//go:build vectorcheck

package vector

import "math/bits"

// constructionChecks reports whether Uninitialized tracks written slots.
const constructionChecks = true

// constructed is a bitset of written slots.
type constructed struct {
	words []uint64
	n     uint64
}

func newConstructed(n uint64) constructed {
	return constructed{words: make([]uint64, (n+63)/64), n: n}
}

func (c *constructed) mark(i uint64) {
	c.words[i/64] |= 1 << (i % 64)
}

// firstMissing returns the lowest slot that was never marked.
func (c *constructed) firstMissing() (uint64, bool) {
	for w, word := range c.words {
		if word == ^uint64(0) {
			continue
		}
		i := uint64(w)*64 + uint64(bits.TrailingZeros64(^word))
		if i < c.n {
			return i, true
		}
	}
	return 0, false
}
