package vector

import (
	"golang.org/x/exp/constraints"
)

// Size is the set of counter types a Vector can track its length and
// capacity with.
type Size interface {
	constraints.Unsigned
}

// Vector is a contiguous, index-addressable sequence of T whose length and
// capacity are tracked as S. Not goroutine-safe.
type Vector[T any, S Size] struct {
	data     []T // len(data) == m; slots [n, m) are not live
	n        S   // live elements
	m        S   // allocated slots
	cfg      config
	reallocs uint64
}

func newVector[T any, S Size](opts []Option) *Vector[T, S] {
	return &Vector[T, S]{cfg: buildConfig(opts)}
}

// New creates a Vector holding count zero-valued elements.
// The buffer is sized to exactly count slots.
func New[T any, S Size](count S, opts ...Option) (*Vector[T, S], error) {
	v := newVector[T, S](opts)
	if err := v.relocate(count, "create"); err != nil {
		return nil, err
	}
	v.n = count
	return v, nil
}

// NewWith creates a Vector of count elements, each built by calling ctor in
// index order. A nil ctor behaves like New.
func NewWith[T any, S Size](count S, ctor func() T, opts ...Option) (*Vector[T, S], error) {
	v, err := New[T, S](count, opts...)
	if err != nil {
		return nil, err
	}
	if ctor != nil {
		for i := range v.data {
			v.data[i] = ctor()
		}
	}
	return v, nil
}

// Of creates a Vector holding exactly the given items, in order.
func Of[T any, S Size](items ...T) (*Vector[T, S], error) {
	return From[T, S](items)
}

// From creates a Vector whose capacity is exactly len(items) and whose
// elements are copied from items in order.
func From[T any, S Size](items []T, opts ...Option) (*Vector[T, S], error) {
	if uint64(len(items)) > uint64(maxSize[S]()) {
		return nil, overflowError[S]("from", uint64(len(items)))
	}
	v := newVector[T, S](opts)
	count := S(len(items))
	if err := v.relocate(count, "create"); err != nil {
		return nil, err
	}
	copy(v.data, items)
	v.n = count
	return v, nil
}

// Clone returns a copy of v whose buffer holds exactly Len() slots.
// Elements implementing Cloner are copied through Clone; all others are
// copied by assignment.
func (v *Vector[T, S]) Clone() (*Vector[T, S], error) {
	c := &Vector[T, S]{cfg: v.cfg}
	if err := c.relocate(v.n, "copy"); err != nil {
		return nil, err
	}
	copyElems(c.data, v.data[:v.n])
	c.n = v.n
	return c, nil
}

// Move transfers v's buffer to a new Vector and leaves v empty with no buffer.
// No element is copied or destroyed.
func (v *Vector[T, S]) Move() *Vector[T, S] {
	moved := &Vector[T, S]{
		data:     v.data,
		n:        v.n,
		m:        v.m,
		cfg:      v.cfg,
		reallocs: v.reallocs,
	}
	v.reset()
	return moved
}

// CopyFrom replaces the contents of v with a copy of src.
// If v's capacity is smaller than src's, v's buffer is grown first; on failure
// v is unchanged. Afterwards Len and Cap equal those of src.
func (v *Vector[T, S]) CopyFrom(src *Vector[T, S]) error {
	if v == src {
		return nil
	}
	if v.m < src.m {
		if err := v.relocate(src.m, "copy"); err != nil {
			return err
		}
	}
	retire(v.data[:v.n])
	copyElems(v.data, src.data[:src.n])
	v.n = src.n
	v.m = src.m
	if src.m == 0 {
		v.data = nil
	} else {
		v.data = v.data[:src.m:src.m]
	}
	return nil
}

// MoveFrom destroys v's elements and takes over src's buffer, length and
// capacity. src is left empty with no buffer.
func (v *Vector[T, S]) MoveFrom(src *Vector[T, S]) {
	if v == src {
		return
	}
	retire(v.data[:v.n])
	v.data = src.data
	v.n = src.n
	v.m = src.m
	v.reallocs = src.reallocs
	src.reset()
}

// Release destroys every live element and drops the buffer.
// The vector stays usable and starts over empty.
func (v *Vector[T, S]) Release() {
	retire(v.data[:v.n])
	v.reset()
}

// reset puts v in the empty, no-buffer state without touching elements.
func (v *Vector[T, S]) reset() {
	v.data = nil
	v.n = 0
	v.m = 0
	v.reallocs = 0
}
