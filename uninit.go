package vector

import "github.com/pkg/errors"

// Uninitialized is the first phase of building a Vector whose every slot the
// caller is about to overwrite. Slots are written through Set or Slot and the
// vector is handed out by Finish; nothing can read a slot before then.
//
// Built with the vectorcheck tag, the handle records which slots were written
// and Finish refuses to return a vector with an unwritten slot. Without the
// tag the bookkeeping compiles away.
type Uninitialized[T any, S Size] struct {
	v     *Vector[T, S]
	built constructed
}

// NewUninitialized allocates count slots for two-phase construction.
func NewUninitialized[T any, S Size](count S, opts ...Option) (*Uninitialized[T, S], error) {
	v, err := New[T, S](count, opts...)
	if err != nil {
		return nil, err
	}
	return &Uninitialized[T, S]{v: v, built: newConstructed(uint64(count))}, nil
}

// Len returns the number of slots to construct.
func (u *Uninitialized[T, S]) Len() S {
	u.panicIfFinished()
	return u.v.n
}

// Set constructs slot i from x. Panics if i >= Len().
func (u *Uninitialized[T, S]) Set(i S, x T) {
	u.panicIfFinished()
	u.v.data[:u.v.n][i] = x
	u.built.mark(uint64(i))
}

// Slot returns a pointer to slot i for in-place construction and counts the
// slot as constructed. Panics if i >= Len().
func (u *Uninitialized[T, S]) Slot(i S) *T {
	u.panicIfFinished()
	p := &u.v.data[:u.v.n][i]
	u.built.mark(uint64(i))
	return p
}

// Finish ends construction and returns the vector. The handle cannot be used
// afterwards. On ErrUnconstructed the handle stays usable.
func (u *Uninitialized[T, S]) Finish() (*Vector[T, S], error) {
	u.panicIfFinished()
	if i, missing := u.built.firstMissing(); missing {
		return nil, errors.Wrapf(ErrUnconstructed, "slot %d of %d", i, uint64(u.v.n))
	}
	v := u.v
	u.v = nil
	return v, nil
}

// panicIfFinished panics if Finish has already handed out the vector.
func (u *Uninitialized[T, S]) panicIfFinished() {
	if u.v == nil {
		panic("vector: Uninitialized used after Finish()")
	}
}
