package vector

import "iter"

// Len returns the number of live elements.
func (v *Vector[T, S]) Len() S {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap returns the number of slots in the buffer.
func (v *Vector[T, S]) Cap() S {
	if v == nil {
		return 0
	}
	return v.m
}

// At returns the element at index i. Panics if i >= Len().
func (v *Vector[T, S]) At(i S) T {
	return v.data[:v.n][i]
}

// Ref returns a pointer to the element at index i. Panics if i >= Len().
// The pointer is valid until the next relocation.
func (v *Vector[T, S]) Ref(i S) *T {
	return &v.data[:v.n][i]
}

// Set stores x at index i. Panics if i >= Len().
func (v *Vector[T, S]) Set(i S, x T) {
	v.data[:v.n][i] = x
}

// Front returns a pointer to the first element. Panics if the vector is empty.
func (v *Vector[T, S]) Front() *T {
	return v.Ref(0)
}

// Back returns a pointer to the last element. Panics if the vector is empty.
func (v *Vector[T, S]) Back() *T {
	if v.n == 0 {
		panic("vector: Back() on empty vector")
	}
	return v.Ref(v.n - 1)
}

// Slice returns the live elements as a slice sharing v's buffer.
// Its capacity is clipped to its length, so appending to it never writes
// into v's spare slots.
func (v *Vector[T, S]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.n:v.n]
}

// Data returns the whole buffer, Cap() slots long. Slots past Len() are not
// live; anything written there is discarded when they become live.
func (v *Vector[T, S]) Data() []T {
	if v == nil {
		return nil
	}
	return v.data
}

// All returns an iterator over index/element pairs in index order.
func (v *Vector[T, S]) All() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for i := S(0); i < v.n; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (v *Vector[T, S]) Backward() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for i := v.n; i > 0; i-- {
			if !yield(i-1, v.data[i-1]) {
				return
			}
		}
	}
}
