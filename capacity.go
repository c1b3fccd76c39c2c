package vector

// Reserve grows the buffer to exactly minCap slots if it is currently
// smaller. Live elements are preserved. It never shrinks the buffer.
func (v *Vector[T, S]) Reserve(minCap S) error {
	if minCap <= v.m {
		return nil
	}
	return v.relocate(minCap, "reserve")
}

// Resize sets the length to exactly size. New elements are zero-valued;
// elements past size are destroyed. Growing reserves exactly size slots when
// the buffer is too small; the buffer is never shrunk.
func (v *Vector[T, S]) Resize(size S) error {
	return v.resize(size, nil)
}

// ResizeWith is like Resize but builds each new element with ctor.
func (v *Vector[T, S]) ResizeWith(size S, ctor func() T) error {
	return v.resize(size, ctor)
}

func (v *Vector[T, S]) resize(size S, ctor func() T) error {
	if size < v.n {
		retire(v.data[size:v.n])
		v.n = size
		return nil
	}
	if err := v.Reserve(size); err != nil {
		return err
	}
	fresh := v.data[v.n:size]
	if ctor == nil {
		clear(fresh)
	} else {
		for i := range fresh {
			fresh[i] = ctor()
		}
	}
	v.n = size
	return nil
}

// ShrinkToFit relocates the buffer to exactly Len() slots when it has spare
// capacity. An empty vector drops its buffer entirely.
func (v *Vector[T, S]) ShrinkToFit() error {
	if v.m <= v.n {
		return nil
	}
	return v.relocate(v.n, "shrink")
}

// Zero overwrites every live element with the zero value of T.
// Destroy is not called; use it for plain values.
func (v *Vector[T, S]) Zero() {
	clear(v.data[:v.n])
}

// Clear destroys every live element and sets the length to zero.
// The buffer is kept for reuse.
func (v *Vector[T, S]) Clear() {
	retire(v.data[:v.n])
	v.n = 0
}
