package vector

// Destroyer is implemented by element types that hold resources which must
// be released when an element leaves the vector. Destroy is called on a
// pointer to the element stored in the buffer.
//
// Vectors of pointers (Vector[*X, S]) do not own their pointees and never
// call Destroy on them.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types that need a deep copy when the
// vector holding them is copied.
type Cloner[T any] interface {
	Clone() T
}

// needsDestroy reports whether T or *T implements Destroyer.
func needsDestroy[T any]() bool {
	_, ok := any((*T)(nil)).(Destroyer)
	return ok
}

// retire destroys elems and resets them to the zero value so the slots no
// longer keep anything reachable.
func retire[T any](elems []T) {
	if len(elems) == 0 {
		return
	}
	if needsDestroy[T]() {
		for i := range elems {
			any(&elems[i]).(Destroyer).Destroy()
		}
	}
	clear(elems)
}

// copyElems copies src into dst, going through Cloner when T implements it.
func copyElems[T any](dst, src []T) {
	if _, ok := any((*T)(nil)).(Cloner[T]); !ok {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = any(&src[i]).(Cloner[T]).Clone()
	}
}
