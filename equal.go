package vector

import "golang.org/x/exp/slices"

// Equal reports whether a and b hold the same number of elements and every
// pair of elements at the same index compares equal. The vectors may use
// different counter types. A nil vector equals an empty one.
func Equal[T comparable, S1, S2 Size](a *Vector[T, S1], b *Vector[T, S2]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any, S1, S2 Size](a *Vector[T, S1], b *Vector[T, S2], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
