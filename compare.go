package simplevector

import "cmp"

// Equal reports whether a and b have the same size and element-wise
// equal contents in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically element-wise, returning
// -1, 0, or +1. A shorter vector that is a prefix of the longer one
// compares less.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports a < b or a == b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return !LessOrEqual(a, b)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
