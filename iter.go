package simplevector

// Range iterates over the logical elements in order, calling fn with
// each index and value. Iteration stops early when fn returns false.
// fn must not mutate the vector; any operation that reallocates or
// shifts elements invalidates the iteration.
func (v *Vector[T]) Range(fn func(i int, value T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.items.At(i)) {
			return
		}
	}
}

// Iter provides an iterator function compatible with range loops:
//
//	for i, value := range v.Iter() {
//		// do something
//	}
//
// The same invalidation rule as Range applies.
func (v *Vector[T]) Iter() func(func(i int, value T) bool) {
	return v.Range
}
