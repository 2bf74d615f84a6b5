package simplevector

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 for a vector with no buffer.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Growths returns the number of reallocations performed since
// construction. Clear and truncating Resize do not reset it, and
// CopyFrom preserves it; MoveFrom carries over the source's count.
func (v *Vector[T]) Growths() int {
	return v.growths
}

// ElemsMoved returns the total number of elements transferred into
// fresh buffers across all reallocations.
func (v *Vector[T]) ElemsMoved() int {
	return v.elemsMoved
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Utilization: v.Utilization(),
		Growths:     v.Growths(),
		ElemsMoved:  v.ElemsMoved(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Number of logical elements
	Cap         int     // Length of the owned buffer
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
	Growths     int     // Reallocations since construction
	ElemsMoved  int     // Elements moved across all reallocations
}
