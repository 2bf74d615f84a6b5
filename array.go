package simplevector

// noCopy triggers the go vet copylocks check when a value embedding it
// is copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a move-only handle that owns at most one contiguous buffer
// of T. At any instant a buffer has exactly one owning Array: every
// transfer operation (Release, Move, MoveFrom, Swap) nulls the source,
// and copying a handle is forbidden. Dropping the last owner frees the
// buffer.
//
// Array has no notion of logical size, only the raw buffer length.
// Indexed access is not bounds-checked beyond the buffer itself; the
// caller is responsible for staying within the range it considers
// valid.
type Array[T any] struct {
	noCopy noCopy

	buf []T
}

// NewArray allocates a buffer of n zero-valued elements and returns
// its owning handle. For n <= 0 the handle is a null owner; callers
// must not rely on an allocation existing for n == 0.
func NewArray[T any](n int) *Array[T] {
	if n <= 0 {
		return &Array[T]{}
	}
	return &Array[T]{buf: make([]T, n)}
}

// Adopt takes ownership of an already-allocated buffer. The caller
// must not retain its own reference to raw afterwards. Adopting nil
// yields a null owner.
func Adopt[T any](raw []T) *Array[T] {
	return &Array[T]{buf: raw}
}

// Get returns the owned buffer without transferring ownership, or nil
// for a null owner.
func (a *Array[T]) Get() []T {
	return a.buf
}

// Release returns the owned buffer and resets the handle to a null
// owner. Used to hand the buffer elsewhere without the handle freeing
// it.
func (a *Array[T]) Release() []T {
	b := a.buf
	a.buf = nil
	return b
}

// Owns reports whether the handle currently owns a buffer.
func (a *Array[T]) Owns() bool {
	return a.buf != nil
}

// Len returns the length of the owned buffer, or 0 for a null owner.
func (a *Array[T]) Len() int {
	return len(a.buf)
}

// At returns the element at index i. Bounds within the buffer are the
// caller's responsibility.
func (a *Array[T]) At(i int) T {
	return a.buf[i]
}

// Set stores value at index i. Bounds within the buffer are the
// caller's responsibility.
func (a *Array[T]) Set(i int, value T) {
	a.buf[i] = value
}

// Swap exchanges the owned buffers of a and other in constant time.
// It never allocates and never fails.
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf, other.buf = other.buf, a.buf
}

// Move transfers ownership into a fresh handle, leaving a as a null
// owner.
func (a *Array[T]) Move() *Array[T] {
	return Adopt(a.Release())
}

// MoveFrom transfers ownership from other into a. Whatever a owned
// before is dropped. Moving from self is a no-op that preserves the
// value.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.buf = other.buf
	other.buf = nil
}
