package simplevector

import "errors"

// ErrOutOfRange is returned by the checked accessors when the index is
// outside the logical range [0, Len).
var ErrOutOfRange = errors.New("simplevector: index out of range")

// Capacity is a capacity hint accepted by NewWithCapacity. It exists
// as a distinct type so an intended capacity cannot be confused with a
// size at the call site.
type Capacity int

// Reserve wraps a capacity for NewWithCapacity.
func Reserve(n int) Capacity {
	return Capacity(n)
}

// Vector is a dynamic array over exactly one owned Array buffer. The
// logical size is tracked separately from the buffer capacity; slots
// in [Len, Cap) are allocated but not part of the sequence.
//
// Every operation that needs more storage builds a new buffer first,
// moves the elements over, then swaps it in, so a failed allocation
// leaves the vector untouched.
//
// Vector is not safe for concurrent use; callers needing that must
// synchronize externally.
//
// A Vector must not be copied by assignment: that would produce two
// sequences sharing one owned buffer. Use Clone or CopyFrom.
type Vector[T any] struct {
	noCopy noCopy

	size  int
	items *Array[T]

	growths    int
	elemsMoved int
}

// New creates an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{items: &Array[T]{}}
}

// NewWithSize creates a vector of n zero-valued elements. Both size
// and capacity equal n. n <= 0 yields an empty vector.
func NewWithSize[T any](n int) *Vector[T] {
	if n <= 0 {
		return New[T]()
	}
	return &Vector[T]{size: n, items: NewArray[T](n)}
}

// NewFilled creates a vector of n elements, each set to value.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewWithSize[T](n)
	buf := v.items.Get()
	for i := range buf {
		buf[i] = value
	}
	return v
}

// Of creates a vector holding the given values in order. Size and
// capacity equal the number of values.
func Of[T any](values ...T) *Vector[T] {
	v := NewWithSize[T](len(values))
	copy(v.items.Get(), values)
	return v
}

// NewWithCapacity creates an empty vector whose buffer is
// pre-allocated to the hinted capacity:
//
//	v := simplevector.NewWithCapacity[int](simplevector.Reserve(64))
func NewWithCapacity[T any](hint Capacity) *Vector[T] {
	n := int(hint)
	if n < 0 {
		n = 0
	}
	return &Vector[T]{items: NewArray[T](n)}
}

// storage returns the owned Array, creating a null owner for vectors
// constructed as zero values.
func (v *Vector[T]) storage() *Array[T] {
	if v.items == nil {
		v.items = &Array[T]{}
	}
	return v.items
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the length of the currently owned buffer.
func (v *Vector[T]) Cap() int {
	if v.items == nil {
		return 0
	}
	return v.items.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the element at index i. It panics if i is outside
// [0, Len), including indices that fall in spare capacity.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.size {
		panic("simplevector: index out of range")
	}
	return v.items.At(i)
}

// Set stores value at index i. Panics if i is outside [0, Len).
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= v.size {
		panic("simplevector: index out of range")
	}
	v.items.Set(i, value)
}

// Get returns the element at index i, or ErrOutOfRange if i is
// outside [0, Len). For valid indices it agrees with At.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.items.At(i), nil
}

// SetChecked stores value at index i, or returns ErrOutOfRange if i
// is outside [0, Len).
func (v *Vector[T]) SetChecked(i int, value T) error {
	if i < 0 || i >= v.size {
		return ErrOutOfRange
	}
	v.items.Set(i, value)
	return nil
}

// Clear resets the size to zero. Capacity and the underlying buffer
// are retained; old element values are not wiped.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the size to n. Shrinking truncates without
// deallocating. Growing within capacity zeroes the newly exposed
// slots. Growing past capacity reallocates to max(n, 2*Cap), moving
// the existing elements into the new buffer before it is swapped in.
// Panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		panic("simplevector: negative size")
	case n <= v.size:
	case n <= v.Cap():
		var zero T
		buf := v.items.Get()
		for i := v.size; i < n; i++ {
			buf[i] = zero
		}
	default:
		v.grow(n)
	}
	v.size = n
}

// Reserve reallocates the buffer to exactly n when n exceeds the
// current capacity; the caller's request is honored without the
// doubling rule. Smaller requests are no-ops. Size is unaffected and
// the buffer never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.reallocate(n)
}

// PushBack appends value, growing the buffer by the doubling rule
// when full.
func (v *Vector[T]) PushBack(value T) {
	v.Resize(v.size + 1)
	v.items.Set(v.size-1, value)
}

// PushBackFrom appends the value pointed to by src, leaving the zero
// value behind in *src. This is the transfer-in counterpart of
// PushBack for element types that are expensive or unsafe to
// duplicate.
func (v *Vector[T]) PushBackFrom(src *T) {
	var zero T
	value := *src
	*src = zero
	v.PushBack(value)
}

// Append appends all values in order, reallocating at most once.
func (v *Vector[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	if need := v.size + len(values); need > v.Cap() {
		v.grow(need)
	}
	copy(v.items.Get()[v.size:], values)
	v.size += len(values)
}

// Insert places value at index i, shifting elements in [i, Len) one
// slot toward the back. i == Len appends. A full vector grows by the
// doubling rule, so capacity 0 becomes 1. Returns the index of the
// inserted element. Panics if i is outside [0, Len].
func (v *Vector[T]) Insert(i int, value T) int {
	if i < 0 || i > v.size {
		panic("simplevector: insert index out of range")
	}
	v.Resize(v.size + 1)
	buf := v.items.Get()
	copy(buf[i+1:v.size], buf[i:v.size-1])
	buf[i] = value
	return i
}

// InsertFrom is Insert with transfer-in semantics: *src is left zero.
func (v *Vector[T]) InsertFrom(i int, src *T) int {
	var zero T
	value := *src
	*src = zero
	return v.Insert(i, value)
}

// PopBack removes the last element. Panics if the vector is empty;
// callers are expected to check IsEmpty first.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("simplevector: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at index i, shifting elements in
// (i, Len) one slot toward the front. Returns i, which now addresses
// the element that followed the erased one, or equals Len when the
// last element was erased. Panics if i does not address an existing
// element.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic("simplevector: erase index out of range")
	}
	buf := v.items.Get()
	copy(buf[i:v.size-1], buf[i+1:v.size])
	v.size--
	return i
}

// Slice returns the logical window [0, Len) of the owned buffer. The
// slice aliases the vector's storage and is capped at Len, so
// appending to it cannot touch spare capacity. Any operation that
// reallocates or shifts elements invalidates it.
func (v *Vector[T]) Slice() []T {
	if v.items == nil {
		return nil
	}
	return v.items.Get()[:v.size:v.size]
}

// Swap exchanges size, capacity, storage, and growth counters of v
// and other in constant time. It never allocates and never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage().Swap(other.storage())
	v.size, other.size = other.size, v.size
	v.growths, other.growths = other.growths, v.growths
	v.elemsMoved, other.elemsMoved = other.elemsMoved, v.elemsMoved
}

// Clone returns a deep copy backed by independent storage of the same
// capacity. Mutating the clone never affects the original.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size, items: NewArray[T](v.Cap())}
	copy(c.items.Get(), v.storage().Get()[:v.size])
	return c
}

// CopyFrom replaces the contents of v with a deep copy of other using
// copy-and-swap: the copy is fully built before anything in v
// changes, so a failure while copying leaves v unmodified. Copying
// from self is a no-op. The growth counters of v are preserved;
// CopyFrom replaces contents, not the vector's own accounting.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	growths, elemsMoved := v.growths, v.elemsMoved
	v.Swap(other.Clone())
	v.growths, v.elemsMoved = growths, elemsMoved
}

// MoveFrom transfers the contents of other into v, dropping whatever
// v held. The source is left empty with zero capacity. Unlike
// CopyFrom, the whole object state moves, growth counters included.
// Moving from self is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.storage().MoveFrom(other.storage())
	v.size = other.size
	v.growths = other.growths
	v.elemsMoved = other.elemsMoved
	other.size = 0
	other.growths = 0
	other.elemsMoved = 0
}

// grow reallocates to at least min elements, at least doubling the
// current capacity so appends stay amortized O(1). Large bulk
// requests are honored in one step.
func (v *Vector[T]) grow(min int) {
	newCap := 2 * v.Cap()
	if min > newCap {
		newCap = min
	}
	v.reallocate(newCap)
}

// reallocate builds a fresh buffer of exactly newCap, moves the
// logical elements into it, then swaps it into place. The old buffer
// is dropped by the temporary handle. Nothing in v is touched until
// the new buffer is fully built.
func (v *Vector[T]) reallocate(newCap int) {
	fresh := NewArray[T](newCap)
	copy(fresh.Get(), v.storage().Get()[:v.size])
	v.items.Swap(fresh)
	v.growths++
	v.elemsMoved += v.size
}
