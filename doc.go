// Package simplevector implements a dynamic-array container built on
// a hand-written exclusive-ownership buffer handle.
//
// # Overview
//
// The package provides two layered types:
//
//   - Array[T]: a move-only owning handle over one contiguous buffer.
//     It guarantees a buffer has exactly one owner at any instant and
//     knows nothing about logical size, only capacity.
//   - Vector[T]: a logical sequence on top of one Array. It tracks
//     size separately from capacity and implements amortized-doubling
//     growth, in-place insertion and erasure with element shifting,
//     and checked and unchecked element access.
//
// # Basic Usage
//
//	v := simplevector.Of(1, 2, 3)
//	v.PushBack(4)        // grows to capacity max(4, 2*3) = 6
//	v.Insert(1, 99)      // {1, 99, 2, 3, 4}
//	v.Erase(0)           // {99, 2, 3, 4}
//
//	value, err := v.Get(10) // checked: ErrOutOfRange
//	_ = v.At(0)             // unchecked: panics past Len()
//
// Pre-sizing without establishing elements uses a capacity hint:
//
//	v := simplevector.NewWithCapacity[int](simplevector.Reserve(1024))
//
// # Growth Policy
//
// When an operation needs more storage the buffer grows to
// max(requested, 2*capacity), so appends cost amortized O(1) while
// large bulk requests are honored in one step. A full vector of
// capacity 0 grows to capacity 1 on insert. Growth always builds the
// new buffer first, moves the elements over, then swaps it in: if
// building the replacement fails, the original vector is untouched.
//
// # Iterator Invalidation
//
// Range, Iter, and Slice expose positions into the owned buffer. Any
// operation that reallocates (PushBack, Insert, Resize, Reserve past
// capacity) or shifts elements (Insert, Erase) invalidates them.
//
// # Thread Safety
//
// Neither type is safe for concurrent use. Callers needing concurrent
// access must provide external synchronization.
//
// # Metrics and Monitoring
//
// The vector tracks its reallocation behavior:
//
//	metrics := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Reallocations: %d\n", metrics.Growths)
package simplevector
