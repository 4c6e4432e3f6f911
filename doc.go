// Package vec implements a type-erased growable sequence container.
//
// # Overview
//
// A Buffer stores a homogeneous sequence of fixed-size elements as raw
// bytes in one contiguous block. The element size is declared when the
// buffer is created and never changes. Elements are appended at the back
// and removed from the front:
//
//	b := vec.New(4)   // 4-byte elements, nothing allocated yet
//	defer b.Release() // return the block to its allocator
//
//	var elem [4]byte
//	binary.LittleEndian.PutUint32(elem[:], 42)
//	b.AppendBack(elem[:])
//
//	var out [4]byte
//	if b.PopFront(out[:]) {
//		fmt.Println(binary.LittleEndian.Uint32(out[:]))
//	}
//
// Vec[T] offers the same contract with compile-time element typing for
// pointer-free types:
//
//	v := vec.NewVec[int32]()
//	v.Push(1)
//	x, ok := v.PopFront()
//
// # Growth Policy
//
// When an append finds the buffer full, the new capacity is the larger of
// twice the current capacity and max(length+1, InitialCapacity). Capacity
// therefore runs 0, 4, 8, 16, ... and appends are amortized O(1). The old
// block is copied into the new one and returned to the allocator. Capacity
// never shrinks; PopFront is O(n) because it shifts the remaining elements.
//
// # Allocators
//
// Backing blocks come from an Allocator. HeapAllocator (the default) uses
// the Go heap. ArenaAllocator hands out blocks from a chunked bump arena
// and reclaims them in bulk:
//
//	aa := vec.NewArenaAllocator(64 << 10)
//	b := vec.New(8, vec.WithAllocator(aa))
//	// ... use b ...
//	b.Release()
//	aa.Reset()
//
// # Errors
//
// Contract violations (a non-positive element size, an element slice of the
// wrong length, an uninitialized buffer) and allocation failures in
// AppendBack panic with a *FatalError. TryAppendBack and Vec.TryPush return
// allocation failures as errors wrapping ErrOutOfMemory instead. Popping an
// empty buffer is not an error; PopFront simply returns false.
//
// # Thread Safety
//
// Buffers and vectors have a single owner and are not safe for concurrent
// use. An ArenaAllocator may be shared by buffers on different goroutines.
package vec
