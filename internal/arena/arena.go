// Package arena implements a chunked bump allocator used as a specialized
// backing store for vec buffers.
//
// Memory is handed out from fixed-size chunks. Individual blocks are never
// freed; Reset rewinds every chunk for reuse and Release drops them.
package arena

import (
	"errors"
	"sync"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (1 MiB).
const DefaultChunkSize = 1 << 20

var (
	// ErrZeroSized is returned for allocations of zero or negative size.
	ErrZeroSized = errors.New("arena: zero-sized allocation")
	// ErrTooLarge is returned when a request does not fit in a single chunk.
	ErrTooLarge = errors.New("arena: allocation larger than chunk size")
	// ErrReleased is returned when allocating from a released arena.
	ErrReleased = errors.New("arena: use after Release()")
)

type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator. It is safe for concurrent use.
type Arena struct {
	mu        sync.Mutex
	chunks    []chunk
	chunkSize int
	current   int // index of the chunk being filled, -1 if none
	released  bool
}

// New creates an Arena with the given chunk size.
// If chunkSize <= 0, DefaultChunkSize is used. No memory is reserved
// until the first allocation.
func New(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize, current: -1}
}

// Alloc returns n bytes from the arena with len and cap both equal to n.
// The block stays valid until Reset or Release.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrZeroSized
	}
	if n > a.chunkSize {
		return nil, ErrTooLarge
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil, ErrReleased
	}

	// Fast path: current chunk has room
	if a.current >= 0 {
		if b, ok := a.chunks[a.current].take(n); ok {
			return b, nil
		}
	}

	// Reuse a rewound chunk before making a new one
	for a.current+1 < len(a.chunks) {
		a.current++
		if b, ok := a.chunks[a.current].take(n); ok {
			return b, nil
		}
	}

	a.chunks = append(a.chunks, chunk{buf: make([]byte, a.chunkSize)})
	a.current = len(a.chunks) - 1
	b, _ := a.chunks[a.current].take(n)
	return b, nil
}

// Reset rewinds all chunks but keeps them for reuse.
// Blocks handed out before Reset must no longer be used.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	if len(a.chunks) > 0 {
		a.current = 0
	}
}

// Release drops all chunks. Subsequent allocations fail with ErrReleased.
func (a *Arena) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chunks = nil
	a.current = -1
	a.released = true
}

// take carves n aligned bytes out of c, reporting false if they don't fit.
func (c *chunk) take(n int) ([]byte, bool) {
	off := alignPtr(c.offset)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		return nil, false
	}
	start := int(off)
	c.offset = off + uintptr(n)
	return c.buf[start : start+n : start+n], true
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
