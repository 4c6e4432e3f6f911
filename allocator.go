package vec

import (
	"fmt"

	"github.com/pavanmanishd/vec/internal/arena"
)

// Allocator supplies and reclaims the backing blocks of a Buffer.
//
// Allocate must return a block with len and cap equal to n, or an error.
// Free receives a block previously returned by the same allocator once the
// buffer no longer references it.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims blocks once they are unreferenced.
type HeapAllocator struct{}

// Allocate returns a new zeroed block of n bytes.
func (HeapAllocator) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidArgument
	}
	return make([]byte, n), nil
}

// Free does nothing.
func (HeapAllocator) Free([]byte) {}

// ArenaAllocator allocates buffer blocks from a chunked arena. Blocks are
// not freed individually: memory abandoned by growth is reclaimed in bulk by
// Reset or Release. Requests larger than the chunk size fail.
//
// An ArenaAllocator may back buffers owned by different goroutines.
type ArenaAllocator struct {
	a *arena.Arena
}

// NewArenaAllocator creates an ArenaAllocator with the given chunk size.
// If chunkSize <= 0, a 1 MiB chunk size is used.
func NewArenaAllocator(chunkSize int) *ArenaAllocator {
	return &ArenaAllocator{a: arena.New(chunkSize)}
}

// Allocate returns n bytes from the arena. Arena failures are reported
// wrapped in ErrOutOfMemory.
func (aa *ArenaAllocator) Allocate(n int) ([]byte, error) {
	b, err := aa.a.Alloc(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	return b, nil
}

// Free does nothing; see Reset.
func (aa *ArenaAllocator) Free([]byte) {}

// Reset rewinds the arena for reuse. Every buffer backed by this allocator
// must have been released first.
func (aa *ArenaAllocator) Reset() {
	aa.a.Reset()
}

// Release drops the arena's memory. Later allocations fail.
func (aa *ArenaAllocator) Release() {
	aa.a.Release()
}

// ChunkSize returns the arena chunk size, the largest block this
// allocator can hand out.
func (aa *ArenaAllocator) ChunkSize() int {
	return aa.a.ChunkSize()
}

// Metrics returns a snapshot of the arena statistics.
func (aa *ArenaAllocator) Metrics() ArenaMetrics {
	return ArenaMetrics(aa.a.Metrics())
}

// ArenaMetrics contains statistical information about an ArenaAllocator.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes handed out, including alignment padding
	Capacity    int     // Total bytes across all chunks
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
