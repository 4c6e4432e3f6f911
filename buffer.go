package vec

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

const (
	// InitialCapacity is the capacity of the first allocation.
	InitialCapacity = 4
	// GrowthFactor is the multiplier applied to capacity on growth.
	GrowthFactor = 2
)

// Buffer is a contiguous, growable sequence of fixed-size elements stored
// as raw bytes. Elements are appended at the back and removed from the
// front. Capacity never shrinks until Release.
//
// A Buffer has a single owner and is not safe for concurrent use.
type Buffer struct {
	elems    []byte // nil iff capacity == 0
	elemSize int
	length   int
	capacity int
	grows    int

	alloc  Allocator
	logger *slog.Logger
}

// New creates an empty Buffer for elements of elemSize bytes.
// No memory is allocated until the first append.
// It panics with a *FatalError if elemSize <= 0.
func New(elemSize int, opts ...Option) *Buffer {
	if elemSize <= 0 {
		fatal("New", fmt.Errorf("%w: element size %d", ErrInvalidArgument, elemSize))
	}
	o := applyOptions(opts)
	return &Buffer{
		elemSize: elemSize,
		alloc:    o.allocator,
		logger:   o.logger,
	}
}

// AppendBack copies elem to the end of the buffer, growing it if full.
// elem must be exactly ElemSize bytes long. It panics with a *FatalError on
// a precondition violation or when the allocator cannot supply memory.
func (b *Buffer) AppendBack(elem []byte) {
	if err := b.appendBack("AppendBack", elem); err != nil {
		fatal("AppendBack", err)
	}
}

// TryAppendBack is like AppendBack but returns allocation failure as an
// error wrapping ErrOutOfMemory instead of panicking. The buffer is left
// unchanged on error. Precondition violations still panic.
func (b *Buffer) TryAppendBack(elem []byte) error {
	return b.appendBack("TryAppendBack", elem)
}

func (b *Buffer) appendBack(op string, elem []byte) error {
	b.mustBeValid(op)
	if len(elem) != b.elemSize {
		fatal(op, fmt.Errorf("%w: element of %d bytes, want %d", ErrInvalidArgument, len(elem), b.elemSize))
	}

	if b.length == b.capacity {
		if err := b.grow(b.length + 1); err != nil {
			return err
		}
	}

	off := b.length * b.elemSize
	copy(b.elems[off:off+b.elemSize], elem)
	b.length++
	return nil
}

// PopFront copies the first element into out and removes it, shifting the
// remaining elements down. It returns false, leaving out untouched, if the
// buffer is empty. out must be exactly ElemSize bytes long.
func (b *Buffer) PopFront(out []byte) bool {
	b.mustBeValid("PopFront")
	if len(out) != b.elemSize {
		fatal("PopFront", fmt.Errorf("%w: output of %d bytes, want %d", ErrInvalidArgument, len(out), b.elemSize))
	}
	if b.length == 0 {
		return false
	}

	used := b.length * b.elemSize
	copy(out, b.elems[:b.elemSize])
	copy(b.elems, b.elems[b.elemSize:used])
	b.length--
	return true
}

// Release returns the backing block to the allocator and resets the buffer
// to its freshly constructed state. It is safe to call more than once and
// the buffer may be reused afterwards.
func (b *Buffer) Release() {
	if b.elems != nil {
		b.alloc.Free(b.elems)
	}
	b.elems = nil
	b.capacity = 0
	b.length = 0
	b.grows = 0
}

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int { return b.length }

// Cap returns the number of elements the buffer holds without growing.
func (b *Buffer) Cap() int { return b.capacity }

// ElemSize returns the size in bytes of one element.
func (b *Buffer) ElemSize() int { return b.elemSize }

// grow replaces the backing block with one that holds at least need
// elements. On error the buffer is unchanged.
func (b *Buffer) grow(need int) error {
	if b.capacity > math.MaxInt/GrowthFactor {
		err := fmt.Errorf("%w: capacity %d cannot grow", ErrOutOfMemory, b.capacity)
		b.logGrowFailure(b.capacity, err)
		return err
	}
	newCap := nextCapacity(b.capacity, need)
	if newCap > math.MaxInt/b.elemSize {
		err := fmt.Errorf("%w: %d elements of %d bytes overflow", ErrOutOfMemory, newCap, b.elemSize)
		b.logGrowFailure(newCap, err)
		return err
	}

	elems, err := b.alloc.Allocate(newCap * b.elemSize)
	if err != nil {
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		b.logGrowFailure(newCap, err)
		return err
	}
	if len(elems) != newCap*b.elemSize {
		err := fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrOutOfMemory, len(elems), newCap*b.elemSize)
		b.logGrowFailure(newCap, err)
		return err
	}

	if b.elems != nil {
		copy(elems, b.elems[:b.length*b.elemSize])
		b.alloc.Free(b.elems)
	}

	if b.logger != nil {
		b.logger.Debug("buffer grown",
			slog.Int("elem_size", b.elemSize),
			slog.Int("old_cap", b.capacity),
			slog.Int("new_cap", newCap))
	}

	b.elems = elems
	b.capacity = newCap
	b.grows++
	return nil
}

func (b *Buffer) logGrowFailure(newCap int, err error) {
	if b.logger != nil {
		b.logger.Error("buffer growth failed",
			slog.Int("elem_size", b.elemSize),
			slog.Int("old_cap", b.capacity),
			slog.Int("new_cap", newCap),
			slog.String("error", err.Error()))
	}
}

// mustBeValid panics if b was not built by New or its state is corrupt.
func (b *Buffer) mustBeValid(op string) {
	switch {
	case b == nil:
		fatal(op, fmt.Errorf("%w: nil buffer", ErrInvalidArgument))
	case b.elemSize <= 0 || b.alloc == nil:
		fatal(op, ErrCorrupt)
	case b.length < 0 || b.length > b.capacity || (b.capacity > 0) != (b.elems != nil):
		fatal(op, ErrCorrupt)
	}
}

// nextCapacity applies the growth policy: at least double the current
// capacity, never below need or InitialCapacity.
func nextCapacity(capacity, need int) int {
	grown := capacity * GrowthFactor
	required := max(need, InitialCapacity)
	return max(grown, required)
}
