package vec

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Vec is a typed facade over a Buffer whose element size is the size of T.
//
// Elements are stored as raw bytes, so T must be a non-empty type without
// pointers (no strings, slices, maps, interfaces, channels or funcs);
// the garbage collector cannot see pointers held in the backing block.
type Vec[T any] struct {
	buf *Buffer
}

// NewVec creates an empty Vec for elements of type T.
// It panics with a *FatalError if T has zero size or contains pointers.
func NewVec[T any](opts ...Option) *Vec[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Size() == 0 {
		fatal("NewVec", fmt.Errorf("%w: zero-size element type %v", ErrInvalidArgument, typ))
	}
	if hasPointers(typ) {
		fatal("NewVec", fmt.Errorf("%w: element type %v contains pointers", ErrInvalidArgument, typ))
	}
	return &Vec[T]{buf: New(int(typ.Size()), opts...)}
}

// Push appends x to the back. It panics with a *FatalError if the
// allocator cannot supply memory.
func (v *Vec[T]) Push(x T) {
	v.buf.AppendBack(bytesOf(&x))
}

// TryPush appends x to the back, returning an error wrapping
// ErrOutOfMemory if the allocator cannot supply memory.
func (v *Vec[T]) TryPush(x T) error {
	return v.buf.TryAppendBack(bytesOf(&x))
}

// PopFront removes and returns the first element.
// It returns the zero value and false if the vector is empty.
func (v *Vec[T]) PopFront() (T, bool) {
	var x T
	ok := v.buf.PopFront(bytesOf(&x))
	return x, ok
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.buf.Len() }

// Cap returns the number of elements held without growing.
func (v *Vec[T]) Cap() int { return v.buf.Cap() }

// Release frees the backing memory; the Vec remains usable.
func (v *Vec[T]) Release() { v.buf.Release() }

// Metrics returns a snapshot of the underlying buffer statistics.
func (v *Vec[T]) Metrics() BufferMetrics { return v.buf.Metrics() }

// bytesOf returns the memory of *p as a byte slice.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// hasPointers reports whether values of t may hold pointers.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
