package vec

import "errors"

var (
	// ErrInvalidArgument reports a violated precondition on an argument,
	// such as a non-positive element size or a slice of the wrong length.
	ErrInvalidArgument = errors.New("vec: invalid argument")

	// ErrCorrupt reports an operation on an uninitialized or corrupt buffer.
	ErrCorrupt = errors.New("vec: uninitialized or corrupt buffer")

	// ErrOutOfMemory reports that the allocator could not provide a block.
	ErrOutOfMemory = errors.New("vec: out of memory")
)

// FatalError is the panic value raised when a buffer contract is violated
// or growth fails under the fail-fast policy. Recover it and inspect it
// with errors.Is or errors.As.
type FatalError struct {
	Op  string // operation that failed, e.g. "AppendBack"
	Err error
}

func (e *FatalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// fatal panics with a *FatalError.
func fatal(op string, err error) {
	panic(&FatalError{Op: op, Err: err})
}
