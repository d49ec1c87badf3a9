package fiber

import (
	"errors"
	"fmt"
	"unsafe"
)

// StackAlign is the default stack alignment, the ABI requirement on x86-64.
const StackAlign = 16

var (
	// ErrInvalidAlignment is returned when a requested alignment is zero or
	// not a power of two.
	ErrInvalidAlignment = errors.New("fiber: invalid stack alignment")

	// ErrInvalidSize is returned when a requested stack size is not positive.
	ErrInvalidSize = errors.New("fiber: invalid stack size")

	// ErrStackInUse is returned by Release while the stack is still owned by
	// a context that has not terminated.
	ErrStackInUse = errors.New("fiber: stack is owned by a live context")

	// ErrStackReleased is returned by Release when the stack was already
	// released.
	ErrStackReleased = errors.New("fiber: stack already released")
)

// Stack is a fixed-size, alignment-correct memory region serving as a
// fiber's call stack. A stack is exclusively owned by whichever context was
// launched on it and must outlive every switch that might resume execution
// there: Release refuses to free it until that context has terminated, and
// frees it exactly once. No guard pages protect the region; overflowing it
// corrupts whatever is adjacent.
type Stack struct {
	mem      []byte // aligned region handed to the fiber
	raw      []byte // full allocation backing mem
	owner    *Context
	released bool
}

// NewStack allocates a stack of the given size with the default alignment.
func NewStack(size int) (*Stack, error) {
	return NewStackAligned(size, StackAlign)
}

// NewStackAligned allocates a stack of the given size whose base address is
// a multiple of align. align must be a power of two.
func NewStackAligned(size, align int) (*Stack, error) {
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return allocStack(size, align)
}

// Bytes returns the aligned stack region.
func (s *Stack) Bytes() []byte { return s.mem }

// Size returns the usable stack size in bytes.
func (s *Stack) Size() int { return len(s.mem) }

// Release frees the stack. It fails with ErrStackInUse while a live context
// still owns the stack, and with ErrStackReleased on any call after the
// first successful one.
func (s *Stack) Release() error {
	if s.released {
		return ErrStackReleased
	}
	if s.owner != nil {
		return ErrStackInUse
	}
	s.released = true
	return s.free()
}

func (s *Stack) bind(c *Context) {
	if s.released {
		panic("fiber.Begin: stack already released")
	}
	if s.owner != nil {
		panic("fiber.Begin: stack already owned by another context")
	}
	s.owner = c
}

func (s *Stack) unbind() {
	s.owner = nil
}

// alignOffset returns how far into b the first align-multiple address is.
func alignOffset(b []byte, align int) int {
	addr := uintptr(unsafe.Pointer(&b[0]))
	return int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
}
