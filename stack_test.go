package fiber

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackAlignment(t *testing.T) {
	for _, align := range []int{16, 64, 4096, 1 << 16} {
		s, err := NewStackAligned(16*1024, align)
		require.NoError(t, err)
		addr := uintptr(unsafe.Pointer(&s.Bytes()[0]))
		assert.Zerof(t, addr%uintptr(align), "stack at %#x not aligned to %d", addr, align)
		assert.Equal(t, 16*1024, s.Size())
		require.NoError(t, s.Release())
	}
}

func TestStackInvalidAlignment(t *testing.T) {
	for _, align := range []int{0, -16, 3, 24, 100} {
		s, err := NewStackAligned(4096, align)
		assert.ErrorIs(t, err, ErrInvalidAlignment, "alignment %d", align)
		assert.Nil(t, s)
	}
}

func TestStackInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		s, err := NewStack(size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
		assert.Nil(t, s)
	}
}

func TestStackReleaseExactlyOnce(t *testing.T) {
	s, err := NewStack(4096)
	require.NoError(t, err)
	require.NoError(t, s.Release())
	assert.ErrorIs(t, s.Release(), ErrStackReleased)
}

func TestStackReleaseWhileOwned(t *testing.T) {
	sched := Init()
	stack, err := NewStack(4 * 4096)
	require.NoError(t, err)

	c := New()
	sched.Begin(c, func(c *Context) { c.Leave() }, stack)

	assert.ErrorIs(t, stack.Release(), ErrStackInUse)

	c.Enter()
	require.True(t, c.Done())
	assert.NoError(t, stack.Release())
}

func TestStackSingleOwner(t *testing.T) {
	sched := Init()
	stack, err := NewStack(4 * 4096)
	require.NoError(t, err)

	c := New()
	sched.Begin(c, func(c *Context) { c.Leave() }, stack)

	assert.PanicsWithValue(t, "fiber.Begin: stack already owned by another context", func() {
		sched.Begin(New(), func(*Context) {}, stack)
	})
}

func TestStackBeginAfterRelease(t *testing.T) {
	sched := Init()
	stack, err := NewStack(4 * 4096)
	require.NoError(t, err)
	require.NoError(t, stack.Release())

	assert.PanicsWithValue(t, "fiber.Begin: stack already released", func() {
		sched.Begin(New(), func(*Context) {}, stack)
	})
}
