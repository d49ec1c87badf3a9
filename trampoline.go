package fiber

import "github.com/sitano/fiber/internal/handle"

// The bootstrap interface mirrors the narrow native entry points that stack
// establishment mechanisms offer: it accepts only 32-bit arguments. A
// context handle is therefore split into two halves before the transfer and
// reassembled inside the trampoline. The pairing must be bit-exact; a
// corrupted handle fails the registry lookup instead of being interpreted
// as a live context.

// splitHandle packs v into two 32-bit words.
func splitHandle(v uint64) (lo, hi uint32) {
	return uint32(v), uint32(v >> 32)
}

// joinHandle is the inverse of splitHandle.
func joinHandle(lo, hi uint32) uint64 {
	return uint64(lo) | uint64(hi)<<32
}

// contexts maps live handles to contexts so the trampoline never carries a
// raw pointer across the narrow entry interface.
var contexts handle.Registry

// trampoline is the first frame on a fiber's new stack. It reassembles the
// context handle, dispatches to the fiber function, and performs the
// implicit one-way end transfer when the function returns. Fiber code never
// calls end directly.
func trampoline(lo, hi uint32) {
	v, ok := contexts.Lookup(handle.ID(joinHandle(lo, hi)))
	if !ok {
		panic("fiber.trampoline: handle does not name a live context")
	}
	c := v.(*Context)
	c.fn(c)
	c.end()
}
