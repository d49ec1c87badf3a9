//go:build !linux

package fiber

// Fallback for platforms without the mmap path: over-allocate on the heap
// and offset to the requested alignment. The garbage collector reclaims the
// buffer after free drops the references.

func allocStack(size, align int) (*Stack, error) {
	raw := make([]byte, size+align)
	off := alignOffset(raw, align)
	return &Stack{mem: raw[off : off+size], raw: raw}, nil
}

func (s *Stack) free() error {
	s.mem, s.raw = nil, nil
	return nil
}
