//go:build linux

package fiber

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// On Linux stacks live in their own anonymous mappings, outside the Go
// heap. mmap returns page-aligned memory, so alignments up to the page
// size need no adjustment; larger alignments over-map and offset into
// the mapping.

func allocStack(size, align int) (*Stack, error) {
	length := size
	if pg := unix.Getpagesize(); align > pg {
		length += align
	}
	raw, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("fiber: allocating %d byte stack: %w", size, err)
	}
	off := alignOffset(raw, align)
	return &Stack{mem: raw[off : off+size], raw: raw}, nil
}

func (s *Stack) free() error {
	raw := s.raw
	s.mem, s.raw = nil, nil
	if err := unix.Munmap(raw); err != nil {
		return fmt.Errorf("fiber: releasing stack: %w", err)
	}
	return nil
}
