// Package handle maintains a registry of live values addressed by small
// integer handles. The fiber bootstrap trampoline receives its context
// through an interface limited to narrow fixed-width slots; handing it an
// index into this registry instead of a raw address means corrupted bits
// fail a lookup rather than alias unrelated memory.
package handle

import (
	"sync"

	"github.com/eapache/queue"
)

// ID names a registered value. The zero ID is never issued, so a zeroed or
// torn handle can never resolve.
type ID uint64

// Registry is a table of live values with stable, reusable slots. The zero
// value is ready to use.
//
// The mutex makes registration safe when several schedulers share the
// process-wide table. Lookups happen once per fiber launch, so contention
// is not a concern here the way it is for per-switch state.
type Registry struct {
	mu    sync.Mutex
	slots []any
	free  *queue.Queue
}

// Register stores v and returns its handle.
func (r *Registry) Register(v any) ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.free == nil {
		r.free = queue.New()
	}
	if r.free.Length() > 0 {
		i := r.free.Remove().(int)
		r.slots[i] = v
		return ID(i + 1)
	}
	r.slots = append(r.slots, v)
	return ID(len(r.slots))
}

// Lookup resolves a handle to its registered value. It reports false for
// the zero ID, for out-of-range handles, and for handles already released.
func (r *Registry) Lookup(id ID) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == 0 || uint64(id) > uint64(len(r.slots)) {
		return nil, false
	}
	v := r.slots[id-1]
	return v, v != nil
}

// Release frees a handle, returning its slot to the free list. Releasing
// an unknown or already released handle is a no-op.
func (r *Registry) Release(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == 0 || uint64(id) > uint64(len(r.slots)) || r.slots[id-1] == nil {
		return
	}
	r.slots[id-1] = nil
	if r.free == nil {
		r.free = queue.New()
	}
	r.free.Add(int(id - 1))
}
