package intercept

import (
	"fmt"
	"sync"
)

// memberKey identifies one interception point: a struct member or a
// function variable. Two substitutes must never be layered on the same key
// without an intervening restore.
type memberKey struct {
	owner  uintptr
	member string
}

func (k memberKey) String() string {
	if k.member == "" {
		return fmt.Sprintf("func@%#x", k.owner)
	}
	return fmt.Sprintf("%s@%#x", k.member, k.owner)
}

// Registry tracks every currently active interception so they can be
// restored in bulk between tests. Membership carries no ordering guarantee.
// The zero Registry is not usable; create one with NewRegistry.
type Registry struct {
	mu     sync.Mutex
	claims map[memberKey]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{claims: make(map[memberKey]*Handle)}
}

// claim records h as the active interception for its key. It fails when the
// key is already claimed, which is how duplicate wrapping is rejected.
func (r *Registry) claim(h *Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.claims[h.key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyWrapped, h.key)
	}
	r.claims[h.key] = h
	return nil
}

// release removes h from the registry. Safe to call for a handle that was
// already released.
func (r *Registry) release(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claims[h.key] == h {
		delete(r.claims, h.key)
	}
}

// Len returns the number of active interceptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.claims)
}

// Handles returns a snapshot of the active handles, in no particular order.
func (r *Registry) Handles() []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	hs := make([]*Handle, 0, len(r.claims))
	for _, h := range r.claims {
		hs = append(hs, h)
	}
	return hs
}

// RestoreAll restores every active interception and empties the registry.
// Idempotent: restoring an already-empty registry is a no-op, and handles
// restored concurrently are skipped by their own bookkeeping.
func (r *Registry) RestoreAll() {
	for _, h := range r.Handles() {
		h.Restore()
	}
}
