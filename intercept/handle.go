package intercept

import (
	"reflect"
	"sync"

	"github.com/stubkit-project/stubkit/call"
	"github.com/stubkit-project/stubkit/spy"
)

// Handle represents one active interception. It exposes the inner
// substitutes and knows how to write the displaced original back.
type Handle struct {
	engine *Engine
	key    memberKey

	target  reflect.Value
	snap    reflect.Value
	primary *spy.Spy
	getter  *spy.Spy
	setter  *spy.Spy

	mu       sync.Mutex
	restored bool
}

// Spy returns the primary substitute: the wrapped function for callable
// members, the getter (or setter for write-only members) for accessor
// pairs.
func (h *Handle) Spy() *spy.Spy { return h.primary }

// Getter returns the getter substitute of an accessor pair, or nil.
func (h *Handle) Getter() *spy.Spy { return h.getter }

// Setter returns the setter substitute of an accessor pair, or nil.
func (h *Handle) Setter() *spy.Spy { return h.setter }

// Restore writes the snapshotted original back onto the owner and removes
// the handle from the registry. It never panics and further calls are
// no-ops.
func (h *Handle) Restore() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.restored {
		return
	}

	defer func() { _ = recover() }()
	h.target.Set(h.snap)
	h.restored = true
	h.engine.registry.release(h)
	h.engine.logger.Debug().
		Str("member", h.key.String()).
		Msg("restored member")
}

// Restored reports whether the original has been written back.
func (h *Handle) Restored() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.restored
}

// Name returns the primary substitute's name.
func (h *Handle) Name() string { return h.primary.Name() }

// CallCount returns the primary substitute's call count.
func (h *Handle) CallCount() int { return h.primary.CallCount() }

// CallRecords returns the primary substitute's records in call order.
func (h *Handle) CallRecords() []*call.Record { return h.primary.CallRecords() }
