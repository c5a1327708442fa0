package spy

import (
	"github.com/stubkit-project/stubkit/behavior"
)

// CallThrough makes every call delegate to the displaced original with the
// same arguments and receiver. This is the initial behavior.
func (s *Spy) CallThrough() *Spy {
	s.SetDefault(behavior.NewCallThrough())
	return s
}

// Returns makes every call produce the given tuple verbatim. Positions
// beyond the tuple are zero-filled, so a trailing error return stays nil.
func (s *Spy) Returns(vals ...any) *Spy {
	s.SetDefault(behavior.NewReturn(vals...))
	return s
}

// ReturnValues makes successive calls produce one value each, in order.
// Once the sequence is exhausted every later call repeats the final value;
// this quirk is the documented legacy contract and is deliberately not the
// same as the one-time queue's fall-through exhaustion.
func (s *Spy) ReturnValues(vals ...any) *Spy {
	s.SetDefault(behavior.NewSequence(vals...))
	return s
}

// Throws makes every call deliver err: through the signature's final error
// return when it has one, by panicking with err otherwise. The record's Err
// field holds err either way.
func (s *Spy) Throws(err error) *Spy {
	s.SetDefault(behavior.NewThrow(err))
	return s
}

// Calls makes every call invoke fake in place of the original. fake must
// have the substitute's exact function type.
func (s *Spy) Calls(fake any) *Spy {
	s.SetDefault(behavior.NewFake(fake))
	return s
}

// SetDefault installs b as the default behavior, atomically replacing the
// previous one and resetting the sequence cursor. Locking kinds (fixed and
// deferred values) engage the enqueue lock and leave queued one-time
// behaviors to be honored first; the other kinds release the lock and empty
// the queue.
func (s *Spy) SetDefault(b behavior.Behavior) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.def = b
	s.cursor = 0
	if b.Locking() {
		s.locked = true
		return
	}
	s.locked = false
	s.queue.Clear()
}

// Default returns the active default behavior.
func (s *Spy) Default() behavior.Behavior {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def
}

// Enqueue appends one-time behaviors in argument order and reports whether
// they were accepted. While the lock flag is set the call is a silent no-op.
func (s *Spy) Enqueue(bs ...behavior.Behavior) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return false
	}
	for _, b := range bs {
		s.queue.Push(b)
	}
	return true
}

// Pending returns the number of queued one-time behaviors.
func (s *Spy) Pending() int { return s.queue.Len() }

// Locked reports whether one-time enqueues are currently suppressed.
func (s *Spy) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Reset clears the call records and the sequence cursor. The behavior
// configuration is untouched.
func (s *Spy) Reset() {
	s.records.Clear()
	s.mu.Lock()
	s.cursor = 0
	s.mu.Unlock()
}

// ClearRecords empties the call record sequence only.
func (s *Spy) ClearRecords() { s.records.Clear() }

// ClearBehaviors empties the one-time queue, resets the default behavior to
// call-through, releases the lock, and rewinds the sequence cursor.
func (s *Spy) ClearBehaviors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Clear()
	s.def = behavior.NewCallThrough()
	s.locked = false
	s.cursor = 0
}
