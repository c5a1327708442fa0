package async

import (
	"errors"

	"github.com/stubkit-project/stubkit/behavior"
	"github.com/stubkit-project/stubkit/call"
	"github.com/stubkit-project/stubkit/future"
	"github.com/stubkit-project/stubkit/spy"
)

// ErrNotDeferred is returned by Result when the produced value is not a
// deferred result, e.g. while a one-time fixed value is at the queue front.
var ErrNotDeferred = errors.New("call did not produce a deferred result")

// Spy decorates a base substitute with one-time behaviors, deferred-result
// defaults and the enqueue lock rule. The underlying recording contract is
// unchanged: every call still appends one record to the base spy.
type Spy struct {
	base *spy.Spy
}

// New creates a standalone async substitute. The base substitute is a no-op
// func(...any) any, so resolved and rejected values fit its single return.
func New(name string) *Spy {
	base, err := spy.New(spy.Config{Name: name})
	if err != nil {
		// Unreachable: the default original is always a function.
		panic(err)
	}
	return &Spy{base: base}
}

// Wrap decorates an existing base substitute, standalone or engine-bound.
// Restoration of a bound substitute stays with its engine handle.
func Wrap(base *spy.Spy) *Spy {
	return &Spy{base: base}
}

// Base returns the decorated substitute.
func (s *Spy) Base() *spy.Spy { return s.base }

// Fn returns the substitute function for injection into the code under test.
func (s *Spy) Fn() any { return s.base.Fn() }

// Do invokes the substitute and returns its first produced value: a plain
// value for fixed behaviors, a settled *future.Result for resolve/reject.
func (s *Spy) Do(args ...any) any {
	out := s.base.Invoke(args...)
	if len(out) == 0 {
		return nil
	}
	return out[0]
}

// Result invokes the substitute and asserts the produced value is a
// deferred result, for call sites that await immediately.
func (s *Spy) Result(args ...any) (*future.Result, error) {
	v := s.Do(args...)
	r, ok := v.(*future.Result)
	if !ok {
		return nil, ErrNotDeferred
	}
	return r, nil
}

// ReturnsOnce enqueues one fixed value per argument, each consumed by a
// single call in order. A silent no-op while the lock flag is set.
func (s *Spy) ReturnsOnce(vals ...any) *Spy {
	for _, v := range vals {
		s.base.Enqueue(behavior.NewReturn(v))
	}
	return s
}

// ResolvesOnce enqueues one fulfilled deferred result per argument. A
// silent no-op while the lock flag is set.
func (s *Spy) ResolvesOnce(vals ...any) *Spy {
	for _, v := range vals {
		s.base.Enqueue(behavior.NewResolve(v))
	}
	return s
}

// RejectsOnce enqueues one rejected deferred result per argument. The
// rejection settles the returned result, is recorded on the call record's
// Err field, and is pre-observed so an ignored result stays silent. A
// silent no-op while the lock flag is set.
func (s *Spy) RejectsOnce(errs ...error) *Spy {
	for _, err := range errs {
		s.base.Enqueue(behavior.NewReject(err))
	}
	return s
}

// CallsOnce enqueues one replacement implementation per argument. A silent
// no-op while the lock flag is set.
func (s *Spy) CallsOnce(fns ...any) *Spy {
	for _, fn := range fns {
		s.base.Enqueue(behavior.NewFake(fn))
	}
	return s
}

// CallThrough sets the default back to delegating, empties the one-time
// queue and releases the lock.
func (s *Spy) CallThrough() *Spy {
	s.base.SetDefault(behavior.NewCallThrough())
	return s
}

// Throws sets a raising default, empties the one-time queue and releases
// the lock.
func (s *Spy) Throws(err error) *Spy {
	s.base.SetDefault(behavior.NewThrow(err))
	return s
}

// Calls sets a replacement-implementation default, empties the one-time
// queue and releases the lock.
func (s *Spy) Calls(fn any) *Spy {
	s.base.SetDefault(behavior.NewFake(fn))
	return s
}

// Returns sets a fixed-value default and engages the lock. Queued one-time
// behaviors are kept and honored first, in order.
func (s *Spy) Returns(vals ...any) *Spy {
	s.base.SetDefault(behavior.NewReturn(vals...))
	return s
}

// Resolves sets a fulfilled deferred-result default and engages the lock.
// Queued one-time behaviors are kept and honored first, in order.
func (s *Spy) Resolves(v any) *Spy {
	s.base.SetDefault(behavior.NewResolve(v))
	return s
}

// Rejects sets a rejected deferred-result default and engages the lock.
// Queued one-time behaviors are kept and honored first, in order.
func (s *Spy) Rejects(err error) *Spy {
	s.base.SetDefault(behavior.NewReject(err))
	return s
}

// ClearCalls empties the call record sequence only.
func (s *Spy) ClearCalls() *Spy {
	s.base.ClearRecords()
	return s
}

// ClearReturnValues empties the one-time queue, resets the default behavior
// to call-through and releases the lock.
func (s *Spy) ClearReturnValues() *Spy {
	s.base.ClearBehaviors()
	return s
}

// ClearAll combines ClearCalls and ClearReturnValues.
func (s *Spy) ClearAll() *Spy {
	s.base.ClearRecords()
	s.base.ClearBehaviors()
	return s
}

// Locked reports whether one-time enqueues are currently suppressed.
func (s *Spy) Locked() bool { return s.base.Locked() }

// Pending returns the number of queued one-time behaviors.
func (s *Spy) Pending() int { return s.base.Pending() }

// Name returns the base substitute's name.
func (s *Spy) Name() string { return s.base.Name() }

// CallCount returns the number of recorded calls.
func (s *Spy) CallCount() int { return s.base.CallCount() }

// Called reports whether the substitute was ever called.
func (s *Spy) Called() bool { return s.base.Called() }

// CallRecords returns a snapshot of all records in call order.
func (s *Spy) CallRecords() []*call.Record { return s.base.CallRecords() }

// LastCall returns the most recent record, or nil when nothing was recorded.
func (s *Spy) LastCall() *call.Record { return s.base.LastCall() }

// CallAt returns the record at the given zero-based index, or nil for any
// out-of-range index.
func (s *Spy) CallAt(i int) *call.Record { return s.base.CallAt(i) }
