package spy

import (
	"github.com/stubkit-project/stubkit/call"
)

// CallCount returns the number of recorded calls.
func (s *Spy) CallCount() int { return s.records.Len() }

// Called reports whether the spy was ever called.
func (s *Spy) Called() bool { return s.records.Called() }

// CalledOnce reports whether the spy was called exactly once.
func (s *Spy) CalledOnce() bool { return s.records.CalledOnce() }

// CalledTwice reports whether the spy was called exactly twice.
func (s *Spy) CalledTwice() bool { return s.records.CalledTwice() }

// CalledThrice reports whether the spy was called exactly three times.
func (s *Spy) CalledThrice() bool { return s.records.CalledThrice() }

// CalledWith reports whether some recorded call received exactly the given
// arguments under the configured equality predicate. The predicate is a
// construction-time requirement; calling this without one is a usage error.
func (s *Spy) CalledWith(args ...any) bool {
	if s.equal == nil {
		panic(ErrNoEquality)
	}
	return s.records.MatchArgs(s.equal, args...)
}

// NeverCalledWith is the negation of CalledWith.
func (s *Spy) NeverCalledWith(args ...any) bool { return !s.CalledWith(args...) }

// FirstCall returns the earliest record, or nil when nothing was recorded.
func (s *Spy) FirstCall() *call.Record { return s.records.First() }

// LastCall returns the most recent record, or nil when nothing was recorded.
func (s *Spy) LastCall() *call.Record { return s.records.Last() }

// CallAt returns the record at the given zero-based index, or nil for any
// out-of-range index including negative ones.
func (s *Spy) CallAt(i int) *call.Record { return s.records.At(i) }

// CallRecords returns a snapshot of all records in call order.
func (s *Spy) CallRecords() []*call.Record { return s.records.All() }
