package call

import (
	"sync"
	"time"
)

// Equality performs structural equality over two arbitrary values. It is
// supplied by the consumer; this library never implements deep equality on
// its own. Tests commonly pass reflect.DeepEqual or a go-cmp based closure.
type Equality func(a, b any) bool

// Record captures a single invocation of a substitute. Records are immutable
// once appended to a List; treat every field as read-only.
type Record struct {
	// Args holds the invocation arguments in positional order. Variadic
	// tails are expanded so each argument occupies one position.
	Args []any

	// Receiver is the owner the substitute was bound to, or nil for a
	// standalone substitute.
	Receiver any

	// Returned holds the produced return values when the call completed.
	Returned []any

	// Err holds the error raised by the call, or the rejected payload of a
	// deferred result. A rejected payload is recorded even though the call
	// itself completes normally.
	Err error

	// At is the creation time of the record, carrying Go's monotonic clock
	// reading.
	At time.Time
}

// List is an append-only, insertion-ordered sequence of call records. The
// zero value is ready to use.
type List struct {
	mu      sync.RWMutex
	records []*Record
}

// Append adds a completed record to the end of the list.
func (l *List) Append(r *Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

// Len returns the number of recorded calls.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Clear empties the list. The list remains usable afterwards.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// All returns a snapshot of the recorded calls in call order.
func (l *List) All() []*Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Record, len(l.records))
	copy(out, l.records)
	return out
}

// At returns the record at the given zero-based index, or nil when the index
// is out of range. Negative indexes are out of range, never an error.
func (l *List) At(i int) *Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.records) {
		return nil
	}
	return l.records[i]
}

// First returns the earliest record, or nil when nothing was recorded.
func (l *List) First() *Record { return l.At(0) }

// Last returns the most recent record, or nil when nothing was recorded.
func (l *List) Last() *Record { return l.At(l.Len() - 1) }

// Called reports whether at least one call was recorded.
func (l *List) Called() bool { return l.Len() > 0 }

// CalledOnce reports whether exactly one call was recorded.
func (l *List) CalledOnce() bool { return l.Len() == 1 }

// CalledTwice reports whether exactly two calls were recorded.
func (l *List) CalledTwice() bool { return l.Len() == 2 }

// CalledThrice reports whether exactly three calls were recorded.
func (l *List) CalledThrice() bool { return l.Len() == 3 }

// MatchArgs reports whether some recorded call has an argument list of equal
// length whose every positional argument is equal under eq. A nil predicate
// matches nothing.
func (l *List) MatchArgs(eq Equality, args ...any) bool {
	if eq == nil {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, r := range l.records {
		if argsEqual(eq, r.Args, args) {
			return true
		}
	}
	return false
}

func argsEqual(eq Equality, got, want []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !eq(got[i], want[i]) {
			return false
		}
	}
	return true
}
