package stubkit

import (
	"github.com/stubkit-project/stubkit/call"
)

// Substitute is the read-only contract every tracked substitute satisfies:
// base spies, async decorators, and interception handles. An external
// assertion layer builds higher-level matchers on these three accessors
// without knowing a substitute's internal representation.
type Substitute interface {
	// Name identifies the substitute in failure messages.
	Name() string

	// CallCount returns the number of recorded invocations.
	CallCount() int

	// CallRecords returns the recorded invocations in call order.
	CallRecords() []*call.Record
}

// Is reports whether v is a tracked substitute, returning its inspection
// surface when it is. This is the recognition predicate exposed to matcher
// layers:
//
//	if s, ok := stubkit.Is(v); ok && s.CallCount() == 0 {
//		t.Errorf("%s was never called", s.Name())
//	}
func Is(v any) (Substitute, bool) {
	s, ok := v.(Substitute)
	return s, ok
}
