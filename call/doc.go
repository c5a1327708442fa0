/*
Package call holds the call records a substitute accumulates and the read-only
queries an assertion layer builds on.

Every invocation of a substitute appends one Record: the arguments, the
receiver the substitute was bound to (if any), the produced return values or
the raised error, and a monotonic timestamp. Records are immutable once
appended; reset empties the list without invalidating the substitute.

Argument matching is delegated to an externally supplied Equality predicate.
This package deliberately ships no equality implementation of its own:

	l.MatchArgs(reflect.DeepEqual, "user-1", 42)

Index lookups never fail. An out-of-range index, including a negative one,
returns nil rather than an error:

	if r := l.At(2); r != nil {
		// third call
	}
*/
package call
