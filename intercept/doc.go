/*
Package intercept swaps tracked substitutes into live objects and restores
the displaced originals exactly.

A member is a func-typed exported field on a struct, or an Accessor pair
declared with this package's Accessor type. Wrapping snapshots the current
value, installs the substitute in place, and registers the interception so
it can be restored individually or in bulk:

	h, err := intercept.Method(svc, "GetNextID")
	if err != nil {
		// handle
	}
	h.Spy().ReturnValues(10, 20, 30)
	defer h.Restore()

Standalone function variables get the same treatment:

	h, _ := intercept.Function("now", &timeNow)

A member that is already wrapped cannot be wrapped again; Method fails with
ErrAlreadyWrapped until the existing handle is restored. Restore writes the
snapshot back verbatim, never panics, and is safe to call repeatedly.

Between test cases an external scheduler should call RestoreAll (typically
from an after-each hook) to guarantee nothing leaks:

	t.Cleanup(intercept.RestoreAll)

Engines are cheap. The package-level functions use a default engine over a
process-wide registry; tests that want explicit lifecycles construct their
own with New and a private Registry.
*/
package intercept
