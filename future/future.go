package future

import (
	"io"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger receives unobserved-rejection diagnostics. Discards by default so
// the library stays silent unless a consumer opts in via SetLogger.
var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.New(io.Discard)
	logger.Store(&nop)
}

// SetLogger installs the logger used for unobserved-rejection diagnostics.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Result is a deferred outcome that is already settled when it is handed
// back: either fulfilled with a value or rejected with an error. Await never
// blocks; "deferred" means the caller may inspect the outcome later, not
// that work is still in flight.
type Result struct {
	val      any
	err      error
	observed atomic.Bool
}

// Resolved returns a fulfilled result wrapping v.
func Resolved(v any) *Result {
	return &Result{val: v}
}

// Rejected returns a rejected result wrapping err. If the result is garbage
// collected without ever being observed, a diagnostic is emitted through the
// package logger; nothing else ever surfaces from an ignored rejection.
func Rejected(err error) *Result {
	r := &Result{err: err}
	runtime.SetFinalizer(r, reportUnobserved)
	return r
}

func reportUnobserved(r *Result) {
	if r.observed.Load() {
		return
	}
	logger.Load().Debug().Err(r.err).Msg("rejected result was never observed")
}

// Await marks the result observed and returns its settlement. For a rejected
// result the returned error is the configured rejection payload; the error
// is never raised any other way.
func (r *Result) Await() (any, error) {
	r.observed.Store(true)
	return r.val, r.err
}

// Value returns the fulfilled value, or nil for a rejected result.
func (r *Result) Value() any { return r.val }

// Err marks the result observed and returns the rejection payload, or nil
// for a fulfilled result.
func (r *Result) Err() error {
	r.observed.Store(true)
	return r.err
}

// IsRejected reports whether the result settled unsuccessfully without
// counting as an observation.
func (r *Result) IsRejected() bool { return r.err != nil }

// Observe marks the rejection as handled without inspecting it, so that an
// intentionally ignored result never triggers a diagnostic. It returns the
// result for chaining.
func (r *Result) Observe() *Result {
	r.observed.Store(true)
	return r
}
