package behavior

import "sync"

// Kind identifies a response strategy. Exactly one strategy is active as a
// substitute's default at any time.
type Kind int

const (
	// CallThrough delegates to the displaced original implementation.
	CallThrough Kind = iota

	// Return produces a fixed tuple of values on every call.
	Return

	// Sequence produces values by a zero-based cursor that advances on each
	// call but never past the final index: once exhausted, the last value
	// repeats. This is the legacy synchronous form; the one-time queue has
	// different exhaustion semantics and falls through to the default.
	Sequence

	// Throw delivers the configured error to the caller.
	Throw

	// Fake invokes a replacement implementation with the original arguments.
	Fake

	// Resolve produces an already-fulfilled deferred result wrapping the
	// configured value.
	Resolve

	// Reject produces an already-rejected deferred result wrapping the
	// configured error. The call itself does not fail.
	Reject
)

// String returns the strategy name for log fields and test output.
func (k Kind) String() string {
	switch k {
	case CallThrough:
		return "call-through"
	case Return:
		return "return"
	case Sequence:
		return "sequence"
	case Throw:
		return "throw"
	case Fake:
		return "fake"
	case Resolve:
		return "resolve"
	case Reject:
		return "reject"
	}
	return "unknown"
}

// Behavior is a tagged variant: Kind selects the strategy and only the
// payload fields that strategy needs are set. Consumers dispatch with an
// exhaustive switch on Kind rather than probing payloads.
type Behavior struct {
	// Kind selects the strategy.
	Kind Kind

	// Values carries the fixed tuple for Return, the per-call values for
	// Sequence, and the single wrapped value for Resolve.
	Values []any

	// Err carries the payload for Throw and Reject.
	Err error

	// Fn carries the replacement implementation for Fake.
	Fn any
}

// NewCallThrough returns the initial, delegating behavior.
func NewCallThrough() Behavior { return Behavior{Kind: CallThrough} }

// NewReturn returns a behavior producing the given tuple on every call.
func NewReturn(vals ...any) Behavior { return Behavior{Kind: Return, Values: vals} }

// NewSequence returns a behavior producing one value per call, repeating the
// last value once the sequence is exhausted.
func NewSequence(vals ...any) Behavior { return Behavior{Kind: Sequence, Values: vals} }

// NewThrow returns a behavior delivering err to the caller.
func NewThrow(err error) Behavior { return Behavior{Kind: Throw, Err: err} }

// NewFake returns a behavior invoking fn in place of the original. fn must
// match the substitute's signature.
func NewFake(fn any) Behavior { return Behavior{Kind: Fake, Fn: fn} }

// NewResolve returns a behavior producing a fulfilled deferred result.
func NewResolve(v any) Behavior { return Behavior{Kind: Resolve, Values: []any{v}} }

// NewReject returns a behavior producing a rejected deferred result.
func NewReject(err error) Behavior { return Behavior{Kind: Reject, Err: err} }

// Locking reports whether installing this behavior as the default engages
// the enqueue lock: true for the fixed-value and deferred-result strategies,
// false for call-through, throw and fake.
func (b Behavior) Locking() bool {
	return b.Kind == Return || b.Kind == Resolve || b.Kind == Reject
}

// Queue is a FIFO of one-time behaviors consumed destructively before the
// default behavior is consulted. The zero value is an empty queue.
type Queue struct {
	mu    sync.Mutex
	items []Behavior
}

// Push appends one behavior to the back of the queue.
func (q *Queue) Push(b Behavior) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, b)
}

// Pop removes and returns the front behavior. The second return is false
// when the queue is empty.
func (q *Queue) Pop() (Behavior, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Behavior{}, false
	}
	b := q.items[0]
	q.items = q.items[1:]
	return b, true
}

// Len returns the number of queued behaviors.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear discards all queued behaviors.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}
