package spy

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stubkit-project/stubkit/behavior"
	"github.com/stubkit-project/stubkit/call"
	"github.com/stubkit-project/stubkit/future"
)

var (
	// ErrNotAFunction is returned when the original implementation is not a
	// callable function value.
	ErrNotAFunction = errors.New("original implementation is not a function")

	// ErrNoEquality signals that an argument-matching query ran without a
	// configured equality predicate.
	ErrNoEquality = errors.New("no equality predicate configured")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Config represents the configuration for creating a Spy.
type Config struct {
	// Name identifies the spy in diagnostics. Defaults to "spy".
	Name string

	// Original is the displaced implementation used by call-through and
	// restoration. When nil the spy substitutes a no-op with signature
	// func(...any) any returning nil.
	Original any

	// Receiver is recorded on every call as the invocation receiver. Nil
	// for standalone spies.
	Receiver any

	// Equal is the externally supplied deep-equality predicate consumed by
	// the CalledWith queries. The spy never implements equality itself.
	Equal call.Equality
}

// Spy is a tracked substitute for a single function. It records every
// invocation and answers to its current behavior configuration: a one-time
// behavior queue consumed front-first, then the default behavior.
type Spy struct {
	id   uuid.UUID
	name string

	fnType   reflect.Type
	fn       any
	original reflect.Value
	receiver any
	equal    call.Equality

	records call.List
	queue   behavior.Queue

	mu     sync.Mutex
	def    behavior.Behavior
	locked bool
	cursor int
}

// New creates a Spy based on the provided Config. The initial behavior is
// call-through with an empty one-time queue.
func New(cfg Config) (*Spy, error) {
	orig := cfg.Original
	if orig == nil {
		orig = func(_ ...any) any { return nil }
	}

	ov := reflect.ValueOf(orig)
	if ov.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T", ErrNotAFunction, cfg.Original)
	}
	if ov.IsNil() {
		return nil, fmt.Errorf("%w: got a nil function", ErrNotAFunction)
	}

	name := cfg.Name
	if name == "" {
		name = "spy"
	}

	s := &Spy{
		id:       uuid.New(),
		name:     name,
		fnType:   ov.Type(),
		original: ov,
		receiver: cfg.Receiver,
		equal:    cfg.Equal,
		def:      behavior.NewCallThrough(),
	}
	s.fn = reflect.MakeFunc(s.fnType, s.invoke).Interface()
	return s, nil
}

// Fn returns the substitute function. Its type is identical to the
// original's, so it can be installed anywhere the original was accepted.
func (s *Spy) Fn() any { return s.fn }

// Type returns the function type the spy substitutes.
func (s *Spy) Type() reflect.Type { return s.fnType }

// Original returns the displaced implementation.
func (s *Spy) Original() any { return s.original.Interface() }

// ID returns the spy's unique identity.
func (s *Spy) ID() uuid.UUID { return s.id }

// Name returns the configured name.
func (s *Spy) Name() string { return s.name }

// String implements fmt.Stringer.
func (s *Spy) String() string {
	return fmt.Sprintf("spy %s (%s, %d calls)", s.name, s.id, s.CallCount())
}

// Invoke calls the substitute with loosely typed arguments, conforming each
// to the corresponding parameter type and zero-filling missing trailing
// arguments. It returns the produced values as a slice.
func (s *Spy) Invoke(args ...any) []any {
	t := s.fnType
	var in []reflect.Value

	if t.IsVariadic() {
		fixed := t.NumIn() - 1
		if len(args) < fixed {
			panic(fmt.Sprintf("%s: want at least %d arguments, got %d", s.name, fixed, len(args)))
		}
		in = make([]reflect.Value, 0, len(args))
		for i := 0; i < fixed; i++ {
			in = append(in, conformValue(args[i], t.In(i), s.name))
		}
		elem := t.In(fixed).Elem()
		for _, a := range args[fixed:] {
			in = append(in, conformValue(a, elem, s.name))
		}
	} else {
		if len(args) > t.NumIn() {
			panic(fmt.Sprintf("%s: want at most %d arguments, got %d", s.name, t.NumIn(), len(args)))
		}
		in = make([]reflect.Value, t.NumIn())
		for i := range in {
			if i < len(args) {
				in[i] = conformValue(args[i], t.In(i), s.name)
			} else {
				in[i] = reflect.Zero(t.In(i))
			}
		}
	}

	out := reflect.ValueOf(s.fn).Call(in)
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals
}

// invoke is the substitute pipeline: snapshot the call, pick the next
// behavior (queue front first, default otherwise), execute it, append the
// completed record, and propagate the outcome unchanged.
func (s *Spy) invoke(in []reflect.Value) []reflect.Value {
	rec := &call.Record{
		Args:     s.recordArgs(in),
		Receiver: s.receiver,
		At:       time.Now(),
	}

	b, ok := s.queue.Pop()
	if !ok {
		b = s.defaultBehavior()
	}

	switch b.Kind {
	case behavior.CallThrough:
		return s.run(s.original, in, rec)
	case behavior.Fake:
		return s.run(s.fakeValue(b.Fn), in, rec)
	case behavior.Return:
		return s.finish(rec, s.conform(b.Values))
	case behavior.Sequence:
		return s.finish(rec, s.conform([]any{s.nextInSequence(b)}))
	case behavior.Throw:
		rec.Err = b.Err
		s.records.Append(rec)
		return s.deliver(b.Err)
	case behavior.Resolve:
		return s.finish(rec, s.conform([]any{future.Resolved(firstValue(b.Values))}))
	case behavior.Reject:
		// The call itself succeeds; the rejection settles the returned
		// result and is pre-observed so it never surfaces elsewhere.
		rec.Err = b.Err
		return s.finish(rec, s.conform([]any{future.Rejected(b.Err).Observe()}))
	}

	return s.finish(rec, s.conform(nil))
}

// run invokes fn with the original arguments, recording a panic before
// re-raising it.
func (s *Spy) run(fn reflect.Value, in []reflect.Value, rec *call.Record) []reflect.Value {
	defer func() {
		if p := recover(); p != nil {
			rec.Err = recoveredError(p)
			s.records.Append(rec)
			panic(p)
		}
	}()

	var out []reflect.Value
	if s.fnType.IsVariadic() {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}
	return s.finish(rec, out)
}

// finish completes the record with the produced values and appends it. A
// non-nil error in the signature's final error position is recorded, but a
// nil one never overwrites an already-recorded rejection payload.
func (s *Spy) finish(rec *call.Record, out []reflect.Value) []reflect.Value {
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	rec.Returned = vals
	if err := s.errorAt(out); err != nil {
		rec.Err = err
	}
	s.records.Append(rec)
	return out
}

func (s *Spy) errorAt(out []reflect.Value) error {
	n := s.fnType.NumOut()
	if n == 0 || s.fnType.Out(n-1) != errorType {
		return nil
	}
	if out[n-1].IsNil() {
		return nil
	}
	return out[n-1].Interface().(error)
}

// deliver surfaces a configured error the way the signature allows: through
// the final error return when there is one, by panicking otherwise.
func (s *Spy) deliver(err error) []reflect.Value {
	t := s.fnType
	n := t.NumOut()
	if n == 0 || t.Out(n-1) != errorType {
		panic(err)
	}

	out := make([]reflect.Value, n)
	for i := 0; i < n-1; i++ {
		out[i] = reflect.Zero(t.Out(i))
	}
	ev := reflect.New(errorType).Elem()
	ev.Set(reflect.ValueOf(err))
	out[n-1] = ev
	return out
}

func (s *Spy) defaultBehavior() behavior.Behavior {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def
}

// nextInSequence returns the value at the cursor and advances it, but never
// past the final index: an exhausted sequence keeps producing its last
// value. This is the documented legacy contract; the one-time queue instead
// falls through to the default once empty.
func (s *Spy) nextInSequence(b behavior.Behavior) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(b.Values) == 0 {
		return nil
	}
	if s.cursor >= len(b.Values) {
		s.cursor = len(b.Values) - 1
	}
	v := b.Values[s.cursor]
	if s.cursor < len(b.Values)-1 {
		s.cursor++
	}
	return v
}

func (s *Spy) fakeValue(fn any) reflect.Value {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("%s: fake implementation %T is not a function", s.name, fn))
	}
	if v.Type() != s.fnType {
		panic(fmt.Sprintf("%s: fake implementation %s does not match %s", s.name, v.Type(), s.fnType))
	}
	return v
}

// recordArgs flattens the incoming values, expanding a variadic tail so each
// argument occupies one position in the record.
func (s *Spy) recordArgs(in []reflect.Value) []any {
	variadic := s.fnType.IsVariadic()
	args := make([]any, 0, len(in))
	for i, v := range in {
		if variadic && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}

// conform maps configured values onto the signature's return types, boxing
// into interface positions, widening compatible numerics, and zero-filling
// positions with no configured value (so a missing error position stays nil).
func (s *Spy) conform(vals []any) []reflect.Value {
	t := s.fnType
	out := make([]reflect.Value, t.NumOut())
	for i := range out {
		if i >= len(vals) || vals[i] == nil {
			out[i] = reflect.Zero(t.Out(i))
			continue
		}
		out[i] = conformValue(vals[i], t.Out(i), s.name)
	}
	return out
}

func conformValue(val any, target reflect.Type, name string) reflect.Value {
	if val == nil {
		return reflect.Zero(target)
	}
	v := reflect.ValueOf(val)
	switch {
	case v.Type() == target:
		return v
	case v.Type().AssignableTo(target):
		boxed := reflect.New(target).Elem()
		boxed.Set(v)
		return boxed
	case isNumeric(v.Kind()) && isNumeric(target.Kind()) && v.Type().ConvertibleTo(target):
		return v.Convert(target)
	}
	panic(fmt.Sprintf("%s: cannot use %T as %s", name, val, target))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func recoveredError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}

func firstValue(vals []any) any {
	if len(vals) == 0 {
		return nil
	}
	return vals[0]
}
