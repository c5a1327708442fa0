package intercept

import (
	"fmt"
	"io"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/stubkit-project/stubkit/call"
	"github.com/stubkit-project/stubkit/spy"
)

// Accessor models a member implemented as a getter/setter pair. Declare a
// struct field of this type to make the pair interceptable as one member;
// both funcs are wrapped independently under a single handle. Either
// accessor may be nil, but not both.
type Accessor struct {
	// Get is the getter function, or nil when the member is write-only.
	Get any

	// Set is the setter function, or nil when the member is read-only.
	Set any
}

var accessorType = reflect.TypeOf(Accessor{})

// Config represents the configuration for creating an Engine.
type Config struct {
	// Registry tracks the engine's active interceptions. Defaults to the
	// process-wide registry shared by the default engine.
	Registry *Registry

	// Logger receives debug events on wrap and restore. Defaults to a
	// discarding logger so the engine is silent unless opted in.
	Logger *zerolog.Logger

	// Equal is the equality predicate handed to every spy the engine
	// creates, consumed by the CalledWith queries.
	Equal call.Equality
}

// Engine replaces live members with tracked substitutes and restores the
// displaced originals exactly.
type Engine struct {
	registry *Registry
	logger   zerolog.Logger
	equal    call.Equality
}

// New creates an Engine based on the provided Config.
func New(cfg Config) (*Engine, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = defaultRegistry
	}

	logger := zerolog.New(io.Discard)
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Engine{
		registry: reg,
		logger:   logger,
		equal:    cfg.Equal,
	}, nil
}

// Registry returns the registry backing this engine.
func (e *Engine) Registry() *Registry { return e.registry }

// Method replaces the named member of owner with a tracked substitute.
// Owner must be a non-nil pointer to a struct; the member must be an
// exported field holding a non-nil function or an Accessor pair. The
// displaced value is snapshotted and written back verbatim on Restore.
// Wrapping a member that is already wrapped fails with ErrAlreadyWrapped;
// restore first.
func (e *Engine) Method(owner any, member string) (*Handle, error) {
	ov := reflect.ValueOf(owner)
	if !ov.IsValid() || ov.Kind() != reflect.Pointer || ov.IsNil() || ov.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidOwner, owner)
	}

	field := ov.Elem().FieldByName(member)
	if !field.IsValid() || !field.CanSet() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, member)
	}

	h := &Handle{
		engine: e,
		key:    memberKey{owner: ov.Pointer(), member: member},
		target: field,
		snap:   reflect.ValueOf(field.Interface()),
	}

	switch {
	case field.Kind() == reflect.Func:
		if field.IsNil() {
			return nil, fmt.Errorf("%w: %s is a nil function", ErrNotCallable, member)
		}
		sp, err := spy.New(spy.Config{
			Name:     member,
			Original: field.Interface(),
			Receiver: owner,
			Equal:    e.equal,
		})
		if err != nil {
			return nil, err
		}
		h.primary = sp
		if err := e.install(h, reflect.ValueOf(sp.Fn())); err != nil {
			return nil, err
		}

	case field.Type() == accessorType:
		acc := field.Interface().(Accessor)
		getter, setter, err := e.wrapAccessor(owner, member, acc)
		if err != nil {
			return nil, err
		}
		h.getter, h.setter = getter, setter
		h.primary = getter
		if h.primary == nil {
			h.primary = setter
		}

		installed := Accessor{}
		if getter != nil {
			installed.Get = getter.Fn()
		}
		if setter != nil {
			installed.Set = setter.Fn()
		}
		if err := e.install(h, reflect.ValueOf(installed)); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %s is %s", ErrNotCallable, member, field.Type())
	}

	e.logger.Debug().
		Str("member", member).
		Str("spy", h.primary.ID().String()).
		Msg("wrapped member")
	return h, nil
}

func (e *Engine) wrapAccessor(owner any, member string, acc Accessor) (getter, setter *spy.Spy, err error) {
	if acc.Get == nil && acc.Set == nil {
		return nil, nil, fmt.Errorf("%w: %s has no accessors", ErrNotCallable, member)
	}

	if acc.Get != nil {
		getter, err = spy.New(spy.Config{
			Name:     member + ".get",
			Original: acc.Get,
			Receiver: owner,
			Equal:    e.equal,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s getter: %v", ErrNotCallable, member, err)
		}
	}
	if acc.Set != nil {
		setter, err = spy.New(spy.Config{
			Name:     member + ".set",
			Original: acc.Set,
			Receiver: owner,
			Equal:    e.equal,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s setter: %v", ErrNotCallable, member, err)
		}
	}
	return getter, setter, nil
}

// Function replaces the function variable pointed to by target with a
// tracked substitute, giving standalone callbacks the same registry
// bookkeeping and bulk-restore guarantee as members.
func (e *Engine) Function(name string, target any) (*Handle, error) {
	tv := reflect.ValueOf(target)
	if !tv.IsValid() || tv.Kind() != reflect.Pointer || tv.IsNil() || tv.Elem().Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	fn := tv.Elem()
	if fn.IsNil() {
		return nil, fmt.Errorf("%w: %s is a nil function", ErrNotCallable, name)
	}

	sp, err := spy.New(spy.Config{
		Name:     name,
		Original: fn.Interface(),
		Equal:    e.equal,
	})
	if err != nil {
		return nil, err
	}

	h := &Handle{
		engine:  e,
		key:     memberKey{owner: tv.Pointer()},
		target:  fn,
		snap:    reflect.ValueOf(fn.Interface()),
		primary: sp,
	}
	if err := e.install(h, reflect.ValueOf(sp.Fn())); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("function", name).
		Str("spy", sp.ID().String()).
		Msg("wrapped function")
	return h, nil
}

// install claims the interception point and swaps the substitute in. The
// claim happens first so a duplicate wrap never mutates the owner.
func (e *Engine) install(h *Handle, substitute reflect.Value) error {
	if err := e.registry.claim(h); err != nil {
		return err
	}
	h.target.Set(substitute)
	return nil
}
