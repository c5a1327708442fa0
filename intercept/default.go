package intercept

// defaultRegistry is the process-wide set of active interceptions backing
// the default engine. Test schedulers typically call RestoreAll against it
// from an after-each hook so no substitute leaks across test boundaries.
var defaultRegistry = NewRegistry()

var defaultEngine = mustEngine()

func mustEngine() *Engine {
	e, err := New(Config{Registry: defaultRegistry})
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the engine backed by the process-wide registry.
func Default() *Engine { return defaultEngine }

// Method wraps a member using the default engine.
func Method(owner any, member string) (*Handle, error) {
	return defaultEngine.Method(owner, member)
}

// Function wraps a function variable using the default engine.
func Function(name string, target any) (*Handle, error) {
	return defaultEngine.Function(name, target)
}

// RestoreAll restores every interception active on the process-wide
// registry and clears it. Idempotent.
func RestoreAll() { defaultRegistry.RestoreAll() }
