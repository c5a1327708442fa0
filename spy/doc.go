/*
Package spy provides the base tracked substitute: a function stand-in that
records every invocation and answers according to its configured behavior.

# Basic Usage

Create a standalone spy around an original implementation and inject its
substitute wherever a callback is expected:

	s, err := spy.New(spy.Config{
		Name:     "pricer",
		Original: func(sku string) (int, error) { return 100, nil },
		Equal:    reflect.DeepEqual,
	})
	if err != nil {
		// handle
	}

	price := s.Fn().(func(string) (int, error))
	got, _ := price("sku-1")
	// got == 100, s.CalledOnce() == true

With a nil Original the spy substitutes a no-op func(...any) any, which is
the convenient shape for injecting trackable callbacks.

# Behaviors

Fluent setters choose what the substitute does next:

	s.CallThrough()          // delegate to the original (initial behavior)
	s.Returns(42, nil)       // fixed tuple, every call
	s.ReturnValues(1, 2, 3)  // one value per call, last value repeats
	s.Throws(errBoom)        // deliver via error return, or panic
	s.Calls(replacement)     // run a fake with the same signature

ReturnValues keeps producing its final value once exhausted. That repetition
is a long-standing contract consumers rely on; the async one-time queue
behaves differently and falls through to the default when empty.

# Inspection

Every call appends an immutable record. Counting queries are O(1); argument
matching runs the externally supplied equality predicate over each record:

	s.CallCount()
	s.CalledWith("sku-1")
	s.LastCall().Returned

Reset empties the records and rewinds the sequence cursor without touching
the behavior configuration.
*/
package spy
