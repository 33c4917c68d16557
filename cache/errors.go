package cache

import "fmt"

// SerializationError reports an argument or result value that could not be
// serialized. Argument identifies the offending value: "args[i]" for a
// positional argument, "named[name]" for a named argument, or "result" for
// a wrapped function's return value.
type SerializationError struct {
	Argument string
	Err      error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("cache: cannot serialize %s: %v", e.Argument, e.Err)
}

// Unwrap returns the underlying serialization failure.
func (e *SerializationError) Unwrap() error { return e.Err }

// StoreUnavailableError reports a persistent store that could not be opened
// or created (permissions, corruption, disk full). The cache never falls
// back to uncached execution; the error surfaces to the caller of the
// wrapped function.
type StoreUnavailableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("cache: store %s unavailable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying open failure.
func (e *StoreUnavailableError) Unwrap() error { return e.Err }
