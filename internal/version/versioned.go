// Package version provides an immutable, generically typed snapshot wrapper.
//
// A Versioned value records the payload exactly as it was handed over. The
// wrapper takes ownership of the payload; callers that need to keep using
// their own copy must clone before capturing.
package version

// Versioned pairs a payload with the version it was captured at. Version is
// fixed at construction; no increment path exists.
type Versioned[O any] struct {
	Version uint32
	Obj     O
}

// Capture consumes obj and returns it wrapped as version 1. The payload is
// stored as passed in: nothing is copied, so backing arrays keep the exact
// length and capacity they had at the call site.
func Capture[O any](obj O) Versioned[O] {
	return Versioned[O]{
		Version: 1,
		Obj:     obj,
	}
}
