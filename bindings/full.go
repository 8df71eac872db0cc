package bindings

import "errors"

// ErrNotAvailable reports an entry point the current backend does not
// provide, as opposed to one the native library executed and failed.
var ErrNotAvailable = errors.New("pdfium: entry point not available on this backend")

// full promotes a Core backend to the Bindings contract. The embedded Core
// answers the core groups; everything else falls through to the
// failure-sentinel defaults, which the wrapper layer classifies like any
// other native failure.
type full struct {
	Core
	UnimplementedExtended
}

// Full adapts a core-only backend (typically the statically linked one) to
// the full Bindings contract. Entry points outside Core report plain failure:
// null handles, false booleans and zero lengths. Use it when an API requires
// Bindings but only core functionality will actually be exercised.
func Full(core Core) Bindings {
	return full{Core: core}
}

// ExtendedAvailable marks the promotion for callers that want to classify a
// non-core failure as ErrNotAvailable rather than a native error.
func (full) ExtendedAvailable() bool { return false }

// ExtendedAvailable reports whether b genuinely implements the non-core
// groups. Backends are assumed complete unless they opt out the way Full's
// promotion does.
func ExtendedAvailable(b Bindings) bool {
	if c, ok := b.(interface{ ExtendedAvailable() bool }); ok {
		return c.ExtendedAvailable()
	}
	return true
}
