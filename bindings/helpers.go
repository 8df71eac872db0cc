package bindings

import (
	"errors"
	"fmt"

	"github.com/wudi/pdfium/ffi"
)

// Pdfium reports failure through C-style booleans and null handles rather
// than structured errors. These helpers are the single place truthiness and
// last-error classification are defined.

// IsTrue reports whether a Pdfium FPDF_BOOL is truthy. Any non-zero value is
// true, matching the C convention.
func IsTrue(b ffi.Bool) bool { return b != ffi.False }

// Bool converts a Go bool to Pdfium's FPDF_BOOL.
func Bool(b bool) ffi.Bool {
	if b {
		return ffi.True
	}
	return ffi.False
}

// Sentinel errors for the FPDF_ERR_* code space.
var (
	ErrUnknown  = errors.New("pdfium: unknown error")
	ErrFile     = errors.New("pdfium: file not found or could not be opened")
	ErrFormat   = errors.New("pdfium: file is not a PDF or is corrupted")
	ErrPassword = errors.New("pdfium: password required or incorrect password")
	ErrSecurity = errors.New("pdfium: unsupported security scheme")
	ErrPage     = errors.New("pdfium: page not found or content error")
)

// LastError consults FPDF_GetLastError and maps the reported code to a
// sentinel error. It returns nil when Pdfium reports success; callers that
// observed a failure signal despite a nil result here must treat the failure
// as an internal library error of unknown cause rather than fabricate a more
// specific one.
func LastError(lib Library) error {
	return ErrorCodeToError(lib.FPDF_GetLastError())
}

// ErrorCodeToError maps an FPDF_ERR_* code to a sentinel error, or nil for
// success.
func ErrorCodeToError(code ffi.ErrorCode) error {
	switch code {
	case ffi.ErrSuccess:
		return nil
	case ffi.ErrUnknown:
		return ErrUnknown
	case ffi.ErrFile:
		return ErrFile
	case ffi.ErrFormat:
		return ErrFormat
	case ffi.ErrPassword:
		return ErrPassword
	case ffi.ErrSecurity:
		return ErrSecurity
	case ffi.ErrPage:
		return ErrPage
	default:
		return fmt.Errorf("pdfium: unrecognized error code %d", code)
	}
}
