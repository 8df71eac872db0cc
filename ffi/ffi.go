// Package ffi declares the C-compatible types, constants and struct layouts
// that mirror Pdfium's public headers. It contains no logic beyond data layout
// and string codec helpers; everything here must match the native ABI
// bit-for-bit.
package ffi

// Handle is an opaque pointer-sized token returned by Pdfium. It identifies a
// native-owned object and is only meaningful as an argument back into the
// library. The Go side never dereferences it.
type Handle = uintptr

// Opaque handle types. Distinct named types so a page handle cannot be passed
// where a document handle is expected.
type (
	Document     uintptr // FPDF_DOCUMENT
	Page         uintptr // FPDF_PAGE
	TextPage     uintptr // FPDF_TEXTPAGE
	Bitmap       uintptr // FPDF_BITMAP
	Annotation   uintptr // FPDF_ANNOTATION
	Font         uintptr // FPDF_FONT
	PageObject   uintptr // FPDF_PAGEOBJECT
	PathSegment  uintptr // FPDF_PATHSEGMENT
	ClipPath     uintptr // FPDF_CLIPPATH
	GlyphPath    uintptr // FPDF_GLYPHPATH
	Bookmark     uintptr // FPDF_BOOKMARK
	Dest         uintptr // FPDF_DEST
	Action       uintptr // FPDF_ACTION
	Link         uintptr // FPDF_LINK
	PageLink     uintptr // FPDF_PAGELINK
	SearchHandle uintptr // FPDF_SCHHANDLE
	Attachment   uintptr // FPDF_ATTACHMENT
	Signature    uintptr // FPDF_SIGNATURE
	FormHandle   uintptr // FPDF_FORMHANDLE
)

// Bool is Pdfium's FPDF_BOOL: a 32-bit integer where zero is false and any
// other value is true.
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// ErrorCode is the value space of FPDF_GetLastError.
type ErrorCode uint64

// FPDF_ERR_* constants from fpdfview.h.
const (
	ErrSuccess  ErrorCode = 0 // No error.
	ErrUnknown  ErrorCode = 1 // Unknown error.
	ErrFile     ErrorCode = 2 // File not found or could not be opened.
	ErrFormat   ErrorCode = 3 // File not in PDF format or corrupted.
	ErrPassword ErrorCode = 4 // Password required or incorrect password.
	ErrSecurity ErrorCode = 5 // Unsupported security scheme.
	ErrPage     ErrorCode = 6 // Page not found or content error.
)
