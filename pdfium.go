// Package pdfium layers a Go-idiomatic API over a Pdfium backend: documents,
// pages, text extraction, rendering, page objects, annotations, navigation,
// attachments and signatures, each wrapping a native handle and reporting
// failures as errors instead of null handles.
//
// Pdfium itself is not thread-safe and this package adds no locking. Callers
// that share a Pdfium instance across goroutines must serialize every call,
// including calls on wrappers derived from it.
package pdfium

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/observability"
)

var (
	// ErrInternalUnknown reports a native failure for which Pdfium's
	// last-error slot claims success. The library failed for a reason it does
	// not expose.
	ErrInternalUnknown = errors.New("pdfium: library internal error, reason unknown")

	// ErrClosed reports use of the facade after Close.
	ErrClosed = errors.New("pdfium: library already closed")

	// ErrOutOfBounds reports an index outside a collection's current length.
	ErrOutOfBounds = errors.New("pdfium: index out of bounds")
)

// Pdfium owns the process-wide library lifecycle for one backend instance.
// Construction calls FPDF_InitLibrary exactly once; Close calls
// FPDF_DestroyLibrary exactly once. Every handle obtained through the
// instance is invalid after Close.
type Pdfium struct {
	b      bindings.Bindings
	log    observability.Logger
	closed bool
}

// Option configures New.
type Option func(*Pdfium)

// WithLogger attaches a structured logger to the facade.
func WithLogger(l observability.Logger) Option {
	return func(p *Pdfium) { p.log = l }
}

// New wraps a backend and initializes the native library.
func New(b bindings.Bindings, opts ...Option) *Pdfium {
	p := &Pdfium{b: b, log: observability.NopLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	p.b.FPDF_InitLibrary()
	p.log.Info("pdfium initialized")
	return p
}

// Close tears the native library down. Idempotent.
func (p *Pdfium) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.b.FPDF_DestroyLibrary()
	p.log.Info("pdfium destroyed")
}

// Bindings exposes the underlying backend for callers that need an entry
// point the wrappers do not cover.
func (p *Pdfium) Bindings() bindings.Bindings { return p.b }

// lastError classifies a failure the native library just signalled through a
// null handle or false boolean.
func (p *Pdfium) lastError() error {
	if err := bindings.LastError(p.b); err != nil {
		return err
	}
	return ErrInternalUnknown
}

// extendedError classifies a failure of a non-core entry point, which on a
// promoted core-only backend means the entry point does not exist at all.
func (p *Pdfium) extendedError() error {
	if !bindings.ExtendedAvailable(p.b) {
		return bindings.ErrNotAvailable
	}
	return p.lastError()
}

// NewDocument creates an empty document.
func (p *Pdfium) NewDocument() (*Document, error) {
	if p.closed {
		return nil, ErrClosed
	}
	handle := p.b.FPDF_CreateNewDocument()
	if handle == 0 {
		return nil, p.extendedError()
	}
	return &Document{p: p, handle: handle}, nil
}

// OpenBytes loads a document from memory. data must stay unmodified until
// the document is closed; the native library reads from it lazily.
func (p *Pdfium) OpenBytes(data []byte, password string) (*Document, error) {
	if p.closed {
		return nil, ErrClosed
	}
	handle := p.b.FPDF_LoadMemDocument(data, password)
	if handle == 0 {
		return nil, fmt.Errorf("open document: %w", p.lastError())
	}
	p.log.Debug("document opened",
		observability.Int("bytes", len(data)),
		observability.Handle("doc", uint64(handle)))
	return &Document{p: p, handle: handle}, nil
}

// OpenFile loads a document from a file path. The backend must provide
// filesystem access; passing a backend without it is a compile-time error.
// files is normally the same backend instance handed to New.
func (p *Pdfium) OpenFile(files bindings.FileBindings, path, password string) (*Document, error) {
	if p.closed {
		return nil, ErrClosed
	}
	handle := files.FPDF_LoadDocument(path, password)
	if handle == 0 {
		return nil, fmt.Errorf("open %s: %w", path, p.lastError())
	}
	p.log.Debug("document opened", observability.String("path", path))
	return &Document{p: p, handle: handle}, nil
}

// OpenReader loads a document through a host read callback. r must stay
// usable until the document is closed; the native library reads on demand.
func (p *Pdfium) OpenReader(files bindings.FileBindings, r io.ReaderAt, size uint64, password string) (*Document, error) {
	if p.closed {
		return nil, ErrClosed
	}
	handle := files.FPDF_LoadCustomDocument(r, size, password)
	if handle == 0 {
		return nil, fmt.Errorf("open reader: %w", p.lastError())
	}
	return &Document{p: p, handle: handle}, nil
}

// Collection is a uniform live view over an indexed native sequence. Lengths
// and elements are fetched fresh from the library on every call; nothing is
// cached, so mutating the underlying document between calls is visible
// immediately. Do not mutate while iterating.
type Collection[T any] struct {
	length func() int
	at     func(int) (T, error)
}

// NewCollection builds a view from a length query and an indexed accessor.
// The accessor is only invoked with indices that passed a fresh bounds check.
func NewCollection[T any](length func() int, at func(int) (T, error)) Collection[T] {
	return Collection[T]{length: length, at: at}
}

// Len returns the current number of elements.
func (c Collection[T]) Len() int { return c.length() }

// IsEmpty reports whether the collection currently has no elements.
func (c Collection[T]) IsEmpty() bool { return c.Len() == 0 }

// Get returns element i, validating i against a fresh length before any
// native indexed call is made.
func (c Collection[T]) Get(i int) (T, error) {
	if i < 0 || i >= c.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrOutOfBounds, i, c.Len())
	}
	return c.at(i)
}

// First returns element 0.
func (c Collection[T]) First() (T, error) { return c.Get(0) }

// Last returns the element at the current length minus one.
func (c Collection[T]) Last() (T, error) { return c.Get(c.Len() - 1) }

// All iterates the collection in index order, re-querying the length each
// step. Iteration stops at the first element that fails to load.
func (c Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.Len(); i++ {
			v, err := c.at(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// utf16Value drives Pdfium's two-call buffer protocol for UTF-16LE valued
// getters: query the byte length, fetch, decode. A zero length means the
// value is absent, which callers treat as the empty string.
func utf16Value(get func(buf []byte) uint64) (string, error) {
	n := get(nil)
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if got := get(buf); got == 0 {
		return "", ErrInternalUnknown
	}
	return ffi.DecodeUTF16LE(buf)
}

// bytesValue is utf16Value's raw-bytes counterpart.
func bytesValue(get func(buf []byte) uint64) ([]byte, error) {
	n := get(nil)
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if got := get(buf); got == 0 {
		return nil, ErrInternalUnknown
	}
	return buf, nil
}

// asciiValue decodes a two-call getter that yields NUL-terminated bytes.
func asciiValue(get func(buf []byte) uint64) (string, error) {
	raw, err := bytesValue(get)
	if err != nil {
		return "", err
	}
	for len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	return string(raw), nil
}
