// Package dynamic implements the Pdfium bindings contract by loading the
// shared library at runtime and resolving every entry point through the
// platform dynamic linker. It is the general-purpose backend: full contract,
// file loading, and serialization through native write callbacks.
//
// The returned Bindings is not safe for concurrent use. Pdfium itself is
// single-threaded; callers that share one Bindings across goroutines must
// serialize access themselves.
package dynamic

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/observability"
)

// Bindings is a dynamically loaded Pdfium library. It implements
// bindings.Bindings, bindings.FileBindings and bindings.SaveBindings, plus
// bindings.FormBindings when loaded with Config.Forms.
type Bindings struct {
	cfg bindings.Config
	log observability.Logger

	handle uintptr
	api    api

	// Pdfium reads document bytes lazily, so memory-backed buffers and
	// custom-read state must outlive the document handle they back.
	mu      sync.Mutex
	docData map[ffi.Document][]byte
	docFile map[ffi.Document]*fileAccessState
	bitmaps map[ffi.Bitmap][]byte
}

// Option configures Load.
type Option func(*options)

type options struct {
	path   string
	cfg    bindings.Config
	logger observability.Logger
}

// WithLibraryPath loads the shared library from an explicit path instead of
// probing the platform default names.
func WithLibraryPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithConfig selects the build variant to resolve against.
func WithConfig(cfg bindings.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l observability.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Load opens the Pdfium shared library and resolves the full contract.
// Resolution is eager: a library build missing a required export fails here,
// not at call time. Load does not initialize the library; the caller (or the
// facade) owns the FPDF_InitLibrary/FPDF_DestroyLibrary pairing.
func Load(opts ...Option) (*Bindings, error) {
	o := options{
		cfg:    bindings.DefaultConfig(),
		logger: observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		handle uintptr
		err    error
	)
	if o.path != "" {
		handle, err = openLibrary(o.path)
		if err != nil {
			return nil, fmt.Errorf("dynamic: open %s: %w", o.path, err)
		}
	} else {
		name := defaultLibraryName()
		handle, err = openLibrary(name)
		if err != nil {
			return nil, fmt.Errorf("dynamic: open %s: %w", name, err)
		}
		o.path = name
	}

	b := &Bindings{
		cfg:     o.cfg,
		log:     o.logger,
		handle:  handle,
		docData: make(map[ffi.Document][]byte),
		docFile: make(map[ffi.Document]*fileAccessState),
		bitmaps: make(map[ffi.Bitmap][]byte),
	}
	if err := b.api.resolve(handle, o.cfg); err != nil {
		closeLibrary(handle)
		return nil, err
	}
	b.log.Info("pdfium library loaded",
		observability.String("path", o.path),
		observability.String("backend", "dynamic"))
	return b, nil
}

// Close unloads the shared library. The caller must have destroyed the
// library state (FPDF_DestroyLibrary) and closed every document first.
func (b *Bindings) Close() error {
	if b.handle == 0 {
		return nil
	}
	err := closeLibrary(b.handle)
	b.handle = 0
	if err != nil {
		return fmt.Errorf("dynamic: close library: %w", err)
	}
	return nil
}

// Config reports the build variant this library was resolved against.
func (b *Bindings) Config() bindings.Config { return b.cfg }

// registrar resolves symbols and records the first failure instead of
// panicking per purego's default.
type registrar struct {
	lib uintptr
	err error
}

func (r *registrar) register(fptr any, name string) {
	if r.err != nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.err = fmt.Errorf("dynamic: resolve %s: %v", name, rec)
		}
	}()
	purego.RegisterLibFunc(fptr, r.lib, name)
}

// registerOptional resolves a symbol if present and leaves the function
// pointer nil otherwise. Used for version-gated exports.
func (r *registrar) registerOptional(fptr any, name string) {
	defer func() { recover() }()
	purego.RegisterLibFunc(fptr, r.lib, name)
}

func cstrOrNil(s string) []byte {
	if s == "" {
		return nil
	}
	buf, err := ffi.CString(s)
	if err != nil {
		return nil
	}
	return buf
}

func widestr(s string) []byte {
	buf, err := ffi.EncodeUTF16LE(s)
	if err != nil {
		return nil
	}
	return buf
}

var (
	_ bindings.Bindings     = (*Bindings)(nil)
	_ bindings.FileBindings = (*Bindings)(nil)
	_ bindings.SaveBindings = (*Bindings)(nil)
	_ bindings.FormBindings = (*Bindings)(nil)
)
