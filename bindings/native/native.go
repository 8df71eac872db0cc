// Package native implements the core Pdfium bindings against a statically
// linked library: symbols are resolved from the current process image rather
// than a shared object opened at runtime. It deliberately implements only
// bindings.Core (plus file loading and saving); promoting it to the full
// contract goes through bindings.Full.
//
// Not safe for concurrent use; callers serialize access themselves.
package native

import (
	"fmt"
	"sync"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/observability"
)

// Bindings resolves the core entry points from the current process.
type Bindings struct {
	cfg bindings.Config
	log observability.Logger
	api api

	mu      sync.Mutex
	docData map[ffi.Document][]byte
	docFile map[ffi.Document]*fileAccessState
	bitmaps map[ffi.Bitmap][]byte
}

// Option configures Load.
type Option func(*options)

type options struct {
	cfg    bindings.Config
	logger observability.Logger
}

// WithConfig selects the build variant to resolve against.
func WithConfig(cfg bindings.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger attaches a logger.
func WithLogger(l observability.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Load resolves the core entry points from the process image. It verifies the
// library is actually linked in before resolving the full set: the probe
// symbol must resolve, and must resolve to the same address twice, which
// catches lazy-binding stubs that would defer the failure to first call.
func Load(opts ...Option) (*Bindings, error) {
	o := options{
		cfg:    bindings.DefaultConfig(),
		logger: observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := probeLinkedLibrary(); err != nil {
		return nil, err
	}

	b := &Bindings{
		cfg:     o.cfg,
		log:     o.logger,
		docData: make(map[ffi.Document][]byte),
		docFile: make(map[ffi.Document]*fileAccessState),
		bitmaps: make(map[ffi.Bitmap][]byte),
	}
	if err := b.api.resolve(); err != nil {
		return nil, err
	}
	b.log.Info("pdfium symbols resolved",
		observability.String("backend", "native"))
	return b, nil
}

// Config reports the build variant this backend was resolved against.
func (b *Bindings) Config() bindings.Config { return b.cfg }

func probeLinkedLibrary() error {
	const probe = "FPDF_InitLibrary"
	first, err := lookupSymbol(probe)
	if err != nil {
		return fmt.Errorf("native: pdfium is not linked into this binary: %w", err)
	}
	second, err := lookupSymbol(probe)
	if err != nil || second != first {
		return fmt.Errorf("native: unstable resolution of %s", probe)
	}
	return nil
}

var (
	_ bindings.Core         = (*Bindings)(nil)
	_ bindings.FileBindings = (*Bindings)(nil)
	_ bindings.SaveBindings = (*Bindings)(nil)
)
