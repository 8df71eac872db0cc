// Package wasm implements the Pdfium bindings contract against a
// WebAssembly build of the library hosted in-process by wazero. No shared
// library or cgo is involved; the caller supplies the compiled module bytes.
//
// Guest pointers never escape: every buffer crossing the boundary is staged
// through guest malloc/free and copied in or out of linear memory. The
// backend implements bindings.Bindings only. File-path loading needs an
// addressable filesystem and saving needs host-function callbacks through C
// function pointers; neither exists in the sandbox, so FileBindings and
// SaveBindings are deliberately not satisfied. The JPEG file loaders report
// plain failure for the same reason.
//
// Not safe for concurrent use; callers serialize access themselves.
package wasm

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero"
	wazeroapi "github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/observability"
)

// Bindings hosts a Pdfium WebAssembly module.
type Bindings struct {
	ctx     context.Context
	runtime wazero.Runtime
	mod     wazeroapi.Module
	mem     wazeroapi.Memory
	cfg     bindings.Config
	log     observability.Logger

	fns      map[string]wazeroapi.Function
	mallocFn wazeroapi.Function
	freeFn   wazeroapi.Function

	// Guest buffers backing open memory documents; freed on close.
	docBufs map[ffi.Document]uint64
	// Guest buffers holding live search terms; freed on FindClose.
	searchTerms map[ffi.SearchHandle]uint64
}

// Option configures Instantiate.
type Option func(*opts)

type opts struct {
	cfg    bindings.Config
	logger observability.Logger
	rtCfg  wazero.RuntimeConfig
}

// WithConfig selects the build variant of the module.
func WithConfig(cfg bindings.Config) Option {
	return func(o *opts) { o.cfg = cfg }
}

// WithLogger attaches a logger.
func WithLogger(l observability.Logger) Option {
	return func(o *opts) { o.logger = l }
}

// WithRuntimeConfig overrides the wazero runtime configuration, e.g. to
// supply a compilation cache shared across instances.
func WithRuntimeConfig(cfg wazero.RuntimeConfig) Option {
	return func(o *opts) { o.rtCfg = cfg }
}

// Instantiate compiles and instantiates a Pdfium WebAssembly module. The
// module must export the Pdfium C API plus malloc and free. ctx bounds
// compilation and every subsequent native call made through the returned
// Bindings.
func Instantiate(ctx context.Context, wasmBinary []byte, options ...Option) (*Bindings, error) {
	o := opts{
		cfg:    bindings.DefaultConfig(),
		logger: observability.NopLogger{},
		rtCfg:  wazero.NewRuntimeConfig(),
	}
	for _, opt := range options {
		opt(&o)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, o.rtCfg)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	compiled, err := rt.CompileModule(ctx, wasmBinary)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("wasm: compile module: %w", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("pdfium"))
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("wasm: instantiate module: %w", err)
	}

	b := &Bindings{
		ctx:     ctx,
		runtime: rt,
		mod:     mod,
		mem:     mod.Memory(),
		cfg:     o.cfg,
		log:     o.logger,
		fns:     make(map[string]wazeroapi.Function),
		docBufs: make(map[ffi.Document]uint64),
	}
	b.mallocFn = b.export("malloc")
	b.freeFn = b.export("free")
	if b.mallocFn == nil || b.freeFn == nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("wasm: module does not export malloc/free")
	}
	b.log.Info("pdfium module instantiated",
		observability.String("backend", "wasm"),
		observability.Int("memory_pages", int(b.mem.Size()/65536)))
	return b, nil
}

// Close releases the runtime and all guest state.
func (b *Bindings) Close() error {
	return b.runtime.Close(b.ctx)
}

// Config reports the build variant of the hosted module.
func (b *Bindings) Config() bindings.Config { return b.cfg }

// export resolves an exported function, tolerating the leading underscore
// some emscripten toolchains add.
func (b *Bindings) export(name string) wazeroapi.Function {
	if fn := b.mod.ExportedFunction(name); fn != nil {
		return fn
	}
	return b.mod.ExportedFunction("_" + name)
}

// fn resolves and caches an entry point. Resolution happens at first use so
// that module builds with a reduced export surface still work for the calls
// they do support.
func (b *Bindings) fn(name string) wazeroapi.Function {
	if fn, ok := b.fns[name]; ok {
		return fn
	}
	fn := b.export(name)
	b.fns[name] = fn
	return fn
}

// call invokes an exported function and returns its first result, or zero
// for a missing export, a void function, or a trapped call. The zero return
// is indistinguishable from a native failure signal, which is exactly how
// the wrapper layer treats it.
func (b *Bindings) call(name string, args ...uint64) uint64 {
	fn := b.fn(name)
	if fn == nil {
		return 0
	}
	res, err := fn.Call(b.ctx, args...)
	if err != nil {
		b.log.Error("wasm call trapped",
			observability.String("fn", name),
			observability.Error("error", err))
		return 0
	}
	if len(res) == 0 {
		return 0
	}
	return res[0]
}

func f64arg(v float64) uint64 { return wazeroapi.EncodeF64(v) }
func f32arg(v float32) uint64 { return wazeroapi.EncodeF32(v) }

func decodeF32(v uint64) float32 { return wazeroapi.DecodeF32(v) }
func decodeF64(v uint64) float64 { return wazeroapi.DecodeF64(v) }

// arena tracks guest allocations for one call.
type arena struct {
	b    *Bindings
	ptrs []uint64
}

func (b *Bindings) scratch() *arena { return &arena{b: b} }

func (a *arena) alloc(n int) uint64 {
	if n <= 0 {
		n = 1
	}
	res, err := a.b.mallocFn.Call(a.b.ctx, uint64(n))
	if err != nil || len(res) == 0 || res[0] == 0 {
		return 0
	}
	a.ptrs = append(a.ptrs, res[0])
	return res[0]
}

// bytes copies data into guest memory and returns the guest pointer, or 0
// for nil data (the C NULL).
func (a *arena) bytes(data []byte) uint64 {
	if data == nil {
		return 0
	}
	ptr := a.alloc(len(data))
	if ptr == 0 {
		return 0
	}
	if !a.b.mem.Write(uint32(ptr), data) {
		return 0
	}
	return ptr
}

// buffer allocates a zeroed guest buffer of n bytes; 0 stands in for NULL so
// the two-call length-query protocol passes through unchanged.
func (a *arena) buffer(n int) uint64 {
	if n <= 0 {
		return 0
	}
	ptr := a.alloc(n)
	if ptr == 0 {
		return 0
	}
	a.b.mem.Write(uint32(ptr), make([]byte, n))
	return ptr
}

func (a *arena) release() {
	for _, ptr := range a.ptrs {
		a.b.freeFn.Call(a.b.ctx, ptr)
	}
	a.ptrs = nil
}

func (a *arena) copyOut(ptr uint64, dst []byte) {
	if ptr == 0 || len(dst) == 0 {
		return
	}
	if data, ok := a.b.mem.Read(uint32(ptr), uint32(len(dst))); ok {
		copy(dst, data)
	}
}

func (a *arena) u32(ptr uint64) uint32 {
	v, _ := a.b.mem.ReadUint32Le(uint32(ptr))
	return v
}

func (a *arena) i32(ptr uint64) int32 { return int32(a.u32(ptr)) }

func (a *arena) f32(ptr uint64) float32 {
	v, _ := a.b.mem.ReadFloat32Le(uint32(ptr))
	return v
}

func (a *arena) f64(ptr uint64) float64 {
	v, _ := a.b.mem.ReadFloat64Le(uint32(ptr))
	return v
}

// Struct staging. Layouts match the wasm32 C ABI, which for these structs is
// identical to the packed little-endian field order.

func (a *arena) putMatrix(m *ffi.Matrix) uint64 {
	if m == nil {
		return 0
	}
	buf := make([]byte, 24)
	for i, v := range [6]float32{m.A, m.B, m.C, m.D, m.E, m.F} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return a.bytes(buf)
}

func (a *arena) getMatrix(ptr uint64, m *ffi.Matrix) {
	if ptr == 0 || m == nil {
		return
	}
	m.A = a.f32(ptr)
	m.B = a.f32(ptr + 4)
	m.C = a.f32(ptr + 8)
	m.D = a.f32(ptr + 12)
	m.E = a.f32(ptr + 16)
	m.F = a.f32(ptr + 20)
}

func (a *arena) putRect(r *ffi.RectF) uint64 {
	if r == nil {
		return 0
	}
	buf := make([]byte, 16)
	for i, v := range [4]float32{r.Left, r.Top, r.Right, r.Bottom} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return a.bytes(buf)
}

func (a *arena) getRect(ptr uint64, r *ffi.RectF) {
	if ptr == 0 || r == nil {
		return
	}
	r.Left = a.f32(ptr)
	r.Top = a.f32(ptr + 4)
	r.Right = a.f32(ptr + 8)
	r.Bottom = a.f32(ptr + 12)
}

func (a *arena) putQuad(q *ffi.QuadPointsF) uint64 {
	if q == nil {
		return 0
	}
	buf := make([]byte, 32)
	for i, v := range [8]float32{q.X1, q.Y1, q.X2, q.Y2, q.X3, q.Y3, q.X4, q.Y4} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return a.bytes(buf)
}

func (a *arena) getQuad(ptr uint64, q *ffi.QuadPointsF) {
	if ptr == 0 || q == nil {
		return
	}
	vals := [8]*float32{&q.X1, &q.Y1, &q.X2, &q.Y2, &q.X3, &q.Y3, &q.X4, &q.Y4}
	for i, p := range vals {
		*p = a.f32(ptr + uint64(i*4))
	}
}

func (a *arena) putPoints(points []ffi.PointF) uint64 {
	if len(points) == 0 {
		return 0
	}
	buf := make([]byte, len(points)*8)
	for i, p := range points {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(p.Y))
	}
	return a.bytes(buf)
}

func (a *arena) getPoints(ptr uint64, points []ffi.PointF) {
	if ptr == 0 {
		return
	}
	for i := range points {
		points[i].X = a.f32(ptr + uint64(i*8))
		points[i].Y = a.f32(ptr + uint64(i*8+4))
	}
}

func cstr(s string) []byte {
	buf, err := ffi.CString(s)
	if err != nil {
		return nil
	}
	return buf
}

func cstrOrNil(s string) []byte {
	if s == "" {
		return nil
	}
	return cstr(s)
}

func wstr(s string) []byte {
	buf, err := ffi.EncodeUTF16LE(s)
	if err != nil {
		return nil
	}
	return buf
}

var _ bindings.Bindings = (*Bindings)(nil)
