package wasm

import (
	"encoding/binary"
	"unsafe"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDFImageObj_GetBitmap(obj ffi.PageObject) ffi.Bitmap {
	return ffi.Bitmap(uint32(b.call("FPDFImageObj_GetBitmap", uint64(obj))))
}

func (b *Bindings) FPDFImageObj_GetRenderedBitmap(doc ffi.Document, page ffi.Page, obj ffi.PageObject) ffi.Bitmap {
	return ffi.Bitmap(uint32(b.call("FPDFImageObj_GetRenderedBitmap", uint64(doc), uint64(page), uint64(obj))))
}

func (b *Bindings) FPDFImageObj_GetImageDataDecoded(obj ffi.PageObject, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFImageObj_GetImageDataDecoded", uint64(obj), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFImageObj_GetImageDataRaw(obj ffi.PageObject, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFImageObj_GetImageDataRaw", uint64(obj), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFImageObj_GetImageFilterCount(obj ffi.PageObject) int32 {
	return int32(uint32(b.call("FPDFImageObj_GetImageFilterCount", uint64(obj))))
}

func (b *Bindings) FPDFImageObj_GetImageFilter(obj ffi.PageObject, index int32, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFImageObj_GetImageFilter", uint64(obj), uint64(uint32(index)), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

// FPDF_IMAGEOBJ_METADATA on wasm32: five u32/i32 words and two f32, packed
// with no padding. 28 bytes total.
func (b *Bindings) FPDFImageObj_GetImageMetadata(obj ffi.PageObject, page ffi.Page, metadata *ffi.ImageMetadata) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(28)
	ok := ffi.Bool(int32(uint32(b.call("FPDFImageObj_GetImageMetadata", uint64(obj), uint64(page), p))))
	if metadata != nil {
		metadata.Width = m.u32(p)
		metadata.Height = m.u32(p + 4)
		metadata.HorizontalDPI = m.f32(p + 8)
		metadata.VerticalDPI = m.f32(p + 12)
		metadata.BitsPerPixel = m.u32(p + 16)
		metadata.Colorspace = ffi.Colorspace(m.i32(p + 20))
		metadata.MarkedContentID = m.i32(p + 24)
	}
	return ok
}

// pagesPtr stages a host page-handle array as guest u32 handles.
func (m *arena) pagesPtr(pages *ffi.Page, count int32) uint64 {
	if pages == nil || count <= 0 {
		return 0
	}
	handles := unsafe.Slice(pages, int(count))
	buf := make([]byte, 4*len(handles))
	for i, h := range handles {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(h))
	}
	return m.bytes(buf)
}

func (b *Bindings) FPDFImageObj_SetBitmap(pages *ffi.Page, count int32, obj ffi.PageObject, bitmap ffi.Bitmap) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFImageObj_SetBitmap",
		m.pagesPtr(pages, count), uint64(uint32(count)), uint64(obj), uint64(bitmap)))))
}

func (b *Bindings) FPDFImageObj_SetMatrix(obj ffi.PageObject, a, bb, c, d, e, f float64) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFImageObj_SetMatrix", uint64(obj),
		f64arg(a), f64arg(bb), f64arg(c), f64arg(d), f64arg(e), f64arg(f)))))
}

// The JPEG loaders need a native read callback into host memory, which guest
// code cannot make. They report plain failure.

func (b *Bindings) FPDFImageObj_LoadJpegFile(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool {
	return ffi.False
}

func (b *Bindings) FPDFImageObj_LoadJpegFileInline(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool {
	return ffi.False
}
