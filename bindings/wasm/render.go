package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDF_RenderPageBitmap(bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags) {
	b.call("FPDF_RenderPageBitmap", uint64(bitmap), uint64(page),
		uint64(uint32(startX)), uint64(uint32(startY)), uint64(uint32(sizeX)), uint64(uint32(sizeY)),
		uint64(uint32(rotate)), uint64(uint32(flags)))
}

func (b *Bindings) FPDF_RenderPageBitmapWithMatrix(bitmap ffi.Bitmap, page ffi.Page, matrix *ffi.Matrix, clipping *ffi.RectF, flags ffi.RenderFlags) {
	m := b.scratch()
	defer m.release()
	b.call("FPDF_RenderPageBitmapWithMatrix", uint64(bitmap), uint64(page),
		m.putMatrix(matrix), m.putRect(clipping), uint64(uint32(flags)))
}

// FPDFBitmap_CreateEx ignores an external firstScan buffer: a host slice has
// no address in guest memory, so the guest always allocates its own scan
// buffer and the contract's copying FPDFBitmap_GetBuffer reads it back.
func (b *Bindings) FPDFBitmap_CreateEx(width, height int32, format ffi.BitmapFormat, firstScan []byte, stride int32) ffi.Bitmap {
	if firstScan != nil {
		return 0
	}
	return ffi.Bitmap(uint32(b.call("FPDFBitmap_CreateEx",
		uint64(uint32(width)), uint64(uint32(height)), uint64(uint32(format)), 0, uint64(uint32(stride)))))
}

func (b *Bindings) FPDFBitmap_Destroy(bitmap ffi.Bitmap) {
	b.call("FPDFBitmap_Destroy", uint64(bitmap))
}

func (b *Bindings) FPDFBitmap_FillRect(bitmap ffi.Bitmap, left, top, width, height int32, color uint64) {
	b.call("FPDFBitmap_FillRect", uint64(bitmap),
		uint64(uint32(left)), uint64(uint32(top)), uint64(uint32(width)), uint64(uint32(height)),
		uint64(uint32(color)))
}

func (b *Bindings) FPDFBitmap_GetBuffer(bitmap ffi.Bitmap, buf []byte) ffi.Bool {
	ptr := uint32(b.call("FPDFBitmap_GetBuffer", uint64(bitmap)))
	if ptr == 0 {
		return ffi.False
	}
	size := int(b.FPDFBitmap_GetStride(bitmap)) * int(b.FPDFBitmap_GetHeight(bitmap))
	if size <= 0 {
		return ffi.False
	}
	if size > len(buf) {
		size = len(buf)
	}
	data, ok := b.mem.Read(ptr, uint32(size))
	if !ok {
		return ffi.False
	}
	copy(buf, data)
	return ffi.True
}

func (b *Bindings) FPDFBitmap_GetFormat(bitmap ffi.Bitmap) ffi.BitmapFormat {
	return ffi.BitmapFormat(int32(uint32(b.call("FPDFBitmap_GetFormat", uint64(bitmap)))))
}

func (b *Bindings) FPDFBitmap_GetWidth(bitmap ffi.Bitmap) int32 {
	return int32(uint32(b.call("FPDFBitmap_GetWidth", uint64(bitmap))))
}

func (b *Bindings) FPDFBitmap_GetHeight(bitmap ffi.Bitmap) int32 {
	return int32(uint32(b.call("FPDFBitmap_GetHeight", uint64(bitmap))))
}

func (b *Bindings) FPDFBitmap_GetStride(bitmap ffi.Bitmap) int32 {
	return int32(uint32(b.call("FPDFBitmap_GetStride", uint64(bitmap))))
}
