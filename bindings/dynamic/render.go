package dynamic

import (
	"unsafe"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDF_RenderPageBitmap(bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags) {
	b.api.renderPageBitmap(bitmap, page, startX, startY, sizeX, sizeY, rotate, flags)
}

func (b *Bindings) FPDF_RenderPageBitmapWithMatrix(bitmap ffi.Bitmap, page ffi.Page, matrix *ffi.Matrix, clipping *ffi.RectF, flags ffi.RenderFlags) {
	b.api.renderPageBitmapWithMatrix(bitmap, page, matrix, clipping, flags)
}

// FPDFBitmap_CreateEx pins firstScan for the bitmap's lifetime when the
// caller supplies an external scan buffer; pass nil to let Pdfium allocate.
func (b *Bindings) FPDFBitmap_CreateEx(width, height int32, format ffi.BitmapFormat, firstScan []byte, stride int32) ffi.Bitmap {
	bm := b.api.bitmapCreateEx(width, height, format, firstScan, stride)
	if bm != 0 && firstScan != nil {
		b.mu.Lock()
		b.bitmaps[bm] = firstScan
		b.mu.Unlock()
	}
	return bm
}

func (b *Bindings) FPDFBitmap_Destroy(bitmap ffi.Bitmap) {
	b.api.bitmapDestroy(bitmap)
	b.mu.Lock()
	delete(b.bitmaps, bitmap)
	b.mu.Unlock()
}

func (b *Bindings) FPDFBitmap_FillRect(bitmap ffi.Bitmap, left, top, width, height int32, color uint64) {
	b.api.bitmapFillRect(bitmap, left, top, width, height, color)
}

// FPDFBitmap_GetBuffer copies the native scan buffer into buf rather than
// exposing the raw pointer. At most stride*height bytes are copied.
func (b *Bindings) FPDFBitmap_GetBuffer(bitmap ffi.Bitmap, buf []byte) ffi.Bool {
	ptr := b.api.bitmapGetBuffer(bitmap)
	if ptr == 0 {
		return ffi.False
	}
	size := int(b.api.bitmapGetStride(bitmap)) * int(b.api.bitmapGetHeight(bitmap))
	if size <= 0 {
		return ffi.False
	}
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return ffi.True
}

func (b *Bindings) FPDFBitmap_GetFormat(bitmap ffi.Bitmap) ffi.BitmapFormat {
	return b.api.bitmapGetFormat(bitmap)
}

func (b *Bindings) FPDFBitmap_GetWidth(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetWidth(bitmap)
}

func (b *Bindings) FPDFBitmap_GetHeight(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetHeight(bitmap)
}

func (b *Bindings) FPDFBitmap_GetStride(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetStride(bitmap)
}
