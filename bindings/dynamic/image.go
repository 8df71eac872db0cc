package dynamic

import (
	"bytes"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDFImageObj_GetBitmap(obj ffi.PageObject) ffi.Bitmap {
	return b.api.imageGetBitmap(obj)
}

func (b *Bindings) FPDFImageObj_GetRenderedBitmap(doc ffi.Document, page ffi.Page, obj ffi.PageObject) ffi.Bitmap {
	return b.api.imageGetRenderedBitmap(doc, page, obj)
}

func (b *Bindings) FPDFImageObj_GetImageDataDecoded(obj ffi.PageObject, buf []byte) uint64 {
	return b.api.imageGetImageDataDecoded(obj, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFImageObj_GetImageDataRaw(obj ffi.PageObject, buf []byte) uint64 {
	return b.api.imageGetImageDataRaw(obj, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFImageObj_GetImageFilterCount(obj ffi.PageObject) int32 {
	return b.api.imageGetImageFilterCount(obj)
}

func (b *Bindings) FPDFImageObj_GetImageFilter(obj ffi.PageObject, index int32, buf []byte) uint64 {
	return b.api.imageGetImageFilter(obj, index, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFImageObj_GetImageMetadata(obj ffi.PageObject, page ffi.Page, metadata *ffi.ImageMetadata) ffi.Bool {
	return b.api.imageGetImageMetadata(obj, page, metadata)
}

func (b *Bindings) FPDFImageObj_SetBitmap(pages *ffi.Page, count int32, obj ffi.PageObject, bitmap ffi.Bitmap) ffi.Bool {
	return b.api.imageSetBitmap(pages, count, obj, bitmap)
}

func (b *Bindings) FPDFImageObj_SetMatrix(obj ffi.PageObject, a, bb, c, d, e, f float64) ffi.Bool {
	return b.api.imageSetMatrix(obj, a, bb, c, d, e, f)
}

// FPDFImageObj_LoadJpegFile decodes lazily, so the read state must survive
// the call; it is only released when the library is closed.
func (b *Bindings) FPDFImageObj_LoadJpegFile(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool {
	st := newFileAccess(bytes.NewReader(data), uint64(len(data)))
	return b.api.imageLoadJpegFile(pages, count, obj, st.access)
}

func (b *Bindings) FPDFImageObj_LoadJpegFileInline(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool {
	st := newFileAccess(bytes.NewReader(data), uint64(len(data)))
	defer st.release()
	return b.api.imageLoadJpegFileInline(pages, count, obj, st.access)
}
