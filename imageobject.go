package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// Image-object accessors. These fail on objects that are not image objects.

// ImageBitmap returns the image's pixel data as a bitmap, ignoring the
// object's transform and masks. The caller must close the returned bitmap.
func (o *PageObject) ImageBitmap() (*Bitmap, error) {
	handle := o.p.b.FPDFImageObj_GetBitmap(o.handle)
	if handle == 0 {
		return nil, fmt.Errorf("image bitmap: %w", o.p.extendedError())
	}
	return &Bitmap{p: o.p, handle: handle}, nil
}

// RenderedImageBitmap returns the image rendered with the object's transform
// and masks applied. The caller must close the returned bitmap.
func (o *PageObject) RenderedImageBitmap(d *Document, pg *Page) (*Bitmap, error) {
	handle := o.p.b.FPDFImageObj_GetRenderedBitmap(d.handle, pg.handle, o.handle)
	if handle == 0 {
		return nil, fmt.Errorf("rendered image bitmap: %w", o.p.extendedError())
	}
	return &Bitmap{p: o.p, handle: handle}, nil
}

// ImageDataDecoded returns the image stream with all filters applied.
func (o *PageObject) ImageDataDecoded() ([]byte, error) {
	return bytesValue(func(buf []byte) uint64 {
		return o.p.b.FPDFImageObj_GetImageDataDecoded(o.handle, buf)
	})
}

// ImageDataRaw returns the image stream as stored, filters unapplied.
func (o *PageObject) ImageDataRaw() ([]byte, error) {
	return bytesValue(func(buf []byte) uint64 {
		return o.p.b.FPDFImageObj_GetImageDataRaw(o.handle, buf)
	})
}

// ImageFilters returns the names of the stream filters applied to the
// image, outermost first.
func (o *PageObject) ImageFilters() ([]string, error) {
	n := o.p.b.FPDFImageObj_GetImageFilterCount(o.handle)
	filters := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		name, err := asciiValue(func(buf []byte) uint64 {
			return o.p.b.FPDFImageObj_GetImageFilter(o.handle, i, buf)
		})
		if err != nil {
			return nil, fmt.Errorf("image filter %d: %w", i, err)
		}
		filters = append(filters, name)
	}
	return filters, nil
}

// ImageMetadata returns the image's dimensions, resolution and color
// information in the context of the given page.
func (o *PageObject) ImageMetadata(pg *Page) (ffi.ImageMetadata, error) {
	var md ffi.ImageMetadata
	if !bindings.IsTrue(o.p.b.FPDFImageObj_GetImageMetadata(o.handle, pg.handle, &md)) {
		return ffi.ImageMetadata{}, fmt.Errorf("image metadata: %w", o.p.extendedError())
	}
	return md, nil
}

// SetImageBitmap replaces the image's pixel data with a bitmap. pg, when
// non-nil, is the loaded page containing the object; its cached rendering is
// invalidated.
func (o *PageObject) SetImageBitmap(pg *Page, bm *Bitmap) error {
	var pages *ffi.Page
	count := int32(0)
	if pg != nil {
		pages = &pg.handle
		count = 1
	}
	if !bindings.IsTrue(o.p.b.FPDFImageObj_SetBitmap(pages, count, o.handle, bm.handle)) {
		return fmt.Errorf("set image bitmap: %w", o.p.extendedError())
	}
	return nil
}

// SetImageMatrix replaces the image object's transform.
func (o *PageObject) SetImageMatrix(a, b, c, d, e, f float64) error {
	if !bindings.IsTrue(o.p.b.FPDFImageObj_SetMatrix(o.handle, a, b, c, d, e, f)) {
		return fmt.Errorf("set image matrix: %w", o.p.extendedError())
	}
	return nil
}

// LoadJpeg sets the image content from JPEG data, decoded lazily by the
// native library. data must stay unmodified while the document is open.
// Unavailable on the WASM backend.
func (o *PageObject) LoadJpeg(pg *Page, data []byte) error {
	var pages *ffi.Page
	count := int32(0)
	if pg != nil {
		pages = &pg.handle
		count = 1
	}
	if !bindings.IsTrue(o.p.b.FPDFImageObj_LoadJpegFile(pages, count, o.handle, data)) {
		return fmt.Errorf("load jpeg: %w", o.p.extendedError())
	}
	return nil
}

// LoadJpegInline is LoadJpeg with eager decoding; data may be reused as soon
// as it returns. Unavailable on the WASM backend.
func (o *PageObject) LoadJpegInline(pg *Page, data []byte) error {
	var pages *ffi.Page
	count := int32(0)
	if pg != nil {
		pages = &pg.handle
		count = 1
	}
	if !bindings.IsTrue(o.p.b.FPDFImageObj_LoadJpegFileInline(pages, count, o.handle, data)) {
		return fmt.Errorf("load jpeg inline: %w", o.p.extendedError())
	}
	return nil
}
