package pdfium

import (
	"fmt"
	"image"
	"image/color"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// Bitmap wraps an FPDF_BITMAP render target.
type Bitmap struct {
	p      *Pdfium
	handle ffi.Bitmap
	closed bool
}

// NewBitmap allocates a bitmap of the given pixel size and format. The
// native library owns the scan buffer.
func (p *Pdfium) NewBitmap(width, height int, format ffi.BitmapFormat) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap size %dx%d invalid", width, height)
	}
	handle := p.b.FPDFBitmap_CreateEx(int32(width), int32(height), format, nil, 0)
	if handle == 0 {
		return nil, fmt.Errorf("create bitmap: %w", p.lastError())
	}
	return &Bitmap{p: p, handle: handle}, nil
}

// Handle exposes the raw native handle.
func (bm *Bitmap) Handle() ffi.Bitmap { return bm.handle }

// Close releases the bitmap. Idempotent.
func (bm *Bitmap) Close() {
	if bm.closed {
		return
	}
	bm.closed = true
	bm.p.b.FPDFBitmap_Destroy(bm.handle)
}

// Width returns the pixel width.
func (bm *Bitmap) Width() int { return int(bm.p.b.FPDFBitmap_GetWidth(bm.handle)) }

// Height returns the pixel height.
func (bm *Bitmap) Height() int { return int(bm.p.b.FPDFBitmap_GetHeight(bm.handle)) }

// Stride returns the byte length of one scan line.
func (bm *Bitmap) Stride() int { return int(bm.p.b.FPDFBitmap_GetStride(bm.handle)) }

// Format returns the pixel format.
func (bm *Bitmap) Format() ffi.BitmapFormat { return bm.p.b.FPDFBitmap_GetFormat(bm.handle) }

// Fill fills a rectangle with an ARGB color.
func (bm *Bitmap) Fill(left, top, width, height int, argb uint64) {
	bm.p.b.FPDFBitmap_FillRect(bm.handle, int32(left), int32(top), int32(width), int32(height), argb)
}

// Buffer copies the pixel data out of the native scan buffer.
func (bm *Bitmap) Buffer() ([]byte, error) {
	size := bm.Stride() * bm.Height()
	if size <= 0 {
		return nil, fmt.Errorf("bitmap has no pixel data")
	}
	buf := make([]byte, size)
	if !bindings.IsTrue(bm.p.b.FPDFBitmap_GetBuffer(bm.handle, buf)) {
		return nil, fmt.Errorf("bitmap buffer: %w", bm.p.lastError())
	}
	return buf, nil
}

// Image converts the bitmap to an image.Image. Gray bitmaps become
// *image.Gray; the BGR family becomes *image.RGBA with channel order
// swizzled and missing alpha treated as opaque.
func (bm *Bitmap) Image() (image.Image, error) {
	buf, err := bm.Buffer()
	if err != nil {
		return nil, err
	}
	w, h, stride := bm.Width(), bm.Height(), bm.Stride()

	switch bm.Format() {
	case ffi.BitmapGray:
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], buf[y*stride:y*stride+w])
		}
		return img, nil

	case ffi.BitmapBGR:
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := buf[y*stride:]
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, color.RGBA{R: row[x*3+2], G: row[x*3+1], B: row[x*3], A: 0xFF})
			}
		}
		return img, nil

	case ffi.BitmapBGRx, ffi.BitmapBGRA:
		opaque := bm.Format() == ffi.BitmapBGRx
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := buf[y*stride:]
			for x := 0; x < w; x++ {
				a := row[x*4+3]
				if opaque {
					a = 0xFF
				}
				img.SetRGBA(x, y, color.RGBA{R: row[x*4+2], G: row[x*4+1], B: row[x*4], A: a})
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("unsupported bitmap format %d", bm.Format())
	}
}
