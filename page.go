package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/geo"
)

// Page wraps a loaded FPDF_PAGE.
type Page struct {
	doc    *Document
	handle ffi.Page
	index  int
	closed bool
}

// Handle exposes the raw native handle.
func (pg *Page) Handle() ffi.Page { return pg.handle }

// Index returns the page's position in the document at load time.
func (pg *Page) Index() int { return pg.index }

// Close releases the page. Idempotent.
func (pg *Page) Close() {
	if pg.closed {
		return
	}
	pg.closed = true
	pg.doc.p.b.FPDF_ClosePage(pg.handle)
}

// Width returns the page width in points.
func (pg *Page) Width() float32 { return pg.doc.p.b.FPDF_GetPageWidthF(pg.handle) }

// Height returns the page height in points.
func (pg *Page) Height() float32 { return pg.doc.p.b.FPDF_GetPageHeightF(pg.handle) }

// BoundingBox returns the smallest rectangle enclosing the page content.
func (pg *Page) BoundingBox() (geo.Rect, error) {
	var r ffi.RectF
	if !bindings.IsTrue(pg.doc.p.b.FPDF_GetPageBoundingBox(pg.handle, &r)) {
		return geo.Rect{}, fmt.Errorf("bounding box: %w", pg.doc.p.lastError())
	}
	return geo.RectFromFFI(r), nil
}

// Rotation returns the page rotation in quarter turns clockwise, 0 to 3.
func (pg *Page) Rotation() int { return int(pg.doc.p.b.FPDFPage_GetRotation(pg.handle)) }

// SetRotation sets the page rotation in quarter turns clockwise.
func (pg *Page) SetRotation(rotation int) {
	pg.doc.p.b.FPDFPage_SetRotation(pg.handle, int32(rotation))
}

// HasTransparency reports whether the page content needs transparency to
// render.
func (pg *Page) HasTransparency() bool {
	return bindings.IsTrue(pg.doc.p.b.FPDFPage_HasTransparency(pg.handle))
}

// Box identifies one of the page boundary boxes.
type Box int

const (
	MediaBox Box = iota
	CropBox
	BleedBox
	TrimBox
	ArtBox
)

// GetBox returns one of the page's boundary boxes. The box must be present
// in the page dictionary; Pdfium does not substitute defaults here.
func (pg *Page) GetBox(box Box) (geo.Rect, error) {
	var l, bm, r, t float32
	var ok ffi.Bool
	b := pg.doc.p.b
	switch box {
	case MediaBox:
		ok = b.FPDFPage_GetMediaBox(pg.handle, &l, &bm, &r, &t)
	case CropBox:
		ok = b.FPDFPage_GetCropBox(pg.handle, &l, &bm, &r, &t)
	case BleedBox:
		ok = b.FPDFPage_GetBleedBox(pg.handle, &l, &bm, &r, &t)
	case TrimBox:
		ok = b.FPDFPage_GetTrimBox(pg.handle, &l, &bm, &r, &t)
	case ArtBox:
		ok = b.FPDFPage_GetArtBox(pg.handle, &l, &bm, &r, &t)
	default:
		return geo.Rect{}, fmt.Errorf("unknown box %d", box)
	}
	if !bindings.IsTrue(ok) {
		return geo.Rect{}, fmt.Errorf("get box: %w", pg.doc.p.lastError())
	}
	return geo.Rect{Left: l, Bottom: bm, Right: r, Top: t}, nil
}

// SetBox sets one of the page's boundary boxes.
func (pg *Page) SetBox(box Box, r geo.Rect) error {
	b := pg.doc.p.b
	switch box {
	case MediaBox:
		b.FPDFPage_SetMediaBox(pg.handle, r.Left, r.Bottom, r.Right, r.Top)
	case CropBox:
		b.FPDFPage_SetCropBox(pg.handle, r.Left, r.Bottom, r.Right, r.Top)
	case BleedBox:
		b.FPDFPage_SetBleedBox(pg.handle, r.Left, r.Bottom, r.Right, r.Top)
	case TrimBox:
		b.FPDFPage_SetTrimBox(pg.handle, r.Left, r.Bottom, r.Right, r.Top)
	case ArtBox:
		b.FPDFPage_SetArtBox(pg.handle, r.Left, r.Bottom, r.Right, r.Top)
	default:
		return fmt.Errorf("unknown box %d", box)
	}
	return nil
}

// DeviceToPage maps a device-space point to page space for the given
// rendering viewport.
func (pg *Page) DeviceToPage(startX, startY, sizeX, sizeY, rotate, deviceX, deviceY int) (pageX, pageY float64, err error) {
	ok := pg.doc.p.b.FPDF_DeviceToPage(pg.handle,
		int32(startX), int32(startY), int32(sizeX), int32(sizeY), int32(rotate),
		int32(deviceX), int32(deviceY), &pageX, &pageY)
	if !bindings.IsTrue(ok) {
		return 0, 0, fmt.Errorf("device to page: %w", pg.doc.p.lastError())
	}
	return pageX, pageY, nil
}

// PageToDevice maps a page-space point to device space for the given
// rendering viewport.
func (pg *Page) PageToDevice(startX, startY, sizeX, sizeY, rotate int, pageX, pageY float64) (deviceX, deviceY int, err error) {
	var dx, dy int32
	ok := pg.doc.p.b.FPDF_PageToDevice(pg.handle,
		int32(startX), int32(startY), int32(sizeX), int32(sizeY), int32(rotate),
		pageX, pageY, &dx, &dy)
	if !bindings.IsTrue(ok) {
		return 0, 0, fmt.Errorf("page to device: %w", pg.doc.p.lastError())
	}
	return int(dx), int(dy), nil
}

// Render rasterizes the page into a new white-filled BGRA bitmap of the
// given pixel size.
func (pg *Page) Render(width, height int, flags ffi.RenderFlags) (*Bitmap, error) {
	bm, err := pg.doc.p.NewBitmap(width, height, ffi.BitmapBGRA)
	if err != nil {
		return nil, err
	}
	bm.Fill(0, 0, width, height, 0xFFFFFFFF)
	pg.doc.p.b.FPDF_RenderPageBitmap(bm.handle, pg.handle, 0, 0, int32(width), int32(height), 0, flags)
	return bm, nil
}

// RenderTo rasterizes the page into an existing bitmap viewport.
func (pg *Page) RenderTo(bm *Bitmap, startX, startY, sizeX, sizeY, rotate int, flags ffi.RenderFlags) {
	pg.doc.p.b.FPDF_RenderPageBitmap(bm.handle, pg.handle,
		int32(startX), int32(startY), int32(sizeX), int32(sizeY), int32(rotate), flags)
}

// RenderWithMatrix rasterizes the page into bm through an arbitrary
// transform, clipped to clip in device space.
func (pg *Page) RenderWithMatrix(bm *Bitmap, m geo.Matrix, clip geo.Rect, flags ffi.RenderFlags) {
	fm := m.FFI()
	fc := clip.FFI()
	pg.doc.p.b.FPDF_RenderPageBitmapWithMatrix(bm.handle, pg.handle, &fm, &fc, flags)
}

// Flatten merges annotations and form fields into the page content.
// Returns true when anything was flattened.
func (pg *Page) Flatten(forPrinting bool) (bool, error) {
	flag := int32(0)
	if forPrinting {
		flag = 1
	}
	switch pg.doc.p.b.FPDFPage_Flatten(pg.handle, flag) {
	case 1: // nothing to flatten
		return false, nil
	case 2:
		return true, nil
	default:
		return false, fmt.Errorf("flatten: %w", pg.doc.p.extendedError())
	}
}

// GenerateContent regenerates the page content stream after edits. Must be
// called before saving a modified page.
func (pg *Page) GenerateContent() error {
	if !bindings.IsTrue(pg.doc.p.b.FPDFPage_GenerateContent(pg.handle)) {
		return fmt.Errorf("generate content: %w", pg.doc.p.extendedError())
	}
	return nil
}

// Text loads the page's text layer.
func (pg *Page) Text() (*TextPage, error) {
	handle := pg.doc.p.b.FPDFText_LoadPage(pg.handle)
	if handle == 0 {
		return nil, fmt.Errorf("load text page: %w", pg.doc.p.lastError())
	}
	return &TextPage{page: pg, handle: handle}, nil
}
