package pdfium

import (
	"fmt"
	"image/color"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/geo"
)

// PageObject wraps one object in a page's content: text run, path, image,
// shading or form XObject.
type PageObject struct {
	p      *Pdfium
	handle ffi.PageObject
}

// Objects returns a live view over the page's content objects.
func (pg *Page) Objects() Collection[*PageObject] {
	b := pg.doc.p.b
	return NewCollection(
		func() int { return int(b.FPDFPage_CountObjects(pg.handle)) },
		func(i int) (*PageObject, error) {
			handle := b.FPDFPage_GetObject(pg.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("object %d: %w", i, pg.doc.p.extendedError())
			}
			return &PageObject{p: pg.doc.p, handle: handle}, nil
		},
	)
}

// InsertObject appends obj to the page content. The page takes ownership.
func (pg *Page) InsertObject(obj *PageObject) {
	pg.doc.p.b.FPDFPage_InsertObject(pg.handle, obj.handle)
}

// RemoveObject detaches obj from the page. Ownership returns to the caller,
// who must destroy it or insert it elsewhere.
func (pg *Page) RemoveObject(obj *PageObject) error {
	if !bindings.IsTrue(pg.doc.p.b.FPDFPage_RemoveObject(pg.handle, obj.handle)) {
		return fmt.Errorf("remove object: %w", pg.doc.p.extendedError())
	}
	return nil
}

// Handle exposes the raw native handle.
func (o *PageObject) Handle() ffi.PageObject { return o.handle }

// Destroy frees an object that is not owned by a page or annotation.
func (o *PageObject) Destroy() { o.p.b.FPDFPageObj_Destroy(o.handle) }

// Type returns the object kind.
func (o *PageObject) Type() ffi.ObjectType { return o.p.b.FPDFPageObj_GetType(o.handle) }

// Bounds returns the object's bounding box in page space.
func (o *PageObject) Bounds() (geo.Rect, error) {
	var l, bm, r, t float32
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetBounds(o.handle, &l, &bm, &r, &t)) {
		return geo.Rect{}, fmt.Errorf("object bounds: %w", o.p.extendedError())
	}
	return geo.Rect{Left: l, Bottom: bm, Right: r, Top: t}, nil
}

// Matrix returns the object's transform.
func (o *PageObject) Matrix() (geo.Matrix, error) {
	var m ffi.Matrix
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetMatrix(o.handle, &m)) {
		return geo.Matrix{}, fmt.Errorf("object matrix: %w", o.p.extendedError())
	}
	return geo.MatrixFromFFI(m), nil
}

// SetMatrix replaces the object's transform.
func (o *PageObject) SetMatrix(m geo.Matrix) error {
	fm := m.FFI()
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetMatrix(o.handle, &fm)) {
		return fmt.Errorf("set object matrix: %w", o.p.extendedError())
	}
	return nil
}

// Transform post-multiplies the object's transform by m.
func (o *PageObject) Transform(m geo.Matrix) {
	o.p.b.FPDFPageObj_Transform(o.handle,
		float64(m.A), float64(m.B), float64(m.C), float64(m.D), float64(m.E), float64(m.F))
}

// Translate moves the object by (dx, dy) in page space.
func (o *PageObject) Translate(dx, dy float32) {
	o.Transform(geo.Translate(dx, dy))
}

// FillColor returns the fill color.
func (o *PageObject) FillColor() (color.RGBA, error) {
	var r, g, b, a uint32
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetFillColor(o.handle, &r, &g, &b, &a)) {
		return color.RGBA{}, fmt.Errorf("fill color: %w", o.p.extendedError())
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// SetFillColor sets the fill color.
func (o *PageObject) SetFillColor(c color.RGBA) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetFillColor(o.handle, uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))) {
		return fmt.Errorf("set fill color: %w", o.p.extendedError())
	}
	return nil
}

// StrokeColor returns the stroke color.
func (o *PageObject) StrokeColor() (color.RGBA, error) {
	var r, g, b, a uint32
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetStrokeColor(o.handle, &r, &g, &b, &a)) {
		return color.RGBA{}, fmt.Errorf("stroke color: %w", o.p.extendedError())
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// SetStrokeColor sets the stroke color.
func (o *PageObject) SetStrokeColor(c color.RGBA) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetStrokeColor(o.handle, uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))) {
		return fmt.Errorf("set stroke color: %w", o.p.extendedError())
	}
	return nil
}

// StrokeWidth returns the stroke width in page units.
func (o *PageObject) StrokeWidth() (float32, error) {
	var w float32
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetStrokeWidth(o.handle, &w)) {
		return 0, fmt.Errorf("stroke width: %w", o.p.extendedError())
	}
	return w, nil
}

// SetStrokeWidth sets the stroke width in page units.
func (o *PageObject) SetStrokeWidth(w float32) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetStrokeWidth(o.handle, w)) {
		return fmt.Errorf("set stroke width: %w", o.p.extendedError())
	}
	return nil
}

// LineJoin returns the stroke join style.
func (o *PageObject) LineJoin() ffi.LineJoin { return o.p.b.FPDFPageObj_GetLineJoin(o.handle) }

// SetLineJoin sets the stroke join style.
func (o *PageObject) SetLineJoin(j ffi.LineJoin) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetLineJoin(o.handle, j)) {
		return fmt.Errorf("set line join: %w", o.p.extendedError())
	}
	return nil
}

// LineCap returns the stroke cap style.
func (o *PageObject) LineCap() ffi.LineCap { return o.p.b.FPDFPageObj_GetLineCap(o.handle) }

// SetLineCap sets the stroke cap style.
func (o *PageObject) SetLineCap(c ffi.LineCap) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetLineCap(o.handle, c)) {
		return fmt.Errorf("set line cap: %w", o.p.extendedError())
	}
	return nil
}

// SetBlendMode sets the blend mode by its PDF name, e.g. "Multiply".
func (o *PageObject) SetBlendMode(mode string) {
	o.p.b.FPDFPageObj_SetBlendMode(o.handle, mode)
}

// HasTransparency reports whether the object needs transparency to render.
func (o *PageObject) HasTransparency() bool {
	return bindings.IsTrue(o.p.b.FPDFPageObj_HasTransparency(o.handle))
}

// Dash returns the stroke dash pattern and phase.
func (o *PageObject) Dash() (pattern []float32, phase float32, err error) {
	n := o.p.b.FPDFPageObj_GetDashCount(o.handle)
	if n > 0 {
		pattern = make([]float32, n)
		if !bindings.IsTrue(o.p.b.FPDFPageObj_GetDashArray(o.handle, pattern)) {
			return nil, 0, fmt.Errorf("dash array: %w", o.p.extendedError())
		}
	}
	if !bindings.IsTrue(o.p.b.FPDFPageObj_GetDashPhase(o.handle, &phase)) {
		return nil, 0, fmt.Errorf("dash phase: %w", o.p.extendedError())
	}
	return pattern, phase, nil
}

// SetDash sets the stroke dash pattern and phase. An empty pattern makes the
// stroke solid.
func (o *PageObject) SetDash(pattern []float32, phase float32) error {
	if !bindings.IsTrue(o.p.b.FPDFPageObj_SetDashArray(o.handle, pattern, phase)) {
		return fmt.Errorf("set dash: %w", o.p.extendedError())
	}
	return nil
}

// FormObjects returns the children of a form XObject.
func (o *PageObject) FormObjects() Collection[*PageObject] {
	return NewCollection(
		func() int { return int(o.p.b.FPDFFormObj_CountObjects(o.handle)) },
		func(i int) (*PageObject, error) {
			handle := o.p.b.FPDFFormObj_GetObject(o.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("form child %d: %w", i, o.p.extendedError())
			}
			return &PageObject{p: o.p, handle: handle}, nil
		},
	)
}

// NewPath starts a path object at (x, y). The caller owns it until it is
// inserted into a page.
func (p *Pdfium) NewPath(x, y float32) (*PageObject, error) {
	handle := p.b.FPDFPageObj_CreateNewPath(x, y)
	if handle == 0 {
		return nil, fmt.Errorf("new path: %w", p.extendedError())
	}
	return &PageObject{p: p, handle: handle}, nil
}

// NewRect creates a closed rectangle path object.
func (p *Pdfium) NewRect(x, y, w, h float32) (*PageObject, error) {
	handle := p.b.FPDFPageObj_CreateNewRect(x, y, w, h)
	if handle == 0 {
		return nil, fmt.Errorf("new rect: %w", p.extendedError())
	}
	return &PageObject{p: p, handle: handle}, nil
}

// NewTextObject creates a text object using a standard font name, e.g.
// "Helvetica".
func (d *Document) NewTextObject(font string, fontSize float32) (*PageObject, error) {
	handle := d.p.b.FPDFPageObj_NewTextObj(d.handle, font, fontSize)
	if handle == 0 {
		return nil, fmt.Errorf("new text object: %w", d.p.extendedError())
	}
	return &PageObject{p: d.p, handle: handle}, nil
}

// NewImageObject creates an empty image object.
func (d *Document) NewImageObject() (*PageObject, error) {
	handle := d.p.b.FPDFPageObj_NewImageObj(d.handle)
	if handle == 0 {
		return nil, fmt.Errorf("new image object: %w", d.p.extendedError())
	}
	return &PageObject{p: d.p, handle: handle}, nil
}

// Path construction. These fail on objects that are not path objects.

// MoveTo starts a new subpath at (x, y).
func (o *PageObject) MoveTo(x, y float32) error {
	if !bindings.IsTrue(o.p.b.FPDFPath_MoveTo(o.handle, x, y)) {
		return fmt.Errorf("move to: %w", o.p.extendedError())
	}
	return nil
}

// LineTo appends a line segment to (x, y).
func (o *PageObject) LineTo(x, y float32) error {
	if !bindings.IsTrue(o.p.b.FPDFPath_LineTo(o.handle, x, y)) {
		return fmt.Errorf("line to: %w", o.p.extendedError())
	}
	return nil
}

// BezierTo appends a cubic Bezier segment with control points (x1,y1),
// (x2,y2) ending at (x3,y3).
func (o *PageObject) BezierTo(x1, y1, x2, y2, x3, y3 float32) error {
	if !bindings.IsTrue(o.p.b.FPDFPath_BezierTo(o.handle, x1, y1, x2, y2, x3, y3)) {
		return fmt.Errorf("bezier to: %w", o.p.extendedError())
	}
	return nil
}

// ClosePath closes the current subpath.
func (o *PageObject) ClosePath() error {
	if !bindings.IsTrue(o.p.b.FPDFPath_Close(o.handle)) {
		return fmt.Errorf("close path: %w", o.p.extendedError())
	}
	return nil
}

// SetDrawMode sets the path's fill rule and whether it is stroked.
func (o *PageObject) SetDrawMode(fillMode ffi.PathFillMode, stroke bool) error {
	if !bindings.IsTrue(o.p.b.FPDFPath_SetDrawMode(o.handle, fillMode, bindings.Bool(stroke))) {
		return fmt.Errorf("set draw mode: %w", o.p.extendedError())
	}
	return nil
}

// DrawMode returns the path's fill rule and whether it is stroked.
func (o *PageObject) DrawMode() (ffi.PathFillMode, bool, error) {
	var fillMode ffi.PathFillMode
	var stroke ffi.Bool
	if !bindings.IsTrue(o.p.b.FPDFPath_GetDrawMode(o.handle, &fillMode, &stroke)) {
		return 0, false, fmt.Errorf("draw mode: %w", o.p.extendedError())
	}
	return fillMode, bindings.IsTrue(stroke), nil
}

// PathSegment is one segment of a path or glyph outline.
type PathSegment struct {
	p      *Pdfium
	handle ffi.PathSegment
}

// Segments returns a live view over the path's segments.
func (o *PageObject) Segments() Collection[PathSegment] {
	return NewCollection(
		func() int { return int(o.p.b.FPDFPath_CountSegments(o.handle)) },
		func(i int) (PathSegment, error) {
			handle := o.p.b.FPDFPath_GetPathSegment(o.handle, int32(i))
			if handle == 0 {
				return PathSegment{}, fmt.Errorf("segment %d: %w", i, o.p.extendedError())
			}
			return PathSegment{p: o.p, handle: handle}, nil
		},
	)
}

// Point returns the segment's end point.
func (s PathSegment) Point() (geo.Point, error) {
	var x, y float32
	if !bindings.IsTrue(s.p.b.FPDFPathSegment_GetPoint(s.handle, &x, &y)) {
		return geo.Point{}, fmt.Errorf("segment point: %w", s.p.extendedError())
	}
	return geo.Point{X: x, Y: y}, nil
}

// Type returns the segment kind.
func (s PathSegment) Type() ffi.PathSegmentType {
	return s.p.b.FPDFPathSegment_GetType(s.handle)
}

// ClosesSubpath reports whether the segment closes its subpath.
func (s PathSegment) ClosesSubpath() bool {
	return bindings.IsTrue(s.p.b.FPDFPathSegment_GetClose(s.handle))
}
