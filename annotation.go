package pdfium

import (
	"fmt"
	"image/color"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/geo"
)

// Annotation wraps one page annotation. Annotations obtained from a page
// must be closed.
type Annotation struct {
	p      *Pdfium
	handle ffi.Annotation
	closed bool
}

// Annotations returns a live view over the page's annotations. Every
// annotation handed out by the view must be closed by the caller.
func (pg *Page) Annotations() Collection[*Annotation] {
	b := pg.doc.p.b
	return NewCollection(
		func() int { return int(b.FPDFPage_GetAnnotCount(pg.handle)) },
		func(i int) (*Annotation, error) {
			handle := b.FPDFPage_GetAnnot(pg.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("annotation %d: %w", i, pg.doc.p.extendedError())
			}
			return &Annotation{p: pg.doc.p, handle: handle}, nil
		},
	)
}

// CreateAnnotation adds a new annotation of the given subtype to the page.
func (pg *Page) CreateAnnotation(subtype ffi.AnnotationSubtype) (*Annotation, error) {
	handle := pg.doc.p.b.FPDFPage_CreateAnnot(pg.handle, subtype)
	if handle == 0 {
		return nil, fmt.Errorf("create annotation: %w", pg.doc.p.extendedError())
	}
	return &Annotation{p: pg.doc.p, handle: handle}, nil
}

// RemoveAnnotation deletes the annotation at index from the page.
func (pg *Page) RemoveAnnotation(index int) error {
	if !bindings.IsTrue(pg.doc.p.b.FPDFPage_RemoveAnnot(pg.handle, int32(index))) {
		return fmt.Errorf("remove annotation %d: %w", index, pg.doc.p.extendedError())
	}
	return nil
}

// AnnotationIndex returns a's position on the page, or -1 if it is not on
// the page.
func (pg *Page) AnnotationIndex(a *Annotation) int {
	return int(pg.doc.p.b.FPDFPage_GetAnnotIndex(pg.handle, a.handle))
}

// IsAnnotationSupported reports whether Pdfium can create and edit the
// given annotation subtype.
func (p *Pdfium) IsAnnotationSupported(subtype ffi.AnnotationSubtype) bool {
	return bindings.IsTrue(p.b.FPDFAnnot_IsSupportedSubtype(subtype))
}

// Handle exposes the raw native handle.
func (a *Annotation) Handle() ffi.Annotation { return a.handle }

// Close releases the annotation handle. Idempotent.
func (a *Annotation) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.p.b.FPDFPage_CloseAnnot(a.handle)
}

// Subtype returns the annotation kind.
func (a *Annotation) Subtype() ffi.AnnotationSubtype {
	return a.p.b.FPDFAnnot_GetSubtype(a.handle)
}

// Rect returns the annotation rectangle in page space.
func (a *Annotation) Rect() (geo.Rect, error) {
	var r ffi.RectF
	if !bindings.IsTrue(a.p.b.FPDFAnnot_GetRect(a.handle, &r)) {
		return geo.Rect{}, fmt.Errorf("annotation rect: %w", a.p.extendedError())
	}
	return geo.RectFromFFI(r), nil
}

// SetRect moves the annotation.
func (a *Annotation) SetRect(r geo.Rect) error {
	fr := r.FFI()
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetRect(a.handle, &fr)) {
		return fmt.Errorf("set annotation rect: %w", a.p.extendedError())
	}
	return nil
}

// Color returns the annotation color of the given kind. Fails when the
// color is controlled by an appearance stream.
func (a *Annotation) Color(colorType ffi.ColorType) (color.RGBA, error) {
	var r, g, b, al uint32
	if !bindings.IsTrue(a.p.b.FPDFAnnot_GetColor(a.handle, colorType, &r, &g, &b, &al)) {
		return color.RGBA{}, fmt.Errorf("annotation color: %w", a.p.extendedError())
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(al)}, nil
}

// SetColor sets the annotation color of the given kind.
func (a *Annotation) SetColor(colorType ffi.ColorType, c color.RGBA) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetColor(a.handle, colorType, uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))) {
		return fmt.Errorf("set annotation color: %w", a.p.extendedError())
	}
	return nil
}

// Flags returns the annotation flag bits.
func (a *Annotation) Flags() ffi.AnnotationFlags {
	return a.p.b.FPDFAnnot_GetFlags(a.handle)
}

// SetFlags replaces the annotation flag bits.
func (a *Annotation) SetFlags(flags ffi.AnnotationFlags) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetFlags(a.handle, flags)) {
		return fmt.Errorf("set annotation flags: %w", a.p.extendedError())
	}
	return nil
}

// StringValue returns the annotation dictionary string under key, e.g.
// "Contents" or "T". Absent keys yield the empty string.
func (a *Annotation) StringValue(key string) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return a.p.b.FPDFAnnot_GetStringValue(a.handle, key, buf)
	})
}

// SetStringValue sets the annotation dictionary string under key.
func (a *Annotation) SetStringValue(key, value string) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetStringValue(a.handle, key, value)) {
		return fmt.Errorf("set %q: %w", key, a.p.extendedError())
	}
	return nil
}

// NumberValue returns the annotation dictionary number under key.
func (a *Annotation) NumberValue(key string) (float32, error) {
	var v float32
	if !bindings.IsTrue(a.p.b.FPDFAnnot_GetNumberValue(a.handle, key, &v)) {
		return 0, fmt.Errorf("number %q: %w", key, a.p.extendedError())
	}
	return v, nil
}

// HasKey reports whether the annotation dictionary has an entry under key.
func (a *Annotation) HasKey(key string) bool {
	return bindings.IsTrue(a.p.b.FPDFAnnot_HasKey(a.handle, key))
}

// ValueType returns the PDF object type of the dictionary entry under key.
func (a *Annotation) ValueType(key string) ffi.ObjectValueType {
	return a.p.b.FPDFAnnot_GetValueType(a.handle, key)
}

// Appearance returns the annotation's appearance stream for a mode, or the
// empty string when unset.
func (a *Annotation) Appearance(mode ffi.AppearanceMode) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return a.p.b.FPDFAnnot_GetAP(a.handle, mode, buf)
	})
}

// SetAppearance replaces the annotation's appearance stream for a mode.
func (a *Annotation) SetAppearance(mode ffi.AppearanceMode, value string) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetAP(a.handle, mode, value)) {
		return fmt.Errorf("set appearance: %w", a.p.extendedError())
	}
	return nil
}

// AttachmentPoints returns a live view over the annotation's quad points
// (text-markup region corners).
func (a *Annotation) AttachmentPoints() Collection[geo.Quad] {
	return NewCollection(
		func() int { return int(a.p.b.FPDFAnnot_CountAttachmentPoints(a.handle)) },
		func(i int) (geo.Quad, error) {
			var q ffi.QuadPointsF
			if !bindings.IsTrue(a.p.b.FPDFAnnot_GetAttachmentPoints(a.handle, uint64(i), &q)) {
				return geo.Quad{}, fmt.Errorf("attachment points %d: %w", i, a.p.extendedError())
			}
			return geo.QuadFromFFI(q), nil
		},
	)
}

// HasAttachmentPoints reports whether the subtype carries quad points.
func (a *Annotation) HasAttachmentPoints() bool {
	return bindings.IsTrue(a.p.b.FPDFAnnot_HasAttachmentPoints(a.handle))
}

// SetAttachmentPoints replaces the quad at index.
func (a *Annotation) SetAttachmentPoints(index int, q geo.Quad) error {
	fq := q.FFI()
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetAttachmentPoints(a.handle, uint64(index), &fq)) {
		return fmt.Errorf("set attachment points %d: %w", index, a.p.extendedError())
	}
	return nil
}

// AppendAttachmentPoints adds a quad.
func (a *Annotation) AppendAttachmentPoints(q geo.Quad) error {
	fq := q.FFI()
	if !bindings.IsTrue(a.p.b.FPDFAnnot_AppendAttachmentPoints(a.handle, &fq)) {
		return fmt.Errorf("append attachment points: %w", a.p.extendedError())
	}
	return nil
}

// Objects returns a live view over the page objects bound to the
// annotation's appearance.
func (a *Annotation) Objects() Collection[*PageObject] {
	return NewCollection(
		func() int { return int(a.p.b.FPDFAnnot_GetObjectCount(a.handle)) },
		func(i int) (*PageObject, error) {
			handle := a.p.b.FPDFAnnot_GetObject(a.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("annotation object %d: %w", i, a.p.extendedError())
			}
			return &PageObject{p: a.p, handle: handle}, nil
		},
	)
}

// AppendObject adds a page object to the annotation, which takes ownership.
func (a *Annotation) AppendObject(obj *PageObject) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_AppendObject(a.handle, obj.handle)) {
		return fmt.Errorf("append object: %w", a.p.extendedError())
	}
	return nil
}

// UpdateObject commits edits made to an object owned by the annotation.
func (a *Annotation) UpdateObject(obj *PageObject) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_UpdateObject(a.handle, obj.handle)) {
		return fmt.Errorf("update object: %w", a.p.extendedError())
	}
	return nil
}

// RemoveObject deletes the object at index from the annotation.
func (a *Annotation) RemoveObject(index int) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_RemoveObject(a.handle, int32(index))) {
		return fmt.Errorf("remove object %d: %w", index, a.p.extendedError())
	}
	return nil
}

// InkPaths returns the annotation's ink strokes as point lists.
func (a *Annotation) InkPaths() ([][]geo.Point, error) {
	count := a.p.b.FPDFAnnot_GetInkListCount(a.handle)
	paths := make([][]geo.Point, 0, count)
	for i := uint64(0); i < count; i++ {
		n := a.p.b.FPDFAnnot_GetInkListPath(a.handle, i, nil)
		if n == 0 {
			paths = append(paths, nil)
			continue
		}
		pts := make([]ffi.PointF, n)
		if got := a.p.b.FPDFAnnot_GetInkListPath(a.handle, i, pts); got == 0 {
			return nil, fmt.Errorf("ink path %d: %w", i, a.p.extendedError())
		}
		path := make([]geo.Point, len(pts))
		for j, pt := range pts {
			path[j] = geo.PointFromFFI(pt)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// AddInkStroke appends an ink stroke and returns its index.
func (a *Annotation) AddInkStroke(points []geo.Point) (int, error) {
	pts := make([]ffi.PointF, len(points))
	for i, p := range points {
		pts[i] = p.FFI()
	}
	idx := a.p.b.FPDFAnnot_AddInkStroke(a.handle, pts)
	if idx < 0 {
		return 0, fmt.Errorf("add ink stroke: %w", a.p.extendedError())
	}
	return int(idx), nil
}

// RemoveInkList deletes all ink strokes.
func (a *Annotation) RemoveInkList() error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_RemoveInkList(a.handle)) {
		return fmt.Errorf("remove ink list: %w", a.p.extendedError())
	}
	return nil
}

// Vertices returns a polygon or polyline annotation's vertices.
func (a *Annotation) Vertices() ([]geo.Point, error) {
	n := a.p.b.FPDFAnnot_GetVertices(a.handle, nil)
	if n == 0 {
		return nil, nil
	}
	pts := make([]ffi.PointF, n)
	if got := a.p.b.FPDFAnnot_GetVertices(a.handle, pts); got == 0 {
		return nil, fmt.Errorf("vertices: %w", a.p.extendedError())
	}
	out := make([]geo.Point, len(pts))
	for i, pt := range pts {
		out[i] = geo.PointFromFFI(pt)
	}
	return out, nil
}

// Line returns a line annotation's start and end points.
func (a *Annotation) Line() (start, end geo.Point, err error) {
	var s, e ffi.PointF
	if !bindings.IsTrue(a.p.b.FPDFAnnot_GetLine(a.handle, &s, &e)) {
		return geo.Point{}, geo.Point{}, fmt.Errorf("line: %w", a.p.extendedError())
	}
	return geo.PointFromFFI(s), geo.PointFromFFI(e), nil
}

// Border returns the annotation's border corner radii and width.
func (a *Annotation) Border() (horizontalRadius, verticalRadius, width float32, err error) {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_GetBorder(a.handle, &horizontalRadius, &verticalRadius, &width)) {
		return 0, 0, 0, fmt.Errorf("border: %w", a.p.extendedError())
	}
	return horizontalRadius, verticalRadius, width, nil
}

// SetBorder sets the annotation's border corner radii and width.
func (a *Annotation) SetBorder(horizontalRadius, verticalRadius, width float32) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetBorder(a.handle, horizontalRadius, verticalRadius, width)) {
		return fmt.Errorf("set border: %w", a.p.extendedError())
	}
	return nil
}

// Link returns the link of a link annotation.
func (a *Annotation) Link() (*Link, error) {
	handle := a.p.b.FPDFAnnot_GetLink(a.handle)
	if handle == 0 {
		return nil, fmt.Errorf("annotation link: %w", a.p.extendedError())
	}
	return &Link{p: a.p, handle: handle}, nil
}

// SetURI turns a link annotation into a URI link.
func (a *Annotation) SetURI(uri string) error {
	if !bindings.IsTrue(a.p.b.FPDFAnnot_SetURI(a.handle, uri)) {
		return fmt.Errorf("set uri: %w", a.p.extendedError())
	}
	return nil
}
