package wasm

import (
	"encoding/binary"
	"math"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDFPage_CountObjects(page ffi.Page) int32 {
	return int32(uint32(b.call("FPDFPage_CountObjects", uint64(page))))
}

func (b *Bindings) FPDFPage_GetObject(page ffi.Page, index int32) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFPage_GetObject", uint64(page), uint64(uint32(index)))))
}

func (b *Bindings) FPDFPage_InsertObject(page ffi.Page, obj ffi.PageObject) {
	b.call("FPDFPage_InsertObject", uint64(page), uint64(obj))
}

func (b *Bindings) FPDFPage_RemoveObject(page ffi.Page, obj ffi.PageObject) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPage_RemoveObject", uint64(page), uint64(obj)))))
}

func (b *Bindings) FPDFPageObj_Destroy(obj ffi.PageObject) {
	b.call("FPDFPageObj_Destroy", uint64(obj))
}

func (b *Bindings) FPDFPageObj_GetType(obj ffi.PageObject) ffi.ObjectType {
	return ffi.ObjectType(int32(uint32(b.call("FPDFPageObj_GetType", uint64(obj)))))
}

func (b *Bindings) FPDFPageObj_GetBounds(obj ffi.PageObject, left, bottom, right, top *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPageObj_GetBounds", uint64(obj), p, p+4, p+8, p+12))))
	if left != nil {
		*left = m.f32(p)
	}
	if bottom != nil {
		*bottom = m.f32(p + 4)
	}
	if right != nil {
		*right = m.f32(p + 8)
	}
	if top != nil {
		*top = m.f32(p + 12)
	}
	return ok
}

func (b *Bindings) FPDFPageObj_GetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(24)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPageObj_GetMatrix", uint64(obj), p))))
	m.getMatrix(p, matrix)
	return ok
}

func (b *Bindings) FPDFPageObj_SetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetMatrix", uint64(obj), m.putMatrix(matrix)))))
}

func (b *Bindings) FPDFPageObj_Transform(obj ffi.PageObject, a, bb, c, d, e, f float64) {
	b.call("FPDFPageObj_Transform", uint64(obj), f64arg(a), f64arg(bb), f64arg(c), f64arg(d), f64arg(e), f64arg(f))
}

func (b *Bindings) getColor(name string, obj ffi.PageObject, r, g, bl, a *uint32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call(name, uint64(obj), p, p+4, p+8, p+12))))
	if r != nil {
		*r = m.u32(p)
	}
	if g != nil {
		*g = m.u32(p + 4)
	}
	if bl != nil {
		*bl = m.u32(p + 8)
	}
	if a != nil {
		*a = m.u32(p + 12)
	}
	return ok
}

func (b *Bindings) FPDFPageObj_GetFillColor(obj ffi.PageObject, r, g, bl, a *uint32) ffi.Bool {
	return b.getColor("FPDFPageObj_GetFillColor", obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_SetFillColor(obj ffi.PageObject, r, g, bl, a uint32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetFillColor", uint64(obj), uint64(r), uint64(g), uint64(bl), uint64(a)))))
}

func (b *Bindings) FPDFPageObj_GetStrokeColor(obj ffi.PageObject, r, g, bl, a *uint32) ffi.Bool {
	return b.getColor("FPDFPageObj_GetStrokeColor", obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_SetStrokeColor(obj ffi.PageObject, r, g, bl, a uint32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetStrokeColor", uint64(obj), uint64(r), uint64(g), uint64(bl), uint64(a)))))
}

func (b *Bindings) FPDFPageObj_GetStrokeWidth(obj ffi.PageObject, width *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPageObj_GetStrokeWidth", uint64(obj), p))))
	if width != nil {
		*width = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFPageObj_SetStrokeWidth(obj ffi.PageObject, width float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetStrokeWidth", uint64(obj), f32arg(width)))))
}

func (b *Bindings) FPDFPageObj_GetLineJoin(obj ffi.PageObject) ffi.LineJoin {
	return ffi.LineJoin(int32(uint32(b.call("FPDFPageObj_GetLineJoin", uint64(obj)))))
}

func (b *Bindings) FPDFPageObj_SetLineJoin(obj ffi.PageObject, join ffi.LineJoin) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetLineJoin", uint64(obj), uint64(uint32(join))))))
}

func (b *Bindings) FPDFPageObj_GetLineCap(obj ffi.PageObject) ffi.LineCap {
	return ffi.LineCap(int32(uint32(b.call("FPDFPageObj_GetLineCap", uint64(obj)))))
}

func (b *Bindings) FPDFPageObj_SetLineCap(obj ffi.PageObject, lineCap ffi.LineCap) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetLineCap", uint64(obj), uint64(uint32(lineCap))))))
}

func (b *Bindings) FPDFPageObj_SetBlendMode(obj ffi.PageObject, blendMode string) {
	m := b.scratch()
	defer m.release()
	b.call("FPDFPageObj_SetBlendMode", uint64(obj), m.bytes(cstrOrNil(blendMode)))
}

func (b *Bindings) FPDFPageObj_HasTransparency(obj ffi.PageObject) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_HasTransparency", uint64(obj)))))
}

func (b *Bindings) FPDFPageObj_GetDashCount(obj ffi.PageObject) int32 {
	return int32(uint32(b.call("FPDFPageObj_GetDashCount", uint64(obj))))
}

func (b *Bindings) FPDFPageObj_GetDashArray(obj ffi.PageObject, dashArray []float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(len(dashArray) * 4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPageObj_GetDashArray", uint64(obj), p, uint64(uint32(len(dashArray)))))))
	for i := range dashArray {
		dashArray[i] = m.f32(p + uint64(i*4))
	}
	return ok
}

func (b *Bindings) FPDFPageObj_SetDashArray(obj ffi.PageObject, dashArray []float32, phase float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	var p uint64
	if len(dashArray) > 0 {
		buf := make([]byte, len(dashArray)*4)
		for i, v := range dashArray {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
		}
		p = m.bytes(buf)
	}
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetDashArray", uint64(obj), p, uint64(uint32(len(dashArray))), f32arg(phase)))))
}

func (b *Bindings) FPDFPageObj_GetDashPhase(obj ffi.PageObject, phase *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPageObj_GetDashPhase", uint64(obj), p))))
	if phase != nil {
		*phase = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFPageObj_SetDashPhase(obj ffi.PageObject, phase float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPageObj_SetDashPhase", uint64(obj), f32arg(phase)))))
}

func (b *Bindings) FPDFPageObj_CreateNewPath(x, y float32) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFPageObj_CreateNewPath", f32arg(x), f32arg(y))))
}

func (b *Bindings) FPDFPageObj_CreateNewRect(x, y, w, h float32) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFPageObj_CreateNewRect", f32arg(x), f32arg(y), f32arg(w), f32arg(h))))
}

func (b *Bindings) FPDFPageObj_NewTextObj(doc ffi.Document, font string, fontSize float32) ffi.PageObject {
	m := b.scratch()
	defer m.release()
	return ffi.PageObject(uint32(b.call("FPDFPageObj_NewTextObj", uint64(doc), m.bytes(cstrOrNil(font)), f32arg(fontSize))))
}

func (b *Bindings) FPDFPageObj_NewImageObj(doc ffi.Document) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFPageObj_NewImageObj", uint64(doc))))
}

func (b *Bindings) FPDFFormObj_CountObjects(obj ffi.PageObject) int32 {
	return int32(uint32(b.call("FPDFFormObj_CountObjects", uint64(obj))))
}

func (b *Bindings) FPDFFormObj_GetObject(obj ffi.PageObject, index int32) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFFormObj_GetObject", uint64(obj), uint64(uint32(index)))))
}

func (b *Bindings) FPDFPath_MoveTo(path ffi.PageObject, x, y float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPath_MoveTo", uint64(path), f32arg(x), f32arg(y)))))
}

func (b *Bindings) FPDFPath_LineTo(path ffi.PageObject, x, y float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPath_LineTo", uint64(path), f32arg(x), f32arg(y)))))
}

func (b *Bindings) FPDFPath_BezierTo(path ffi.PageObject, x1, y1, x2, y2, x3, y3 float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPath_BezierTo", uint64(path),
		f32arg(x1), f32arg(y1), f32arg(x2), f32arg(y2), f32arg(x3), f32arg(y3)))))
}

func (b *Bindings) FPDFPath_Close(path ffi.PageObject) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPath_Close", uint64(path)))))
}

func (b *Bindings) FPDFPath_SetDrawMode(path ffi.PageObject, fillMode ffi.PathFillMode, stroke ffi.Bool) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPath_SetDrawMode", uint64(path), uint64(uint32(fillMode)), uint64(uint32(stroke))))))
}

func (b *Bindings) FPDFPath_GetDrawMode(path ffi.PageObject, fillMode *ffi.PathFillMode, stroke *ffi.Bool) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(8)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPath_GetDrawMode", uint64(path), p, p+4))))
	if fillMode != nil {
		*fillMode = ffi.PathFillMode(m.i32(p))
	}
	if stroke != nil {
		*stroke = ffi.Bool(m.i32(p + 4))
	}
	return ok
}

func (b *Bindings) FPDFPath_CountSegments(path ffi.PageObject) int32 {
	return int32(uint32(b.call("FPDFPath_CountSegments", uint64(path))))
}

func (b *Bindings) FPDFPath_GetPathSegment(path ffi.PageObject, index int32) ffi.PathSegment {
	return ffi.PathSegment(uint32(b.call("FPDFPath_GetPathSegment", uint64(path), uint64(uint32(index)))))
}

func (b *Bindings) FPDFPathSegment_GetPoint(segment ffi.PathSegment, x, y *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(8)
	ok := ffi.Bool(int32(uint32(b.call("FPDFPathSegment_GetPoint", uint64(segment), p, p+4))))
	if x != nil {
		*x = m.f32(p)
	}
	if y != nil {
		*y = m.f32(p + 4)
	}
	return ok
}

func (b *Bindings) FPDFPathSegment_GetType(segment ffi.PathSegment) ffi.PathSegmentType {
	return ffi.PathSegmentType(int32(uint32(b.call("FPDFPathSegment_GetType", uint64(segment)))))
}

func (b *Bindings) FPDFPathSegment_GetClose(segment ffi.PathSegment) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPathSegment_GetClose", uint64(segment)))))
}
