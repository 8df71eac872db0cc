package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFPage_CountObjects(page ffi.Page) int32 {
	return b.api.pageCountObjects(page)
}

func (b *Bindings) FPDFPage_GetObject(page ffi.Page, index int32) ffi.PageObject {
	return b.api.pageGetObject(page, index)
}

func (b *Bindings) FPDFPage_InsertObject(page ffi.Page, obj ffi.PageObject) {
	b.api.pageInsertObject(page, obj)
}

func (b *Bindings) FPDFPage_RemoveObject(page ffi.Page, obj ffi.PageObject) ffi.Bool {
	return b.api.pageRemoveObject(page, obj)
}

func (b *Bindings) FPDFPageObj_Destroy(obj ffi.PageObject) {
	b.api.pageObjDestroy(obj)
}

func (b *Bindings) FPDFPageObj_GetType(obj ffi.PageObject) ffi.ObjectType {
	return b.api.pageObjGetType(obj)
}

func (b *Bindings) FPDFPageObj_GetBounds(obj ffi.PageObject, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageObjGetBounds(obj, left, bottom, right, top)
}

func (b *Bindings) FPDFPageObj_GetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool {
	return b.api.pageObjGetMatrix(obj, matrix)
}

func (b *Bindings) FPDFPageObj_SetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool {
	return b.api.pageObjSetMatrix(obj, matrix)
}

func (b *Bindings) FPDFPageObj_Transform(obj ffi.PageObject, a, bb, c, d, e, f float64) {
	b.api.pageObjTransform(obj, a, bb, c, d, e, f)
}

func (b *Bindings) FPDFPageObj_GetFillColor(obj ffi.PageObject, r, g, bl, a *uint32) ffi.Bool {
	return b.api.pageObjGetFillColor(obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_SetFillColor(obj ffi.PageObject, r, g, bl, a uint32) ffi.Bool {
	return b.api.pageObjSetFillColor(obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_GetStrokeColor(obj ffi.PageObject, r, g, bl, a *uint32) ffi.Bool {
	return b.api.pageObjGetStrokeColor(obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_SetStrokeColor(obj ffi.PageObject, r, g, bl, a uint32) ffi.Bool {
	return b.api.pageObjSetStrokeColor(obj, r, g, bl, a)
}

func (b *Bindings) FPDFPageObj_GetStrokeWidth(obj ffi.PageObject, width *float32) ffi.Bool {
	return b.api.pageObjGetStrokeWidth(obj, width)
}

func (b *Bindings) FPDFPageObj_SetStrokeWidth(obj ffi.PageObject, width float32) ffi.Bool {
	return b.api.pageObjSetStrokeWidth(obj, width)
}

func (b *Bindings) FPDFPageObj_GetLineJoin(obj ffi.PageObject) ffi.LineJoin {
	return b.api.pageObjGetLineJoin(obj)
}

func (b *Bindings) FPDFPageObj_SetLineJoin(obj ffi.PageObject, join ffi.LineJoin) ffi.Bool {
	return b.api.pageObjSetLineJoin(obj, join)
}

func (b *Bindings) FPDFPageObj_GetLineCap(obj ffi.PageObject) ffi.LineCap {
	return b.api.pageObjGetLineCap(obj)
}

func (b *Bindings) FPDFPageObj_SetLineCap(obj ffi.PageObject, lineCap ffi.LineCap) ffi.Bool {
	return b.api.pageObjSetLineCap(obj, lineCap)
}

func (b *Bindings) FPDFPageObj_SetBlendMode(obj ffi.PageObject, blendMode string) {
	b.api.pageObjSetBlendMode(obj, cstrOrNil(blendMode))
}

func (b *Bindings) FPDFPageObj_HasTransparency(obj ffi.PageObject) ffi.Bool {
	return b.api.pageObjHasTransparency(obj)
}

func (b *Bindings) FPDFPageObj_GetDashCount(obj ffi.PageObject) int32 {
	return b.api.pageObjGetDashCount(obj)
}

func (b *Bindings) FPDFPageObj_GetDashArray(obj ffi.PageObject, dashArray []float32) ffi.Bool {
	return b.api.pageObjGetDashArray(obj, dashArray, uint64(len(dashArray)))
}

func (b *Bindings) FPDFPageObj_SetDashArray(obj ffi.PageObject, dashArray []float32, phase float32) ffi.Bool {
	return b.api.pageObjSetDashArray(obj, dashArray, uint64(len(dashArray)), phase)
}

func (b *Bindings) FPDFPageObj_GetDashPhase(obj ffi.PageObject, phase *float32) ffi.Bool {
	return b.api.pageObjGetDashPhase(obj, phase)
}

func (b *Bindings) FPDFPageObj_SetDashPhase(obj ffi.PageObject, phase float32) ffi.Bool {
	return b.api.pageObjSetDashPhase(obj, phase)
}

func (b *Bindings) FPDFPageObj_CreateNewPath(x, y float32) ffi.PageObject {
	return b.api.pageObjCreateNewPath(x, y)
}

func (b *Bindings) FPDFPageObj_CreateNewRect(x, y, w, h float32) ffi.PageObject {
	return b.api.pageObjCreateNewRect(x, y, w, h)
}

func (b *Bindings) FPDFPageObj_NewTextObj(doc ffi.Document, font string, fontSize float32) ffi.PageObject {
	return b.api.pageObjNewTextObj(doc, cstrOrNil(font), fontSize)
}

func (b *Bindings) FPDFPageObj_NewImageObj(doc ffi.Document) ffi.PageObject {
	return b.api.pageObjNewImageObj(doc)
}

func (b *Bindings) FPDFFormObj_CountObjects(obj ffi.PageObject) int32 {
	return b.api.formObjCountObjects(obj)
}

func (b *Bindings) FPDFFormObj_GetObject(obj ffi.PageObject, index int32) ffi.PageObject {
	return b.api.formObjGetObject(obj, index)
}

func (b *Bindings) FPDFPath_MoveTo(path ffi.PageObject, x, y float32) ffi.Bool {
	return b.api.pathMoveTo(path, x, y)
}

func (b *Bindings) FPDFPath_LineTo(path ffi.PageObject, x, y float32) ffi.Bool {
	return b.api.pathLineTo(path, x, y)
}

func (b *Bindings) FPDFPath_BezierTo(path ffi.PageObject, x1, y1, x2, y2, x3, y3 float32) ffi.Bool {
	return b.api.pathBezierTo(path, x1, y1, x2, y2, x3, y3)
}

func (b *Bindings) FPDFPath_Close(path ffi.PageObject) ffi.Bool {
	return b.api.pathClose(path)
}

func (b *Bindings) FPDFPath_SetDrawMode(path ffi.PageObject, fillMode ffi.PathFillMode, stroke ffi.Bool) ffi.Bool {
	return b.api.pathSetDrawMode(path, fillMode, stroke)
}

func (b *Bindings) FPDFPath_GetDrawMode(path ffi.PageObject, fillMode *ffi.PathFillMode, stroke *ffi.Bool) ffi.Bool {
	return b.api.pathGetDrawMode(path, fillMode, stroke)
}

func (b *Bindings) FPDFPath_CountSegments(path ffi.PageObject) int32 {
	return b.api.pathCountSegments(path)
}

func (b *Bindings) FPDFPath_GetPathSegment(path ffi.PageObject, index int32) ffi.PathSegment {
	return b.api.pathGetPathSegment(path, index)
}

func (b *Bindings) FPDFPathSegment_GetPoint(segment ffi.PathSegment, x, y *float32) ffi.Bool {
	return b.api.segGetPoint(segment, x, y)
}

func (b *Bindings) FPDFPathSegment_GetType(segment ffi.PathSegment) ffi.PathSegmentType {
	return b.api.segGetType(segment)
}

func (b *Bindings) FPDFPathSegment_GetClose(segment ffi.PathSegment) ffi.Bool {
	return b.api.segGetClose(segment)
}
