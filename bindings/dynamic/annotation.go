package dynamic

import (
	"unsafe"

	"github.com/wudi/pdfium/ffi"
)

func pointsPtr(points []ffi.PointF) unsafe.Pointer {
	if len(points) == 0 {
		return nil
	}
	return unsafe.Pointer(&points[0])
}

func (b *Bindings) FPDFPage_GetAnnotCount(page ffi.Page) int32 {
	return b.api.pageGetAnnotCount(page)
}

func (b *Bindings) FPDFPage_GetAnnot(page ffi.Page, index int32) ffi.Annotation {
	return b.api.pageGetAnnot(page, index)
}

func (b *Bindings) FPDFPage_GetAnnotIndex(page ffi.Page, annot ffi.Annotation) int32 {
	return b.api.pageGetAnnotIndex(page, annot)
}

func (b *Bindings) FPDFPage_CreateAnnot(page ffi.Page, subtype ffi.AnnotationSubtype) ffi.Annotation {
	return b.api.pageCreateAnnot(page, subtype)
}

func (b *Bindings) FPDFPage_RemoveAnnot(page ffi.Page, index int32) ffi.Bool {
	return b.api.pageRemoveAnnot(page, index)
}

func (b *Bindings) FPDFPage_CloseAnnot(annot ffi.Annotation) {
	b.api.pageCloseAnnot(annot)
}

func (b *Bindings) FPDFAnnot_GetSubtype(annot ffi.Annotation) ffi.AnnotationSubtype {
	return b.api.annotGetSubtype(annot)
}

func (b *Bindings) FPDFAnnot_IsSupportedSubtype(subtype ffi.AnnotationSubtype) ffi.Bool {
	return b.api.annotIsSupportedSubtype(subtype)
}

func (b *Bindings) FPDFAnnot_GetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool {
	return b.api.annotGetRect(annot, rect)
}

func (b *Bindings) FPDFAnnot_SetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool {
	return b.api.annotSetRect(annot, rect)
}

func (b *Bindings) FPDFAnnot_GetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, bl, a *uint32) ffi.Bool {
	return b.api.annotGetColor(annot, colorType, r, g, bl, a)
}

func (b *Bindings) FPDFAnnot_SetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, bl, a uint32) ffi.Bool {
	return b.api.annotSetColor(annot, colorType, r, g, bl, a)
}

func (b *Bindings) FPDFAnnot_GetFlags(annot ffi.Annotation) ffi.AnnotationFlags {
	return b.api.annotGetFlags(annot)
}

func (b *Bindings) FPDFAnnot_SetFlags(annot ffi.Annotation, flags ffi.AnnotationFlags) ffi.Bool {
	return b.api.annotSetFlags(annot, flags)
}

func (b *Bindings) FPDFAnnot_GetStringValue(annot ffi.Annotation, key string, buf []byte) uint64 {
	return b.api.annotGetStringValue(annot, cstrOrNil(key), buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAnnot_SetStringValue(annot ffi.Annotation, key, value string) ffi.Bool {
	wide := widestr(value)
	if wide == nil {
		return ffi.False
	}
	return b.api.annotSetStringValue(annot, cstrOrNil(key), wide)
}

func (b *Bindings) FPDFAnnot_GetNumberValue(annot ffi.Annotation, key string, value *float32) ffi.Bool {
	return b.api.annotGetNumberValue(annot, cstrOrNil(key), value)
}

func (b *Bindings) FPDFAnnot_HasKey(annot ffi.Annotation, key string) ffi.Bool {
	return b.api.annotHasKey(annot, cstrOrNil(key))
}

func (b *Bindings) FPDFAnnot_GetValueType(annot ffi.Annotation, key string) ffi.ObjectValueType {
	return b.api.annotGetValueType(annot, cstrOrNil(key))
}

func (b *Bindings) FPDFAnnot_GetAP(annot ffi.Annotation, mode ffi.AppearanceMode, buf []byte) uint64 {
	return b.api.annotGetAP(annot, mode, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAnnot_SetAP(annot ffi.Annotation, mode ffi.AppearanceMode, value string) ffi.Bool {
	wide := widestr(value)
	if wide == nil {
		return ffi.False
	}
	return b.api.annotSetAP(annot, mode, wide)
}

func (b *Bindings) FPDFAnnot_CountAttachmentPoints(annot ffi.Annotation) uint64 {
	return b.api.annotCountAttachmentPoints(annot)
}

func (b *Bindings) FPDFAnnot_HasAttachmentPoints(annot ffi.Annotation) ffi.Bool {
	return b.api.annotHasAttachmentPoints(annot)
}

func (b *Bindings) FPDFAnnot_GetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool {
	return b.api.annotGetAttachmentPoints(annot, index, quad)
}

func (b *Bindings) FPDFAnnot_SetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool {
	return b.api.annotSetAttachmentPoints(annot, index, quad)
}

func (b *Bindings) FPDFAnnot_AppendAttachmentPoints(annot ffi.Annotation, quad *ffi.QuadPointsF) ffi.Bool {
	return b.api.annotAppendAttachmentPoints(annot, quad)
}

func (b *Bindings) FPDFAnnot_GetObjectCount(annot ffi.Annotation) int32 {
	return b.api.annotGetObjectCount(annot)
}

func (b *Bindings) FPDFAnnot_GetObject(annot ffi.Annotation, index int32) ffi.PageObject {
	return b.api.annotGetObject(annot, index)
}

func (b *Bindings) FPDFAnnot_AppendObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool {
	return b.api.annotAppendObject(annot, obj)
}

func (b *Bindings) FPDFAnnot_UpdateObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool {
	return b.api.annotUpdateObject(annot, obj)
}

func (b *Bindings) FPDFAnnot_RemoveObject(annot ffi.Annotation, index int32) ffi.Bool {
	return b.api.annotRemoveObject(annot, index)
}

func (b *Bindings) FPDFAnnot_GetInkListCount(annot ffi.Annotation) uint64 {
	return b.api.annotGetInkListCount(annot)
}

func (b *Bindings) FPDFAnnot_GetInkListPath(annot ffi.Annotation, pathIndex uint64, points []ffi.PointF) uint64 {
	return b.api.annotGetInkListPath(annot, pathIndex, pointsPtr(points), uint64(len(points)))
}

func (b *Bindings) FPDFAnnot_AddInkStroke(annot ffi.Annotation, points []ffi.PointF) int32 {
	if len(points) == 0 {
		return -1
	}
	return b.api.annotAddInkStroke(annot, pointsPtr(points), uint64(len(points)))
}

func (b *Bindings) FPDFAnnot_RemoveInkList(annot ffi.Annotation) ffi.Bool {
	return b.api.annotRemoveInkList(annot)
}

func (b *Bindings) FPDFAnnot_GetVertices(annot ffi.Annotation, points []ffi.PointF) uint64 {
	return b.api.annotGetVertices(annot, pointsPtr(points), uint64(len(points)))
}

func (b *Bindings) FPDFAnnot_GetLine(annot ffi.Annotation, start, end *ffi.PointF) ffi.Bool {
	return b.api.annotGetLine(annot, start, end)
}

func (b *Bindings) FPDFAnnot_GetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth *float32) ffi.Bool {
	return b.api.annotGetBorder(annot, horizontalRadius, verticalRadius, borderWidth)
}

func (b *Bindings) FPDFAnnot_SetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth float32) ffi.Bool {
	return b.api.annotSetBorder(annot, horizontalRadius, verticalRadius, borderWidth)
}

func (b *Bindings) FPDFAnnot_GetLink(annot ffi.Annotation) ffi.Link {
	return b.api.annotGetLink(annot)
}

func (b *Bindings) FPDFAnnot_SetURI(annot ffi.Annotation, uri string) ffi.Bool {
	cs := cstrOrNil(uri)
	if cs == nil {
		return ffi.False
	}
	return b.api.annotSetURI(annot, cs)
}
