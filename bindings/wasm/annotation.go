package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFPage_GetAnnotCount(page ffi.Page) int32 {
	return int32(uint32(b.call("FPDFPage_GetAnnotCount", uint64(page))))
}

func (b *Bindings) FPDFPage_GetAnnot(page ffi.Page, index int32) ffi.Annotation {
	return ffi.Annotation(uint32(b.call("FPDFPage_GetAnnot", uint64(page), uint64(uint32(index)))))
}

func (b *Bindings) FPDFPage_GetAnnotIndex(page ffi.Page, annot ffi.Annotation) int32 {
	return int32(uint32(b.call("FPDFPage_GetAnnotIndex", uint64(page), uint64(annot))))
}

func (b *Bindings) FPDFPage_CreateAnnot(page ffi.Page, subtype ffi.AnnotationSubtype) ffi.Annotation {
	return ffi.Annotation(uint32(b.call("FPDFPage_CreateAnnot", uint64(page), uint64(uint32(subtype)))))
}

func (b *Bindings) FPDFPage_RemoveAnnot(page ffi.Page, index int32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPage_RemoveAnnot", uint64(page), uint64(uint32(index))))))
}

func (b *Bindings) FPDFPage_CloseAnnot(annot ffi.Annotation) {
	b.call("FPDFPage_CloseAnnot", uint64(annot))
}

func (b *Bindings) FPDFAnnot_GetSubtype(annot ffi.Annotation) ffi.AnnotationSubtype {
	return ffi.AnnotationSubtype(int32(uint32(b.call("FPDFAnnot_GetSubtype", uint64(annot)))))
}

func (b *Bindings) FPDFAnnot_IsSupportedSubtype(subtype ffi.AnnotationSubtype) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_IsSupportedSubtype", uint64(uint32(subtype))))))
}

func (b *Bindings) FPDFAnnot_GetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetRect", uint64(annot), p))))
	m.getRect(p, rect)
	return ok
}

func (b *Bindings) FPDFAnnot_SetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetRect", uint64(annot), m.putRect(rect)))))
}

func (b *Bindings) FPDFAnnot_GetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, bl, a *uint32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetColor", uint64(annot), uint64(uint32(colorType)), p, p+4, p+8, p+12))))
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

func (b *Bindings) FPDFAnnot_SetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, bl, a uint32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetColor", uint64(annot), uint64(uint32(colorType)),
		uint64(r), uint64(g), uint64(bl), uint64(a)))))
}

func (b *Bindings) FPDFAnnot_GetFlags(annot ffi.Annotation) ffi.AnnotationFlags {
	return ffi.AnnotationFlags(int32(uint32(b.call("FPDFAnnot_GetFlags", uint64(annot)))))
}

func (b *Bindings) FPDFAnnot_SetFlags(annot ffi.Annotation, flags ffi.AnnotationFlags) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetFlags", uint64(annot), uint64(uint32(flags))))))
}

func (b *Bindings) FPDFAnnot_GetStringValue(annot ffi.Annotation, key string, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	keyPtr := m.bytes(cstr(key))
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAnnot_GetStringValue", uint64(annot), keyPtr, bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFAnnot_SetStringValue(annot ffi.Annotation, key, value string) ffi.Bool {
	wide := wstr(value)
	if wide == nil {
		return ffi.False
	}
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetStringValue", uint64(annot), m.bytes(cstr(key)), m.bytes(wide)))))
}

func (b *Bindings) FPDFAnnot_GetNumberValue(annot ffi.Annotation, key string, value *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	keyPtr := m.bytes(cstr(key))
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetNumberValue", uint64(annot), keyPtr, p))))
	if value != nil {
		*value = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFAnnot_HasKey(annot ffi.Annotation, key string) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_HasKey", uint64(annot), m.bytes(cstr(key))))))
}

func (b *Bindings) FPDFAnnot_GetValueType(annot ffi.Annotation, key string) ffi.ObjectValueType {
	m := b.scratch()
	defer m.release()
	return ffi.ObjectValueType(int32(uint32(b.call("FPDFAnnot_GetValueType", uint64(annot), m.bytes(cstr(key))))))
}

func (b *Bindings) FPDFAnnot_GetAP(annot ffi.Annotation, mode ffi.AppearanceMode, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAnnot_GetAP", uint64(annot), uint64(uint32(mode)), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFAnnot_SetAP(annot ffi.Annotation, mode ffi.AppearanceMode, value string) ffi.Bool {
	wide := wstr(value)
	if wide == nil {
		return ffi.False
	}
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetAP", uint64(annot), uint64(uint32(mode)), m.bytes(wide)))))
}

func (b *Bindings) FPDFAnnot_CountAttachmentPoints(annot ffi.Annotation) uint64 {
	return uint64(uint32(b.call("FPDFAnnot_CountAttachmentPoints", uint64(annot))))
}

func (b *Bindings) FPDFAnnot_HasAttachmentPoints(annot ffi.Annotation) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_HasAttachmentPoints", uint64(annot)))))
}

func (b *Bindings) FPDFAnnot_GetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(32)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetAttachmentPoints", uint64(annot), uint64(uint32(index)), p))))
	m.getQuad(p, quad)
	return ok
}

func (b *Bindings) FPDFAnnot_SetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetAttachmentPoints", uint64(annot), uint64(uint32(index)), m.putQuad(quad)))))
}

func (b *Bindings) FPDFAnnot_AppendAttachmentPoints(annot ffi.Annotation, quad *ffi.QuadPointsF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_AppendAttachmentPoints", uint64(annot), m.putQuad(quad)))))
}

func (b *Bindings) FPDFAnnot_GetObjectCount(annot ffi.Annotation) int32 {
	return int32(uint32(b.call("FPDFAnnot_GetObjectCount", uint64(annot))))
}

func (b *Bindings) FPDFAnnot_GetObject(annot ffi.Annotation, index int32) ffi.PageObject {
	return ffi.PageObject(uint32(b.call("FPDFAnnot_GetObject", uint64(annot), uint64(uint32(index)))))
}

func (b *Bindings) FPDFAnnot_AppendObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_AppendObject", uint64(annot), uint64(obj)))))
}

func (b *Bindings) FPDFAnnot_UpdateObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_UpdateObject", uint64(annot), uint64(obj)))))
}

func (b *Bindings) FPDFAnnot_RemoveObject(annot ffi.Annotation, index int32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_RemoveObject", uint64(annot), uint64(uint32(index))))))
}

func (b *Bindings) FPDFAnnot_GetInkListCount(annot ffi.Annotation) uint64 {
	return uint64(uint32(b.call("FPDFAnnot_GetInkListCount", uint64(annot))))
}

func (b *Bindings) FPDFAnnot_GetInkListPath(annot ffi.Annotation, pathIndex uint64, points []ffi.PointF) uint64 {
	m := b.scratch()
	defer m.release()
	p := m.buffer(len(points) * 8)
	n := uint64(uint32(b.call("FPDFAnnot_GetInkListPath", uint64(annot), uint64(uint32(pathIndex)), p, uint64(uint32(len(points))))))
	m.getPoints(p, points)
	return n
}

func (b *Bindings) FPDFAnnot_AddInkStroke(annot ffi.Annotation, points []ffi.PointF) int32 {
	if len(points) == 0 {
		return -1
	}
	m := b.scratch()
	defer m.release()
	return int32(uint32(b.call("FPDFAnnot_AddInkStroke", uint64(annot), m.putPoints(points), uint64(uint32(len(points))))))
}

func (b *Bindings) FPDFAnnot_RemoveInkList(annot ffi.Annotation) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_RemoveInkList", uint64(annot)))))
}

func (b *Bindings) FPDFAnnot_GetVertices(annot ffi.Annotation, points []ffi.PointF) uint64 {
	m := b.scratch()
	defer m.release()
	p := m.buffer(len(points) * 8)
	n := uint64(uint32(b.call("FPDFAnnot_GetVertices", uint64(annot), p, uint64(uint32(len(points))))))
	m.getPoints(p, points)
	return n
}

func (b *Bindings) FPDFAnnot_GetLine(annot ffi.Annotation, start, end *ffi.PointF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetLine", uint64(annot), p, p+8))))
	if start != nil {
		start.X = m.f32(p)
		start.Y = m.f32(p + 4)
	}
	if end != nil {
		end.X = m.f32(p + 8)
		end.Y = m.f32(p + 12)
	}
	return ok
}

func (b *Bindings) FPDFAnnot_GetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(12)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAnnot_GetBorder", uint64(annot), p, p+4, p+8))))
	if horizontalRadius != nil {
		*horizontalRadius = m.f32(p)
	}
	if verticalRadius != nil {
		*verticalRadius = m.f32(p + 4)
	}
	if borderWidth != nil {
		*borderWidth = m.f32(p + 8)
	}
	return ok
}

func (b *Bindings) FPDFAnnot_SetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth float32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetBorder", uint64(annot),
		f32arg(horizontalRadius), f32arg(verticalRadius), f32arg(borderWidth)))))
}

func (b *Bindings) FPDFAnnot_GetLink(annot ffi.Annotation) ffi.Link {
	return ffi.Link(uint32(b.call("FPDFAnnot_GetLink", uint64(annot))))
}

func (b *Bindings) FPDFAnnot_SetURI(annot ffi.Annotation, uri string) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAnnot_SetURI", uint64(annot), m.bytes(cstr(uri))))))
}
