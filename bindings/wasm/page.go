package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDF_LoadPage(doc ffi.Document, pageIndex int32) ffi.Page {
	return ffi.Page(uint32(b.call("FPDF_LoadPage", uint64(doc), uint64(uint32(pageIndex)))))
}

func (b *Bindings) FPDF_ClosePage(page ffi.Page) {
	b.call("FPDF_ClosePage", uint64(page))
}

func (b *Bindings) FPDF_GetPageWidthF(page ffi.Page) float32 {
	return decodeF32(b.call("FPDF_GetPageWidthF", uint64(page)))
}

func (b *Bindings) FPDF_GetPageHeightF(page ffi.Page) float32 {
	return decodeF32(b.call("FPDF_GetPageHeightF", uint64(page)))
}

func (b *Bindings) FPDF_GetPageSizeByIndexF(doc ffi.Document, pageIndex int32, size *ffi.SizeF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(8)
	ok := ffi.Bool(int32(uint32(b.call("FPDF_GetPageSizeByIndexF", uint64(doc), uint64(uint32(pageIndex)), p))))
	if size != nil {
		size.Width = m.f32(p)
		size.Height = m.f32(p + 4)
	}
	return ok
}

func (b *Bindings) FPDF_GetPageBoundingBox(page ffi.Page, rect *ffi.RectF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDF_GetPageBoundingBox", uint64(page), p))))
	m.getRect(p, rect)
	return ok
}

func (b *Bindings) FPDFPage_GetRotation(page ffi.Page) int32 {
	return int32(uint32(b.call("FPDFPage_GetRotation", uint64(page))))
}

func (b *Bindings) FPDFPage_SetRotation(page ffi.Page, rotation int32) {
	b.call("FPDFPage_SetRotation", uint64(page), uint64(uint32(rotation)))
}

// getBox runs one of the FPDFPage_Get*Box entry points through a scratch
// quartet of float32 out-params.
func (b *Bindings) getBox(name string, page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call(name, uint64(page), p, p+4, p+8, p+12))))
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

func (b *Bindings) setBox(name string, page ffi.Page, left, bottom, right, top float32) {
	b.call(name, uint64(page), f32arg(left), f32arg(bottom), f32arg(right), f32arg(top))
}

func (b *Bindings) FPDFPage_GetMediaBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.getBox("FPDFPage_GetMediaBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetMediaBox(page ffi.Page, left, bottom, right, top float32) {
	b.setBox("FPDFPage_SetMediaBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetCropBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.getBox("FPDFPage_GetCropBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetCropBox(page ffi.Page, left, bottom, right, top float32) {
	b.setBox("FPDFPage_SetCropBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetBleedBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.getBox("FPDFPage_GetBleedBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetBleedBox(page ffi.Page, left, bottom, right, top float32) {
	b.setBox("FPDFPage_SetBleedBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetTrimBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.getBox("FPDFPage_GetTrimBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetTrimBox(page ffi.Page, left, bottom, right, top float32) {
	b.setBox("FPDFPage_SetTrimBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetArtBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.getBox("FPDFPage_GetArtBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetArtBox(page ffi.Page, left, bottom, right, top float32) {
	b.setBox("FPDFPage_SetArtBox", page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_HasTransparency(page ffi.Page) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPage_HasTransparency", uint64(page)))))
}

func (b *Bindings) FPDF_DeviceToPage(page ffi.Page, startX, startY, sizeX, sizeY, rotate, deviceX, deviceY int32, pageX, pageY *float64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDF_DeviceToPage", uint64(page),
		uint64(uint32(startX)), uint64(uint32(startY)), uint64(uint32(sizeX)), uint64(uint32(sizeY)),
		uint64(uint32(rotate)), uint64(uint32(deviceX)), uint64(uint32(deviceY)), p, p+8))))
	if pageX != nil {
		*pageX = m.f64(p)
	}
	if pageY != nil {
		*pageY = m.f64(p + 8)
	}
	return ok
}

func (b *Bindings) FPDF_PageToDevice(page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, pageX, pageY float64, deviceX, deviceY *int32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(8)
	ok := ffi.Bool(int32(uint32(b.call("FPDF_PageToDevice", uint64(page),
		uint64(uint32(startX)), uint64(uint32(startY)), uint64(uint32(sizeX)), uint64(uint32(sizeY)),
		uint64(uint32(rotate)), f64arg(pageX), f64arg(pageY), p, p+4))))
	if deviceX != nil {
		*deviceX = m.i32(p)
	}
	if deviceY != nil {
		*deviceY = m.i32(p + 4)
	}
	return ok
}
