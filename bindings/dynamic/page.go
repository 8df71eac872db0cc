package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDF_LoadPage(doc ffi.Document, pageIndex int32) ffi.Page {
	return b.api.loadPage(doc, pageIndex)
}

func (b *Bindings) FPDF_ClosePage(page ffi.Page) { b.api.closePage(page) }

func (b *Bindings) FPDF_GetPageWidthF(page ffi.Page) float32 {
	return b.api.getPageWidthF(page)
}

func (b *Bindings) FPDF_GetPageHeightF(page ffi.Page) float32 {
	return b.api.getPageHeightF(page)
}

func (b *Bindings) FPDF_GetPageSizeByIndexF(doc ffi.Document, pageIndex int32, size *ffi.SizeF) ffi.Bool {
	return b.api.getPageSizeByIndexF(doc, pageIndex, size)
}

func (b *Bindings) FPDF_GetPageBoundingBox(page ffi.Page, rect *ffi.RectF) ffi.Bool {
	return b.api.getPageBoundingBox(page, rect)
}

func (b *Bindings) FPDFPage_GetRotation(page ffi.Page) int32 {
	return b.api.pageGetRotation(page)
}

func (b *Bindings) FPDFPage_SetRotation(page ffi.Page, rotation int32) {
	b.api.pageSetRotation(page, rotation)
}

func (b *Bindings) FPDFPage_GetMediaBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageGetMediaBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetMediaBox(page ffi.Page, left, bottom, right, top float32) {
	b.api.pageSetMediaBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetCropBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageGetCropBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetCropBox(page ffi.Page, left, bottom, right, top float32) {
	b.api.pageSetCropBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetBleedBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageGetBleedBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetBleedBox(page ffi.Page, left, bottom, right, top float32) {
	b.api.pageSetBleedBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetTrimBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageGetTrimBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetTrimBox(page ffi.Page, left, bottom, right, top float32) {
	b.api.pageSetTrimBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_GetArtBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool {
	return b.api.pageGetArtBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_SetArtBox(page ffi.Page, left, bottom, right, top float32) {
	b.api.pageSetArtBox(page, left, bottom, right, top)
}

func (b *Bindings) FPDFPage_HasTransparency(page ffi.Page) ffi.Bool {
	return b.api.pageHasTransparency(page)
}

func (b *Bindings) FPDF_DeviceToPage(page ffi.Page, startX, startY, sizeX, sizeY, rotate, deviceX, deviceY int32, pageX, pageY *float64) ffi.Bool {
	return b.api.deviceToPage(page, startX, startY, sizeX, sizeY, rotate, deviceX, deviceY, pageX, pageY)
}

func (b *Bindings) FPDF_PageToDevice(page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, pageX, pageY float64, deviceX, deviceY *int32) ffi.Bool {
	return b.api.pageToDevice(page, startX, startY, sizeX, sizeY, rotate, pageX, pageY, deviceX, deviceY)
}
