package native

import (
	"io"
	"runtime"
	"unsafe"

	"github.com/wudi/pdfium/ffi"
)

func cstrOrNil(s string) []byte {
	if s == "" {
		return nil
	}
	buf, err := ffi.CString(s)
	if err != nil {
		return nil
	}
	return buf
}

func widestr(s string) []byte {
	buf, err := ffi.EncodeUTF16LE(s)
	if err != nil {
		return nil
	}
	return buf
}

func (b *Bindings) FPDF_InitLibrary()    { b.api.initLibrary() }
func (b *Bindings) FPDF_DestroyLibrary() { b.api.destroyLibrary() }

func (b *Bindings) FPDF_GetLastError() ffi.ErrorCode {
	return ffi.ErrorCode(b.api.getLastError())
}

func (b *Bindings) FPDF_LoadMemDocument(data []byte, password string) ffi.Document {
	doc := b.api.loadMemDocument(data, int32(len(data)), cstrOrNil(password))
	if doc != 0 {
		b.mu.Lock()
		b.docData[doc] = data
		b.mu.Unlock()
	}
	return doc
}

func (b *Bindings) FPDF_LoadDocument(path, password string) ffi.Document {
	return b.api.loadDocument(cstrOrNil(path), cstrOrNil(password))
}

func (b *Bindings) FPDF_LoadCustomDocument(reader io.ReaderAt, size uint64, password string) ffi.Document {
	st := newFileAccess(reader, size)
	doc := b.api.loadCustomDocument(st.access, cstrOrNil(password))
	if doc == 0 {
		st.release()
		return 0
	}
	b.mu.Lock()
	b.docFile[doc] = st
	b.mu.Unlock()
	return doc
}

func (b *Bindings) FPDF_CloseDocument(doc ffi.Document) {
	b.api.closeDocument(doc)
	b.mu.Lock()
	delete(b.docData, doc)
	st := b.docFile[doc]
	delete(b.docFile, doc)
	b.mu.Unlock()
	if st != nil {
		st.release()
	}
}

func (b *Bindings) FPDF_GetPageCount(doc ffi.Document) int32 {
	return b.api.getPageCount(doc)
}

func (b *Bindings) FPDF_GetFileVersion(doc ffi.Document, version *int32) ffi.Bool {
	return b.api.getFileVersion(doc, version)
}

func (b *Bindings) FPDF_GetDocPermissions(doc ffi.Document) uint64 {
	return b.api.getDocPermissions(doc)
}

func (b *Bindings) FPDF_GetSecurityHandlerRevision(doc ffi.Document) int32 {
	return b.api.getSecurityHandlerRevision(doc)
}

func (b *Bindings) FPDF_GetFileIdentifier(doc ffi.Document, idType ffi.FileIDType, buf []byte) uint64 {
	return b.api.getFileIdentifier(doc, idType, buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetMetaText(doc ffi.Document, tag string, buf []byte) uint64 {
	return b.api.getMetaText(doc, cstrOrNil(tag), buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetPageLabel(doc ffi.Document, pageIndex int32, buf []byte) uint64 {
	return b.api.getPageLabel(doc, pageIndex, buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetFormType(doc ffi.Document) ffi.FormType {
	return b.api.getFormType(doc)
}

func (b *Bindings) FPDFDoc_GetPageMode(doc ffi.Document) ffi.PageMode {
	return b.api.docGetPageMode(doc)
}

func (b *Bindings) FPDFCatalog_IsTagged(doc ffi.Document) ffi.Bool {
	return b.api.catalogIsTagged(doc)
}

func (b *Bindings) FPDF_SaveAsCopy(doc ffi.Document, w io.Writer, flags ffi.SaveFlags) ffi.Bool {
	fw, st := newFileWrite(w)
	defer releaseFileWrite(fw)
	ok := b.api.saveAsCopy(doc, fw, uint64(flags))
	runtime.KeepAlive(fw)
	if st.err != nil {
		return ffi.False
	}
	return ok
}

func (b *Bindings) FPDF_SaveWithVersion(doc ffi.Document, w io.Writer, flags ffi.SaveFlags, fileVersion int32) ffi.Bool {
	fw, st := newFileWrite(w)
	defer releaseFileWrite(fw)
	ok := b.api.saveWithVersion(doc, fw, uint64(flags), fileVersion)
	runtime.KeepAlive(fw)
	if st.err != nil {
		return ffi.False
	}
	return ok
}

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

func (b *Bindings) FPDF_RenderPageBitmap(bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags) {
	b.api.renderPageBitmap(bitmap, page, startX, startY, sizeX, sizeY, rotate, flags)
}

func (b *Bindings) FPDF_RenderPageBitmapWithMatrix(bitmap ffi.Bitmap, page ffi.Page, matrix *ffi.Matrix, clipping *ffi.RectF, flags ffi.RenderFlags) {
	b.api.renderPageBitmapWithMatrix(bitmap, page, matrix, clipping, flags)
}

func (b *Bindings) FPDFBitmap_CreateEx(width, height int32, format ffi.BitmapFormat, firstScan []byte, stride int32) ffi.Bitmap {
	bm := b.api.bitmapCreateEx(width, height, format, firstScan, stride)
	if bm != 0 && firstScan != nil {
		b.mu.Lock()
		b.bitmaps[bm] = firstScan
		b.mu.Unlock()
	}
	return bm
}

func (b *Bindings) FPDFBitmap_Destroy(bitmap ffi.Bitmap) {
	b.api.bitmapDestroy(bitmap)
	b.mu.Lock()
	delete(b.bitmaps, bitmap)
	b.mu.Unlock()
}

func (b *Bindings) FPDFBitmap_FillRect(bitmap ffi.Bitmap, left, top, width, height int32, color uint64) {
	b.api.bitmapFillRect(bitmap, left, top, width, height, color)
}

func (b *Bindings) FPDFBitmap_GetBuffer(bitmap ffi.Bitmap, buf []byte) ffi.Bool {
	ptr := b.api.bitmapGetBuffer(bitmap)
	if ptr == 0 {
		return ffi.False
	}
	size := int(b.api.bitmapGetStride(bitmap)) * int(b.api.bitmapGetHeight(bitmap))
	if size <= 0 {
		return ffi.False
	}
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return ffi.True
}

func (b *Bindings) FPDFBitmap_GetFormat(bitmap ffi.Bitmap) ffi.BitmapFormat {
	return b.api.bitmapGetFormat(bitmap)
}

func (b *Bindings) FPDFBitmap_GetWidth(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetWidth(bitmap)
}

func (b *Bindings) FPDFBitmap_GetHeight(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetHeight(bitmap)
}

func (b *Bindings) FPDFBitmap_GetStride(bitmap ffi.Bitmap) int32 {
	return b.api.bitmapGetStride(bitmap)
}

func (b *Bindings) FPDFText_LoadPage(page ffi.Page) ffi.TextPage {
	return b.api.textLoadPage(page)
}

func (b *Bindings) FPDFText_ClosePage(textPage ffi.TextPage) {
	b.api.textClosePage(textPage)
}

func (b *Bindings) FPDFText_CountChars(textPage ffi.TextPage) int32 {
	return b.api.textCountChars(textPage)
}

func (b *Bindings) FPDFText_GetText(textPage ffi.TextPage, startIndex, count int32, buf []byte) int32 {
	return b.api.textGetText(textPage, startIndex, count, buf)
}

func (b *Bindings) FPDFText_GetUnicode(textPage ffi.TextPage, index int32) uint32 {
	return b.api.textGetUnicode(textPage, index)
}

func (b *Bindings) FPDFText_GetFontSize(textPage ffi.TextPage, index int32) float64 {
	return b.api.textGetFontSize(textPage, index)
}

func (b *Bindings) FPDFText_GetFontWeight(textPage ffi.TextPage, index int32) int32 {
	return b.api.textGetFontWeight(textPage, index)
}

func (b *Bindings) FPDFText_GetFontInfo(textPage ffi.TextPage, index int32, buf []byte, flags *int32) uint64 {
	return b.api.textGetFontInfo(textPage, index, buf, uint64(len(buf)), flags)
}

func (b *Bindings) FPDFText_GetCharBox(textPage ffi.TextPage, index int32, left, right, bottom, top *float64) ffi.Bool {
	return b.api.textGetCharBox(textPage, index, left, right, bottom, top)
}

func (b *Bindings) FPDFText_GetLooseCharBox(textPage ffi.TextPage, index int32, rect *ffi.RectF) ffi.Bool {
	return b.api.textGetLooseCharBox(textPage, index, rect)
}

func (b *Bindings) FPDFText_GetCharOrigin(textPage ffi.TextPage, index int32, x, y *float64) ffi.Bool {
	return b.api.textGetCharOrigin(textPage, index, x, y)
}

func (b *Bindings) FPDFText_GetCharAngle(textPage ffi.TextPage, index int32) float32 {
	return b.api.textGetCharAngle(textPage, index)
}

func (b *Bindings) FPDFText_CountRects(textPage ffi.TextPage, startIndex, count int32) int32 {
	return b.api.textCountRects(textPage, startIndex, count)
}

func (b *Bindings) FPDFText_GetRect(textPage ffi.TextPage, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	return b.api.textGetRect(textPage, rectIndex, left, top, right, bottom)
}

func (b *Bindings) FPDFText_GetBoundedText(textPage ffi.TextPage, left, top, right, bottom float64, buf []byte) int32 {
	return b.api.textGetBoundedText(textPage, left, top, right, bottom, buf, int32(len(buf)/2))
}

func (b *Bindings) FPDFText_GetCharIndexAtPos(textPage ffi.TextPage, x, y, xTolerance, yTolerance float64) int32 {
	return b.api.textGetCharIndexAtPos(textPage, x, y, xTolerance, yTolerance)
}

func (b *Bindings) FPDFText_FindStart(textPage ffi.TextPage, findWhat string, flags uint64, startIndex int32) ffi.SearchHandle {
	term := widestr(findWhat)
	if term == nil {
		return 0
	}
	return b.api.textFindStart(textPage, term, flags, startIndex)
}

func (b *Bindings) FPDFText_FindNext(handle ffi.SearchHandle) ffi.Bool {
	return b.api.textFindNext(handle)
}

func (b *Bindings) FPDFText_FindPrev(handle ffi.SearchHandle) ffi.Bool {
	return b.api.textFindPrev(handle)
}

func (b *Bindings) FPDFText_GetSchResultIndex(handle ffi.SearchHandle) int32 {
	return b.api.textGetSchResultIndex(handle)
}

func (b *Bindings) FPDFText_GetSchCount(handle ffi.SearchHandle) int32 {
	return b.api.textGetSchCount(handle)
}

func (b *Bindings) FPDFText_FindClose(handle ffi.SearchHandle) {
	b.api.textFindClose(handle)
}

func (b *Bindings) FPDFLink_LoadWebLinks(textPage ffi.TextPage) ffi.PageLink {
	return b.api.linkLoadWebLinks(textPage)
}

func (b *Bindings) FPDFLink_CloseWebLinks(pageLink ffi.PageLink) {
	b.api.linkCloseWebLinks(pageLink)
}

func (b *Bindings) FPDFLink_CountWebLinks(pageLink ffi.PageLink) int32 {
	return b.api.linkCountWebLinks(pageLink)
}

func (b *Bindings) FPDFLink_GetURL(pageLink ffi.PageLink, linkIndex int32, buf []byte) int32 {
	return b.api.linkGetURL(pageLink, linkIndex, buf, int32(len(buf)/2))
}

func (b *Bindings) FPDFLink_CountRects(pageLink ffi.PageLink, linkIndex int32) int32 {
	return b.api.linkCountRects(pageLink, linkIndex)
}

func (b *Bindings) FPDFLink_GetRect(pageLink ffi.PageLink, linkIndex, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	return b.api.linkGetRect(pageLink, linkIndex, rectIndex, left, top, right, bottom)
}
