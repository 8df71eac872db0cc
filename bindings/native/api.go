package native

import (
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/wudi/pdfium/ffi"
)

// api holds the resolved core entry points. Signatures mirror the C
// declarations under the LP64 model, as in the dynamic backend.
type api struct {
	initLibrary                func()
	destroyLibrary             func()
	getLastError               func() uint64
	loadMemDocument            func([]byte, int32, []byte) ffi.Document
	loadDocument               func([]byte, []byte) ffi.Document
	loadCustomDocument         func(*ffi.FileAccess, []byte) ffi.Document
	closeDocument              func(ffi.Document)
	getPageCount               func(ffi.Document) int32
	getFileVersion             func(ffi.Document, *int32) ffi.Bool
	getDocPermissions          func(ffi.Document) uint64
	getSecurityHandlerRevision func(ffi.Document) int32
	getFileIdentifier          func(ffi.Document, ffi.FileIDType, []byte, uint64) uint64
	getMetaText                func(ffi.Document, []byte, []byte, uint64) uint64
	getPageLabel               func(ffi.Document, int32, []byte, uint64) uint64
	getFormType                func(ffi.Document) ffi.FormType
	docGetPageMode             func(ffi.Document) ffi.PageMode
	catalogIsTagged            func(ffi.Document) ffi.Bool
	saveAsCopy                 func(ffi.Document, *ffi.FileWrite, uint64) ffi.Bool
	saveWithVersion            func(ffi.Document, *ffi.FileWrite, uint64, int32) ffi.Bool

	loadPage            func(ffi.Document, int32) ffi.Page
	closePage           func(ffi.Page)
	getPageWidthF       func(ffi.Page) float32
	getPageHeightF      func(ffi.Page) float32
	getPageSizeByIndexF func(ffi.Document, int32, *ffi.SizeF) ffi.Bool
	getPageBoundingBox  func(ffi.Page, *ffi.RectF) ffi.Bool
	pageGetRotation     func(ffi.Page) int32
	pageSetRotation     func(ffi.Page, int32)
	pageGetMediaBox     func(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool
	pageSetMediaBox     func(ffi.Page, float32, float32, float32, float32)
	pageGetCropBox      func(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool
	pageSetCropBox      func(ffi.Page, float32, float32, float32, float32)
	pageGetBleedBox     func(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool
	pageSetBleedBox     func(ffi.Page, float32, float32, float32, float32)
	pageGetTrimBox      func(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool
	pageSetTrimBox      func(ffi.Page, float32, float32, float32, float32)
	pageGetArtBox       func(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool
	pageSetArtBox       func(ffi.Page, float32, float32, float32, float32)
	pageHasTransparency func(ffi.Page) ffi.Bool
	deviceToPage        func(ffi.Page, int32, int32, int32, int32, int32, int32, int32, *float64, *float64) ffi.Bool
	pageToDevice        func(ffi.Page, int32, int32, int32, int32, int32, float64, float64, *int32, *int32) ffi.Bool

	renderPageBitmap           func(ffi.Bitmap, ffi.Page, int32, int32, int32, int32, int32, ffi.RenderFlags)
	renderPageBitmapWithMatrix func(ffi.Bitmap, ffi.Page, *ffi.Matrix, *ffi.RectF, ffi.RenderFlags)
	bitmapCreateEx             func(int32, int32, ffi.BitmapFormat, []byte, int32) ffi.Bitmap
	bitmapDestroy              func(ffi.Bitmap)
	bitmapFillRect             func(ffi.Bitmap, int32, int32, int32, int32, uint64)
	bitmapGetBuffer            func(ffi.Bitmap) uintptr
	bitmapGetFormat            func(ffi.Bitmap) ffi.BitmapFormat
	bitmapGetWidth             func(ffi.Bitmap) int32
	bitmapGetHeight            func(ffi.Bitmap) int32
	bitmapGetStride            func(ffi.Bitmap) int32

	textLoadPage          func(ffi.Page) ffi.TextPage
	textClosePage         func(ffi.TextPage)
	textCountChars        func(ffi.TextPage) int32
	textGetText           func(ffi.TextPage, int32, int32, []byte) int32
	textGetUnicode        func(ffi.TextPage, int32) uint32
	textGetFontSize       func(ffi.TextPage, int32) float64
	textGetFontWeight     func(ffi.TextPage, int32) int32
	textGetFontInfo       func(ffi.TextPage, int32, []byte, uint64, *int32) uint64
	textGetCharBox        func(ffi.TextPage, int32, *float64, *float64, *float64, *float64) ffi.Bool
	textGetLooseCharBox   func(ffi.TextPage, int32, *ffi.RectF) ffi.Bool
	textGetCharOrigin     func(ffi.TextPage, int32, *float64, *float64) ffi.Bool
	textGetCharAngle      func(ffi.TextPage, int32) float32
	textCountRects        func(ffi.TextPage, int32, int32) int32
	textGetRect           func(ffi.TextPage, int32, *float64, *float64, *float64, *float64) ffi.Bool
	textGetBoundedText    func(ffi.TextPage, float64, float64, float64, float64, []byte, int32) int32
	textGetCharIndexAtPos func(ffi.TextPage, float64, float64, float64, float64) int32
	textFindStart         func(ffi.TextPage, []byte, uint64, int32) ffi.SearchHandle
	textFindNext          func(ffi.SearchHandle) ffi.Bool
	textFindPrev          func(ffi.SearchHandle) ffi.Bool
	textGetSchResultIndex func(ffi.SearchHandle) int32
	textGetSchCount       func(ffi.SearchHandle) int32
	textFindClose         func(ffi.SearchHandle)
	linkLoadWebLinks      func(ffi.TextPage) ffi.PageLink
	linkCloseWebLinks     func(ffi.PageLink)
	linkCountWebLinks     func(ffi.PageLink) int32
	linkGetURL            func(ffi.PageLink, int32, []byte, int32) int32
	linkCountRects        func(ffi.PageLink, int32) int32
	linkGetRect           func(ffi.PageLink, int32, int32, *float64, *float64, *float64, *float64) ffi.Bool
}

func (a *api) resolve() error {
	bind := func(fptr any, name string) error {
		addr, err := lookupSymbol(name)
		if err != nil {
			return fmt.Errorf("native: resolve %s: %w", name, err)
		}
		purego.RegisterFunc(fptr, addr)
		return nil
	}

	for _, s := range []struct {
		fptr any
		name string
	}{
		{&a.initLibrary, "FPDF_InitLibrary"},
		{&a.destroyLibrary, "FPDF_DestroyLibrary"},
		{&a.getLastError, "FPDF_GetLastError"},
		{&a.loadMemDocument, "FPDF_LoadMemDocument"},
		{&a.loadDocument, "FPDF_LoadDocument"},
		{&a.loadCustomDocument, "FPDF_LoadCustomDocument"},
		{&a.closeDocument, "FPDF_CloseDocument"},
		{&a.getPageCount, "FPDF_GetPageCount"},
		{&a.getFileVersion, "FPDF_GetFileVersion"},
		{&a.getDocPermissions, "FPDF_GetDocPermissions"},
		{&a.getSecurityHandlerRevision, "FPDF_GetSecurityHandlerRevision"},
		{&a.getFileIdentifier, "FPDF_GetFileIdentifier"},
		{&a.getMetaText, "FPDF_GetMetaText"},
		{&a.getPageLabel, "FPDF_GetPageLabel"},
		{&a.getFormType, "FPDF_GetFormType"},
		{&a.docGetPageMode, "FPDFDoc_GetPageMode"},
		{&a.catalogIsTagged, "FPDFCatalog_IsTagged"},
		{&a.saveAsCopy, "FPDF_SaveAsCopy"},
		{&a.saveWithVersion, "FPDF_SaveWithVersion"},
		{&a.loadPage, "FPDF_LoadPage"},
		{&a.closePage, "FPDF_ClosePage"},
		{&a.getPageWidthF, "FPDF_GetPageWidthF"},
		{&a.getPageHeightF, "FPDF_GetPageHeightF"},
		{&a.getPageSizeByIndexF, "FPDF_GetPageSizeByIndexF"},
		{&a.getPageBoundingBox, "FPDF_GetPageBoundingBox"},
		{&a.pageGetRotation, "FPDFPage_GetRotation"},
		{&a.pageSetRotation, "FPDFPage_SetRotation"},
		{&a.pageGetMediaBox, "FPDFPage_GetMediaBox"},
		{&a.pageSetMediaBox, "FPDFPage_SetMediaBox"},
		{&a.pageGetCropBox, "FPDFPage_GetCropBox"},
		{&a.pageSetCropBox, "FPDFPage_SetCropBox"},
		{&a.pageGetBleedBox, "FPDFPage_GetBleedBox"},
		{&a.pageSetBleedBox, "FPDFPage_SetBleedBox"},
		{&a.pageGetTrimBox, "FPDFPage_GetTrimBox"},
		{&a.pageSetTrimBox, "FPDFPage_SetTrimBox"},
		{&a.pageGetArtBox, "FPDFPage_GetArtBox"},
		{&a.pageSetArtBox, "FPDFPage_SetArtBox"},
		{&a.pageHasTransparency, "FPDFPage_HasTransparency"},
		{&a.deviceToPage, "FPDF_DeviceToPage"},
		{&a.pageToDevice, "FPDF_PageToDevice"},
		{&a.renderPageBitmap, "FPDF_RenderPageBitmap"},
		{&a.renderPageBitmapWithMatrix, "FPDF_RenderPageBitmapWithMatrix"},
		{&a.bitmapCreateEx, "FPDFBitmap_CreateEx"},
		{&a.bitmapDestroy, "FPDFBitmap_Destroy"},
		{&a.bitmapFillRect, "FPDFBitmap_FillRect"},
		{&a.bitmapGetBuffer, "FPDFBitmap_GetBuffer"},
		{&a.bitmapGetFormat, "FPDFBitmap_GetFormat"},
		{&a.bitmapGetWidth, "FPDFBitmap_GetWidth"},
		{&a.bitmapGetHeight, "FPDFBitmap_GetHeight"},
		{&a.bitmapGetStride, "FPDFBitmap_GetStride"},
		{&a.textLoadPage, "FPDFText_LoadPage"},
		{&a.textClosePage, "FPDFText_ClosePage"},
		{&a.textCountChars, "FPDFText_CountChars"},
		{&a.textGetText, "FPDFText_GetText"},
		{&a.textGetUnicode, "FPDFText_GetUnicode"},
		{&a.textGetFontSize, "FPDFText_GetFontSize"},
		{&a.textGetFontWeight, "FPDFText_GetFontWeight"},
		{&a.textGetFontInfo, "FPDFText_GetFontInfo"},
		{&a.textGetCharBox, "FPDFText_GetCharBox"},
		{&a.textGetLooseCharBox, "FPDFText_GetLooseCharBox"},
		{&a.textGetCharOrigin, "FPDFText_GetCharOrigin"},
		{&a.textGetCharAngle, "FPDFText_GetCharAngle"},
		{&a.textCountRects, "FPDFText_CountRects"},
		{&a.textGetRect, "FPDFText_GetRect"},
		{&a.textGetBoundedText, "FPDFText_GetBoundedText"},
		{&a.textGetCharIndexAtPos, "FPDFText_GetCharIndexAtPos"},
		{&a.textFindStart, "FPDFText_FindStart"},
		{&a.textFindNext, "FPDFText_FindNext"},
		{&a.textFindPrev, "FPDFText_FindPrev"},
		{&a.textGetSchResultIndex, "FPDFText_GetSchResultIndex"},
		{&a.textGetSchCount, "FPDFText_GetSchCount"},
		{&a.textFindClose, "FPDFText_FindClose"},
		{&a.linkLoadWebLinks, "FPDFLink_LoadWebLinks"},
		{&a.linkCloseWebLinks, "FPDFLink_CloseWebLinks"},
		{&a.linkCountWebLinks, "FPDFLink_CountWebLinks"},
		{&a.linkGetURL, "FPDFLink_GetURL"},
		{&a.linkCountRects, "FPDFLink_CountRects"},
		{&a.linkGetRect, "FPDFLink_GetRect"},
	} {
		if err := bind(s.fptr, s.name); err != nil {
			return err
		}
	}
	return nil
}
