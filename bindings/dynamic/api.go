package dynamic

import (
	"unsafe"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// api holds one resolved function pointer per native entry point. Signatures
// mirror the C declarations under the LP64 model; buffers are passed as byte
// slices (purego forwards the data pointer, nil for a nil slice) and
// struct-element slices as raw pointers.
type api struct {
	// fpdfview.h
	initLibrary                func()
	destroyLibrary             func()
	getLastError               func() uint64
	loadMemDocument            func(data []byte, size int32, password []byte) ffi.Document
	loadDocument               func(path, password []byte) ffi.Document
	loadCustomDocument         func(access *ffi.FileAccess, password []byte) ffi.Document
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

	saveAsCopy      func(ffi.Document, *ffi.FileWrite, uint64) ffi.Bool
	saveWithVersion func(ffi.Document, *ffi.FileWrite, uint64, int32) ffi.Bool

	// fpdf_text.h
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
	linkCountRectsWeb     func(ffi.PageLink, int32) int32
	linkGetRectWeb        func(ffi.PageLink, int32, int32, *float64, *float64, *float64, *float64) ffi.Bool

	// fpdf_edit.h, fpdf_ppo.h, fpdf_flatten.h
	createNewDocument   func() ffi.Document
	pageNew             func(ffi.Document, int32, float64, float64) ffi.Page
	pageDelete          func(ffi.Document, int32)
	importPages         func(ffi.Document, ffi.Document, []byte, int32) ffi.Bool
	importPagesByIndex  func(ffi.Document, ffi.Document, []int32, uint64, int32) ffi.Bool
	importNPagesToOne   func(ffi.Document, float32, float32, uint64, uint64) ffi.Document
	pageGenerateContent func(ffi.Page) ffi.Bool
	pageFlatten         func(ffi.Page, int32) int32

	pageCountObjects       func(ffi.Page) int32
	pageGetObject          func(ffi.Page, int32) ffi.PageObject
	pageInsertObject       func(ffi.Page, ffi.PageObject)
	pageRemoveObject       func(ffi.Page, ffi.PageObject) ffi.Bool
	pageObjDestroy         func(ffi.PageObject)
	pageObjGetType         func(ffi.PageObject) ffi.ObjectType
	pageObjGetBounds       func(ffi.PageObject, *float32, *float32, *float32, *float32) ffi.Bool
	pageObjGetMatrix       func(ffi.PageObject, *ffi.Matrix) ffi.Bool
	pageObjSetMatrix       func(ffi.PageObject, *ffi.Matrix) ffi.Bool
	pageObjTransform       func(ffi.PageObject, float64, float64, float64, float64, float64, float64)
	pageObjGetFillColor    func(ffi.PageObject, *uint32, *uint32, *uint32, *uint32) ffi.Bool
	pageObjSetFillColor    func(ffi.PageObject, uint32, uint32, uint32, uint32) ffi.Bool
	pageObjGetStrokeColor  func(ffi.PageObject, *uint32, *uint32, *uint32, *uint32) ffi.Bool
	pageObjSetStrokeColor  func(ffi.PageObject, uint32, uint32, uint32, uint32) ffi.Bool
	pageObjGetStrokeWidth  func(ffi.PageObject, *float32) ffi.Bool
	pageObjSetStrokeWidth  func(ffi.PageObject, float32) ffi.Bool
	pageObjGetLineJoin     func(ffi.PageObject) ffi.LineJoin
	pageObjSetLineJoin     func(ffi.PageObject, ffi.LineJoin) ffi.Bool
	pageObjGetLineCap      func(ffi.PageObject) ffi.LineCap
	pageObjSetLineCap      func(ffi.PageObject, ffi.LineCap) ffi.Bool
	pageObjSetBlendMode    func(ffi.PageObject, []byte)
	pageObjHasTransparency func(ffi.PageObject) ffi.Bool
	pageObjGetDashCount    func(ffi.PageObject) int32
	pageObjGetDashArray    func(ffi.PageObject, []float32, uint64) ffi.Bool
	pageObjSetDashArray    func(ffi.PageObject, []float32, uint64, float32) ffi.Bool
	pageObjGetDashPhase    func(ffi.PageObject, *float32) ffi.Bool
	pageObjSetDashPhase    func(ffi.PageObject, float32) ffi.Bool
	pageObjCreateNewPath   func(float32, float32) ffi.PageObject
	pageObjCreateNewRect   func(float32, float32, float32, float32) ffi.PageObject
	pageObjNewTextObj      func(ffi.Document, []byte, float32) ffi.PageObject
	pageObjNewImageObj     func(ffi.Document) ffi.PageObject
	formObjCountObjects    func(ffi.PageObject) int32
	formObjGetObject       func(ffi.PageObject, int32) ffi.PageObject

	pathMoveTo         func(ffi.PageObject, float32, float32) ffi.Bool
	pathLineTo         func(ffi.PageObject, float32, float32) ffi.Bool
	pathBezierTo       func(ffi.PageObject, float32, float32, float32, float32, float32, float32) ffi.Bool
	pathClose          func(ffi.PageObject) ffi.Bool
	pathSetDrawMode    func(ffi.PageObject, ffi.PathFillMode, ffi.Bool) ffi.Bool
	pathGetDrawMode    func(ffi.PageObject, *ffi.PathFillMode, *ffi.Bool) ffi.Bool
	pathCountSegments  func(ffi.PageObject) int32
	pathGetPathSegment func(ffi.PageObject, int32) ffi.PathSegment
	segGetPoint        func(ffi.PathSegment, *float32, *float32) ffi.Bool
	segGetType         func(ffi.PathSegment) ffi.PathSegmentType
	segGetClose        func(ffi.PathSegment) ffi.Bool

	textObjGetFont           func(ffi.PageObject) ffi.Font
	textObjGetFontSize       func(ffi.PageObject, *float32) ffi.Bool
	textObjGetText           func(ffi.PageObject, ffi.TextPage, []byte, uint64) uint64
	textObjGetTextRenderMode func(ffi.PageObject) ffi.TextRenderMode
	textObjSetTextRenderMode func(ffi.PageObject, ffi.TextRenderMode) ffi.Bool
	textSetText              func(ffi.PageObject, []byte) ffi.Bool
	textLoadFont             func(ffi.Document, []byte, uint32, int32, ffi.Bool) ffi.Font
	textLoadStandardFont     func(ffi.Document, []byte) ffi.Font

	fontClose                    func(ffi.Font)
	fontGetBaseFontName          func(ffi.Font, []byte, uint64) uint64
	fontGetFamilyName            func(ffi.Font, []byte, uint64) uint64
	fontGetFontData              func(ffi.Font, []byte, uint64, *uint64) ffi.Bool
	fontGetFlags                 func(ffi.Font) int32
	fontGetWeight                func(ffi.Font) int32
	fontGetItalicAngle           func(ffi.Font, *int32) ffi.Bool
	fontGetAscent                func(ffi.Font, float32, *float32) ffi.Bool
	fontGetDescent               func(ffi.Font, float32, *float32) ffi.Bool
	fontGetGlyphWidth            func(ffi.Font, uint32, float32, *float32) ffi.Bool
	fontGetIsEmbedded            func(ffi.Font) int32
	fontGetGlyphPath             func(ffi.Font, uint32, float32) ffi.GlyphPath
	glyphPathCountGlyphSegments  func(ffi.GlyphPath) int32
	glyphPathGetGlyphPathSegment func(ffi.GlyphPath, int32) ffi.PathSegment

	imageGetBitmap           func(ffi.PageObject) ffi.Bitmap
	imageGetRenderedBitmap   func(ffi.Document, ffi.Page, ffi.PageObject) ffi.Bitmap
	imageGetImageDataDecoded func(ffi.PageObject, []byte, uint64) uint64
	imageGetImageDataRaw     func(ffi.PageObject, []byte, uint64) uint64
	imageGetImageFilterCount func(ffi.PageObject) int32
	imageGetImageFilter      func(ffi.PageObject, int32, []byte, uint64) uint64
	imageGetImageMetadata    func(ffi.PageObject, ffi.Page, *ffi.ImageMetadata) ffi.Bool
	imageSetBitmap           func(*ffi.Page, int32, ffi.PageObject, ffi.Bitmap) ffi.Bool
	imageSetMatrix           func(ffi.PageObject, float64, float64, float64, float64, float64, float64) ffi.Bool
	imageLoadJpegFile        func(*ffi.Page, int32, ffi.PageObject, *ffi.FileAccess) ffi.Bool
	imageLoadJpegFileInline  func(*ffi.Page, int32, ffi.PageObject, *ffi.FileAccess) ffi.Bool

	// fpdf_annot.h
	pageGetAnnotCount           func(ffi.Page) int32
	pageGetAnnot                func(ffi.Page, int32) ffi.Annotation
	pageGetAnnotIndex           func(ffi.Page, ffi.Annotation) int32
	pageCreateAnnot             func(ffi.Page, ffi.AnnotationSubtype) ffi.Annotation
	pageRemoveAnnot             func(ffi.Page, int32) ffi.Bool
	pageCloseAnnot              func(ffi.Annotation)
	annotGetSubtype             func(ffi.Annotation) ffi.AnnotationSubtype
	annotIsSupportedSubtype     func(ffi.AnnotationSubtype) ffi.Bool
	annotGetRect                func(ffi.Annotation, *ffi.RectF) ffi.Bool
	annotSetRect                func(ffi.Annotation, *ffi.RectF) ffi.Bool
	annotGetColor               func(ffi.Annotation, ffi.ColorType, *uint32, *uint32, *uint32, *uint32) ffi.Bool
	annotSetColor               func(ffi.Annotation, ffi.ColorType, uint32, uint32, uint32, uint32) ffi.Bool
	annotGetFlags               func(ffi.Annotation) ffi.AnnotationFlags
	annotSetFlags               func(ffi.Annotation, ffi.AnnotationFlags) ffi.Bool
	annotGetStringValue         func(ffi.Annotation, []byte, []byte, uint64) uint64
	annotSetStringValue         func(ffi.Annotation, []byte, []byte) ffi.Bool
	annotGetNumberValue         func(ffi.Annotation, []byte, *float32) ffi.Bool
	annotHasKey                 func(ffi.Annotation, []byte) ffi.Bool
	annotGetValueType           func(ffi.Annotation, []byte) ffi.ObjectValueType
	annotGetAP                  func(ffi.Annotation, ffi.AppearanceMode, []byte, uint64) uint64
	annotSetAP                  func(ffi.Annotation, ffi.AppearanceMode, []byte) ffi.Bool
	annotCountAttachmentPoints  func(ffi.Annotation) uint64
	annotHasAttachmentPoints    func(ffi.Annotation) ffi.Bool
	annotGetAttachmentPoints    func(ffi.Annotation, uint64, *ffi.QuadPointsF) ffi.Bool
	annotSetAttachmentPoints    func(ffi.Annotation, uint64, *ffi.QuadPointsF) ffi.Bool
	annotAppendAttachmentPoints func(ffi.Annotation, *ffi.QuadPointsF) ffi.Bool
	annotGetObjectCount         func(ffi.Annotation) int32
	annotGetObject              func(ffi.Annotation, int32) ffi.PageObject
	annotAppendObject           func(ffi.Annotation, ffi.PageObject) ffi.Bool
	annotUpdateObject           func(ffi.Annotation, ffi.PageObject) ffi.Bool
	annotRemoveObject           func(ffi.Annotation, int32) ffi.Bool
	annotGetInkListCount        func(ffi.Annotation) uint64
	annotGetInkListPath         func(ffi.Annotation, uint64, unsafe.Pointer, uint64) uint64
	annotAddInkStroke           func(ffi.Annotation, unsafe.Pointer, uint64) int32
	annotRemoveInkList          func(ffi.Annotation) ffi.Bool
	annotGetVertices            func(ffi.Annotation, unsafe.Pointer, uint64) uint64
	annotGetLine                func(ffi.Annotation, *ffi.PointF, *ffi.PointF) ffi.Bool
	annotGetBorder              func(ffi.Annotation, *float32, *float32, *float32) ffi.Bool
	annotSetBorder              func(ffi.Annotation, float32, float32, float32) ffi.Bool
	annotGetLink                func(ffi.Annotation) ffi.Link
	annotSetURI                 func(ffi.Annotation, []byte) ffi.Bool

	// fpdf_doc.h
	linkGetLinkAtPoint       func(ffi.Page, float64, float64) ffi.Link
	linkGetLinkZOrderAtPoint func(ffi.Page, float64, float64) int32
	linkGetDest              func(ffi.Document, ffi.Link) ffi.Dest
	linkGetAction            func(ffi.Link) ffi.Action
	linkGetAnnot             func(ffi.Page, ffi.Link) ffi.Annotation
	linkGetAnnotRect         func(ffi.Link, *ffi.RectF) ffi.Bool
	linkCountQuadPoints      func(ffi.Link) int32
	linkGetQuadPoints        func(ffi.Link, int32, *ffi.QuadPointsF) ffi.Bool
	linkEnumerate            func(ffi.Page, *int32, *ffi.Link) ffi.Bool
	actionGetType            func(ffi.Action) ffi.ActionType
	actionGetDest            func(ffi.Document, ffi.Action) ffi.Dest
	actionGetFilePath        func(ffi.Action, []byte, uint64) uint64
	actionGetURIPath         func(ffi.Document, ffi.Action, []byte, uint64) uint64
	destGetDestPageIndex     func(ffi.Document, ffi.Dest) int32
	destGetLocationInPage    func(ffi.Dest, *ffi.Bool, *ffi.Bool, *ffi.Bool, *float32, *float32, *float32) ffi.Bool
	destGetView              func(ffi.Dest, *uint64, []float32) uint64

	bookmarkGetFirstChild  func(ffi.Document, ffi.Bookmark) ffi.Bookmark
	bookmarkGetNextSibling func(ffi.Document, ffi.Bookmark) ffi.Bookmark
	bookmarkGetTitle       func(ffi.Bookmark, []byte, uint64) uint64
	bookmarkGetCount       func(ffi.Bookmark) int32
	bookmarkFind           func(ffi.Document, []byte) ffi.Bookmark
	bookmarkGetAction      func(ffi.Bookmark) ffi.Action
	bookmarkGetDest        func(ffi.Document, ffi.Bookmark) ffi.Dest

	// fpdf_attachment.h
	docGetAttachmentCount    func(ffi.Document) int32
	docGetAttachment         func(ffi.Document, int32) ffi.Attachment
	docAddAttachment         func(ffi.Document, []byte) ffi.Attachment
	docDeleteAttachment      func(ffi.Document, int32) ffi.Bool
	attachmentGetName        func(ffi.Attachment, []byte, uint64) uint64
	attachmentGetFile        func(ffi.Attachment, []byte, uint64, *uint64) ffi.Bool
	attachmentSetFile        func(ffi.Attachment, ffi.Document, []byte, uint64) ffi.Bool
	attachmentGetStringValue func(ffi.Attachment, []byte, []byte, uint64) uint64
	attachmentSetStringValue func(ffi.Attachment, []byte, []byte) ffi.Bool
	attachmentHasKey         func(ffi.Attachment, []byte) ffi.Bool
	attachmentGetValueType   func(ffi.Attachment, []byte) ffi.ObjectValueType

	// fpdf_signature.h
	getSignatureCount            func(ffi.Document) int32
	getSignatureObject           func(ffi.Document, int32) ffi.Signature
	signatureGetContents         func(ffi.Signature, []byte, uint64) uint64
	signatureGetByteRange        func(ffi.Signature, []int32, uint64) uint64
	signatureGetSubFilter        func(ffi.Signature, []byte, uint64) uint64
	signatureGetReason           func(ffi.Signature, []byte, uint64) uint64
	signatureGetTime             func(ffi.Signature, []byte, uint64) uint64
	signatureGetDocMDPPermission func(ffi.Signature) uint32

	// fpdf_formfill.h, resolved only with Config.Forms
	docInitFormFillEnvironment func(ffi.Document, unsafe.Pointer) ffi.FormHandle
	docExitFormFillEnvironment func(ffi.FormHandle)
	fflDraw                    func(ffi.FormHandle, ffi.Bitmap, ffi.Page, int32, int32, int32, int32, int32, ffi.RenderFlags)
	setFormFieldHighlightColor func(ffi.FormHandle, int32, uint64)
	setFormFieldHighlightAlpha func(ffi.FormHandle, uint8)
	annotGetFormFieldType      func(ffi.FormHandle, ffi.Annotation) ffi.FormFieldType
	annotGetFormFieldName      func(ffi.FormHandle, ffi.Annotation, []byte, uint64) uint64
	annotGetFormFieldValue     func(ffi.FormHandle, ffi.Annotation, []byte, uint64) uint64
	annotGetFormFieldFlags     func(ffi.FormHandle, ffi.Annotation) int32
	annotIsChecked             func(ffi.FormHandle, ffi.Annotation) ffi.Bool
}

func (a *api) resolve(lib uintptr, cfg bindings.Config) error {
	r := registrar{lib: lib}

	r.register(&a.initLibrary, "FPDF_InitLibrary")
	r.register(&a.destroyLibrary, "FPDF_DestroyLibrary")
	r.register(&a.getLastError, "FPDF_GetLastError")
	r.register(&a.loadMemDocument, "FPDF_LoadMemDocument")
	r.register(&a.loadDocument, "FPDF_LoadDocument")
	r.register(&a.loadCustomDocument, "FPDF_LoadCustomDocument")
	r.register(&a.closeDocument, "FPDF_CloseDocument")
	r.register(&a.getPageCount, "FPDF_GetPageCount")
	r.register(&a.getFileVersion, "FPDF_GetFileVersion")
	r.register(&a.getDocPermissions, "FPDF_GetDocPermissions")
	r.register(&a.getSecurityHandlerRevision, "FPDF_GetSecurityHandlerRevision")
	r.register(&a.getFileIdentifier, "FPDF_GetFileIdentifier")
	r.register(&a.getMetaText, "FPDF_GetMetaText")
	r.register(&a.getPageLabel, "FPDF_GetPageLabel")
	r.register(&a.getFormType, "FPDF_GetFormType")
	r.register(&a.docGetPageMode, "FPDFDoc_GetPageMode")
	r.register(&a.catalogIsTagged, "FPDFCatalog_IsTagged")

	r.register(&a.loadPage, "FPDF_LoadPage")
	r.register(&a.closePage, "FPDF_ClosePage")
	r.register(&a.getPageWidthF, "FPDF_GetPageWidthF")
	r.register(&a.getPageHeightF, "FPDF_GetPageHeightF")
	r.register(&a.getPageSizeByIndexF, "FPDF_GetPageSizeByIndexF")
	r.register(&a.getPageBoundingBox, "FPDF_GetPageBoundingBox")
	r.register(&a.pageGetRotation, "FPDFPage_GetRotation")
	r.register(&a.pageSetRotation, "FPDFPage_SetRotation")
	r.register(&a.pageGetMediaBox, "FPDFPage_GetMediaBox")
	r.register(&a.pageSetMediaBox, "FPDFPage_SetMediaBox")
	r.register(&a.pageGetCropBox, "FPDFPage_GetCropBox")
	r.register(&a.pageSetCropBox, "FPDFPage_SetCropBox")
	r.register(&a.pageGetBleedBox, "FPDFPage_GetBleedBox")
	r.register(&a.pageSetBleedBox, "FPDFPage_SetBleedBox")
	r.register(&a.pageGetTrimBox, "FPDFPage_GetTrimBox")
	r.register(&a.pageSetTrimBox, "FPDFPage_SetTrimBox")
	r.register(&a.pageGetArtBox, "FPDFPage_GetArtBox")
	r.register(&a.pageSetArtBox, "FPDFPage_SetArtBox")
	r.register(&a.pageHasTransparency, "FPDFPage_HasTransparency")
	r.register(&a.deviceToPage, "FPDF_DeviceToPage")
	r.register(&a.pageToDevice, "FPDF_PageToDevice")

	r.register(&a.renderPageBitmap, "FPDF_RenderPageBitmap")
	r.register(&a.renderPageBitmapWithMatrix, "FPDF_RenderPageBitmapWithMatrix")
	r.register(&a.bitmapCreateEx, "FPDFBitmap_CreateEx")
	r.register(&a.bitmapDestroy, "FPDFBitmap_Destroy")
	r.register(&a.bitmapFillRect, "FPDFBitmap_FillRect")
	r.register(&a.bitmapGetBuffer, "FPDFBitmap_GetBuffer")
	r.register(&a.bitmapGetFormat, "FPDFBitmap_GetFormat")
	r.register(&a.bitmapGetWidth, "FPDFBitmap_GetWidth")
	r.register(&a.bitmapGetHeight, "FPDFBitmap_GetHeight")
	r.register(&a.bitmapGetStride, "FPDFBitmap_GetStride")

	r.register(&a.saveAsCopy, "FPDF_SaveAsCopy")
	r.register(&a.saveWithVersion, "FPDF_SaveWithVersion")

	r.register(&a.textLoadPage, "FPDFText_LoadPage")
	r.register(&a.textClosePage, "FPDFText_ClosePage")
	r.register(&a.textCountChars, "FPDFText_CountChars")
	r.register(&a.textGetText, "FPDFText_GetText")
	r.register(&a.textGetUnicode, "FPDFText_GetUnicode")
	r.register(&a.textGetFontSize, "FPDFText_GetFontSize")
	r.register(&a.textGetFontWeight, "FPDFText_GetFontWeight")
	r.register(&a.textGetFontInfo, "FPDFText_GetFontInfo")
	r.register(&a.textGetCharBox, "FPDFText_GetCharBox")
	r.register(&a.textGetLooseCharBox, "FPDFText_GetLooseCharBox")
	r.register(&a.textGetCharOrigin, "FPDFText_GetCharOrigin")
	r.register(&a.textGetCharAngle, "FPDFText_GetCharAngle")
	r.register(&a.textCountRects, "FPDFText_CountRects")
	r.register(&a.textGetRect, "FPDFText_GetRect")
	r.register(&a.textGetBoundedText, "FPDFText_GetBoundedText")
	r.register(&a.textGetCharIndexAtPos, "FPDFText_GetCharIndexAtPos")
	r.register(&a.textFindStart, "FPDFText_FindStart")
	r.register(&a.textFindNext, "FPDFText_FindNext")
	r.register(&a.textFindPrev, "FPDFText_FindPrev")
	r.register(&a.textGetSchResultIndex, "FPDFText_GetSchResultIndex")
	r.register(&a.textGetSchCount, "FPDFText_GetSchCount")
	r.register(&a.textFindClose, "FPDFText_FindClose")
	r.register(&a.linkLoadWebLinks, "FPDFLink_LoadWebLinks")
	r.register(&a.linkCloseWebLinks, "FPDFLink_CloseWebLinks")
	r.register(&a.linkCountWebLinks, "FPDFLink_CountWebLinks")
	r.register(&a.linkGetURL, "FPDFLink_GetURL")
	r.register(&a.linkCountRectsWeb, "FPDFLink_CountRects")
	r.register(&a.linkGetRectWeb, "FPDFLink_GetRect")

	r.register(&a.createNewDocument, "FPDF_CreateNewDocument")
	r.register(&a.pageNew, "FPDFPage_New")
	r.register(&a.pageDelete, "FPDFPage_Delete")
	r.register(&a.importPages, "FPDF_ImportPages")
	r.register(&a.importPagesByIndex, "FPDF_ImportPagesByIndex")
	r.register(&a.importNPagesToOne, "FPDF_ImportNPagesToOne")
	r.register(&a.pageGenerateContent, "FPDFPage_GenerateContent")
	r.register(&a.pageFlatten, "FPDFPage_Flatten")

	r.register(&a.pageCountObjects, "FPDFPage_CountObjects")
	r.register(&a.pageGetObject, "FPDFPage_GetObject")
	r.register(&a.pageInsertObject, "FPDFPage_InsertObject")
	r.register(&a.pageRemoveObject, "FPDFPage_RemoveObject")
	r.register(&a.pageObjDestroy, "FPDFPageObj_Destroy")
	r.register(&a.pageObjGetType, "FPDFPageObj_GetType")
	r.register(&a.pageObjGetBounds, "FPDFPageObj_GetBounds")
	r.register(&a.pageObjGetMatrix, "FPDFPageObj_GetMatrix")
	r.register(&a.pageObjSetMatrix, "FPDFPageObj_SetMatrix")
	r.register(&a.pageObjTransform, "FPDFPageObj_Transform")
	r.register(&a.pageObjGetFillColor, "FPDFPageObj_GetFillColor")
	r.register(&a.pageObjSetFillColor, "FPDFPageObj_SetFillColor")
	r.register(&a.pageObjGetStrokeColor, "FPDFPageObj_GetStrokeColor")
	r.register(&a.pageObjSetStrokeColor, "FPDFPageObj_SetStrokeColor")
	r.register(&a.pageObjGetStrokeWidth, "FPDFPageObj_GetStrokeWidth")
	r.register(&a.pageObjSetStrokeWidth, "FPDFPageObj_SetStrokeWidth")
	r.register(&a.pageObjGetLineJoin, "FPDFPageObj_GetLineJoin")
	r.register(&a.pageObjSetLineJoin, "FPDFPageObj_SetLineJoin")
	r.register(&a.pageObjGetLineCap, "FPDFPageObj_GetLineCap")
	r.register(&a.pageObjSetLineCap, "FPDFPageObj_SetLineCap")
	r.register(&a.pageObjSetBlendMode, "FPDFPageObj_SetBlendMode")
	r.register(&a.pageObjHasTransparency, "FPDFPageObj_HasTransparency")
	r.register(&a.pageObjGetDashCount, "FPDFPageObj_GetDashCount")
	r.register(&a.pageObjGetDashArray, "FPDFPageObj_GetDashArray")
	r.register(&a.pageObjSetDashArray, "FPDFPageObj_SetDashArray")
	r.register(&a.pageObjGetDashPhase, "FPDFPageObj_GetDashPhase")
	r.register(&a.pageObjSetDashPhase, "FPDFPageObj_SetDashPhase")
	r.register(&a.pageObjCreateNewPath, "FPDFPageObj_CreateNewPath")
	r.register(&a.pageObjCreateNewRect, "FPDFPageObj_CreateNewRect")
	r.register(&a.pageObjNewTextObj, "FPDFPageObj_NewTextObj")
	r.register(&a.pageObjNewImageObj, "FPDFPageObj_NewImageObj")
	r.register(&a.formObjCountObjects, "FPDFFormObj_CountObjects")
	r.register(&a.formObjGetObject, "FPDFFormObj_GetObject")

	r.register(&a.pathMoveTo, "FPDFPath_MoveTo")
	r.register(&a.pathLineTo, "FPDFPath_LineTo")
	r.register(&a.pathBezierTo, "FPDFPath_BezierTo")
	r.register(&a.pathClose, "FPDFPath_Close")
	r.register(&a.pathSetDrawMode, "FPDFPath_SetDrawMode")
	r.register(&a.pathGetDrawMode, "FPDFPath_GetDrawMode")
	r.register(&a.pathCountSegments, "FPDFPath_CountSegments")
	r.register(&a.pathGetPathSegment, "FPDFPath_GetPathSegment")
	r.register(&a.segGetPoint, "FPDFPathSegment_GetPoint")
	r.register(&a.segGetType, "FPDFPathSegment_GetType")
	r.register(&a.segGetClose, "FPDFPathSegment_GetClose")

	r.register(&a.textObjGetFont, "FPDFTextObj_GetFont")
	r.register(&a.textObjGetFontSize, "FPDFTextObj_GetFontSize")
	r.register(&a.textObjGetText, "FPDFTextObj_GetText")
	r.register(&a.textObjGetTextRenderMode, "FPDFTextObj_GetTextRenderMode")
	r.register(&a.textObjSetTextRenderMode, "FPDFTextObj_SetTextRenderMode")
	r.register(&a.textSetText, "FPDFText_SetText")
	r.register(&a.textLoadFont, "FPDFText_LoadFont")
	r.register(&a.textLoadStandardFont, "FPDFText_LoadStandardFont")

	r.register(&a.fontClose, "FPDFFont_Close")
	r.register(&a.fontGetFlags, "FPDFFont_GetFlags")
	r.register(&a.fontGetWeight, "FPDFFont_GetWeight")
	r.register(&a.fontGetItalicAngle, "FPDFFont_GetItalicAngle")
	r.register(&a.fontGetAscent, "FPDFFont_GetAscent")
	r.register(&a.fontGetDescent, "FPDFFont_GetDescent")
	r.register(&a.fontGetGlyphWidth, "FPDFFont_GetGlyphWidth")
	r.register(&a.fontGetIsEmbedded, "FPDFFont_GetIsEmbedded")
	r.register(&a.fontGetGlyphPath, "FPDFFont_GetGlyphPath")
	r.register(&a.glyphPathCountGlyphSegments, "FPDFGlyphPath_CountGlyphSegments")
	r.register(&a.glyphPathGetGlyphPathSegment, "FPDFGlyphPath_GetGlyphPathSegment")

	r.register(&a.imageGetBitmap, "FPDFImageObj_GetBitmap")
	r.register(&a.imageGetRenderedBitmap, "FPDFImageObj_GetRenderedBitmap")
	r.register(&a.imageGetImageDataDecoded, "FPDFImageObj_GetImageDataDecoded")
	r.register(&a.imageGetImageDataRaw, "FPDFImageObj_GetImageDataRaw")
	r.register(&a.imageGetImageFilterCount, "FPDFImageObj_GetImageFilterCount")
	r.register(&a.imageGetImageFilter, "FPDFImageObj_GetImageFilter")
	r.register(&a.imageGetImageMetadata, "FPDFImageObj_GetImageMetadata")
	r.register(&a.imageSetBitmap, "FPDFImageObj_SetBitmap")
	r.register(&a.imageSetMatrix, "FPDFImageObj_SetMatrix")
	r.register(&a.imageLoadJpegFile, "FPDFImageObj_LoadJpegFile")
	r.register(&a.imageLoadJpegFileInline, "FPDFImageObj_LoadJpegFileInline")

	r.register(&a.pageGetAnnotCount, "FPDFPage_GetAnnotCount")
	r.register(&a.pageGetAnnot, "FPDFPage_GetAnnot")
	r.register(&a.pageGetAnnotIndex, "FPDFPage_GetAnnotIndex")
	r.register(&a.pageCreateAnnot, "FPDFPage_CreateAnnot")
	r.register(&a.pageRemoveAnnot, "FPDFPage_RemoveAnnot")
	r.register(&a.pageCloseAnnot, "FPDFPage_CloseAnnot")
	r.register(&a.annotGetSubtype, "FPDFAnnot_GetSubtype")
	r.register(&a.annotIsSupportedSubtype, "FPDFAnnot_IsSupportedSubtype")
	r.register(&a.annotGetRect, "FPDFAnnot_GetRect")
	r.register(&a.annotSetRect, "FPDFAnnot_SetRect")
	r.register(&a.annotGetColor, "FPDFAnnot_GetColor")
	r.register(&a.annotSetColor, "FPDFAnnot_SetColor")
	r.register(&a.annotGetFlags, "FPDFAnnot_GetFlags")
	r.register(&a.annotSetFlags, "FPDFAnnot_SetFlags")
	r.register(&a.annotGetStringValue, "FPDFAnnot_GetStringValue")
	r.register(&a.annotSetStringValue, "FPDFAnnot_SetStringValue")
	r.register(&a.annotGetNumberValue, "FPDFAnnot_GetNumberValue")
	r.register(&a.annotHasKey, "FPDFAnnot_HasKey")
	r.register(&a.annotGetValueType, "FPDFAnnot_GetValueType")
	r.register(&a.annotGetAP, "FPDFAnnot_GetAP")
	r.register(&a.annotSetAP, "FPDFAnnot_SetAP")
	r.register(&a.annotCountAttachmentPoints, "FPDFAnnot_CountAttachmentPoints")
	r.register(&a.annotHasAttachmentPoints, "FPDFAnnot_HasAttachmentPoints")
	r.register(&a.annotGetAttachmentPoints, "FPDFAnnot_GetAttachmentPoints")
	r.register(&a.annotSetAttachmentPoints, "FPDFAnnot_SetAttachmentPoints")
	r.register(&a.annotAppendAttachmentPoints, "FPDFAnnot_AppendAttachmentPoints")
	r.register(&a.annotGetObjectCount, "FPDFAnnot_GetObjectCount")
	r.register(&a.annotGetObject, "FPDFAnnot_GetObject")
	r.register(&a.annotAppendObject, "FPDFAnnot_AppendObject")
	r.register(&a.annotUpdateObject, "FPDFAnnot_UpdateObject")
	r.register(&a.annotRemoveObject, "FPDFAnnot_RemoveObject")
	r.register(&a.annotGetInkListCount, "FPDFAnnot_GetInkListCount")
	r.register(&a.annotGetInkListPath, "FPDFAnnot_GetInkListPath")
	r.register(&a.annotAddInkStroke, "FPDFAnnot_AddInkStroke")
	r.register(&a.annotRemoveInkList, "FPDFAnnot_RemoveInkList")
	r.register(&a.annotGetVertices, "FPDFAnnot_GetVertices")
	r.register(&a.annotGetLine, "FPDFAnnot_GetLine")
	r.register(&a.annotGetBorder, "FPDFAnnot_GetBorder")
	r.register(&a.annotSetBorder, "FPDFAnnot_SetBorder")
	r.register(&a.annotGetLink, "FPDFAnnot_GetLink")
	r.register(&a.annotSetURI, "FPDFAnnot_SetURI")

	r.register(&a.linkGetLinkAtPoint, "FPDFLink_GetLinkAtPoint")
	r.register(&a.linkGetLinkZOrderAtPoint, "FPDFLink_GetLinkZOrderAtPoint")
	r.register(&a.linkGetDest, "FPDFLink_GetDest")
	r.register(&a.linkGetAction, "FPDFLink_GetAction")
	r.register(&a.linkGetAnnot, "FPDFLink_GetAnnot")
	r.register(&a.linkGetAnnotRect, "FPDFLink_GetAnnotRect")
	r.register(&a.linkCountQuadPoints, "FPDFLink_CountQuadPoints")
	r.register(&a.linkGetQuadPoints, "FPDFLink_GetQuadPoints")
	r.register(&a.linkEnumerate, "FPDFLink_Enumerate")
	r.register(&a.actionGetType, "FPDFAction_GetType")
	r.register(&a.actionGetDest, "FPDFAction_GetDest")
	r.register(&a.actionGetFilePath, "FPDFAction_GetFilePath")
	r.register(&a.actionGetURIPath, "FPDFAction_GetURIPath")
	r.register(&a.destGetDestPageIndex, "FPDFDest_GetDestPageIndex")
	r.register(&a.destGetLocationInPage, "FPDFDest_GetLocationInPage")
	r.register(&a.destGetView, "FPDFDest_GetView")

	r.register(&a.bookmarkGetFirstChild, "FPDFBookmark_GetFirstChild")
	r.register(&a.bookmarkGetNextSibling, "FPDFBookmark_GetNextSibling")
	r.register(&a.bookmarkGetTitle, "FPDFBookmark_GetTitle")
	r.register(&a.bookmarkGetCount, "FPDFBookmark_GetCount")
	r.register(&a.bookmarkFind, "FPDFBookmark_Find")
	r.register(&a.bookmarkGetAction, "FPDFBookmark_GetAction")
	r.register(&a.bookmarkGetDest, "FPDFBookmark_GetDest")

	r.register(&a.docGetAttachmentCount, "FPDFDoc_GetAttachmentCount")
	r.register(&a.docGetAttachment, "FPDFDoc_GetAttachment")
	r.register(&a.docAddAttachment, "FPDFDoc_AddAttachment")
	r.register(&a.docDeleteAttachment, "FPDFDoc_DeleteAttachment")
	r.register(&a.attachmentGetName, "FPDFAttachment_GetName")
	r.register(&a.attachmentGetFile, "FPDFAttachment_GetFile")
	r.register(&a.attachmentSetFile, "FPDFAttachment_SetFile")
	r.register(&a.attachmentGetStringValue, "FPDFAttachment_GetStringValue")
	r.register(&a.attachmentSetStringValue, "FPDFAttachment_SetStringValue")
	r.register(&a.attachmentHasKey, "FPDFAttachment_HasKey")
	r.register(&a.attachmentGetValueType, "FPDFAttachment_GetValueType")

	r.register(&a.getSignatureCount, "FPDF_GetSignatureCount")
	r.register(&a.getSignatureObject, "FPDF_GetSignatureObject")
	r.register(&a.signatureGetContents, "FPDFSignatureObj_GetContents")
	r.register(&a.signatureGetByteRange, "FPDFSignatureObj_GetByteRange")
	r.register(&a.signatureGetSubFilter, "FPDFSignatureObj_GetSubFilter")
	r.register(&a.signatureGetReason, "FPDFSignatureObj_GetReason")
	r.register(&a.signatureGetTime, "FPDFSignatureObj_GetTime")
	r.register(&a.signatureGetDocMDPPermission, "FPDFSignatureObj_GetDocMDPPermission")

	if cfg.Experimental {
		r.register(&a.fontGetBaseFontName, "FPDFFont_GetBaseFontName")
		r.register(&a.fontGetFamilyName, "FPDFFont_GetFamilyName")
		r.register(&a.fontGetFontData, "FPDFFont_GetFontData")
	} else {
		// Pre-experimental builds expose FPDFFont_GetFontName with the
		// family-name semantics and nothing for the other two.
		r.registerOptional(&a.fontGetFamilyName, "FPDFFont_GetFontName")
	}

	if cfg.Forms {
		r.register(&a.docInitFormFillEnvironment, "FPDFDOC_InitFormFillEnvironment")
		r.register(&a.docExitFormFillEnvironment, "FPDFDOC_ExitFormFillEnvironment")
		r.register(&a.fflDraw, "FPDF_FFLDraw")
		r.register(&a.setFormFieldHighlightColor, "FPDF_SetFormFieldHighlightColor")
		r.register(&a.setFormFieldHighlightAlpha, "FPDF_SetFormFieldHighlightAlpha")
		r.register(&a.annotGetFormFieldType, "FPDFAnnot_GetFormFieldType")
		r.register(&a.annotGetFormFieldName, "FPDFAnnot_GetFormFieldName")
		r.register(&a.annotGetFormFieldValue, "FPDFAnnot_GetFormFieldValue")
		r.register(&a.annotGetFormFieldFlags, "FPDFAnnot_GetFormFieldFlags")
		r.register(&a.annotIsChecked, "FPDFAnnot_IsChecked")
	}

	return r.err
}
