// Package bindings defines the contract every Pdfium backend must satisfy:
// one method per supported native entry point, with Go-friendly types at the
// boundary (strings and byte slices instead of raw C pointers) but otherwise
// mirroring the C signatures exactly in argument order and width.
//
// Integer widths follow the LP64 model used by the supported platforms:
// c_int is int32, c_ulong is uint64, c_float is float32, c_double is float64.
// Byte-slice parameters follow Pdfium's two-call buffer protocol: pass nil to
// query the required length, then call again with a buffer of that length.
//
// The contract is split into capability groups. Backends implement the groups
// they can support; the compiler enforces the rest. Bindings is the union all
// general-purpose backends provide. FileBindings and SaveBindings live
// outside Bindings because the WASM backend has no addressable filesystem and
// cannot route native write callbacks back to the host.
package bindings

import (
	"io"

	"github.com/wudi/pdfium/ffi"
)

// Library covers process-wide initialization and teardown. FPDF_InitLibrary
// must be called exactly once before any other entry point, and
// FPDF_DestroyLibrary exactly once when no longer needed; the facade owns
// this pairing.
type Library interface {
	FPDF_InitLibrary()
	FPDF_DestroyLibrary()
	FPDF_GetLastError() ffi.ErrorCode
}

// Document covers document lifecycle and document-level queries.
type Document interface {
	FPDF_LoadMemDocument(data []byte, password string) ffi.Document
	FPDF_CloseDocument(doc ffi.Document)
	FPDF_GetPageCount(doc ffi.Document) int32
	FPDF_GetFileVersion(doc ffi.Document, version *int32) ffi.Bool
	FPDF_GetDocPermissions(doc ffi.Document) uint64
	FPDF_GetSecurityHandlerRevision(doc ffi.Document) int32
	FPDF_GetFileIdentifier(doc ffi.Document, idType ffi.FileIDType, buf []byte) uint64
	FPDF_GetMetaText(doc ffi.Document, tag string, buf []byte) uint64
	FPDF_GetPageLabel(doc ffi.Document, pageIndex int32, buf []byte) uint64
	FPDF_GetFormType(doc ffi.Document) ffi.FormType
	FPDFDoc_GetPageMode(doc ffi.Document) ffi.PageMode
	FPDFCatalog_IsTagged(doc ffi.Document) ffi.Bool
}

// Page covers page lifecycle, geometry and coordinate mapping.
type Page interface {
	FPDF_LoadPage(doc ffi.Document, pageIndex int32) ffi.Page
	FPDF_ClosePage(page ffi.Page)
	FPDF_GetPageWidthF(page ffi.Page) float32
	FPDF_GetPageHeightF(page ffi.Page) float32
	FPDF_GetPageSizeByIndexF(doc ffi.Document, pageIndex int32, size *ffi.SizeF) ffi.Bool
	FPDF_GetPageBoundingBox(page ffi.Page, rect *ffi.RectF) ffi.Bool
	FPDFPage_GetRotation(page ffi.Page) int32
	FPDFPage_SetRotation(page ffi.Page, rotation int32)
	FPDFPage_GetMediaBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool
	FPDFPage_SetMediaBox(page ffi.Page, left, bottom, right, top float32)
	FPDFPage_GetCropBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool
	FPDFPage_SetCropBox(page ffi.Page, left, bottom, right, top float32)
	FPDFPage_GetBleedBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool
	FPDFPage_SetBleedBox(page ffi.Page, left, bottom, right, top float32)
	FPDFPage_GetTrimBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool
	FPDFPage_SetTrimBox(page ffi.Page, left, bottom, right, top float32)
	FPDFPage_GetArtBox(page ffi.Page, left, bottom, right, top *float32) ffi.Bool
	FPDFPage_SetArtBox(page ffi.Page, left, bottom, right, top float32)
	FPDFPage_HasTransparency(page ffi.Page) ffi.Bool
	FPDF_DeviceToPage(page ffi.Page, startX, startY, sizeX, sizeY, rotate, deviceX, deviceY int32, pageX, pageY *float64) ffi.Bool
	FPDF_PageToDevice(page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, pageX, pageY float64, deviceX, deviceY *int32) ffi.Bool
}

// Render covers page rasterization and bitmap management.
type Render interface {
	FPDF_RenderPageBitmap(bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags)
	FPDF_RenderPageBitmapWithMatrix(bitmap ffi.Bitmap, page ffi.Page, matrix *ffi.Matrix, clipping *ffi.RectF, flags ffi.RenderFlags)
	FPDFBitmap_CreateEx(width, height int32, format ffi.BitmapFormat, firstScan []byte, stride int32) ffi.Bitmap
	FPDFBitmap_Destroy(bitmap ffi.Bitmap)
	FPDFBitmap_FillRect(bitmap ffi.Bitmap, left, top, width, height int32, color uint64)
	FPDFBitmap_GetBuffer(bitmap ffi.Bitmap, buf []byte) ffi.Bool
	FPDFBitmap_GetFormat(bitmap ffi.Bitmap) ffi.BitmapFormat
	FPDFBitmap_GetWidth(bitmap ffi.Bitmap) int32
	FPDFBitmap_GetHeight(bitmap ffi.Bitmap) int32
	FPDFBitmap_GetStride(bitmap ffi.Bitmap) int32
}

// TextPage covers extracted-text queries, text search and web links.
type TextPage interface {
	FPDFText_LoadPage(page ffi.Page) ffi.TextPage
	FPDFText_ClosePage(textPage ffi.TextPage)
	FPDFText_CountChars(textPage ffi.TextPage) int32
	FPDFText_GetText(textPage ffi.TextPage, startIndex, count int32, buf []byte) int32
	FPDFText_GetUnicode(textPage ffi.TextPage, index int32) uint32
	FPDFText_GetFontSize(textPage ffi.TextPage, index int32) float64
	FPDFText_GetFontWeight(textPage ffi.TextPage, index int32) int32
	FPDFText_GetFontInfo(textPage ffi.TextPage, index int32, buf []byte, flags *int32) uint64
	FPDFText_GetCharBox(textPage ffi.TextPage, index int32, left, right, bottom, top *float64) ffi.Bool
	FPDFText_GetLooseCharBox(textPage ffi.TextPage, index int32, rect *ffi.RectF) ffi.Bool
	FPDFText_GetCharOrigin(textPage ffi.TextPage, index int32, x, y *float64) ffi.Bool
	FPDFText_GetCharAngle(textPage ffi.TextPage, index int32) float32
	FPDFText_CountRects(textPage ffi.TextPage, startIndex, count int32) int32
	FPDFText_GetRect(textPage ffi.TextPage, rectIndex int32, left, top, right, bottom *float64) ffi.Bool
	FPDFText_GetBoundedText(textPage ffi.TextPage, left, top, right, bottom float64, buf []byte) int32
	FPDFText_GetCharIndexAtPos(textPage ffi.TextPage, x, y, xTolerance, yTolerance float64) int32
	FPDFText_FindStart(textPage ffi.TextPage, findWhat string, flags uint64, startIndex int32) ffi.SearchHandle
	FPDFText_FindNext(handle ffi.SearchHandle) ffi.Bool
	FPDFText_FindPrev(handle ffi.SearchHandle) ffi.Bool
	FPDFText_GetSchResultIndex(handle ffi.SearchHandle) int32
	FPDFText_GetSchCount(handle ffi.SearchHandle) int32
	FPDFText_FindClose(handle ffi.SearchHandle)
	FPDFLink_LoadWebLinks(textPage ffi.TextPage) ffi.PageLink
	FPDFLink_CloseWebLinks(pageLink ffi.PageLink)
	FPDFLink_CountWebLinks(pageLink ffi.PageLink) int32
	FPDFLink_GetURL(pageLink ffi.PageLink, linkIndex int32, buf []byte) int32
	FPDFLink_CountRects(pageLink ffi.PageLink, linkIndex int32) int32
	FPDFLink_GetRect(pageLink ffi.PageLink, linkIndex, rectIndex int32, left, top, right, bottom *float64) ffi.Bool
}

// Edit covers document and page construction.
type Edit interface {
	FPDF_CreateNewDocument() ffi.Document
	FPDFPage_New(doc ffi.Document, pageIndex int32, width, height float64) ffi.Page
	FPDFPage_Delete(doc ffi.Document, pageIndex int32)
	FPDF_ImportPages(dest, src ffi.Document, pageRange string, index int32) ffi.Bool
	FPDF_ImportPagesByIndex(dest, src ffi.Document, pageIndices []int32, index int32) ffi.Bool
	FPDF_ImportNPagesToOne(src ffi.Document, outputWidth, outputHeight float32, columns, rows uint64) ffi.Document
	FPDFPage_GenerateContent(page ffi.Page) ffi.Bool
	FPDFPage_Flatten(page ffi.Page, flag int32) int32
}

// PageObject covers page-object enumeration, styling and transforms.
type PageObject interface {
	FPDFPage_CountObjects(page ffi.Page) int32
	FPDFPage_GetObject(page ffi.Page, index int32) ffi.PageObject
	FPDFPage_InsertObject(page ffi.Page, obj ffi.PageObject)
	FPDFPage_RemoveObject(page ffi.Page, obj ffi.PageObject) ffi.Bool
	FPDFPageObj_Destroy(obj ffi.PageObject)
	FPDFPageObj_GetType(obj ffi.PageObject) ffi.ObjectType
	FPDFPageObj_GetBounds(obj ffi.PageObject, left, bottom, right, top *float32) ffi.Bool
	FPDFPageObj_GetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool
	FPDFPageObj_SetMatrix(obj ffi.PageObject, matrix *ffi.Matrix) ffi.Bool
	FPDFPageObj_Transform(obj ffi.PageObject, a, b, c, d, e, f float64)
	FPDFPageObj_GetFillColor(obj ffi.PageObject, r, g, b, a *uint32) ffi.Bool
	FPDFPageObj_SetFillColor(obj ffi.PageObject, r, g, b, a uint32) ffi.Bool
	FPDFPageObj_GetStrokeColor(obj ffi.PageObject, r, g, b, a *uint32) ffi.Bool
	FPDFPageObj_SetStrokeColor(obj ffi.PageObject, r, g, b, a uint32) ffi.Bool
	FPDFPageObj_GetStrokeWidth(obj ffi.PageObject, width *float32) ffi.Bool
	FPDFPageObj_SetStrokeWidth(obj ffi.PageObject, width float32) ffi.Bool
	FPDFPageObj_GetLineJoin(obj ffi.PageObject) ffi.LineJoin
	FPDFPageObj_SetLineJoin(obj ffi.PageObject, join ffi.LineJoin) ffi.Bool
	FPDFPageObj_GetLineCap(obj ffi.PageObject) ffi.LineCap
	FPDFPageObj_SetLineCap(obj ffi.PageObject, cap ffi.LineCap) ffi.Bool
	FPDFPageObj_SetBlendMode(obj ffi.PageObject, blendMode string)
	FPDFPageObj_HasTransparency(obj ffi.PageObject) ffi.Bool
	FPDFPageObj_GetDashCount(obj ffi.PageObject) int32
	FPDFPageObj_GetDashArray(obj ffi.PageObject, dashArray []float32) ffi.Bool
	FPDFPageObj_SetDashArray(obj ffi.PageObject, dashArray []float32, phase float32) ffi.Bool
	FPDFPageObj_GetDashPhase(obj ffi.PageObject, phase *float32) ffi.Bool
	FPDFPageObj_SetDashPhase(obj ffi.PageObject, phase float32) ffi.Bool
	FPDFPageObj_CreateNewPath(x, y float32) ffi.PageObject
	FPDFPageObj_CreateNewRect(x, y, w, h float32) ffi.PageObject
	FPDFPageObj_NewTextObj(doc ffi.Document, font string, fontSize float32) ffi.PageObject
	FPDFPageObj_NewImageObj(doc ffi.Document) ffi.PageObject
	FPDFFormObj_CountObjects(obj ffi.PageObject) int32
	FPDFFormObj_GetObject(obj ffi.PageObject, index int32) ffi.PageObject
}

// Path covers path construction and segment access.
type Path interface {
	FPDFPath_MoveTo(path ffi.PageObject, x, y float32) ffi.Bool
	FPDFPath_LineTo(path ffi.PageObject, x, y float32) ffi.Bool
	FPDFPath_BezierTo(path ffi.PageObject, x1, y1, x2, y2, x3, y3 float32) ffi.Bool
	FPDFPath_Close(path ffi.PageObject) ffi.Bool
	FPDFPath_SetDrawMode(path ffi.PageObject, fillMode ffi.PathFillMode, stroke ffi.Bool) ffi.Bool
	FPDFPath_GetDrawMode(path ffi.PageObject, fillMode *ffi.PathFillMode, stroke *ffi.Bool) ffi.Bool
	FPDFPath_CountSegments(path ffi.PageObject) int32
	FPDFPath_GetPathSegment(path ffi.PageObject, index int32) ffi.PathSegment
	FPDFPathSegment_GetPoint(segment ffi.PathSegment, x, y *float32) ffi.Bool
	FPDFPathSegment_GetType(segment ffi.PathSegment) ffi.PathSegmentType
	FPDFPathSegment_GetClose(segment ffi.PathSegment) ffi.Bool
}

// Text covers text page objects and font loading.
type Text interface {
	FPDFTextObj_GetFont(obj ffi.PageObject) ffi.Font
	FPDFTextObj_GetFontSize(obj ffi.PageObject, size *float32) ffi.Bool
	FPDFTextObj_GetText(obj ffi.PageObject, textPage ffi.TextPage, buf []byte) uint64
	FPDFTextObj_GetTextRenderMode(obj ffi.PageObject) ffi.TextRenderMode
	FPDFTextObj_SetTextRenderMode(obj ffi.PageObject, mode ffi.TextRenderMode) ffi.Bool
	FPDFText_SetText(obj ffi.PageObject, text string) ffi.Bool
	FPDFText_LoadFont(doc ffi.Document, data []byte, fontType int32, cid ffi.Bool) ffi.Font
	FPDFText_LoadStandardFont(doc ffi.Document, name string) ffi.Font
}

// Font covers font metrics and glyph outlines. The name and font-data
// accessors are version-gated in Pdfium and only resolve when
// Config.Experimental is set.
type Font interface {
	FPDFFont_Close(font ffi.Font)
	FPDFFont_GetBaseFontName(font ffi.Font, buf []byte) uint64
	FPDFFont_GetFamilyName(font ffi.Font, buf []byte) uint64
	FPDFFont_GetFontData(font ffi.Font, buf []byte, outLen *uint64) ffi.Bool
	FPDFFont_GetFlags(font ffi.Font) int32
	FPDFFont_GetWeight(font ffi.Font) int32
	FPDFFont_GetItalicAngle(font ffi.Font, angle *int32) ffi.Bool
	FPDFFont_GetAscent(font ffi.Font, fontSize float32, ascent *float32) ffi.Bool
	FPDFFont_GetDescent(font ffi.Font, fontSize float32, descent *float32) ffi.Bool
	FPDFFont_GetGlyphWidth(font ffi.Font, glyph uint32, fontSize float32, width *float32) ffi.Bool
	FPDFFont_GetIsEmbedded(font ffi.Font) int32
	FPDFFont_GetGlyphPath(font ffi.Font, glyph uint32, fontSize float32) ffi.GlyphPath
	FPDFGlyphPath_CountGlyphSegments(glyphPath ffi.GlyphPath) int32
	FPDFGlyphPath_GetGlyphPathSegment(glyphPath ffi.GlyphPath, index int32) ffi.PathSegment
}

// Image covers image page objects. The JPEG loaders require routing a native
// read callback back to the host and are unavailable on the WASM backend,
// which reports plain failure for them.
type Image interface {
	FPDFImageObj_GetBitmap(obj ffi.PageObject) ffi.Bitmap
	FPDFImageObj_GetRenderedBitmap(doc ffi.Document, page ffi.Page, obj ffi.PageObject) ffi.Bitmap
	FPDFImageObj_GetImageDataDecoded(obj ffi.PageObject, buf []byte) uint64
	FPDFImageObj_GetImageDataRaw(obj ffi.PageObject, buf []byte) uint64
	FPDFImageObj_GetImageFilterCount(obj ffi.PageObject) int32
	FPDFImageObj_GetImageFilter(obj ffi.PageObject, index int32, buf []byte) uint64
	FPDFImageObj_GetImageMetadata(obj ffi.PageObject, page ffi.Page, metadata *ffi.ImageMetadata) ffi.Bool
	FPDFImageObj_SetBitmap(pages *ffi.Page, count int32, obj ffi.PageObject, bitmap ffi.Bitmap) ffi.Bool
	FPDFImageObj_SetMatrix(obj ffi.PageObject, a, b, c, d, e, f float64) ffi.Bool
	FPDFImageObj_LoadJpegFile(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool
	FPDFImageObj_LoadJpegFileInline(pages *ffi.Page, count int32, obj ffi.PageObject, data []byte) ffi.Bool
}

// Annotation covers page annotations.
type Annotation interface {
	FPDFPage_GetAnnotCount(page ffi.Page) int32
	FPDFPage_GetAnnot(page ffi.Page, index int32) ffi.Annotation
	FPDFPage_GetAnnotIndex(page ffi.Page, annot ffi.Annotation) int32
	FPDFPage_CreateAnnot(page ffi.Page, subtype ffi.AnnotationSubtype) ffi.Annotation
	FPDFPage_RemoveAnnot(page ffi.Page, index int32) ffi.Bool
	FPDFPage_CloseAnnot(annot ffi.Annotation)
	FPDFAnnot_GetSubtype(annot ffi.Annotation) ffi.AnnotationSubtype
	FPDFAnnot_IsSupportedSubtype(subtype ffi.AnnotationSubtype) ffi.Bool
	FPDFAnnot_GetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool
	FPDFAnnot_SetRect(annot ffi.Annotation, rect *ffi.RectF) ffi.Bool
	FPDFAnnot_GetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, b, a *uint32) ffi.Bool
	FPDFAnnot_SetColor(annot ffi.Annotation, colorType ffi.ColorType, r, g, b, a uint32) ffi.Bool
	FPDFAnnot_GetFlags(annot ffi.Annotation) ffi.AnnotationFlags
	FPDFAnnot_SetFlags(annot ffi.Annotation, flags ffi.AnnotationFlags) ffi.Bool
	FPDFAnnot_GetStringValue(annot ffi.Annotation, key string, buf []byte) uint64
	FPDFAnnot_SetStringValue(annot ffi.Annotation, key, value string) ffi.Bool
	FPDFAnnot_GetNumberValue(annot ffi.Annotation, key string, value *float32) ffi.Bool
	FPDFAnnot_HasKey(annot ffi.Annotation, key string) ffi.Bool
	FPDFAnnot_GetValueType(annot ffi.Annotation, key string) ffi.ObjectValueType
	FPDFAnnot_GetAP(annot ffi.Annotation, mode ffi.AppearanceMode, buf []byte) uint64
	FPDFAnnot_SetAP(annot ffi.Annotation, mode ffi.AppearanceMode, value string) ffi.Bool
	FPDFAnnot_CountAttachmentPoints(annot ffi.Annotation) uint64
	FPDFAnnot_HasAttachmentPoints(annot ffi.Annotation) ffi.Bool
	FPDFAnnot_GetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool
	FPDFAnnot_SetAttachmentPoints(annot ffi.Annotation, index uint64, quad *ffi.QuadPointsF) ffi.Bool
	FPDFAnnot_AppendAttachmentPoints(annot ffi.Annotation, quad *ffi.QuadPointsF) ffi.Bool
	FPDFAnnot_GetObjectCount(annot ffi.Annotation) int32
	FPDFAnnot_GetObject(annot ffi.Annotation, index int32) ffi.PageObject
	FPDFAnnot_AppendObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool
	FPDFAnnot_UpdateObject(annot ffi.Annotation, obj ffi.PageObject) ffi.Bool
	FPDFAnnot_RemoveObject(annot ffi.Annotation, index int32) ffi.Bool
	FPDFAnnot_GetInkListCount(annot ffi.Annotation) uint64
	FPDFAnnot_GetInkListPath(annot ffi.Annotation, pathIndex uint64, points []ffi.PointF) uint64
	FPDFAnnot_AddInkStroke(annot ffi.Annotation, points []ffi.PointF) int32
	FPDFAnnot_RemoveInkList(annot ffi.Annotation) ffi.Bool
	FPDFAnnot_GetVertices(annot ffi.Annotation, points []ffi.PointF) uint64
	FPDFAnnot_GetLine(annot ffi.Annotation, start, end *ffi.PointF) ffi.Bool
	FPDFAnnot_GetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth *float32) ffi.Bool
	FPDFAnnot_SetBorder(annot ffi.Annotation, horizontalRadius, verticalRadius, borderWidth float32) ffi.Bool
	FPDFAnnot_GetLink(annot ffi.Annotation) ffi.Link
	FPDFAnnot_SetURI(annot ffi.Annotation, uri string) ffi.Bool
}

// Link covers page links, actions and destinations.
type Link interface {
	FPDFLink_GetLinkAtPoint(page ffi.Page, x, y float64) ffi.Link
	FPDFLink_GetLinkZOrderAtPoint(page ffi.Page, x, y float64) int32
	FPDFLink_GetDest(doc ffi.Document, link ffi.Link) ffi.Dest
	FPDFLink_GetAction(link ffi.Link) ffi.Action
	FPDFLink_GetAnnot(page ffi.Page, link ffi.Link) ffi.Annotation
	FPDFLink_GetAnnotRect(link ffi.Link, rect *ffi.RectF) ffi.Bool
	FPDFLink_CountQuadPoints(link ffi.Link) int32
	FPDFLink_GetQuadPoints(link ffi.Link, quadIndex int32, quad *ffi.QuadPointsF) ffi.Bool
	FPDFLink_Enumerate(page ffi.Page, startPos *int32, link *ffi.Link) ffi.Bool
	FPDFAction_GetType(action ffi.Action) ffi.ActionType
	FPDFAction_GetDest(doc ffi.Document, action ffi.Action) ffi.Dest
	FPDFAction_GetFilePath(action ffi.Action, buf []byte) uint64
	FPDFAction_GetURIPath(doc ffi.Document, action ffi.Action, buf []byte) uint64
	FPDFDest_GetDestPageIndex(doc ffi.Document, dest ffi.Dest) int32
	FPDFDest_GetLocationInPage(dest ffi.Dest, hasX, hasY, hasZoom *ffi.Bool, x, y, zoom *float32) ffi.Bool
	FPDFDest_GetView(dest ffi.Dest, numParams *uint64, params []float32) uint64
}

// Bookmark covers the document outline tree.
type Bookmark interface {
	FPDFBookmark_GetFirstChild(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark
	FPDFBookmark_GetNextSibling(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark
	FPDFBookmark_GetTitle(bookmark ffi.Bookmark, buf []byte) uint64
	FPDFBookmark_GetCount(bookmark ffi.Bookmark) int32
	FPDFBookmark_Find(doc ffi.Document, title string) ffi.Bookmark
	FPDFBookmark_GetAction(bookmark ffi.Bookmark) ffi.Action
	FPDFBookmark_GetDest(doc ffi.Document, bookmark ffi.Bookmark) ffi.Dest
}

// Attachment covers embedded files.
type Attachment interface {
	FPDFDoc_GetAttachmentCount(doc ffi.Document) int32
	FPDFDoc_GetAttachment(doc ffi.Document, index int32) ffi.Attachment
	FPDFDoc_AddAttachment(doc ffi.Document, name string) ffi.Attachment
	FPDFDoc_DeleteAttachment(doc ffi.Document, index int32) ffi.Bool
	FPDFAttachment_GetName(attachment ffi.Attachment, buf []byte) uint64
	FPDFAttachment_GetFile(attachment ffi.Attachment, buf []byte, outLen *uint64) ffi.Bool
	FPDFAttachment_SetFile(attachment ffi.Attachment, doc ffi.Document, data []byte) ffi.Bool
	FPDFAttachment_GetStringValue(attachment ffi.Attachment, key string, buf []byte) uint64
	FPDFAttachment_SetStringValue(attachment ffi.Attachment, key, value string) ffi.Bool
	FPDFAttachment_HasKey(attachment ffi.Attachment, key string) ffi.Bool
	FPDFAttachment_GetValueType(attachment ffi.Attachment, key string) ffi.ObjectValueType
}

// Signature covers digital signature objects.
type Signature interface {
	FPDF_GetSignatureCount(doc ffi.Document) int32
	FPDF_GetSignatureObject(doc ffi.Document, index int32) ffi.Signature
	FPDFSignatureObj_GetContents(signature ffi.Signature, buf []byte) uint64
	FPDFSignatureObj_GetByteRange(signature ffi.Signature, byteRange []int32) uint64
	FPDFSignatureObj_GetSubFilter(signature ffi.Signature, buf []byte) uint64
	FPDFSignatureObj_GetReason(signature ffi.Signature, buf []byte) uint64
	FPDFSignatureObj_GetTime(signature ffi.Signature, buf []byte) uint64
	FPDFSignatureObj_GetDocMDPPermission(signature ffi.Signature) uint32
}

// Core is the subset the statically linked backend resolves: enough to load,
// inspect, render and extract text from documents. It is deliberately
// narrower than Bindings; handing a core-only backend to an API that needs
// the full contract is a compile-time error unless promoted through Full.
type Core interface {
	Library
	Document
	Page
	Render
	TextPage
}

// Bindings is the full contract implemented by general-purpose backends
// (dynamic load, WASM).
type Bindings interface {
	Core
	Edit
	PageObject
	Path
	Text
	Font
	Image
	Annotation
	Link
	Bookmark
	Attachment
	Signature
}

// FileBindings covers document loading that needs an addressable filesystem
// or a host read callback. The WASM backend does not implement it, so
// file-path loading is unreachable there at compile time.
type FileBindings interface {
	FPDF_LoadDocument(path string, password string) ffi.Document
	FPDF_LoadCustomDocument(reader io.ReaderAt, size uint64, password string) ffi.Document
}

// SaveBindings covers serialization through a native write callback. Not
// implemented by the WASM backend: guest code cannot call back into host
// functions through Pdfium's FPDF_FILEWRITE function pointer.
type SaveBindings interface {
	FPDF_SaveAsCopy(doc ffi.Document, w io.Writer, flags ffi.SaveFlags) ffi.Bool
	FPDF_SaveWithVersion(doc ffi.Document, w io.Writer, flags ffi.SaveFlags, fileVersion int32) ffi.Bool
}

// FormBindings is the optional form-fill environment group, resolved only
// when Config.Forms is enabled at construction.
type FormBindings interface {
	FPDFDOC_InitFormFillEnvironment(doc ffi.Document) ffi.FormHandle
	FPDFDOC_ExitFormFillEnvironment(handle ffi.FormHandle)
	FPDF_FFLDraw(handle ffi.FormHandle, bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags)
	FPDF_SetFormFieldHighlightColor(handle ffi.FormHandle, fieldType ffi.FormFieldType, color uint64)
	FPDF_SetFormFieldHighlightAlpha(handle ffi.FormHandle, alpha uint8)
	FPDFAnnot_GetFormFieldType(handle ffi.FormHandle, annot ffi.Annotation) ffi.FormFieldType
	FPDFAnnot_GetFormFieldName(handle ffi.FormHandle, annot ffi.Annotation, buf []byte) uint64
	FPDFAnnot_GetFormFieldValue(handle ffi.FormHandle, annot ffi.Annotation, buf []byte) uint64
	FPDFAnnot_GetFormFieldFlags(handle ffi.FormHandle, annot ffi.Annotation) int32
	FPDFAnnot_IsChecked(handle ffi.FormHandle, annot ffi.Annotation) ffi.Bool
}
