package bindings

import "github.com/wudi/pdfium/ffi"

// UnimplementedCore provides failure-sentinel defaults for every Core entry
// point. Embed it in test fakes and override the methods under test.
type UnimplementedCore struct{}

func (UnimplementedCore) FPDF_InitLibrary()                {}
func (UnimplementedCore) FPDF_DestroyLibrary()             {}
func (UnimplementedCore) FPDF_GetLastError() ffi.ErrorCode { return ffi.ErrSuccess }

func (UnimplementedCore) FPDF_LoadMemDocument([]byte, string) ffi.Document   { return 0 }
func (UnimplementedCore) FPDF_CloseDocument(ffi.Document)                    {}
func (UnimplementedCore) FPDF_GetPageCount(ffi.Document) int32               { return 0 }
func (UnimplementedCore) FPDF_GetFileVersion(ffi.Document, *int32) ffi.Bool  { return ffi.False }
func (UnimplementedCore) FPDF_GetDocPermissions(ffi.Document) uint64         { return 0 }
func (UnimplementedCore) FPDF_GetSecurityHandlerRevision(ffi.Document) int32 { return -1 }
func (UnimplementedCore) FPDF_GetFileIdentifier(ffi.Document, ffi.FileIDType, []byte) uint64 {
	return 0
}
func (UnimplementedCore) FPDF_GetMetaText(ffi.Document, string, []byte) uint64 { return 0 }
func (UnimplementedCore) FPDF_GetPageLabel(ffi.Document, int32, []byte) uint64 { return 0 }
func (UnimplementedCore) FPDF_GetFormType(ffi.Document) ffi.FormType           { return ffi.FormTypeNone }
func (UnimplementedCore) FPDFDoc_GetPageMode(ffi.Document) ffi.PageMode        { return ffi.PageModeUnknown }
func (UnimplementedCore) FPDFCatalog_IsTagged(ffi.Document) ffi.Bool           { return ffi.False }

func (UnimplementedCore) FPDF_LoadPage(ffi.Document, int32) ffi.Page { return 0 }
func (UnimplementedCore) FPDF_ClosePage(ffi.Page)                    {}
func (UnimplementedCore) FPDF_GetPageWidthF(ffi.Page) float32        { return 0 }
func (UnimplementedCore) FPDF_GetPageHeightF(ffi.Page) float32       { return 0 }
func (UnimplementedCore) FPDF_GetPageSizeByIndexF(ffi.Document, int32, *ffi.SizeF) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDF_GetPageBoundingBox(ffi.Page, *ffi.RectF) ffi.Bool { return ffi.False }
func (UnimplementedCore) FPDFPage_GetRotation(ffi.Page) int32                   { return 0 }
func (UnimplementedCore) FPDFPage_SetRotation(ffi.Page, int32)                  {}
func (UnimplementedCore) FPDFPage_GetMediaBox(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFPage_SetMediaBox(ffi.Page, float32, float32, float32, float32) {}
func (UnimplementedCore) FPDFPage_GetCropBox(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFPage_SetCropBox(ffi.Page, float32, float32, float32, float32) {}
func (UnimplementedCore) FPDFPage_GetBleedBox(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFPage_SetBleedBox(ffi.Page, float32, float32, float32, float32) {}
func (UnimplementedCore) FPDFPage_GetTrimBox(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFPage_SetTrimBox(ffi.Page, float32, float32, float32, float32) {}
func (UnimplementedCore) FPDFPage_GetArtBox(ffi.Page, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFPage_SetArtBox(ffi.Page, float32, float32, float32, float32) {}
func (UnimplementedCore) FPDFPage_HasTransparency(ffi.Page) ffi.Bool                      { return ffi.False }
func (UnimplementedCore) FPDF_DeviceToPage(ffi.Page, int32, int32, int32, int32, int32, int32, int32, *float64, *float64) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDF_PageToDevice(ffi.Page, int32, int32, int32, int32, int32, float64, float64, *int32, *int32) ffi.Bool {
	return ffi.False
}

func (UnimplementedCore) FPDF_RenderPageBitmap(ffi.Bitmap, ffi.Page, int32, int32, int32, int32, int32, ffi.RenderFlags) {
}
func (UnimplementedCore) FPDF_RenderPageBitmapWithMatrix(ffi.Bitmap, ffi.Page, *ffi.Matrix, *ffi.RectF, ffi.RenderFlags) {
}
func (UnimplementedCore) FPDFBitmap_CreateEx(int32, int32, ffi.BitmapFormat, []byte, int32) ffi.Bitmap {
	return 0
}
func (UnimplementedCore) FPDFBitmap_Destroy(ffi.Bitmap)                                      {}
func (UnimplementedCore) FPDFBitmap_FillRect(ffi.Bitmap, int32, int32, int32, int32, uint64) {}
func (UnimplementedCore) FPDFBitmap_GetBuffer(ffi.Bitmap, []byte) ffi.Bool                   { return ffi.False }
func (UnimplementedCore) FPDFBitmap_GetFormat(ffi.Bitmap) ffi.BitmapFormat                   { return ffi.BitmapUnknown }
func (UnimplementedCore) FPDFBitmap_GetWidth(ffi.Bitmap) int32                               { return 0 }
func (UnimplementedCore) FPDFBitmap_GetHeight(ffi.Bitmap) int32                              { return 0 }
func (UnimplementedCore) FPDFBitmap_GetStride(ffi.Bitmap) int32                              { return 0 }

func (UnimplementedCore) FPDFText_LoadPage(ffi.Page) ffi.TextPage                   { return 0 }
func (UnimplementedCore) FPDFText_ClosePage(ffi.TextPage)                           {}
func (UnimplementedCore) FPDFText_CountChars(ffi.TextPage) int32                    { return 0 }
func (UnimplementedCore) FPDFText_GetText(ffi.TextPage, int32, int32, []byte) int32 { return 0 }
func (UnimplementedCore) FPDFText_GetUnicode(ffi.TextPage, int32) uint32            { return 0 }
func (UnimplementedCore) FPDFText_GetFontSize(ffi.TextPage, int32) float64          { return 0 }
func (UnimplementedCore) FPDFText_GetFontWeight(ffi.TextPage, int32) int32          { return -1 }
func (UnimplementedCore) FPDFText_GetFontInfo(ffi.TextPage, int32, []byte, *int32) uint64 {
	return 0
}
func (UnimplementedCore) FPDFText_GetCharBox(ffi.TextPage, int32, *float64, *float64, *float64, *float64) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFText_GetLooseCharBox(ffi.TextPage, int32, *ffi.RectF) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFText_GetCharOrigin(ffi.TextPage, int32, *float64, *float64) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFText_GetCharAngle(ffi.TextPage, int32) float32    { return -1 }
func (UnimplementedCore) FPDFText_CountRects(ffi.TextPage, int32, int32) int32 { return 0 }
func (UnimplementedCore) FPDFText_GetRect(ffi.TextPage, int32, *float64, *float64, *float64, *float64) ffi.Bool {
	return ffi.False
}
func (UnimplementedCore) FPDFText_GetBoundedText(ffi.TextPage, float64, float64, float64, float64, []byte) int32 {
	return 0
}
func (UnimplementedCore) FPDFText_GetCharIndexAtPos(ffi.TextPage, float64, float64, float64, float64) int32 {
	return -1
}
func (UnimplementedCore) FPDFText_FindStart(ffi.TextPage, string, uint64, int32) ffi.SearchHandle {
	return 0
}
func (UnimplementedCore) FPDFText_FindNext(ffi.SearchHandle) ffi.Bool       { return ffi.False }
func (UnimplementedCore) FPDFText_FindPrev(ffi.SearchHandle) ffi.Bool       { return ffi.False }
func (UnimplementedCore) FPDFText_GetSchResultIndex(ffi.SearchHandle) int32 { return 0 }
func (UnimplementedCore) FPDFText_GetSchCount(ffi.SearchHandle) int32       { return 0 }
func (UnimplementedCore) FPDFText_FindClose(ffi.SearchHandle)               {}
func (UnimplementedCore) FPDFLink_LoadWebLinks(ffi.TextPage) ffi.PageLink   { return 0 }
func (UnimplementedCore) FPDFLink_CloseWebLinks(ffi.PageLink)               {}
func (UnimplementedCore) FPDFLink_CountWebLinks(ffi.PageLink) int32         { return 0 }
func (UnimplementedCore) FPDFLink_GetURL(ffi.PageLink, int32, []byte) int32 { return 0 }
func (UnimplementedCore) FPDFLink_CountRects(ffi.PageLink, int32) int32     { return 0 }
func (UnimplementedCore) FPDFLink_GetRect(ffi.PageLink, int32, int32, *float64, *float64, *float64, *float64) ffi.Bool {
	return ffi.False
}

var _ Core = UnimplementedCore{}

// UnimplementedExtended provides failure-sentinel defaults for every entry
// point in Bindings outside Core.
type UnimplementedExtended struct{}

func (UnimplementedExtended) FPDF_CreateNewDocument() ffi.Document                        { return 0 }
func (UnimplementedExtended) FPDFPage_New(ffi.Document, int32, float64, float64) ffi.Page { return 0 }
func (UnimplementedExtended) FPDFPage_Delete(ffi.Document, int32)                         {}
func (UnimplementedExtended) FPDF_ImportPages(ffi.Document, ffi.Document, string, int32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDF_ImportPagesByIndex(ffi.Document, ffi.Document, []int32, int32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDF_ImportNPagesToOne(ffi.Document, float32, float32, uint64, uint64) ffi.Document {
	return 0
}
func (UnimplementedExtended) FPDFPage_GenerateContent(ffi.Page) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFPage_Flatten(ffi.Page, int32) int32     { return 0 }

func (UnimplementedExtended) FPDFPage_CountObjects(ffi.Page) int32              { return 0 }
func (UnimplementedExtended) FPDFPage_GetObject(ffi.Page, int32) ffi.PageObject { return 0 }
func (UnimplementedExtended) FPDFPage_InsertObject(ffi.Page, ffi.PageObject)    {}
func (UnimplementedExtended) FPDFPage_RemoveObject(ffi.Page, ffi.PageObject) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_Destroy(ffi.PageObject) {}
func (UnimplementedExtended) FPDFPageObj_GetType(ffi.PageObject) ffi.ObjectType {
	return ffi.ObjectUnknown
}
func (UnimplementedExtended) FPDFPageObj_GetBounds(ffi.PageObject, *float32, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetMatrix(ffi.PageObject, *ffi.Matrix) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetMatrix(ffi.PageObject, *ffi.Matrix) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_Transform(ffi.PageObject, float64, float64, float64, float64, float64, float64) {
}
func (UnimplementedExtended) FPDFPageObj_GetFillColor(ffi.PageObject, *uint32, *uint32, *uint32, *uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetFillColor(ffi.PageObject, uint32, uint32, uint32, uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetStrokeColor(ffi.PageObject, *uint32, *uint32, *uint32, *uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetStrokeColor(ffi.PageObject, uint32, uint32, uint32, uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetStrokeWidth(ffi.PageObject, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetStrokeWidth(ffi.PageObject, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetLineJoin(ffi.PageObject) ffi.LineJoin {
	return ffi.LineJoinMiter
}
func (UnimplementedExtended) FPDFPageObj_SetLineJoin(ffi.PageObject, ffi.LineJoin) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetLineCap(ffi.PageObject) ffi.LineCap {
	return ffi.LineCapButt
}
func (UnimplementedExtended) FPDFPageObj_SetLineCap(ffi.PageObject, ffi.LineCap) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetBlendMode(ffi.PageObject, string) {}
func (UnimplementedExtended) FPDFPageObj_HasTransparency(ffi.PageObject) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetDashCount(ffi.PageObject) int32 { return 0 }
func (UnimplementedExtended) FPDFPageObj_GetDashArray(ffi.PageObject, []float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetDashArray(ffi.PageObject, []float32, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_GetDashPhase(ffi.PageObject, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_SetDashPhase(ffi.PageObject, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPageObj_CreateNewPath(float32, float32) ffi.PageObject { return 0 }
func (UnimplementedExtended) FPDFPageObj_CreateNewRect(float32, float32, float32, float32) ffi.PageObject {
	return 0
}
func (UnimplementedExtended) FPDFPageObj_NewTextObj(ffi.Document, string, float32) ffi.PageObject {
	return 0
}
func (UnimplementedExtended) FPDFPageObj_NewImageObj(ffi.Document) ffi.PageObject { return 0 }
func (UnimplementedExtended) FPDFFormObj_CountObjects(ffi.PageObject) int32       { return 0 }
func (UnimplementedExtended) FPDFFormObj_GetObject(ffi.PageObject, int32) ffi.PageObject {
	return 0
}

func (UnimplementedExtended) FPDFPath_MoveTo(ffi.PageObject, float32, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPath_LineTo(ffi.PageObject, float32, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPath_BezierTo(ffi.PageObject, float32, float32, float32, float32, float32, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPath_Close(ffi.PageObject) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFPath_SetDrawMode(ffi.PageObject, ffi.PathFillMode, ffi.Bool) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPath_GetDrawMode(ffi.PageObject, *ffi.PathFillMode, *ffi.Bool) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPath_CountSegments(ffi.PageObject) int32 { return -1 }
func (UnimplementedExtended) FPDFPath_GetPathSegment(ffi.PageObject, int32) ffi.PathSegment {
	return 0
}
func (UnimplementedExtended) FPDFPathSegment_GetPoint(ffi.PathSegment, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFPathSegment_GetType(ffi.PathSegment) ffi.PathSegmentType {
	return ffi.SegmentUnknown
}
func (UnimplementedExtended) FPDFPathSegment_GetClose(ffi.PathSegment) ffi.Bool { return ffi.False }

func (UnimplementedExtended) FPDFTextObj_GetFont(ffi.PageObject) ffi.Font { return 0 }
func (UnimplementedExtended) FPDFTextObj_GetFontSize(ffi.PageObject, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFTextObj_GetText(ffi.PageObject, ffi.TextPage, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFTextObj_GetTextRenderMode(ffi.PageObject) ffi.TextRenderMode {
	return ffi.TextRenderModeUnknown
}
func (UnimplementedExtended) FPDFTextObj_SetTextRenderMode(ffi.PageObject, ffi.TextRenderMode) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFText_SetText(ffi.PageObject, string) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFText_LoadFont(ffi.Document, []byte, int32, ffi.Bool) ffi.Font {
	return 0
}
func (UnimplementedExtended) FPDFText_LoadStandardFont(ffi.Document, string) ffi.Font { return 0 }

func (UnimplementedExtended) FPDFFont_Close(ffi.Font)                          {}
func (UnimplementedExtended) FPDFFont_GetBaseFontName(ffi.Font, []byte) uint64 { return 0 }
func (UnimplementedExtended) FPDFFont_GetFamilyName(ffi.Font, []byte) uint64   { return 0 }
func (UnimplementedExtended) FPDFFont_GetFontData(ffi.Font, []byte, *uint64) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFFont_GetFlags(ffi.Font) int32                  { return -1 }
func (UnimplementedExtended) FPDFFont_GetWeight(ffi.Font) int32                 { return -1 }
func (UnimplementedExtended) FPDFFont_GetItalicAngle(ffi.Font, *int32) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFFont_GetAscent(ffi.Font, float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFFont_GetDescent(ffi.Font, float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFFont_GetGlyphWidth(ffi.Font, uint32, float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFFont_GetIsEmbedded(ffi.Font) int32 { return -1 }
func (UnimplementedExtended) FPDFFont_GetGlyphPath(ffi.Font, uint32, float32) ffi.GlyphPath {
	return 0
}
func (UnimplementedExtended) FPDFGlyphPath_CountGlyphSegments(ffi.GlyphPath) int32 { return -1 }
func (UnimplementedExtended) FPDFGlyphPath_GetGlyphPathSegment(ffi.GlyphPath, int32) ffi.PathSegment {
	return 0
}

func (UnimplementedExtended) FPDFImageObj_GetBitmap(ffi.PageObject) ffi.Bitmap { return 0 }
func (UnimplementedExtended) FPDFImageObj_GetRenderedBitmap(ffi.Document, ffi.Page, ffi.PageObject) ffi.Bitmap {
	return 0
}
func (UnimplementedExtended) FPDFImageObj_GetImageDataDecoded(ffi.PageObject, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFImageObj_GetImageDataRaw(ffi.PageObject, []byte) uint64 { return 0 }
func (UnimplementedExtended) FPDFImageObj_GetImageFilterCount(ffi.PageObject) int32      { return 0 }
func (UnimplementedExtended) FPDFImageObj_GetImageFilter(ffi.PageObject, int32, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFImageObj_GetImageMetadata(ffi.PageObject, ffi.Page, *ffi.ImageMetadata) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFImageObj_SetBitmap(*ffi.Page, int32, ffi.PageObject, ffi.Bitmap) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFImageObj_SetMatrix(ffi.PageObject, float64, float64, float64, float64, float64, float64) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFImageObj_LoadJpegFile(*ffi.Page, int32, ffi.PageObject, []byte) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFImageObj_LoadJpegFileInline(*ffi.Page, int32, ffi.PageObject, []byte) ffi.Bool {
	return ffi.False
}

func (UnimplementedExtended) FPDFPage_GetAnnotCount(ffi.Page) int32                 { return 0 }
func (UnimplementedExtended) FPDFPage_GetAnnot(ffi.Page, int32) ffi.Annotation      { return 0 }
func (UnimplementedExtended) FPDFPage_GetAnnotIndex(ffi.Page, ffi.Annotation) int32 { return -1 }
func (UnimplementedExtended) FPDFPage_CreateAnnot(ffi.Page, ffi.AnnotationSubtype) ffi.Annotation {
	return 0
}
func (UnimplementedExtended) FPDFPage_RemoveAnnot(ffi.Page, int32) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFPage_CloseAnnot(ffi.Annotation)            {}
func (UnimplementedExtended) FPDFAnnot_GetSubtype(ffi.Annotation) ffi.AnnotationSubtype {
	return ffi.AnnotUnknown
}
func (UnimplementedExtended) FPDFAnnot_IsSupportedSubtype(ffi.AnnotationSubtype) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetRect(ffi.Annotation, *ffi.RectF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_SetRect(ffi.Annotation, *ffi.RectF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetColor(ffi.Annotation, ffi.ColorType, *uint32, *uint32, *uint32, *uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_SetColor(ffi.Annotation, ffi.ColorType, uint32, uint32, uint32, uint32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetFlags(ffi.Annotation) ffi.AnnotationFlags {
	return ffi.AnnotFlagNone
}
func (UnimplementedExtended) FPDFAnnot_SetFlags(ffi.Annotation, ffi.AnnotationFlags) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetStringValue(ffi.Annotation, string, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFAnnot_SetStringValue(ffi.Annotation, string, string) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetNumberValue(ffi.Annotation, string, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_HasKey(ffi.Annotation, string) ffi.Bool { return ffi.False }
func (UnimplementedExtended) FPDFAnnot_GetValueType(ffi.Annotation, string) ffi.ObjectValueType {
	return ffi.ValueUnknown
}
func (UnimplementedExtended) FPDFAnnot_GetAP(ffi.Annotation, ffi.AppearanceMode, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFAnnot_SetAP(ffi.Annotation, ffi.AppearanceMode, string) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_CountAttachmentPoints(ffi.Annotation) uint64 { return 0 }
func (UnimplementedExtended) FPDFAnnot_HasAttachmentPoints(ffi.Annotation) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetAttachmentPoints(ffi.Annotation, uint64, *ffi.QuadPointsF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_SetAttachmentPoints(ffi.Annotation, uint64, *ffi.QuadPointsF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_AppendAttachmentPoints(ffi.Annotation, *ffi.QuadPointsF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetObjectCount(ffi.Annotation) int32            { return 0 }
func (UnimplementedExtended) FPDFAnnot_GetObject(ffi.Annotation, int32) ffi.PageObject { return 0 }
func (UnimplementedExtended) FPDFAnnot_AppendObject(ffi.Annotation, ffi.PageObject) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_UpdateObject(ffi.Annotation, ffi.PageObject) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_RemoveObject(ffi.Annotation, int32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetInkListCount(ffi.Annotation) uint64 { return 0 }
func (UnimplementedExtended) FPDFAnnot_GetInkListPath(ffi.Annotation, uint64, []ffi.PointF) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFAnnot_AddInkStroke(ffi.Annotation, []ffi.PointF) int32 { return -1 }
func (UnimplementedExtended) FPDFAnnot_RemoveInkList(ffi.Annotation) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetVertices(ffi.Annotation, []ffi.PointF) uint64 { return 0 }
func (UnimplementedExtended) FPDFAnnot_GetLine(ffi.Annotation, *ffi.PointF, *ffi.PointF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetBorder(ffi.Annotation, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_SetBorder(ffi.Annotation, float32, float32, float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAnnot_GetLink(ffi.Annotation) ffi.Link        { return 0 }
func (UnimplementedExtended) FPDFAnnot_SetURI(ffi.Annotation, string) ffi.Bool { return ffi.False }

func (UnimplementedExtended) FPDFLink_GetLinkAtPoint(ffi.Page, float64, float64) ffi.Link { return 0 }
func (UnimplementedExtended) FPDFLink_GetLinkZOrderAtPoint(ffi.Page, float64, float64) int32 {
	return -1
}
func (UnimplementedExtended) FPDFLink_GetDest(ffi.Document, ffi.Link) ffi.Dest    { return 0 }
func (UnimplementedExtended) FPDFLink_GetAction(ffi.Link) ffi.Action              { return 0 }
func (UnimplementedExtended) FPDFLink_GetAnnot(ffi.Page, ffi.Link) ffi.Annotation { return 0 }
func (UnimplementedExtended) FPDFLink_GetAnnotRect(ffi.Link, *ffi.RectF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFLink_CountQuadPoints(ffi.Link) int32 { return 0 }
func (UnimplementedExtended) FPDFLink_GetQuadPoints(ffi.Link, int32, *ffi.QuadPointsF) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFLink_Enumerate(ffi.Page, *int32, *ffi.Link) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAction_GetType(ffi.Action) ffi.ActionType {
	return ffi.ActionUnsupported
}
func (UnimplementedExtended) FPDFAction_GetDest(ffi.Document, ffi.Action) ffi.Dest { return 0 }
func (UnimplementedExtended) FPDFAction_GetFilePath(ffi.Action, []byte) uint64     { return 0 }
func (UnimplementedExtended) FPDFAction_GetURIPath(ffi.Document, ffi.Action, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFDest_GetDestPageIndex(ffi.Document, ffi.Dest) int32 { return -1 }
func (UnimplementedExtended) FPDFDest_GetLocationInPage(ffi.Dest, *ffi.Bool, *ffi.Bool, *ffi.Bool, *float32, *float32, *float32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFDest_GetView(ffi.Dest, *uint64, []float32) uint64 { return 0 }

func (UnimplementedExtended) FPDFBookmark_GetFirstChild(ffi.Document, ffi.Bookmark) ffi.Bookmark {
	return 0
}
func (UnimplementedExtended) FPDFBookmark_GetNextSibling(ffi.Document, ffi.Bookmark) ffi.Bookmark {
	return 0
}
func (UnimplementedExtended) FPDFBookmark_GetTitle(ffi.Bookmark, []byte) uint64        { return 0 }
func (UnimplementedExtended) FPDFBookmark_GetCount(ffi.Bookmark) int32                 { return 0 }
func (UnimplementedExtended) FPDFBookmark_Find(ffi.Document, string) ffi.Bookmark      { return 0 }
func (UnimplementedExtended) FPDFBookmark_GetAction(ffi.Bookmark) ffi.Action           { return 0 }
func (UnimplementedExtended) FPDFBookmark_GetDest(ffi.Document, ffi.Bookmark) ffi.Dest { return 0 }

func (UnimplementedExtended) FPDFDoc_GetAttachmentCount(ffi.Document) int32             { return 0 }
func (UnimplementedExtended) FPDFDoc_GetAttachment(ffi.Document, int32) ffi.Attachment  { return 0 }
func (UnimplementedExtended) FPDFDoc_AddAttachment(ffi.Document, string) ffi.Attachment { return 0 }
func (UnimplementedExtended) FPDFDoc_DeleteAttachment(ffi.Document, int32) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAttachment_GetName(ffi.Attachment, []byte) uint64 { return 0 }
func (UnimplementedExtended) FPDFAttachment_GetFile(ffi.Attachment, []byte, *uint64) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAttachment_SetFile(ffi.Attachment, ffi.Document, []byte) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAttachment_GetStringValue(ffi.Attachment, string, []byte) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFAttachment_SetStringValue(ffi.Attachment, string, string) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAttachment_HasKey(ffi.Attachment, string) ffi.Bool {
	return ffi.False
}
func (UnimplementedExtended) FPDFAttachment_GetValueType(ffi.Attachment, string) ffi.ObjectValueType {
	return ffi.ValueUnknown
}

func (UnimplementedExtended) FPDF_GetSignatureCount(ffi.Document) int32                 { return -1 }
func (UnimplementedExtended) FPDF_GetSignatureObject(ffi.Document, int32) ffi.Signature { return 0 }
func (UnimplementedExtended) FPDFSignatureObj_GetContents(ffi.Signature, []byte) uint64 { return 0 }
func (UnimplementedExtended) FPDFSignatureObj_GetByteRange(ffi.Signature, []int32) uint64 {
	return 0
}
func (UnimplementedExtended) FPDFSignatureObj_GetSubFilter(ffi.Signature, []byte) uint64 { return 0 }
func (UnimplementedExtended) FPDFSignatureObj_GetReason(ffi.Signature, []byte) uint64    { return 0 }
func (UnimplementedExtended) FPDFSignatureObj_GetTime(ffi.Signature, []byte) uint64      { return 0 }
func (UnimplementedExtended) FPDFSignatureObj_GetDocMDPPermission(ffi.Signature) uint32  { return 0 }

// Unimplemented provides failure-sentinel defaults for the whole Bindings
// contract.
type Unimplemented struct {
	UnimplementedCore
	UnimplementedExtended
}

var _ Bindings = Unimplemented{}
