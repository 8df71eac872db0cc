package ffi

// ObjectType is the FPDF_PAGEOBJ_* value space returned by FPDFPageObj_GetType.
type ObjectType int32

const (
	ObjectUnknown ObjectType = 0
	ObjectText    ObjectType = 1
	ObjectPath    ObjectType = 2
	ObjectImage   ObjectType = 3
	ObjectShading ObjectType = 4
	ObjectForm    ObjectType = 5
)

// AnnotationSubtype is the FPDF_ANNOT_* value space.
type AnnotationSubtype int32

const (
	AnnotUnknown        AnnotationSubtype = 0
	AnnotText           AnnotationSubtype = 1
	AnnotLink           AnnotationSubtype = 2
	AnnotFreeText       AnnotationSubtype = 3
	AnnotLine           AnnotationSubtype = 4
	AnnotSquare         AnnotationSubtype = 5
	AnnotCircle         AnnotationSubtype = 6
	AnnotPolygon        AnnotationSubtype = 7
	AnnotPolyline       AnnotationSubtype = 8
	AnnotHighlight      AnnotationSubtype = 9
	AnnotUnderline      AnnotationSubtype = 10
	AnnotSquiggly       AnnotationSubtype = 11
	AnnotStrikeout      AnnotationSubtype = 12
	AnnotStamp          AnnotationSubtype = 13
	AnnotCaret          AnnotationSubtype = 14
	AnnotInk            AnnotationSubtype = 15
	AnnotPopup          AnnotationSubtype = 16
	AnnotFileAttachment AnnotationSubtype = 17
	AnnotSound          AnnotationSubtype = 18
	AnnotMovie          AnnotationSubtype = 19
	AnnotWidget         AnnotationSubtype = 20
	AnnotScreen         AnnotationSubtype = 21
	AnnotPrinterMark    AnnotationSubtype = 22
	AnnotTrapNet        AnnotationSubtype = 23
	AnnotWatermark      AnnotationSubtype = 24
	AnnotThreeD         AnnotationSubtype = 25
	AnnotRichMedia      AnnotationSubtype = 26
	AnnotXFAWidget      AnnotationSubtype = 27
	AnnotRedact         AnnotationSubtype = 28
)

// AnnotationFlags is the FPDF_ANNOT_FLAG_* bit set.
type AnnotationFlags int32

const (
	AnnotFlagNone         AnnotationFlags = 0
	AnnotFlagInvisible    AnnotationFlags = 1 << 0
	AnnotFlagHidden       AnnotationFlags = 1 << 1
	AnnotFlagPrint        AnnotationFlags = 1 << 2
	AnnotFlagNoZoom       AnnotationFlags = 1 << 3
	AnnotFlagNoRotate     AnnotationFlags = 1 << 4
	AnnotFlagNoView       AnnotationFlags = 1 << 5
	AnnotFlagReadOnly     AnnotationFlags = 1 << 6
	AnnotFlagLocked       AnnotationFlags = 1 << 7
	AnnotFlagToggleNoView AnnotationFlags = 1 << 8
)

// ColorType selects which annotation color FPDFAnnot_GetColor operates on
// (FPDFANNOT_COLORTYPE).
type ColorType int32

const (
	ColorTypeColor         ColorType = 0
	ColorTypeInteriorColor ColorType = 1
)

// AppearanceMode is the FPDF_ANNOT_APPEARANCEMODE value space.
type AppearanceMode int32

const (
	AppearanceModeNormal   AppearanceMode = 0
	AppearanceModeRollover AppearanceMode = 1
	AppearanceModeDown     AppearanceMode = 2
)

// BitmapFormat is the FPDFBitmap_* pixel format value space.
type BitmapFormat int32

const (
	BitmapUnknown BitmapFormat = 0
	BitmapGray    BitmapFormat = 1 // 8bpp grayscale
	BitmapBGR     BitmapFormat = 2 // 24bpp BGR
	BitmapBGRx    BitmapFormat = 3 // 32bpp BGR, high byte unused
	BitmapBGRA    BitmapFormat = 4 // 32bpp BGRA
)

// RenderFlags is the FPDF_RenderPageBitmap flag bit set.
type RenderFlags int32

const (
	RenderAnnotations       RenderFlags = 0x0001 // FPDF_ANNOT
	RenderLCDText           RenderFlags = 0x0002
	RenderNoNativeText      RenderFlags = 0x0004
	RenderGrayscale         RenderFlags = 0x0008
	RenderReverseByteOrder  RenderFlags = 0x0010
	RenderDebugInfo         RenderFlags = 0x0080
	RenderNoCatch           RenderFlags = 0x0100
	RenderLimitedImageCache RenderFlags = 0x0200
	RenderForceHalftone     RenderFlags = 0x0400
	RenderForPrinting       RenderFlags = 0x0800
	RenderNoSmoothText      RenderFlags = 0x1000
	RenderNoSmoothImage     RenderFlags = 0x2000
	RenderNoSmoothPath      RenderFlags = 0x4000
)

// SaveFlags is the FPDF_SaveAsCopy flag value space.
type SaveFlags uint64

const (
	SaveIncremental    SaveFlags = 1
	SaveNoIncremental  SaveFlags = 2
	SaveRemoveSecurity SaveFlags = 3
)

// PathSegmentType is the FPDF_SEGMENT_* value space.
type PathSegmentType int32

const (
	SegmentUnknown  PathSegmentType = -1
	SegmentLineTo   PathSegmentType = 0
	SegmentBezierTo PathSegmentType = 1
	SegmentMoveTo   PathSegmentType = 2
)

// PathFillMode is the FPDF_FILLMODE_* value space.
type PathFillMode int32

const (
	FillModeNone      PathFillMode = 0
	FillModeAlternate PathFillMode = 1
	FillModeWinding   PathFillMode = 2
)

// TextRenderMode is the FPDF_TEXTRENDERMODE_* value space.
type TextRenderMode int32

const (
	TextRenderModeUnknown        TextRenderMode = -1
	TextRenderModeFill           TextRenderMode = 0
	TextRenderModeStroke         TextRenderMode = 1
	TextRenderModeFillStroke     TextRenderMode = 2
	TextRenderModeInvisible      TextRenderMode = 3
	TextRenderModeFillClip       TextRenderMode = 4
	TextRenderModeStrokeClip     TextRenderMode = 5
	TextRenderModeFillStrokeClip TextRenderMode = 6
	TextRenderModeClip           TextRenderMode = 7
)

// LineJoin is the FPDF_LINEJOIN_* value space.
type LineJoin int32

const (
	LineJoinMiter LineJoin = 0
	LineJoinRound LineJoin = 1
	LineJoinBevel LineJoin = 2
)

// LineCap is the FPDF_LINECAP_* value space.
type LineCap int32

const (
	LineCapButt             LineCap = 0
	LineCapRound            LineCap = 1
	LineCapProjectingSquare LineCap = 2
)

// PageMode is the FPDFDoc_GetPageMode value space.
type PageMode int32

const (
	PageModeUnknown        PageMode = -1
	PageModeUseNone        PageMode = 0
	PageModeUseOutlines    PageMode = 1
	PageModeUseThumbs      PageMode = 2
	PageModeFullScreen     PageMode = 3
	PageModeUseOC          PageMode = 4
	PageModeUseAttachments PageMode = 5
)

// ActionType is the PDFACTION_* value space.
type ActionType uint64

const (
	ActionUnsupported  ActionType = 0
	ActionGoTo         ActionType = 1
	ActionRemoteGoTo   ActionType = 2
	ActionURI          ActionType = 3
	ActionLaunch       ActionType = 4
	ActionEmbeddedGoTo ActionType = 5
)

// FormType is the FPDF_GetFormType value space.
type FormType int32

const (
	FormTypeNone          FormType = 0
	FormTypeAcroForm      FormType = 1
	FormTypeXFAFull       FormType = 2
	FormTypeXFAForeground FormType = 3
)

// FormFieldType is the FPDF_FORMFIELD_* value space.
type FormFieldType int32

const (
	FormFieldUnknown     FormFieldType = 0
	FormFieldPushButton  FormFieldType = 1
	FormFieldCheckBox    FormFieldType = 2
	FormFieldRadioButton FormFieldType = 3
	FormFieldComboBox    FormFieldType = 4
	FormFieldListBox     FormFieldType = 5
	FormFieldTextField   FormFieldType = 6
	FormFieldSignature   FormFieldType = 7
)

// ObjectValueType is the FPDF_OBJECT_* value space used by dictionary value
// type queries such as FPDFAnnot_GetValueType.
type ObjectValueType int32

const (
	ValueUnknown    ObjectValueType = 0
	ValueBoolean    ObjectValueType = 1
	ValueNumber     ObjectValueType = 2
	ValueString     ObjectValueType = 3
	ValueName       ObjectValueType = 4
	ValueArray      ObjectValueType = 5
	ValueDictionary ObjectValueType = 6
	ValueStream     ObjectValueType = 7
	ValueNull       ObjectValueType = 8
	ValueReference  ObjectValueType = 9
)

// Colorspace is the FPDF_COLORSPACE_* value space reported in image metadata.
type Colorspace int32

const (
	ColorspaceUnknown    Colorspace = 0
	ColorspaceDeviceGray Colorspace = 1
	ColorspaceDeviceRGB  Colorspace = 2
	ColorspaceDeviceCMYK Colorspace = 3
	ColorspaceCalGray    Colorspace = 4
	ColorspaceCalRGB     Colorspace = 5
	ColorspaceLab        Colorspace = 6
	ColorspaceICCBased   Colorspace = 7
	ColorspaceSeparation Colorspace = 8
	ColorspaceDeviceN    Colorspace = 9
	ColorspaceIndexed    Colorspace = 10
	ColorspacePattern    Colorspace = 11
)

// FileIDType selects which document identifier FPDF_GetFileIdentifier returns.
type FileIDType int32

const (
	FileIDPermanent FileIDType = 0
	FileIDChanging  FileIDType = 1
)

// DuplexType is the FPDF_VIEWERREF_GetDuplex value space.
type DuplexType int32

const (
	DuplexUndefined    DuplexType = 0
	DuplexSimplex      DuplexType = 1
	DuplexFlipShort    DuplexType = 2
	DuplexFlipLongEdge DuplexType = 3
)

// Permissions is the bit set returned by FPDF_GetDocPermissions. Bit numbers
// follow the PDF specification (1-based), so "print" is bit 3.
type Permissions uint64

const (
	PermPrint            Permissions = 1 << 2
	PermModify           Permissions = 1 << 3
	PermCopy             Permissions = 1 << 4
	PermAnnotate         Permissions = 1 << 5
	PermFillForms        Permissions = 1 << 8
	PermExtractForAccess Permissions = 1 << 9
	PermAssemble         Permissions = 1 << 10
	PermPrintHighQuality Permissions = 1 << 11
)
