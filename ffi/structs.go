package ffi

// Matrix mirrors FS_MATRIX: the 2x3 affine transform [a b c d e f] that maps
// (x, y) to (a*x + c*y + e, b*x + d*y + f). Field order and widths match the
// C struct exactly; it is passed to Pdfium by pointer.
type Matrix struct {
	A float32
	B float32
	C float32
	D float32
	E float32
	F float32
}

// RectF mirrors FS_RECTF. Pdfium's convention has Top greater than Bottom in
// page space.
type RectF struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// SizeF mirrors FS_SIZEF.
type SizeF struct {
	Width  float32
	Height float32
}

// PointF mirrors FS_POINTF.
type PointF struct {
	X float32
	Y float32
}

// QuadPointsF mirrors FS_QUADPOINTSF: the four corners of a (possibly
// rotated) quadrilateral, in the order x1,y1 .. x4,y4.
type QuadPointsF struct {
	X1 float32
	Y1 float32
	X2 float32
	Y2 float32
	X3 float32
	Y3 float32
	X4 float32
	Y4 float32
}

// ImageMetadata mirrors FPDF_IMAGEOBJ_METADATA: seven 4-byte fields, no
// padding. bits_per_pixel is declared unsigned int in the header.
type ImageMetadata struct {
	Width           uint32
	Height          uint32
	HorizontalDPI   float32
	VerticalDPI     float32
	BitsPerPixel    uint32
	Colorspace      Colorspace
	MarkedContentID int32
}

// FileWrite mirrors FPDF_FILEWRITE on LP64 platforms: a version field
// followed by a WriteBlock function pointer. The first argument passed to
// WriteBlock is a pointer to this struct, which lets the callback recover
// its context.
type FileWrite struct {
	Version    int32
	_          [4]byte // pointer alignment
	WriteBlock uintptr // int (*WriteBlock)(FPDF_FILEWRITE*, const void*, unsigned long)
}

// FileAccess mirrors FPDF_FILEACCESS on LP64 platforms.
type FileAccess struct {
	FileLen  uint64  // m_FileLen (unsigned long)
	GetBlock uintptr // int (*m_GetBlock)(void*, unsigned long, unsigned char*, unsigned long)
	Param    uintptr // m_Param, passed back as GetBlock's first argument
}
