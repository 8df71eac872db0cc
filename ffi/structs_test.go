package ffi

import (
	"testing"
	"unsafe"
)

// These structs are passed to the native library by pointer, so their Go
// layout must match the C declarations byte for byte.
func TestStructLayouts(t *testing.T) {
	if got := unsafe.Sizeof(Matrix{}); got != 24 {
		t.Fatalf("FS_MATRIX size: got %d, want 24", got)
	}
	if got := unsafe.Sizeof(RectF{}); got != 16 {
		t.Fatalf("FS_RECTF size: got %d, want 16", got)
	}
	if got := unsafe.Sizeof(SizeF{}); got != 8 {
		t.Fatalf("FS_SIZEF size: got %d, want 8", got)
	}
	if got := unsafe.Sizeof(PointF{}); got != 8 {
		t.Fatalf("FS_POINTF size: got %d, want 8", got)
	}
	if got := unsafe.Sizeof(QuadPointsF{}); got != 32 {
		t.Fatalf("FS_QUADPOINTSF size: got %d, want 32", got)
	}
}

// FPDF_IMAGEOBJ_METADATA is seven 4-byte fields with no padding;
// bits_per_pixel is an unsigned int in the header, not a short.
func TestImageMetadataLayout(t *testing.T) {
	var md ImageMetadata
	if got := unsafe.Sizeof(md); got != 28 {
		t.Fatalf("FPDF_IMAGEOBJ_METADATA size: got %d, want 28", got)
	}
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"width", unsafe.Offsetof(md.Width), 0},
		{"height", unsafe.Offsetof(md.Height), 4},
		{"horizontal_dpi", unsafe.Offsetof(md.HorizontalDPI), 8},
		{"vertical_dpi", unsafe.Offsetof(md.VerticalDPI), 12},
		{"bits_per_pixel", unsafe.Offsetof(md.BitsPerPixel), 16},
		{"colorspace", unsafe.Offsetof(md.Colorspace), 20},
		{"marked_content_id", unsafe.Offsetof(md.MarkedContentID), 24},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Fatalf("%s offset: got %d, want %d", f.name, f.got, f.want)
		}
	}
	if got := unsafe.Sizeof(md.BitsPerPixel); got != 4 {
		t.Fatalf("bits_per_pixel width: got %d, want 4", got)
	}
}
