package pdfium_test

import (
	"errors"
	"image/color"
	"testing"

	pdfium "github.com/wudi/pdfium"
	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// fakeBindings overrides the handful of entry points each test exercises.
type fakeBindings struct {
	bindings.Unimplemented

	initCalls    int
	destroyCalls int
	lastError    ffi.ErrorCode

	loadDoc   ffi.Document
	meta      map[string]string
	pageCount int32

	fillColorFailAt int32
	fillColorCalls  []ffi.PageObject
	nextObj         ffi.PageObject
}

func (f *fakeBindings) FPDFPageObj_CreateNewPath(_, _ float32) ffi.PageObject {
	f.nextObj++
	return f.nextObj
}

func (f *fakeBindings) FPDF_InitLibrary()    { f.initCalls++ }
func (f *fakeBindings) FPDF_DestroyLibrary() { f.destroyCalls++ }
func (f *fakeBindings) FPDF_GetLastError() ffi.ErrorCode {
	return f.lastError
}

func (f *fakeBindings) FPDF_LoadMemDocument([]byte, string) ffi.Document {
	return f.loadDoc
}

func (f *fakeBindings) FPDF_GetPageCount(ffi.Document) int32 { return f.pageCount }

func (f *fakeBindings) FPDF_GetMetaText(_ ffi.Document, tag string, buf []byte) uint64 {
	value, ok := f.meta[tag]
	if !ok {
		return 0
	}
	encoded, err := ffi.EncodeUTF16LE(value)
	if err != nil {
		return 0
	}
	copy(buf, encoded)
	return uint64(len(encoded))
}

func (f *fakeBindings) FPDF_LoadPage(_ ffi.Document, index int32) ffi.Page {
	return ffi.Page(index + 1)
}

func (f *fakeBindings) FPDFImageObj_GetImageMetadata(_ ffi.PageObject, _ ffi.Page, md *ffi.ImageMetadata) ffi.Bool {
	*md = ffi.ImageMetadata{
		Width:           1920,
		Height:          1080,
		HorizontalDPI:   300,
		VerticalDPI:     300,
		BitsPerPixel:    65536, // needs the full unsigned int range
		Colorspace:      ffi.ColorspaceDeviceRGB,
		MarkedContentID: -1,
	}
	return ffi.True
}

func (f *fakeBindings) FPDFPageObj_SetFillColor(obj ffi.PageObject, _, _, _, _ uint32) ffi.Bool {
	f.fillColorCalls = append(f.fillColorCalls, obj)
	if f.fillColorFailAt > 0 && int32(len(f.fillColorCalls)) > f.fillColorFailAt {
		return ffi.False
	}
	return ffi.True
}

func TestCloseIsIdempotent(t *testing.T) {
	f := &fakeBindings{}
	p := pdfium.New(f)
	if f.initCalls != 1 {
		t.Fatalf("init calls after New: got %d, want 1", f.initCalls)
	}
	p.Close()
	p.Close()
	if f.destroyCalls != 1 {
		t.Fatalf("destroy calls after double Close: got %d, want 1", f.destroyCalls)
	}
}

func TestOpenAfterCloseFails(t *testing.T) {
	f := &fakeBindings{loadDoc: 7}
	p := pdfium.New(f)
	p.Close()
	if _, err := p.OpenBytes([]byte("%PDF"), ""); !errors.Is(err, pdfium.ErrClosed) {
		t.Fatalf("open after close: got %v, want ErrClosed", err)
	}
}

func TestOpenBytesClassifiesLastError(t *testing.T) {
	f := &fakeBindings{lastError: ffi.ErrPassword}
	p := pdfium.New(f)
	defer p.Close()

	_, err := p.OpenBytes([]byte("%PDF"), "wrong")
	if !errors.Is(err, bindings.ErrPassword) {
		t.Fatalf("password failure: got %v, want ErrPassword", err)
	}
}

func TestOpenBytesUnknownFailure(t *testing.T) {
	// The library signalled failure but its last-error slot claims success.
	f := &fakeBindings{lastError: ffi.ErrSuccess}
	p := pdfium.New(f)
	defer p.Close()

	_, err := p.OpenBytes([]byte("%PDF"), "")
	if !errors.Is(err, pdfium.ErrInternalUnknown) {
		t.Fatalf("silent failure: got %v, want ErrInternalUnknown", err)
	}
}

func TestDocumentMetadata(t *testing.T) {
	f := &fakeBindings{loadDoc: 7, meta: map[string]string{"Title": "Annual Report"}}
	p := pdfium.New(f)
	defer p.Close()

	doc, err := p.OpenBytes([]byte("%PDF"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	title, err := doc.Metadata("Title")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if title != "Annual Report" {
		t.Fatalf("title: got %q, want %q", title, "Annual Report")
	}
	missing, err := doc.Metadata("Subject")
	if err != nil || missing != "" {
		t.Fatalf("absent tag: got %q, %v; want empty, nil", missing, err)
	}
}

func TestPageOutOfBounds(t *testing.T) {
	f := &fakeBindings{loadDoc: 7, pageCount: 3}
	p := pdfium.New(f)
	defer p.Close()

	doc, err := p.OpenBytes([]byte("%PDF"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if _, err := doc.Page(3); !errors.Is(err, pdfium.ErrOutOfBounds) {
		t.Fatalf("page 3 of 3: got %v, want ErrOutOfBounds", err)
	}
	if _, err := doc.Page(-1); !errors.Is(err, pdfium.ErrOutOfBounds) {
		t.Fatalf("page -1: got %v, want ErrOutOfBounds", err)
	}
}

func TestFullPromotionReportsNotAvailable(t *testing.T) {
	core := struct{ bindings.UnimplementedCore }{}
	p := pdfium.New(bindings.Full(core))
	defer p.Close()

	if _, err := p.NewDocument(); !errors.Is(err, bindings.ErrNotAvailable) {
		t.Fatalf("extended op on promoted core: got %v, want ErrNotAvailable", err)
	}
}

func TestCollectionBoundsCheckedBeforeAccess(t *testing.T) {
	calls := 0
	c := pdfium.NewCollection(
		func() int { return 2 },
		func(i int) (int, error) { calls++; return i * 10, nil },
	)

	if c.Len() != 2 || c.IsEmpty() {
		t.Fatalf("len: got %d, want 2", c.Len())
	}
	if _, err := c.Get(2); !errors.Is(err, pdfium.ErrOutOfBounds) {
		t.Fatalf("get(2): got %v, want ErrOutOfBounds", err)
	}
	if calls != 0 {
		t.Fatalf("accessor ran %d times for out-of-bounds get", calls)
	}
	v, err := c.Get(1)
	if err != nil || v != 10 {
		t.Fatalf("get(1): got %d, %v", v, err)
	}
	if first, _ := c.First(); first != 0 {
		t.Fatalf("first: got %d, want 0", first)
	}
	if last, _ := c.Last(); last != 10 {
		t.Fatalf("last: got %d, want 10", last)
	}
}

func TestCollectionAllYieldsEveryElement(t *testing.T) {
	c := pdfium.NewCollection(
		func() int { return 3 },
		func(i int) (int, error) { return i, nil },
	)
	var got []int
	for i, v := range c.All() {
		if i != v {
			t.Fatalf("index %d yielded %d", i, v)
		}
		got = append(got, v)
	}
	if len(got) != 3 {
		t.Fatalf("iterated %d elements, want 3", len(got))
	}
}

func TestCollectionAllStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	c := pdfium.NewCollection(
		func() int { return 3 },
		func(i int) (int, error) {
			if i == 1 {
				return 0, boom
			}
			return i, nil
		},
	)
	count := 0
	for range c.All() {
		count++
	}
	if count != 1 {
		t.Fatalf("iterated %d elements past failure, want 1", count)
	}
}

func TestImageMetadata(t *testing.T) {
	f := &fakeBindings{loadDoc: 7, pageCount: 1}
	p := pdfium.New(f)
	defer p.Close()

	doc, err := p.OpenBytes([]byte("%PDF"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()
	pg, err := doc.Page(0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	obj, err := p.NewPath(0, 0)
	if err != nil {
		t.Fatalf("new path: %v", err)
	}

	md, err := obj.ImageMetadata(pg)
	if err != nil {
		t.Fatalf("image metadata: %v", err)
	}
	if md.Width != 1920 || md.Height != 1080 {
		t.Fatalf("dimensions: got %dx%d, want 1920x1080", md.Width, md.Height)
	}
	if md.BitsPerPixel != 65536 {
		t.Fatalf("bits per pixel: got %d, want 65536", md.BitsPerPixel)
	}
	if md.Colorspace != ffi.ColorspaceDeviceRGB {
		t.Fatalf("colorspace: got %d, want device RGB", md.Colorspace)
	}
	if md.MarkedContentID != -1 {
		t.Fatalf("marked content id: got %d, want -1", md.MarkedContentID)
	}
}

func TestGroupSetFillColorPartialFailure(t *testing.T) {
	f := &fakeBindings{loadDoc: 7, pageCount: 1, fillColorFailAt: 2}
	p := pdfium.New(f)
	defer p.Close()

	var g pdfium.Group
	for i := 0; i < 3; i++ {
		obj, err := p.NewPath(0, 0)
		if err != nil {
			t.Fatalf("new path: %v", err)
		}
		g = append(g, obj)
	}
	err := g.SetFillColor(color.RGBA{R: 255, A: 255})
	if err == nil {
		t.Fatal("expected failure on third object")
	}
	// The first two calls went through and stay applied.
	if len(f.fillColorCalls) != 3 {
		t.Fatalf("native calls: got %d, want 3", len(f.fillColorCalls))
	}
}
