package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/geo"
)

// TextPage wraps the extracted text layer of a page.
type TextPage struct {
	page   *Page
	handle ffi.TextPage
	closed bool
}

// Handle exposes the raw native handle.
func (tp *TextPage) Handle() ffi.TextPage { return tp.handle }

// Close releases the text page. Idempotent.
func (tp *TextPage) Close() {
	if tp.closed {
		return
	}
	tp.closed = true
	tp.page.doc.p.b.FPDFText_ClosePage(tp.handle)
}

// CharCount returns the number of characters on the page, counting
// generated characters like injected spaces.
func (tp *TextPage) CharCount() int {
	return int(tp.page.doc.p.b.FPDFText_CountChars(tp.handle))
}

// Text extracts the whole page as a string.
func (tp *TextPage) Text() (string, error) {
	return tp.TextRange(0, tp.CharCount())
}

// TextRange extracts count characters starting at startIndex.
func (tp *TextPage) TextRange(startIndex, count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	// One UTF-16 unit per character plus the terminator.
	buf := make([]byte, (count+1)*2)
	n := tp.page.doc.p.b.FPDFText_GetText(tp.handle, int32(startIndex), int32(count), buf)
	if n <= 0 {
		return "", nil
	}
	return ffi.DecodeUTF16LE(buf[:n*2])
}

// CharAt returns the Unicode code point of the character at index.
func (tp *TextPage) CharAt(index int) rune {
	return rune(tp.page.doc.p.b.FPDFText_GetUnicode(tp.handle, int32(index)))
}

// FontSizeAt returns the point size of the character at index.
func (tp *TextPage) FontSizeAt(index int) float64 {
	return tp.page.doc.p.b.FPDFText_GetFontSize(tp.handle, int32(index))
}

// FontWeightAt returns the font weight of the character at index, or -1 on
// failure.
func (tp *TextPage) FontWeightAt(index int) int {
	return int(tp.page.doc.p.b.FPDFText_GetFontWeight(tp.handle, int32(index)))
}

// FontInfoAt returns the font name and flags of the character at index.
func (tp *TextPage) FontInfoAt(index int) (name string, flags int32, err error) {
	name, err = asciiValue(func(buf []byte) uint64 {
		return tp.page.doc.p.b.FPDFText_GetFontInfo(tp.handle, int32(index), buf, &flags)
	})
	return name, flags, err
}

// CharBox returns the tight bounding box of the character at index.
func (tp *TextPage) CharBox(index int) (geo.Rect, error) {
	var l, r, bm, t float64
	if !bindings.IsTrue(tp.page.doc.p.b.FPDFText_GetCharBox(tp.handle, int32(index), &l, &r, &bm, &t)) {
		return geo.Rect{}, fmt.Errorf("char box %d: %w", index, tp.page.doc.p.lastError())
	}
	return geo.Rect{Left: float32(l), Right: float32(r), Bottom: float32(bm), Top: float32(t)}, nil
}

// LooseCharBox returns the loose bounding box of the character at index,
// covering the full advance and line height.
func (tp *TextPage) LooseCharBox(index int) (geo.Rect, error) {
	var r ffi.RectF
	if !bindings.IsTrue(tp.page.doc.p.b.FPDFText_GetLooseCharBox(tp.handle, int32(index), &r)) {
		return geo.Rect{}, fmt.Errorf("loose char box %d: %w", index, tp.page.doc.p.lastError())
	}
	return geo.RectFromFFI(r), nil
}

// CharOrigin returns the baseline origin of the character at index.
func (tp *TextPage) CharOrigin(index int) (geo.Point, error) {
	var x, y float64
	if !bindings.IsTrue(tp.page.doc.p.b.FPDFText_GetCharOrigin(tp.handle, int32(index), &x, &y)) {
		return geo.Point{}, fmt.Errorf("char origin %d: %w", index, tp.page.doc.p.lastError())
	}
	return geo.Point{X: float32(x), Y: float32(y)}, nil
}

// CharAngle returns the rotation of the character at index in radians.
func (tp *TextPage) CharAngle(index int) float32 {
	return tp.page.doc.p.b.FPDFText_GetCharAngle(tp.handle, int32(index))
}

// CharIndexAtPos returns the index of the character at or near the
// page-space point, or -1 when none is within tolerance.
func (tp *TextPage) CharIndexAtPos(x, y, xTolerance, yTolerance float64) int {
	return int(tp.page.doc.p.b.FPDFText_GetCharIndexAtPos(tp.handle, x, y, xTolerance, yTolerance))
}

// Segments returns the selection rectangles covering count characters from
// startIndex. Adjacent characters on one baseline share a rectangle.
func (tp *TextPage) Segments(startIndex, count int) ([]geo.Rect, error) {
	b := tp.page.doc.p.b
	n := b.FPDFText_CountRects(tp.handle, int32(startIndex), int32(count))
	if n < 0 {
		return nil, fmt.Errorf("count rects: %w", tp.page.doc.p.lastError())
	}
	rects := make([]geo.Rect, 0, n)
	for i := int32(0); i < n; i++ {
		var l, t, r, bm float64
		if !bindings.IsTrue(b.FPDFText_GetRect(tp.handle, i, &l, &t, &r, &bm)) {
			return nil, fmt.Errorf("rect %d: %w", i, tp.page.doc.p.lastError())
		}
		rects = append(rects, geo.Rect{Left: float32(l), Top: float32(t), Right: float32(r), Bottom: float32(bm)})
	}
	return rects, nil
}

// BoundedText extracts the text inside a page-space rectangle.
func (tp *TextPage) BoundedText(r geo.Rect) (string, error) {
	b := tp.page.doc.p.b
	n := b.FPDFText_GetBoundedText(tp.handle, float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom), nil)
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, int(n)*2)
	b.FPDFText_GetBoundedText(tp.handle, float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom), buf)
	return ffi.DecodeUTF16LE(buf)
}

// Search flag bits for Find.
const (
	MatchCase        uint64 = 1
	MatchWholeWord   uint64 = 2
	MatchConsecutive uint64 = 4
)

// Search is an open text search over one text page.
type Search struct {
	tp     *TextPage
	handle ffi.SearchHandle
	closed bool
}

// Find starts a search for term from startIndex. The caller must close the
// returned search before closing the text page.
func (tp *TextPage) Find(term string, flags uint64, startIndex int) (*Search, error) {
	handle := tp.page.doc.p.b.FPDFText_FindStart(tp.handle, term, flags, int32(startIndex))
	if handle == 0 {
		return nil, fmt.Errorf("find %q: %w", term, tp.page.doc.p.lastError())
	}
	return &Search{tp: tp, handle: handle}, nil
}

// Next advances to the next match.
func (s *Search) Next() bool {
	return bindings.IsTrue(s.tp.page.doc.p.b.FPDFText_FindNext(s.handle))
}

// Prev steps back to the previous match.
func (s *Search) Prev() bool {
	return bindings.IsTrue(s.tp.page.doc.p.b.FPDFText_FindPrev(s.handle))
}

// Index returns the character index of the current match.
func (s *Search) Index() int {
	return int(s.tp.page.doc.p.b.FPDFText_GetSchResultIndex(s.handle))
}

// Count returns the character length of the current match.
func (s *Search) Count() int {
	return int(s.tp.page.doc.p.b.FPDFText_GetSchCount(s.handle))
}

// Close releases the search. Idempotent.
func (s *Search) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.tp.page.doc.p.b.FPDFText_FindClose(s.handle)
}

// WebLink is one URL detected in the page text.
type WebLink struct {
	URL   string
	Rects []geo.Rect
}

// WebLinks detects URLs in the page text.
func (tp *TextPage) WebLinks() ([]WebLink, error) {
	b := tp.page.doc.p.b
	pl := b.FPDFLink_LoadWebLinks(tp.handle)
	if pl == 0 {
		return nil, fmt.Errorf("load web links: %w", tp.page.doc.p.lastError())
	}
	defer b.FPDFLink_CloseWebLinks(pl)

	count := b.FPDFLink_CountWebLinks(pl)
	links := make([]WebLink, 0, count)
	for i := int32(0); i < count; i++ {
		n := b.FPDFLink_GetURL(pl, i, nil)
		var url string
		if n > 0 {
			buf := make([]byte, int(n)*2)
			b.FPDFLink_GetURL(pl, i, buf)
			decoded, err := ffi.DecodeUTF16LE(buf)
			if err != nil {
				return nil, fmt.Errorf("web link %d: %w", i, err)
			}
			url = decoded
		}
		nRects := b.FPDFLink_CountRects(pl, i)
		rects := make([]geo.Rect, 0, nRects)
		for j := int32(0); j < nRects; j++ {
			var l, t, r, bm float64
			if bindings.IsTrue(b.FPDFLink_GetRect(pl, i, j, &l, &t, &r, &bm)) {
				rects = append(rects, geo.Rect{Left: float32(l), Top: float32(t), Right: float32(r), Bottom: float32(bm)})
			}
		}
		links = append(links, WebLink{URL: url, Rects: rects})
	}
	return links, nil
}
