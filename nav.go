package pdfium

import (
	"fmt"
	"iter"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
	"github.com/wudi/pdfium/geo"
)

// Link wraps one page link annotation's link object.
type Link struct {
	p      *Pdfium
	handle ffi.Link
}

// LinkAt returns the link under a page-space point, or nil when there is
// none.
func (pg *Page) LinkAt(x, y float64) *Link {
	handle := pg.doc.p.b.FPDFLink_GetLinkAtPoint(pg.handle, x, y)
	if handle == 0 {
		return nil
	}
	return &Link{p: pg.doc.p, handle: handle}
}

// LinkZOrderAt returns the z-order of the link under a page-space point, or
// -1 when there is none.
func (pg *Page) LinkZOrderAt(x, y float64) int {
	return int(pg.doc.p.b.FPDFLink_GetLinkZOrderAtPoint(pg.handle, x, y))
}

// Links iterates the page's links through the native enumeration protocol.
func (pg *Page) Links() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		var pos int32
		var handle ffi.Link
		for bindings.IsTrue(pg.doc.p.b.FPDFLink_Enumerate(pg.handle, &pos, &handle)) {
			if handle == 0 {
				continue
			}
			if !yield(&Link{p: pg.doc.p, handle: handle}) {
				return
			}
		}
	}
}

// Handle exposes the raw native handle.
func (l *Link) Handle() ffi.Link { return l.handle }

// Dest returns the link's destination, resolving GoTo actions, or nil when
// it has none.
func (l *Link) Dest(d *Document) *Dest {
	handle := l.p.b.FPDFLink_GetDest(d.handle, l.handle)
	if handle == 0 {
		return nil
	}
	return &Dest{p: l.p, doc: d, handle: handle}
}

// Action returns the link's action, or nil when it has none.
func (l *Link) Action() *Action {
	handle := l.p.b.FPDFLink_GetAction(l.handle)
	if handle == 0 {
		return nil
	}
	return &Action{p: l.p, handle: handle}
}

// Annotation returns the link's annotation on the given page. The caller
// must close it.
func (l *Link) Annotation(pg *Page) (*Annotation, error) {
	handle := l.p.b.FPDFLink_GetAnnot(pg.handle, l.handle)
	if handle == 0 {
		return nil, fmt.Errorf("link annotation: %w", l.p.extendedError())
	}
	return &Annotation{p: l.p, handle: handle}, nil
}

// Rect returns the link's annotation rectangle.
func (l *Link) Rect() (geo.Rect, error) {
	var r ffi.RectF
	if !bindings.IsTrue(l.p.b.FPDFLink_GetAnnotRect(l.handle, &r)) {
		return geo.Rect{}, fmt.Errorf("link rect: %w", l.p.extendedError())
	}
	return geo.RectFromFFI(r), nil
}

// QuadPoints returns a live view over the link's quad points.
func (l *Link) QuadPoints() Collection[geo.Quad] {
	return NewCollection(
		func() int { return int(l.p.b.FPDFLink_CountQuadPoints(l.handle)) },
		func(i int) (geo.Quad, error) {
			var q ffi.QuadPointsF
			if !bindings.IsTrue(l.p.b.FPDFLink_GetQuadPoints(l.handle, int32(i), &q)) {
				return geo.Quad{}, fmt.Errorf("quad %d: %w", i, l.p.extendedError())
			}
			return geo.QuadFromFFI(q), nil
		},
	)
}

// Action wraps a PDF action.
type Action struct {
	p      *Pdfium
	handle ffi.Action
}

// Handle exposes the raw native handle.
func (a *Action) Handle() ffi.Action { return a.handle }

// Type returns the action kind.
func (a *Action) Type() ffi.ActionType { return a.p.b.FPDFAction_GetType(a.handle) }

// Dest returns the action's destination for GoTo-family actions, or nil.
func (a *Action) Dest(d *Document) *Dest {
	handle := a.p.b.FPDFAction_GetDest(d.handle, a.handle)
	if handle == 0 {
		return nil
	}
	return &Dest{p: a.p, doc: d, handle: handle}
}

// FilePath returns the target of Launch and RemoteGoTo actions.
func (a *Action) FilePath() (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return a.p.b.FPDFAction_GetFilePath(a.handle, buf)
	})
}

// URIPath returns the target of URI actions.
func (a *Action) URIPath(d *Document) (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return a.p.b.FPDFAction_GetURIPath(d.handle, a.handle, buf)
	})
}

// Dest wraps a PDF destination.
type Dest struct {
	p      *Pdfium
	doc    *Document
	handle ffi.Dest
}

// Handle exposes the raw native handle.
func (ds *Dest) Handle() ffi.Dest { return ds.handle }

// PageIndex returns the zero-based target page, or -1 on failure.
func (ds *Dest) PageIndex() int {
	return int(ds.p.b.FPDFDest_GetDestPageIndex(ds.doc.handle, ds.handle))
}

// Location is a destination's target position on its page; each coordinate
// is only meaningful when its Has flag is set.
type Location struct {
	HasX, HasY, HasZoom bool
	X, Y, Zoom          float32
}

// Location returns the in-page target position for XYZ destinations.
func (ds *Dest) Location() (Location, error) {
	var hasX, hasY, hasZoom ffi.Bool
	var loc Location
	ok := ds.p.b.FPDFDest_GetLocationInPage(ds.handle, &hasX, &hasY, &hasZoom, &loc.X, &loc.Y, &loc.Zoom)
	if !bindings.IsTrue(ok) {
		return Location{}, fmt.Errorf("dest location: %w", ds.p.extendedError())
	}
	loc.HasX = bindings.IsTrue(hasX)
	loc.HasY = bindings.IsTrue(hasY)
	loc.HasZoom = bindings.IsTrue(hasZoom)
	return loc, nil
}

// View returns the destination's view fit type (PDFDEST_VIEW_*) and its
// parameters.
func (ds *Dest) View() (fitType uint64, params []float32) {
	var n uint64
	// Four parameters is the PDF maximum (FitR).
	buf := make([]float32, 4)
	fitType = ds.p.b.FPDFDest_GetView(ds.handle, &n, buf)
	if n > 4 {
		n = 4
	}
	return fitType, buf[:n]
}

// Bookmark wraps one node of the document outline tree. A zero handle is
// never exposed; absent relatives are nil.
type Bookmark struct {
	p      *Pdfium
	doc    *Document
	handle ffi.Bookmark
}

// RootBookmark returns the first top-level outline entry, or nil when the
// document has no outline.
func (d *Document) RootBookmark() *Bookmark {
	handle := d.p.b.FPDFBookmark_GetFirstChild(d.handle, 0)
	if handle == 0 {
		return nil
	}
	return &Bookmark{p: d.p, doc: d, handle: handle}
}

// FindBookmark locates the first outline entry with the given title, or nil.
func (d *Document) FindBookmark(title string) *Bookmark {
	handle := d.p.b.FPDFBookmark_Find(d.handle, title)
	if handle == 0 {
		return nil
	}
	return &Bookmark{p: d.p, doc: d, handle: handle}
}

// Handle exposes the raw native handle.
func (bm *Bookmark) Handle() ffi.Bookmark { return bm.handle }

// Title returns the outline entry's display text.
func (bm *Bookmark) Title() (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return bm.p.b.FPDFBookmark_GetTitle(bm.handle, buf)
	})
}

// ChildCount returns the number of direct children. Negative means the
// children exist but the entry is closed by default.
func (bm *Bookmark) ChildCount() int {
	return int(bm.p.b.FPDFBookmark_GetCount(bm.handle))
}

// FirstChild returns the entry's first child, or nil.
func (bm *Bookmark) FirstChild() *Bookmark {
	handle := bm.p.b.FPDFBookmark_GetFirstChild(bm.doc.handle, bm.handle)
	if handle == 0 {
		return nil
	}
	return &Bookmark{p: bm.p, doc: bm.doc, handle: handle}
}

// NextSibling returns the entry's next sibling, or nil.
func (bm *Bookmark) NextSibling() *Bookmark {
	handle := bm.p.b.FPDFBookmark_GetNextSibling(bm.doc.handle, bm.handle)
	if handle == 0 {
		return nil
	}
	return &Bookmark{p: bm.p, doc: bm.doc, handle: handle}
}

// Action returns the entry's action, or nil.
func (bm *Bookmark) Action() *Action {
	handle := bm.p.b.FPDFBookmark_GetAction(bm.handle)
	if handle == 0 {
		return nil
	}
	return &Action{p: bm.p, handle: handle}
}

// Dest returns the entry's destination, or nil.
func (bm *Bookmark) Dest() *Dest {
	handle := bm.p.b.FPDFBookmark_GetDest(bm.doc.handle, bm.handle)
	if handle == 0 {
		return nil
	}
	return &Dest{p: bm.p, doc: bm.doc, handle: handle}
}
