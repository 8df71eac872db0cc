package wasm

import (
	"encoding/binary"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDFLink_GetLinkAtPoint(page ffi.Page, x, y float64) ffi.Link {
	return ffi.Link(uint32(b.call("FPDFLink_GetLinkAtPoint", uint64(page), f64arg(x), f64arg(y))))
}

func (b *Bindings) FPDFLink_GetLinkZOrderAtPoint(page ffi.Page, x, y float64) int32 {
	return int32(uint32(b.call("FPDFLink_GetLinkZOrderAtPoint", uint64(page), f64arg(x), f64arg(y))))
}

func (b *Bindings) FPDFLink_GetDest(doc ffi.Document, link ffi.Link) ffi.Dest {
	return ffi.Dest(uint32(b.call("FPDFLink_GetDest", uint64(doc), uint64(link))))
}

func (b *Bindings) FPDFLink_GetAction(link ffi.Link) ffi.Action {
	return ffi.Action(uint32(b.call("FPDFLink_GetAction", uint64(link))))
}

func (b *Bindings) FPDFLink_GetAnnot(page ffi.Page, link ffi.Link) ffi.Annotation {
	return ffi.Annotation(uint32(b.call("FPDFLink_GetAnnot", uint64(page), uint64(link))))
}

func (b *Bindings) FPDFLink_GetAnnotRect(link ffi.Link, rect *ffi.RectF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFLink_GetAnnotRect", uint64(link), p))))
	m.getRect(p, rect)
	return ok
}

func (b *Bindings) FPDFLink_CountQuadPoints(link ffi.Link) int32 {
	return int32(uint32(b.call("FPDFLink_CountQuadPoints", uint64(link))))
}

func (b *Bindings) FPDFLink_GetQuadPoints(link ffi.Link, quadIndex int32, quad *ffi.QuadPointsF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(32)
	ok := ffi.Bool(int32(uint32(b.call("FPDFLink_GetQuadPoints", uint64(link), uint64(uint32(quadIndex)), p))))
	m.getQuad(p, quad)
	return ok
}

func (b *Bindings) FPDFLink_Enumerate(page ffi.Page, startPos *int32, link *ffi.Link) ffi.Bool {
	m := b.scratch()
	defer m.release()
	posPtr := m.buffer(4)
	linkPtr := m.buffer(4)
	if startPos != nil {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(*startPos))
		m.b.mem.Write(uint32(posPtr), buf)
	}
	ok := ffi.Bool(int32(uint32(b.call("FPDFLink_Enumerate", uint64(page), posPtr, linkPtr))))
	if startPos != nil {
		*startPos = m.i32(posPtr)
	}
	if link != nil {
		*link = ffi.Link(m.u32(linkPtr))
	}
	return ok
}

func (b *Bindings) FPDFAction_GetType(action ffi.Action) ffi.ActionType {
	return ffi.ActionType(uint32(b.call("FPDFAction_GetType", uint64(action))))
}

func (b *Bindings) FPDFAction_GetDest(doc ffi.Document, action ffi.Action) ffi.Dest {
	return ffi.Dest(uint32(b.call("FPDFAction_GetDest", uint64(doc), uint64(action))))
}

func (b *Bindings) FPDFAction_GetFilePath(action ffi.Action, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAction_GetFilePath", uint64(action), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFAction_GetURIPath(doc ffi.Document, action ffi.Action, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAction_GetURIPath", uint64(doc), uint64(action), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFDest_GetDestPageIndex(doc ffi.Document, dest ffi.Dest) int32 {
	return int32(uint32(b.call("FPDFDest_GetDestPageIndex", uint64(doc), uint64(dest))))
}

func (b *Bindings) FPDFDest_GetLocationInPage(dest ffi.Dest, hasX, hasY, hasZoom *ffi.Bool, x, y, zoom *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(24)
	ok := ffi.Bool(int32(uint32(b.call("FPDFDest_GetLocationInPage", uint64(dest), p, p+4, p+8, p+12, p+16, p+20))))
	if hasX != nil {
		*hasX = ffi.Bool(m.i32(p))
	}
	if hasY != nil {
		*hasY = ffi.Bool(m.i32(p + 4))
	}
	if hasZoom != nil {
		*hasZoom = ffi.Bool(m.i32(p + 8))
	}
	if x != nil {
		*x = m.f32(p + 12)
	}
	if y != nil {
		*y = m.f32(p + 16)
	}
	if zoom != nil {
		*zoom = m.f32(p + 20)
	}
	return ok
}

func (b *Bindings) FPDFDest_GetView(dest ffi.Dest, numParams *uint64, params []float32) uint64 {
	m := b.scratch()
	defer m.release()
	countPtr := m.buffer(4)
	paramsPtr := m.buffer(len(params) * 4)
	view := uint64(uint32(b.call("FPDFDest_GetView", uint64(dest), countPtr, paramsPtr)))
	if numParams != nil {
		*numParams = uint64(m.u32(countPtr))
	}
	for i := range params {
		params[i] = m.f32(paramsPtr + uint64(i*4))
	}
	return view
}

func (b *Bindings) FPDFBookmark_GetFirstChild(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark {
	return ffi.Bookmark(uint32(b.call("FPDFBookmark_GetFirstChild", uint64(doc), uint64(bookmark))))
}

func (b *Bindings) FPDFBookmark_GetNextSibling(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark {
	return ffi.Bookmark(uint32(b.call("FPDFBookmark_GetNextSibling", uint64(doc), uint64(bookmark))))
}

func (b *Bindings) FPDFBookmark_GetTitle(bookmark ffi.Bookmark, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFBookmark_GetTitle", uint64(bookmark), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFBookmark_GetCount(bookmark ffi.Bookmark) int32 {
	return int32(uint32(b.call("FPDFBookmark_GetCount", uint64(bookmark))))
}

func (b *Bindings) FPDFBookmark_Find(doc ffi.Document, title string) ffi.Bookmark {
	wide := wstr(title)
	if wide == nil {
		return 0
	}
	m := b.scratch()
	defer m.release()
	return ffi.Bookmark(uint32(b.call("FPDFBookmark_Find", uint64(doc), m.bytes(wide))))
}

func (b *Bindings) FPDFBookmark_GetAction(bookmark ffi.Bookmark) ffi.Action {
	return ffi.Action(uint32(b.call("FPDFBookmark_GetAction", uint64(bookmark))))
}

func (b *Bindings) FPDFBookmark_GetDest(doc ffi.Document, bookmark ffi.Bookmark) ffi.Dest {
	return ffi.Dest(uint32(b.call("FPDFBookmark_GetDest", uint64(doc), uint64(bookmark))))
}
