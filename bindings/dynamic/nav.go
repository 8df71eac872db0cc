package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFLink_GetLinkAtPoint(page ffi.Page, x, y float64) ffi.Link {
	return b.api.linkGetLinkAtPoint(page, x, y)
}

func (b *Bindings) FPDFLink_GetLinkZOrderAtPoint(page ffi.Page, x, y float64) int32 {
	return b.api.linkGetLinkZOrderAtPoint(page, x, y)
}

func (b *Bindings) FPDFLink_GetDest(doc ffi.Document, link ffi.Link) ffi.Dest {
	return b.api.linkGetDest(doc, link)
}

func (b *Bindings) FPDFLink_GetAction(link ffi.Link) ffi.Action {
	return b.api.linkGetAction(link)
}

func (b *Bindings) FPDFLink_GetAnnot(page ffi.Page, link ffi.Link) ffi.Annotation {
	return b.api.linkGetAnnot(page, link)
}

func (b *Bindings) FPDFLink_GetAnnotRect(link ffi.Link, rect *ffi.RectF) ffi.Bool {
	return b.api.linkGetAnnotRect(link, rect)
}

func (b *Bindings) FPDFLink_CountQuadPoints(link ffi.Link) int32 {
	return b.api.linkCountQuadPoints(link)
}

func (b *Bindings) FPDFLink_GetQuadPoints(link ffi.Link, quadIndex int32, quad *ffi.QuadPointsF) ffi.Bool {
	return b.api.linkGetQuadPoints(link, quadIndex, quad)
}

func (b *Bindings) FPDFLink_Enumerate(page ffi.Page, startPos *int32, link *ffi.Link) ffi.Bool {
	return b.api.linkEnumerate(page, startPos, link)
}

func (b *Bindings) FPDFAction_GetType(action ffi.Action) ffi.ActionType {
	return b.api.actionGetType(action)
}

func (b *Bindings) FPDFAction_GetDest(doc ffi.Document, action ffi.Action) ffi.Dest {
	return b.api.actionGetDest(doc, action)
}

func (b *Bindings) FPDFAction_GetFilePath(action ffi.Action, buf []byte) uint64 {
	return b.api.actionGetFilePath(action, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAction_GetURIPath(doc ffi.Document, action ffi.Action, buf []byte) uint64 {
	return b.api.actionGetURIPath(doc, action, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFDest_GetDestPageIndex(doc ffi.Document, dest ffi.Dest) int32 {
	return b.api.destGetDestPageIndex(doc, dest)
}

func (b *Bindings) FPDFDest_GetLocationInPage(dest ffi.Dest, hasX, hasY, hasZoom *ffi.Bool, x, y, zoom *float32) ffi.Bool {
	return b.api.destGetLocationInPage(dest, hasX, hasY, hasZoom, x, y, zoom)
}

func (b *Bindings) FPDFDest_GetView(dest ffi.Dest, numParams *uint64, params []float32) uint64 {
	return b.api.destGetView(dest, numParams, params)
}

func (b *Bindings) FPDFBookmark_GetFirstChild(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark {
	return b.api.bookmarkGetFirstChild(doc, bookmark)
}

func (b *Bindings) FPDFBookmark_GetNextSibling(doc ffi.Document, bookmark ffi.Bookmark) ffi.Bookmark {
	return b.api.bookmarkGetNextSibling(doc, bookmark)
}

func (b *Bindings) FPDFBookmark_GetTitle(bookmark ffi.Bookmark, buf []byte) uint64 {
	return b.api.bookmarkGetTitle(bookmark, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFBookmark_GetCount(bookmark ffi.Bookmark) int32 {
	return b.api.bookmarkGetCount(bookmark)
}

func (b *Bindings) FPDFBookmark_Find(doc ffi.Document, title string) ffi.Bookmark {
	wide := widestr(title)
	if wide == nil {
		return 0
	}
	return b.api.bookmarkFind(doc, wide)
}

func (b *Bindings) FPDFBookmark_GetAction(bookmark ffi.Bookmark) ffi.Action {
	return b.api.bookmarkGetAction(bookmark)
}

func (b *Bindings) FPDFBookmark_GetDest(doc ffi.Document, bookmark ffi.Bookmark) ffi.Dest {
	return b.api.bookmarkGetDest(doc, bookmark)
}
