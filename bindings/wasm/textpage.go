package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFText_LoadPage(page ffi.Page) ffi.TextPage {
	return ffi.TextPage(uint32(b.call("FPDFText_LoadPage", uint64(page))))
}

func (b *Bindings) FPDFText_ClosePage(textPage ffi.TextPage) {
	b.call("FPDFText_ClosePage", uint64(textPage))
}

func (b *Bindings) FPDFText_CountChars(textPage ffi.TextPage) int32 {
	return int32(uint32(b.call("FPDFText_CountChars", uint64(textPage))))
}

func (b *Bindings) FPDFText_GetText(textPage ffi.TextPage, startIndex, count int32, buf []byte) int32 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := int32(uint32(b.call("FPDFText_GetText", uint64(textPage), uint64(uint32(startIndex)), uint64(uint32(count)), bufPtr)))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFText_GetUnicode(textPage ffi.TextPage, index int32) uint32 {
	return uint32(b.call("FPDFText_GetUnicode", uint64(textPage), uint64(uint32(index))))
}

func (b *Bindings) FPDFText_GetFontSize(textPage ffi.TextPage, index int32) float64 {
	return decodeF64(b.call("FPDFText_GetFontSize", uint64(textPage), uint64(uint32(index))))
}

func (b *Bindings) FPDFText_GetFontWeight(textPage ffi.TextPage, index int32) int32 {
	return int32(uint32(b.call("FPDFText_GetFontWeight", uint64(textPage), uint64(uint32(index)))))
}

func (b *Bindings) FPDFText_GetFontInfo(textPage ffi.TextPage, index int32, buf []byte, flags *int32) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	flagsPtr := m.buffer(4)
	n := uint64(uint32(b.call("FPDFText_GetFontInfo", uint64(textPage), uint64(uint32(index)), bufPtr, uint64(uint32(len(buf))), flagsPtr)))
	m.copyOut(bufPtr, buf)
	if flags != nil {
		*flags = m.i32(flagsPtr)
	}
	return n
}

func (b *Bindings) FPDFText_GetCharBox(textPage ffi.TextPage, index int32, left, right, bottom, top *float64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(32)
	ok := ffi.Bool(int32(uint32(b.call("FPDFText_GetCharBox", uint64(textPage), uint64(uint32(index)), p, p+8, p+16, p+24))))
	if left != nil {
		*left = m.f64(p)
	}
	if right != nil {
		*right = m.f64(p + 8)
	}
	if bottom != nil {
		*bottom = m.f64(p + 16)
	}
	if top != nil {
		*top = m.f64(p + 24)
	}
	return ok
}

func (b *Bindings) FPDFText_GetLooseCharBox(textPage ffi.TextPage, index int32, rect *ffi.RectF) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFText_GetLooseCharBox", uint64(textPage), uint64(uint32(index)), p))))
	m.getRect(p, rect)
	return ok
}

func (b *Bindings) FPDFText_GetCharOrigin(textPage ffi.TextPage, index int32, x, y *float64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(16)
	ok := ffi.Bool(int32(uint32(b.call("FPDFText_GetCharOrigin", uint64(textPage), uint64(uint32(index)), p, p+8))))
	if x != nil {
		*x = m.f64(p)
	}
	if y != nil {
		*y = m.f64(p + 8)
	}
	return ok
}

func (b *Bindings) FPDFText_GetCharAngle(textPage ffi.TextPage, index int32) float32 {
	return decodeF32(b.call("FPDFText_GetCharAngle", uint64(textPage), uint64(uint32(index))))
}

func (b *Bindings) FPDFText_CountRects(textPage ffi.TextPage, startIndex, count int32) int32 {
	return int32(uint32(b.call("FPDFText_CountRects", uint64(textPage), uint64(uint32(startIndex)), uint64(uint32(count)))))
}

func (b *Bindings) FPDFText_GetRect(textPage ffi.TextPage, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(32)
	ok := ffi.Bool(int32(uint32(b.call("FPDFText_GetRect", uint64(textPage), uint64(uint32(rectIndex)), p, p+8, p+16, p+24))))
	if left != nil {
		*left = m.f64(p)
	}
	if top != nil {
		*top = m.f64(p + 8)
	}
	if right != nil {
		*right = m.f64(p + 16)
	}
	if bottom != nil {
		*bottom = m.f64(p + 24)
	}
	return ok
}

func (b *Bindings) FPDFText_GetBoundedText(textPage ffi.TextPage, left, top, right, bottom float64, buf []byte) int32 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := int32(uint32(b.call("FPDFText_GetBoundedText", uint64(textPage),
		f64arg(left), f64arg(top), f64arg(right), f64arg(bottom), bufPtr, uint64(uint32(len(buf)/2)))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFText_GetCharIndexAtPos(textPage ffi.TextPage, x, y, xTolerance, yTolerance float64) int32 {
	return int32(uint32(b.call("FPDFText_GetCharIndexAtPos", uint64(textPage),
		f64arg(x), f64arg(y), f64arg(xTolerance), f64arg(yTolerance))))
}

// FPDFText_FindStart keeps the search term resident until FPDFText_FindClose;
// Pdfium scans it lazily on each FindNext.
func (b *Bindings) FPDFText_FindStart(textPage ffi.TextPage, findWhat string, flags uint64, startIndex int32) ffi.SearchHandle {
	term := wstr(findWhat)
	if term == nil {
		return 0
	}
	m := b.scratch()
	termPtr := m.bytes(term)
	handle := ffi.SearchHandle(uint32(b.call("FPDFText_FindStart", uint64(textPage), termPtr, uint64(uint32(flags)), uint64(uint32(startIndex)))))
	if handle == 0 {
		m.release()
		return 0
	}
	if b.searchTerms == nil {
		b.searchTerms = make(map[ffi.SearchHandle]uint64)
	}
	b.searchTerms[handle] = termPtr
	return handle
}

func (b *Bindings) FPDFText_FindNext(handle ffi.SearchHandle) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFText_FindNext", uint64(handle)))))
}

func (b *Bindings) FPDFText_FindPrev(handle ffi.SearchHandle) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFText_FindPrev", uint64(handle)))))
}

func (b *Bindings) FPDFText_GetSchResultIndex(handle ffi.SearchHandle) int32 {
	return int32(uint32(b.call("FPDFText_GetSchResultIndex", uint64(handle))))
}

func (b *Bindings) FPDFText_GetSchCount(handle ffi.SearchHandle) int32 {
	return int32(uint32(b.call("FPDFText_GetSchCount", uint64(handle))))
}

func (b *Bindings) FPDFText_FindClose(handle ffi.SearchHandle) {
	b.call("FPDFText_FindClose", uint64(handle))
	if ptr, ok := b.searchTerms[handle]; ok {
		b.freeFn.Call(b.ctx, ptr)
		delete(b.searchTerms, handle)
	}
}

func (b *Bindings) FPDFLink_LoadWebLinks(textPage ffi.TextPage) ffi.PageLink {
	return ffi.PageLink(uint32(b.call("FPDFLink_LoadWebLinks", uint64(textPage))))
}

func (b *Bindings) FPDFLink_CloseWebLinks(pageLink ffi.PageLink) {
	b.call("FPDFLink_CloseWebLinks", uint64(pageLink))
}

func (b *Bindings) FPDFLink_CountWebLinks(pageLink ffi.PageLink) int32 {
	return int32(uint32(b.call("FPDFLink_CountWebLinks", uint64(pageLink))))
}

func (b *Bindings) FPDFLink_GetURL(pageLink ffi.PageLink, linkIndex int32, buf []byte) int32 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := int32(uint32(b.call("FPDFLink_GetURL", uint64(pageLink), uint64(uint32(linkIndex)), bufPtr, uint64(uint32(len(buf)/2)))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFLink_CountRects(pageLink ffi.PageLink, linkIndex int32) int32 {
	return int32(uint32(b.call("FPDFLink_CountRects", uint64(pageLink), uint64(uint32(linkIndex)))))
}

func (b *Bindings) FPDFLink_GetRect(pageLink ffi.PageLink, linkIndex, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(32)
	ok := ffi.Bool(int32(uint32(b.call("FPDFLink_GetRect", uint64(pageLink), uint64(uint32(linkIndex)), uint64(uint32(rectIndex)), p, p+8, p+16, p+24))))
	if left != nil {
		*left = m.f64(p)
	}
	if top != nil {
		*top = m.f64(p + 8)
	}
	if right != nil {
		*right = m.f64(p + 16)
	}
	if bottom != nil {
		*bottom = m.f64(p + 24)
	}
	return ok
}
