package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFText_LoadPage(page ffi.Page) ffi.TextPage {
	return b.api.textLoadPage(page)
}

func (b *Bindings) FPDFText_ClosePage(textPage ffi.TextPage) {
	b.api.textClosePage(textPage)
}

func (b *Bindings) FPDFText_CountChars(textPage ffi.TextPage) int32 {
	return b.api.textCountChars(textPage)
}

func (b *Bindings) FPDFText_GetText(textPage ffi.TextPage, startIndex, count int32, buf []byte) int32 {
	return b.api.textGetText(textPage, startIndex, count, buf)
}

func (b *Bindings) FPDFText_GetUnicode(textPage ffi.TextPage, index int32) uint32 {
	return b.api.textGetUnicode(textPage, index)
}

func (b *Bindings) FPDFText_GetFontSize(textPage ffi.TextPage, index int32) float64 {
	return b.api.textGetFontSize(textPage, index)
}

func (b *Bindings) FPDFText_GetFontWeight(textPage ffi.TextPage, index int32) int32 {
	return b.api.textGetFontWeight(textPage, index)
}

func (b *Bindings) FPDFText_GetFontInfo(textPage ffi.TextPage, index int32, buf []byte, flags *int32) uint64 {
	return b.api.textGetFontInfo(textPage, index, buf, uint64(len(buf)), flags)
}

func (b *Bindings) FPDFText_GetCharBox(textPage ffi.TextPage, index int32, left, right, bottom, top *float64) ffi.Bool {
	return b.api.textGetCharBox(textPage, index, left, right, bottom, top)
}

func (b *Bindings) FPDFText_GetLooseCharBox(textPage ffi.TextPage, index int32, rect *ffi.RectF) ffi.Bool {
	return b.api.textGetLooseCharBox(textPage, index, rect)
}

func (b *Bindings) FPDFText_GetCharOrigin(textPage ffi.TextPage, index int32, x, y *float64) ffi.Bool {
	return b.api.textGetCharOrigin(textPage, index, x, y)
}

func (b *Bindings) FPDFText_GetCharAngle(textPage ffi.TextPage, index int32) float32 {
	return b.api.textGetCharAngle(textPage, index)
}

func (b *Bindings) FPDFText_CountRects(textPage ffi.TextPage, startIndex, count int32) int32 {
	return b.api.textCountRects(textPage, startIndex, count)
}

func (b *Bindings) FPDFText_GetRect(textPage ffi.TextPage, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	return b.api.textGetRect(textPage, rectIndex, left, top, right, bottom)
}

func (b *Bindings) FPDFText_GetBoundedText(textPage ffi.TextPage, left, top, right, bottom float64, buf []byte) int32 {
	// The native buffer length is in UTF-16 code units, not bytes.
	return b.api.textGetBoundedText(textPage, left, top, right, bottom, buf, int32(len(buf)/2))
}

func (b *Bindings) FPDFText_GetCharIndexAtPos(textPage ffi.TextPage, x, y, xTolerance, yTolerance float64) int32 {
	return b.api.textGetCharIndexAtPos(textPage, x, y, xTolerance, yTolerance)
}

func (b *Bindings) FPDFText_FindStart(textPage ffi.TextPage, findWhat string, flags uint64, startIndex int32) ffi.SearchHandle {
	term := widestr(findWhat)
	if term == nil {
		return 0
	}
	return b.api.textFindStart(textPage, term, flags, startIndex)
}

func (b *Bindings) FPDFText_FindNext(handle ffi.SearchHandle) ffi.Bool {
	return b.api.textFindNext(handle)
}

func (b *Bindings) FPDFText_FindPrev(handle ffi.SearchHandle) ffi.Bool {
	return b.api.textFindPrev(handle)
}

func (b *Bindings) FPDFText_GetSchResultIndex(handle ffi.SearchHandle) int32 {
	return b.api.textGetSchResultIndex(handle)
}

func (b *Bindings) FPDFText_GetSchCount(handle ffi.SearchHandle) int32 {
	return b.api.textGetSchCount(handle)
}

func (b *Bindings) FPDFText_FindClose(handle ffi.SearchHandle) {
	b.api.textFindClose(handle)
}

func (b *Bindings) FPDFLink_LoadWebLinks(textPage ffi.TextPage) ffi.PageLink {
	return b.api.linkLoadWebLinks(textPage)
}

func (b *Bindings) FPDFLink_CloseWebLinks(pageLink ffi.PageLink) {
	b.api.linkCloseWebLinks(pageLink)
}

func (b *Bindings) FPDFLink_CountWebLinks(pageLink ffi.PageLink) int32 {
	return b.api.linkCountWebLinks(pageLink)
}

func (b *Bindings) FPDFLink_GetURL(pageLink ffi.PageLink, linkIndex int32, buf []byte) int32 {
	return b.api.linkGetURL(pageLink, linkIndex, buf, int32(len(buf)/2))
}

func (b *Bindings) FPDFLink_CountRects(pageLink ffi.PageLink, linkIndex int32) int32 {
	return b.api.linkCountRectsWeb(pageLink, linkIndex)
}

func (b *Bindings) FPDFLink_GetRect(pageLink ffi.PageLink, linkIndex, rectIndex int32, left, top, right, bottom *float64) ffi.Bool {
	return b.api.linkGetRectWeb(pageLink, linkIndex, rectIndex, left, top, right, bottom)
}
