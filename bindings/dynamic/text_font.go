package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFTextObj_GetFont(obj ffi.PageObject) ffi.Font {
	return b.api.textObjGetFont(obj)
}

func (b *Bindings) FPDFTextObj_GetFontSize(obj ffi.PageObject, size *float32) ffi.Bool {
	return b.api.textObjGetFontSize(obj, size)
}

func (b *Bindings) FPDFTextObj_GetText(obj ffi.PageObject, textPage ffi.TextPage, buf []byte) uint64 {
	return b.api.textObjGetText(obj, textPage, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFTextObj_GetTextRenderMode(obj ffi.PageObject) ffi.TextRenderMode {
	return b.api.textObjGetTextRenderMode(obj)
}

func (b *Bindings) FPDFTextObj_SetTextRenderMode(obj ffi.PageObject, mode ffi.TextRenderMode) ffi.Bool {
	return b.api.textObjSetTextRenderMode(obj, mode)
}

func (b *Bindings) FPDFText_SetText(obj ffi.PageObject, text string) ffi.Bool {
	wide := widestr(text)
	if wide == nil {
		return ffi.False
	}
	return b.api.textSetText(obj, wide)
}

func (b *Bindings) FPDFText_LoadFont(doc ffi.Document, data []byte, fontType int32, cid ffi.Bool) ffi.Font {
	return b.api.textLoadFont(doc, data, uint32(len(data)), fontType, cid)
}

func (b *Bindings) FPDFText_LoadStandardFont(doc ffi.Document, name string) ffi.Font {
	return b.api.textLoadStandardFont(doc, cstrOrNil(name))
}

func (b *Bindings) FPDFFont_Close(font ffi.Font) { b.api.fontClose(font) }

// The name and data accessors resolve only on experimental builds; against an
// older library they report plain failure.

func (b *Bindings) FPDFFont_GetBaseFontName(font ffi.Font, buf []byte) uint64 {
	if b.api.fontGetBaseFontName == nil {
		return 0
	}
	return b.api.fontGetBaseFontName(font, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFFont_GetFamilyName(font ffi.Font, buf []byte) uint64 {
	if b.api.fontGetFamilyName == nil {
		return 0
	}
	return b.api.fontGetFamilyName(font, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFFont_GetFontData(font ffi.Font, buf []byte, outLen *uint64) ffi.Bool {
	if b.api.fontGetFontData == nil {
		return ffi.False
	}
	return b.api.fontGetFontData(font, buf, uint64(len(buf)), outLen)
}

func (b *Bindings) FPDFFont_GetFlags(font ffi.Font) int32 {
	return b.api.fontGetFlags(font)
}

func (b *Bindings) FPDFFont_GetWeight(font ffi.Font) int32 {
	return b.api.fontGetWeight(font)
}

func (b *Bindings) FPDFFont_GetItalicAngle(font ffi.Font, angle *int32) ffi.Bool {
	return b.api.fontGetItalicAngle(font, angle)
}

func (b *Bindings) FPDFFont_GetAscent(font ffi.Font, fontSize float32, ascent *float32) ffi.Bool {
	return b.api.fontGetAscent(font, fontSize, ascent)
}

func (b *Bindings) FPDFFont_GetDescent(font ffi.Font, fontSize float32, descent *float32) ffi.Bool {
	return b.api.fontGetDescent(font, fontSize, descent)
}

func (b *Bindings) FPDFFont_GetGlyphWidth(font ffi.Font, glyph uint32, fontSize float32, width *float32) ffi.Bool {
	return b.api.fontGetGlyphWidth(font, glyph, fontSize, width)
}

func (b *Bindings) FPDFFont_GetIsEmbedded(font ffi.Font) int32 {
	return b.api.fontGetIsEmbedded(font)
}

func (b *Bindings) FPDFFont_GetGlyphPath(font ffi.Font, glyph uint32, fontSize float32) ffi.GlyphPath {
	return b.api.fontGetGlyphPath(font, glyph, fontSize)
}

func (b *Bindings) FPDFGlyphPath_CountGlyphSegments(glyphPath ffi.GlyphPath) int32 {
	return b.api.glyphPathCountGlyphSegments(glyphPath)
}

func (b *Bindings) FPDFGlyphPath_GetGlyphPathSegment(glyphPath ffi.GlyphPath, index int32) ffi.PathSegment {
	return b.api.glyphPathGetGlyphPathSegment(glyphPath, index)
}
