package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFTextObj_GetFont(obj ffi.PageObject) ffi.Font {
	return ffi.Font(uint32(b.call("FPDFTextObj_GetFont", uint64(obj))))
}

func (b *Bindings) FPDFTextObj_GetFontSize(obj ffi.PageObject, size *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFTextObj_GetFontSize", uint64(obj), p))))
	if size != nil {
		*size = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFTextObj_GetText(obj ffi.PageObject, textPage ffi.TextPage, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFTextObj_GetText", uint64(obj), uint64(textPage), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFTextObj_GetTextRenderMode(obj ffi.PageObject) ffi.TextRenderMode {
	return ffi.TextRenderMode(int32(uint32(b.call("FPDFTextObj_GetTextRenderMode", uint64(obj)))))
}

func (b *Bindings) FPDFTextObj_SetTextRenderMode(obj ffi.PageObject, mode ffi.TextRenderMode) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFTextObj_SetTextRenderMode", uint64(obj), uint64(uint32(mode))))))
}

func (b *Bindings) FPDFText_SetText(obj ffi.PageObject, text string) ffi.Bool {
	wide := wstr(text)
	if wide == nil {
		return ffi.False
	}
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFText_SetText", uint64(obj), m.bytes(wide)))))
}

func (b *Bindings) FPDFText_LoadFont(doc ffi.Document, data []byte, fontType int32, cid ffi.Bool) ffi.Font {
	m := b.scratch()
	defer m.release()
	return ffi.Font(uint32(b.call("FPDFText_LoadFont", uint64(doc),
		m.bytes(data), uint64(uint32(len(data))), uint64(uint32(fontType)), uint64(uint32(cid)))))
}

func (b *Bindings) FPDFText_LoadStandardFont(doc ffi.Document, name string) ffi.Font {
	m := b.scratch()
	defer m.release()
	return ffi.Font(uint32(b.call("FPDFText_LoadStandardFont", uint64(doc), m.bytes(cstrOrNil(name)))))
}

func (b *Bindings) FPDFFont_Close(font ffi.Font) {
	b.call("FPDFFont_Close", uint64(font))
}

// The name and data accessors exist only on experimental builds of the
// module; against an older build the missing export reads as plain failure.

func (b *Bindings) FPDFFont_GetBaseFontName(font ffi.Font, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFFont_GetBaseFontName", uint64(font), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFFont_GetFamilyName(font ffi.Font, buf []byte) uint64 {
	name := "FPDFFont_GetFamilyName"
	if b.fn(name) == nil {
		// Pre-rename builds export the same accessor as FPDFFont_GetFontName.
		name = "FPDFFont_GetFontName"
	}
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call(name, uint64(font), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFFont_GetFontData(font ffi.Font, buf []byte, outLen *uint64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	lenPtr := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFFont_GetFontData", uint64(font), bufPtr, uint64(uint32(len(buf))), lenPtr))))
	m.copyOut(bufPtr, buf)
	if outLen != nil {
		*outLen = uint64(m.u32(lenPtr))
	}
	return ok
}

func (b *Bindings) FPDFFont_GetFlags(font ffi.Font) int32 {
	return int32(uint32(b.call("FPDFFont_GetFlags", uint64(font))))
}

func (b *Bindings) FPDFFont_GetWeight(font ffi.Font) int32 {
	return int32(uint32(b.call("FPDFFont_GetWeight", uint64(font))))
}

func (b *Bindings) FPDFFont_GetItalicAngle(font ffi.Font, angle *int32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFFont_GetItalicAngle", uint64(font), p))))
	if angle != nil {
		*angle = m.i32(p)
	}
	return ok
}

func (b *Bindings) FPDFFont_GetAscent(font ffi.Font, fontSize float32, ascent *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFFont_GetAscent", uint64(font), f32arg(fontSize), p))))
	if ascent != nil {
		*ascent = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFFont_GetDescent(font ffi.Font, fontSize float32, descent *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFFont_GetDescent", uint64(font), f32arg(fontSize), p))))
	if descent != nil {
		*descent = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFFont_GetGlyphWidth(font ffi.Font, glyph uint32, fontSize float32, width *float32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFFont_GetGlyphWidth", uint64(font), uint64(glyph), f32arg(fontSize), p))))
	if width != nil {
		*width = m.f32(p)
	}
	return ok
}

func (b *Bindings) FPDFFont_GetIsEmbedded(font ffi.Font) int32 {
	return int32(uint32(b.call("FPDFFont_GetIsEmbedded", uint64(font))))
}

func (b *Bindings) FPDFFont_GetGlyphPath(font ffi.Font, glyph uint32, fontSize float32) ffi.GlyphPath {
	return ffi.GlyphPath(uint32(b.call("FPDFFont_GetGlyphPath", uint64(font), uint64(glyph), f32arg(fontSize))))
}

func (b *Bindings) FPDFGlyphPath_CountGlyphSegments(glyphPath ffi.GlyphPath) int32 {
	return int32(uint32(b.call("FPDFGlyphPath_CountGlyphSegments", uint64(glyphPath))))
}

func (b *Bindings) FPDFGlyphPath_GetGlyphPathSegment(glyphPath ffi.GlyphPath, index int32) ffi.PathSegment {
	return ffi.PathSegment(uint32(b.call("FPDFGlyphPath_GetGlyphPathSegment", uint64(glyphPath), uint64(uint32(index)))))
}
