package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// Text-object accessors. These fail on objects that are not text objects.

// TextFontSize returns the text object's point size.
func (o *PageObject) TextFontSize() (float32, error) {
	var size float32
	if !bindings.IsTrue(o.p.b.FPDFTextObj_GetFontSize(o.handle, &size)) {
		return 0, fmt.Errorf("text font size: %w", o.p.extendedError())
	}
	return size, nil
}

// TextContent returns the text run's content, resolved against the page's
// text layer.
func (o *PageObject) TextContent(tp *TextPage) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return o.p.b.FPDFTextObj_GetText(o.handle, tp.handle, buf)
	})
}

// TextRenderMode returns how the text run is painted.
func (o *PageObject) TextRenderMode() ffi.TextRenderMode {
	return o.p.b.FPDFTextObj_GetTextRenderMode(o.handle)
}

// SetTextRenderMode sets how the text run is painted.
func (o *PageObject) SetTextRenderMode(mode ffi.TextRenderMode) error {
	if !bindings.IsTrue(o.p.b.FPDFTextObj_SetTextRenderMode(o.handle, mode)) {
		return fmt.Errorf("set text render mode: %w", o.p.extendedError())
	}
	return nil
}

// SetText replaces the text run's content.
func (o *PageObject) SetText(text string) error {
	if !bindings.IsTrue(o.p.b.FPDFText_SetText(o.handle, text)) {
		return fmt.Errorf("set text: %w", o.p.extendedError())
	}
	return nil
}

// Font wraps the font of a text object.
type Font struct {
	p      *Pdfium
	handle ffi.Font
	owned  bool
}

// Font returns the text object's font. The font is owned by the document;
// do not close it.
func (o *PageObject) Font() (*Font, error) {
	handle := o.p.b.FPDFTextObj_GetFont(o.handle)
	if handle == 0 {
		return nil, fmt.Errorf("text font: %w", o.p.extendedError())
	}
	return &Font{p: o.p, handle: handle}, nil
}

// LoadFont embeds font data (TrueType fontType 2, Type1 fontType 1) into the
// document. The caller owns the returned font and must close it after the
// last object using it is created.
func (d *Document) LoadFont(data []byte, fontType int, cid bool) (*Font, error) {
	handle := d.p.b.FPDFText_LoadFont(d.handle, data, int32(fontType), bindings.Bool(cid))
	if handle == 0 {
		return nil, fmt.Errorf("load font: %w", d.p.extendedError())
	}
	return &Font{p: d.p, handle: handle, owned: true}, nil
}

// LoadStandardFont loads one of the 14 standard fonts by name.
func (d *Document) LoadStandardFont(name string) (*Font, error) {
	handle := d.p.b.FPDFText_LoadStandardFont(d.handle, name)
	if handle == 0 {
		return nil, fmt.Errorf("load standard font %q: %w", name, d.p.extendedError())
	}
	return &Font{p: d.p, handle: handle, owned: true}, nil
}

// Handle exposes the raw native handle.
func (f *Font) Handle() ffi.Font { return f.handle }

// Close releases a font the caller owns. Fonts obtained from text objects
// are document-owned and Close is a no-op for them.
func (f *Font) Close() {
	if !f.owned {
		return
	}
	f.owned = false
	f.p.b.FPDFFont_Close(f.handle)
}

// BaseName returns the font's base name, e.g. "Helvetica-Bold". Needs an
// experimental library build; otherwise the empty string.
func (f *Font) BaseName() (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return f.p.b.FPDFFont_GetBaseFontName(f.handle, buf)
	})
}

// FamilyName returns the font's family name. Needs an experimental library
// build; otherwise the empty string.
func (f *Font) FamilyName() (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return f.p.b.FPDFFont_GetFamilyName(f.handle, buf)
	})
}

// Data returns the font's raw program bytes. Needs an experimental library
// build.
func (f *Font) Data() ([]byte, error) {
	var outLen uint64
	if !bindings.IsTrue(f.p.b.FPDFFont_GetFontData(f.handle, nil, &outLen)) {
		return nil, fmt.Errorf("font data: %w", f.p.extendedError())
	}
	if outLen == 0 {
		return nil, nil
	}
	buf := make([]byte, outLen)
	if !bindings.IsTrue(f.p.b.FPDFFont_GetFontData(f.handle, buf, &outLen)) {
		return nil, fmt.Errorf("font data: %w", f.p.extendedError())
	}
	return buf[:outLen], nil
}

// Flags returns the font descriptor flags, or -1 on failure.
func (f *Font) Flags() int { return int(f.p.b.FPDFFont_GetFlags(f.handle)) }

// Weight returns the font weight, 400 for normal, or -1 on failure.
func (f *Font) Weight() int { return int(f.p.b.FPDFFont_GetWeight(f.handle)) }

// ItalicAngle returns the font's italic angle in degrees.
func (f *Font) ItalicAngle() (int, error) {
	var angle int32
	if !bindings.IsTrue(f.p.b.FPDFFont_GetItalicAngle(f.handle, &angle)) {
		return 0, fmt.Errorf("italic angle: %w", f.p.extendedError())
	}
	return int(angle), nil
}

// Ascent returns the ascent in points at the given size.
func (f *Font) Ascent(fontSize float32) (float32, error) {
	var ascent float32
	if !bindings.IsTrue(f.p.b.FPDFFont_GetAscent(f.handle, fontSize, &ascent)) {
		return 0, fmt.Errorf("ascent: %w", f.p.extendedError())
	}
	return ascent, nil
}

// Descent returns the descent in points at the given size, typically
// negative.
func (f *Font) Descent(fontSize float32) (float32, error) {
	var descent float32
	if !bindings.IsTrue(f.p.b.FPDFFont_GetDescent(f.handle, fontSize, &descent)) {
		return 0, fmt.Errorf("descent: %w", f.p.extendedError())
	}
	return descent, nil
}

// GlyphWidth returns the advance width of a glyph at the given size.
func (f *Font) GlyphWidth(glyph rune, fontSize float32) (float32, error) {
	var width float32
	if !bindings.IsTrue(f.p.b.FPDFFont_GetGlyphWidth(f.handle, uint32(glyph), fontSize, &width)) {
		return 0, fmt.Errorf("glyph width: %w", f.p.extendedError())
	}
	return width, nil
}

// IsEmbedded reports whether the font program is embedded in the document.
func (f *Font) IsEmbedded() bool { return f.p.b.FPDFFont_GetIsEmbedded(f.handle) == 1 }

// GlyphPath returns the outline of a glyph at the given size as a segment
// collection.
func (f *Font) GlyphPath(glyph rune, fontSize float32) (Collection[PathSegment], error) {
	gp := f.p.b.FPDFFont_GetGlyphPath(f.handle, uint32(glyph), fontSize)
	if gp == 0 {
		return Collection[PathSegment]{}, fmt.Errorf("glyph path: %w", f.p.extendedError())
	}
	return NewCollection(
		func() int { return int(f.p.b.FPDFGlyphPath_CountGlyphSegments(gp)) },
		func(i int) (PathSegment, error) {
			handle := f.p.b.FPDFGlyphPath_GetGlyphPathSegment(gp, int32(i))
			if handle == 0 {
				return PathSegment{}, fmt.Errorf("glyph segment %d: %w", i, f.p.extendedError())
			}
			return PathSegment{p: f.p, handle: handle}, nil
		},
	), nil
}
