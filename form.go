package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// FormFill wraps an open form-fill environment. It must be closed before
// the document it was opened for.
type FormFill struct {
	p      *Pdfium
	forms  bindings.FormBindings
	handle ffi.FormHandle
	closed bool
}

// FormFill opens a form-fill environment for the document. The backend must
// have been constructed with Config.Forms enabled and provide the form
// group; forms is normally the same backend instance handed to New.
func (d *Document) FormFill(forms bindings.FormBindings) (*FormFill, error) {
	handle := forms.FPDFDOC_InitFormFillEnvironment(d.handle)
	if handle == 0 {
		return nil, fmt.Errorf("init form fill: %w", d.p.lastError())
	}
	return &FormFill{p: d.p, forms: forms, handle: handle}, nil
}

// Close tears the environment down. Idempotent.
func (ff *FormFill) Close() {
	if ff.closed {
		return
	}
	ff.closed = true
	ff.forms.FPDFDOC_ExitFormFillEnvironment(ff.handle)
}

// Draw renders the page's form fields and widget annotations onto a bitmap
// viewport, on top of whatever the page render already placed there.
func (ff *FormFill) Draw(bm *Bitmap, pg *Page, startX, startY, sizeX, sizeY, rotate int, flags ffi.RenderFlags) {
	ff.forms.FPDF_FFLDraw(ff.handle, bm.handle, pg.handle,
		int32(startX), int32(startY), int32(sizeX), int32(sizeY), int32(rotate), flags)
}

// SetHighlightColor sets the highlight color drawn behind fields of the
// given type.
func (ff *FormFill) SetHighlightColor(fieldType ffi.FormFieldType, argb uint64) {
	ff.forms.FPDF_SetFormFieldHighlightColor(ff.handle, fieldType, argb)
}

// SetHighlightAlpha sets the transparency of field highlights.
func (ff *FormFill) SetHighlightAlpha(alpha uint8) {
	ff.forms.FPDF_SetFormFieldHighlightAlpha(ff.handle, alpha)
}

// FieldType returns the form field type behind a widget annotation.
func (ff *FormFill) FieldType(a *Annotation) ffi.FormFieldType {
	return ff.forms.FPDFAnnot_GetFormFieldType(ff.handle, a.handle)
}

// FieldName returns the fully qualified name of the field behind a widget
// annotation.
func (ff *FormFill) FieldName(a *Annotation) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return ff.forms.FPDFAnnot_GetFormFieldName(ff.handle, a.handle, buf)
	})
}

// FieldValue returns the current value of the field behind a widget
// annotation.
func (ff *FormFill) FieldValue(a *Annotation) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return ff.forms.FPDFAnnot_GetFormFieldValue(ff.handle, a.handle, buf)
	})
}

// FieldFlags returns the field flag bits of the field behind a widget
// annotation.
func (ff *FormFill) FieldFlags(a *Annotation) int {
	return int(ff.forms.FPDFAnnot_GetFormFieldFlags(ff.handle, a.handle))
}

// IsChecked reports whether a checkbox or radio button widget is on.
func (ff *FormFill) IsChecked(a *Annotation) bool {
	return bindings.IsTrue(ff.forms.FPDFAnnot_IsChecked(ff.handle, a.handle))
}
