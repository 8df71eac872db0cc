package pdfium

import (
	"fmt"
	"io"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// Document wraps an open FPDF_DOCUMENT. It stays valid until Close (or until
// the owning Pdfium is closed, which invalidates every handle).
type Document struct {
	p      *Pdfium
	handle ffi.Document
	closed bool
}

// Handle exposes the raw native handle.
func (d *Document) Handle() ffi.Document { return d.handle }

// Close releases the document. Idempotent.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.p.b.FPDF_CloseDocument(d.handle)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return int(d.p.b.FPDF_GetPageCount(d.handle))
}

// FileVersion returns the PDF version as an integer, 14 for 1.4, 20 for 2.0.
// Documents created in memory have no version.
func (d *Document) FileVersion() (int, error) {
	var v int32
	if !bindings.IsTrue(d.p.b.FPDF_GetFileVersion(d.handle, &v)) {
		return 0, fmt.Errorf("file version: %w", d.p.lastError())
	}
	return int(v), nil
}

// Permissions returns the document permission bits. Unencrypted documents
// report all bits set.
func (d *Document) Permissions() ffi.Permissions {
	return ffi.Permissions(d.p.b.FPDF_GetDocPermissions(d.handle))
}

// SecurityHandlerRevision returns the encryption revision, or -1 when the
// document is not encrypted.
func (d *Document) SecurityHandlerRevision() int {
	return int(d.p.b.FPDF_GetSecurityHandlerRevision(d.handle))
}

// FileIdentifier returns one of the document's two file identifiers as raw
// bytes, or nil when absent.
func (d *Document) FileIdentifier(idType ffi.FileIDType) ([]byte, error) {
	raw, err := bytesValue(func(buf []byte) uint64 {
		return d.p.b.FPDF_GetFileIdentifier(d.handle, idType, buf)
	})
	if err != nil {
		return nil, err
	}
	// The identifier is length-prefixed by the protocol only; strip the
	// terminating NUL Pdfium appends.
	if n := len(raw); n > 0 && raw[n-1] == 0 {
		raw = raw[:n-1]
	}
	return raw, nil
}

// Metadata returns the value of an information-dictionary tag (Title,
// Author, Subject, Keywords, Creator, Producer, CreationDate, ModDate).
// Absent tags yield the empty string.
func (d *Document) Metadata(tag string) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return d.p.b.FPDF_GetMetaText(d.handle, tag, buf)
	})
}

// PageLabel returns the display label of a page, or the empty string when
// the document defines none.
func (d *Document) PageLabel(pageIndex int) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return d.p.b.FPDF_GetPageLabel(d.handle, int32(pageIndex), buf)
	})
}

// FormType reports which kind of form data the document carries.
func (d *Document) FormType() ffi.FormType {
	return d.p.b.FPDF_GetFormType(d.handle)
}

// PageMode reports how the document asks viewers to present itself.
func (d *Document) PageMode() ffi.PageMode {
	return d.p.b.FPDFDoc_GetPageMode(d.handle)
}

// IsTagged reports whether the document is a tagged PDF.
func (d *Document) IsTagged() bool {
	return bindings.IsTrue(d.p.b.FPDFCatalog_IsTagged(d.handle))
}

// Page opens page pageIndex. The caller owns the returned page and must
// close it.
func (d *Document) Page(pageIndex int) (*Page, error) {
	if pageIndex < 0 || pageIndex >= d.PageCount() {
		return nil, fmt.Errorf("%w: page %d of %d", ErrOutOfBounds, pageIndex, d.PageCount())
	}
	handle := d.p.b.FPDF_LoadPage(d.handle, int32(pageIndex))
	if handle == 0 {
		return nil, fmt.Errorf("load page %d: %w", pageIndex, d.p.lastError())
	}
	return &Page{doc: d, handle: handle, index: pageIndex}, nil
}

// PageSize returns the size of a page in points without loading it.
func (d *Document) PageSize(pageIndex int) (width, height float32, err error) {
	var size ffi.SizeF
	if !bindings.IsTrue(d.p.b.FPDF_GetPageSizeByIndexF(d.handle, int32(pageIndex), &size)) {
		return 0, 0, fmt.Errorf("page size %d: %w", pageIndex, d.p.lastError())
	}
	return size.Width, size.Height, nil
}

// NewPage inserts an empty page of the given size in points at pageIndex.
func (d *Document) NewPage(pageIndex int, width, height float64) (*Page, error) {
	handle := d.p.b.FPDFPage_New(d.handle, int32(pageIndex), width, height)
	if handle == 0 {
		return nil, fmt.Errorf("new page: %w", d.p.extendedError())
	}
	return &Page{doc: d, handle: handle, index: pageIndex}, nil
}

// DeletePage removes the page at pageIndex.
func (d *Document) DeletePage(pageIndex int) {
	d.p.b.FPDFPage_Delete(d.handle, int32(pageIndex))
}

// ImportPages copies pages from src into d before index. pageRange uses
// Pdfium's "1,3,5-7" syntax; empty imports every page.
func (d *Document) ImportPages(src *Document, pageRange string, index int) error {
	if !bindings.IsTrue(d.p.b.FPDF_ImportPages(d.handle, src.handle, pageRange, int32(index))) {
		return fmt.Errorf("import pages: %w", d.p.extendedError())
	}
	return nil
}

// ImportPagesByIndex copies the zero-based pages listed in indices from src
// into d before index. nil imports every page.
func (d *Document) ImportPagesByIndex(src *Document, indices []int32, index int) error {
	if !bindings.IsTrue(d.p.b.FPDF_ImportPagesByIndex(d.handle, src.handle, indices, int32(index))) {
		return fmt.Errorf("import pages by index: %w", d.p.extendedError())
	}
	return nil
}

// NUpFrom lays src out n-up onto pages of the given output size and returns
// the new document.
func (d *Document) NUpFrom(src *Document, outputWidth, outputHeight float32, columns, rows uint64) (*Document, error) {
	handle := d.p.b.FPDF_ImportNPagesToOne(src.handle, outputWidth, outputHeight, columns, rows)
	if handle == 0 {
		return nil, fmt.Errorf("n-up import: %w", d.p.extendedError())
	}
	return &Document{p: d.p, handle: handle}, nil
}

// Save serializes the document to w. The backend must provide save support;
// passing one without it is a compile-time error. saver is normally the same
// backend instance handed to New.
func (d *Document) Save(saver bindings.SaveBindings, w io.Writer, flags ffi.SaveFlags) error {
	if !bindings.IsTrue(saver.FPDF_SaveAsCopy(d.handle, w, flags)) {
		return fmt.Errorf("save: %w", d.p.lastError())
	}
	return nil
}

// SaveWithVersion is Save with an explicit output PDF version, 14 for 1.4.
func (d *Document) SaveWithVersion(saver bindings.SaveBindings, w io.Writer, flags ffi.SaveFlags, fileVersion int) error {
	if !bindings.IsTrue(saver.FPDF_SaveWithVersion(d.handle, w, flags, int32(fileVersion))) {
		return fmt.Errorf("save with version: %w", d.p.lastError())
	}
	return nil
}
