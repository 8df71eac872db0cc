package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDF_CreateNewDocument() ffi.Document {
	return b.api.createNewDocument()
}

func (b *Bindings) FPDFPage_New(doc ffi.Document, pageIndex int32, width, height float64) ffi.Page {
	return b.api.pageNew(doc, pageIndex, width, height)
}

func (b *Bindings) FPDFPage_Delete(doc ffi.Document, pageIndex int32) {
	b.api.pageDelete(doc, pageIndex)
}

func (b *Bindings) FPDF_ImportPages(dest, src ffi.Document, pageRange string, index int32) ffi.Bool {
	return b.api.importPages(dest, src, cstrOrNil(pageRange), index)
}

func (b *Bindings) FPDF_ImportPagesByIndex(dest, src ffi.Document, pageIndices []int32, index int32) ffi.Bool {
	return b.api.importPagesByIndex(dest, src, pageIndices, uint64(len(pageIndices)), index)
}

func (b *Bindings) FPDF_ImportNPagesToOne(src ffi.Document, outputWidth, outputHeight float32, columns, rows uint64) ffi.Document {
	return b.api.importNPagesToOne(src, outputWidth, outputHeight, columns, rows)
}

func (b *Bindings) FPDFPage_GenerateContent(page ffi.Page) ffi.Bool {
	return b.api.pageGenerateContent(page)
}

func (b *Bindings) FPDFPage_Flatten(page ffi.Page, flag int32) int32 {
	return b.api.pageFlatten(page, flag)
}
