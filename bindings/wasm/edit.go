package wasm

import (
	"encoding/binary"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDF_CreateNewDocument() ffi.Document {
	return ffi.Document(uint32(b.call("FPDF_CreateNewDocument")))
}

func (b *Bindings) FPDFPage_New(doc ffi.Document, pageIndex int32, width, height float64) ffi.Page {
	return ffi.Page(uint32(b.call("FPDFPage_New", uint64(doc), uint64(uint32(pageIndex)), f64arg(width), f64arg(height))))
}

func (b *Bindings) FPDFPage_Delete(doc ffi.Document, pageIndex int32) {
	b.call("FPDFPage_Delete", uint64(doc), uint64(uint32(pageIndex)))
}

func (b *Bindings) FPDF_ImportPages(dest, src ffi.Document, pageRange string, index int32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	rangePtr := m.bytes(cstrOrNil(pageRange))
	return ffi.Bool(int32(uint32(b.call("FPDF_ImportPages", uint64(dest), uint64(src), rangePtr, uint64(uint32(index))))))
}

func (b *Bindings) FPDF_ImportPagesByIndex(dest, src ffi.Document, pageIndices []int32, index int32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	var indicesPtr uint64
	if len(pageIndices) > 0 {
		buf := make([]byte, len(pageIndices)*4)
		for i, v := range pageIndices {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
		}
		indicesPtr = m.bytes(buf)
	}
	return ffi.Bool(int32(uint32(b.call("FPDF_ImportPagesByIndex", uint64(dest), uint64(src), indicesPtr, uint64(uint32(len(pageIndices))), uint64(uint32(index))))))
}

func (b *Bindings) FPDF_ImportNPagesToOne(src ffi.Document, outputWidth, outputHeight float32, columns, rows uint64) ffi.Document {
	return ffi.Document(uint32(b.call("FPDF_ImportNPagesToOne", uint64(src),
		f32arg(outputWidth), f32arg(outputHeight), uint64(uint32(columns)), uint64(uint32(rows)))))
}

func (b *Bindings) FPDFPage_GenerateContent(page ffi.Page) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFPage_GenerateContent", uint64(page)))))
}

func (b *Bindings) FPDFPage_Flatten(page ffi.Page, flag int32) int32 {
	return int32(uint32(b.call("FPDFPage_Flatten", uint64(page), uint64(uint32(flag)))))
}
