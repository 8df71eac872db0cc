package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDF_InitLibrary()    { b.call("FPDF_InitLibrary") }
func (b *Bindings) FPDF_DestroyLibrary() { b.call("FPDF_DestroyLibrary") }

func (b *Bindings) FPDF_GetLastError() ffi.ErrorCode {
	return ffi.ErrorCode(uint32(b.call("FPDF_GetLastError")))
}

// FPDF_LoadMemDocument copies the document into guest memory, which then
// owns it until FPDF_CloseDocument; the guest allocation is freed there.
func (b *Bindings) FPDF_LoadMemDocument(data []byte, password string) ffi.Document {
	m := b.scratch()
	dataPtr := m.bytes(data)
	pwPtr := m.bytes(cstrOrNil(password))
	doc := ffi.Document(uint32(b.call("FPDF_LoadMemDocument", dataPtr, uint64(uint32(len(data))), pwPtr)))
	if doc == 0 {
		m.release()
		return 0
	}
	// Free only the password; the document buffer must stay resident.
	if pwPtr != 0 {
		b.freeFn.Call(b.ctx, pwPtr)
	}
	b.docBufs[doc] = dataPtr
	return doc
}

func (b *Bindings) FPDF_CloseDocument(doc ffi.Document) {
	b.call("FPDF_CloseDocument", uint64(doc))
	if ptr, ok := b.docBufs[doc]; ok {
		b.freeFn.Call(b.ctx, ptr)
		delete(b.docBufs, doc)
	}
}

func (b *Bindings) FPDF_GetPageCount(doc ffi.Document) int32 {
	return int32(uint32(b.call("FPDF_GetPageCount", uint64(doc))))
}

func (b *Bindings) FPDF_GetFileVersion(doc ffi.Document, version *int32) ffi.Bool {
	m := b.scratch()
	defer m.release()
	p := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDF_GetFileVersion", uint64(doc), p))))
	if version != nil {
		*version = m.i32(p)
	}
	return ok
}

func (b *Bindings) FPDF_GetDocPermissions(doc ffi.Document) uint64 {
	return uint64(uint32(b.call("FPDF_GetDocPermissions", uint64(doc))))
}

func (b *Bindings) FPDF_GetSecurityHandlerRevision(doc ffi.Document) int32 {
	return int32(uint32(b.call("FPDF_GetSecurityHandlerRevision", uint64(doc))))
}

func (b *Bindings) FPDF_GetFileIdentifier(doc ffi.Document, idType ffi.FileIDType, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDF_GetFileIdentifier", uint64(doc), uint64(uint32(idType)), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDF_GetMetaText(doc ffi.Document, tag string, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	tagPtr := m.bytes(cstr(tag))
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDF_GetMetaText", uint64(doc), tagPtr, bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDF_GetPageLabel(doc ffi.Document, pageIndex int32, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDF_GetPageLabel", uint64(doc), uint64(uint32(pageIndex)), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDF_GetFormType(doc ffi.Document) ffi.FormType {
	return ffi.FormType(int32(uint32(b.call("FPDF_GetFormType", uint64(doc)))))
}

func (b *Bindings) FPDFDoc_GetPageMode(doc ffi.Document) ffi.PageMode {
	return ffi.PageMode(int32(uint32(b.call("FPDFDoc_GetPageMode", uint64(doc)))))
}

func (b *Bindings) FPDFCatalog_IsTagged(doc ffi.Document) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFCatalog_IsTagged", uint64(doc)))))
}
