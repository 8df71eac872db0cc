package wasm

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFDoc_GetAttachmentCount(doc ffi.Document) int32 {
	return int32(uint32(b.call("FPDFDoc_GetAttachmentCount", uint64(doc))))
}

func (b *Bindings) FPDFDoc_GetAttachment(doc ffi.Document, index int32) ffi.Attachment {
	return ffi.Attachment(uint32(b.call("FPDFDoc_GetAttachment", uint64(doc), uint64(uint32(index)))))
}

func (b *Bindings) FPDFDoc_AddAttachment(doc ffi.Document, name string) ffi.Attachment {
	wide := wstr(name)
	if wide == nil {
		return 0
	}
	m := b.scratch()
	defer m.release()
	return ffi.Attachment(uint32(b.call("FPDFDoc_AddAttachment", uint64(doc), m.bytes(wide))))
}

func (b *Bindings) FPDFDoc_DeleteAttachment(doc ffi.Document, index int32) ffi.Bool {
	return ffi.Bool(int32(uint32(b.call("FPDFDoc_DeleteAttachment", uint64(doc), uint64(uint32(index))))))
}

func (b *Bindings) FPDFAttachment_GetName(attachment ffi.Attachment, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAttachment_GetName", uint64(attachment), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFAttachment_GetFile(attachment ffi.Attachment, buf []byte, outLen *uint64) ffi.Bool {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	lenPtr := m.buffer(4)
	ok := ffi.Bool(int32(uint32(b.call("FPDFAttachment_GetFile", uint64(attachment), bufPtr, uint64(uint32(len(buf))), lenPtr))))
	m.copyOut(bufPtr, buf)
	if outLen != nil {
		*outLen = uint64(m.u32(lenPtr))
	}
	return ok
}

func (b *Bindings) FPDFAttachment_SetFile(attachment ffi.Attachment, doc ffi.Document, data []byte) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAttachment_SetFile",
		uint64(attachment), uint64(doc), m.bytes(data), uint64(uint32(len(data)))))))
}

func (b *Bindings) FPDFAttachment_GetStringValue(attachment ffi.Attachment, key string, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	keyPtr := m.bytes(cstr(key))
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFAttachment_GetStringValue", uint64(attachment), keyPtr, bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFAttachment_SetStringValue(attachment ffi.Attachment, key, value string) ffi.Bool {
	wide := wstr(value)
	if wide == nil {
		return ffi.False
	}
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAttachment_SetStringValue",
		uint64(attachment), m.bytes(cstr(key)), m.bytes(wide)))))
}

func (b *Bindings) FPDFAttachment_HasKey(attachment ffi.Attachment, key string) ffi.Bool {
	m := b.scratch()
	defer m.release()
	return ffi.Bool(int32(uint32(b.call("FPDFAttachment_HasKey", uint64(attachment), m.bytes(cstr(key))))))
}

func (b *Bindings) FPDFAttachment_GetValueType(attachment ffi.Attachment, key string) ffi.ObjectValueType {
	m := b.scratch()
	defer m.release()
	return ffi.ObjectValueType(int32(uint32(b.call("FPDFAttachment_GetValueType", uint64(attachment), m.bytes(cstr(key))))))
}

func (b *Bindings) FPDF_GetSignatureCount(doc ffi.Document) int32 {
	return int32(uint32(b.call("FPDF_GetSignatureCount", uint64(doc))))
}

func (b *Bindings) FPDF_GetSignatureObject(doc ffi.Document, index int32) ffi.Signature {
	return ffi.Signature(uint32(b.call("FPDF_GetSignatureObject", uint64(doc), uint64(uint32(index)))))
}

func (b *Bindings) FPDFSignatureObj_GetContents(signature ffi.Signature, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFSignatureObj_GetContents", uint64(signature), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFSignatureObj_GetByteRange(signature ffi.Signature, byteRange []int32) uint64 {
	m := b.scratch()
	defer m.release()
	p := m.buffer(len(byteRange) * 4)
	n := uint64(uint32(b.call("FPDFSignatureObj_GetByteRange", uint64(signature), p, uint64(uint32(len(byteRange))))))
	for i := range byteRange {
		byteRange[i] = m.i32(p + uint64(i*4))
	}
	return n
}

func (b *Bindings) FPDFSignatureObj_GetSubFilter(signature ffi.Signature, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFSignatureObj_GetSubFilter", uint64(signature), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFSignatureObj_GetReason(signature ffi.Signature, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFSignatureObj_GetReason", uint64(signature), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFSignatureObj_GetTime(signature ffi.Signature, buf []byte) uint64 {
	m := b.scratch()
	defer m.release()
	bufPtr := m.buffer(len(buf))
	n := uint64(uint32(b.call("FPDFSignatureObj_GetTime", uint64(signature), bufPtr, uint64(uint32(len(buf))))))
	m.copyOut(bufPtr, buf)
	return n
}

func (b *Bindings) FPDFSignatureObj_GetDocMDPPermission(signature ffi.Signature) uint32 {
	return uint32(b.call("FPDFSignatureObj_GetDocMDPPermission", uint64(signature)))
}
