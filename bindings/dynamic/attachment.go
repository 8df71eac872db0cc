package dynamic

import "github.com/wudi/pdfium/ffi"

func (b *Bindings) FPDFDoc_GetAttachmentCount(doc ffi.Document) int32 {
	return b.api.docGetAttachmentCount(doc)
}

func (b *Bindings) FPDFDoc_GetAttachment(doc ffi.Document, index int32) ffi.Attachment {
	return b.api.docGetAttachment(doc, index)
}

func (b *Bindings) FPDFDoc_AddAttachment(doc ffi.Document, name string) ffi.Attachment {
	wide := widestr(name)
	if wide == nil {
		return 0
	}
	return b.api.docAddAttachment(doc, wide)
}

func (b *Bindings) FPDFDoc_DeleteAttachment(doc ffi.Document, index int32) ffi.Bool {
	return b.api.docDeleteAttachment(doc, index)
}

func (b *Bindings) FPDFAttachment_GetName(attachment ffi.Attachment, buf []byte) uint64 {
	return b.api.attachmentGetName(attachment, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAttachment_GetFile(attachment ffi.Attachment, buf []byte, outLen *uint64) ffi.Bool {
	return b.api.attachmentGetFile(attachment, buf, uint64(len(buf)), outLen)
}

func (b *Bindings) FPDFAttachment_SetFile(attachment ffi.Attachment, doc ffi.Document, data []byte) ffi.Bool {
	return b.api.attachmentSetFile(attachment, doc, data, uint64(len(data)))
}

func (b *Bindings) FPDFAttachment_GetStringValue(attachment ffi.Attachment, key string, buf []byte) uint64 {
	return b.api.attachmentGetStringValue(attachment, cstrOrNil(key), buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAttachment_SetStringValue(attachment ffi.Attachment, key, value string) ffi.Bool {
	wide := widestr(value)
	if wide == nil {
		return ffi.False
	}
	return b.api.attachmentSetStringValue(attachment, cstrOrNil(key), wide)
}

func (b *Bindings) FPDFAttachment_HasKey(attachment ffi.Attachment, key string) ffi.Bool {
	return b.api.attachmentHasKey(attachment, cstrOrNil(key))
}

func (b *Bindings) FPDFAttachment_GetValueType(attachment ffi.Attachment, key string) ffi.ObjectValueType {
	return b.api.attachmentGetValueType(attachment, cstrOrNil(key))
}

func (b *Bindings) FPDF_GetSignatureCount(doc ffi.Document) int32 {
	return b.api.getSignatureCount(doc)
}

func (b *Bindings) FPDF_GetSignatureObject(doc ffi.Document, index int32) ffi.Signature {
	return b.api.getSignatureObject(doc, index)
}

func (b *Bindings) FPDFSignatureObj_GetContents(signature ffi.Signature, buf []byte) uint64 {
	return b.api.signatureGetContents(signature, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFSignatureObj_GetByteRange(signature ffi.Signature, byteRange []int32) uint64 {
	return b.api.signatureGetByteRange(signature, byteRange, uint64(len(byteRange)))
}

func (b *Bindings) FPDFSignatureObj_GetSubFilter(signature ffi.Signature, buf []byte) uint64 {
	return b.api.signatureGetSubFilter(signature, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFSignatureObj_GetReason(signature ffi.Signature, buf []byte) uint64 {
	return b.api.signatureGetReason(signature, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFSignatureObj_GetTime(signature ffi.Signature, buf []byte) uint64 {
	return b.api.signatureGetTime(signature, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFSignatureObj_GetDocMDPPermission(signature ffi.Signature) uint32 {
	return b.api.signatureGetDocMDPPermission(signature)
}
