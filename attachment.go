package pdfium

import (
	"fmt"

	"github.com/wudi/pdfium/bindings"
	"github.com/wudi/pdfium/ffi"
)

// Attachment wraps one embedded file.
type Attachment struct {
	p      *Pdfium
	doc    *Document
	handle ffi.Attachment
}

// Attachments returns a live view over the document's embedded files.
func (d *Document) Attachments() Collection[*Attachment] {
	return NewCollection(
		func() int { return int(d.p.b.FPDFDoc_GetAttachmentCount(d.handle)) },
		func(i int) (*Attachment, error) {
			handle := d.p.b.FPDFDoc_GetAttachment(d.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("attachment %d: %w", i, d.p.extendedError())
			}
			return &Attachment{p: d.p, doc: d, handle: handle}, nil
		},
	)
}

// AddAttachment creates an embedded file entry under name. The content is
// set separately with SetData.
func (d *Document) AddAttachment(name string) (*Attachment, error) {
	handle := d.p.b.FPDFDoc_AddAttachment(d.handle, name)
	if handle == 0 {
		return nil, fmt.Errorf("add attachment %q: %w", name, d.p.extendedError())
	}
	return &Attachment{p: d.p, doc: d, handle: handle}, nil
}

// DeleteAttachment removes the embedded file at index.
func (d *Document) DeleteAttachment(index int) error {
	if !bindings.IsTrue(d.p.b.FPDFDoc_DeleteAttachment(d.handle, int32(index))) {
		return fmt.Errorf("delete attachment %d: %w", index, d.p.extendedError())
	}
	return nil
}

// Handle exposes the raw native handle.
func (at *Attachment) Handle() ffi.Attachment { return at.handle }

// Name returns the attachment's file name.
func (at *Attachment) Name() (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return at.p.b.FPDFAttachment_GetName(at.handle, buf)
	})
}

// Data returns the embedded file's content.
func (at *Attachment) Data() ([]byte, error) {
	var outLen uint64
	if !bindings.IsTrue(at.p.b.FPDFAttachment_GetFile(at.handle, nil, &outLen)) {
		return nil, fmt.Errorf("attachment data: %w", at.p.extendedError())
	}
	if outLen == 0 {
		return nil, nil
	}
	buf := make([]byte, outLen)
	if !bindings.IsTrue(at.p.b.FPDFAttachment_GetFile(at.handle, buf, &outLen)) {
		return nil, fmt.Errorf("attachment data: %w", at.p.extendedError())
	}
	return buf[:outLen], nil
}

// SetData replaces the embedded file's content.
func (at *Attachment) SetData(data []byte) error {
	if !bindings.IsTrue(at.p.b.FPDFAttachment_SetFile(at.handle, at.doc.handle, data)) {
		return fmt.Errorf("set attachment data: %w", at.p.extendedError())
	}
	return nil
}

// StringValue returns the attachment dictionary string under key, e.g.
// "CreationDate" or "CheckSum".
func (at *Attachment) StringValue(key string) (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return at.p.b.FPDFAttachment_GetStringValue(at.handle, key, buf)
	})
}

// SetStringValue sets the attachment dictionary string under key.
func (at *Attachment) SetStringValue(key, value string) error {
	if !bindings.IsTrue(at.p.b.FPDFAttachment_SetStringValue(at.handle, key, value)) {
		return fmt.Errorf("set %q: %w", key, at.p.extendedError())
	}
	return nil
}

// HasKey reports whether the attachment dictionary has an entry under key.
func (at *Attachment) HasKey(key string) bool {
	return bindings.IsTrue(at.p.b.FPDFAttachment_HasKey(at.handle, key))
}

// ValueType returns the PDF object type of the dictionary entry under key.
func (at *Attachment) ValueType(key string) ffi.ObjectValueType {
	return at.p.b.FPDFAttachment_GetValueType(at.handle, key)
}

// Signature wraps one digital signature object.
type Signature struct {
	p      *Pdfium
	handle ffi.Signature
}

// Signatures returns a live view over the document's digital signatures.
func (d *Document) Signatures() Collection[*Signature] {
	return NewCollection(
		func() int { return int(d.p.b.FPDF_GetSignatureCount(d.handle)) },
		func(i int) (*Signature, error) {
			handle := d.p.b.FPDF_GetSignatureObject(d.handle, int32(i))
			if handle == 0 {
				return nil, fmt.Errorf("signature %d: %w", i, d.p.extendedError())
			}
			return &Signature{p: d.p, handle: handle}, nil
		},
	)
}

// Handle exposes the raw native handle.
func (s *Signature) Handle() ffi.Signature { return s.handle }

// Contents returns the signature's DER-encoded value.
func (s *Signature) Contents() ([]byte, error) {
	return bytesValue(func(buf []byte) uint64 {
		return s.p.b.FPDFSignatureObj_GetContents(s.handle, buf)
	})
}

// ByteRange returns the signed byte ranges as offset/length pairs.
func (s *Signature) ByteRange() ([]int32, error) {
	n := s.p.b.FPDFSignatureObj_GetByteRange(s.handle, nil)
	if n == 0 {
		return nil, nil
	}
	out := make([]int32, n)
	if got := s.p.b.FPDFSignatureObj_GetByteRange(s.handle, out); got == 0 {
		return nil, fmt.Errorf("byte range: %w", s.p.extendedError())
	}
	return out, nil
}

// SubFilter returns the signature's encoding name, e.g.
// "adbe.pkcs7.detached".
func (s *Signature) SubFilter() (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return s.p.b.FPDFSignatureObj_GetSubFilter(s.handle, buf)
	})
}

// Reason returns the signer's stated reason.
func (s *Signature) Reason() (string, error) {
	return utf16Value(func(buf []byte) uint64 {
		return s.p.b.FPDFSignatureObj_GetReason(s.handle, buf)
	})
}

// Time returns the signing time as a PDF date string, used only when the
// signature itself carries no timestamp.
func (s *Signature) Time() (string, error) {
	return asciiValue(func(buf []byte) uint64 {
		return s.p.b.FPDFSignatureObj_GetTime(s.handle, buf)
	})
}

// DocMDPPermission returns the document modification policy level, 1 to 3,
// or 0 when unset.
func (s *Signature) DocMDPPermission() int {
	return int(s.p.b.FPDFSignatureObj_GetDocMDPPermission(s.handle))
}
