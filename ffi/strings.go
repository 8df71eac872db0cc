package ffi

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CString converts s to the NUL-terminated byte buffer Pdfium expects for
// FPDF_BYTESTRING arguments. Pdfium never retains these buffers past the
// call's return, so the caller only needs to keep the slice alive for the
// duration of the call. An embedded NUL byte cannot be represented and is
// rejected before any native call is made.
func CString(s string) ([]byte, error) {
	if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
		return nil, fmt.Errorf("ffi: string contains embedded NUL at byte %d", i)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}

var (
	utf16leDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// DecodeUTF16LE converts a Pdfium UTF-16LE buffer to a Go string. Pdfium
// terminates these buffers with two NUL bytes; the terminator and any
// trailing NULs are stripped.
func DecodeUTF16LE(buf []byte) (string, error) {
	if len(buf)%2 != 0 {
		buf = buf[:len(buf)-1]
	}
	out, _, err := transform.Bytes(utf16leDecoder.NewDecoder(), buf)
	if err != nil {
		return "", fmt.Errorf("ffi: decode utf-16le: %w", err)
	}
	return string(bytes.TrimRight(out, "\x00")), nil
}

// EncodeUTF16LE converts a Go string to the terminated UTF-16LE form Pdfium
// expects for FPDF_WIDESTRING arguments.
func EncodeUTF16LE(s string) ([]byte, error) {
	out, _, err := transform.Bytes(utf16leDecoder.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("ffi: encode utf-16le: %w", err)
	}
	return append(out, 0, 0), nil
}
