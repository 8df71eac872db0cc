package ffi

import (
	"bytes"
	"testing"
)

func TestCString(t *testing.T) {
	buf, err := CString("hello")
	if err != nil {
		t.Fatalf("cstring: %v", err)
	}
	if !bytes.Equal(buf, []byte("hello\x00")) {
		t.Fatalf("cstring: got %q", buf)
	}

	buf, err = CString("")
	if err != nil || !bytes.Equal(buf, []byte{0}) {
		t.Fatalf("empty cstring: got %q, %v", buf, err)
	}
}

func TestCStringRejectsEmbeddedNUL(t *testing.T) {
	if _, err := CString("ab\x00cd"); err == nil {
		t.Fatal("embedded NUL accepted")
	}
}

func TestUTF16LERoundTrip(t *testing.T) {
	for _, s := range []string{"", "Title", "Grüße", "ページ", "a\U0001F600b"} {
		encoded, err := EncodeUTF16LE(s)
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		if len(encoded) < 2 || encoded[len(encoded)-1] != 0 || encoded[len(encoded)-2] != 0 {
			t.Fatalf("encode %q: missing terminator in % x", s, encoded)
		}
		decoded, err := DecodeUTF16LE(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if decoded != s {
			t.Fatalf("round trip: got %q, want %q", decoded, s)
		}
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	// Buffers sized in bytes sometimes arrive with a stray trailing byte.
	encoded, err := EncodeUTF16LE("ok")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeUTF16LE(append(encoded, 0))
	if err != nil || decoded != "ok" {
		t.Fatalf("odd-length decode: got %q, %v", decoded, err)
	}
}

func TestDecodeUTF16LEStripsTrailingNULs(t *testing.T) {
	encoded, err := EncodeUTF16LE("x")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeUTF16LE(append(encoded, 0, 0, 0, 0))
	if err != nil || decoded != "x" {
		t.Fatalf("padded decode: got %q, %v", decoded, err)
	}
}
