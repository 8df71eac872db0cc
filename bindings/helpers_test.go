package bindings

import (
	"errors"
	"testing"

	"github.com/wudi/pdfium/ffi"
)

func TestBoolConversions(t *testing.T) {
	if !IsTrue(ffi.True) || IsTrue(ffi.False) {
		t.Fatal("IsTrue does not match the C convention")
	}
	// Any non-zero value counts as true.
	if !IsTrue(ffi.Bool(42)) {
		t.Fatal("non-zero bool treated as false")
	}
	if Bool(true) != ffi.True || Bool(false) != ffi.False {
		t.Fatal("Bool round trip broken")
	}
}

func TestErrorCodeToError(t *testing.T) {
	cases := []struct {
		code ffi.ErrorCode
		want error
	}{
		{ffi.ErrSuccess, nil},
		{ffi.ErrUnknown, ErrUnknown},
		{ffi.ErrFile, ErrFile},
		{ffi.ErrFormat, ErrFormat},
		{ffi.ErrPassword, ErrPassword},
		{ffi.ErrSecurity, ErrSecurity},
		{ffi.ErrPage, ErrPage},
	}
	for _, tc := range cases {
		got := ErrorCodeToError(tc.code)
		if !errors.Is(got, tc.want) {
			t.Fatalf("code %d: got %v, want %v", tc.code, got, tc.want)
		}
	}
	if ErrorCodeToError(ffi.ErrorCode(99)) == nil {
		t.Fatal("unrecognized code mapped to success")
	}
}

type lastErrorLib struct {
	Unimplemented
	code ffi.ErrorCode
}

func (l lastErrorLib) FPDF_GetLastError() ffi.ErrorCode { return l.code }

func TestLastError(t *testing.T) {
	if err := LastError(lastErrorLib{code: ffi.ErrSuccess}); err != nil {
		t.Fatalf("success mapped to %v", err)
	}
	if err := LastError(lastErrorLib{code: ffi.ErrFormat}); !errors.Is(err, ErrFormat) {
		t.Fatalf("format error mapped to %v", err)
	}
}

func TestFullPromotion(t *testing.T) {
	core := struct{ UnimplementedCore }{}
	b := Full(core)

	if ExtendedAvailable(b) {
		t.Fatal("promoted core claims extended entry points")
	}
	// A complete backend reports available by default.
	if !ExtendedAvailable(&Unimplemented{}) {
		t.Fatal("full contract reported unavailable")
	}
	// Extended calls on the promoted value degrade to null results, not panics.
	if doc := b.FPDF_CreateNewDocument(); doc != 0 {
		t.Fatalf("extended call on core backend returned %v", doc)
	}
}
