package observability

import "testing"

func TestFields(t *testing.T) {
	cases := []struct {
		f    Field
		key  string
		want interface{}
	}{
		{String("backend", "dynamic"), "backend", "dynamic"},
		{Int("pages", 3), "pages", 3},
		{Int64("bytes", 1<<32), "bytes", int64(1 << 32)},
		{Handle("doc", uint64(0x1f40)), "doc", "0x1f40"},
	}
	for _, tc := range cases {
		if tc.f.Key() != tc.key {
			t.Fatalf("key: got %q, want %q", tc.f.Key(), tc.key)
		}
		if tc.f.Value() != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.key, tc.f.Value(), tc.want)
		}
	}
}

func TestNopLoggerWithReturnsNop(t *testing.T) {
	l := NopLogger{}.With(String("k", "v"))
	if _, ok := l.(NopLogger); !ok {
		t.Fatalf("With returned %T", l)
	}
}
