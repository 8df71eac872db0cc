package ocr

import (
	"context"
	"testing"
)

type captureEngine struct {
	last Input
}

func (captureEngine) Name() string { return "capture" }

func (e *captureEngine) Recognize(_ context.Context, in Input) (Result, error) {
	e.last = in
	return Result{InputID: in.ID, PlainText: "hello"}, nil
}

func TestOptionsApply(t *testing.T) {
	in := Input{}
	for _, opt := range []Option{
		WithLanguages("eng", "deu"),
		WithDPI(150),
		WithTesseractPSM(6),
		WithMetadata(map[string]string{"tessedit_char_whitelist": "0123456789"}),
	} {
		opt(&in)
	}
	if len(in.Languages) != 2 || in.Languages[0] != "eng" {
		t.Fatalf("languages: got %v", in.Languages)
	}
	if in.DPI != 150 {
		t.Fatalf("dpi: got %d, want 150", in.DPI)
	}
	// WithMetadata replaces the map wholesale, so the PSM set before it is gone.
	if in.Metadata["tessedit_char_whitelist"] != "0123456789" {
		t.Fatalf("metadata: got %v", in.Metadata)
	}
	if _, ok := in.Metadata["tessedit_pageseg_mode"]; ok {
		t.Fatal("WithMetadata should replace earlier metadata")
	}
}

func TestWithMetadataCopies(t *testing.T) {
	src := map[string]string{"k": "v"}
	in := Input{}
	WithMetadata(src)(&in)
	src["k"] = "changed"
	if in.Metadata["k"] != "v" {
		t.Fatalf("metadata aliased the caller's map: got %q", in.Metadata["k"])
	}
}

func TestEngineReceivesInput(t *testing.T) {
	e := &captureEngine{}
	in := Input{ID: "page-3", PageIndex: 3, DPI: RenderDPI}
	res, err := e.Recognize(context.Background(), in)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if res.InputID != "page-3" {
		t.Fatalf("input id: got %q, want %q", res.InputID, "page-3")
	}
	if e.last.DPI != RenderDPI {
		t.Fatalf("dpi: got %d, want %d", e.last.DPI, RenderDPI)
	}
}
