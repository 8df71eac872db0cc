// Package ocr runs optical character recognition over rendered PDF pages.
// The Engine contract is transport-agnostic so recognition can be backed by a
// local Tesseract install, a native library, or a remote service; the default
// engine uses gosseract.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strconv"

	pdfium "github.com/wudi/pdfium"
	"github.com/wudi/pdfium/ffi"
)

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG ImageFormat = "image/png"
)

// Input is a single rendered image submitted for OCR.
type Input struct {
	// ID is an optional caller-provided identifier echoed back in the Result.
	ID string
	// Image is the encoded payload in the format declared by Format.
	Image  []byte
	Format ImageFormat
	// PageIndex links the input back to the zero-based page it came from.
	PageIndex int
	// DPI is the effective resolution of the rendering; zero means unknown.
	DPI int
	// Languages lists trained-data hints such as "eng" or "deu".
	Languages []string
	// Metadata passes engine-specific knobs through without hard-coding them
	// into the API surface.
	Metadata map[string]string
}

// Word is a single recognized token with its pixel bounds, origin upper left.
type Word struct {
	Text       string
	X, Y       float64
	Width      float64
	Height     float64
	Confidence float64
}

// Result is the OCR output for one input.
type Result struct {
	InputID    string
	PlainText  string
	Words      []Word
	Confidence float64
	Language   string
}

// Engine is the provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// Option mutates an input before recognition.
type Option func(*Input)

// WithLanguages sets language hints.
func WithLanguages(langs ...string) Option {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI overrides the resolution reported to the engine.
func WithDPI(dpi int) Option {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets provider-specific variables.
func WithMetadata(metadata map[string]string) Option {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// WithTesseractPSM sets Tesseract's page segmentation mode.
func WithTesseractPSM(mode int) Option {
	return func(in *Input) {
		if in.Metadata == nil {
			in.Metadata = make(map[string]string)
		}
		in.Metadata["tessedit_pageseg_mode"] = strconv.Itoa(mode)
	}
}

// RenderDPI is the default rasterization resolution for RecognizePage.
// Tesseract's accuracy drops sharply below roughly 150 DPI.
const RenderDPI = 300

// RecognizePage rasterizes a page at RenderDPI, encodes it as PNG and runs
// the engine over it. The page is rendered without annotations.
func RecognizePage(ctx context.Context, engine Engine, pg *pdfium.Page, opts ...Option) (Result, error) {
	in, err := InputFromPage(pg, opts...)
	if err != nil {
		return Result{}, err
	}
	return engine.Recognize(ctx, in)
}

// InputFromPage renders a page to a PNG-encoded OCR input.
func InputFromPage(pg *pdfium.Page, opts ...Option) (Input, error) {
	const scale = float32(RenderDPI) / 72
	width := int(pg.Width()*scale + 0.5)
	height := int(pg.Height()*scale + 0.5)

	bm, err := pg.Render(width, height, ffi.RenderFlags(0))
	if err != nil {
		return Input{}, fmt.Errorf("render page %d: %w", pg.Index(), err)
	}
	defer bm.Close()

	img, err := bm.Image()
	if err != nil {
		return Input{}, fmt.Errorf("convert page %d: %w", pg.Index(), err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Input{}, fmt.Errorf("encode page %d: %w", pg.Index(), err)
	}

	in := Input{
		ID:        fmt.Sprintf("page-%d", pg.Index()),
		Image:     buf.Bytes(),
		Format:    ImageFormatPNG,
		PageIndex: pg.Index(),
		DPI:       RenderDPI,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}
