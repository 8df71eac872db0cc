package bindings

// Config selects the build variant of the native library being bound.
// Pdfium ships multiple build configurations with incompatible optional
// surfaces; the variant is chosen once at construction and never branches at
// call time. Enabling a flag against a library build that lacks the matching
// exports is a construction-time symbol-resolution error.
type Config struct {
	// Experimental resolves the version-gated font and name accessors
	// (FPDFFont_GetBaseFontName, FPDFFont_GetFamilyName, FPDFFont_GetFontData).
	// Older Pdfium builds export FPDFFont_GetFontName instead and do not
	// provide these.
	Experimental bool

	// Forms resolves the form-fill environment group. The shape of the
	// FPDF_FORMFILLINFO struct passed to FPDFDOC_InitFormFillEnvironment
	// depends on whether the library was built with V8/XFA support.
	Forms bool

	// V8 marks the library as a V8-enabled build. Only meaningful together
	// with Forms: it selects the larger form-fill info struct variant.
	V8 bool

	// XFA marks the library as an XFA-enabled build. Requires V8.
	XFA bool
}

// DefaultConfig targets a stock Pdfium release build with the experimental
// API surface, which is what the official prebuilt binaries ship.
func DefaultConfig() Config {
	return Config{Experimental: true}
}

// FormFillInfoVersion returns the FPDF_FORMFILLINFO version field required by
// the configured build variant.
func (c Config) FormFillInfoVersion() int32 {
	if c.XFA {
		return 2
	}
	return 1
}
