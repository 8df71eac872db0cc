// Command pdfinfo prints a summary of a PDF document: version, page count,
// metadata, page sizes and embedded-file counts. It loads the Pdfium shared
// library dynamically; the library path comes from -lib, the
// PDFIUM_LIBRARY_PATH environment variable, or a .env file in the working
// directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	pdfium "github.com/wudi/pdfium"
	"github.com/wudi/pdfium/bindings/dynamic"
	"github.com/wudi/pdfium/ffi"
)

type options struct {
	pdfPath  string
	libPath  string
	password string
	pages    bool
}

var metadataTags = []string{
	"Title", "Author", "Subject", "Keywords",
	"Creator", "Producer", "CreationDate", "ModDate",
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfinfo: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pdfinfo: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pdfinfo [flags] <pdf>\n")
		flag.PrintDefaults()
	}
	lib := flag.String("lib", "", "Path to the Pdfium shared library (default: $PDFIUM_LIBRARY_PATH or platform probe)")
	password := flag.String("password", "", "Password to open encrypted PDFs")
	pages := flag.Bool("pages", false, "Print the size of every page")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing pdf path")
	}
	opts.pdfPath = flag.Arg(0)
	opts.libPath = *lib
	opts.password = *password
	opts.pages = *pages
	return opts, nil
}

func run(opts options) error {
	// A missing .env is not an error; it just means the environment rules.
	_ = godotenv.Load()

	libPath := opts.libPath
	if libPath == "" {
		libPath = os.Getenv("PDFIUM_LIBRARY_PATH")
	}

	var loadOpts []dynamic.Option
	if libPath != "" {
		loadOpts = append(loadOpts, dynamic.WithLibraryPath(libPath))
	}
	backend, err := dynamic.Load(loadOpts...)
	if err != nil {
		return err
	}
	defer backend.Close()

	p := pdfium.New(backend)
	defer p.Close()

	doc, err := p.OpenFile(backend, opts.pdfPath, opts.password)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.pdfPath, err)
	}
	defer doc.Close()

	return printInfo(os.Stdout, doc, opts)
}

func printInfo(w *os.File, doc *pdfium.Document, opts options) error {
	for _, tag := range metadataTags {
		value, err := doc.Metadata(tag)
		if err != nil {
			return fmt.Errorf("metadata %s: %w", tag, err)
		}
		if value != "" {
			fmt.Fprintf(w, "%-14s %s\n", tag+":", value)
		}
	}

	if version, err := doc.FileVersion(); err == nil {
		fmt.Fprintf(w, "%-14s %d.%d\n", "PDF version:", version/10, version%10)
	}
	fmt.Fprintf(w, "%-14s %d\n", "Pages:", doc.PageCount())
	fmt.Fprintf(w, "%-14s %t\n", "Tagged:", doc.IsTagged())
	if ft := doc.FormType(); ft != ffi.FormTypeNone {
		fmt.Fprintf(w, "%-14s %s\n", "Form:", formTypeName(ft))
	}
	if perms := doc.Permissions(); perms != 0 {
		fmt.Fprintf(w, "%-14s %#x (security handler revision %d)\n",
			"Permissions:", uint64(perms), doc.SecurityHandlerRevision())
	}
	if n := doc.Attachments().Len(); n > 0 {
		fmt.Fprintf(w, "%-14s %d\n", "Attachments:", n)
	}
	if n := doc.Signatures().Len(); n > 0 {
		fmt.Fprintf(w, "%-14s %d\n", "Signatures:", n)
	}

	if opts.pages {
		for i := 0; i < doc.PageCount(); i++ {
			width, height, err := doc.PageSize(i)
			if err != nil {
				return fmt.Errorf("page %d size: %w", i, err)
			}
			label, _ := doc.PageLabel(i)
			if label != "" {
				fmt.Fprintf(w, "Page %d (%s): %.2f x %.2f pts\n", i+1, label, width, height)
			} else {
				fmt.Fprintf(w, "Page %d: %.2f x %.2f pts\n", i+1, width, height)
			}
		}
	}
	return nil
}

func formTypeName(ft ffi.FormType) string {
	switch ft {
	case ffi.FormTypeAcroForm:
		return "AcroForm"
	case ffi.FormTypeXFAFull:
		return "XFA (full)"
	case ffi.FormTypeXFAForeground:
		return "XFA (foreground)"
	default:
		return "unknown"
	}
}
