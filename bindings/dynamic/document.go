package dynamic

import (
	"io"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wudi/pdfium/ffi"
)

func (b *Bindings) FPDF_InitLibrary()    { b.api.initLibrary() }
func (b *Bindings) FPDF_DestroyLibrary() { b.api.destroyLibrary() }

func (b *Bindings) FPDF_GetLastError() ffi.ErrorCode {
	return ffi.ErrorCode(b.api.getLastError())
}

// FPDF_LoadMemDocument pins data until the document is closed: Pdfium parses
// lazily and keeps reading from the buffer for the document's lifetime.
func (b *Bindings) FPDF_LoadMemDocument(data []byte, password string) ffi.Document {
	doc := b.api.loadMemDocument(data, int32(len(data)), cstrOrNil(password))
	if doc != 0 {
		b.mu.Lock()
		b.docData[doc] = data
		b.mu.Unlock()
	}
	return doc
}

func (b *Bindings) FPDF_LoadDocument(path, password string) ffi.Document {
	return b.api.loadDocument(cstrOrNil(path), cstrOrNil(password))
}

func (b *Bindings) FPDF_LoadCustomDocument(reader io.ReaderAt, size uint64, password string) ffi.Document {
	st := newFileAccess(reader, size)
	doc := b.api.loadCustomDocument(st.access, cstrOrNil(password))
	if doc == 0 {
		st.release()
		return 0
	}
	b.mu.Lock()
	b.docFile[doc] = st
	b.mu.Unlock()
	return doc
}

func (b *Bindings) FPDF_CloseDocument(doc ffi.Document) {
	b.api.closeDocument(doc)
	b.mu.Lock()
	delete(b.docData, doc)
	st := b.docFile[doc]
	delete(b.docFile, doc)
	b.mu.Unlock()
	if st != nil {
		st.release()
	}
}

func (b *Bindings) FPDF_GetPageCount(doc ffi.Document) int32 {
	return b.api.getPageCount(doc)
}

func (b *Bindings) FPDF_GetFileVersion(doc ffi.Document, version *int32) ffi.Bool {
	return b.api.getFileVersion(doc, version)
}

func (b *Bindings) FPDF_GetDocPermissions(doc ffi.Document) uint64 {
	return b.api.getDocPermissions(doc)
}

func (b *Bindings) FPDF_GetSecurityHandlerRevision(doc ffi.Document) int32 {
	return b.api.getSecurityHandlerRevision(doc)
}

func (b *Bindings) FPDF_GetFileIdentifier(doc ffi.Document, idType ffi.FileIDType, buf []byte) uint64 {
	return b.api.getFileIdentifier(doc, idType, buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetMetaText(doc ffi.Document, tag string, buf []byte) uint64 {
	return b.api.getMetaText(doc, cstrOrNil(tag), buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetPageLabel(doc ffi.Document, pageIndex int32, buf []byte) uint64 {
	return b.api.getPageLabel(doc, pageIndex, buf, uint64(len(buf)))
}

func (b *Bindings) FPDF_GetFormType(doc ffi.Document) ffi.FormType {
	return b.api.getFormType(doc)
}

func (b *Bindings) FPDFDoc_GetPageMode(doc ffi.Document) ffi.PageMode {
	return b.api.docGetPageMode(doc)
}

func (b *Bindings) FPDFCatalog_IsTagged(doc ffi.Document) ffi.Bool {
	return b.api.catalogIsTagged(doc)
}

func (b *Bindings) FPDF_SaveAsCopy(doc ffi.Document, w io.Writer, flags ffi.SaveFlags) ffi.Bool {
	fw, st := newFileWrite(w)
	defer releaseFileWrite(fw)
	ok := b.api.saveAsCopy(doc, fw, uint64(flags))
	runtime.KeepAlive(fw)
	if st.err != nil {
		return ffi.False
	}
	return ok
}

func (b *Bindings) FPDF_SaveWithVersion(doc ffi.Document, w io.Writer, flags ffi.SaveFlags, fileVersion int32) ffi.Bool {
	fw, st := newFileWrite(w)
	defer releaseFileWrite(fw)
	ok := b.api.saveWithVersion(doc, fw, uint64(flags), fileVersion)
	runtime.KeepAlive(fw)
	if st.err != nil {
		return ffi.False
	}
	return ok
}

// Native-to-Go callback plumbing. purego callbacks are process-global and
// never released, so one callback of each shape is created once and
// dispatches through a registry keyed by the context pointer Pdfium hands
// back.

type fileAccessState struct {
	reader io.ReaderAt
	access *ffi.FileAccess
	token  uintptr
}

var (
	readMu       sync.Mutex
	readRegistry         = map[uintptr]io.ReaderAt{}
	readNextTok  uintptr = 1
	readOnce     sync.Once
	readCallback uintptr
)

func getBlockCallback() uintptr {
	readOnce.Do(func() {
		readCallback = purego.NewCallback(func(param uintptr, position uint64, pBuf uintptr, size uint64) int32 {
			readMu.Lock()
			reader := readRegistry[param]
			readMu.Unlock()
			if reader == nil {
				return 0
			}
			if size == 0 {
				return 1
			}
			buf := unsafe.Slice((*byte)(unsafe.Pointer(pBuf)), size)
			if _, err := reader.ReadAt(buf, int64(position)); err != nil {
				return 0
			}
			return 1
		})
	})
	return readCallback
}

func newFileAccess(reader io.ReaderAt, size uint64) *fileAccessState {
	readMu.Lock()
	token := readNextTok
	readNextTok++
	readRegistry[token] = reader
	readMu.Unlock()
	return &fileAccessState{
		reader: reader,
		token:  token,
		access: &ffi.FileAccess{
			FileLen:  size,
			GetBlock: getBlockCallback(),
			Param:    token,
		},
	}
}

func (st *fileAccessState) release() {
	readMu.Lock()
	delete(readRegistry, st.token)
	readMu.Unlock()
}

type writeState struct {
	w   io.Writer
	err error
}

var (
	writeMu       sync.Mutex
	writeRegistry = map[uintptr]*writeState{}
	writeOnce     sync.Once
	writeCallback uintptr
)

func writeBlockCallback() uintptr {
	writeOnce.Do(func() {
		writeCallback = purego.NewCallback(func(fw uintptr, data uintptr, size uint64) int32 {
			writeMu.Lock()
			st := writeRegistry[fw]
			writeMu.Unlock()
			if st == nil {
				return 0
			}
			if size == 0 {
				return 1
			}
			buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), size)
			if _, err := st.w.Write(buf); err != nil {
				st.err = err
				return 0
			}
			return 1
		})
	})
	return writeCallback
}

func newFileWrite(w io.Writer) (*ffi.FileWrite, *writeState) {
	fw := &ffi.FileWrite{Version: 1, WriteBlock: writeBlockCallback()}
	st := &writeState{w: w}
	writeMu.Lock()
	writeRegistry[uintptr(unsafe.Pointer(fw))] = st
	writeMu.Unlock()
	return fw, st
}

func releaseFileWrite(fw *ffi.FileWrite) {
	writeMu.Lock()
	delete(writeRegistry, uintptr(unsafe.Pointer(fw)))
	writeMu.Unlock()
}
