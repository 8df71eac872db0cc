package native

import (
	"io"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wudi/pdfium/ffi"
)

// Same callback discipline as the dynamic backend: one process-global
// callback per shape, dispatching through a registry keyed by the context
// value Pdfium passes back.

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
