package dynamic

import (
	"sync"
	"unsafe"

	"github.com/wudi/pdfium/ffi"
)

// formFillInfo mirrors FPDF_FORMFILLINFO on LP64 platforms. Pdfium
// null-checks every callback before invoking it, so a zeroed struct with only
// the version set is a valid minimal environment. The trailing block covers
// the additional XFA-build fields read when Version is 2.
type formFillInfo struct {
	Version int32
	_       [4]byte

	Release            uintptr
	Invalidate         uintptr
	OutputSelectedRect uintptr
	SetCursor          uintptr
	SetTimer           uintptr
	KillTimer          uintptr
	GetLocalTime       uintptr
	OnChange           uintptr
	GetPage            uintptr
	GetCurrentPage     uintptr
	GetRotation        uintptr
	ExecuteNamedAction uintptr
	SetTextFieldFocus  uintptr
	DoURIAction        uintptr
	DoGoToAction       uintptr
	JsPlatform         uintptr
	xfaCallbacks       [16]uintptr
}

// Live form-fill environments; the info struct must outlive the handle.
var (
	formMu   sync.Mutex
	formInfo = map[ffi.FormHandle]*formFillInfo{}
)

func (b *Bindings) FPDFDOC_InitFormFillEnvironment(doc ffi.Document) ffi.FormHandle {
	if b.api.docInitFormFillEnvironment == nil {
		return 0
	}
	info := &formFillInfo{Version: b.cfg.FormFillInfoVersion()}
	handle := b.api.docInitFormFillEnvironment(doc, unsafe.Pointer(info))
	if handle != 0 {
		formMu.Lock()
		formInfo[handle] = info
		formMu.Unlock()
	}
	return handle
}

func (b *Bindings) FPDFDOC_ExitFormFillEnvironment(handle ffi.FormHandle) {
	if b.api.docExitFormFillEnvironment == nil {
		return
	}
	b.api.docExitFormFillEnvironment(handle)
	formMu.Lock()
	delete(formInfo, handle)
	formMu.Unlock()
}

func (b *Bindings) FPDF_FFLDraw(handle ffi.FormHandle, bitmap ffi.Bitmap, page ffi.Page, startX, startY, sizeX, sizeY, rotate int32, flags ffi.RenderFlags) {
	if b.api.fflDraw == nil {
		return
	}
	b.api.fflDraw(handle, bitmap, page, startX, startY, sizeX, sizeY, rotate, flags)
}

func (b *Bindings) FPDF_SetFormFieldHighlightColor(handle ffi.FormHandle, fieldType ffi.FormFieldType, color uint64) {
	if b.api.setFormFieldHighlightColor == nil {
		return
	}
	b.api.setFormFieldHighlightColor(handle, int32(fieldType), color)
}

func (b *Bindings) FPDF_SetFormFieldHighlightAlpha(handle ffi.FormHandle, alpha uint8) {
	if b.api.setFormFieldHighlightAlpha == nil {
		return
	}
	b.api.setFormFieldHighlightAlpha(handle, alpha)
}

func (b *Bindings) FPDFAnnot_GetFormFieldType(handle ffi.FormHandle, annot ffi.Annotation) ffi.FormFieldType {
	if b.api.annotGetFormFieldType == nil {
		return ffi.FormFieldUnknown
	}
	return b.api.annotGetFormFieldType(handle, annot)
}

func (b *Bindings) FPDFAnnot_GetFormFieldName(handle ffi.FormHandle, annot ffi.Annotation, buf []byte) uint64 {
	if b.api.annotGetFormFieldName == nil {
		return 0
	}
	return b.api.annotGetFormFieldName(handle, annot, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAnnot_GetFormFieldValue(handle ffi.FormHandle, annot ffi.Annotation, buf []byte) uint64 {
	if b.api.annotGetFormFieldValue == nil {
		return 0
	}
	return b.api.annotGetFormFieldValue(handle, annot, buf, uint64(len(buf)))
}

func (b *Bindings) FPDFAnnot_GetFormFieldFlags(handle ffi.FormHandle, annot ffi.Annotation) int32 {
	if b.api.annotGetFormFieldFlags == nil {
		return 0
	}
	return b.api.annotGetFormFieldFlags(handle, annot)
}

func (b *Bindings) FPDFAnnot_IsChecked(handle ffi.FormHandle, annot ffi.Annotation) ffi.Bool {
	if b.api.annotIsChecked == nil {
		return ffi.False
	}
	return b.api.annotIsChecked(handle, annot)
}
