//go:build windows

package winproc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW = user32.NewProc("GetWindowTextW")
)

// enumCallback is shared by every enumeration; the visitor travels in lParam.
var enumCallback = windows.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
	visit := *(*func(WindowHandle))(unsafe.Pointer(lparam))
	visit(WindowHandle(hwnd))
	return 1
})

// NewSystem returns a host bound to user32, kernel32 and psapi.
func NewSystem() (*Host, error) {
	return New(systemNative{}), nil
}

type systemNative struct{}

// EnumWindows calls EnumWindows with a collector that never stops early.
func (systemNative) EnumWindows(visit func(WindowHandle)) error {
	return windows.EnumWindows(enumCallback, unsafe.Pointer(&visit))
}

// EnumChildWindows calls EnumChildWindows; its result is not reported by the OS.
func (systemNative) EnumChildWindows(parent WindowHandle, visit func(WindowHandle)) {
	windows.EnumChildWindows(windows.HWND(parent), enumCallback, unsafe.Pointer(&visit))
}

// WindowThreadProcessID calls GetWindowThreadProcessId.
func (systemNative) WindowThreadProcessID(hwnd WindowHandle) (uint32, uint32, error) {
	var pid uint32
	tid, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &pid)
	return tid, pid, err
}

// WindowText calls GetWindowTextW.
func (systemNative) WindowText(hwnd WindowHandle, buf []uint16) (int, error) {
	r, _, callErr := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return 0, callErr
	}
	return int(r), nil
}

// OpenProcess calls OpenProcess without handle inheritance.
func (systemNative) OpenProcess(access AccessRights, pid uint32) (ProcessHandle, error) {
	h, err := windows.OpenProcess(uint32(access), false, pid)
	return ProcessHandle(h), err
}

// CloseHandle calls CloseHandle.
func (systemNative) CloseHandle(h ProcessHandle) error {
	return windows.CloseHandle(windows.Handle(h))
}

// FirstModule calls EnumProcessModules with room for a single module.
func (systemNative) FirstModule(h ProcessHandle) (ModuleHandle, error) {
	var module windows.Handle
	var needed uint32
	err := windows.EnumProcessModules(windows.Handle(h), &module, uint32(unsafe.Sizeof(module)), &needed)
	return ModuleHandle(module), err
}

// ModuleBaseName calls GetModuleBaseNameW.
func (systemNative) ModuleBaseName(h ProcessHandle, module ModuleHandle, buf []uint16) (int, error) {
	err := windows.GetModuleBaseName(windows.Handle(h), windows.Handle(module), &buf[0], uint32(len(buf)))
	return written(buf), err
}

// ModuleFileName calls GetModuleFileNameExW.
func (systemNative) ModuleFileName(h ProcessHandle, module ModuleHandle, buf []uint16) (int, error) {
	err := windows.GetModuleFileNameEx(windows.Handle(h), windows.Handle(module), &buf[0], uint32(len(buf)))
	return written(buf), err
}

// written returns the length of the NUL-terminated prefix of buf.
func written(buf []uint16) int {
	for i, c := range buf {
		if c == 0 {
			return i
		}
	}
	return len(buf)
}
