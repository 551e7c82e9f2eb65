//go:build windows

package wininput

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/winsim/internal/winerr"
)

// SendInput and GetCursorPos go through lazy procs so the errno comes from the same call.
var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetMessageExtraInfo = user32.NewProc("GetMessageExtraInfo")
	procSendInput           = user32.NewProc("SendInput")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
)

// mouseInput is MOUSEINPUT. It is the largest union member, so it sizes the INPUT union.
type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   int32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type hardwareInput struct {
	uMsg    uint32
	wParamL uint16
	wParamH uint16
}

// input is INPUT; keyboard and hardware payloads are written over mi.
type input struct {
	typ uint32
	mi  mouseInput
}

// NewInjector returns an injector backed by the real SendInput.
func NewInjector(opts Options) (*Injector, error) {
	return New(systemNative{}, opts), nil
}

type systemNative struct{}

// SendInput converts records to INPUT structures and submits them in one call.
func (systemNative) SendInput(records []Record) (uint32, error) {
	if len(records) == 0 {
		return 0, nil
	}
	inputs := make([]input, len(records))
	for i, r := range records {
		inputs[i].typ = r.Kind
		switch r.Kind {
		case KindMouse:
			inputs[i].mi = mouseInput{
				dx:          r.Mouse.DX,
				dy:          r.Mouse.DY,
				mouseData:   r.Mouse.Data,
				dwFlags:     r.Mouse.Flags,
				dwExtraInfo: r.Mouse.ExtraInfo,
			}
		case KindKeyboard:
			*(*keybdInput)(unsafe.Pointer(&inputs[i].mi)) = keybdInput{
				wVk:         r.Keyboard.VK,
				wScan:       r.Keyboard.Scan,
				dwFlags:     r.Keyboard.Flags,
				dwExtraInfo: r.Keyboard.ExtraInfo,
			}
		case KindHardware:
			*(*hardwareInput)(unsafe.Pointer(&inputs[i].mi)) = hardwareInput{
				uMsg:    r.Hardware.Msg,
				wParamL: r.Hardware.ParamL,
				wParamH: r.Hardware.ParamH,
			}
		}
	}
	r, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	sent := uint32(r)
	if sent != uint32(len(inputs)) {
		return sent, winerr.New("SendInput", callErr)
	}
	return sent, nil
}

// MessageExtraInfo calls GetMessageExtraInfo.
func (systemNative) MessageExtraInfo() uintptr {
	r, _, _ := procGetMessageExtraInfo.Call()
	return r
}

// ScreenSize returns SM_CXSCREEN x SM_CYSCREEN.
func (systemNative) ScreenSize() (int32, int32) {
	return win.GetSystemMetrics(win.SM_CXSCREEN), win.GetSystemMetrics(win.SM_CYSCREEN)
}

// VirtualScreenSize returns SM_CXVIRTUALSCREEN x SM_CYVIRTUALSCREEN.
func (systemNative) VirtualScreenSize() (int32, int32) {
	return win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN), win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
}

// VirtualScreenOrigin returns SM_XVIRTUALSCREEN, SM_YVIRTUALSCREEN.
func (systemNative) VirtualScreenOrigin() (int32, int32) {
	return win.GetSystemMetrics(win.SM_XVIRTUALSCREEN), win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
}

// CursorPos calls GetCursorPos.
func (systemNative) CursorPos() (int32, int32, error) {
	var pt win.POINT
	r, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return 0, 0, winerr.New("GetCursorPos", callErr)
	}
	return pt.X, pt.Y, nil
}
