//go:build windows

package monitor

import (
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/winsim/internal/winerr"
)

// EnumDisplayMonitors is not wrapped by lxn/win.
var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// enumProc is created once; each call passes its own state through dwData.
var enumProc = windows.NewCallback(func(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	state := (*enumState)(unsafe.Pointer(lparam))
	state.add(hMonitor)
	return 1
})

// ListMonitors returns the list of available displays using WinAPI.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	r, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumProc, uintptr(unsafe.Pointer(state)))
	runtime.KeepAlive(state)
	if r == 0 {
		return nil, winerr.New("EnumDisplayMonitors", callErr)
	}
	if len(state.list) == 0 {
		return nil, ErrNoMonitors
	}
	return state.list, nil
}

type enumState struct {
	list []Monitor
}

func (s *enumState) add(hMonitor win.HMONITOR) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return
	}
	r := info.RcMonitor
	s.list = append(s.list, Monitor{
		Index:   len(s.list) + 1,
		X:       int(r.Left),
		Y:       int(r.Top),
		W:       int(r.Right - r.Left),
		H:       int(r.Bottom - r.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
}
