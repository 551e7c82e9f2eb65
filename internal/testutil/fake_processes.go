package testutil

import (
	"syscall"
	"unicode/utf16"

	"github.com/frudas24/winsim/internal/winproc"
)

// FakeProcesses implements winproc.Native over an in-memory window tree.
type FakeProcesses struct {
	Top      []winproc.WindowHandle
	Children map[winproc.WindowHandle][]winproc.WindowHandle
	Owners   map[winproc.WindowHandle]uint32
	Titles   map[winproc.WindowHandle]string
	Names    map[uint32]string
	Paths    map[uint32]string
	Denied   map[uint32]bool
	EnumErr  error

	// CloseCalls counts CloseHandle per handle.
	CloseCalls map[winproc.ProcessHandle]int
	opened     map[winproc.ProcessHandle]uint32
	next       winproc.ProcessHandle
}

// Ensure FakeProcesses implements the interface.
var _ winproc.Native = (*FakeProcesses)(nil)

// NewFakeProcesses returns an empty window tree.
func NewFakeProcesses() *FakeProcesses {
	return &FakeProcesses{
		Children:   make(map[winproc.WindowHandle][]winproc.WindowHandle),
		Owners:     make(map[winproc.WindowHandle]uint32),
		Titles:     make(map[winproc.WindowHandle]string),
		Names:      make(map[uint32]string),
		Paths:      make(map[uint32]string),
		Denied:     make(map[uint32]bool),
		CloseCalls: make(map[winproc.ProcessHandle]int),
		opened:     make(map[winproc.ProcessHandle]uint32),
		next:       0x100,
	}
}

// AddWindow registers a top-level window owned by pid.
func (f *FakeProcesses) AddWindow(hwnd winproc.WindowHandle, pid uint32, title string) {
	f.Top = append(f.Top, hwnd)
	f.Owners[hwnd] = pid
	f.Titles[hwnd] = title
}

// AddChild registers a child window owned by pid.
func (f *FakeProcesses) AddChild(parent, hwnd winproc.WindowHandle, pid uint32, title string) {
	f.Children[parent] = append(f.Children[parent], hwnd)
	f.Owners[hwnd] = pid
	f.Titles[hwnd] = title
}

// OpenCount returns how many handles are still open.
func (f *FakeProcesses) OpenCount() int {
	open := 0
	for h := range f.opened {
		if f.CloseCalls[h] == 0 {
			open++
		}
	}
	return open
}

// EnumWindows visits the top-level windows.
func (f *FakeProcesses) EnumWindows(visit func(winproc.WindowHandle)) error {
	if f.EnumErr != nil {
		return f.EnumErr
	}
	for _, hwnd := range f.Top {
		visit(hwnd)
	}
	return nil
}

// EnumChildWindows visits the children of parent.
func (f *FakeProcesses) EnumChildWindows(parent winproc.WindowHandle, visit func(winproc.WindowHandle)) {
	for _, hwnd := range f.Children[parent] {
		visit(hwnd)
	}
}

// WindowThreadProcessID resolves a registered window; unknown windows fail with ERROR_INVALID_WINDOW_HANDLE.
func (f *FakeProcesses) WindowThreadProcessID(hwnd winproc.WindowHandle) (uint32, uint32, error) {
	pid, ok := f.Owners[hwnd]
	if !ok {
		return 0, 0, syscall.Errno(1400)
	}
	return 1, pid, nil
}

// WindowText copies the window title into buf.
func (f *FakeProcesses) WindowText(hwnd winproc.WindowHandle, buf []uint16) (int, error) {
	return fill(buf, f.Titles[hwnd])
}

// OpenProcess hands out a fresh handle unless pid is denied.
func (f *FakeProcesses) OpenProcess(access winproc.AccessRights, pid uint32) (winproc.ProcessHandle, error) {
	if f.Denied[pid] {
		return 0, syscall.Errno(5)
	}
	f.next++
	f.opened[f.next] = pid
	return f.next, nil
}

// CloseHandle counts the release.
func (f *FakeProcesses) CloseHandle(h winproc.ProcessHandle) error {
	f.CloseCalls[h]++
	if _, ok := f.opened[h]; !ok || f.CloseCalls[h] > 1 {
		return syscall.Errno(6)
	}
	return nil
}

// FirstModule returns a module handle derived from the pid.
func (f *FakeProcesses) FirstModule(h winproc.ProcessHandle) (winproc.ModuleHandle, error) {
	pid, ok := f.opened[h]
	if !ok {
		return 0, syscall.Errno(6)
	}
	return winproc.ModuleHandle(0x400000 + uintptr(pid)), nil
}

// ModuleBaseName copies the process name into buf.
func (f *FakeProcesses) ModuleBaseName(h winproc.ProcessHandle, module winproc.ModuleHandle, buf []uint16) (int, error) {
	return fill(buf, f.Names[f.opened[h]])
}

// ModuleFileName copies the process path into buf.
func (f *FakeProcesses) ModuleFileName(h winproc.ProcessHandle, module winproc.ModuleHandle, buf []uint16) (int, error) {
	return fill(buf, f.Paths[f.opened[h]])
}

// fill copies s into buf, truncating like the Win32 buffer APIs.
func fill(buf []uint16, s string) (int, error) {
	if s == "" {
		return 0, syscall.Errno(0)
	}
	n := copy(buf, utf16.Encode([]rune(s)))
	return n, nil
}
