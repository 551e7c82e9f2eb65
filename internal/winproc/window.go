package winproc

import "github.com/frudas24/winsim/internal/winerr"

// Window is a window handle bound to the host that found it.
type Window struct {
	Handle WindowHandle
	native Native
}

// Window wraps an existing handle.
func (h *Host) Window(hwnd WindowHandle) Window {
	return Window{Handle: hwnd, native: h.native}
}

// TopWindows lists every top-level window.
func (h *Host) TopWindows() ([]Window, error) {
	handles, err := h.topHandles()
	if err != nil {
		return nil, err
	}
	return h.wrap(handles), nil
}

// AllWindows lists top-level windows followed by the children of each one.
// Child enumeration failures are ignored.
func (h *Host) AllWindows() ([]Window, error) {
	top, err := h.topHandles()
	if err != nil {
		return nil, err
	}
	all := append([]WindowHandle(nil), top...)
	for _, parent := range top {
		h.native.EnumChildWindows(parent, func(child WindowHandle) {
			all = append(all, child)
		})
	}
	return h.wrap(all), nil
}

func (h *Host) topHandles() ([]WindowHandle, error) {
	handles := make([]WindowHandle, 0, 1024)
	if err := h.native.EnumWindows(func(hwnd WindowHandle) {
		handles = append(handles, hwnd)
	}); err != nil {
		return nil, winerr.New("EnumWindows", err)
	}
	return handles, nil
}

func (h *Host) wrap(handles []WindowHandle) []Window {
	out := make([]Window, len(handles))
	for i, hwnd := range handles {
		out[i] = Window{Handle: hwnd, native: h.native}
	}
	return out
}

// ThreadProcessID returns the creating thread and owning process of the window.
func (w Window) ThreadProcessID() (uint32, uint32, error) {
	tid, pid, err := w.native.WindowThreadProcessID(w.Handle)
	if tid == 0 {
		return 0, 0, winerr.New("GetWindowThreadProcessId", err)
	}
	return tid, pid, nil
}

// ProcessID returns the owning process id.
func (w Window) ProcessID() (uint32, error) {
	_, pid, err := w.ThreadProcessID()
	return pid, err
}

// Text returns the window title truncated to capacity UTF-16 units.
func (w Window) Text(capacity int) (string, error) {
	text, err := readText(capacity, func(buf []uint16) (int, error) {
		return w.native.WindowText(w.Handle, buf)
	})
	if text == "" {
		return "", winerr.New("GetWindowText", err)
	}
	return text, nil
}
