package winproc

import (
	"fmt"
	"sort"

	"github.com/frudas24/winsim/internal/winerr"
)

// Process is an opened process handle. Close releases it exactly once.
type Process struct {
	PID    uint32
	Handle ProcessHandle
	native Native
	closed bool
}

// OpenProcess opens pid with the requested access.
func (h *Host) OpenProcess(access AccessRights, pid uint32) (*Process, error) {
	handle, err := h.native.OpenProcess(access, pid)
	if err != nil || handle == 0 {
		return nil, winerr.New("OpenProcess", err)
	}
	return &Process{PID: pid, Handle: handle, native: h.native}, nil
}

// ProcessFromWindow opens the process owning w.
func (h *Host) ProcessFromWindow(access AccessRights, w Window) (*Process, error) {
	pid, err := w.ProcessID()
	if err != nil {
		return nil, err
	}
	return h.OpenProcess(access, pid)
}

// WithProcess opens pid, runs fn and closes the handle on every exit path.
func (h *Host) WithProcess(access AccessRights, pid uint32, fn func(*Process) error) (err error) {
	p, err := h.OpenProcess(access, pid)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(p)
}

// Close releases the handle. Calls after the first are no-ops.
func (p *Process) Close() error {
	if p == nil || p.closed {
		return nil
	}
	p.closed = true
	if err := p.native.CloseHandle(p.Handle); err != nil {
		return winerr.New("CloseHandle", err)
	}
	return nil
}

// Closed reports whether Close has run.
func (p *Process) Closed() bool {
	return p.closed
}

// Name returns the base name of the process executable.
func (p *Process) Name(capacity int) (string, error) {
	return p.ModuleName(0, capacity)
}

// ModuleName returns the base name of a module loaded in the process.
func (p *Process) ModuleName(module ModuleHandle, capacity int) (string, error) {
	if p.closed {
		return "", ErrProcessClosed
	}
	name, err := readText(capacity, func(buf []uint16) (int, error) {
		return p.native.ModuleBaseName(p.Handle, module, buf)
	})
	if name == "" {
		return "", winerr.New("GetModuleBaseName", err)
	}
	return name, nil
}

// FilePath returns the full path of the process executable.
func (p *Process) FilePath(capacity int) (string, error) {
	if p.closed {
		return "", ErrProcessClosed
	}
	path, err := readText(capacity, func(buf []uint16) (int, error) {
		return p.native.ModuleFileName(p.Handle, 0, buf)
	})
	if path == "" {
		return "", winerr.New("GetModuleFileNameEx", err)
	}
	return path, nil
}

// FirstModule returns the first module of the process, normally its executable.
func (p *Process) FirstModule() (ModuleHandle, error) {
	if p.closed {
		return 0, ErrProcessClosed
	}
	module, err := p.native.FirstModule(p.Handle)
	if err != nil {
		return 0, winerr.New("EnumProcessModules", err)
	}
	return module, nil
}

// WindowInfo is one row of Describe.
type WindowInfo struct {
	PID     uint32       `json:"pid"`
	Process string       `json:"process"`
	Title   string       `json:"title"`
	Handle  WindowHandle `json:"hwnd"`
}

// String formats the row as "[pid, process] title".
func (i WindowInfo) String() string {
	return fmt.Sprintf("[%d, %s] %s", i.PID, i.Process, i.Title)
}

// Describe lists one window per process, sorted by pid.
// Windows whose process cannot be opened or named are skipped.
func (h *Host) Describe(access AccessRights, capacity int) ([]WindowInfo, error) {
	windows, err := h.AllWindows()
	if err != nil {
		return nil, err
	}
	seen := make(map[uint32]bool)
	var out []WindowInfo
	for _, w := range windows {
		pid, err := w.ProcessID()
		if err != nil || seen[pid] {
			continue
		}
		var info WindowInfo
		err = h.WithProcess(access, pid, func(p *Process) error {
			name, err := p.Name(capacity)
			if err != nil {
				return err
			}
			title, _ := w.Text(capacity)
			info = WindowInfo{PID: pid, Process: name, Title: title, Handle: w.Handle}
			return nil
		})
		if err != nil {
			continue
		}
		seen[pid] = true
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}
