// Package winproc enumerates windows and inspects the processes that own them.
package winproc

import (
	"errors"
	"unicode/utf16"
)

// WindowHandle identifies a window (HWND).
type WindowHandle uintptr

// ProcessHandle is an opened process handle.
type ProcessHandle uintptr

// ModuleHandle identifies a module loaded in a process (HMODULE).
type ModuleHandle uintptr

// AccessRights is a PROCESS_* access mask passed to OpenProcess.
type AccessRights uint32

const (
	// VMRead allows reading process memory; psapi module queries need it.
	VMRead AccessRights = 0x0010
	// QueryInformation allows reading process information.
	QueryInformation AccessRights = 0x0400
	// QueryLimitedInformation is the reduced query right granted for most elevated processes.
	QueryLimitedInformation AccessRights = 0x1000
)

// DefaultTextCapacity is the buffer size, in UTF-16 units, used when none is given.
const DefaultTextCapacity = 256

// ErrProcessClosed is returned when a closed Process is used.
var ErrProcessClosed = errors.New("process handle closed")

// Native is the OS surface used for introspection.
//
// Buffer calls fill buf and report the number of UTF-16 units written; zero
// means the OS returned nothing and err explains why.
type Native interface {
	EnumWindows(visit func(WindowHandle)) error
	EnumChildWindows(parent WindowHandle, visit func(WindowHandle))
	WindowThreadProcessID(hwnd WindowHandle) (tid, pid uint32, err error)
	WindowText(hwnd WindowHandle, buf []uint16) (int, error)
	OpenProcess(access AccessRights, pid uint32) (ProcessHandle, error)
	CloseHandle(h ProcessHandle) error
	FirstModule(h ProcessHandle) (ModuleHandle, error)
	ModuleBaseName(h ProcessHandle, module ModuleHandle, buf []uint16) (int, error)
	ModuleFileName(h ProcessHandle, module ModuleHandle, buf []uint16) (int, error)
}

// Host runs introspection queries against a Native.
type Host struct {
	native Native
}

// New returns a host bound to native.
func New(native Native) *Host {
	return &Host{native: native}
}

// readText runs fill with a buffer of the given capacity and decodes the written prefix.
func readText(capacity int, fill func([]uint16) (int, error)) (string, error) {
	if capacity <= 0 {
		capacity = DefaultTextCapacity
	}
	buf := make([]uint16, capacity)
	n, err := fill(buf)
	if n <= 0 {
		return "", err
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(utf16.Decode(buf[:n])), nil
}
