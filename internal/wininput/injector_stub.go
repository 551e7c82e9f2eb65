//go:build !windows

package wininput

import "github.com/frudas24/winsim/internal/winerr"

// NewInjector returns an injector whose every call fails with winerr.ErrUnsupported.
func NewInjector(opts Options) (*Injector, error) {
	return New(unsupportedNative{}, opts), winerr.ErrUnsupported
}

type unsupportedNative struct{}

// SendInput queues nothing.
func (unsupportedNative) SendInput([]Record) (uint32, error) {
	return 0, winerr.ErrUnsupported
}

// MessageExtraInfo returns zero.
func (unsupportedNative) MessageExtraInfo() uintptr {
	return 0
}

// ScreenSize reports no display.
func (unsupportedNative) ScreenSize() (int32, int32) {
	return 0, 0
}

// VirtualScreenSize reports no display.
func (unsupportedNative) VirtualScreenSize() (int32, int32) {
	return 0, 0
}

// VirtualScreenOrigin reports the screen origin.
func (unsupportedNative) VirtualScreenOrigin() (int32, int32) {
	return 0, 0
}

// CursorPos returns winerr.ErrUnsupported.
func (unsupportedNative) CursorPos() (int32, int32, error) {
	return 0, 0, winerr.ErrUnsupported
}
