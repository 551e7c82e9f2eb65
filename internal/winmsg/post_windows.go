//go:build windows

package winmsg

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/winsim/internal/winerr"
)

// PostMessageW is bound directly so its errno is read from the same call.
var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procPostMessage = user32.NewProc("PostMessageW")
)

// NewSystemPoster returns a poster bound to user32 PostMessageW/SendMessageW.
func NewSystemPoster(opts Options) (*Poster, error) {
	return NewPoster(systemNative{}, opts)
}

type systemNative struct{}

// PostMessage calls PostMessageW.
func (systemNative) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error {
	r, _, callErr := procPostMessage.Call(hwnd, uintptr(msg), wParam, lParam)
	if r == 0 {
		return winerr.New("PostMessage", callErr)
	}
	return nil
}

// SendMessage calls SendMessageW; the result is whatever the window procedure returned.
func (systemNative) SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	return win.SendMessage(win.HWND(hwnd), msg, wParam, lParam), nil
}
