package testutil

import "github.com/frudas24/winsim/internal/winmsg"

// PostedMessage is one message captured by FakeMessages.
type PostedMessage struct {
	HWND uintptr
	winmsg.Message
	Sync bool
}

// FakeMessages implements winmsg.Native and records delivered messages.
type FakeMessages struct {
	Messages []PostedMessage
	PostErr  error
}

// Ensure FakeMessages implements the interface.
var _ winmsg.Native = (*FakeMessages)(nil)

// PostMessage records an asynchronous message.
func (f *FakeMessages) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error {
	if f.PostErr != nil {
		return f.PostErr
	}
	f.Messages = append(f.Messages, PostedMessage{HWND: hwnd, Message: winmsg.Message{Msg: msg, WParam: wParam, LParam: lParam}})
	return nil
}

// SendMessage records a synchronous message.
func (f *FakeMessages) SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	f.Messages = append(f.Messages, PostedMessage{HWND: hwnd, Message: winmsg.Message{Msg: msg, WParam: wParam, LParam: lParam}, Sync: true})
	return 0, nil
}
