// Package winmsg posts synthetic input messages directly to a window's message queue.
package winmsg

import (
	"fmt"
	"math/bits"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/frudas24/winsim/internal/wininput"
)

// Window message identifiers.
const (
	WMKeyDown     uint32 = 0x0100
	WMKeyUp       uint32 = 0x0101
	WMChar        uint32 = 0x0102
	WMLButtonDown uint32 = 0x0201
	WMLButtonUp   uint32 = 0x0202
	WMRButtonDown uint32 = 0x0204
	WMRButtonUp   uint32 = 0x0205
	WMMButtonDown uint32 = 0x0207
	WMMButtonUp   uint32 = 0x0208
	WMXButtonDown uint32 = 0x020B
	WMXButtonUp   uint32 = 0x020C
)

// Native delivers window messages.
type Native interface {
	// PostMessage queues a message and returns without waiting.
	PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error
	// SendMessage delivers a message and waits for the window procedure to return.
	SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, error)
}

// Options tunes message delivery.
type Options struct {
	// Synchronous uses SendMessage instead of PostMessage.
	Synchronous bool
}

// Message is one delivered window message.
type Message struct {
	Msg    uint32
	WParam uintptr
	LParam uintptr
}

// Poster sends input messages to a target window without touching the real cursor or focus.
type Poster struct {
	native Native
	opts   Options
	width  int
}

// NewPoster returns a poster for the running build's pointer width.
func NewPoster(native Native, opts Options) (*Poster, error) {
	return newPoster(native, opts, bits.UintSize)
}

func newPoster(native Native, opts Options, width int) (*Poster, error) {
	if _, err := PackPosition(width, 0, 0); err != nil {
		return nil, err
	}
	return &Poster{native: native, opts: opts, width: width}, nil
}

// KeyDown delivers WM_KEYDOWN with the key's virtual-key code.
func (p *Poster) KeyDown(hwnd uintptr, key wininput.VirtualKey) error {
	return p.key(hwnd, key, WMKeyDown)
}

// KeyUp delivers WM_KEYUP with the key's virtual-key code.
func (p *Poster) KeyUp(hwnd uintptr, key wininput.VirtualKey) error {
	return p.key(hwnd, key, WMKeyUp)
}

func (p *Poster) key(hwnd uintptr, key wininput.VirtualKey, msg uint32) error {
	if !key.Valid() {
		return fmt.Errorf("unknown virtual key %d", uint8(key))
	}
	return p.deliver(hwnd, Message{Msg: msg, WParam: uintptr(key.Code())})
}

// ButtonDown delivers the button's down message at client position (x, y).
func (p *Poster) ButtonDown(hwnd uintptr, b wininput.MouseButton, x, y int16) error {
	m, err := p.ButtonMessage(b, true, x, y)
	if err != nil {
		return err
	}
	return p.deliver(hwnd, m)
}

// ButtonUp delivers the button's up message at client position (x, y).
func (p *Poster) ButtonUp(hwnd uintptr, b wininput.MouseButton, x, y int16) error {
	m, err := p.ButtonMessage(b, false, x, y)
	if err != nil {
		return err
	}
	return p.deliver(hwnd, m)
}

// ButtonMessage builds the message for a button transition without delivering it.
func (p *Poster) ButtonMessage(b wininput.MouseButton, down bool, x, y int16) (Message, error) {
	lParam, err := PackPosition(p.width, x, y)
	if err != nil {
		return Message{}, err
	}
	m := Message{LParam: uintptr(lParam)}
	switch b {
	case wininput.Left:
		m.Msg = pick(down, WMLButtonDown, WMLButtonUp)
	case wininput.Middle:
		m.Msg = pick(down, WMMButtonDown, WMMButtonUp)
	case wininput.Right:
		m.Msg = pick(down, WMRButtonDown, WMRButtonUp)
	case wininput.X1, wininput.X2:
		id := wininput.XButtonData1
		if b == wininput.X2 {
			id = wininput.XButtonData2
		}
		wParam, err := xButtonParam(p.width, id)
		if err != nil {
			return Message{}, err
		}
		m.Msg = pick(down, WMXButtonDown, WMXButtonUp)
		m.WParam = uintptr(wParam)
	default:
		return Message{}, fmt.Errorf("%w: %d", wininput.ErrUnknownButton, uint8(b))
	}
	return m, nil
}

// Char delivers one WM_CHAR per UTF-16 code unit of r.
func (p *Poster) Char(hwnd uintptr, r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %U", wininput.ErrInvalidRune, r)
	}
	units := []uint16{uint16(r)}
	if hi, lo := utf16.EncodeRune(r); hi != utf8.RuneError {
		units = []uint16{uint16(hi), uint16(lo)}
	}
	for _, u := range units {
		if err := p.deliver(hwnd, Message{Msg: WMChar, WParam: uintptr(u)}); err != nil {
			return err
		}
	}
	return nil
}

func (p *Poster) deliver(hwnd uintptr, m Message) error {
	if p.opts.Synchronous {
		_, err := p.native.SendMessage(hwnd, m.Msg, m.WParam, m.LParam)
		return err
	}
	return p.native.PostMessage(hwnd, m.Msg, m.WParam, m.LParam)
}

func pick(down bool, onDown, onUp uint32) uint32 {
	if down {
		return onDown
	}
	return onUp
}
