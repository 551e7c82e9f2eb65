package simulate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frudas24/winsim/internal/wininput"
)

// ErrUnknownKey is returned for a Key outside the portable set.
var ErrUnknownKey = errors.New("unknown key")

// Key is a platform-independent key.
type Key uint8

const (
	Alt Key = iota
	Shift
	Control
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	CapsLock
	End
	Home
	PageUp
	PageDown
	Escape
	Enter
	SpaceBar
	Tab
	Backspace
	Delete
	UpArrow
	DownArrow
	LeftArrow
	RightArrow
	keyCount
)

// keyMap is the portable key to virtual-key mapping.
var keyMap = [keyCount]wininput.VirtualKey{
	Alt:        wininput.Alt,
	Shift:      wininput.Shift,
	Control:    wininput.Control,
	F1:         wininput.F1,
	F2:         wininput.F2,
	F3:         wininput.F3,
	F4:         wininput.F4,
	F5:         wininput.F5,
	F6:         wininput.F6,
	F7:         wininput.F7,
	F8:         wininput.F8,
	F9:         wininput.F9,
	F10:        wininput.F10,
	F11:        wininput.F11,
	F12:        wininput.F12,
	CapsLock:   wininput.CapsLock,
	End:        wininput.End,
	Home:       wininput.Home,
	PageUp:     wininput.PageUp,
	PageDown:   wininput.PageDown,
	Escape:     wininput.Escape,
	Enter:      wininput.Enter,
	SpaceBar:   wininput.Space,
	Tab:        wininput.Tab,
	Backspace:  wininput.Backspace,
	Delete:     wininput.Delete,
	UpArrow:    wininput.UpArrow,
	DownArrow:  wininput.DownArrow,
	LeftArrow:  wininput.LeftArrow,
	RightArrow: wininput.RightArrow,
}

// VirtualKey returns the Windows virtual key for k.
func (k Key) VirtualKey() (wininput.VirtualKey, error) {
	if k >= keyCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKey, uint8(k))
	}
	return keyMap[k], nil
}

// String returns the key name shared with the virtual-key table.
func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyMap[k].String()
}

// ParseKey looks a portable key up by name, ignoring case.
func ParseKey(name string) (Key, error) {
	want := strings.TrimSpace(name)
	for k := Key(0); k < keyCount; k++ {
		if strings.EqualFold(k.String(), want) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Button is a platform-independent mouse button.
type Button uint8

const (
	Left Button = iota
	Middle
	Right
)

// MouseButton returns the Windows mouse button for b.
func (b Button) MouseButton() (wininput.MouseButton, error) {
	switch b {
	case Left:
		return wininput.Left, nil
	case Middle:
		return wininput.Middle, nil
	case Right:
		return wininput.Right, nil
	}
	return 0, fmt.Errorf("%w: %d", wininput.ErrUnknownButton, uint8(b))
}
