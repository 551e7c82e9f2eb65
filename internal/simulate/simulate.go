// Package simulate routes portable input actions to the Windows backend.
package simulate

import (
	"errors"
	"fmt"

	"github.com/frudas24/winsim/internal/wininput"
)

// ErrUnknownAction is returned for an Action type the backend does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Action is one input change. Implementations are the Set* and Change* types.
type Action interface {
	action()
}

// SetVirtualKey presses or releases a Windows virtual key.
type SetVirtualKey struct {
	Key  wininput.VirtualKey
	Down bool
}

// SetKey presses or releases a portable key.
type SetKey struct {
	Key  Key
	Down bool
}

// SetChar presses or releases a character.
type SetChar struct {
	Char rune
	Down bool
}

// SetButton presses or releases a portable mouse button.
type SetButton struct {
	Button Button
	Down   bool
}

// SetPosition moves the cursor to a pixel position.
type SetPosition struct {
	X, Y int32
}

// ChangePosition moves the cursor by a pixel delta.
type ChangePosition struct {
	DX, DY int32
}

// ChangeScroll scrolls by a wheel delta; positive DY scrolls up.
type ChangeScroll struct {
	DX, DY int32
}

func (SetVirtualKey) action()  {}
func (SetKey) action()         {}
func (SetChar) action()        {}
func (SetButton) action()      {}
func (SetPosition) action()    {}
func (ChangePosition) action() {}
func (ChangeScroll) action()   {}

// Space selects the coordinate space for cursor moves.
type Space string

const (
	// VirtualDesk measures positions across every attached display.
	VirtualDesk Space = "virtual"
	// Primary measures positions on the primary display only.
	Primary Space = "primary"
)

// ParseSpace validates a space name; empty means VirtualDesk.
func ParseSpace(s string) (Space, error) {
	switch Space(s) {
	case "", VirtualDesk:
		return VirtualDesk, nil
	case Primary:
		return Primary, nil
	}
	return "", fmt.Errorf("invalid move space %q", s)
}

// Input is the injector surface used by Windows.
type Input interface {
	KeyDown(wininput.VirtualKey) error
	KeyUp(wininput.VirtualKey) error
	CharDown(rune) error
	CharUp(rune) error
	ButtonDown(wininput.MouseButton) error
	ButtonUp(wininput.MouseButton) error
	MoveToPixel(x, y int32) error
	MoveToVirtualDeskPixel(x, y int32) error
	MoveByExact(dx, dy int32) error
	MoveByExactVirtualDesk(dx, dy int32) error
	Scroll(dx, dy int32) error
}

// Windows simulates actions through SendInput.
type Windows struct {
	input Input
	space Space
}

// NewWindows returns a backend driving input in the given space.
func NewWindows(input Input, space Space) *Windows {
	if space == "" {
		space = VirtualDesk
	}
	return &Windows{input: input, space: space}
}

// Space returns the coordinate space used for moves.
func (w *Windows) Space() Space {
	return w.space
}

// Simulate performs a single action.
func (w *Windows) Simulate(a Action) error {
	switch a := a.(type) {
	case SetVirtualKey:
		return w.setKey(a.Key, a.Down)
	case SetKey:
		vk, err := a.Key.VirtualKey()
		if err != nil {
			return err
		}
		return w.setKey(vk, a.Down)
	case SetChar:
		if a.Down {
			return w.input.CharDown(a.Char)
		}
		return w.input.CharUp(a.Char)
	case SetButton:
		b, err := a.Button.MouseButton()
		if err != nil {
			return err
		}
		if a.Down {
			return w.input.ButtonDown(b)
		}
		return w.input.ButtonUp(b)
	case SetPosition:
		if w.space == Primary {
			return w.input.MoveToPixel(a.X, a.Y)
		}
		return w.input.MoveToVirtualDeskPixel(a.X, a.Y)
	case ChangePosition:
		if w.space == Primary {
			return w.input.MoveByExact(a.DX, a.DY)
		}
		return w.input.MoveByExactVirtualDesk(a.DX, a.DY)
	case ChangeScroll:
		return w.input.Scroll(a.DX, a.DY)
	}
	return fmt.Errorf("%w: %T", ErrUnknownAction, a)
}

// Type presses and releases each character of text in order.
func (w *Windows) Type(text string) error {
	for _, r := range text {
		if err := w.Simulate(SetChar{Char: r, Down: true}); err != nil {
			return err
		}
		if err := w.Simulate(SetChar{Char: r, Down: false}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Windows) setKey(vk wininput.VirtualKey, down bool) error {
	if down {
		return w.input.KeyDown(vk)
	}
	return w.input.KeyUp(vk)
}
