// Package wininput synthesizes keyboard and mouse input through SendInput.
package wininput

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrCursorUnavailable indicates the OS could not report the cursor position.
var ErrCursorUnavailable = errors.New("cursor position unavailable")

// ErrInvalidRune is returned for runes that have no UTF-16 encoding.
var ErrInvalidRune = errors.New("rune has no UTF-16 encoding")

// Native is the OS surface the injector drives.
type Native interface {
	// SendInput submits records as one batch and reports how many were queued.
	SendInput(records []Record) (uint32, error)
	// MessageExtraInfo returns the current GetMessageExtraInfo value.
	MessageExtraInfo() uintptr
	// ScreenSize returns the primary display size in pixels.
	ScreenSize() (width, height int32)
	// VirtualScreenSize returns the virtual desktop size in pixels.
	VirtualScreenSize() (width, height int32)
	// VirtualScreenOrigin returns the virtual desktop's top-left corner in screen coordinates.
	VirtualScreenOrigin() (x, y int32)
	// CursorPos returns the cursor position in virtual desktop pixels.
	CursorPos() (x, y int32, err error)
}

// ShortSendError reports a batch the OS only partially queued.
type ShortSendError struct {
	Sent uint32
	Want uint32
	Err  error
}

// Error describes the partial submission.
func (e *ShortSendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("SendInput queued %d of %d events: %v", e.Sent, e.Want, e.Err)
	}
	return fmt.Sprintf("SendInput queued %d of %d events", e.Sent, e.Want)
}

// Unwrap returns the OS error captured after the short submission.
func (e *ShortSendError) Unwrap() error {
	return e.Err
}

// Options tunes injector behavior.
type Options struct {
	// AllowShortSend treats a partially queued batch as success.
	AllowShortSend bool
}

// Injector turns logical input actions into SendInput batches.
type Injector struct {
	native Native
	opts   Options
}

// New returns an injector bound to native.
func New(native Native, opts Options) *Injector {
	return &Injector{native: native, opts: opts}
}

// KeyDown presses a virtual key.
func (in *Injector) KeyDown(key VirtualKey) error {
	return in.key(key, 0)
}

// KeyUp releases a virtual key.
func (in *Injector) KeyUp(key VirtualKey) error {
	return in.key(key, KeyEventKeyUp)
}

func (in *Injector) key(key VirtualKey, flags uint32) error {
	if !key.Valid() {
		return fmt.Errorf("unknown virtual key %d", uint8(key))
	}
	return in.send(keyboardRecord(key.Code(), 0, flags))
}

// UTF16Down presses a single UTF-16 code unit.
func (in *Injector) UTF16Down(unit uint16) error {
	return in.send(keyboardRecord(0, unit, KeyEventUnicode))
}

// UTF16Up releases a single UTF-16 code unit.
func (in *Injector) UTF16Up(unit uint16) error {
	return in.send(keyboardRecord(0, unit, KeyEventUnicode|KeyEventKeyUp))
}

// CharDown presses a character. Characters outside the BMP are sent as a surrogate pair in one batch.
func (in *Injector) CharDown(r rune) error {
	return in.char(r, KeyEventUnicode)
}

// CharUp releases a character.
func (in *Injector) CharUp(r rune) error {
	return in.char(r, KeyEventUnicode|KeyEventKeyUp)
}

func (in *Injector) char(r rune, flags uint32) error {
	units, err := encodeRune(r)
	if err != nil {
		return err
	}
	records := make([]Record, 0, len(units))
	for _, unit := range units {
		records = append(records, keyboardRecord(0, unit, flags))
	}
	return in.send(records...)
}

// encodeRune returns the one or two UTF-16 code units for r.
func encodeRune(r rune) ([]uint16, error) {
	if !utf8.ValidRune(r) {
		return nil, fmt.Errorf("%w: %U", ErrInvalidRune, r)
	}
	if hi, lo := utf16.EncodeRune(r); hi != utf8.RuneError {
		return []uint16{uint16(hi), uint16(lo)}, nil
	}
	return []uint16{uint16(r)}, nil
}

// ButtonDown presses a mouse button.
func (in *Injector) ButtonDown(b MouseButton) error {
	return in.button(b, true)
}

// ButtonUp releases a mouse button.
func (in *Injector) ButtonUp(b MouseButton) error {
	return in.button(b, false)
}

func (in *Injector) button(b MouseButton, down bool) error {
	flags, data, err := buttonEvent(b, down)
	if err != nil {
		return err
	}
	return in.send(mouseRecord(0, 0, data, flags))
}

// MoveTo moves the cursor to normalized coordinates on the primary display.
func (in *Injector) MoveTo(x, y int32) error {
	return in.send(mouseRecord(x, y, 0, MouseEventMove|MouseEventAbsolute))
}

// MoveToVirtualDesk moves the cursor to normalized coordinates spanning the whole virtual desktop.
func (in *Injector) MoveToVirtualDesk(x, y int32) error {
	return in.send(mouseRecord(x, y, 0, MouseEventMove|MouseEventAbsolute|MouseEventVirtualDesk))
}

// MoveToPixel moves the cursor to a pixel on the primary display.
func (in *Injector) MoveToPixel(x, y int32) error {
	w, h := in.native.ScreenSize()
	nx, ny, err := normalizePoint(x, y, w, h)
	if err != nil {
		return err
	}
	return in.MoveTo(nx, ny)
}

// MoveToVirtualDeskPixel moves the cursor to a pixel of the virtual desktop.
func (in *Injector) MoveToVirtualDeskPixel(x, y int32) error {
	w, h := in.native.VirtualScreenSize()
	nx, ny, err := normalizePoint(x, y, w, h)
	if err != nil {
		return err
	}
	return in.MoveToVirtualDesk(nx, ny)
}

// MoveBy moves the cursor relative to its last position.
//
// The OS applies pointer speed and the two acceleration thresholds to relative
// motion, which can multiply the distance by up to four. Use MoveByExact when
// the result has to land on a specific pixel.
func (in *Injector) MoveBy(dx, dy int32) error {
	return in.send(mouseRecord(dx, dy, 0, MouseEventMove))
}

// MoveByExact reads the cursor, adds the delta and moves there in primary display space.
// Nothing is sent when the cursor position cannot be read.
func (in *Injector) MoveByExact(dx, dy int32) error {
	x, y, err := in.cursor()
	if err != nil {
		return err
	}
	return in.MoveToPixel(x+dx, y+dy)
}

// MoveByExactVirtualDesk is MoveByExact in virtual desktop space.
// The cursor is read in screen coordinates, so it is shifted by the virtual
// desktop origin before normalizing.
func (in *Injector) MoveByExactVirtualDesk(dx, dy int32) error {
	x, y, err := in.cursor()
	if err != nil {
		return err
	}
	ox, oy := in.native.VirtualScreenOrigin()
	return in.MoveToVirtualDeskPixel(x-ox+dx, y-oy+dy)
}

func (in *Injector) cursor() (int32, int32, error) {
	x, y, err := in.native.CursorPos()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrCursorUnavailable, err)
	}
	return x, y, nil
}

// Scroll sends a vertical and a horizontal wheel event in one batch, vertical first.
func (in *Injector) Scroll(dx, dy int32) error {
	return in.send(
		mouseRecord(0, 0, dy, MouseEventWheel),
		mouseRecord(0, 0, dx, MouseEventHWheel),
	)
}

// Hardware sends a raw hardware input record.
func (in *Injector) Hardware(msg uint32, paramL, paramH uint16) error {
	return in.send(Record{Kind: KindHardware, Hardware: HardwareInput{Msg: msg, ParamL: paramL, ParamH: paramH}})
}

// send stamps records with fresh extra info and submits them as one batch.
func (in *Injector) send(records ...Record) error {
	records = withExtraInfo(records, in.native.MessageExtraInfo())
	sent, err := in.native.SendInput(records)
	if sent == uint32(len(records)) {
		return nil
	}
	if in.opts.AllowShortSend {
		return nil
	}
	return &ShortSendError{Sent: sent, Want: uint32(len(records)), Err: err}
}
