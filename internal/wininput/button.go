package wininput

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownButton is returned for a MouseButton outside the enumerated set.
var ErrUnknownButton = errors.New("unknown mouse button")

// MouseButton identifies a physical mouse button.
type MouseButton uint8

const (
	// Left is the primary button.
	Left MouseButton = iota
	// Middle is the wheel button.
	Middle
	// Right is the secondary button.
	Right
	// X1 is the first extra button, usually "forward".
	X1
	// X2 is the second extra button, usually "back".
	X2
)

var buttonNames = [...]string{
	Left:   "left",
	Middle: "middle",
	Right:  "right",
	X1:     "x1",
	X2:     "x2",
}

// String returns the lower-case button name.
func (b MouseButton) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// ParseMouseButton accepts the names returned by String plus "forward" and "back".
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return Left, nil
	case "middle":
		return Middle, nil
	case "right":
		return Right, nil
	case "x1", "forward":
		return X1, nil
	case "x2", "back", "backward":
		return X2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
}

// buttonEvent returns the SendInput flags and mouse data for a button transition.
func buttonEvent(b MouseButton, down bool) (flags uint32, data int32, err error) {
	switch b {
	case Left:
		return pick(down, MouseEventLeftDown, MouseEventLeftUp), 0, nil
	case Middle:
		return pick(down, MouseEventMiddleDown, MouseEventMiddleUp), 0, nil
	case Right:
		return pick(down, MouseEventRightDown, MouseEventRightUp), 0, nil
	case X1:
		return pick(down, MouseEventXDown, MouseEventXUp), XButtonData1, nil
	case X2:
		return pick(down, MouseEventXDown, MouseEventXUp), XButtonData2, nil
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrUnknownButton, uint8(b))
}

func pick(down bool, onDown, onUp uint32) uint32 {
	if down {
		return onDown
	}
	return onUp
}
