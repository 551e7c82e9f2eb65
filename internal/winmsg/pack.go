package winmsg

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPointerWidth is returned when message parameters cannot be packed for a pointer width.
var ErrUnsupportedPointerWidth = errors.New("unsupported pointer width")

// PackPosition packs a client-area position into an lParam for a pointer width of 32 or 64 bits.
// Each coordinate is sign-extended to half of the width; x occupies the low half, y the high half.
func PackPosition(width int, x, y int16) (uint64, error) {
	switch width {
	case 64:
		return uint64(uint32(int32(x))) | uint64(uint32(int32(y)))<<32, nil
	case 32:
		return uint64(uint16(x)) | uint64(uint16(y))<<16, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedPointerWidth, width)
}

// xButtonParam returns the wParam for an X button message, the button id in the upper half.
func xButtonParam(width int, button int32) (uint64, error) {
	if width != 32 && width != 64 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedPointerWidth, width)
	}
	return uint64(uint32(button)) << (width / 2), nil
}
