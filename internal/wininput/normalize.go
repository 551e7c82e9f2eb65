package wininput

import "errors"

// NormalizedMax is the upper bound of the absolute coordinate space used by SendInput.
const NormalizedMax = 65535

// ErrNoDisplay indicates the OS reported a non-positive display extent.
var ErrNoDisplay = errors.New("display extent unavailable")

// Normalize maps a pixel coordinate onto [0, 65535] for a surface of the given extent.
// The division truncates toward zero, so a pixel can land up to one unit short.
func Normalize(pixel, extent int32) (int32, error) {
	if extent <= 0 {
		return 0, ErrNoDisplay
	}
	return int32(int64(pixel) * NormalizedMax / int64(extent)), nil
}

// Denormalize maps a normalized coordinate back to a pixel for the given extent.
func Denormalize(normalized, extent int32) (int32, error) {
	if extent <= 0 {
		return 0, ErrNoDisplay
	}
	return int32(int64(normalized) * int64(extent) / NormalizedMax), nil
}

// normalizePoint normalizes both axes against a width and height.
func normalizePoint(x, y, width, height int32) (int32, int32, error) {
	nx, err := Normalize(x, width)
	if err != nil {
		return 0, 0, err
	}
	ny, err := Normalize(y, height)
	if err != nil {
		return 0, 0, err
	}
	return nx, ny, nil
}
