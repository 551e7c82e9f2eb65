// Package monitor describes display geometry and enumeration.
package monitor

import (
	"errors"
	"math"
)

// ErrNoMonitors is returned when no display is attached.
var ErrNoMonitors = errors.New("no monitors detected")

// Monitor describes a display and its bounds in virtual-screen pixels.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// Bounds returns the rectangle spanning every monitor, i.e. the virtual desktop.
func Bounds(list []Monitor) (Monitor, error) {
	if len(list) == 0 {
		return Monitor{}, ErrNoMonitors
	}
	minX, minY := list[0].X, list[0].Y
	maxX, maxY := list[0].X+list[0].W, list[0].Y+list[0].H
	for _, m := range list[1:] {
		minX = min(minX, m.X)
		minY = min(minY, m.Y)
		maxX = max(maxX, m.X+m.W)
		maxY = max(maxY, m.Y+m.H)
	}
	return Monitor{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, nil
}

// DesktopPoint maps normalized coordinates inside m to pixels measured from the
// top-left corner of the virtual desktop described by bounds.
func DesktopPoint(m, bounds Monitor, xn, yn float64) (int, int) {
	x := m.X - bounds.X + normToPixels(clamp01(xn), m.W)
	y := m.Y - bounds.Y + normToPixels(clamp01(yn), m.H)
	return x, y
}

func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
