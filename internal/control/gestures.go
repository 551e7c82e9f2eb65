package control

import (
	"time"

	"github.com/frudas24/winsim/internal/simulate"
)

const (
	minMoveInterval = 16 * time.Millisecond
	minMoveDelta    = 2
)

// GestureState tracks a pointer drag: down presses, move drags, up releases.
type GestureState struct {
	dragActive  bool
	dragPointer int
	dragButton  simulate.Button
	lastMoveAt  time.Time
	lastX       int32
	lastY       int32
	now         func() time.Time
}

// NewGestureState returns a ready-to-use gesture tracker.
func NewGestureState() *GestureState {
	return &GestureState{now: time.Now}
}

// SetNowFunc overrides the clock used for throttling.
func (g *GestureState) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		g.now = fn
	}
}

// HandleDown moves to the pointer and presses the button, starting a drag.
func (g *GestureState) HandleDown(pointerID int, x, y int32, button simulate.Button) []simulate.Action {
	var actions []simulate.Action
	if g.dragActive {
		actions = append(actions, simulate.SetButton{Button: g.dragButton, Down: false})
	}
	g.dragActive = true
	g.dragPointer = pointerID
	g.dragButton = button
	g.lastMoveAt = g.now()
	g.lastX = x
	g.lastY = y
	return append(actions,
		simulate.SetPosition{X: x, Y: y},
		simulate.SetButton{Button: button, Down: true},
	)
}

// HandleMove drags the cursor. Moves from other pointers, moves arriving faster
// than minMoveInterval and moves shorter than minMoveDelta are dropped.
func (g *GestureState) HandleMove(pointerID int, x, y int32) []simulate.Action {
	if !g.dragActive || g.dragPointer != pointerID {
		return nil
	}

	now := g.now()
	if !g.lastMoveAt.IsZero() && now.Sub(g.lastMoveAt) < minMoveInterval {
		return nil
	}
	if abs(x-g.lastX) < minMoveDelta && abs(y-g.lastY) < minMoveDelta {
		return nil
	}

	g.lastMoveAt = now
	g.lastX = x
	g.lastY = y
	return []simulate.Action{simulate.SetPosition{X: x, Y: y}}
}

// HandleUp releases the drag at the final position.
func (g *GestureState) HandleUp(pointerID int, x, y int32) []simulate.Action {
	if !g.dragActive || g.dragPointer != pointerID {
		return nil
	}

	g.dragActive = false
	return []simulate.Action{
		simulate.SetPosition{X: x, Y: y},
		simulate.SetButton{Button: g.dragButton, Down: false},
	}
}

// Active reports whether a drag is in progress.
func (g *GestureState) Active() bool {
	return g.dragActive
}

// abs returns the absolute value of an integer.
func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
