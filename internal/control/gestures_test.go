package control

import (
	"testing"
	"time"

	"github.com/frudas24/winsim/internal/simulate"
)

// TestDrag_DownMovesThenPresses verifies a drag starts at the pointer.
func TestDrag_DownMovesThenPresses(t *testing.T) {
	g := NewGestureState()
	actions := g.HandleDown(1, 100, 200, simulate.Left)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %#v", actions)
	}
	if actions[0] != (simulate.SetPosition{X: 100, Y: 200}) || actions[1] != (simulate.SetButton{Button: simulate.Left, Down: true}) {
		t.Fatalf("unexpected actions %#v", actions)
	}
	if !g.Active() {
		t.Fatalf("expected active drag")
	}
}

// TestDrag_MoveOnlyWhenActiveAndSamePointer verifies drag move logic and throttling.
func TestDrag_MoveOnlyWhenActiveAndSamePointer(t *testing.T) {
	g := NewGestureState()
	now := time.Unix(0, 0)
	g.SetNowFunc(func() time.Time { return now })

	if actions := g.HandleMove(1, 10, 10); len(actions) != 0 {
		t.Fatalf("expected no move without drag, got %#v", actions)
	}

	g.HandleDown(1, 120, 120, simulate.Left)

	now = now.Add(20 * time.Millisecond)
	if actions := g.HandleMove(2, 130, 130); len(actions) != 0 {
		t.Fatalf("expected no move for other pointer, got %#v", actions)
	}

	now = now.Add(5 * time.Millisecond)
	if actions := g.HandleMove(1, 130, 130); len(actions) != 1 {
		t.Fatalf("expected move, got %#v", actions)
	}

	now = now.Add(5 * time.Millisecond)
	if actions := g.HandleMove(1, 140, 140); len(actions) != 0 {
		t.Fatalf("expected throttle, got %#v", actions)
	}

	now = now.Add(20 * time.Millisecond)
	if actions := g.HandleMove(1, 131, 131); len(actions) != 0 {
		t.Fatalf("expected tiny move to be dropped, got %#v", actions)
	}
}

// TestDrag_UpReleasesDragButton verifies the drag button is released at the final point.
func TestDrag_UpReleasesDragButton(t *testing.T) {
	g := NewGestureState()
	g.HandleDown(3, 0, 0, simulate.Right)
	if actions := g.HandleUp(4, 5, 5); len(actions) != 0 {
		t.Fatalf("expected other pointer to be ignored, got %#v", actions)
	}
	actions := g.HandleUp(3, 50, 60)
	if len(actions) != 2 || actions[1] != (simulate.SetButton{Button: simulate.Right}) {
		t.Fatalf("unexpected actions %#v", actions)
	}
	if g.Active() {
		t.Fatalf("expected drag to end")
	}
}

// TestDrag_SecondDownReleasesFirst verifies a new drag never leaves a button stuck.
func TestDrag_SecondDownReleasesFirst(t *testing.T) {
	g := NewGestureState()
	g.HandleDown(1, 0, 0, simulate.Middle)
	actions := g.HandleDown(2, 9, 9, simulate.Left)
	if len(actions) != 3 || actions[0] != (simulate.SetButton{Button: simulate.Middle}) {
		t.Fatalf("unexpected actions %#v", actions)
	}
}
