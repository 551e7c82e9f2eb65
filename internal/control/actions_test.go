package control

import (
	"errors"
	"testing"

	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/wininput"
)

// TestActionsFor_InputMessages verifies each stateless message maps to its actions.
func TestActionsFor_InputMessages(t *testing.T) {
	cases := []struct {
		msg  Message
		want []simulate.Action
	}{
		{Message{T: "key", Key: "escape", Down: true}, []simulate.Action{simulate.SetKey{Key: simulate.Escape, Down: true}}},
		{Message{T: "vkey", Key: "VolumeUp"}, []simulate.Action{simulate.SetVirtualKey{Key: wininput.VolumeUp}}},
		{Message{T: "char", Text: "ß", Down: true}, []simulate.Action{simulate.SetChar{Char: 'ß', Down: true}}},
		{Message{T: "button", Button: "right", Down: true}, []simulate.Action{simulate.SetButton{Button: simulate.Right, Down: true}}},
		{Message{T: "click"}, []simulate.Action{simulate.SetButton{Button: simulate.Left, Down: true}, simulate.SetButton{Button: simulate.Left}}},
		{Message{T: "moveTo", X: 10, Y: 20}, []simulate.Action{simulate.SetPosition{X: 10, Y: 20}}},
		{Message{T: "moveBy", X: -1, Y: 2}, []simulate.Action{simulate.ChangePosition{DX: -1, DY: 2}}},
		{Message{T: "scroll", Y: -120}, []simulate.Action{simulate.ChangeScroll{DY: -120}}},
	}
	for _, tc := range cases {
		got, ok, err := ActionsFor(tc.msg)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", tc.msg.T, ok, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d actions, got %#v", tc.msg.T, len(tc.want), got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: action %d expected %#v, got %#v", tc.msg.T, i, tc.want[i], got[i])
			}
		}
	}
}

// TestActionsFor_Type verifies text expands to press/release pairs.
func TestActionsFor_Type(t *testing.T) {
	got, ok, err := ActionsFor(Message{T: "type", Text: "ok"})
	if err != nil || !ok || len(got) != 4 {
		t.Fatalf("unexpected result %#v ok=%v err=%v", got, ok, err)
	}
	if got[0] != (simulate.SetChar{Char: 'o', Down: true}) || got[3] != (simulate.SetChar{Char: 'k'}) {
		t.Fatalf("unexpected order %#v", got)
	}
}

// TestActionsFor_BadInput verifies invalid names are reported as bad messages.
func TestActionsFor_BadInput(t *testing.T) {
	for _, msg := range []Message{
		{T: "key", Key: "Numpad5"},
		{T: "vkey", Key: "NoSuchKey"},
		{T: "char", Text: "ab"},
		{T: "button", Button: "x1"},
	} {
		_, ok, err := ActionsFor(msg)
		if !ok || !errors.Is(err, ErrBadMessage) {
			t.Fatalf("%+v: expected bad message, got ok=%v err=%v", msg, ok, err)
		}
	}
}

// TestActionsFor_NotInput verifies non-input messages are left to the server.
func TestActionsFor_NotInput(t *testing.T) {
	for _, kind := range []string{"down", "move", "postKey", "inputEnabled"} {
		if _, ok, err := ActionsFor(Message{T: kind}); ok || err != nil {
			t.Fatalf("%s: expected ok=false, got ok=%v err=%v", kind, ok, err)
		}
	}
}
