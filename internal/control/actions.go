package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/wininput"
)

// ErrBadMessage marks a message that cannot be translated.
var ErrBadMessage = errors.New("bad control message")

// ActionsFor translates a stateless input message into backend actions.
// Messages that are not input (state changes, gestures, posting) return ok=false.
func ActionsFor(msg Message) (actions []simulate.Action, ok bool, err error) {
	switch msg.T {
	case "key":
		key, err := simulate.ParseKey(msg.Key)
		if err != nil {
			return nil, true, badMessage(err)
		}
		return []simulate.Action{simulate.SetKey{Key: key, Down: msg.Down}}, true, nil
	case "vkey":
		vk, err := wininput.ParseVirtualKey(msg.Key)
		if err != nil {
			return nil, true, badMessage(err)
		}
		return []simulate.Action{simulate.SetVirtualKey{Key: vk, Down: msg.Down}}, true, nil
	case "char":
		r, err := singleRune(msg.Text)
		if err != nil {
			return nil, true, err
		}
		return []simulate.Action{simulate.SetChar{Char: r, Down: msg.Down}}, true, nil
	case "type":
		return ActionsForType(msg.Text), true, nil
	case "button":
		b, err := ParseButton(msg.Button)
		if err != nil {
			return nil, true, err
		}
		return []simulate.Action{simulate.SetButton{Button: b, Down: msg.Down}}, true, nil
	case "click":
		b, err := ParseButton(msg.Button)
		if err != nil {
			return nil, true, err
		}
		return []simulate.Action{
			simulate.SetButton{Button: b, Down: true},
			simulate.SetButton{Button: b, Down: false},
		}, true, nil
	case "moveTo":
		return []simulate.Action{simulate.SetPosition{X: msg.X, Y: msg.Y}}, true, nil
	case "moveBy":
		return []simulate.Action{simulate.ChangePosition{DX: msg.X, DY: msg.Y}}, true, nil
	case "scroll":
		return []simulate.Action{simulate.ChangeScroll{DX: msg.X, DY: msg.Y}}, true, nil
	}
	return nil, false, nil
}

// ActionsForType generates a press and release per character of text.
func ActionsForType(text string) []simulate.Action {
	actions := make([]simulate.Action, 0, 2*len(text))
	for _, r := range text {
		actions = append(actions,
			simulate.SetChar{Char: r, Down: true},
			simulate.SetChar{Char: r, Down: false},
		)
	}
	return actions
}

// ParseButton maps a button name to a portable button; empty means left.
func ParseButton(name string) (simulate.Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return simulate.Left, nil
	case "middle":
		return simulate.Middle, nil
	case "right":
		return simulate.Right, nil
	}
	return 0, badMessage(fmt.Errorf("%w: %q", wininput.ErrUnknownButton, name))
}

// singleRune returns the only rune of text.
func singleRune(text string) (rune, error) {
	runes := []rune(text)
	if len(runes) != 1 {
		return 0, badMessage(fmt.Errorf("char needs exactly one character, got %d", len(runes)))
	}
	return runes[0], nil
}

func badMessage(err error) error {
	return fmt.Errorf("%w: %w", ErrBadMessage, err)
}
