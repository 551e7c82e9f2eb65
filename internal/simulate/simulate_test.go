package simulate_test

import (
	"errors"
	"testing"

	"github.com/frudas24/winsim/internal/simulate"
	"github.com/frudas24/winsim/internal/testutil"
	"github.com/frudas24/winsim/internal/wininput"
)

func newBackend(space simulate.Space) (*simulate.Windows, *testutil.FakeInput) {
	native := testutil.NewFakeInput()
	return simulate.NewWindows(wininput.New(native, wininput.Options{}), space), native
}

// TestKeyMap_AllPortableKeysResolve verifies every portable key maps to a distinct valid virtual key.
func TestKeyMap_AllPortableKeysResolve(t *testing.T) {
	seen := make(map[wininput.VirtualKey]simulate.Key)
	for k := simulate.Alt; k <= simulate.RightArrow; k++ {
		vk, err := k.VirtualKey()
		if err != nil {
			t.Fatalf("%d: %v", k, err)
		}
		if !vk.Valid() {
			t.Fatalf("%s maps to invalid key", k)
		}
		if prev, ok := seen[vk]; ok {
			t.Fatalf("%s and %s share %s", prev, k, vk)
		}
		seen[vk] = k
		parsed, err := simulate.ParseKey(k.String())
		if err != nil || parsed != k {
			t.Fatalf("ParseKey(%q) = %d, %v", k.String(), parsed, err)
		}
	}
	if _, err := simulate.ParseKey("Numpad5"); !errors.Is(err, simulate.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

// TestSimulate_SetKey verifies portable keys reach the injector as virtual keys.
func TestSimulate_SetKey(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	if err := w.Simulate(simulate.SetKey{Key: simulate.Enter, Down: true}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if err := w.Simulate(simulate.SetKey{Key: simulate.Enter}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if got := native.Batches[0][0].Keyboard; got.VK != 0x0D || got.Flags != 0 {
		t.Fatalf("unexpected down %+v", got)
	}
	if got := native.Batches[1][0].Keyboard; got.VK != 0x0D || got.Flags != wininput.KeyEventKeyUp {
		t.Fatalf("unexpected up %+v", got)
	}
}

// TestSimulate_SetVirtualKey verifies virtual keys pass through unchanged.
func TestSimulate_SetVirtualKey(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	if err := w.Simulate(simulate.SetVirtualKey{Key: wininput.VolumeMute, Down: true}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if got := native.Last()[0].Keyboard.VK; got != 0xAD {
		t.Fatalf("expected 0xAD, got %#x", got)
	}
}

// TestSimulate_SetButton verifies the portable button mapping.
func TestSimulate_SetButton(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	if err := w.Simulate(simulate.SetButton{Button: simulate.Middle, Down: true}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if got := native.Last()[0].Mouse.Flags; got != wininput.MouseEventMiddleDown {
		t.Fatalf("unexpected flags %#x", got)
	}
	if err := w.Simulate(simulate.SetButton{Button: simulate.Button(9)}); !errors.Is(err, wininput.ErrUnknownButton) {
		t.Fatalf("expected ErrUnknownButton, got %v", err)
	}
}

// TestSimulate_SetPositionVirtualDesk verifies absolute moves span the virtual desktop by default.
func TestSimulate_SetPositionVirtualDesk(t *testing.T) {
	w, native := newBackend("")
	if w.Space() != simulate.VirtualDesk {
		t.Fatalf("expected default space virtual, got %q", w.Space())
	}
	if err := w.Simulate(simulate.SetPosition{X: 1920, Y: 540}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	m := native.Last()[0].Mouse
	if m.DX != 32767 || m.DY != 32767 || m.Flags&wininput.MouseEventVirtualDesk == 0 {
		t.Fatalf("unexpected record %+v", m)
	}
}

// TestSimulate_SetPositionPrimary verifies the primary space uses the primary display.
func TestSimulate_SetPositionPrimary(t *testing.T) {
	w, native := newBackend(simulate.Primary)
	if err := w.Simulate(simulate.SetPosition{X: 960, Y: 540}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	m := native.Last()[0].Mouse
	if m.DX != 32767 || m.DY != 32767 || m.Flags != wininput.MouseEventMove|wininput.MouseEventAbsolute {
		t.Fatalf("unexpected record %+v", m)
	}
}

// TestSimulate_ChangePositionIsRelativeToCursor verifies deltas are added to the cursor.
func TestSimulate_ChangePositionIsRelativeToCursor(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	native.CursorX, native.CursorY = 1900, 530
	if err := w.Simulate(simulate.ChangePosition{DX: 20, DY: 10}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	m := native.Last()[0].Mouse
	if m.DX != 32767 || m.DY != 32767 {
		t.Fatalf("expected the cursor plus delta, got (%d,%d)", m.DX, m.DY)
	}
}

// TestSimulate_ChangePositionCursorFailure verifies nothing moves when the cursor is unknown.
func TestSimulate_ChangePositionCursorFailure(t *testing.T) {
	w, native := newBackend(simulate.Primary)
	native.CursorErr = errors.New("denied")
	err := w.Simulate(simulate.ChangePosition{DX: 1, DY: 1})
	if !errors.Is(err, wininput.ErrCursorUnavailable) {
		t.Fatalf("expected ErrCursorUnavailable, got %v", err)
	}
	if len(native.Batches) != 0 {
		t.Fatalf("expected no batches")
	}
}

// TestSimulate_ChangeScroll verifies scroll is forwarded as one batch.
func TestSimulate_ChangeScroll(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	if err := w.Simulate(simulate.ChangeScroll{DX: 0, DY: -120}); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(native.Batches) != 1 || len(native.Batches[0]) != 2 {
		t.Fatalf("unexpected batches %+v", native.Batches)
	}
	if native.Batches[0][0].Mouse.Data != -120 {
		t.Fatalf("expected vertical delta first, got %+v", native.Batches[0][0].Mouse)
	}
}

// TestType_PressesAndReleasesEachChar verifies text typing order.
func TestType_PressesAndReleasesEachChar(t *testing.T) {
	w, native := newBackend(simulate.VirtualDesk)
	if err := w.Type("hé"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if len(native.Batches) != 4 {
		t.Fatalf("expected 4 batches, got %d", len(native.Batches))
	}
	want := []struct {
		unit  uint16
		flags uint32
	}{
		{'h', wininput.KeyEventUnicode},
		{'h', wininput.KeyEventUnicode | wininput.KeyEventKeyUp},
		{0xE9, wininput.KeyEventUnicode},
		{0xE9, wininput.KeyEventUnicode | wininput.KeyEventKeyUp},
	}
	for i, w := range want {
		got := native.Batches[i][0].Keyboard
		if got.Scan != w.unit || got.Flags != w.flags {
			t.Fatalf("batch %d: unexpected %+v", i, got)
		}
	}
}

// TestParseSpace verifies accepted names.
func TestParseSpace(t *testing.T) {
	for in, want := range map[string]simulate.Space{"": simulate.VirtualDesk, "virtual": simulate.VirtualDesk, "primary": simulate.Primary} {
		got, err := simulate.ParseSpace(in)
		if err != nil || got != want {
			t.Fatalf("ParseSpace(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := simulate.ParseSpace("left"); err == nil {
		t.Fatalf("expected error")
	}
}

// TestSpaceBar_ResolvesAndParses verifies the space key maps to VK_SPACE and parses by name.
func TestSpaceBar_ResolvesAndParses(t *testing.T) {
	vk, err := simulate.SpaceBar.VirtualKey()
	if err != nil || vk != wininput.Space {
		t.Fatalf("expected wininput.Space, got %v, %v", vk, err)
	}
	k, err := simulate.ParseKey("space")
	if err != nil || k != simulate.SpaceBar {
		t.Fatalf("expected SpaceBar, got %v, %v", k, err)
	}

	w, _ := newBackend(simulate.Primary)
	if w.Space() != simulate.Primary {
		t.Fatalf("expected primary space, got %q", w.Space())
	}
}
