//go:build windows

package winmsg

import (
	"testing"

	"github.com/frudas24/winsim/internal/winerr"
	"github.com/frudas24/winsim/internal/wininput"
)

// TestSystemPoster_InvalidWindow verifies PostMessageW failures carry ERROR_INVALID_WINDOW_HANDLE.
func TestSystemPoster_InvalidWindow(t *testing.T) {
	poster, err := NewSystemPoster(Options{})
	if err != nil {
		t.Fatalf("NewSystemPoster failed: %v", err)
	}
	err = poster.KeyDown(0xDEAD0, wininput.A)
	if err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if code := winerr.Code(err); code != 1400 {
		t.Fatalf("expected code 1400, got %d (%v)", code, err)
	}
}
