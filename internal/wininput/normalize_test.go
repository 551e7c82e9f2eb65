package wininput

import (
	"errors"
	"testing"
)

// TestNormalize_Center verifies the documented 1920x1080 center example.
func TestNormalize_Center(t *testing.T) {
	x, y, err := normalizePoint(960, 540, 1920, 1080)
	if err != nil {
		t.Fatalf("normalizePoint failed: %v", err)
	}
	if x != 32767 || y != 32767 {
		t.Fatalf("expected (32767,32767), got (%d,%d)", x, y)
	}
}

// TestNormalize_Truncates verifies integer division truncates toward zero.
func TestNormalize_Truncates(t *testing.T) {
	got, err := Normalize(1, 3)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got != 21845 {
		t.Fatalf("expected 21845, got %d", got)
	}
	got, _ = Normalize(-1, 1920)
	if got != -34 {
		t.Fatalf("expected -34, got %d", got)
	}
}

// TestNormalize_NoDisplay verifies a non-positive extent is rejected.
func TestNormalize_NoDisplay(t *testing.T) {
	if _, err := Normalize(10, 0); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
	if _, err := Denormalize(10, -1); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}

// TestNormalize_RoundTripWithinOnePixel verifies pixel -> normalized -> pixel stays within one pixel.
func TestNormalize_RoundTripWithinOnePixel(t *testing.T) {
	for _, extent := range []int32{1, 7, 800, 1080, 1366, 1920, 2560, 3840, 7680} {
		for p := int32(0); p < extent; p++ {
			n, err := Normalize(p, extent)
			if err != nil {
				t.Fatalf("Normalize(%d,%d) failed: %v", p, extent, err)
			}
			if n < 0 || n > NormalizedMax {
				t.Fatalf("Normalize(%d,%d) = %d out of range", p, extent, n)
			}
			back, err := Denormalize(n, extent)
			if err != nil {
				t.Fatalf("Denormalize(%d,%d) failed: %v", n, extent, err)
			}
			if d := back - p; d < -1 || d > 1 {
				t.Fatalf("extent %d: pixel %d came back as %d", extent, p, back)
			}
		}
	}
}

// TestNormalize_LargeCoordinatesDoNotOverflow verifies 64-bit intermediate math.
func TestNormalize_LargeCoordinatesDoNotOverflow(t *testing.T) {
	got, err := Normalize(60000, 65535)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got != 60000 {
		t.Fatalf("expected 60000, got %d", got)
	}
}
