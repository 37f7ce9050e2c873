package ui

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCameraWorldScreenRoundTrip(t *testing.T) {
	c := &Camera{Scale: 2, OffsetX: 100, OffsetY: -40}
	for _, p := range [][2]float64{{0, 0}, {64, 32}, {-10, 500}} {
		sx, sy := c.ScreenPos(p[0], p[1])
		wx, wy := c.WorldPos(sx, sy)
		if math.Abs(wx-p[0]) > 1e-9 || math.Abs(wy-p[1]) > 1e-9 {
			t.Fatalf("roundtrip(%v)=(%v,%v)", p, wx, wy)
		}
	}
}

func TestCameraSnapClampsOffsets(t *testing.T) {
	c := &Camera{Scale: 1, OffsetX: 2e6, OffsetY: -3.7e6}
	c.Snap()
	if c.OffsetX != 1e6 || c.OffsetY != -1e6 {
		t.Fatalf("offsets=(%v,%v) want clamped to ±1e6", c.OffsetX, c.OffsetY)
	}
}

func TestCameraDragPans(t *testing.T) {
	clearMousePos()
	positions := [][2]int{{10, 10}, {30, 25}}
	i := 0
	restore := SetInputForTest(
		func() (int, int) { p := positions[i]; return p[0], p[1] },
		func(ebiten.MouseButton) bool { return true },
		func() (float64, float64) { return 0, 0 },
	)
	defer restore()

	c := NewCamera()
	c.HandleMouse(true) // establishes the drag anchor
	i = 1
	if !c.HandleMouse(true) {
		t.Fatalf("second move should report dragging")
	}
	if c.OffsetX != 20 || c.OffsetY != 15 {
		t.Fatalf("offset=(%v,%v) want (20,15)", c.OffsetX, c.OffsetY)
	}
}

func TestCameraIgnoresMouseWhenPanDisallowed(t *testing.T) {
	clearMousePos()
	restore := SetInputForTest(
		func() (int, int) { return 10, 10 },
		func(ebiten.MouseButton) bool { return true },
		func() (float64, float64) { return 0, 3 },
	)
	defer restore()

	c := NewCamera()
	before := *c
	if c.HandleMouse(false) {
		t.Fatalf("camera should not drag when pan is disallowed")
	}
	if *c != before {
		t.Fatalf("camera mutated: %+v -> %+v", before, *c)
	}
}

func TestCameraWheelZoomStaysBounded(t *testing.T) {
	clearMousePos()
	restore := SetInputForTest(
		func() (int, int) { return 100, 100 },
		func(ebiten.MouseButton) bool { return false },
		func() (float64, float64) { return 0, 1000 },
	)
	defer restore()

	c := NewCamera()
	c.HandleMouse(true)
	if c.Scale <= 2.0 || c.Scale > 10.0 {
		t.Fatalf("scale=%v want in (2,10]", c.Scale)
	}
}
