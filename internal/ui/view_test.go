package ui

import (
	"image/color"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/beatforge/chartedit/core/divisor"
	"github.com/beatforge/chartedit/core/snap"
	game_log "github.com/beatforge/chartedit/internal/log"
)

type countingProvider struct {
	calls int
}

func (p *countingProvider) BeatSnapDistanceAt(t float64) float64 {
	p.calls++
	return 30
}

func (p *countingProvider) DistanceToDuration(t, distance float64) float64 {
	return distance * 5
}

func newTestView(prov snap.Provider) (*View, *divisor.Source) {
	div := divisor.New(4)
	logger := game_log.New(io.Discard, game_log.LevelNone)
	grid := snap.NewGrid(snap.NewCircular(), prov, NewSkin(nil), div, logger, snap.Vec2{X: 256, Y: 192}, 0)
	return NewView(grid, div, logger), div
}

func TestViewFrameRecomputesOnce(t *testing.T) {
	clearMousePos()
	restore := SetInputForTest(
		func() (int, int) { return 320, 240 },
		func(ebiten.MouseButton) bool { return false },
		func() (float64, float64) { return 0, 0 },
	)
	defer restore()

	prov := &countingProvider{}
	v, div := newTestView(prov)
	v.Layout(640, 480)

	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	first := prov.calls
	if first != 1 {
		t.Fatalf("first frame recomputed %d times, want 1", first)
	}

	// A burst of divisor scrubbing between frames still costs one
	// recompute on the next read.
	for i := 0; i < 5; i++ {
		div.Set(8)
		div.Set(4)
	}
	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if prov.calls != first+1 {
		t.Fatalf("scrubbed frame recomputed %d times, want 1", prov.calls-first)
	}

	// A quiet frame recomputes nothing.
	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if prov.calls != first+1 {
		t.Fatalf("idle frame recomputed %d times, want 0", prov.calls-first-1)
	}
}

func TestViewLayoutChangeInvalidatesGrid(t *testing.T) {
	clearMousePos()
	restore := SetInputForTest(
		func() (int, int) { return 320, 240 },
		func(ebiten.MouseButton) bool { return false },
		func() (float64, float64) { return 0, 0 },
	)
	defer restore()

	prov := &countingProvider{}
	v, _ := newTestView(prov)
	v.Layout(640, 480)
	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	before := prov.calls

	v.Layout(1280, 720)
	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if prov.calls != before+1 {
		t.Fatalf("resize cost %d recomputes, want 1", prov.calls-before)
	}

	// Same size is a no-op.
	v.Layout(1280, 720)
	if err := v.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if prov.calls != before+1 {
		t.Fatalf("no-op layout cost %d recomputes, want 0", prov.calls-before-1)
	}
}

func TestViewSkinFallsBackOnUnknownDivisor(t *testing.T) {
	s := NewSkin(map[int]color.RGBA{4: {1, 2, 3, 4}})
	if got := s.ColourFor(4); got != (color.RGBA{1, 2, 3, 4}) {
		t.Fatalf("override ignored: %v", got)
	}
	if got := s.ColourFor(7); got != colUnknownDiv {
		t.Fatalf("unknown divisor colour=%v want fallback", got)
	}
}
