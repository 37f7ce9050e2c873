package snap

import (
	"math"
	"testing"

	"github.com/beatforge/chartedit/core/divisor"
)

func TestCircularSnapQuantisesDistanceOnly(t *testing.T) {
	prov := &stubProvider{spacing: 50, msPerUnit: 2} // interval = 100ms
	div := divisor.New(4)
	centre := Vec2{X: 200, Y: 200}
	g := NewBoundedGrid(NewCircular(), prov, stubPalette{}, div, testLogger(), centre, 0, 1000)

	// A point 120 units out along +X snaps to ring 2 in the same direction.
	gotPos, gotTime := g.SnappedPosition(Vec2{X: 320, Y: 200})
	if math.Abs(gotPos.X-300) > 1e-9 || math.Abs(gotPos.Y-200) > 1e-9 {
		t.Fatalf("pos=%v want (300,200)", gotPos)
	}
	if gotTime != 200 {
		t.Fatalf("time=%v want 200", gotTime)
	}

	// Direction is preserved off-axis.
	gotPos, _ = g.SnappedPosition(Vec2{X: 200, Y: 200 + 70})
	if math.Abs(gotPos.Y-250) > 1e-9 || math.Abs(gotPos.X-200) > 1e-9 {
		t.Fatalf("pos=%v want (200,250)", gotPos)
	}
}

func TestCircularSnapAtCentre(t *testing.T) {
	prov := &stubProvider{spacing: 50, msPerUnit: 2}
	div := divisor.New(4)
	centre := Vec2{X: 200, Y: 200}
	g := NewBoundedGrid(NewCircular(), prov, stubPalette{}, div, testLogger(), centre, 0, 1000)

	gotPos, gotTime := g.SnappedPosition(centre)
	if gotPos != centre || gotTime != 0 {
		t.Fatalf("snap(centre)=(%v,%v) want (%v,0)", gotPos, gotTime, centre)
	}
	// Inside the first half-ring also collapses to the centre.
	gotPos, gotTime = g.SnappedPosition(Vec2{X: 210, Y: 200})
	if gotPos != centre || gotTime != 0 {
		t.Fatalf("snap(near centre)=(%v,%v) want (%v,0)", gotPos, gotTime, centre)
	}
}

func TestCircularTicksAreRings(t *testing.T) {
	prov := &stubProvider{spacing: 50, msPerUnit: 2}
	div := divisor.New(4)
	g := NewBoundedGrid(NewCircular(), prov, stubPalette{}, div, testLogger(), Vec2{}, 0, 450)

	ticks := g.Ticks() // (450+1)/100 -> 4 intervals, rings 1..4
	if len(ticks) != 4 {
		t.Fatalf("ticks=%d want 4", len(ticks))
	}
	for i, tick := range ticks {
		k := i + 1
		if tick.Index != k {
			t.Fatalf("tick[%d].Index=%d want %d", i, tick.Index, k)
		}
		if want := float64(k) * 50; tick.Radius != want {
			t.Fatalf("tick[%d].Radius=%v want %v", i, tick.Radius, want)
		}
		if want := float64(k) * 100; tick.Time != want {
			t.Fatalf("tick[%d].Time=%v want %v", i, tick.Time, want)
		}
	}
}
