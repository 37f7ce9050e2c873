package snap

import "math"

// Linear is a grid whose ticks lie on a ray from the start position.
type Linear struct {
	dir Vec2 // unit length
}

// NewLinear builds a linear shape along the given direction.
func NewLinear(dir Vec2) *Linear {
	l := dir.Len()
	if l == 0 {
		panic("snap: linear grid direction must be non-zero")
	}
	return &Linear{dir: dir.Scale(1 / l)}
}

func (s *Linear) SnapPosition(g *Grid, pos Vec2) (Vec2, float64) {
	proj := pos.Sub(g.startPos).Dot(s.dir)
	k := clampIndex(int(math.Round(proj/g.distanceSpacing)), g.maxIntervals)
	snapped := g.startPos.Add(s.dir.Scale(float64(k) * g.distanceSpacing))
	return snapped, g.startTime + float64(k)*g.intervalDuration
}

func (s *Linear) Ticks(g *Grid) []Tick {
	n := tickCount(g)
	ticks := make([]Tick, 0, n+1)
	for k := 0; k <= n; k++ {
		ticks = append(ticks, Tick{
			Index: k,
			Pos:   g.startPos.Add(s.dir.Scale(float64(k) * g.distanceSpacing)),
			Time:  g.startTime + float64(k)*g.intervalDuration,
		})
	}
	return ticks
}

// clampIndex keeps a snapped interval ordinal inside [0, max].
func clampIndex(k, max int) int {
	if k < 0 {
		return 0
	}
	if k > max {
		return max
	}
	return k
}

// tickCount limits generated content to the view extent; an unbounded grid
// with no extent yet produces no content (snapping still works).
func tickCount(g *Grid) int {
	n := g.maxIntervals
	if g.viewExtent > 0 {
		if ext := int(math.Floor(g.viewExtent / g.distanceSpacing)); ext < n {
			n = ext
		}
	} else if !g.bounded {
		// No extent yet (view not laid out): nothing to enumerate.
		n = 0
	}
	return n
}
