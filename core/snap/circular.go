package snap

import "math"

// Circular is a grid of concentric rings around the start position, ring k
// at radius k*distanceSpacing. Any direction from the centre is valid; only
// the distance is quantised.
type Circular struct{}

func NewCircular() *Circular { return &Circular{} }

func (s *Circular) SnapPosition(g *Grid, pos Vec2) (Vec2, float64) {
	rel := pos.Sub(g.startPos)
	dist := rel.Len()
	k := clampIndex(int(math.Round(dist/g.distanceSpacing)), g.maxIntervals)
	if k == 0 || dist == 0 {
		return g.startPos, g.startTime
	}
	snapped := g.startPos.Add(rel.Scale(float64(k) * g.distanceSpacing / dist))
	return snapped, g.startTime + float64(k)*g.intervalDuration
}

func (s *Circular) Ticks(g *Grid) []Tick {
	n := tickCount(g)
	ticks := make([]Tick, 0, n)
	// Ring 0 is the start position itself; content starts at ring 1.
	for k := 1; k <= n; k++ {
		r := float64(k) * g.distanceSpacing
		ticks = append(ticks, Tick{
			Index:  k,
			Pos:    g.startPos.Add(Vec2{X: r}),
			Time:   g.startTime + float64(k)*g.intervalDuration,
			Radius: r,
		})
	}
	return ticks
}
