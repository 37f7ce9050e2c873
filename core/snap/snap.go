package snap

import (
	"image/color"
	"math"
)

// Vec2 is a point or direction in editor playfield coordinates.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Provider converts between spatial distance and musical duration at a given
// time. Both functions are pure; results are strictly positive for valid
// inputs.
type Provider interface {
	BeatSnapDistanceAt(t float64) float64
	DistanceToDuration(t, distance float64) float64
}

// Palette resolves the display colour for a beat divisor.
type Palette interface {
	ColourFor(divisor int) color.RGBA
}

// Tick is one snappable point of a grid. For circular grids Radius is the
// ring radius and Pos lies on the ring; for linear grids Radius is zero.
type Tick struct {
	Index  int
	Pos    Vec2
	Time   float64
	Radius float64
}

// Shape implements the geometry of a concrete grid: where tick k lies and
// which tick a free position snaps to. Shapes read the owning grid's cached
// spacing, so they are only called between a completed recompute and the
// next invalidation.
type Shape interface {
	SnapPosition(g *Grid, pos Vec2) (Vec2, float64)
	Ticks(g *Grid) []Tick
}
