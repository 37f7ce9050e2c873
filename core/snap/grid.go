package snap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/beatforge/chartedit/core/divisor"
	game_log "github.com/beatforge/chartedit/internal/log"
)

// endTimeLeniency is added to a bounded grid's duration before counting
// intervals so that objects whose true time drifted marginally before the
// nominal snapped time still land on the last tick. Tunable; one time unit
// assumes millisecond-scale times.
const endTimeLeniency = 1.0

// Grid maps free playfield positions to beat-aligned positions and times.
// Spacing and interval count are cached and recomputed lazily: invalidation
// only marks the cache dirty, and the next read pays for a single recompute
// no matter how many invalidations preceded it.
type Grid struct {
	startPos  Vec2
	startTime float64
	endTime   float64
	bounded   bool

	shape    Shape
	provider Provider
	palette  Palette
	div      *divisor.Source
	logger   *game_log.Logger

	valid            bool
	distanceSpacing  float64
	intervalDuration float64
	maxIntervals     int
	viewExtent       float64
	ticks            []Tick
}

// NewGrid builds an unbounded grid starting at the given position and time.
// The grid subscribes to the divisor source for its lifetime; every divisor
// write invalidates the cache, redundant writes included.
func NewGrid(shape Shape, provider Provider, palette Palette, div *divisor.Source, logger *game_log.Logger, startPos Vec2, startTime float64) *Grid {
	g := &Grid{
		startPos:  startPos,
		startTime: startTime,
		shape:     shape,
		provider:  provider,
		palette:   palette,
		div:       div,
		logger:    logger,
	}
	div.Bind(func(int) { g.Invalidate() })
	return g
}

// NewBoundedGrid builds a grid whose ticks stop at endTime.
func NewBoundedGrid(shape Shape, provider Provider, palette Palette, div *divisor.Source, logger *game_log.Logger, startPos Vec2, startTime, endTime float64) *Grid {
	g := NewGrid(shape, provider, palette, div, logger, startPos, startTime)
	g.endTime = endTime
	g.bounded = true
	return g
}

// Invalidate marks the cached geometry dirty. Idempotent, cheap, safe to
// call any number of times per frame; nothing is recomputed until the next
// read.
func (g *Grid) Invalidate() { g.valid = false }

// SetViewExtent records how far from the start position tick content should
// be generated, in playfield units. Called by the owning view on layout
// changes; invalidates the cache.
func (g *Grid) SetViewExtent(extent float64) {
	g.viewExtent = extent
	g.Invalidate()
}

// EnsureValid recomputes spacing, interval count and tick content if the
// cache is dirty. Deterministic given the same divisor and extent.
func (g *Grid) EnsureValid() {
	if g.valid {
		return
	}
	spacing := g.provider.BeatSnapDistanceAt(g.startTime)
	if spacing <= 0 {
		panic(fmt.Sprintf("snap: provider returned non-positive beat snap distance %v at t=%v", spacing, g.startTime))
	}
	dur := g.provider.DistanceToDuration(g.startTime, spacing)
	if dur <= 0 {
		panic(fmt.Sprintf("snap: provider returned non-positive interval duration %v at t=%v", dur, g.startTime))
	}
	g.distanceSpacing = spacing
	g.intervalDuration = dur
	if g.bounded {
		maxDuration := g.endTime - g.startTime + endTimeLeniency
		n := int(math.Floor(maxDuration / dur))
		if n < 0 {
			n = 0
		}
		g.maxIntervals = n
	} else {
		g.maxIntervals = math.MaxInt
	}
	g.valid = true
	// Previous tick content is discarded wholesale; recomputes are rare
	// (divisor changes, resizes) so regeneration beats diffing.
	g.ticks = g.shape.Ticks(g)
	g.logger.Debugf("[SNAP] grid revalidated: spacing=%.2f interval=%.2fms maxIntervals=%d ticks=%d",
		spacing, dur, g.maxIntervals, len(g.ticks))
}

// SnappedPosition snaps a free position onto the grid and returns the
// snapped position together with its musical time. The time is always
// startTime + k*intervalDuration for some 0 <= k <= maxIntervals.
func (g *Grid) SnappedPosition(pos Vec2) (Vec2, float64) {
	g.EnsureValid()
	return g.shape.SnapPosition(g, pos)
}

// ColourForIndex maps a tick index to its display colour: the palette colour
// of the coarsest divisor landing exactly on the tick, faded out past the
// first divisor cycle so earlier ticks keep visual priority.
func (g *Grid) ColourForIndex(index int) color.RGBA {
	g.EnsureValid()
	d := g.div.Value()
	c := g.palette.ColourFor(divisor.ForBeatIndex(index+1, d))
	if cycle := index / d; cycle > 0 {
		c.A = uint8(math.Round(float64(c.A) * 0.5 / float64(cycle+1)))
	}
	return c
}

// Ticks returns the current tick content, regenerating it first if the
// cache is dirty. The slice is owned by the grid; callers must not retain it
// across invalidations.
func (g *Grid) Ticks() []Tick {
	g.EnsureValid()
	return g.ticks
}

func (g *Grid) StartPosition() Vec2 { return g.startPos }
func (g *Grid) StartTime() float64  { return g.startTime }

// DistanceSpacing returns the cached playfield distance of one snap
// interval, recomputing first if needed.
func (g *Grid) DistanceSpacing() float64 {
	g.EnsureValid()
	return g.distanceSpacing
}

// IntervalDuration returns the musical duration of one snap interval.
func (g *Grid) IntervalDuration() float64 {
	g.EnsureValid()
	return g.intervalDuration
}

// MaxIntervals returns the number of snappable intervals, math.MaxInt for an
// unbounded grid.
func (g *Grid) MaxIntervals() int {
	g.EnsureValid()
	return g.maxIntervals
}
