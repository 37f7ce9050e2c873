package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/beatforge/chartedit/core/divisor"
	"github.com/beatforge/chartedit/core/snap"
	game_log "github.com/beatforge/chartedit/internal/log"
)

// extentHysteresis keeps camera motion from invalidating the grid every
// frame: the view extent is only re-reported when it moved by more than
// this many playfield units.
const extentHysteresis = 32.0

// View is the editor preview: it pans/zooms over a snap grid, shows the
// snapped position under the cursor and hosts the divisor bar. All grid
// reads happen inside the frame loop, so however many invalidations a frame
// produces, the grid recomputes at most once.
type View struct {
	cam    *Camera
	grid   *snap.Grid
	div    *divisor.Source
	bar    *DivisorBar
	logger *game_log.Logger

	w, h       int
	lastExtent float64

	hoverPos  snap.Vec2
	hoverTime float64
}

func NewView(grid *snap.Grid, div *divisor.Source, logger *game_log.Logger) *View {
	return &View{
		cam:    NewCamera(),
		grid:   grid,
		div:    div,
		bar:    NewDivisorBar(div),
		logger: logger,
	}
}

func (v *View) Update() error {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)

	consumed := v.bar.Handle(mx, my, pressed)
	overBar := image.Pt(mx, my).In(v.bar.Rect())
	v.cam.HandleMouse(!consumed && !overBar)

	// Re-report the visible extent before any grid read so a changed
	// extent and the frame's reads cost one recompute total.
	v.syncExtent()

	wx, wy := v.cam.WorldPos(float64(mx), float64(my))
	v.hoverPos, v.hoverTime = v.grid.SnappedPosition(snap.Vec2{X: wx, Y: wy})
	return nil
}

// syncExtent pushes the distance from the grid origin to the farthest
// visible corner into the grid, with hysteresis.
func (v *View) syncExtent() {
	if v.w == 0 || v.h == 0 {
		return
	}
	start := v.grid.StartPosition()
	var extent float64
	for _, c := range [4][2]float64{{0, 0}, {float64(v.w), 0}, {0, float64(v.h)}, {float64(v.w), float64(v.h)}} {
		wx, wy := v.cam.WorldPos(c[0], c[1])
		if d := (snap.Vec2{X: wx, Y: wy}).Sub(start).Len(); d > extent {
			extent = d
		}
	}
	if math.Abs(extent-v.lastExtent) > extentHysteresis {
		v.lastExtent = extent
		v.grid.SetViewExtent(extent)
		v.logger.Debugf("[VIEW] extent now %.0f", extent)
	}
}

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)

	start := v.grid.StartPosition()
	csx, csy := v.cam.ScreenPos(start.X, start.Y)

	for _, t := range v.grid.Ticks() {
		col := v.grid.ColourForIndex(t.Index)
		if t.Radius > 0 {
			drawCircle(screen, csx, csy, t.Radius*v.cam.Scale, col)
		} else {
			sx, sy := v.cam.ScreenPos(t.Pos.X, t.Pos.Y)
			drawDot(screen, sx, sy, 3, col)
		}
	}

	drawDot(screen, csx, csy, 4, colCentre)

	hx, hy := v.cam.ScreenPos(v.hoverPos.X, v.hoverPos.Y)
	drawCircle(screen, hx, hy, 6, colHover)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("1/%d  t=%.0fms", v.div.Value(), v.hoverTime), 10, 10)

	v.bar.Draw(screen)
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.w || outsideHeight != v.h {
		v.w, v.h = outsideWidth, outsideHeight
		v.bar.SetRect(image.Rect(10, v.h-40, 210, v.h-16))
		v.grid.Invalidate()
	}
	return outsideWidth, outsideHeight
}
