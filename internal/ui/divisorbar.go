package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/beatforge/chartedit/core/divisor"
)

// DivisorBar is a horizontal slider with one detent per valid beat divisor.
// Dragging writes through to the divisor source on every frame, so the grid
// sees redundant notifications while the knob sits on one detent; that is
// intentional and mirrors how divisor scrubbing behaves upstream.
type DivisorBar struct {
	r        image.Rectangle
	div      *divisor.Source
	dragging bool
}

func NewDivisorBar(div *divisor.Source) *DivisorBar {
	return &DivisorBar{div: div}
}

func (b *DivisorBar) SetRect(r image.Rectangle) { b.r = r }
func (b *DivisorBar) Rect() image.Rectangle     { return b.r }

// Handle processes mouse interaction. Returns true when the bar consumed
// the event.
func (b *DivisorBar) Handle(mx, my int, pressed bool) bool {
	if pressed {
		if b.dragging || image.Pt(mx, my).In(b.r) {
			b.dragging = true
			b.div.Set(divisor.ValidDivisors[b.detentFromX(mx)])
			return true
		}
	} else if b.dragging {
		b.dragging = false
		return true
	}
	return false
}

func (b *DivisorBar) detentFromX(mx int) int {
	n := len(divisor.ValidDivisors)
	w := b.r.Dx() - 1
	if w <= 0 {
		return 0
	}
	pos := float64(mx - b.r.Min.X)
	if pos < 0 {
		pos = 0
	}
	if pos > float64(w) {
		pos = float64(w)
	}
	idx := int(pos/float64(w)*float64(n-1) + 0.5)
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

func (b *DivisorBar) detentX(idx int) int {
	n := len(divisor.ValidDivisors)
	return b.r.Min.X + idx*(b.r.Dx()-1)/(n-1)
}

// Draw renders the track, one notch per divisor, the knob and the current
// "1/n" label.
func (b *DivisorBar) Draw(dst *ebiten.Image) {
	trackY := b.r.Min.Y + b.r.Dy()/2 - 2
	drawRect(dst, image.Rect(b.r.Min.X, trackY, b.r.Max.X, trackY+4), colBarTrack, true)

	for i := range divisor.ValidDivisors {
		x := b.detentX(i)
		drawRect(dst, image.Rect(x-1, trackY-3, x+1, trackY+7), colBarDetent, true)
	}

	cur := b.currentDetent()
	knobX := b.detentX(cur)
	drawRect(dst, image.Rect(knobX-2, b.r.Min.Y, knobX+2, b.r.Max.Y), colBarKnob, true)

	txt := fmt.Sprintf("1/%d", b.div.Value())
	ebitenutil.DebugPrintAt(dst, txt, b.r.Min.X, b.r.Min.Y-15)
}

func (b *DivisorBar) currentDetent() int {
	for i, d := range divisor.ValidDivisors {
		if d == b.div.Value() {
			return i
		}
	}
	return 0
}
