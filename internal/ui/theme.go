package ui

import "image/color"

var (
	colBG         = color.RGBA{20, 20, 30, 255}
	colCentre     = color.RGBA{240, 240, 240, 255}
	colHover      = color.RGBA{255, 255, 0, 255}
	colBarTrack   = color.RGBA{80, 80, 80, 255}
	colBarKnob    = color.RGBA{200, 200, 200, 255}
	colBarDetent  = color.RGBA{120, 120, 120, 255}
	colUnknownDiv = color.RGBA{128, 128, 128, 255}

	// Tick colours per divisor; coarser subdivisions read hotter.
	divisorColours = map[int]color.RGBA{
		1:  {255, 255, 255, 255},
		2:  {237, 17, 33, 255},
		3:  {139, 59, 218, 255},
		4:  {50, 116, 237, 255},
		6:  {202, 46, 183, 255},
		8:  {255, 213, 53, 255},
		12: {118, 118, 118, 255},
		16: {80, 80, 80, 255},
	}
)

// Skin maps divisors to tick colours, with optional per-divisor overrides
// from the settings file.
type Skin struct {
	colours map[int]color.RGBA
}

func NewSkin(overrides map[int]color.RGBA) *Skin {
	cols := make(map[int]color.RGBA, len(divisorColours))
	for d, c := range divisorColours {
		cols[d] = c
	}
	for d, c := range overrides {
		cols[d] = c
	}
	return &Skin{colours: cols}
}

func (s *Skin) ColourFor(divisor int) color.RGBA {
	if c, ok := s.colours[divisor]; ok {
		return c
	}
	return colUnknownDiv
}
