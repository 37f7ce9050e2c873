package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/beatforge/chartedit/core/divisor"
	"github.com/beatforge/chartedit/core/snap"
	"github.com/beatforge/chartedit/internal/config"
	game_log "github.com/beatforge/chartedit/internal/log"
	"github.com/beatforge/chartedit/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "chartedit.yaml", "path to settings file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		game_log.New(os.Stderr, game_log.LevelError).Errorf("%v", err)
		os.Exit(1)
	}
	logger := game_log.New(os.Stderr, game_log.FromEnv(game_log.LevelFromString(cfg.LogLevel)))

	div := divisor.New(cfg.Divisor)
	provider := snap.NewBeatVelocity(cfg.DistancePerBeat, cfg.BeatLength, div)
	skin := ui.NewSkin(cfg.PaletteColours())

	var shape snap.Shape
	switch cfg.GridShape {
	case "linear":
		shape = snap.NewLinear(snap.Vec2{X: 1})
	default:
		shape = snap.NewCircular()
	}
	grid := snap.NewGrid(shape, provider, skin, div, logger, snap.Vec2{X: 256, Y: 192}, 0)

	view := ui.NewView(grid, div, logger)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("chartedit - distance snap preview")

	if err := ebiten.RunGame(view); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
