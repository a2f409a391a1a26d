package trellis

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Debug turns on Scene debug mode: layout stats on stderr and outlines
	// around flex containers.
	Debug bool
	// Resizable lets the user resize the window. The scene root follows the
	// window size.
	Resizable bool
}

// runGame adapts a Scene to ebiten.Game.
type runGame struct {
	scene *Scene
	cfg   RunConfig
	w, h  int
}

func (g *runGame) Update() error {
	return g.scene.Update()
}

func (g *runGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Resizable {
		w, h = outsideWidth, outsideHeight
	}
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.scene.SetSize(float64(w), float64(h))
	}
	return w, h
}

// Run opens a window and drives the scene until the window is closed or the
// update callback returns an error. The scene root is sized to the window.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("trellis: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	scene.SetDebugMode(cfg.Debug)
	scene.SetSize(float64(cfg.Width), float64(cfg.Height))

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&runGame{scene: scene, cfg: cfg, w: cfg.Width, h: cfg.Height})
}
