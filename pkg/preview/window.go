// Package preview shows a live render in a window. It keeps its own
// framebuffer fed by the renderer's tile listener and blits it every
// frame, so the image fills in tile by tile as workers finish.
package preview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hackmad/raytracing-series/pkg/renderer"
)

// Window is a live view of an in-progress render
type Window struct {
	fb *renderer.Framebuffer
}

// New creates a preview window for an image of the given size
func New(width, height int) *Window {
	return &Window{fb: renderer.NewFramebuffer(width, height)}
}

// UpdateTile receives a completed tile. Register it with the renderer's
// tile listener; it is safe to call from any worker.
func (w *Window) UpdateTile(bounds renderer.TileBounds, rgba []byte) {
	w.fb.WriteTile(bounds, rgba)
}

// Run opens the window and blocks until it is closed or Escape is
// pressed. Must be called from the main goroutine; run the render in a
// background goroutine.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.fb.Width(), w.fb.Height())
	ebiten.SetWindowTitle(title)
	err := ebiten.RunGame(&game{fb: w.fb})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	fb *renderer.Framebuffer
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.fb.Snapshot())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
