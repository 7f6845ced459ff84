package pando

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
)

// PixmapPresenter rasterizes each presented scene on the CPU into a pixel
// buffer.
type PixmapPresenter struct {
	Background gg.RGBA
	// ScreenshotDir is where Screenshot writes its PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string

	renderer *scene.Renderer
	pixmap   *gg.Pixmap
	frames   int

	shots []string
	saved []string
}

// NewPixmapPresenter returns a presenter with a w×h target.
func NewPixmapPresenter(w, h int) *PixmapPresenter {
	p := &PixmapPresenter{Background: gg.RGB(1, 1, 1)}
	p.Resize(w, h)
	return p
}

// Resize reallocates the target. Non-positive sizes disable rendering.
func (p *PixmapPresenter) Resize(w, h int) {
	if p.pixmap != nil && p.pixmap.Width() == w && p.pixmap.Height() == h {
		return
	}
	if p.renderer != nil {
		p.renderer.Close()
		p.renderer = nil
	}
	p.pixmap = nil
	if w <= 0 || h <= 0 {
		return
	}
	p.renderer = scene.NewRenderer(w, h)
	p.pixmap = gg.NewPixmap(w, h)
}

// Present renders s over the background.
func (p *PixmapPresenter) Present(s *scene.Scene) error {
	if p.renderer == nil {
		return nil
	}
	p.pixmap.Clear(p.Background)
	if err := p.renderer.Render(p.pixmap, s); err != nil {
		return fmt.Errorf("render scene: %w", err)
	}
	p.frames++
	p.flushScreenshots()
	return nil
}

// Pixmap returns the target, or nil while the size is empty.
func (p *PixmapPresenter) Pixmap() *gg.Pixmap {
	return p.pixmap
}

// Frames returns how many scenes have been presented.
func (p *PixmapPresenter) Frames() int {
	return p.frames
}
