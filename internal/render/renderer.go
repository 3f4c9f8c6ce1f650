//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/life"
)

// GridPainter updates a single RGBA image from the engine's live set.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a size x size grid.
func NewGridPainter(size int) *GridPainter {
	return &GridPainter{frame: NewFrame(size), img: ebiten.NewImage(size, size)}
}

// Blit uploads the live set into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, e *life.Engine, theme Theme, scale int) {
	if e.MapSize() != gp.frame.Size().W {
		return
	}
	gp.img.WritePixels(gp.frame.Fill(e, theme))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
