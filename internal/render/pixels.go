package render

import (
	"image/color"

	"torus-life/internal/core"
	"torus-life/internal/life"
)

// Theme selects the cell and background colors.
type Theme struct {
	On  color.Color
	Off color.Color
}

var (
	// LightTheme draws black cells on white.
	LightTheme = Theme{On: color.Black, Off: color.White}
	// DarkTheme draws white cells on black.
	DarkTheme = Theme{On: color.White, Off: color.Black}
)

// Frame rasterizes the engine into a reusable RGBA buffer.
type Frame struct {
	grid *core.ByteGrid
	buf  []byte
}

// NewFrame allocates a frame for a size x size grid.
func NewFrame(size int) *Frame {
	grid := core.NewByteGrid(size, size)
	return &Frame{grid: grid, buf: make([]byte, 4*len(grid.Cells()))}
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() core.Size { return f.grid.Size() }

// Fill rasterizes e and returns the RGBA pixels, one pixel per cell.
func (f *Frame) Fill(e *life.Engine, theme Theme) []byte {
	e.Rasterize(f.grid)
	fillBinaryRGBA(f.buf, f.grid.Cells(), theme.On, theme.Off)
	return f.buf
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
