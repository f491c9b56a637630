// Package render turns sim cell values into RGBA pixels.
package render

import "image/color"

// PaletteSource is implemented by sims that colour their display values.
type PaletteSource interface {
	Palette() []color.RGBA
}

var monochrome = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// PaletteFor returns the sim's palette, or black and white for sims that
// only report dead and alive.
func PaletteFor(sim any) []color.RGBA {
	if src, ok := sim.(PaletteSource); ok {
		if p := src.Palette(); len(p) > 0 {
			return p
		}
	}
	return monochrome
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last colour. An empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
