// Package term draws simulations to a terminal with tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"predprey/internal/core"
)

// GlyphMapper maps a sim's display values to a symbol and a 256-colour
// palette index. A negative index draws with the dead style.
type GlyphMapper interface {
	Glyph(v uint8) (rune, int)
}

// Renderer paints a sim's cells and an optional info panel onto a screen.
type Renderer struct {
	screen tcell.Screen
	info   bool

	dead  tcell.Style
	panel tcell.Style
}

// NewRenderer returns a renderer drawing to screen.
func NewRenderer(screen tcell.Screen, info bool) *Renderer {
	return &Renderer{
		screen: screen,
		info:   info,
		dead:   tcell.StyleDefault.Foreground(tcell.ColorBlack),
		panel:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
}

// Draw paints the current frame and shows it. fps is the measured frame
// rate for the info panel.
func (r *Renderer) Draw(sim core.Sim, fps float64) {
	r.drawCells(sim)
	if r.info {
		r.drawInfo(sim, fps)
	}
	r.screen.Show()
}

func (r *Renderer) drawCells(sim core.Sim) {
	size := sim.Size()
	cells := sim.Cells()
	mapper, _ := sim.(GlyphMapper)
	for y := 0; y < size.H; y++ {
		row := y * size.W
		for x := 0; x < size.W; x++ {
			ch, style := r.cell(mapper, cells[row+x])
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) cell(mapper GlyphMapper, v uint8) (rune, tcell.Style) {
	if mapper == nil {
		if v == 0 {
			return ' ', r.dead
		}
		return '◈', tcell.StyleDefault
	}
	ch, idx := mapper.Glyph(v)
	if idx < 0 {
		return ch, r.dead
	}
	return ch, tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

func (r *Renderer) drawInfo(sim core.Sim, fps float64) {
	for y, line := range core.InfoLines(sim, fps) {
		x := 0
		for _, ch := range line {
			r.screen.SetContent(x, y, ch, nil, r.panel)
			x++
		}
	}
}
