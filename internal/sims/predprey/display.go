package predprey

import "image/color"

// AgeBand buckets a live cell's age relative to the maximum age.
type AgeBand uint8

const (
	BandYoung  AgeBand = iota // below 25%
	BandMature                // 25% and above
	BandAged                  // 50% and above
	BandElder                 // 75% and above
)

const numBands = 4

// BandOf returns the age band of an age against maxAge.
func BandOf(age, maxAge int) AgeBand {
	if maxAge <= 0 {
		return BandElder
	}
	live := float64(age) / float64(maxAge) * 100
	switch {
	case live >= 75:
		return BandElder
	case live >= 50:
		return BandAged
	case live >= 25:
		return BandMature
	default:
		return BandYoung
	}
}

// Display values: 0 is dead, 1..4 are prey bands, 5..8 are predator bands.
const (
	displayDead         = 0
	displayPreyBase     = 1
	displayPredatorBase = displayPreyBase + numBands
	displayValues       = displayPredatorBase + numBands
)

// GlyphAlive and GlyphDead are the terminal symbols for cells.
const (
	GlyphAlive = '◈'
	GlyphDead  = ' '
)

// ansi256 holds the 256-colour palette index per species and band.
var ansi256 = [2][numBands]uint8{
	Prey:     {BandYoung: 47, BandMature: 226, BandAged: 214, BandElder: 196},
	Predator: {BandYoung: 81, BandMature: 135, BandAged: 201, BandElder: 21},
}

// ANSIColor returns the 256-colour palette index for a species and band.
func ANSIColor(s Species, b AgeBand) uint8 {
	return ansi256[s&1][b%numBands]
}

// EncodeDisplayValue packs a cell's renderer-facing state into one byte.
func EncodeDisplayValue(c Cell, maxAge int) uint8 {
	if !c.Alive() {
		return displayDead
	}
	base := uint8(displayPreyBase)
	if c.Species == Predator {
		base = displayPredatorBase
	}
	return base + uint8(BandOf(c.Age(), maxAge))
}

// DecodeDisplayValue unpacks a display byte. Unknown values decode as dead.
func DecodeDisplayValue(v uint8) (alive bool, s Species, b AgeBand) {
	switch {
	case v >= displayPreyBase && v < displayPredatorBase:
		return true, Prey, AgeBand(v - displayPreyBase)
	case v >= displayPredatorBase && v < displayValues:
		return true, Predator, AgeBand(v - displayPredatorBase)
	default:
		return false, Prey, BandYoung
	}
}

// Glyph maps a display value to its terminal symbol and 256-colour index.
// Dead cells report a negative colour.
func (w *World) Glyph(v uint8) (rune, int) {
	alive, s, b := DecodeDisplayValue(v)
	if !alive {
		return GlyphDead, -1
	}
	return GlyphAlive, int(ANSIColor(s, b))
}

var palette = buildPalette()

// Palette exposes the colours indexed by display value.
func (w *World) Palette() []color.RGBA {
	return palette
}

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, displayValues)
	p[displayDead] = color.RGBA{A: 255}
	for v := 1; v < displayValues; v++ {
		_, s, b := DecodeDisplayValue(uint8(v))
		p[v] = xterm256(ANSIColor(s, b))
	}
	return p
}

// xterm256 converts a 256-colour palette index into RGB.
func xterm256(idx uint8) color.RGBA {
	basic := [16]color.RGBA{
		rgb(0, 0, 0), rgb(128, 0, 0), rgb(0, 128, 0), rgb(128, 128, 0),
		rgb(0, 0, 128), rgb(128, 0, 128), rgb(0, 128, 128), rgb(192, 192, 192),
		rgb(128, 128, 128), rgb(255, 0, 0), rgb(0, 255, 0), rgb(255, 255, 0),
		rgb(0, 0, 255), rgb(255, 0, 255), rgb(0, 255, 255), rgb(255, 255, 255),
	}
	switch {
	case idx < 16:
		return basic[idx]
	case idx < 232:
		i := int(idx) - 16
		level := func(n int) uint8 {
			if n == 0 {
				return 0
			}
			return uint8(55 + n*40)
		}
		return rgb(level(i/36), level(i/6%6), level(i%6))
	default:
		g := uint8(8 + (int(idx)-232)*10)
		return rgb(g, g, g)
	}
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

func (w *World) rebuildDisplay() {
	maxAge := w.cfg.Params.MaxAge
	for i, c := range w.cur.Cells() {
		w.display[i] = EncodeDisplayValue(c, maxAge)
	}
}
