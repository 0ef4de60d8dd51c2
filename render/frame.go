// File: render/frame.go
package render

import (
	"fmt"
	"math"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

// Glyphs used for every presentation of the field.
const (
	GlyphEmpty   = ' '
	GlyphNet     = ':'
	GlyphPaddle  = '|'
	GlyphBall    = 'O'
	GlyphSpeedup = '+'
	GlyphSlow    = '-'
)

// Cell is one character of a rasterized field.
type Cell struct {
	Rune  rune
	Color string // "#rrggbb", empty for the default colour
}

// Frame is the field scaled into a cols x rows character grid. Row 0 is the
// top of the field.
type Frame struct {
	Cols  int
	Rows  int
	Cells [][]Cell
}

// Rasterize projects a snapshot into a character grid. Later layers win:
// net, power-ups, paddles, ball.
func Rasterize(snap game.Snapshot, cols, rows int) Frame {
	f := Frame{Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 {
		return f
	}
	f.Cells = make([][]Cell, rows)
	for r := range f.Cells {
		f.Cells[r] = make([]Cell, cols)
		for c := range f.Cells[r] {
			f.Cells[r][c] = Cell{Rune: GlyphEmpty}
		}
	}
	if snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return f
	}

	mid := cols / 2
	for r := 0; r < rows; r += 2 {
		f.Cells[r][mid] = Cell{Rune: GlyphNet}
	}

	for _, pu := range snap.PowerUps {
		glyph := GlyphSpeedup
		if pu.Type == game.PowerUpSlowdown {
			glyph = GlyphSlow
		}
		half := pu.Size / 2
		f.fillRect(snap.Field, pu.Position, half, half, Cell{Rune: glyph, Color: pu.Color})
	}

	for _, p := range snap.Paddles {
		f.fillRect(snap.Field, p.Position, p.Width/2, p.Height/2, Cell{Rune: GlyphPaddle, Color: p.Color})
	}

	if b := snap.Ball; b != nil {
		c, r := Project(snap.Field, b.Position, cols, rows)
		f.Cells[r][c] = Cell{Rune: GlyphBall, Color: b.Color}
	}
	return f
}

// fillRect paints every cell covered by a box centred on pos. A box smaller
// than one cell still paints the cell holding its centre.
func (f Frame) fillRect(field game.FieldView, pos utils.Vector2, halfW, halfH float64, cell Cell) {
	c0, r0 := Project(field, utils.Vec(pos.X-halfW, pos.Y+halfH), f.Cols, f.Rows)
	c1, r1 := Project(field, utils.Vec(pos.X+halfW, pos.Y-halfH), f.Cols, f.Rows)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			f.Cells[r][c] = cell
		}
	}
}

// Project maps a field position (origin at the centre, y up) to a grid cell.
// Positions outside the field clamp to the border cells.
func Project(field game.FieldView, pos utils.Vector2, cols, rows int) (col, row int) {
	fx := (pos.X + field.Width/2) / field.Width
	fy := (field.Height/2 - pos.Y) / field.Height
	col = int(utils.Clamp(math.Floor(fx*float64(cols)), 0, float64(cols-1)))
	row = int(utils.Clamp(math.Floor(fy*float64(rows)), 0, float64(rows-1)))
	return col, row
}

// StatusLine is the text shown under the field for the current state.
func StatusLine(snap game.Snapshot) string {
	switch snap.State {
	case game.StateMenu:
		return "press Enter to play, Q to quit"
	case game.StatePaused:
		return "PAUSED"
	case game.StateGameOver:
		return snap.GameOverText + "  (R for menu, Q to quit)"
	}
	if snap.Frozen {
		return "serve in " + formatSeconds(snap.FreezeRemaining)
	}
	if snap.NextPowerUpIn > 0 {
		return "power-up in " + formatSeconds(snap.NextPowerUpIn)
	}
	return ""
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.1fs", math.Ceil(s*10)/10)
}
