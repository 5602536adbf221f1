// Package viewport implements the logical window that maps screen cells to
// world coordinates for rendering.
package viewport

import (
	"github.com/mattn/go-runewidth"

	"github.com/mobanhawi/chronoview/internal/stateviz"
)

// Viewport is a mutable origin + extent. World coordinates are scanned in
// a fixed order (outer loop over x, inner over y); ScreenCoords returns the
// matching local coordinates one-to-one with WorldCoords, so zipping the
// two slices together always pairs a world cell with its correct screen
// cell.
type Viewport struct {
	OriginX, OriginY int
	Width, Height    int
}

// New creates a viewport at the origin with zero size; the host toolkit is
// expected to call Layout once it knows the terminal size.
func New() *Viewport {
	return &Viewport{}
}

// Layout sets the viewport's extent once the host terminal's size is known.
func (v *Viewport) Layout(width, height int) {
	v.Width = width
	v.Height = height
}

// Pan shifts the origin by (dx, dy). Panning past negative coordinates is
// legal; those cells simply read back as the cache's default value.
func (v *Viewport) Pan(dx, dy int) {
	v.OriginX += dx
	v.OriginY += dy
}

// WorldCoords returns every world coordinate currently visible, in scan
// order: outer loop over x, inner over y.
func (v *Viewport) WorldCoords() []stateviz.Coord {
	out := make([]stateviz.Coord, 0, v.Width*v.Height)
	for x := v.OriginX; x < v.OriginX+v.Width; x++ {
		for y := v.OriginY; y < v.OriginY+v.Height; y++ {
			out = append(out, stateviz.Coord{X: x, Y: y})
		}
	}
	return out
}

// ScreenCell is a local (column, row) position within the viewport. It
// carries no rune width; the renderer uses CellWidth to skip the cell a
// wide rune visually covers.
type ScreenCell struct {
	SX, SY int
}

// ScreenCoords returns the local coordinates matching WorldCoords one to
// one, in the same scan order.
func (v *Viewport) ScreenCoords() []ScreenCell {
	out := make([]ScreenCell, 0, v.Width*v.Height)
	for sx := 0; sx < v.Width; sx++ {
		for sy := 0; sy < v.Height; sy++ {
			out = append(out, ScreenCell{SX: sx, SY: sy})
		}
	}
	return out
}

// CellWidth reports the terminal column width of v, honoring wide runes
// (e.g. East-Asian-width demo states) instead of assuming every cell is
// exactly one column.
func CellWidth(v stateviz.Value) int {
	w := runewidth.RuneWidth(v)
	if w <= 0 {
		return 1
	}
	return w
}
