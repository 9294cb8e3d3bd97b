package nav

import "github.com/JumpLink/NetflixController/internal/dom"

// Grid arranges a Static's components in rows of a viewport-dependent
// column count. Vertical movement is handled internally; the column count
// is recomputed whenever the external layout-width observer reports a
// resize, so row/column math stays correct as the viewport changes.
type Grid struct {
	*Static
	columns int
}

// NewGrid builds a grid navigatable with an initial column count.
func NewGrid(name string, columns int, resolve func() []*dom.Element) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{Static: NewStatic(name, resolve), columns: columns}
}

// Columns returns the current column count.
func (g *Grid) Columns() int { return g.columns }

// Resize updates the column count. The layout-width observer calls this on
// viewport changes.
func (g *Grid) Resize(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.columns = columns
}

// Row returns the focused row, derived from position and column count.
func (g *Grid) Row() int {
	if g.position < 0 {
		return -1
	}
	return g.position / g.columns
}

// Column returns the focused column.
func (g *Grid) Column() int {
	if g.position < 0 {
		return -1
	}
	return g.position % g.columns
}

// Up moves one row up, keeping the column.
func (g *Grid) Up() {
	if g.position < g.columns {
		return
	}
	g.Select(g.position - g.columns)
}

// Down moves one row down, clamping to the last component when the row
// below is ragged.
func (g *Grid) Down() {
	if g.position < 0 {
		return
	}
	total := len(g.Components())
	target := g.position + g.columns
	if target >= total {
		lastRowStart := ((total - 1) / g.columns) * g.columns
		if g.position >= lastRowStart {
			return
		}
		target = total - 1
	}
	g.Select(target)
}

// HandlesVertical reports that the grid moves vertically on its own.
func (g *Grid) HandlesVertical() bool { return true }
