package systems

import "gonum.org/v1/gonum/spatial/r2"

// PointGrid buckets points into square cells for near-neighbour checks.
// Points outside the covered area are clamped into the edge cells, so
// queries stay exact for them as well.
type PointGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]r2.Vec
}

// NewPointGrid creates a grid covering width x height.
func NewPointGrid(width, height, cellSize float64) *PointGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	// Cells stay nil until a point lands in them
	return &PointGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]r2.Vec, cols*rows),
	}
}

// Clear removes all points from the grid.
func (g *PointGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a point to the grid.
func (g *PointGrid) Insert(p r2.Vec) {
	col, row := g.cell(p)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], p)
}

// AnyWithin reports whether some point lies strictly closer than radius to p.
func (g *PointGrid) AnyWithin(p r2.Vec, radius float64) bool {
	cellRadius := int(radius/g.cellSize) + 1
	centerCol, centerRow := g.cell(p)
	radiusSq := radius * radius

	for row := max(centerRow-cellRadius, 0); row <= min(centerRow+cellRadius, g.rows-1); row++ {
		for col := max(centerCol-cellRadius, 0); col <= min(centerCol+cellRadius, g.cols-1); col++ {
			for _, q := range g.cells[row*g.cols+col] {
				if r2.Norm2(r2.Sub(p, q)) < radiusSq {
					return true
				}
			}
		}
	}
	return false
}

// cell returns the clamped column and row for a position.
func (g *PointGrid) cell(p r2.Vec) (col, row int) {
	col = int(p.X / g.cellSize)
	row = int(p.Y / g.cellSize)

	// Clamp to valid range
	if p.X < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if p.Y < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
