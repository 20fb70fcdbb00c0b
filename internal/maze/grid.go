package maze

import "errors"

// ErrInvalidDimensions is returned when a grid or maze is requested with
// dimensions too small to hold a valid layout.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Grid is a fixed-size matrix of cells stored in a single flat buffer
// indexed y*width+x. Coordinates outside the grid are not stored; every
// query treats them as walls.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width×height grid of unvisited walls.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Wall = true
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// IsInside reports whether (x, y) lies within the grid bounds.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds coordinates are
// walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.IsInside(x, y) {
		return true
	}
	return g.cells[y*g.width+x].Wall
}

// SetPassage clears the wall flag at (x, y). Out-of-bounds coordinates are
// ignored.
func (g *Grid) SetPassage(x, y int) {
	if !g.IsInside(x, y) {
		return
	}
	g.cells[y*g.width+x].Wall = false
}

// MarkVisited records that generation has entered (x, y). Out-of-bounds
// coordinates are ignored.
func (g *Grid) MarkVisited(x, y int) {
	if !g.IsInside(x, y) {
		return
	}
	g.cells[y*g.width+x].Visited = true
}

// IsVisited reports whether generation has entered (x, y). Out-of-bounds
// coordinates read as visited so a traversal never steps off the grid.
func (g *Grid) IsVisited(x, y int) bool {
	if !g.IsInside(x, y) {
		return true
	}
	return g.cells[y*g.width+x].Visited
}
