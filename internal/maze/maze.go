// Package maze provides procedural maze generation and the bounds-safe
// query interface used to navigate the result.
package maze

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MarouanBenali/mazebound/internal/telemetry"
)

// minDimension is the smallest width or height that leaves room for the
// start cell (1,1) and the exit cell (width-2, height-2) strictly inside
// the outer wall.
const minDimension = 3

// directions holds the four orthogonal unit steps in their pre-shuffle
// order: up, down, left, right.
var directions = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Maze is an immutable-after-construction grid of walls and passages with a
// single exit cell. Generation carves a spanning tree over the sublattice
// of odd coordinates starting from (1,1), opening one intermediate cell per
// step. Cells off the sublattice stay walls, which is what gives the maze
// its thick-walled look.
//
// The exit at (width-2, height-2) is forced to passage after carving. On
// odd×odd grids it sits on the sublattice and is always reached naturally;
// on even dimensions the override can open a one-cell pocket next to the
// carved network. That is the intended behavior, not a connectivity bug.
type Maze struct {
	grid         *Grid
	exitX, exitY int
}

// New generates a maze of the given dimensions, drawing randomness from
// rng. It returns ErrInvalidDimensions before any maze exists if either
// dimension is below 3.
func New(ctx context.Context, width, height int, rng RandSource) (*Maze, error) {
	if width < minDimension || height < minDimension {
		return nil, ErrInvalidDimensions
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	m := &Maze{
		grid:  grid,
		exitX: width - 2,
		exitY: height - 2,
	}
	m.generate(ctx, rng)
	return m, nil
}

// generate runs the carve and the exit override, traced as a single span.
func (m *Maze) generate(ctx context.Context, rng RandSource) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	m.carveFrom(1, 1, rng)
	m.grid.SetPassage(m.exitX, m.exitY)

	span.SetAttributes(
		attribute.Int("maze.width", m.grid.Width()),
		attribute.Int("maze.height", m.grid.Height()),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
}

// carveFrom performs the randomized depth-first carve starting at (x, y).
// It keeps its own frame stack instead of recursing, so stack depth on
// large mazes is bounded by a heap slice rather than the goroutine stack.
// Each frame shuffles its direction order once on entry and walks it across
// re-entries, which reproduces the visit order and random-draw sequence of
// the recursive formulation exactly.
func (m *Maze) carveFrom(x, y int, rng RandSource) {
	type frame struct {
		x, y int
		dirs [4][2]int
		next int
	}

	// enter marks a cell as carved and deals it a shuffled direction
	// order. The shuffle draws once per index including the last; the
	// final swap is always an identity swap.
	enter := func(x, y int) frame {
		m.grid.MarkVisited(x, y)
		m.grid.SetPassage(x, y)

		dirs := directions
		for i := 0; i < len(dirs); i++ {
			j := rng.IntN(i, len(dirs)-1)
			dirs[i], dirs[j] = dirs[j], dirs[i]
		}
		return frame{x: x, y: y, dirs: dirs}
	}

	stack := []frame{enter(x, y)}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := f.dirs[f.next]
		f.next++

		// Step two cells out; the intermediate cell becomes the corridor.
		nx, ny := f.x+d[0]*2, f.y+d[1]*2
		if !m.grid.IsInside(nx, ny) || m.grid.IsVisited(nx, ny) {
			continue
		}
		m.grid.SetPassage(f.x+d[0], f.y+d[1])
		stack = append(stack, enter(nx, ny))
	}
}

// Width returns the maze width in cells.
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the maze height in cells.
func (m *Maze) Height() int { return m.grid.Height() }

// IsWall reports whether (x, y) is a wall. Out-of-bounds coordinates are
// walls, never an error.
func (m *Maze) IsWall(x, y int) bool {
	return m.grid.IsWall(x, y)
}

// IsExit reports whether (x, y) is the exit cell. Out-of-bounds coordinates
// are never the exit.
func (m *Maze) IsExit(x, y int) bool {
	return x == m.exitX && y == m.exitY
}

// Exit returns the exit coordinates.
func (m *Maze) Exit() (int, int) {
	return m.exitX, m.exitY
}
