package game

import (
	"time"

	"github.com/MarouanBenali/mazebound/internal/maze"
)

// MoveResult reports the outcome of a single movement attempt.
type MoveResult struct {
	X, Y             int  // Position after the attempt
	Accepted         bool // Whether the position changed
	CooldownConsumed bool // Whether the attempt reset the cooldown timer
}

// Navigator applies the movement rules: a candidate cell must be a passage,
// and attempts are gated by a minimum interval between moves. The Navigator
// only reads the maze, never mutates it.
//
// Timing uses time.Time differences, which Go computes from the monotonic
// clock reading, so wall-clock adjustments cannot shorten or stretch the
// cooldown window.
type Navigator struct {
	x, y     int
	cooldown time.Duration
	lastMove time.Time
	m        *maze.Maze
	now      func() time.Time
}

// NewNavigator places a navigator at (x, y) on m with the given move
// cooldown.
func NewNavigator(m *maze.Maze, x, y int, cooldown time.Duration) *Navigator {
	return &Navigator{
		x:        x,
		y:        y,
		cooldown: cooldown,
		m:        m,
		now:      time.Now,
	}
}

// Position returns the current coordinates.
func (n *Navigator) Position() (int, int) { return n.x, n.y }

// AttemptMove tries to step by (dx, dy). Attempts inside the cooldown
// window are rejected without touching the timer. Once the window has
// elapsed the timer resets whether or not the step lands: bumping into a
// wall consumes the window just like a successful step.
func (n *Navigator) AttemptMove(dx, dy int) MoveResult {
	now := n.now()
	if now.Sub(n.lastMove) < n.cooldown {
		return MoveResult{X: n.x, Y: n.y}
	}

	n.lastMove = now
	newX, newY := n.x+dx, n.y+dy
	if n.m.IsWall(newX, newY) {
		return MoveResult{X: n.x, Y: n.y, CooldownConsumed: true}
	}

	n.x, n.y = newX, newY
	return MoveResult{X: n.x, Y: n.y, Accepted: true, CooldownConsumed: true}
}

// AtExit reports whether the navigator stands on the maze exit.
func (n *Navigator) AtExit() bool {
	return n.m.IsExit(n.x, n.y)
}
