package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/MarouanBenali/mazebound/internal/gamedata"
	"github.com/MarouanBenali/mazebound/internal/maze"
)

// Renderer draws the maze, the exit and the player to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render walks every wall cell, then draws the exit glyph and the player
// glyph on top, followed by the status line below the maze.
func (r *Renderer) Render(m *maze.Maze, playerX, playerY int, difficulty gamedata.Difficulty, skin gamedata.Skin, status string) {
	r.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(difficulty.WallColor())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsWall(x, y) {
				r.screen.SetContent(x, y, '#', wallStyle)
			}
		}
	}

	exitX, exitY := m.Exit()
	exitStyle := tcell.StyleDefault.Foreground(skin.ExitColor()).Bold(true)
	r.screen.SetContent(exitX, exitY, skin.ExitRune(), exitStyle)

	playerStyle := tcell.StyleDefault.Foreground(skin.PlayerColor()).Bold(true)
	r.screen.SetContent(playerX, playerY, skin.PlayerRune(), playerStyle)

	r.RenderMessage(status, m.Height()+1)

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
