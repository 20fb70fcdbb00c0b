package maze

import "strings"

// String renders the maze as ASCII, one byte per cell: '#' for walls, a
// space for passages and 'E' for the exit.
func (m *Maze) String() string {
	var b strings.Builder
	for y := 0; y < m.grid.Height(); y++ {
		for x := 0; x < m.grid.Width(); x++ {
			switch {
			case m.IsExit(x, y):
				b.WriteByte('E')
			case m.grid.IsWall(x, y):
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
