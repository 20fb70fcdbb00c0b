package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Difficulty is a session preset: the nominal cell size the presentation
// layer scales by, and the wall color.
type Difficulty struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CellSize int    `json:"cellSize"`
	WallHex  string `json:"wallColor"`
}

// WallColor returns the preset wall color.
func (d Difficulty) WallColor() tcell.Color {
	return MustParseHexColor(d.WallHex)
}

// MazeDims derives maze dimensions from the available screen area. Larger
// cell sizes give smaller mazes. Dimensions are clamped to at least 5 and
// rounded down to odd so the carve sublattice fills the grid.
func (d Difficulty) MazeDims(screenW, screenH int) (width, height int) {
	scale := d.CellSize / 10
	if scale < 1 {
		scale = 1
	}
	return oddDim(screenW / scale), oddDim(screenH / scale)
}

func oddDim(n int) int {
	if n < 5 {
		n = 5
	}
	if n%2 == 0 {
		n--
	}
	return n
}

// LoadDifficulties loads all difficulty presets from the embedded
// difficulties.json.
func LoadDifficulties() ([]Difficulty, error) {
	return Load[[]Difficulty]("difficulties.json")
}

// DifficultyByID returns the difficulty preset with the given id.
func DifficultyByID(id string) (Difficulty, error) {
	difficulties, err := LoadDifficulties()
	if err != nil {
		return Difficulty{}, err
	}
	for _, d := range difficulties {
		if d.ID == id {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", id)
}
