package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Skin selects the player and exit glyphs and colors for a session.
type Skin struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Player    string `json:"player"`
	Exit      string `json:"exit"`
	PlayerHex string `json:"playerColor"`
	ExitHex   string `json:"exitColor"`
}

// PlayerRune returns the glyph drawn for the player.
func (s Skin) PlayerRune() rune { return firstRune(s.Player, '@') }

// ExitRune returns the glyph drawn at the exit cell.
func (s Skin) ExitRune() rune { return firstRune(s.Exit, '>') }

// PlayerColor returns the player glyph color.
func (s Skin) PlayerColor() tcell.Color { return MustParseHexColor(s.PlayerHex) }

// ExitColor returns the exit glyph color.
func (s Skin) ExitColor() tcell.Color { return MustParseHexColor(s.ExitHex) }

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// LoadSkins loads all skins from the embedded skins.json.
func LoadSkins() ([]Skin, error) {
	return Load[[]Skin]("skins.json")
}

// SkinByID returns the skin with the given id.
func SkinByID(id string) (Skin, error) {
	skins, err := LoadSkins()
	if err != nil {
		return Skin{}, err
	}
	for _, s := range skins {
		if s.ID == id {
			return s, nil
		}
	}
	return Skin{}, fmt.Errorf("unknown skin %q", id)
}
