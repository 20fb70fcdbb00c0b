package game

import (
	"os"
	"strconv"
	"time"
)

// Config holds session options.
type Config struct {
	// Seed for maze generation. 0 means derive one from the current time.
	Seed int64

	// Width and Height of the maze in cells. 0 means derive them from the
	// screen size and the difficulty's cell size.
	Width  int
	Height int

	// Difficulty and Skin are preset ids resolved against the embedded
	// gamedata.
	Difficulty string
	Skin       string

	// Cooldown is the minimum interval between movement attempts.
	Cooldown time.Duration
}

// LoadConfig reads configuration from MAZEBOUND_* environment variables,
// falling back to defaults for anything unset.
func LoadConfig() Config {
	seed := int64(envInt("MAZEBOUND_SEED", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Config{
		Seed:       seed,
		Width:      envInt("MAZEBOUND_WIDTH", 0),
		Height:     envInt("MAZEBOUND_HEIGHT", 0),
		Difficulty: envString("MAZEBOUND_DIFFICULTY", "normal"),
		Skin:       envString("MAZEBOUND_SKIN", "mouse"),
		Cooldown:   time.Duration(envInt("MAZEBOUND_COOLDOWN_MS", 200)) * time.Millisecond,
	}
}

func envString(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
