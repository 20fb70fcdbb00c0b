package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/MarouanBenali/mazebound/internal/gamedata"
	"github.com/MarouanBenali/mazebound/internal/maze"
	"github.com/MarouanBenali/mazebound/internal/telemetry"
)

// The start cell sits just inside the outer wall, on the carve sublattice.
const (
	startX = 1
	startY = 1
)

const defaultCooldown = 200 * time.Millisecond

// Session binds one generated maze to one navigator for a play-through.
// Reaching the exit completes the level; the maze/navigator pair is
// discarded and a fresh one generated with the same parameters.
type Session struct {
	ID         uuid.UUID
	Difficulty gamedata.Difficulty
	Skin       gamedata.Skin

	maze      *maze.Maze
	nav       *Navigator
	rng       maze.RandSource
	width     int
	height    int
	cooldown  time.Duration
	completed int
}

// NewSession resolves the configured presets, generates the first maze and
// places the navigator at the start cell.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	difficulty, err := gamedata.DifficultyByID(cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	skin, err := gamedata.SkinByID(cfg.Skin)
	if err != nil {
		return nil, err
	}

	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}

	s := &Session{
		ID:         uuid.New(),
		Difficulty: difficulty,
		Skin:       skin,
		rng:        maze.NewRand(cfg.Seed),
		width:      cfg.Width,
		height:     cfg.Height,
		cooldown:   cooldown,
	}
	if err := s.newLevel(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// newLevel generates a maze with the session's live RNG and resets the
// navigator to the start cell.
func (s *Session) newLevel(ctx context.Context) error {
	m, err := maze.New(ctx, s.width, s.height, s.rng)
	if err != nil {
		return err
	}
	s.maze = m
	s.nav = NewNavigator(m, startX, startY, s.cooldown)
	return nil
}

// Maze returns the current level's maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// Navigator returns the current level's navigator.
func (s *Session) Navigator() *Navigator { return s.nav }

// Completed returns the number of levels finished so far.
func (s *Session) Completed() int { return s.completed }

// Move applies a directional intent. It returns true when the move lands on
// the exit; the session has then already torn the level down and started
// the next one.
func (s *Session) Move(ctx context.Context, dx, dy int) (bool, error) {
	res := s.nav.AttemptMove(dx, dy)
	if !res.Accepted || !s.maze.IsExit(res.X, res.Y) {
		return false, nil
	}

	s.completed++

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.level_complete")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("session.levels_completed", s.completed),
	)
	span.End()

	return true, s.newLevel(ctx)
}
