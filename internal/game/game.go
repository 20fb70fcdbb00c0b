package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/MarouanBenali/mazebound/internal/gamedata"
	"github.com/MarouanBenali/mazebound/internal/telemetry"
	"github.com/MarouanBenali/mazebound/internal/ui"
)

// Game drives a session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	state    State
	running  bool
}

// New creates a game instance over a fresh terminal screen.
func New() (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    StatePlaying,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context, cfg Config) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	// Size the maze to the terminal when no explicit dimensions were
	// configured, leaving one row for the status line.
	if cfg.Width == 0 || cfg.Height == 0 {
		difficulty, err := gamedata.DifficultyByID(cfg.Difficulty)
		if err != nil {
			initSpan.End()
			return err
		}
		screenW, screenH := g.screen.Size()
		cfg.Width, cfg.Height = difficulty.MazeDims(screenW, screenH-2)
	}

	session, err := NewSession(ctx, cfg)
	if err != nil {
		initSpan.End()
		return err
	}
	g.session = session

	initSpan.SetAttributes(
		attribute.String("session.id", session.ID.String()),
		attribute.Int("maze.width", cfg.Width),
		attribute.Int("maze.height", cfg.Height),
		attribute.String("session.difficulty", session.Difficulty.ID),
		attribute.String("session.skin", session.Skin.ID),
	)
	initSpan.End()

	for g.running {
		px, py := g.session.Navigator().Position()
		g.renderer.Render(g.session.Maze(), px, py, g.session.Difficulty, g.session.Skin, g.statusLine())
		g.handleInput(ctx)
	}

	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent maps keys to directional and session-control intents.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove forwards a directional intent to the session.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	completed, err := g.session.Move(ctx, dx, dy)
	if err != nil {
		// Regeneration can only fail on dimensions already validated once;
		// treat it as fatal to the loop.
		g.running = false
		return
	}

	if completed {
		g.state = StateLevelComplete
	} else if g.state == StateLevelComplete {
		g.state = StatePlaying
	}
}

// statusLine returns the message shown under the maze.
func (g *Game) statusLine() string {
	if g.state == StateLevelComplete {
		return fmt.Sprintf("Level %d complete! Find the next exit.", g.session.Completed())
	}
	return fmt.Sprintf("Level %d (%s) - q to quit", g.session.Completed()+1, g.session.Difficulty.Name)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
