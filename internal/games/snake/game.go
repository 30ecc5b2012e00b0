package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant selects how the grid size is chosen.
type Variant string

const (
	// VariantClassic uses the configured grid size.
	VariantClassic Variant = "snake"
	// VariantFullscreen sizes the grid to the terminal.
	VariantFullscreen Variant = "snake_fullscreen"
)

const (
	hudHeight = 2 // Score line and separator
	cellWidth = 2 // Terminal columns per grid cell
)

// Game implements the toroidal Snake game.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	palette palette
	rng     *rand.Rand
	tick    uint64

	world *World
	score int
	best  int

	// Events raised outside Step, reported by the next Step.
	pending []core.Event

	// Layout
	screenW  int
	screenH  int
	offsetX  int // Screen column of grid cell (0, 0)
	offsetY  int
	tooSmall bool
}

// New creates a classic Snake game on the configured grid.
func New(cfg config.SnakeConfig) *Game {
	return newGame(VariantClassic, cfg)
}

// NewFullscreen creates a Snake game whose grid fills the terminal.
func NewFullscreen(cfg config.SnakeConfig) *Game {
	return newGame(VariantFullscreen, cfg)
}

func newGame(v Variant, cfg config.SnakeConfig) *Game {
	return &Game{
		variant: v,
		cfg:     cfg,
		palette: newPalette(cfg),
	}
}

func init() {
	registry.Register(string(VariantClassic), func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
	registry.Register(string(VariantFullscreen), func(cfg config.SnakeConfig) registry.Game {
		return NewFullscreen(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantFullscreen {
		return "Snake (Fullscreen)"
	}
	return "Snake"
}

// Reset starts a fresh session: new world, zero score, target placed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.pending = nil
	g.best = max(cfg.HighScore, 0)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	w, h := g.gridSize()
	g.world = NewWorld(w, h)
	g.world.PlaceTarget(g.rng)
	g.layout()
}

// Resize re-centers the grid for new terminal dimensions. The fullscreen
// variant respawns the snake on a new world when the grid size changes,
// which ends the run like a crash: the score drops to zero and the next
// Step reports an EventRespawn with the lost score.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.world == nil {
		return
	}

	if g.variant == VariantFullscreen {
		w, h := g.gridSize()
		if cw, ch := g.world.Size(); cw != w || ch != h {
			g.pending = append(g.pending, core.Event{Kind: core.EventRespawn, Score: g.score})
			g.score = 0
			g.world = NewWorld(w, h)
			g.world.PlaceTarget(g.rng)
		}
	}
	g.layout()
}

// gridSize returns the grid dimensions for the current variant and screen.
func (g *Game) gridSize() (int, int) {
	if g.variant == VariantFullscreen {
		// Frame takes one column/row on each side.
		w := (g.screenW - 2) / cellWidth
		h := g.screenH - hudHeight - 2
		return max(w, 2), max(h, 2)
	}
	return g.cfg.Grid.Width, g.cfg.Grid.Height
}

// layout centers the grid and checks that it fits on screen.
func (g *Game) layout() {
	w, h := g.world.Size()
	requiredW := w*cellWidth + 2
	requiredH := hudHeight + h + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH

	g.offsetX = max((g.screenW-w*cellWidth)/2, 1)
	g.offsetY = hudHeight + 1
}

// Step advances the game by one tick: pending input, move, collision and
// target checks.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	events := g.pending
	g.pending = nil

	// The world waits while the window cannot show it.
	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.world.Advance(g.pendingHeading(input)) {
		lost := g.score
		g.score = 0
		g.world.Reset()
		g.world.PlaceTarget(g.rng)
		events = append(events, core.Event{Kind: core.EventCrash, Score: lost})
	} else if g.world.OnTarget() {
		g.world.Grow()
		g.score++
		g.best = max(g.best, g.score)
		g.world.PlaceTarget(g.rng)
		events = append(events, core.Event{Kind: core.EventEat, Score: g.score})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// pendingHeading drains the frame's directional presses in arrival order
// and keeps the last one that does not reverse the current heading.
func (g *Game) pendingHeading(input core.InputFrame) Direction {
	current := g.world.Heading()
	pending := DirNone
	for _, a := range input.Order {
		d := HeadingFor(a)
		if d == DirNone || d == current.Opposite() {
			continue
		}
		pending = d
	}
	return pending
}

// HeadingFor maps a directional action to its heading. Every other action
// maps to DirNone.
func HeadingFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	size := 0
	if g.world != nil {
		size = len(g.world.Body())
	}
	return core.GameState{
		Score: g.score,
		Best:  g.best,
		Size:  size,
	}
}

// World exposes the simulation state, mainly for tests and snapshots.
func (g *Game) World() *World {
	return g.world
}
