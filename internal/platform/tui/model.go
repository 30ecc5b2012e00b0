package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for a snake run. It owns everything the game
// loop touches: the game, the screen buffer, the score store and the logger.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store // nil when scores are not persisted
	logger     *log.Logger
	keys       KeyMap
	config     core.RuntimeConfig
	runID      string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		config:     cfg,
		runID:      uuid.NewString(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started",
		"game", m.game.ID(),
		"run", m.runID,
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.inputFrame.Set(m.keys.MapKey(msg))
	return m, nil
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick drains the input frame into one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.inputFrame.Has(core.ActionQuit) {
		return m.quit()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if crash, ok := result.Crashed(); ok {
		m.logger.Info("crashed", "game", m.game.ID(), "score", crash.Score)
		m.saveScore(crash.Score)
	}
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRespawn:
			m.logger.Info("respawned on resize", "game", m.game.ID(), "score", ev.Score)
			m.saveScore(ev.Score)
		case core.EventEat:
			m.logger.Debug("target eaten", "score", ev.Score)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// quit records the running score and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	score := m.game.State().Score
	m.saveScore(score)
	m.logger.Info("quit", "game", m.game.ID(), "score", score)
	m.logRunSummary()
	m.quitting = true
	m.inputFrame.Clear()
	return m, tea.Quit
}

// saveScore persists a positive score. Failures are logged, the run goes on.
func (m Model) saveScore(score int) {
	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.runID, score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// logRunSummary logs how many scores this run recorded and the best of them.
func (m Model) logRunSummary() {
	if m.store == nil {
		return
	}
	scores, err := m.store.RunScores(m.runID)
	if err != nil {
		m.logger.Warn("could not read run scores", "run", m.runID, "error", err)
		return
	}
	best := 0
	for _, s := range scores {
		best = max(best, s.Score)
	}
	m.logger.Info("run finished", "run", m.runID, "saved", len(scores), "best", best)
}

// saveScreenshot writes the current frame as plain text under ~/.snake/screenshots.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
