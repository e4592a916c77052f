package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// configChangedMsg reports that the watched config file was written.
type configChangedMsg struct{ path string }

// watchErrMsg carries a watcher failure.
type watchErrMsg struct{ err error }

// Option configures a Model.
type Option func(*Model)

// WithWatcher restarts the game whenever w reports a config change.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithMenuReturn lets Back leave a paused or finished game. Used when the
// game runs inside a session that owns a menu.
func WithMenuReturn() Option {
	return func(m *Model) { m.menuReturn = true }
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	watcher    *config.Watcher
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int
	quitting   bool
	menuReturn bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForConfig blocks until the watcher reports a change or an error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
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

	case configChangedMsg:
		m.config.Log().Info("config changed, restarting", "game", m.game.ID(), "path", msg.path)
		m.restart(m.config.Seed)
		return m, waitForConfig(m.watcher)

	case watchErrMsg:
		m.config.Log().Warn("config watcher error", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Pressed(core.ActionBack) {
		if m.menuReturn && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Layouts depend on the screen size, so a running game restarts
	if !m.gameState.GameOver {
		m.restart(m.config.Seed)
	}

	return m, nil
}

// restart resets the game with the given seed and clears per-run state.
func (m *Model) restart(seed int64) {
	m.config.Seed = seed
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.ticks = 0
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.keys.ReleaseAll()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Pressed(core.ActionRestart) && m.gameState.GameOver {
		m.restart(time.Now().UnixNano())
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	m.keys.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	// The tick that ends the game counts, matching headless runs
	if !wasOver && !m.gameState.Paused {
		m.ticks++
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished game. Saving is best effort; the game
// continues regardless.
func (m *Model) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	logger := m.config.Log()
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		logger.Error("save score failed", "game", m.game.ID(), "err", err)
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.ticks,
		Seed:   m.config.Seed,
		Won:    m.gameState.Won,
	}
	run.Checksum, _ = registry.Checksum(m.game)
	id, err := m.store.SaveRun(run)
	if err != nil {
		logger.Error("save run failed", "game", m.game.ID(), "err", err)
		return
	}
	logger.Info("run saved", "game", m.game.ID(), "run", id, "score", run.Score, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.config.Log().Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.config.Log().Warn("screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
