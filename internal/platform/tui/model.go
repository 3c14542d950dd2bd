package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Options configure a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Fast    bool
	Logger  *log.Logger
}

// Model is the Bubble Tea model rendering a breakout engine.
// It is one of the engine's observers: every tick produces a StateChangedMsg
// that triggers a redraw from a fresh snapshot.
type Model struct {
	game     *breakout.Model
	ctrl     *breakout.Controller
	feed     *changeFeed
	sub      breakout.Subscription
	screen   *core.Screen
	fps      *core.FrameRate
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger
	fast     bool
	quitting bool
}

// NewModel creates a new Bubble Tea model driving game. The engine is
// initialized to its configured arena and subscribed to immediately; the tick
// loop starts in Init.
func NewModel(game *breakout.Model, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := DefaultKeyMap()
	feed := newChangeFeed()

	arena := game.Config().Arena
	game.Initialize(arena.Width, arena.Height)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:   game,
		ctrl:   breakout.NewController(game),
		feed:   feed,
		sub:    game.Subscribe(feed.notify),
		screen: core.NewScreen(opts.Runtime.ScreenW, screenRows(opts.Runtime.ScreenH)),
		fps:    core.NewFrameRate(core.DefaultFrameWindow),
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   h,
		logger: logger,
		fast:   opts.Fast,
	}
}

// screenRows leaves the bottom terminal row for the help bar.
func screenRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop and waits for the first state change.
func (m Model) Init() tea.Cmd {
	m.game.SetFast(m.fast)
	m.game.Start()
	m.fps.Start()
	return m.feed.wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case StateChangedMsg:
		m.fps.Frame()
		return m, m.feed.wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.mapper.IsQuit(msg):
		m.quitting = true
		m.shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	code, ok := m.mapper.MapKey(msg)
	if !ok {
		return m, nil
	}
	if !m.ctrl.HandleKey(code) {
		m.logger.Debug("key ignored", "key", code)
	}
	return m, nil
}

// shutdown detaches from the engine and stops its loop.
func (m Model) shutdown() {
	m.game.Unsubscribe(m.sub)
	m.game.Stop()
	m.feed.close()
}

// draw renders the latest snapshot into the screen buffer.
func (m Model) draw() breakout.Snapshot {
	snap := m.game.Snapshot()
	m.screen.Clear()
	m.screen.DrawText(0, 0, HUD(snap.Score, m.fps.FPS()))
	DrawSnapshot(m.screen, snap)
	return snap
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.draw()
	// Row 0 holds the plain HUD; swap in the styled one.
	_, body, _ := strings.Cut(RenderScreen(m.screen), "\n")
	return renderHUD(snap.Score, m.fps.FPS(), snap.Fast) + "\n" + body + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game *breakout.Model, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.shutdown()
	return err
}
