package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-bazooka/internal/core"
	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game      *bazooka.Game
	presenter *Presenter
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	logger    *log.Logger
	lastTick  time.Time
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model for game. presenter must be the sink (or part of
// the sink) the game was built with, otherwise View has nothing to show.
func NewModel(game *bazooka.Game, presenter *Presenter, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if presenter == nil {
		presenter = NewPresenter()
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:      game,
		presenter: presenter,
		keys:      DefaultKeyMap(),
		help:      h,
		config:    cfg,
		logger:    logger,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playfieldHeight())
		return m, nil
	}

	// Close is queued like any other action; the next tick sees Frame
	// return false and quits.
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.game.Push(a)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.playfieldHeight())
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	if !m.game.Frame(dt) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// playfieldHeight is the terminal height minus the help lines.
func (m Model) playfieldHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(m.height-rows, 1)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".bazooka", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bazooka_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	snap, ok := m.presenter.Snapshot()
	if !ok {
		snap = m.game.Snapshot()
	}
	Draw(m.screen, snap, m.presenter.Flashing())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the game closes.
func Run(game *bazooka.Game, presenter *Presenter, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, presenter, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// screenshotText is the screen as plain text with trailing blanks trimmed
// from every row.
func screenshotText(s *core.Screen) string {
	var sb strings.Builder
	for y := range s.Height() {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
