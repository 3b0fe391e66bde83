package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// helpLines is the number of rows below the playfield taken by the help line.
const helpLines = 1

// Options configures a Model beyond the game itself.
type Options struct {
	Store      *storage.Store // Optional score log
	Logger     *log.Logger
	Host       string // Recorded with each run: terminal or ssh
	Difficulty string
	KeyHold    time.Duration
}

// Model is the Bubble Tea model for playing Alien Invasion.
type Model struct {
	game       *invasion.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	scoreboard *ScoreboardModel
	host       string
	difficulty string
	width      int
	height     int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game. cfg holds the full
// terminal size; the game gets everything but the help line.
func NewModel(game *invasion.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	host := opts.Host
	if host == "" {
		host = "terminal"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.KeyHold),
		inputFrame: core.NewInputFrame(),
		host:       host,
		difficulty: opts.Difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// playfieldHeight returns the rows left for the game in a terminal of height h.
func playfieldHeight(h int) int {
	return max(h-helpLines, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	runtime := m.config
	runtime.ScreenH = playfieldHeight(m.config.ScreenH)
	m.game.Reset(runtime)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		if !m.game.Stats().Active() {
			sb := NewScoreboardModel(m.store, m.width, m.height)
			m.scoreboard = &sb
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.inputFrame.Quit()
	case isMovement(action):
		m.hold.Press(action, time.Now(), &m.inputFrame)
	case action != core.ActionNone:
		m.inputFrame.KeyDown(action)
	}

	return m, nil
}

// updateScoreboard forwards a key to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.scoreboard = nil
		m.inputFrame.Quit()
		return m, nil
	case m.scoreboard.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	return m, cmd
}

// handleMouse turns a left click into a pointer event in playfield cells.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.PointerDown(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	m.help.Width = msg.Width

	h := playfieldHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)

	if m.scoreboard != nil {
		next, _ := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	switch {
	case result.Started:
		// The pointer is only needed for the Play button
		cmds = append(cmds, tea.DisableMouse)
	case result.Ended:
		m.hold.ReleaseAll(&m.inputFrame)
		m.saveRun(result.State)
		cmds = append(cmds, tea.EnableMouseCellMotion)
	}

	return m, tea.Batch(cmds...)
}

// saveRun records a finished game in the score log.
func (m Model) saveRun(state core.GameState) {
	if m.store == nil || state.Score <= 0 {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		Score:      state.Score,
		Level:      state.Level,
		Host:       m.host,
		Difficulty: m.difficulty,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", run.RunID, "score", run.Score, "level", run.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invasion", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *invasion.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks on the Play button
	)

	_, err := p.Run()
	return err
}
