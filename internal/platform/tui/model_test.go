package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *invasion.Game) {
	t.Helper()
	game := invasion.New(config.DefaultTerminalConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model, now time.Time) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(now))
}

func TestModelLeavesRoomForHelp(t *testing.T) {
	_, game := newTestModel(t, Options{})

	s := game.Settings()
	if s.ScreenW != 80 || s.ScreenH != 23 {
		t.Errorf("viewport = %dx%d, expected 80x23", s.ScreenW, s.ScreenH)
	}
}

func TestModelEnterStarts(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if game.Stats().Active() {
		t.Error("game should not start before the tick")
	}
	_, _ = tick(t, m, time.Now())

	if !game.Stats().Active() {
		t.Error("game should be active after enter and a tick")
	}
}

func TestModelClickOnPlayStarts(t *testing.T) {
	m, game := newTestModel(t, Options{})

	btn := game.PlayButton()
	m, _ = update(t, m, tea.MouseMsg{
		X:      btn.X + 1,
		Y:      btn.Y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	_, _ = tick(t, m, time.Now())

	if !game.Stats().Active() {
		t.Error("click on Play should start the game")
	}
}

func TestModelClickOutsidePlayIgnored(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	_, _ = tick(t, m, time.Now())

	if game.Stats().Active() {
		t.Error("click outside Play should not start the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("quit should wait for the tick")
	}

	m, cmd = tick(t, m, time.Now())
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelMovementHold(t *testing.T) {
	m, game := newTestModel(t, Options{KeyHold: 100 * time.Millisecond})
	now := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m, now)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = tick(t, m, now.Add(16*time.Millisecond))
	if !game.Ship().MovingRight {
		t.Fatal("ship should move right while the key is held")
	}

	m, _ = tick(t, m, now.Add(500*time.Millisecond))
	if game.Ship().MovingRight {
		t.Error("ship should stop once the hold window passes")
	}
}

func TestModelScoreboard(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard while inactive")
	}
	if !strings.Contains(m.View(), "Score log is off") {
		t.Error("scoreboard without a store should say the log is off")
	}

	// Keys go to the scoreboard, not the game
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m, time.Now())
	if game.Stats().Active() {
		t.Error("enter on the scoreboard should not start the game")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelScoreboardClosedDuringPlay(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m, time.Now())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.scoreboard != nil {
		t.Error("tab should not open the scoreboard during play")
	}
}

func TestModelResize(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	s := game.Settings()
	if s.ScreenW != 100 || s.ScreenH != 29 {
		t.Errorf("viewport = %dx%d, expected 100x29", s.ScreenW, s.ScreenH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	view := m.View()
	if !strings.Contains(view, "Play") {
		t.Error("view should show the Play button")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should end with the help line")
	}
}

func TestModelSaveRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, Options{Store: store, Difficulty: "hard"})

	m.saveRun(core.GameState{Score: 0, Level: 1})
	m.saveRun(core.GameState{Score: 150, Level: 2})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1 (zero scores are not logged)", len(runs))
	}
	r := runs[0]
	if r.Score != 150 || r.Level != 2 || r.Host != "terminal" || r.Difficulty != "hard" {
		t.Errorf("run = %+v, expected score 150, level 2, host terminal, difficulty hard", r)
	}
}
