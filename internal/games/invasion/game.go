package invasion

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Game is the loop controller. It owns the settings, stats and entity
// collections and advances them one tick per Step.
type Game struct {
	cfg     config.InvasionConfig
	runtime core.RuntimeConfig

	settings *Settings
	stats    Stats
	ship     *Ship
	bullets  *Bullets
	fleet    *Fleet

	board  *HighScoreBoard
	logger *log.Logger

	tickCount     uint64
	freezeTicks   int // Remaining ticks of the pause after a lost ship
	cursorVisible bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithHighScoreBoard shares a high-score board with other games.
func WithHighScoreBoard(board *HighScoreBoard) Option {
	return func(g *Game) {
		if board != nil {
			g.board = board
		}
	}
}

// New creates a game. Reset must be called before the first Step.
func New(cfg config.InvasionConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		board:  NewHighScoreBoard(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset prepares an inactive session for a viewport. The fleet is spawned
// so it shows behind the Play button.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	g.settings = NewSettings(g.cfg, runtime.ScreenW, runtime.ScreenH)
	g.stats = Stats{
		ShipsLeft: g.settings.ShipLimit,
		Level:     1,
		HighScore: g.board.Best(),
		Phase:     PhaseInactive,
	}
	g.ship = NewShip(g.settings.Ship)
	g.ship.Center(runtime.ScreenW, runtime.ScreenH)
	g.bullets = NewBullets()
	g.fleet = NewFleet()
	g.fleet.Spawn(g.settings)

	g.tickCount = 0
	g.freezeTicks = 0
	g.cursorVisible = true
}

// Resize adapts the game to a new viewport. An inactive session is laid out
// again; during play the ship is pulled back inside the new bounds and the
// fleet keeps flying.
func (g *Game) Resize(w, h int) {
	if w == g.settings.ScreenW && h == g.settings.ScreenH {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.settings.ScreenW, g.settings.ScreenH = w, h

	if !g.stats.Active() {
		g.fleet.Spawn(g.settings)
		g.ship.Center(w, h)
		return
	}
	g.ship.Update(0, g.settings.ShipArea())
}

// Step advances the game by one tick.
// Order: input dispatch, then (when active and not frozen) ship, bullets,
// fleet, bullet-alien hits, ship-alien hits, breach and level clear.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	g.tickCount++

	// Other games sharing the board may have raised the best score
	g.stats.HighScore = max(g.stats.HighScore, g.board.Best())

	for _, ev := range in.Events {
		g.dispatch(ev, &res)
	}

	if g.stats.Active() {
		if g.freezeTicks > 0 {
			g.freezeTicks--
		} else {
			g.update(&res)
		}
	}

	res.State = g.State()
	return res
}

// dispatch applies one input event.
func (g *Game) dispatch(ev core.Event, res *core.StepResult) {
	switch ev.Kind {
	case core.EventQuit:
		res.Quit = true

	case core.EventKeyDown:
		switch ev.Action {
		case core.ActionLeft:
			g.ship.MovingLeft = true
		case core.ActionRight:
			g.ship.MovingRight = true
		case core.ActionUp:
			g.ship.MovingUp = true
		case core.ActionDown:
			g.ship.MovingDown = true
		case core.ActionFire:
			g.FireBullet()
		case core.ActionStart:
			if !g.stats.Active() {
				g.start(res)
			}
		case core.ActionQuit:
			res.Quit = true
		}

	case core.EventKeyUp:
		switch ev.Action {
		case core.ActionLeft:
			g.ship.MovingLeft = false
		case core.ActionRight:
			g.ship.MovingRight = false
		case core.ActionUp:
			g.ship.MovingUp = false
		case core.ActionDown:
			g.ship.MovingDown = false
		}

	case core.EventPointerDown:
		if !g.stats.Active() && g.PlayButton().Contains(ev.X, ev.Y) {
			g.start(res)
		}
	}
}

// Start begins a new game if none is running.
func (g *Game) Start() bool {
	if g.stats.Active() {
		return false
	}
	var res core.StepResult
	g.start(&res)
	return true
}

func (g *Game) start(res *core.StepResult) {
	g.settings.InitializeDynamic()
	g.stats.Reset(g.settings.ShipLimit)
	g.stats.Phase = PhaseActive

	g.bullets.Clear()
	g.fleet.Spawn(g.settings)
	g.ship.Center(g.settings.ScreenW, g.settings.ScreenH)

	g.freezeTicks = 0
	g.cursorVisible = false
	res.Started = true

	g.logger.Info("game started", "ships", g.stats.ShipsLeft, "aliens", g.fleet.Len())
}

// FireBullet launches a bullet from the ship. It does nothing outside play,
// during the freeze, or when the bullet limit is reached.
func (g *Game) FireBullet() bool {
	if !g.stats.Active() || g.freezeTicks > 0 {
		return false
	}
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return false
	}
	g.bullets.Add(NewBullet(g.ship, g.settings.Bullet))
	return true
}

// update runs the simulation part of a tick.
func (g *Game) update(res *core.StepResult) {
	g.ship.Update(g.settings.ShipSpeed, g.settings.ShipArea())
	g.bullets.Update(g.settings.BulletSpeed)

	if g.fleet.Update(g.settings) {
		g.logger.Debug("fleet reversed", "direction", g.settings.FleetDirection, "tick", g.tickCount)
	}

	if hits := ResolveBulletAlien(g.bullets, g.fleet); len(hits) > 0 {
		g.stats.Score += g.settings.AlienPoints * hits.Count()
		g.checkHighScore()
	}

	if ShipCollides(g.ship, g.fleet) || FleetBreached(g.fleet, g.settings.ScreenH) {
		g.shipHit(res)
		return
	}

	if g.fleet.Empty() {
		g.levelClear(res)
	}
}

// shipHit handles a lost ship. The last ship ends the game and leaves the
// fleet and bullets where they were.
func (g *Game) shipHit(res *core.StepResult) {
	g.stats.ShipsLeft--
	res.LifeLost = true

	if g.stats.ShipsLeft <= 0 {
		g.stats.ShipsLeft = 0
		g.stats.Phase = PhaseInactive
		g.cursorVisible = true
		res.Ended = true
		g.logger.Info("game over", "score", g.stats.Score, "level", g.stats.Level, "high", g.stats.HighScore)
		return
	}

	g.bullets.Clear()
	g.fleet.Spawn(g.settings)
	g.ship.Center(g.settings.ScreenW, g.settings.ScreenH)
	g.freezeTicks = g.hitPauseTicks()

	g.logger.Info("ship lost", "ships_left", g.stats.ShipsLeft)
}

// levelClear moves to the next level after the fleet is destroyed.
// A viewport too small for any alien clears a level every tick; those
// clears do not escalate the settings.
func (g *Game) levelClear(res *core.StepResult) {
	g.bullets.Clear()
	g.fleet.Spawn(g.settings)
	g.stats.Level++
	res.LevelCleared = true

	if g.fleet.Empty() {
		g.logger.Debug("level cleared with no room for aliens", "level", g.stats.Level)
		return
	}
	g.settings.IncreaseSpeed()
	g.logger.Info("level cleared", "level", g.stats.Level, "alien_speed", g.settings.AlienSpeed, "points", g.settings.AlienPoints)
}

// checkHighScore pushes the score to the board and picks up the best value.
func (g *Game) checkHighScore() {
	g.stats.HighScore = max(g.stats.HighScore, g.board.Submit(g.stats.Score))
}

// hitPauseTicks converts the configured pause into ticks.
func (g *Game) hitPauseTicks() int {
	return g.cfg.Gameplay.HitPauseMS * g.runtime.TickRate / 1000
}

// PlayButton returns the bounds of the Play button, centred in the viewport.
func (g *Game) PlayButton() core.Rect {
	return g.settings.Viewport().Centered(g.cfg.Gameplay.ButtonWidth, g.cfg.Gameplay.ButtonHeight)
}

// CursorVisible reports whether the host should show the pointer.
func (g *Game) CursorVisible() bool {
	return g.cursorVisible
}

// Frozen reports whether the pause after a lost ship is running.
func (g *Game) Frozen() bool {
	return g.freezeTicks > 0
}

// Settings returns the live settings.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Stats returns a copy of the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Bullets returns the live bullets.
func (g *Game) Bullets() *Bullets {
	return g.bullets
}

// Fleet returns the alien fleet.
func (g *Game) Fleet() *Fleet {
	return g.fleet
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		Active:    g.stats.Active(),
		Frozen:    g.Frozen(),
	}
}
