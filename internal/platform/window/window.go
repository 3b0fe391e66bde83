// Package window runs Alien Invasion full screen with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "golang.org/x/image/bmp" // Sprites are BMP files

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Used when the display size cannot be queried.
const (
	fallbackWidth  = 1200
	fallbackHeight = 800
)

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	bgColor     = color.RGBA{230, 230, 230, 255}
	bulletColor = color.RGBA{60, 60, 60, 255}
	buttonColor = color.RGBA{0, 135, 0, 255}
	shadeColor  = color.RGBA{0, 0, 0, 90}
)

// Options configures the window host.
type Options struct {
	ShipImage  string // Path to the ship sprite
	AlienImage string // Path to the alien sprite
	TickRate   int
	Store      *storage.Store // Optional score log
	Logger     *log.Logger
	Difficulty string
}

// LoadImage reads a sprite from path. kind names the sprite in errors.
func LoadImage(kind, path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot load %s image %s: %w", kind, path, err)
	}
	return img, nil
}

// Host adapts a Game to ebiten.Game.
type Host struct {
	game   *invasion.Game
	ship   *ebiten.Image
	alien  *ebiten.Image
	store  *storage.Store
	logger *log.Logger

	difficulty string
	frame      core.InputFrame
	keys       []ebiten.Key
	cursorMode ebiten.CursorModeType
}

// NewHost creates a host for an already reset game.
func NewHost(game *invasion.Game, ship, alien *ebiten.Image, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		game:       game,
		ship:       ship,
		alien:      alien,
		store:      opts.Store,
		logger:     logger,
		difficulty: opts.Difficulty,
		frame:      core.NewInputFrame(),
		cursorMode: ebiten.CursorModeVisible,
	}
}

// Update polls input and advances the game one tick.
func (h *Host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	pressed := len(h.keys)
	h.keys = inpututil.AppendJustReleasedKeys(h.keys)
	translateKeys(h.keys[:pressed], h.keys[pressed:], &h.frame)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.frame.PointerDown(x, y)
	}

	res := h.game.Step(h.frame)
	h.frame.Clear()

	if res.Ended {
		h.saveRun(res.State)
	}
	h.syncCursor()

	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// syncCursor shows the pointer only while the Play button is up.
func (h *Host) syncCursor() {
	mode := ebiten.CursorModeHidden
	if h.game.CursorVisible() {
		mode = ebiten.CursorModeVisible
	}
	if mode != h.cursorMode {
		ebiten.SetCursorMode(mode)
		h.cursorMode = mode
	}
}

func (h *Host) saveRun(state core.GameState) {
	if h.store == nil || state.Score <= 0 {
		return
	}
	run, err := h.store.SaveRun(storage.Run{
		Score:      state.Score,
		Level:      state.Level,
		Host:       "window",
		Difficulty: h.difficulty,
	})
	if err != nil {
		h.logger.Warn("could not save run", "error", err)
		return
	}
	h.logger.Info("run saved", "run", run.RunID, "score", run.Score, "level", run.Level)
}

// Draw renders the game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	for _, a := range h.game.Fleet().Aliens() {
		drawAt(screen, h.alien, a.Rect())
	}
	for _, b := range h.game.Bullets().Items() {
		fillRect(screen, b.Rect(), bulletColor)
	}

	st := h.game.Stats()
	if st.Active() || st.ShipsLeft > 0 {
		drawAt(screen, h.ship, h.game.Ship().Rect())
	}

	h.drawHUD(screen, st)
	h.drawOverlay(screen, st)
}

// drawHUD draws remaining ships as half-size sprites, then the scores.
func (h *Host) drawHUD(screen *ebiten.Image, st invasion.Stats) {
	b := h.ship.Bounds()
	for i := range st.ShipsLeft {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(0.5, 0.5)
		op.GeoM.Translate(float64(10+i*(b.Dx()/2+6)), 10)
		screen.DrawImage(h.ship, op)
	}

	w := screen.Bounds().Dx()
	high := fmt.Sprintf("High %d", st.HighScore)
	ebitenutil.DebugPrintAt(screen, high, (w-textWidth(high))/2, 10)

	score := fmt.Sprintf("Score %d  Level %d", st.Score, st.Level)
	ebitenutil.DebugPrintAt(screen, score, w-textWidth(score)-20, 10)
}

func (h *Host) drawOverlay(screen *ebiten.Image, st invasion.Stats) {
	w, hgt := screen.Bounds().Dx(), screen.Bounds().Dy()

	if st.Active() {
		if h.game.Frozen() {
			msg := "Ship lost!"
			ebitenutil.DebugPrintAt(screen, msg, (w-textWidth(msg))/2, hgt/2)
		}
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt), shadeColor, false)

	btn := h.game.PlayButton()
	fillRect(screen, btn, buttonColor)
	label := "Play"
	ebitenutil.DebugPrintAt(screen, label, btn.X+(btn.W-textWidth(label))/2, btn.Y+(btn.H-debugGlyphH)/2)

	if st.ShipsLeft == 0 {
		over := "GAME OVER"
		ebitenutil.DebugPrintAt(screen, over, (w-textWidth(over))/2, btn.Y-2*debugGlyphH)
		final := fmt.Sprintf("Final score %d", st.Score)
		ebitenutil.DebugPrintAt(screen, final, (w-textWidth(final))/2, btn.Bottom()+debugGlyphH)
	}
}

// Layout keeps the logical screen equal to the window and lets the game
// follow size changes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		h.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// drawAt draws img with its top-left corner at r's.
func drawAt(dst, img *ebiten.Image, r core.Rect) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func textWidth(s string) int {
	return len(s) * debugGlyphW
}

// Run loads the sprites, sizes the ship and aliens after them and plays full
// screen until the player quits or closes the window.
func Run(cfg config.InvasionConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	ship, err := LoadImage("ship", opts.ShipImage)
	if err != nil {
		return err
	}
	alien, err := LoadImage("alien", opts.AlienImage)
	if err != nil {
		return err
	}
	b := ship.Bounds()
	cfg.Ship.Width, cfg.Ship.Height = b.Dx(), b.Dy()
	b = alien.Bounds()
	cfg.Alien.Width, cfg.Alien.Height = b.Dx(), b.Dy()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("window: invalid config: %w", err)
	}

	w, h := ebiten.ScreenSizeInFullscreen()
	if w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}

	game := invasion.New(cfg, invasion.WithLogger(logger))
	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: opts.TickRate})

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(true)
	ebiten.SetTPS(opts.TickRate)

	logger.Info("window opened", "width", w, "height", h, "tps", opts.TickRate)

	err = ebiten.RunGame(NewHost(game, ship, alien, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
