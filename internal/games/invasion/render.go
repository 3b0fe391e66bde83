package invasion

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Terminal sprites. Each row is tiled across the entity's rect, so they work
// for any configured size.
var (
	ShipArt   = []string{"/^\\", "[#]"}
	AlienArt  = []string{"<o>", "/ \\"}
	BulletArt = []string{"|"}
)

// Glyphs
const (
	LifeChar = '^'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderFleet(dst)
	g.renderBullets(dst)
	if g.stats.Active() || g.stats.ShipsLeft > 0 {
		dst.DrawSprite(g.ship.Rect(), ShipArt, core.ColorBrightCyan)
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws ships left, high score, score and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	lives := "Ships " + strings.Repeat(string(LifeChar), g.stats.ShipsLeft)
	dst.DrawTextColor(1, 0, lives, core.ColorBrightCyan)

	dst.DrawTextCentered(0, fmt.Sprintf("High %d", g.stats.HighScore), core.ColorBrightYellow)

	right := fmt.Sprintf("Score %d  Level %d", g.stats.Score, g.stats.Level)
	dst.DrawTextRight(0, right, core.ColorWhite)
}

func (g *Game) renderFleet(dst *core.Screen) {
	for _, a := range g.fleet.Aliens() {
		dst.DrawSprite(a.Rect(), AlienArt, core.ColorBrightGreen)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets.Items() {
		dst.DrawSprite(b.Rect(), BulletArt, core.ColorYellow)
	}
}

// renderOverlay draws the Play button while inactive and a notice during
// the freeze.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.stats.Active() {
		if g.Frozen() {
			dst.DrawTextCentered(dst.Height()/2, "Ship lost!", core.ColorRed)
		}
		return
	}

	btn := g.PlayButton()
	dst.FillRect(btn, ' ', core.ColorDefault)
	dst.DrawBox(btn, core.ColorGreen)
	dst.DrawTextCentered(btn.Y+btn.H/2, "Play", core.ColorBrightGreen)

	if g.stats.ShipsLeft == 0 {
		dst.DrawTextCentered(btn.Y-2, "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(btn.Bottom()+1, fmt.Sprintf("Final score %d", g.stats.Score), core.ColorWhite)
	}
	dst.DrawTextCentered(dst.Height()-1, "Click Play or press Enter", core.ColorGray)
}
