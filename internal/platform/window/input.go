package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyQ:          core.ActionQuit,
}

// translateKeys appends the events for this tick's key transitions.
// Presses go first so a key tapped within one tick never stays held.
func translateKeys(pressed, released []ebiten.Key, frame *core.InputFrame) {
	for _, k := range pressed {
		a, ok := keyActions[k]
		if !ok {
			continue
		}
		if a == core.ActionQuit {
			frame.Quit()
			continue
		}
		frame.KeyDown(a)
	}
	for _, k := range released {
		if a, ok := keyActions[k]; ok && a != core.ActionQuit {
			frame.KeyUp(a)
		}
	}
}
