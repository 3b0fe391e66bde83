package window

import (
	"image"
	"os"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		expected []core.Event
	}{
		{
			name:     "arrow press",
			pressed:  []ebiten.Key{ebiten.KeyArrowLeft},
			expected: []core.Event{{Kind: core.EventKeyDown, Action: core.ActionLeft}},
		},
		{
			name:     "arrow release",
			released: []ebiten.Key{ebiten.KeyArrowUp},
			expected: []core.Event{{Kind: core.EventKeyUp, Action: core.ActionUp}},
		},
		{
			name:     "space fires",
			pressed:  []ebiten.Key{ebiten.KeySpace},
			expected: []core.Event{{Kind: core.EventKeyDown, Action: core.ActionFire}},
		},
		{
			name:     "q quits",
			pressed:  []ebiten.Key{ebiten.KeyQ},
			expected: []core.Event{{Kind: core.EventQuit, Action: core.ActionQuit}},
		},
		{
			name:     "q release ignored",
			released: []ebiten.Key{ebiten.KeyQ},
		},
		{
			name:    "unbound keys ignored",
			pressed: []ebiten.Key{ebiten.KeyA, ebiten.KeyEnter},
		},
		{
			name:     "tap within a tick ends released",
			pressed:  []ebiten.Key{ebiten.KeyArrowRight},
			released: []ebiten.Key{ebiten.KeyArrowRight},
			expected: []core.Event{
				{Kind: core.EventKeyDown, Action: core.ActionRight},
				{Kind: core.EventKeyUp, Action: core.ActionRight},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			translateKeys(tt.pressed, tt.released, &frame)

			if len(frame.Events) != len(tt.expected) {
				t.Fatalf("events = %+v, expected %+v", frame.Events, tt.expected)
			}
			for i, ev := range frame.Events {
				if ev != tt.expected[i] {
					t.Errorf("event %d = %+v, expected %+v", i, ev, tt.expected[i])
				}
			}
		})
	}
}

func TestLoadImageMissing(t *testing.T) {
	for _, kind := range []string{"ship", "alien"} {
		_, err := LoadImage(kind, "does/not/exist.bmp")
		if err == nil {
			t.Errorf("LoadImage(%q) expected error for a missing file", kind)
			continue
		}
		if !strings.Contains(err.Error(), kind+" image") {
			t.Errorf("error = %q, expected it to name the %s image", err, kind)
		}
	}
}

func TestBundledSprites(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{"../../../images/ship.bmp", 60, 48},
		{"../../../images/alien.bmp", 40, 40},
	}

	for _, tt := range tests {
		f, err := os.Open(tt.path)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", tt.path, err)
		}
		cfg, format, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("DecodeConfig(%s) error = %v", tt.path, err)
		}
		if format != "bmp" || cfg.Width != tt.w || cfg.Height != tt.h {
			t.Errorf("%s = %s %dx%d, expected bmp %dx%d", tt.path, format, cfg.Width, cfg.Height, tt.w, tt.h)
		}
	}
}
