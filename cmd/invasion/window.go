package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/platform/window"
)

var (
	flagShipImage  string
	flagAlienImage string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play full screen in a desktop window",
	Long: `Play Alien Invasion full screen with Ebitengine.

The ship and alien sprites are read from --ship-image and --alien-image
and set the sprite sizes.
Sizes and speeds come from the window config profile (pixels).

Controls:
  Arrows       - Move
  Space        - Fire
  Click Play   - Start
  Q            - Quit

Examples:
  invasion window
  invasion window --ship-image ./my_ship.bmp --difficulty easy`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagShipImage, "ship-image", "images/ship.bmp", "Path to the ship sprite (BMP or PNG)")
	windowCmd.Flags().StringVar(&flagAlienImage, "alien-image", "images/alien.bmp", "Path to the alien sprite (BMP or PNG)")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("invasion", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(config.ProfileWindow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := window.Run(cfg, window.Options{
		ShipImage:  flagShipImage,
		AlienImage: flagAlienImage,
		TickRate:   flagFPS,
		Store:      store,
		Logger:     logger,
		Difficulty: difficultyName(),
	})
	if runErr != nil {
		logger.Error("window exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
