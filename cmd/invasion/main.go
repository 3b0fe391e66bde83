// invasion is an Alien Invasion arcade shooter for the terminal, a desktop
// window or an SSH server.
//
// Usage:
//
//	invasion                 - Play in the terminal
//	invasion window          - Play full screen in a desktop window
//	invasion serve           - Start SSH server for remote play
//	invasion scores          - Show the best logged games
//	invasion config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--db <path>           - Log finished games to a SQLite database (off by default)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - Shoot down the fleet before it lands",
	Long: `Alien Invasion is an arcade shooter. A fleet of aliens sweeps across the
screen and drops closer at every edge; shoot them all before they reach you.

Controls (terminal):
  Arrows/WASD  - Move
  Space        - Fire
  Enter/Click  - Play
  Tab          - Scoreboard (between games, needs --db)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Available commands:
  window   - Play full screen in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best logged games
  config   - Print the default configuration

Examples:
  invasion
  invasion --difficulty hard
  invasion --db ~/.invasion/scores.db
  invasion window --ship-image ./images/ship.bmp --alien-image ./images/alien.bmp
  invasion serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the score log database (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
