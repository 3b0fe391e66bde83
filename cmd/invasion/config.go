package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var flagProfile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration for a profile.

Save it as ~/.invasion/configs/<profile>.yaml or ./configs/<profile>.yaml
to override values, or pass it with --config.

Examples:
  invasion config > ~/.invasion/configs/terminal.yaml
  invasion config --profile window`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagProfile, "profile", string(config.ProfileTerminal), "Config profile: terminal or window")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML(config.Profile(flagProfile))
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q (want terminal or window)\n", flagProfile)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
