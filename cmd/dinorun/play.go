package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kanadn/dino-run-game/internal/config"
	"github.com/kanadn/dino-run-game/internal/game"
	"github.com/kanadn/dino-run-game/internal/platform/tui"
)

var flagPlanet string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the runner in the current terminal.

The field size, physics table, spawn delays, and tick period come from the
config file; see 'dinorun planets' for the available worlds.

Examples:
  dinorun play
  dinorun play --planet jupiter
  dinorun play --config ./my-config.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlanet, "planet", "", "Initial planet (default earth)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagPlanet != "" {
		if _, ok := game.ParsePlanet(flagPlanet); !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown planet %q, using %s\n", flagPlanet, game.DefaultPlanet)
			fmt.Fprintln(os.Stderr, "Run 'dinorun planets' to see the available worlds.")
		}
	}

	// The field has a fixed size; warn when the terminal cannot fit it.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Field.Width || h < cfg.Field.Height+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is smaller than the %dx%d field; output will clip.\n",
				w, h, cfg.Field.Width, cfg.Field.Height+1)
		}
	}

	if err := tui.Run(cfg, flagSeed, flagPlanet); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
