package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanadn/dino-run-game/internal/config"
	"github.com/kanadn/dino-run-game/internal/game"
)

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "List the selectable planets",
	Long:  `Shows every planet with its gravity and jump impulse, in cells per tick.`,
	Run:   runPlanets,
}

func runPlanets(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	profiles := game.ProfilesFromConfig(cfg.Planets)

	fmt.Println("Available planets:")
	fmt.Println()
	fmt.Printf("  %-10s %-10s %s\n", "Planet", "Gravity", "Jump impulse")
	fmt.Printf("  %-10s %-10s %s\n", "------", "-------", "------------")

	for _, p := range game.Planets() {
		profile := profiles[p]
		marker := " "
		if p == game.DefaultPlanet {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-10.3f %.3f\n", marker, p, profile.Gravity, profile.JumpImpulse)
	}

	fmt.Println()
	fmt.Println("* default. Run 'dinorun play --planet <name>' to start there.")
}
