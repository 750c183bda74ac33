// dinorun is an endless-runner for the terminal: jump over incoming cacti,
// with physics tuned per selectable planet.
//
// Usage:
//
//	dinorun play             - Play in the local terminal
//	dinorun planets          - List the selectable planets
//	dinorun serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--seed <value>   - RNG seed for reproducible obstacle patterns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Planet Runner - jump over cacti across the solar system",
	Long: `Planet Runner is a terminal endless-runner: your character runs
automatically and you jump over incoming obstacles. Pick a planet and its
gravity reshapes every jump.

Controls:
  Space/Up   - Start / jump / restart
  Left/Right - Change planet (on the start screen)
  Q/Ctrl+C   - Quit

Examples:
  dinorun play
  dinorun play --planet moon
  dinorun planets
  dinorun serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(planetsCmd)
	rootCmd.AddCommand(serveCmd)
}
