package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratumsim/stratum"
	"github.com/stratumsim/stratum/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "stratum",
	Short: "Stratum computes initial well state for reservoir flow simulations",
	Long: `Stratum reads a YAML simulation deck (grid, ambient pressure, wells and
their control stacks) and derives the initial per-well state the solver
starts from, or the vertical grid columns column-wise schemes iterate over.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("deck", "d", "run.deck.yaml", "Path to the simulation deck")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// loadModel builds the simulation model from the persistent flags.
func loadModel(cmd *cobra.Command) (*stratum.Model, error) {
	path, _ := cmd.Flags().GetString("deck")
	level, _ := cmd.Flags().GetString("log-level")
	return stratum.Load(path, stratum.WithLogger(logging.New(logging.ParseLevel(level))))
}
