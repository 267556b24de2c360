package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stratumsim/stratum/pkg/state"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Compute the initial well state from a deck",
	Long: `Loads the deck, derives the initial per-well state (bhp, thp, temperature,
phase rates) from the operating controls, and prints it as YAML on stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// wellReport is the printable per-well view of the state.
type wellReport struct {
	Name        string    `yaml:"name"`
	Bhp         float64   `yaml:"bhp"`
	Thp         float64   `yaml:"thp"`
	Temperature float64   `yaml:"temperature"`
	Rates       []float64 `yaml:"rates,flow"`
}

type stateReport struct {
	Phases []string     `yaml:"phases,flow"`
	Wells  []wellReport `yaml:"wells"`
	Layout state.Layout `yaml:"restart_layout"`
}

func runInit(cmd *cobra.Command) error {
	model, err := loadModel(cmd)
	if err != nil {
		return err
	}
	ws, err := model.InitialState()
	if err != nil {
		return err
	}

	report := stateReport{
		Phases: model.PhaseNames,
		Layout: ws.Layout(),
	}
	for w := range model.Fleet.Wells {
		report.Wells = append(report.Wells, wellReport{
			Name:        model.Fleet.Wells[w].Name,
			Bhp:         ws.Bhp[w],
			Thp:         ws.Thp[w],
			Temperature: ws.Temperature[w],
			Rates:       ws.Rates(w),
		})
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
