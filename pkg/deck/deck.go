package deck

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Deck is the parsed form of a simulation deck file. It describes the run's
// phases, grid, ambient pressure and wells; Build turns it into the typed
// model the core packages consume.
type Deck struct {
	Title    string     `yaml:"title"`
	Phases   []string   `yaml:"phases"`
	Grid     GridSpec   `yaml:"grid"`
	Pressure PressSpec  `yaml:"-"`
	Wells    []WellSpec `yaml:"wells"`
}

// GridSpec declares a structured grid by its extents plus an optional list
// of inactive cell ids.
type GridSpec struct {
	NX       int   `yaml:"nx"`
	NY       int   `yaml:"ny"`
	NZ       int   `yaml:"nz"`
	Inactive []int `yaml:"inactive"`
}

// PressSpec declares the ambient pressure field. Kind selects the variant:
//
//	uniform  — Value everywhere
//	gradient — Value at the top layer plus Step per k layer
//	cells    — explicit per-cell list in Cells
type PressSpec struct {
	Kind  string    `mapstructure:"kind"`
	Value float64   `mapstructure:"value"`
	Step  float64   `mapstructure:"step"`
	Cells []float64 `mapstructure:"cells"`
}

// WellSpec declares one well. Type and control kinds use their deck
// spellings ("injector", "surface_rate", ...).
type WellSpec struct {
	Name     string        `yaml:"name"`
	Type     string        `yaml:"type"`
	Stopped  bool          `yaml:"stopped"`
	Cells    []int         `yaml:"cells"`
	Current  int           `yaml:"current"`
	Controls []ControlSpec `yaml:"controls"`
}

// ControlSpec declares one entry of a well's control stack.
type ControlSpec struct {
	Kind         string    `yaml:"kind"`
	Target       float64   `yaml:"target"`
	Distribution []float64 `yaml:"distribution"`
}

// rawDeck keeps the pressure section untyped so the variant can be decoded
// by kind after the rest of the document is parsed.
type rawDeck struct {
	Title    string         `yaml:"title"`
	Phases   []string       `yaml:"phases"`
	Grid     GridSpec       `yaml:"grid"`
	Pressure map[string]any `yaml:"pressure"`
	Wells    []WellSpec     `yaml:"wells"`
}

// Parse decodes a YAML deck. It reports syntax and shape problems;
// semantic checks live in Validate.
func Parse(data []byte) (*Deck, error) {
	var raw rawDeck
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	d := &Deck{
		Title:  raw.Title,
		Phases: raw.Phases,
		Grid:   raw.Grid,
		Wells:  raw.Wells,
	}
	if raw.Pressure != nil {
		if err := mapstructure.Decode(raw.Pressure, &d.Pressure); err != nil {
			return nil, fmt.Errorf("failed to parse pressure section: %w", err)
		}
	}
	return d, nil
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
