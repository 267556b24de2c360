package stratum

import (
	"fmt"
	"log/slog"

	"github.com/stratumsim/stratum/internal/logging"
	"github.com/stratumsim/stratum/pkg/deck"
	"github.com/stratumsim/stratum/pkg/grid"
	"github.com/stratumsim/stratum/pkg/state"
	"github.com/stratumsim/stratum/pkg/wells"
)

// Version is the library version, reported by the CLI.
const Version = "0.2.0"

// Model is the high-level entry point for the stratum library. It bundles
// the typed pieces built from one simulation deck and offers the two core
// computations on top of them.
type Model struct {
	Fleet    *wells.Fleet
	Grid     *grid.Cartesian
	Pressure state.PressureField

	// PhaseNames are the deck's phase labels, in rate-array order.
	PhaseNames []string

	logger *slog.Logger
}

// Option configures a Model during Load.
type Option func(*Model)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// Load reads a deck file, validates it and builds the simulation model.
func Load(path string, opts ...Option) (*Model, error) {
	m := &Model{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	fleet, g, press, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	m.Fleet, m.Grid, m.Pressure = fleet, g, press
	m.PhaseNames = d.Phases

	nx, ny, nz := g.Dims()
	m.logger.Info("deck loaded",
		"title", d.Title,
		"wells", len(fleet.Wells),
		"phases", fleet.Phases,
		"grid", fmt.Sprintf("%dx%dx%d", nx, ny, nz))
	return m, nil
}

// InitialState derives the initial per-well state from the model's
// controls and ambient pressure.
func (m *Model) InitialState() (*state.WellState, error) {
	return state.Init(m.Fleet, m.Pressure)
}

// Columns partitions the model's grid into depth-ordered vertical columns.
func (m *Model) Columns() ([][]int, error) {
	return grid.ExtractColumns(m.Grid)
}
