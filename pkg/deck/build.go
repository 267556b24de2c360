package deck

import (
	"fmt"

	"github.com/stratumsim/stratum/pkg/grid"
	"github.com/stratumsim/stratum/pkg/state"
	"github.com/stratumsim/stratum/pkg/wells"
)

// Build validates the deck and constructs the typed simulation model: the
// well fleet, the grid, and the ambient pressure field.
func (d *Deck) Build() (*wells.Fleet, *grid.Cartesian, state.PressureField, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, nil, err
	}

	g, err := grid.NewCartesian(d.Grid.NX, d.Grid.NY, d.Grid.NZ)
	if err != nil {
		return nil, nil, nil, err
	}
	g.Deactivate(d.Grid.Inactive...)

	fleet := &wells.Fleet{
		Phases: len(d.Phases),
		Wells:  make([]wells.Well, len(d.Wells)),
	}
	for i, ws := range d.Wells {
		wt, err := parseWellType(ws.Type)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("well %q: %w", ws.Name, err)
		}
		ctls := make([]wells.Control, len(ws.Controls))
		for c, cs := range ws.Controls {
			kind, err := parseControlKind(cs.Kind)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("well %q control %d: %w", ws.Name, c, err)
			}
			ctls[c] = wells.Control{
				Kind:         kind,
				Target:       cs.Target,
				Distribution: cs.Distribution,
			}
		}
		fleet.Wells[i] = wells.Well{
			Name:     ws.Name,
			Type:     wt,
			Cells:    ws.Cells,
			Controls: ctls,
			Current:  ws.Current,
			Stopped:  ws.Stopped,
		}
	}
	if err := fleet.Validate(); err != nil {
		return nil, nil, nil, err
	}

	press, err := d.pressureField(g)
	if err != nil {
		return nil, nil, nil, err
	}
	return fleet, g, press, nil
}

func (d *Deck) pressureField(g *grid.Cartesian) (state.PressureField, error) {
	switch d.Pressure.Kind {
	case PressUniform:
		return uniformField(d.Pressure.Value), nil
	case PressGradient:
		return &gradientField{top: d.Pressure.Value, step: d.Pressure.Step, grid: g}, nil
	case PressCells:
		return state.CellPressures(d.Pressure.Cells), nil
	default:
		return nil, fmt.Errorf("unknown pressure kind %q", d.Pressure.Kind)
	}
}

// uniformField reports the same ambient pressure for every cell.
type uniformField float64

func (u uniformField) Pressure(int) float64 {
	return float64(u)
}

// gradientField grows the ambient pressure linearly with layer depth.
type gradientField struct {
	top  float64
	step float64
	grid *grid.Cartesian
}

func (f *gradientField) Pressure(cell int) float64 {
	_, _, k := f.grid.Coord(cell)
	return f.top + f.step*float64(k)
}

func parseWellType(s string) (wells.WellType, error) {
	switch s {
	case "injector":
		return wells.Injector, nil
	case "producer":
		return wells.Producer, nil
	default:
		return 0, fmt.Errorf("unknown well type %q", s)
	}
}

func parseControlKind(s string) (wells.ControlKind, error) {
	switch s {
	case "bhp":
		return wells.BHP, nil
	case "thp":
		return wells.THP, nil
	case "surface_rate":
		return wells.SurfaceRate, nil
	case "reservoir_rate":
		return wells.ReservoirRate, nil
	default:
		return 0, fmt.Errorf("unknown control kind %q", s)
	}
}
