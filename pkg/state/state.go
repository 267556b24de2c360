package state

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/stratumsim/stratum/pkg/wells"
)

const (
	// PressureUnset marks a pressure that carries no physically meaningful
	// value yet. It sits far outside any real pressure range so downstream
	// code cannot mistake it for data.
	PressureUnset = -1e100

	// DefaultTemperature is assigned to every well at initialization
	// (standard temperature, 20 degrees C).
	DefaultTemperature = 273.15 + 20

	// seedRate primes phase rates when no rate control constrains them.
	// The magnitude is negligible; only the sign matters, so that
	// flow-direction branching behaves before the solver converges.
	seedRate = 1e-14
)

// WellState holds the dynamic per-well state of a simulation run: one bhp,
// thp and temperature per well, one rate per (well, phase) pair, and one
// rate and pressure per perforation. It is created once per run by Init and
// then mutated in place by the solver at every timestep; the initializer
// never retains an alias past the call.
type WellState struct {
	// Bhp is the bottom-hole pressure, one per well.
	Bhp []float64

	// Thp is the tubing-head pressure, one per well.
	Thp []float64

	// Temperature is one value per well.
	Temperature []float64

	// WellRates holds one rate per (well, phase) pair, well-major:
	// the rates of well w occupy WellRates[w*phases : (w+1)*phases].
	WellRates []float64

	// PerfRates holds one rate per perforation, flattened in well order
	// then connection order. Not consistent with Bhp/WellRates after Init;
	// the solver reconciles them.
	PerfRates []float64

	// PerfPress holds one pressure per perforation, same flattening as
	// PerfRates. Filled with PressureUnset by Init.
	PerfPress []float64

	phases int
}

// NumPhases returns the phase count the rate arrays were sized for.
func (s *WellState) NumPhases() int {
	return s.phases
}

// Rates returns the phase-rate slice of well w, aliasing WellRates.
func (s *WellState) Rates(w int) []float64 {
	return s.WellRates[w*s.phases : (w+1)*s.phases]
}

// PressureField supplies the ambient reservoir pressure by grid cell id.
// It must cover at least every cell referenced as a well's first connection.
type PressureField interface {
	Pressure(cell int) float64
}

// CellPressures adapts a plain slice indexed by cell id.
type CellPressures []float64

// Pressure returns the value stored for the cell.
func (p CellPressures) Pressure(cell int) float64 {
	return p[cell]
}

// Init allocates a WellState for the fleet and derives initial values from
// each well's controls and the ambient pressure at its first perforation.
//
// A nil or empty fleet is not an error: the result has all arrays empty.
// Init fails if a well's type is unknown or a well has no perforations;
// both signal malformed input, surfaced synchronously and never substituted
// with defaults. It does not mutate the fleet or the pressure field.
//
// Per well the policy is:
//
//   - Stopped: all phase rates zero. A current BHP or THP control supplies
//     bhp or thp respectively; otherwise bhp is the ambient pressure at the
//     first perforation cell and thp is PressureUnset.
//   - Open: a current SurfaceRate control seeds each phase rate with
//     target * distribution; otherwise every phase gets a tiny rate whose
//     sign is positive for injectors, negative for producers. Both bhp and
//     thp start at PressureUnset, then the whole control stack is scanned
//     and any BHP or THP target recorded (last one scanned wins). If the
//     current control is neither BHP nor THP, bhp is overridden with the
//     ambient first-cell pressure scaled by 1.01 (injector) or 0.99
//     (producer).
//
// Every well gets DefaultTemperature. PerfRates is zero-filled and
// PerfPress filled with PressureUnset; the two are explicitly not
// consistent with Bhp/WellRates until the first solver step.
func Init(fleet *wells.Fleet, press PressureField) (*WellState, error) {
	if fleet == nil || len(fleet.Wells) == 0 {
		return &WellState{}, nil
	}

	nw := len(fleet.Wells)
	np := fleet.Phases
	s := &WellState{
		Bhp:         make([]float64, nw),
		Thp:         make([]float64, nw),
		Temperature: make([]float64, nw),
		WellRates:   make([]float64, nw*np),
		phases:      np,
	}

	for wi := range fleet.Wells {
		w := &fleet.Wells[wi]
		if !w.Type.Valid() {
			return nil, fmt.Errorf("well %q: type %d: %w", w.Name, int(w.Type), wells.ErrWellType)
		}
		if len(w.Cells) == 0 {
			return nil, fmt.Errorf("well %q: %w", w.Name, wells.ErrNoConnections)
		}

		if w.Stopped {
			s.initStopped(wi, w, press)
		} else {
			s.initOpen(wi, w, press)
		}
		s.Temperature[wi] = DefaultTemperature
	}

	nconn := fleet.NumConns()
	s.PerfRates = make([]float64, nconn)
	s.PerfPress = make([]float64, nconn)
	for i := range s.PerfPress {
		s.PerfPress[i] = PressureUnset
	}
	return s, nil
}

// initStopped handles a shut-in well: rates stay zero (the backing array is
// freshly allocated) and pressures follow the current control only.
func (s *WellState) initStopped(wi int, w *wells.Well, press PressureField) {
	switch ctl := w.CurrentControl(); ctl.Kind {
	case wells.BHP:
		// Thp[wi] keeps its zero value here, not PressureUnset. Restart
		// records depend on this exact output, so it stays as is.
		s.Bhp[wi] = ctl.Target
	case wells.THP:
		s.Thp[wi] = ctl.Target
	default:
		s.Bhp[wi] = press.Pressure(w.FirstCell())
		s.Thp[wi] = PressureUnset
	}
}

// initOpen handles a flowing well: seed rates from the current control,
// collect explicit BHP/THP targets from the whole stack, then fall back to
// an ambient-offset bhp when the active constraint is rate-like.
func (s *WellState) initOpen(wi int, w *wells.Well, press PressureField) {
	rates := s.Rates(wi)
	ctl := w.CurrentControl()

	if ctl.Kind == wells.SurfaceRate {
		copy(rates, ctl.Distribution)
		floats.Scale(ctl.Target, rates)
	} else {
		seed := seedRate
		if w.Type == wells.Producer {
			seed = -seedRate
		}
		for p := range rates {
			rates[p] = seed
		}
	}

	// Assumes at most one BHP and one THP control per stack; if there are
	// several, the last scanned wins.
	s.Bhp[wi] = PressureUnset
	s.Thp[wi] = PressureUnset
	for _, c := range w.Controls {
		switch c.Kind {
		case wells.BHP:
			s.Bhp[wi] = c.Target
		case wells.THP:
			s.Thp[wi] = c.Target
		}
	}

	switch ctl.Kind {
	case wells.BHP, wells.THP:
		// The stack scan already supplied the authoritative value.
	default:
		factor := 0.99
		if w.Type == wells.Injector {
			factor = 1.01
		}
		s.Bhp[wi] = factor * press.Pressure(w.FirstCell())
	}
}
