package wells

import "fmt"

// WellType distinguishes the flow direction of a well.
type WellType int

const (
	// Injector pushes fluid into the reservoir.
	Injector WellType = iota
	// Producer draws fluid out of the reservoir.
	Producer
)

// String returns the lowercase name of the well type.
func (t WellType) String() string {
	switch t {
	case Injector:
		return "injector"
	case Producer:
		return "producer"
	default:
		return fmt.Sprintf("WellType(%d)", int(t))
	}
}

// Valid reports whether t is a known well type.
func (t WellType) Valid() bool {
	return t == Injector || t == Producer
}

// Well is a single injection or production point. It connects the surface
// to one or more reservoir grid cells through perforations, and carries an
// ordered stack of operating controls of which exactly one is current.
type Well struct {
	// Name identifies the well in decks and reports.
	Name string

	// Type is Injector or Producer.
	Type WellType

	// Cells lists the perforated grid cells, topmost connection first.
	Cells []int

	// Controls is the ordered control stack.
	Controls []Control

	// Current indexes the active control within Controls.
	Current int

	// Stopped marks a well that is shut in but still part of the model.
	Stopped bool
}

// CurrentControl returns the active control.
// The well must hold at least one control; Fleet.Validate enforces this.
func (w *Well) CurrentControl() Control {
	return w.Controls[w.Current]
}

// FirstCell returns the grid cell of the topmost perforation.
func (w *Well) FirstCell() int {
	return w.Cells[0]
}

// Fleet is the full set of wells in a simulation run, together with the
// number of fluid phases the run models. Read-only to downstream consumers.
type Fleet struct {
	// Phases is the number of fluid phases (e.g. 2 for water/oil).
	Phases int

	// Wells holds the wells in deck order.
	Wells []Well
}

// NumConns returns the total perforation count across all wells.
func (f *Fleet) NumConns() int {
	n := 0
	for i := range f.Wells {
		n += len(f.Wells[i].Cells)
	}
	return n
}

// Validate checks the structural preconditions the state initializer relies
// on: known well types, at least one perforation and one control per well, a
// current-control index inside the stack, and surface-rate distributions
// with one weight per phase summing to one. It returns the first violation
// found, wrapped with the well name.
func (f *Fleet) Validate() error {
	if f.Phases <= 0 {
		return fmt.Errorf("fleet declares %d phases: %w", f.Phases, ErrPhases)
	}
	for i := range f.Wells {
		w := &f.Wells[i]
		if !w.Type.Valid() {
			return fmt.Errorf("well %q: type %d: %w", w.Name, int(w.Type), ErrWellType)
		}
		if len(w.Cells) == 0 {
			return fmt.Errorf("well %q: %w", w.Name, ErrNoConnections)
		}
		if len(w.Controls) == 0 {
			return fmt.Errorf("well %q: %w", w.Name, ErrNoControls)
		}
		if w.Current < 0 || w.Current >= len(w.Controls) {
			return fmt.Errorf("well %q: current control %d of %d: %w",
				w.Name, w.Current, len(w.Controls), ErrControlIndex)
		}
		for c := range w.Controls {
			if err := w.Controls[c].validate(f.Phases); err != nil {
				return fmt.Errorf("well %q control %d: %w", w.Name, c, err)
			}
		}
	}
	return nil
}
