package deck

import "fmt"

// Pressure kinds accepted in deck files.
const (
	PressUniform  = "uniform"
	PressGradient = "gradient"
	PressCells    = "cells"
)

// Validate checks the deck's structure: spellings, ranges and array shapes.
// It collects every failure into an AggregateError rather than stopping at
// the first. Semantic well invariants (distribution sums, control indices)
// are re-checked by wells.Fleet.Validate during Build.
func (d *Deck) Validate() error {
	var errs []error
	fail := func(field, reason string, value any) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason, Value: value})
	}

	if len(d.Phases) == 0 {
		fail("phases", "at least one phase is required", nil)
	}

	g := d.Grid
	if g.NX <= 0 || g.NY <= 0 || g.NZ <= 0 {
		fail("grid", "extents must be positive", fmt.Sprintf("%dx%dx%d", g.NX, g.NY, g.NZ))
	}
	ncells := g.NX * g.NY * g.NZ
	for _, c := range g.Inactive {
		if c < 0 || c >= ncells {
			fail("grid.inactive", "cell id out of range", c)
		}
	}

	switch d.Pressure.Kind {
	case PressUniform, PressGradient:
	case PressCells:
		if len(d.Pressure.Cells) != ncells {
			fail("pressure.cells", fmt.Sprintf("need %d entries", ncells), len(d.Pressure.Cells))
		}
	case "":
		fail("pressure.kind", "required", nil)
	default:
		fail("pressure.kind", "must be uniform, gradient or cells", d.Pressure.Kind)
	}

	for i, w := range d.Wells {
		at := func(part string) string { return fmt.Sprintf("wells[%d].%s", i, part) }
		if w.Name == "" {
			fail(at("name"), "required", nil)
		}
		if _, err := parseWellType(w.Type); err != nil {
			fail(at("type"), "must be injector or producer", w.Type)
		}
		if len(w.Cells) == 0 {
			fail(at("cells"), "at least one perforated cell is required", nil)
		}
		for _, c := range w.Cells {
			if c < 0 || c >= ncells {
				fail(at("cells"), "cell id out of range", c)
			}
		}
		if len(w.Controls) == 0 {
			fail(at("controls"), "at least one control is required", nil)
		} else if w.Current < 0 || w.Current >= len(w.Controls) {
			fail(at("current"), "index outside control stack", w.Current)
		}
		for c, ctl := range w.Controls {
			if _, err := parseControlKind(ctl.Kind); err != nil {
				fail(fmt.Sprintf("wells[%d].controls[%d].kind", i, c),
					"unknown control kind", ctl.Kind)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
