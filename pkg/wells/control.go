package wells

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ControlKind enumerates the closed set of well operating constraints.
// The state initializer switches exhaustively on this set; adding a kind
// is a compile-visible change, not a runtime dispatch concern.
type ControlKind int

const (
	// BHP targets a bottom-hole pressure.
	BHP ControlKind = iota
	// THP targets a tubing-head (surface) pressure.
	THP
	// SurfaceRate targets a total surface volumetric rate, split across
	// phases by the control's Distribution.
	SurfaceRate
	// ReservoirRate targets a rate at reservoir conditions. It constrains
	// neither pressures nor surface phase rates during initialization.
	ReservoirRate
)

// String returns the deck spelling of the control kind.
func (k ControlKind) String() string {
	switch k {
	case BHP:
		return "bhp"
	case THP:
		return "thp"
	case SurfaceRate:
		return "surface_rate"
	case ReservoirRate:
		return "reservoir_rate"
	default:
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
}

// distrTol bounds the acceptable drift of a phase distribution away from
// an exact sum of one (deck files carry rounded decimals).
const distrTol = 1e-9

// Control is one operating constraint on a well: a kind, a scalar target,
// and, for SurfaceRate only, the per-phase split of the target.
type Control struct {
	Kind   ControlKind
	Target float64

	// Distribution weights the target across phases. Required for
	// SurfaceRate (one entry per phase, summing to 1), ignored otherwise.
	Distribution []float64
}

func (c *Control) validate(phases int) error {
	if c.Kind != SurfaceRate {
		return nil
	}
	if len(c.Distribution) != phases {
		return fmt.Errorf("distribution has %d entries for %d phases: %w",
			len(c.Distribution), phases, ErrDistribution)
	}
	if s := floats.Sum(c.Distribution); math.Abs(s-1) > distrTol {
		return fmt.Errorf("distribution sums to %v: %w", s, ErrDistribution)
	}
	return nil
}
