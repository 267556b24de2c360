/*
Package state owns the per-well dynamic state of a simulation run and the
policy for deriving initial values from well controls.

Init reconciles three orthogonal axes — stopped vs. open, active control
kind, injector vs. producer — and guarantees physically sane signs and
magnitudes even when the active control does not directly constrain a
field. The resulting WellState is a plain aggregate of flat float64 slices
that the solver mutates in place for the rest of the run.

Initialization is a pure, synchronous computation. Independent WellState
instances may be initialized concurrently; a single instance must not be
shared with concurrent writers.
*/
package state
