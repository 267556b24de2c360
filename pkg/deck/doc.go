/*
Package deck loads YAML simulation decks and builds the typed model the
core packages consume.

A deck declares the run's phases, the structured grid (extents plus
inactive cells), the ambient pressure field (uniform, depth gradient, or
explicit per-cell values) and the wells with their control stacks. Parse
handles syntax, Validate collects every structural problem into a single
AggregateError, and Build produces the wells.Fleet, grid.Cartesian and
state.PressureField for the run.
*/
package deck
