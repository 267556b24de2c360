package grid

import (
	"errors"
	"fmt"
)

// ErrDimensions is returned when a grid is constructed with a non-positive extent.
var ErrDimensions = errors.New("grid dimensions must be positive")

// ErrTopology is returned when vertical connectivity is inconsistent, e.g.
// two active cells claim the same logical (i,j,k) slot.
var ErrTopology = errors.New("inconsistent vertical topology")

// Topology is the read-only view of a grid the column extractor consumes.
// Cell ids are dense in [0, NumCells).
type Topology interface {
	// NumCells returns the total cell count, active or not.
	NumCells() int

	// Coord returns the logical (i, j, k) position of a cell.
	// k increases with depth.
	Coord(cell int) (i, j, k int)

	// Active reports whether the cell takes part in the simulation.
	Active(cell int) bool
}

// Cartesian is a structured nx*ny*nz grid with natural cell numbering:
// cell id = i + j*nx + k*nx*ny. All cells start active; individual cells
// can be switched off to model irregular reservoirs.
type Cartesian struct {
	nx, ny, nz int
	inactive   map[int]bool
}

// NewCartesian builds a structured grid with the given extents.
func NewCartesian(nx, ny, nz int) (*Cartesian, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%dx%dx%d: %w", nx, ny, nz, ErrDimensions)
	}
	return &Cartesian{nx: nx, ny: ny, nz: nz}, nil
}

// Dims returns the grid extents.
func (g *Cartesian) Dims() (nx, ny, nz int) {
	return g.nx, g.ny, g.nz
}

// NumCells returns nx*ny*nz.
func (g *Cartesian) NumCells() int {
	return g.nx * g.ny * g.nz
}

// CellID maps logical coordinates to the natural cell id.
func (g *Cartesian) CellID(i, j, k int) int {
	return i + j*g.nx + k*g.nx*g.ny
}

// Coord inverts CellID.
func (g *Cartesian) Coord(cell int) (i, j, k int) {
	i = cell % g.nx
	j = (cell / g.nx) % g.ny
	k = cell / (g.nx * g.ny)
	return i, j, k
}

// Active reports whether the cell has not been deactivated.
func (g *Cartesian) Active(cell int) bool {
	return !g.inactive[cell]
}

// Deactivate removes cells from the active set. Out-of-range ids are ignored.
func (g *Cartesian) Deactivate(cells ...int) {
	if g.inactive == nil {
		g.inactive = make(map[int]bool, len(cells))
	}
	for _, c := range cells {
		if c >= 0 && c < g.NumCells() {
			g.inactive[c] = true
		}
	}
}
