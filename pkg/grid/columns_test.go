package grid_test

import (
	"errors"
	"testing"

	"github.com/stratumsim/stratum/pkg/grid"
)

func mustCartesian(t *testing.T, nx, ny, nz int) *grid.Cartesian {
	t.Helper()
	g, err := grid.NewCartesian(nx, ny, nz)
	if err != nil {
		t.Fatalf("NewCartesian(%d,%d,%d) error = %v", nx, ny, nz, err)
	}
	return g
}

func TestExtractColumns_SingleColumn(t *testing.T) {
	g := mustCartesian(t, 1, 1, 10)

	cols, err := grid.ExtractColumns(g)
	if err != nil {
		t.Fatalf("ExtractColumns error = %v", err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d columns, want 1", len(cols))
	}
	for k := 0; k < 10; k++ {
		if cols[0][k] != k {
			t.Errorf("cols[0][%d] = %d, want %d", k, cols[0][k], k)
		}
	}
}

func TestExtractColumns_FourByFour(t *testing.T) {
	const nx, ny, nz = 4, 4, 10
	g := mustCartesian(t, nx, ny, nz)

	cols, err := grid.ExtractColumns(g)
	if err != nil {
		t.Fatalf("ExtractColumns error = %v", err)
	}
	if len(cols) != nx*ny {
		t.Fatalf("got %d columns, want %d", len(cols), nx*ny)
	}
	for c := 0; c < nx*ny; c++ {
		if len(cols[c]) != nz {
			t.Fatalf("column %d has %d cells, want %d", c, len(cols[c]), nz)
		}
		for k := 0; k < nz; k++ {
			want := c + k*nx*ny
			if cols[c][k] != want {
				t.Errorf("cols[%d][%d] = %d, want %d", c, k, cols[c][k], want)
			}
		}
	}
}

func TestExtractColumns_InactiveCellsSkipped(t *testing.T) {
	g := mustCartesian(t, 2, 1, 3)
	// Knock out the middle cell of column (0,0): ids 0, 2, 4.
	g.Deactivate(2)

	cols, err := grid.ExtractColumns(g)
	if err != nil {
		t.Fatalf("ExtractColumns error = %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("got %d columns, want 2", len(cols))
	}
	want0 := []int{0, 4}
	if len(cols[0]) != 2 || cols[0][0] != want0[0] || cols[0][1] != want0[1] {
		t.Errorf("cols[0] = %v, want %v", cols[0], want0)
	}
}

func TestExtractColumns_FullyInactiveColumnOmitted(t *testing.T) {
	g := mustCartesian(t, 2, 1, 2)
	// Column (1,0) is cells 1 and 3; deactivate both.
	g.Deactivate(1, 3)

	cols, err := grid.ExtractColumns(g)
	if err != nil {
		t.Fatalf("ExtractColumns error = %v", err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d columns, want 1", len(cols))
	}
}

// dupTopo places two cells in the same (i,j,k) slot, the flattened analogue
// of a cell with two below-neighbors.
type dupTopo struct{}

func (dupTopo) NumCells() int { return 3 }

func (dupTopo) Active(int) bool { return true }

func (dupTopo) Coord(cell int) (int, int, int) {
	if cell == 2 {
		return 0, 0, 1
	}
	return 0, 0, cell
}

func TestExtractColumns_InconsistentTopology(t *testing.T) {
	_, err := grid.ExtractColumns(dupTopo{})
	if !errors.Is(err, grid.ErrTopology) {
		t.Fatalf("error = %v, want ErrTopology", err)
	}
}
