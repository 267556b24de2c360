package grid

import (
	"fmt"
	"sort"
)

// ExtractColumns partitions the active cells of a grid into vertical columns.
// Each column holds the cell ids sharing one horizontal (i,j) position,
// ordered by strictly increasing k (depth). Columns with no active cell are
// omitted. Column output order is ascending (j, i) — for a fully active
// Cartesian grid this makes column i+j*nx hold cells {i + j*nx + k*nx*ny}.
// Callers must rely only on intra-column ordering and completeness, not on
// inter-column order.
//
// It fails with ErrTopology if two active cells occupy the same (i,j,k)
// slot, which indicates malformed vertical connectivity.
func ExtractColumns(topo Topology) ([][]int, error) {
	type slot struct{ i, j int }

	cells := make(map[slot][]int)
	for c := 0; c < topo.NumCells(); c++ {
		if !topo.Active(c) {
			continue
		}
		i, j, _ := topo.Coord(c)
		s := slot{i, j}
		cells[s] = append(cells[s], c)
	}

	order := make([]slot, 0, len(cells))
	for s := range cells {
		order = append(order, s)
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].j != order[b].j {
			return order[a].j < order[b].j
		}
		return order[a].i < order[b].i
	})

	columns := make([][]int, 0, len(order))
	for _, s := range order {
		col := cells[s]
		sort.Slice(col, func(a, b int) bool {
			_, _, ka := topo.Coord(col[a])
			_, _, kb := topo.Coord(col[b])
			return ka < kb
		})
		for n := 1; n < len(col); n++ {
			_, _, prev := topo.Coord(col[n-1])
			_, _, cur := topo.Coord(col[n])
			if prev == cur {
				return nil, fmt.Errorf("cells %d and %d both occupy (%d,%d,%d): %w",
					col[n-1], col[n], s.i, s.j, cur, ErrTopology)
			}
		}
		columns = append(columns, col)
	}
	return columns, nil
}
