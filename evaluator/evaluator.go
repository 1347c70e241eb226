package evaluator

import (
	"github.com/mwinters-dev/latinsquare/colordomain"
	"github.com/mwinters-dev/latinsquare/indexset"
)

// Move swaps the colors at (row, col1) and (row, col2).
type Move struct {
	Row  int
	Col1 int
	Col2 int
}

// AffectedCell names a (color, col) pair whose ColColorCount entry changed
// as the result of applying a move.
type AffectedCell struct {
	Color int
	Col   int
}

// Evaluator holds the ColColorCount and DomainFit auxiliary tables for a
// grid evaluated against a ColorDomain, and answers O(1) conflict-delta
// queries for row-swap moves.
type Evaluator struct {
	n             int
	colColorCount [][]*indexset.IndexSet // [color][col] -> rows currently holding color in col
	domainFit     [][]bool                // [row][col] -> true if grid[row][col] is in domain(row,col)
	cd            *colordomain.ColorDomain
}

// New builds an Evaluator's tables from scratch for grid against cd.
func New(grid [][]int, cd *colordomain.ColorDomain) (*Evaluator, error) {
	n := cd.N()
	if len(grid) != n {
		return nil, ErrDimensionMismatch
	}
	e := &Evaluator{n: n, cd: cd}
	e.colColorCount = make([][]*indexset.IndexSet, n)
	for c := 0; c < n; c++ {
		e.colColorCount[c] = make([]*indexset.IndexSet, n)
		for j := 0; j < n; j++ {
			s, err := indexset.New(n)
			if err != nil {
				return nil, err
			}
			e.colColorCount[c][j] = s
		}
	}
	e.domainFit = make([][]bool, n)
	for i := 0; i < n; i++ {
		if len(grid[i]) != n {
			return nil, ErrDimensionMismatch
		}
		e.domainFit[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			color := grid[i][j]
			e.colColorCount[color][j].Insert(i)
			e.domainFit[i][j] = cd.Domain(i, j).Contains(color)
		}
	}
	return e, nil
}

// ColorCount returns the number of rows currently holding color in column j.
func (e *Evaluator) ColorCount(color, j int) int {
	return e.colColorCount[color][j].Len()
}

// RowsWithColor returns the set of rows whose cell in column j currently
// holds color. The returned IndexSet aliases internal state and must not be
// mutated by the caller.
func (e *Evaluator) RowsWithColor(color, j int) *indexset.IndexSet {
	return e.colColorCount[color][j]
}

// IsInDomain reports whether grid[i][j]'s current color is still a member
// of cell (i, j)'s propagated BitDomain.
func (e *Evaluator) IsInDomain(i, j int) bool {
	return e.domainFit[i][j]
}

// Delta1 returns the change in color-repeat conflict count that applying
// move to grid would cause, without mutating anything.
func (e *Evaluator) Delta1(grid [][]int, move Move) int {
	i, j1, j2 := move.Row, move.Col1, move.Col2
	c1, c2 := grid[i][j1], grid[i][j2]
	return -e.ColorCount(c1, j1) - e.ColorCount(c2, j2) + 2 +
		e.ColorCount(c2, j1) + e.ColorCount(c1, j2)
}

// Delta2 returns the change in domain-conflict count that applying move to
// grid would cause, without mutating anything.
func (e *Evaluator) Delta2(grid [][]int, move Move) int {
	i, j1, j2 := move.Row, move.Col1, move.Col2
	c1, c2 := grid[i][j1], grid[i][j2]

	before := 0
	if !e.domainFit[i][j1] {
		before++
	}
	if !e.domainFit[i][j2] {
		before++
	}

	after := 0
	if !e.cd.Domain(i, j1).Contains(c2) {
		after++
	}
	if !e.cd.Domain(i, j2).Contains(c1) {
		after++
	}

	return after - before
}

// Apply performs the swap described by move on grid and updates both
// tables to match, returning the (color, col) pairs whose ColColorCount
// entries changed so RowConflictIndex can refresh only the affected
// columns.
func (e *Evaluator) Apply(grid [][]int, move Move) []AffectedCell {
	i, j1, j2 := move.Row, move.Col1, move.Col2
	c1, c2 := grid[i][j1], grid[i][j2]

	e.colColorCount[c1][j1].Erase(i)
	e.colColorCount[c2][j2].Erase(i)
	e.colColorCount[c2][j1].Insert(i)
	e.colColorCount[c1][j2].Insert(i)

	grid[i][j1] = c2
	grid[i][j2] = c1

	e.domainFit[i][j1] = e.cd.Domain(i, j1).Contains(c2)
	e.domainFit[i][j2] = e.cd.Domain(i, j2).Contains(c1)

	return []AffectedCell{
		{Color: c1, Col: j1},
		{Color: c2, Col: j2},
		{Color: c2, Col: j1},
		{Color: c1, Col: j2},
	}
}
