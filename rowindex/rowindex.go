package rowindex

import (
	"github.com/mwinters-dev/latinsquare/colordomain"
	"github.com/mwinters-dev/latinsquare/evaluator"
	"github.com/mwinters-dev/latinsquare/indexset"
)

// Index holds, per row, the non-fixed columns split between Conflict (the
// cell's color is repeated elsewhere in its column) and NonConflict.
type Index struct {
	n           int
	conflict    []*indexset.IndexSet
	nonConflict []*indexset.IndexSet
}

// Build computes an Index from scratch for grid, using eval's ColColorCount
// table to decide, per non-fixed cell, whether its column currently repeats
// its color.
func Build(grid [][]int, eval *evaluator.Evaluator, cd *colordomain.ColorDomain) *Index {
	n := cd.N()
	idx := &Index{n: n, conflict: make([]*indexset.IndexSet, n), nonConflict: make([]*indexset.IndexSet, n)}
	for i := 0; i < n; i++ {
		idx.conflict[i], _ = indexset.New(n)
		idx.nonConflict[i], _ = indexset.New(n)
		for j := 0; j < n; j++ {
			if cd.IsFixed(i, j) {
				continue
			}
			if eval.ColorCount(grid[i][j], j) > 1 {
				idx.conflict[i].Insert(j)
			} else {
				idx.nonConflict[i].Insert(j)
			}
		}
	}
	return idx
}

// Conflict returns the set of conflicting, non-fixed columns for row i.
func (idx *Index) Conflict(row int) *indexset.IndexSet { return idx.conflict[row] }

// NonConflict returns the set of non-conflicting, non-fixed columns for row i.
func (idx *Index) NonConflict(row int) *indexset.IndexSet { return idx.nonConflict[row] }

// TotalConflictingCells sums the sizes of every row's conflict set.
func (idx *Index) TotalConflictingCells() int {
	total := 0
	for _, s := range idx.conflict {
		total += s.Len()
	}
	return total
}

// Refresh migrates each column named in affected between a row's conflict
// and non-conflict sets to match eval's post-move state. It must be called
// with the same affected list evaluator.Apply returned for the move that
// was just applied, and after that Apply call.
func (idx *Index) Refresh(eval *evaluator.Evaluator, cd *colordomain.ColorDomain, affected []evaluator.AffectedCell) {
	for _, a := range affected {
		rows := eval.RowsWithColor(a.Color, a.Col)
		isConflict := rows.Len() > 1
		for _, r := range rows.Elements() {
			if cd.IsFixed(r, a.Col) {
				continue
			}
			if isConflict {
				if idx.nonConflict[r].Contains(a.Col) {
					idx.nonConflict[r].Erase(a.Col)
					idx.conflict[r].Insert(a.Col)
				}
			} else {
				if idx.conflict[r].Contains(a.Col) {
					idx.conflict[r].Erase(a.Col)
					idx.nonConflict[r].Insert(a.Col)
				}
			}
		}
	}
}
