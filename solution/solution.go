package solution

import "github.com/mwinters-dev/latinsquare/colordomain"

// Solution is a candidate n x n completion together with its conflict
// counters. RowConflict and ColumnConflict each count C(k, 2) conflicting
// pairs for every color repeated k times within a row or column
// respectively; TotalConflict is their sum. DomainConflict counts cells
// whose current color is no longer a member of that cell's propagated
// BitDomain (only possible for non-fixed cells a move has touched).
type Solution struct {
	Grid           [][]int
	RowConflict    int
	ColumnConflict int
	TotalConflict  int
	DomainConflict int
}

func pairConflicts(counts []int) int {
	total := 0
	for _, k := range counts {
		if k > 1 {
			total += k * (k - 1) / 2
		}
	}
	return total
}

// New computes a Solution's conflict counters from scratch given a grid and
// the ColorDomain it was drawn from.
func New(grid [][]int, cd *colordomain.ColorDomain) *Solution {
	n := len(grid)
	s := &Solution{Grid: grid}

	counts := make([]int, n)
	for i := 0; i < n; i++ {
		for k := range counts {
			counts[k] = 0
		}
		for j := 0; j < n; j++ {
			counts[grid[i][j]]++
		}
		s.RowConflict += pairConflicts(counts)
	}

	for j := 0; j < n; j++ {
		for k := range counts {
			counts[k] = 0
		}
		for i := 0; i < n; i++ {
			counts[grid[i][j]]++
		}
		s.ColumnConflict += pairConflicts(counts)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !cd.Domain(i, j).Contains(grid[i][j]) {
				s.DomainConflict++
			}
		}
	}

	s.TotalConflict = s.RowConflict + s.ColumnConflict
	return s
}

// Clone returns a deep copy of s.
func (s *Solution) Clone() *Solution {
	grid := make([][]int, len(s.Grid))
	for i, row := range s.Grid {
		grid[i] = append([]int(nil), row...)
	}
	return &Solution{
		Grid:           grid,
		RowConflict:    s.RowConflict,
		ColumnConflict: s.ColumnConflict,
		TotalConflict:  s.TotalConflict,
		DomainConflict: s.DomainConflict,
	}
}

// Less implements the (TotalConflict, DomainConflict) lexicographic order
// search uses to rank candidates: lower total conflict wins; ties break on
// lower domain conflict.
func (s *Solution) Less(other *Solution) bool {
	if s.TotalConflict != other.TotalConflict {
		return s.TotalConflict < other.TotalConflict
	}
	return s.DomainConflict < other.DomainConflict
}

// LessOrEqual is Less with equality, used by tabu search to replace the best
// known solution with the current one when it matches or beats it.
func (s *Solution) LessOrEqual(other *Solution) bool {
	if s.TotalConflict != other.TotalConflict {
		return s.TotalConflict < other.TotalConflict
	}
	return s.DomainConflict <= other.DomainConflict
}

// IsOptimal reports whether s is a valid, fully consistent completion: zero
// color conflicts and zero domain conflicts.
func (s *Solution) IsOptimal() bool {
	return s.TotalConflict == 0 && s.DomainConflict == 0
}
