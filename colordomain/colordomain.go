package colordomain

import (
	"math/rand"

	"github.com/mwinters-dev/latinsquare/bitdomain"
)

// Config carries the compile-time-ish tunables ColorDomain needs, in the
// Options-struct style the rest of this module follows.
type Config struct {
	// PropagationIterationCap bounds the fixpoint loop Simplify runs, as a
	// defensive backstop against a reduction-rule bug rather than a limit
	// any feasible instance is expected to hit.
	PropagationIterationCap int
}

// DefaultConfig returns the Config used when callers don't need to override
// the propagation cap.
func DefaultConfig() Config {
	return Config{PropagationIterationCap: 10000}
}

// ColorDomain is the n x n grid of candidate-color BitDomains plus the
// parallel grid of committed (fixed) values, -1 where a cell is still open.
type ColorDomain struct {
	n         int
	domain    [][]bitdomain.BitDomain
	committed [][]int
	fixedNum  int
	cfg       Config
}

// New returns a ColorDomain of size n with every cell's domain initialized
// to all n colors.
func New(n int, cfg Config) (*ColorDomain, error) {
	if n <= 0 || n > bitdomain.MaxBits {
		return nil, ErrInvalidSize
	}
	full, err := bitdomain.NewFull(n)
	if err != nil {
		return nil, err
	}
	cd := &ColorDomain{n: n, cfg: cfg}
	cd.domain = make([][]bitdomain.BitDomain, n)
	cd.committed = make([][]int, n)
	for i := 0; i < n; i++ {
		cd.domain[i] = make([]bitdomain.BitDomain, n)
		cd.committed[i] = make([]int, n)
		for j := 0; j < n; j++ {
			cd.domain[i][j] = full
			cd.committed[i][j] = -1
		}
	}
	return cd, nil
}

// N returns the grid size.
func (cd *ColorDomain) N() int { return cd.n }

// FixedNum returns the number of cells whose domain has collapsed to a
// single color.
func (cd *ColorDomain) FixedNum() int { return cd.fixedNum }

// TotalDomainSize sums the remaining domain sizes across the whole grid, a
// diagnostic measure of how much propagation has narrowed the search space.
func (cd *ColorDomain) TotalDomainSize() int {
	total := 0
	for i := 0; i < cd.n; i++ {
		for j := 0; j < cd.n; j++ {
			total += cd.domain[i][j].Count()
		}
	}
	return total
}

func (cd *ColorDomain) checkCell(i, j int) error {
	if i < 0 || i >= cd.n || j < 0 || j >= cd.n {
		return ErrOutOfRange
	}
	return nil
}

// IsFixed reports whether cell (i, j)'s domain has collapsed to one color.
func (cd *ColorDomain) IsFixed(i, j int) bool {
	return cd.domain[i][j].Count() == 1
}

// Committed returns the committed value for (i, j), or -1 if still open.
func (cd *ColorDomain) Committed(i, j int) int {
	return cd.committed[i][j]
}

// Domain returns the candidate BitDomain for (i, j).
func (cd *ColorDomain) Domain(i, j int) bitdomain.BitDomain {
	return cd.domain[i][j]
}

// SetFixed pre-assigns cell (i, j) to value, as a Latin-square instance's
// pre-fixed cells are loaded before Simplify runs: the cell's domain is
// narrowed to {value}, and Simplify later commits it and removes value from
// the rest of its row and column. Returns ErrConflictingFix if value is no
// longer a candidate for (i, j).
func (cd *ColorDomain) SetFixed(i, j, value int) error {
	if err := cd.checkCell(i, j); err != nil {
		return err
	}
	if value < 0 || value >= cd.n {
		return ErrOutOfRange
	}
	if !cd.domain[i][j].Contains(value) {
		return ErrConflictingFix
	}
	var d bitdomain.BitDomain
	d, _ = bitdomain.New(cd.n)
	_ = d.Insert(value)
	cd.domain[i][j] = d
	return nil
}

// fixCell commits (i, j) to value and removes value as a candidate from the
// rest of the row, and — when colNeeded — the rest of the column. Returns
// true if any domain became empty as a result (instance infeasibility).
func (cd *ColorDomain) fixCell(i, j, value int, colNeeded bool) (emptied bool) {
	if cd.committed[i][j] != value {
		var d bitdomain.BitDomain
		d, _ = bitdomain.New(cd.n)
		_ = d.Insert(value)
		cd.domain[i][j] = d
		cd.committed[i][j] = value
		cd.fixedNum++
	}
	for col := 0; col < cd.n; col++ {
		if col == j || cd.committed[i][col] != -1 {
			continue
		}
		_ = cd.domain[i][col].Erase(value)
		if cd.domain[i][col].IsEmpty() {
			emptied = true
		}
	}
	if colNeeded {
		for row := 0; row < cd.n; row++ {
			if row == i || cd.committed[row][j] != -1 {
				continue
			}
			_ = cd.domain[row][j].Erase(value)
			if cd.domain[row][j].IsEmpty() {
				emptied = true
			}
		}
	}
	return emptied
}

// applyReductionRules runs one pass of naked-single and hidden-single
// detection over the whole grid, fixing every cell it can. It reports
// whether any cell was newly fixed (progress was made) and whether any
// domain was emptied in the process.
func (cd *ColorDomain) applyReductionRules(colNeeded bool) (progressed, emptied bool) {
	n := cd.n

	// Naked singles: a domain already down to one color.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cd.committed[i][j] != -1 {
				continue
			}
			if cd.domain[i][j].Count() == 1 {
				v, _ := cd.domain[i][j].First()
				if cd.fixCell(i, j, v, colNeeded) {
					emptied = true
				}
				progressed = true
			}
		}
	}

	// Hidden singles, rows: a color that is a candidate in exactly one
	// non-fixed cell of the row must go there.
	for i := 0; i < n; i++ {
		for color := 0; color < n; color++ {
			candidateCol := -1
			count := 0
			for j := 0; j < n; j++ {
				if cd.committed[i][j] != -1 {
					continue
				}
				if cd.domain[i][j].Contains(color) {
					count++
					candidateCol = j
				}
			}
			if count == 1 {
				if cd.fixCell(i, candidateCol, color, colNeeded) {
					emptied = true
				}
				progressed = true
			}
		}
	}

	if !colNeeded {
		return progressed, emptied
	}

	// Hidden singles, columns: symmetric to the row pass above.
	for j := 0; j < n; j++ {
		for color := 0; color < n; color++ {
			candidateRow := -1
			count := 0
			for i := 0; i < n; i++ {
				if cd.committed[i][j] != -1 {
					continue
				}
				if cd.domain[i][j].Contains(color) {
					count++
					candidateRow = i
				}
			}
			if count == 1 {
				if cd.fixCell(candidateRow, j, color, colNeeded) {
					emptied = true
				}
				progressed = true
			}
		}
	}

	return progressed, emptied
}

// Simplify runs naked-single and hidden-single propagation to a fixpoint.
// It returns ErrEmptyDomain if propagation proves the instance infeasible,
// or ErrPropagationDidNotConverge if the fixpoint loop exceeds
// Config.PropagationIterationCap.
func (cd *ColorDomain) Simplify() error {
	cap := cd.cfg.PropagationIterationCap
	if cap <= 0 {
		cap = DefaultConfig().PropagationIterationCap
	}
	for iter := 0; iter < cap; iter++ {
		progressed, emptied := cd.applyReductionRules(true)
		if emptied {
			return ErrEmptyDomain
		}
		if !progressed {
			return nil
		}
	}
	return ErrPropagationDidNotConverge
}

// clone returns a deep copy of cd, used by InitialSolution so the receiver
// itself is never mutated and remains safe for concurrent reuse.
func (cd *ColorDomain) clone() *ColorDomain {
	out := &ColorDomain{n: cd.n, cfg: cd.cfg, fixedNum: cd.fixedNum}
	out.domain = make([][]bitdomain.BitDomain, cd.n)
	out.committed = make([][]int, cd.n)
	for i := 0; i < cd.n; i++ {
		out.domain[i] = append([]bitdomain.BitDomain(nil), cd.domain[i]...)
		out.committed[i] = append([]int(nil), cd.committed[i]...)
	}
	return out
}

// InitialSolution draws a randomized, row-feasible completion of cd using
// rng: every row is filled with each color used at most once, built by
// repeatedly picking the non-fixed cell with the smallest remaining domain
// (ties broken by lowest column index), drawing a uniformly random
// candidate from it, and removing that color from the rest of the row's
// working domains. After every commit, rows-only reduction rules are
// re-applied to a fixpoint before the next cell is picked, so a cell that
// becomes a naked or hidden single as a result of the commit is fixed
// before any further random draw can disturb it. Columns are not
// propagated here, so the result may still contain column conflicts — tabu
// search resolves those. cd itself is never mutated.
//
// Returns the filled grid and the number of column conflicts present in it,
// a diagnostic count mirroring the one the original propagation engine logs.
func (cd *ColorDomain) InitialSolution(rng *rand.Rand) (grid [][]int, columnConflicts int, err error) {
	work := cd.clone()
	n := cd.n
	grid = make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for {
			bestCol := -1
			bestCount := n + 1
			for j := 0; j < n; j++ {
				if work.committed[i][j] != -1 {
					continue
				}
				c := work.domain[i][j].Count()
				if c < bestCount {
					bestCount = c
					bestCol = j
				}
			}
			if bestCol == -1 {
				break // row fully fixed
			}
			if bestCount == 0 {
				return nil, 0, ErrNoValuesToFix
			}
			idx := rng.Intn(bestCount)
			value, _ := work.domain[i][bestCol].NthSet(idx)
			work.fixCell(i, bestCol, value, false)

			// Re-propagate rows-only to a fixpoint after every commit, so a
			// cell that becomes a naked or hidden single as a side effect of
			// this fix is caught before the next random draw — otherwise a
			// later draw can pick a color that only looks free because the
			// domain it's drawn from hasn't absorbed this commit's effect on
			// the rest of the grid yet.
			for {
				progressed, emptied := work.applyReductionRules(false)
				if emptied {
					return nil, 0, ErrNoValuesToFix
				}
				if !progressed {
					break
				}
			}
		}
		for j := 0; j < n; j++ {
			grid[i][j] = work.committed[i][j]
		}
	}

	seen := make([]int, n)
	for j := 0; j < n; j++ {
		for k := range seen {
			seen[k] = 0
		}
		for i := 0; i < n; i++ {
			v := grid[i][j]
			seen[v]++
		}
		for _, c := range seen {
			if c > 1 {
				columnConflicts += c * (c - 1) / 2
			}
		}
	}

	return grid, columnConflicts, nil
}
