package colordomain_test

import (
	"math/rand"
	"testing"

	"github.com/mwinters-dev/latinsquare/colordomain"
)

func TestNewAllOpen(t *testing.T) {
	cd, err := colordomain.New(4, colordomain.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cd.FixedNum() != 0 {
		t.Fatalf("FixedNum() = %d, want 0", cd.FixedNum())
	}
	if got := cd.TotalDomainSize(); got != 64 { // 4*4 cells * 4 colors each
		t.Fatalf("TotalDomainSize() = %d, want 64", got)
	}
}

func TestSetFixedAndSimplifyNakedSingle(t *testing.T) {
	// n=2: fixing (0,0)=0 forces (0,1)=1, (1,0)=1, (1,1)=0.
	cd, _ := colordomain.New(2, colordomain.DefaultConfig())
	if err := cd.SetFixed(0, 0, 0); err != nil {
		t.Fatalf("SetFixed: %v", err)
	}
	if err := cd.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if !cd.IsFixed(1, 1) {
		t.Fatal("expected (1,1) to be forced fixed")
	}
	if v := cd.Committed(1, 1); v != 0 {
		t.Fatalf("Committed(1,1) = %d, want 0", v)
	}
	if cd.FixedNum() != 4 {
		t.Fatalf("FixedNum() = %d, want 4", cd.FixedNum())
	}
}

func TestSetFixedConflict(t *testing.T) {
	cd, _ := colordomain.New(2, colordomain.DefaultConfig())
	if err := cd.SetFixed(0, 0, 0); err != nil {
		t.Fatalf("SetFixed: %v", err)
	}
	if err := cd.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if err := cd.SetFixed(0, 1, 0); err == nil {
		t.Fatal("expected an error: color already removed from domain by propagation")
	}
}

func TestInitialSolutionRowFeasible(t *testing.T) {
	cd, _ := colordomain.New(5, colordomain.DefaultConfig())
	rng := rand.New(rand.NewSource(42))
	grid, _, err := cd.InitialSolution(rng)
	if err != nil {
		t.Fatalf("InitialSolution: %v", err)
	}
	for i, row := range grid {
		seen := make(map[int]bool)
		for _, v := range row {
			if seen[v] {
				t.Fatalf("row %d has a repeated color: %v", i, row)
			}
			seen[v] = true
		}
	}
}

// TestInitialSolutionManySeeds stresses the row-only reduction rules
// re-applied after every commit: across many independent random draw
// orders, a row that is completable must never fail with
// ErrNoValuesToFix just because a hidden single wasn't fixed before a
// later draw could have disturbed it.
func TestInitialSolutionManySeeds(t *testing.T) {
	cd, err := colordomain.New(6, colordomain.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, _, err := cd.InitialSolution(rng)
		if err != nil {
			t.Fatalf("seed %d: InitialSolution: %v", seed, err)
		}
		for i, row := range grid {
			seen := make(map[int]bool)
			for _, v := range row {
				if seen[v] {
					t.Fatalf("seed %d: row %d has a repeated color: %v", seed, i, row)
				}
				seen[v] = true
			}
		}
	}
}

func TestInitialSolutionDoesNotMutateReceiver(t *testing.T) {
	cd, _ := colordomain.New(4, colordomain.DefaultConfig())
	before := cd.TotalDomainSize()
	rng := rand.New(rand.NewSource(7))
	if _, _, err := cd.InitialSolution(rng); err != nil {
		t.Fatalf("InitialSolution: %v", err)
	}
	if after := cd.TotalDomainSize(); after != before {
		t.Fatalf("TotalDomainSize changed from %d to %d: InitialSolution mutated receiver", before, after)
	}
}

func TestOutOfRangeIndices(t *testing.T) {
	cd, _ := colordomain.New(3, colordomain.DefaultConfig())
	if err := cd.SetFixed(5, 0, 0); err != colordomain.ErrOutOfRange {
		t.Fatalf("SetFixed row out of range err = %v, want ErrOutOfRange", err)
	}
}
