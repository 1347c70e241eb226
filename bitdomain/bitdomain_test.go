package bitdomain_test

import (
	"testing"

	"github.com/mwinters-dev/latinsquare/bitdomain"
)

func TestNewFullAndCount(t *testing.T) {
	d, err := bitdomain.NewFull(10)
	if err != nil {
		t.Fatalf("NewFull: %v", err)
	}
	if got := d.Count(); got != 10 {
		t.Fatalf("Count() = %d, want 10", got)
	}
	for v := 0; v < 10; v++ {
		if !d.Contains(v) {
			t.Fatalf("Contains(%d) = false, want true", v)
		}
	}
}

func TestInsertEraseContains(t *testing.T) {
	d, _ := bitdomain.New(8)
	if err := d.Insert(3); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !d.Contains(3) {
		t.Fatal("expected 3 to be contained")
	}
	if err := d.Erase(3); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if d.Contains(3) {
		t.Fatal("expected 3 to be absent after Erase")
	}
}

func TestOutOfRange(t *testing.T) {
	d, _ := bitdomain.New(4)
	if err := d.Insert(4); err != bitdomain.ErrValueOutOfRange {
		t.Fatalf("Insert(4) err = %v, want ErrValueOutOfRange", err)
	}
	if err := d.Insert(-1); err != bitdomain.ErrValueOutOfRange {
		t.Fatalf("Insert(-1) err = %v, want ErrValueOutOfRange", err)
	}
}

func TestUnionIntersectDifference(t *testing.T) {
	a, _ := bitdomain.New(8)
	b, _ := bitdomain.New(8)
	a.Insert(1)
	a.Insert(2)
	a.Insert(3)
	b.Insert(2)
	b.Insert(3)
	b.Insert(4)

	u, err := a.Union(b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if u.Count() != 4 {
		t.Fatalf("Union count = %d, want 4", u.Count())
	}

	in, err := a.Intersect(b)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}
	if in.Count() != 2 || !in.Contains(2) || !in.Contains(3) {
		t.Fatalf("Intersect = %v, want {2,3}", in.ToSlice())
	}

	diff, err := a.Difference(b)
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if diff.Count() != 1 || !diff.Contains(1) {
		t.Fatalf("Difference = %v, want {1}", diff.ToSlice())
	}
}

func TestCapacityMismatch(t *testing.T) {
	a, _ := bitdomain.New(4)
	b, _ := bitdomain.New(8)
	if _, err := a.Union(b); err != bitdomain.ErrCapacityMismatch {
		t.Fatalf("Union across capacities err = %v, want ErrCapacityMismatch", err)
	}
}

func TestComplement(t *testing.T) {
	d, _ := bitdomain.New(4)
	d.Insert(0)
	d.Insert(2)
	c := d.Complement()
	if !c.Contains(1) || !c.Contains(3) || c.Contains(0) || c.Contains(2) {
		t.Fatalf("Complement = %v, want {1,3}", c.ToSlice())
	}
}

func TestFirstAndNthSet(t *testing.T) {
	d, _ := bitdomain.New(70)
	d.Insert(5)
	d.Insert(65)
	d.Insert(10)

	first, err := d.First()
	if err != nil || first != 5 {
		t.Fatalf("First() = %d, %v, want 5, nil", first, err)
	}

	n1, err := d.NthSet(1)
	if err != nil || n1 != 10 {
		t.Fatalf("NthSet(1) = %d, %v, want 10, nil", n1, err)
	}

	n2, err := d.NthSet(2)
	if err != nil || n2 != 65 {
		t.Fatalf("NthSet(2) = %d, %v, want 65, nil", n2, err)
	}

	if _, err := d.NthSet(3); err != bitdomain.ErrIndexOutOfRange {
		t.Fatalf("NthSet(3) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestEmptyDomainFirst(t *testing.T) {
	d, _ := bitdomain.New(4)
	if _, err := d.First(); err != bitdomain.ErrEmptyDomain {
		t.Fatalf("First() on empty err = %v, want ErrEmptyDomain", err)
	}
}

func TestToSliceOrdering(t *testing.T) {
	d, _ := bitdomain.New(16)
	for _, v := range []int{9, 1, 7, 3} {
		d.Insert(v)
	}
	got := d.ToSlice()
	want := []int{1, 3, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", got, want)
		}
	}
}
