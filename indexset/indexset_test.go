package indexset_test

import (
	"testing"

	"github.com/mwinters-dev/latinsquare/indexset"
)

func TestInsertEraseContains(t *testing.T) {
	s, err := indexset.New(10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(3) || !s.Contains(7) {
		t.Fatal("expected 3 and 7 to be members")
	}
	s.Erase(3)
	if s.Contains(3) {
		t.Fatal("3 should be absent after Erase")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestEraseSwapToBackKeepsOtherMembers(t *testing.T) {
	s, _ := indexset.New(10)
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Insert(v)
	}
	s.Erase(2)
	for _, v := range []int{1, 3, 4, 5} {
		if !s.Contains(v) {
			t.Fatalf("expected %d to remain a member after erasing 2", v)
		}
	}
	if s.Contains(2) {
		t.Fatal("2 should be absent")
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	s, _ := indexset.New(4)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range element")
		}
	}()
	s.Insert(4)
}

func TestUnionIntersectDifference(t *testing.T) {
	a, _ := indexset.New(8)
	b, _ := indexset.New(8)
	for _, v := range []int{1, 2, 3} {
		a.Insert(v)
	}
	for _, v := range []int{2, 3, 4} {
		b.Insert(v)
	}

	u := a.Union(b)
	if u.Len() != 4 {
		t.Fatalf("Union len = %d, want 4", u.Len())
	}

	inter := a.Intersect(b)
	if inter.Len() != 2 || !inter.Contains(2) || !inter.Contains(3) {
		t.Fatalf("Intersect = %v, want {2,3}", inter.Elements())
	}

	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(1) {
		t.Fatalf("Difference = %v, want {1}", diff.Elements())
	}
}

func TestSubsetAndDisjoint(t *testing.T) {
	a, _ := indexset.New(8)
	b, _ := indexset.New(8)
	a.Insert(1)
	a.Insert(2)
	b.Insert(1)
	b.Insert(2)
	b.Insert(3)

	if !a.IsSubsetOf(b) {
		t.Fatal("a should be a subset of b")
	}
	if a.IsDisjoint(b) {
		t.Fatal("a and b share members, should not be disjoint")
	}

	c, _ := indexset.New(8)
	c.Insert(5)
	if !a.IsDisjoint(c) {
		t.Fatal("a and c share no members, should be disjoint")
	}
}

func TestComplement(t *testing.T) {
	s, _ := indexset.New(5)
	s.Insert(1)
	s.Insert(3)

	c := s.Complement()
	for _, v := range []int{0, 2, 4} {
		if !c.Contains(v) {
			t.Fatalf("expected %d in complement", v)
		}
	}
	if c.Contains(1) || c.Contains(3) {
		t.Fatal("complement should not contain members of s")
	}
	if c.Len() != 3 {
		t.Fatalf("Complement len = %d, want 3", c.Len())
	}
}

func TestSymmetricDifference(t *testing.T) {
	a, _ := indexset.New(8)
	b, _ := indexset.New(8)
	for _, v := range []int{1, 2, 3} {
		a.Insert(v)
	}
	for _, v := range []int{2, 3, 4} {
		b.Insert(v)
	}

	sd := a.SymmetricDifference(b)
	if sd.Len() != 2 || !sd.Contains(1) || !sd.Contains(4) {
		t.Fatalf("SymmetricDifference = %v, want {1,4}", sd.Elements())
	}
}

func TestUniverseMismatchPanics(t *testing.T) {
	a, _ := indexset.New(4)
	b, _ := indexset.New(8)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for universe mismatch")
		}
	}()
	a.Union(b)
}

func TestClear(t *testing.T) {
	s, _ := indexset.New(4)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
	if s.Contains(1) || s.Contains(2) {
		t.Fatal("expected no members after Clear")
	}
}
