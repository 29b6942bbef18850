package molecule_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/molgraph/nomen/molecule"
)

func ethanol() ([]molecule.Atom, []molecule.Bond) {
	atoms := []molecule.Atom{
		{ID: 1, Element: "C", Hydrogens: 3},
		{ID: 2, Element: "C", Hydrogens: 2},
		{ID: 3, Element: "O", Hydrogens: 1},
	}
	bonds := []molecule.Bond{
		{ID: 1, From: 1, To: 2, Order: molecule.Single},
		{ID: 2, From: 2, To: 3, Order: molecule.Single},
	}
	return atoms, bonds
}

// TestNew_Validation verifies the structural preconditions.
func TestNew_Validation(t *testing.T) {
	atoms, bonds := ethanol()

	// duplicate atom id
	dup := append([]molecule.Atom{}, atoms...)
	dup = append(dup, molecule.Atom{ID: 1, Element: "N"})
	if _, err := molecule.New(dup, bonds); !errors.Is(err, molecule.ErrStructural) {
		t.Errorf("duplicate id: want ErrStructural, got %v", err)
	}

	// non-positive id
	if _, err := molecule.New([]molecule.Atom{{ID: 0, Element: "C"}}, nil); !errors.Is(err, molecule.ErrStructural) {
		t.Errorf("zero id: want ErrStructural, got %v", err)
	}

	// dangling bond endpoint
	bad := append([]molecule.Bond{}, bonds...)
	bad = append(bad, molecule.Bond{ID: 3, From: 2, To: 99, Order: molecule.Single})
	if _, err := molecule.New(atoms, bad); !errors.Is(err, molecule.ErrStructural) {
		t.Errorf("dangling bond: want ErrStructural, got %v", err)
	}

	// order outside 1..3
	bad = []molecule.Bond{{ID: 1, From: 1, To: 2, Order: 4}}
	if _, err := molecule.New(atoms, bad); !errors.Is(err, molecule.ErrStructural) {
		t.Errorf("order 4: want ErrStructural, got %v", err)
	}
}

// TestQueries covers the read-only accessors on a sealed molecule.
func TestQueries(t *testing.T) {
	atoms, bonds := ethanol()
	m, err := molecule.New(atoms, bonds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.NumAtoms() != 3 || m.NumBonds() != 2 {
		t.Fatalf("size = (%d,%d); want (3,2)", m.NumAtoms(), m.NumBonds())
	}
	if got := m.Neighbors(2); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Neighbors(2) = %v; want [1 3]", got)
	}
	if m.Degree(2) != 2 || m.Degree(1) != 1 {
		t.Errorf("degrees = (%d,%d); want (2,1)", m.Degree(2), m.Degree(1))
	}
	if b, ok := m.BondBetween(2, 3); !ok || b.ID != 2 {
		t.Errorf("BondBetween(2,3) = (%v,%v); want bond 2", b, ok)
	}
	if _, ok := m.BondBetween(1, 3); ok {
		t.Error("BondBetween(1,3) should not exist")
	}
	if a, ok := m.Atom(3); !ok || a.Element != "O" {
		t.Errorf("Atom(3) = (%v,%v); want oxygen", a, ok)
	}
	if !m.Connected() {
		t.Error("ethanol should be connected")
	}
}

// TestBondOther checks the opposite-endpoint helper.
func TestBondOther(t *testing.T) {
	b := molecule.Bond{ID: 1, From: 4, To: 7, Order: molecule.Double}
	if b.Other(4) != 7 || b.Other(7) != 4 || b.Other(9) != 0 {
		t.Errorf("Other mismatches: %d %d %d", b.Other(4), b.Other(7), b.Other(9))
	}
}

// TestRingAttachment verifies ring queries on a cyclopropane.
func TestRingAttachment(t *testing.T) {
	atoms := []molecule.Atom{
		{ID: 1, Element: "C"}, {ID: 2, Element: "C"}, {ID: 3, Element: "C"},
		{ID: 4, Element: "C"},
	}
	bonds := []molecule.Bond{
		{ID: 1, From: 1, To: 2, Order: molecule.Single},
		{ID: 2, From: 2, To: 3, Order: molecule.Single},
		{ID: 3, From: 3, To: 1, Order: molecule.Single},
		{ID: 4, From: 3, To: 4, Order: molecule.Single},
	}
	m, err := molecule.New(atoms, bonds, molecule.WithRings([]molecule.Ring{{1, 2, 3}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.InRing(1) || m.InRing(4) {
		t.Error("InRing should cover 1..3 only")
	}
	if !m.RingBond(1, 3) || m.RingBond(3, 4) {
		t.Error("RingBond should cover ring edges only")
	}
}

// TestDisconnected verifies the connectivity probe.
func TestDisconnected(t *testing.T) {
	atoms := []molecule.Atom{{ID: 1, Element: "C"}, {ID: 2, Element: "C"}}
	m, err := molecule.New(atoms, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Connected() {
		t.Error("two isolated atoms must not be connected")
	}
}
