package rings_test

import (
	"testing"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/rings"
	"github.com/molgraph/nomen/smiles"
)

func parse(t *testing.T, smi string) *molecule.Molecule {
	t.Helper()
	m, err := smiles.Parse(smi)
	if err != nil {
		t.Fatalf("parse %q: %v", smi, err)
	}
	return m
}

// TestSSSR_Counts verifies the cyclomatic ring count on known skeletons.
func TestSSSR_Counts(t *testing.T) {
	cases := []struct {
		smi  string
		want int
	}{
		{"CCCC", 0},
		{"C1CCCCC1", 1},
		{"C1=CC=CC=C1", 1},
		{"C1CCC2CCCCC2C1", 2},          // decalin
		{"C1=CC=C2C=CC=CC2=C1", 2},     // naphthalene
		{"C1CC2CCC1CC2", 2},            // bicyclo[2.2.2]octane
		{"C1=CC=C(C=C1)C2=CC=CC=C2", 2}, // biphenyl
	}
	for _, tc := range cases {
		rs := rings.SSSR(parse(t, tc.smi))
		if len(rs) != tc.want {
			t.Errorf("SSSR(%q) = %d rings; want %d", tc.smi, len(rs), tc.want)
		}
	}
}

// TestSSSR_SmallestFirst: fused 5/6 system must surface the 5-ring, not
// the 9-membered envelope.
func TestSSSR_SmallestFirst(t *testing.T) {
	rs := rings.SSSR(parse(t, "C1CCC2CCCC2C1")) // hydrindane
	if len(rs) != 2 {
		t.Fatalf("got %d rings; want 2", len(rs))
	}
	sizes := map[int]bool{len(rs[0]): true, len(rs[1]): true}
	if !sizes[5] || !sizes[6] {
		t.Errorf("ring sizes = %d,%d; want 5 and 6", len(rs[0]), len(rs[1]))
	}
}

// TestSystems_FusedVsPendant: bond-sharing rings merge into one system;
// rings joined only through an acyclic bond stay apart.
func TestSystems_FusedVsPendant(t *testing.T) {
	// naphthalene: one fused system of two rings
	rs := rings.SSSR(parse(t, "C1=CC=C2C=CC=CC2=C1"))
	groups := rings.Systems(rs)
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Errorf("naphthalene systems = %v; want one group of two", groups)
	}

	// biphenyl: two independent systems
	rs = rings.SSSR(parse(t, "C1=CC=C(C=C1)C2=CC=CC=C2"))
	groups = rings.Systems(rs)
	if len(groups) != 2 {
		t.Errorf("biphenyl systems = %v; want two groups", groups)
	}

	if rings.Systems(nil) != nil {
		t.Error("Systems(nil) should be nil")
	}
}

// TestSystems_Deterministic: group order follows the smallest ring index.
func TestSystems_Deterministic(t *testing.T) {
	rs := rings.SSSR(parse(t, "C1=CC=C(C=C1)C2=CC=CC=C2"))
	groups := rings.Systems(rs)
	if len(groups) == 2 && groups[0][0] > groups[1][0] {
		t.Errorf("groups out of order: %v", groups)
	}
}

// TestAnalyze_Aromaticity stamps benzene and furan aromatic, leaves
// cyclohexane and cyclohexene alone.
func TestAnalyze_Aromaticity(t *testing.T) {
	cases := []struct {
		smi      string
		aromatic bool
	}{
		{"C1=CC=CC=C1", true},  // benzene, kekulized
		{"c1ccccc1", true},     // benzene, declared
		{"C1=COC=C1", true},    // furan
		{"C1=CC=CN1", true},    // pyrrole
		{"C1CCCCC1", false},    // cyclohexane
		{"C1=CCCCC1", false},   // cyclohexene
	}
	for _, tc := range cases {
		m, err := rings.Analyze(parse(t, tc.smi))
		if err != nil {
			t.Fatalf("Analyze(%q): %v", tc.smi, err)
		}
		any := false
		for _, a := range m.Atoms() {
			if a.Aromatic {
				any = true
				break
			}
		}
		if any != tc.aromatic {
			t.Errorf("Analyze(%q) aromatic = %v; want %v", tc.smi, any, tc.aromatic)
		}
	}
}

// TestAnalyze_PreservesInput: the argument molecule keeps its original
// atom flags. Built by hand because Parse analyzes on its own.
func TestAnalyze_PreservesInput(t *testing.T) {
	var atoms []molecule.Atom
	var bonds []molecule.Bond
	for i := 1; i <= 6; i++ {
		atoms = append(atoms, molecule.Atom{ID: i, Element: "C", Hydrogens: 1})
		order := molecule.Single
		if i%2 == 1 {
			order = molecule.Double
		}
		bonds = append(bonds, molecule.Bond{ID: i, From: i, To: i%6 + 1, Order: order})
	}
	in, err := molecule.New(atoms, bonds)
	if err != nil {
		t.Fatalf("build benzene: %v", err)
	}

	out, err := rings.Analyze(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range in.Atoms() {
		if a.Aromatic {
			t.Fatal("Analyze mutated its input")
		}
	}
	for _, a := range out.Atoms() {
		if !a.Aromatic {
			t.Fatalf("atom %d not stamped aromatic", a.ID)
		}
	}
}
