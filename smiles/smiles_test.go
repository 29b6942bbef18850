package smiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/smiles"
)

// TestParse_LinearChain checks atom order, bond wiring and implicit
// hydrogens for ethanol.
func TestParse_LinearChain(t *testing.T) {
	m, err := smiles.Parse("CCO")
	require.NoError(t, err)

	require.Equal(t, 3, m.NumAtoms())
	require.Equal(t, 2, m.NumBonds())

	wantH := map[int]int{1: 3, 2: 2, 3: 1}
	for id, h := range wantH {
		a, ok := m.Atom(id)
		require.True(t, ok)
		assert.Equal(t, h, a.Hydrogens, "atom %d", id)
	}
	a, _ := m.Atom(3)
	assert.Equal(t, "O", a.Element)
}

// TestParse_BondOrders covers =, # and the default single bond.
func TestParse_BondOrders(t *testing.T) {
	m, err := smiles.Parse("CC=CC#N")
	require.NoError(t, err)

	orders := map[[2]int]molecule.BondOrder{
		{1, 2}: molecule.Single,
		{2, 3}: molecule.Double,
		{3, 4}: molecule.Single,
		{4, 5}: molecule.Triple,
	}
	for pair, want := range orders {
		b, ok := m.BondBetween(pair[0], pair[1])
		require.True(t, ok, "bond %v", pair)
		assert.Equal(t, want, b.Order, "bond %v", pair)
	}
}

// TestParse_Branches: the branch stack restores the attachment point.
func TestParse_Branches(t *testing.T) {
	m, err := smiles.Parse("CC(C)(C)C")
	require.NoError(t, err)

	require.Equal(t, 5, m.NumAtoms())
	assert.Equal(t, 4, m.Degree(2), "quaternary carbon")
	for _, id := range []int{1, 3, 4, 5} {
		assert.Equal(t, 1, m.Degree(id), "methyl %d", id)
	}
}

// TestParse_RingClosures covers plain digits, reused digits, the %nn
// form, and stacked closures on one atom.
func TestParse_RingClosures(t *testing.T) {
	m, err := smiles.Parse("C1CCCCC1")
	require.NoError(t, err)
	assert.Equal(t, 6, m.NumBonds())
	_, ok := m.BondBetween(1, 6)
	assert.True(t, ok, "closure bond 1-6")

	// digit reused after closing
	m, err = smiles.Parse("C1CC1C1CC1")
	require.NoError(t, err)
	assert.Equal(t, 6, m.NumAtoms())
	assert.Equal(t, 6, m.NumBonds())

	// %nn two-digit closure
	m, err = smiles.Parse("C%12CCCCC%12")
	require.NoError(t, err)
	assert.Equal(t, 6, m.NumBonds())

	// two closures stacked on one atom: a chain bond plus two ring bonds
	m, err = smiles.Parse("C12CCCCC1CCCC2")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Degree(1))
	assert.Equal(t, 11, m.NumBonds())

	// a true spiro atom carries four ring bonds
	m, err = smiles.Parse("C1CCC2(C1)CCCC2")
	require.NoError(t, err)
	assert.Equal(t, 4, m.Degree(4))
}

// TestParse_BracketAtoms: charge, explicit hydrogens and isotopes.
func TestParse_BracketAtoms(t *testing.T) {
	m, err := smiles.Parse("C[N+](=O)[O-]")
	require.NoError(t, err)

	n, _ := m.Atom(2)
	assert.Equal(t, "N", n.Element)
	assert.Equal(t, 1, n.Charge)
	assert.Equal(t, 0, n.Hydrogens, "bracket atom without H declares none")

	o, _ := m.Atom(4)
	assert.Equal(t, -1, o.Charge)

	m, err = smiles.Parse("[13CH4]")
	require.NoError(t, err)
	a, _ := m.Atom(1)
	assert.Equal(t, 13, a.Isotope)
	assert.Equal(t, 4, a.Hydrogens)

	m, err = smiles.Parse("[NH4+]")
	require.NoError(t, err)
	a, _ = m.Atom(1)
	assert.Equal(t, 4, a.Hydrogens)
	assert.Equal(t, 1, a.Charge)
}

// TestParse_AromaticInput: lowercase atoms arrive flagged and keep a
// sensible hydrogen count.
func TestParse_AromaticInput(t *testing.T) {
	m, err := smiles.Parse("c1ccccc1")
	require.NoError(t, err)

	for _, a := range m.Atoms() {
		assert.True(t, a.Aromatic, "atom %d", a.ID)
		assert.Equal(t, 1, a.Hydrogens, "atom %d", a.ID)
	}
}

// TestParse_DotSeparator keeps components disconnected.
func TestParse_DotSeparator(t *testing.T) {
	m, err := smiles.Parse("CC.CC")
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumAtoms())
	assert.Equal(t, 2, m.NumBonds())
	assert.False(t, m.Connected())
}

// TestParse_TwoLetterElements: Cl and Br must win over C and B.
func TestParse_TwoLetterElements(t *testing.T) {
	m, err := smiles.Parse("ClCCBr")
	require.NoError(t, err)
	first, _ := m.Atom(1)
	last, _ := m.Atom(4)
	assert.Equal(t, "Cl", first.Element)
	assert.Equal(t, "Br", last.Element)
}

// TestParse_Errors pins the sentinel per failure mode.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		smi  string
		want error
	}{
		{"", smiles.ErrSyntax},
		{"C1CC", smiles.ErrRingClosure},
		{"C(C", smiles.ErrSyntax},
		{"CC)", smiles.ErrSyntax},
		{"(CC)", smiles.ErrSyntax},
		{"C[N", smiles.ErrSyntax},
		{"C%1C", smiles.ErrSyntax},
		{"C*", smiles.ErrUnsupported},
		{"Cx", smiles.ErrSyntax},
	}
	for _, tc := range cases {
		_, err := smiles.Parse(tc.smi)
		assert.ErrorIs(t, err, tc.want, "SMILES %q", tc.smi)
	}
}

// TestImplicitHydrogens_Hypervalent: sulfone sulfur gets no hydrogens.
func TestImplicitHydrogens_Hypervalent(t *testing.T) {
	m, err := smiles.Parse("CS(=O)(=O)C")
	require.NoError(t, err)
	s, _ := m.Atom(2)
	assert.Equal(t, "S", s.Element)
	assert.Equal(t, 0, s.Hydrogens)
}
