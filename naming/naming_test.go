package naming_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molgraph/nomen/naming"
)

// mustName runs the full pipeline and fails the test on a hard error.
func mustName(t *testing.T, smi string) naming.NameResult {
	t.Helper()
	res, err := naming.GenerateNameFromSMILES(smi)
	require.NoError(t, err, "naming %q", smi)
	return res
}

// TestBasicRegressions pins the simple acyclic names.
func TestBasicRegressions(t *testing.T) {
	cases := []struct {
		smi  string
		want string
	}{
		{"CCO", "ethanol"},
		{"NCCN", "ethane-1,2-diamine"},
		{"CC=CC", "but-2-ene"},
		{"C=CC", "propene"},
		{"CCCC", "butane"},
		{"C", "methane"},
	}
	for _, tc := range cases {
		res := mustName(t, tc.smi)
		assert.Equal(t, tc.want, res.Name, "SMILES %q", tc.smi)
	}
}

// TestLocantOmittedOnlyWhenUnambiguous: but-2-ene keeps its locant,
// propene drops it.
func TestLocantOmittedOnlyWhenUnambiguous(t *testing.T) {
	assert.Equal(t, "but-2-ene", mustName(t, "CC=CC").Name)
	assert.Equal(t, "propene", mustName(t, "C=CC").Name)
	assert.Equal(t, "but-1-ene", mustName(t, "C=CCC").Name)
}

// TestLactamCarbonylAbsorbed: the ring suffix expresses the carbonyl
// exactly once; no -amide may appear alongside imidazolidin-4-one.
func TestLactamCarbonylAbsorbed(t *testing.T) {
	res := mustName(t, "O=C1CNCN1")
	assert.Equal(t, "imidazolidin-4-one", res.Name)
	assert.NotContains(t, res.Name, "amide")

	absorbed := false
	for _, g := range res.FunctionalGroups {
		if g.Class == naming.ClassAmide && g.Absorbed {
			absorbed = true
		}
	}
	assert.True(t, absorbed, "the lactam amide should stay on record as absorbed")
}

// TestEsterDemotesAmide: with ester and amide competing, the ester holds
// the suffix and the amide renders as a substituent, never duplicated.
func TestEsterDemotesAmide(t *testing.T) {
	res := mustName(t, "CCCC(=O)OC(C)(C)C(=O)NC1=CC(=C(C=C1)[N+](=O)[O-])C(F)(F)F")
	assert.Equal(t,
		"[2-methyl-1-[4-nitro-3-(trifluoromethyl)anilino]-1-oxopropan-2-yl] butanoate",
		res.Name)
}

// TestAlphabeticalSubstituentOrdering: bis(methylsulfanyl) sorts by
// "methylsulfanyl", after plain "methyl".
func TestAlphabeticalSubstituentOrdering(t *testing.T) {
	res := mustName(t, "CC1=C(N=C(N=N1)SC)SC")
	assert.Equal(t, "6-methyl-3,5-bis(methylsulfanyl)-1,2,4-triazine", res.Name)
}

// TestPendantRingExcludedFromPolycycloCount: a furan attached through a
// single acyclic bond never inflates the von Baeyer ring count.
func TestPendantRingExcludedFromPolycycloCount(t *testing.T) {
	res := mustName(t, "C1CC2C3(CCC4C25CC(OC4OC5)C6=COC=C6)COC(=O)C3=C1")
	assert.Contains(t, res.Name, "pentacyclo")
	assert.NotContains(t, res.Name, "hexacyclo")
	assert.Contains(t, res.Name, "furan", "the pendant ring should render as a substituent")
}

// TestSenioritySelectsKetoneOverAlcohol: the ketone takes the suffix,
// the hydroxyl demotes to hydroxy.
func TestSenioritySelectsKetoneOverAlcohol(t *testing.T) {
	res := mustName(t, "CC(=O)CCO")
	assert.Equal(t, "4-hydroxybutan-2-one", res.Name)
}

// TestNumberingLowestLocants: the principal group takes locant 1 and the
// branch lands on 3.
func TestNumberingLowestLocants(t *testing.T) {
	res := mustName(t, "CC(C)CCO")
	assert.Equal(t, "3-methylbutan-1-ol", res.Name)
}

// TestAlphanumericTiebreak: with substituent locant sets tied, the
// alphabetically earlier prefix gets the lower locant.
func TestAlphanumericTiebreak(t *testing.T) {
	res := mustName(t, "ClCCBr")
	assert.Equal(t, "1-bromo-2-chloroethane", res.Name)
}

// TestRingParentLocantOmission: a lone substituent on a suffix-free ring
// carries no locant.
func TestRingParentLocantOmission(t *testing.T) {
	assert.Equal(t, "methylbenzene", mustName(t, "CC1=CC=CC=C1").Name)
	assert.Equal(t, "chlorobenzene", mustName(t, "ClC1=CC=CC=C1").Name)
	assert.Equal(t, "methylcyclohexane", mustName(t, "CC1CCCCC1").Name)
}

// TestRingLocantKeptWhenPositionsDiffer: a heteroatom or an ene locant
// pins ring positions, so even a lone substituent keeps its locant and
// positional isomers name apart.
func TestRingLocantKeptWhenPositionsDiffer(t *testing.T) {
	assert.Equal(t, "2-methylpyridine", mustName(t, "CC1=CC=CC=N1").Name)
	assert.Equal(t, "4-methylpyridine", mustName(t, "CC1=CC=NC=C1").Name)
	assert.Equal(t, "4-methylcyclohex-1-ene", mustName(t, "CC1CC=CCC1").Name)
	assert.Equal(t, "1-methylcyclohex-1-ene", mustName(t, "CC1=CCCCC1").Name)
	assert.Equal(t, "3-methylcyclohex-1-ene", mustName(t, "C1=CCCCC1C").Name)
}

// TestRingClosureBondLocant: the bond closing a ring back to position 1
// is cited at the high locant, so a cyclic 1,3-diene never renders as a
// cumulated 1,2-diene.
func TestRingClosureBondLocant(t *testing.T) {
	assert.Equal(t, "5-methylcyclohexa-1,3-diene", mustName(t, "CC1CC=CC=C1").Name)
	assert.Equal(t, "cyclohexene", mustName(t, "C1=CCCCC1").Name)
}

// TestBridgedBicyclicDescriptors: bridge edges are booked in path order,
// so no phantom zero-length fusion bridges inflate the descriptor.
func TestBridgedBicyclicDescriptors(t *testing.T) {
	assert.Equal(t, "bicyclo[2.2.2]octane", mustName(t, "C1CC2CCC1CC2").Name)
	assert.Equal(t, "bicyclo[2.2.1]heptane", mustName(t, "C1CC2CCC1C2").Name)
}

// TestLinkedAliasContraction: the greedy alias walk contracts a fully
// covered composition (methyloxy), while a bare head hit leaves the
// spelling open.
func TestLinkedAliasContraction(t *testing.T) {
	assert.Equal(t, "methoxybenzene", mustName(t, "COC1=CC=CC=C1").Name)
}

// TestDeterminism: repeated runs yield byte-identical names.
func TestDeterminism(t *testing.T) {
	const smi = "CCCC(=O)OC(C)(C)C(=O)NC1=CC(=C(C=C1)[N+](=O)[O-])C(F)(F)F"
	first := mustName(t, smi).Name
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, mustName(t, smi).Name, "run %d diverged", i)
	}
}

// TestErrorContracts: nil and disconnected inputs fail with sentinels.
func TestErrorContracts(t *testing.T) {
	_, err := naming.GenerateIUPACName(nil)
	assert.True(t, errors.Is(err, naming.ErrStructural), "nil molecule: got %v", err)

	_, err = naming.GenerateNameFromSMILES("CC.CC")
	assert.True(t, errors.Is(err, naming.ErrNoParent), "disconnected input: got %v", err)
}

// TestTraceAndConfidence: every run records an ordered trace and a clean
// input keeps full confidence.
func TestTraceAndConfidence(t *testing.T) {
	res := mustName(t, "CCO")
	require.NotEmpty(t, res.Trace)
	assert.Equal(t, "P-41", res.Trace[0].RuleID)
	for i := 1; i < len(res.Trace); i++ {
		assert.GreaterOrEqual(t, res.Trace[i].Phase, res.Trace[i-1].Phase,
			"trace phases must be non-decreasing")
	}
	assert.Equal(t, 1.0, res.Confidence)
	assert.Empty(t, res.Warnings)
}

// TestFunctionalGroupSeniority verifies the fixed class ordering.
func TestFunctionalGroupSeniority(t *testing.T) {
	ordered := []naming.GroupClass{
		naming.ClassCarboxylicAcid,
		naming.ClassEster,
		naming.ClassAmide,
		naming.ClassNitrile,
		naming.ClassAldehyde,
		naming.ClassKetone,
		naming.ClassAlcohol,
		naming.ClassThiol,
		naming.ClassAmine,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Priority(), ordered[i].Priority())
		assert.True(t, ordered[i].Suffixable())
	}
	for _, c := range []naming.GroupClass{naming.ClassEther, naming.ClassNitro, naming.ClassHalide} {
		assert.False(t, c.Suffixable(), "%s is prefix-only", c)
	}
}

// TestCarboxylicAcidSuffix: terminal suffixes carry no locant.
func TestCarboxylicAcidSuffix(t *testing.T) {
	assert.Equal(t, "butanoic acid", mustName(t, "CCCC(=O)O").Name)
	assert.Equal(t, "butanamide", mustName(t, "CCCC(=O)N").Name)
	assert.Equal(t, "butanenitrile", mustName(t, "CCCC#N").Name)
	assert.Equal(t, "butanal", mustName(t, "CCCC=O").Name)
}

// TestRingParentWithSuffix keeps ring suffix locants explicit.
func TestRingParentWithSuffix(t *testing.T) {
	assert.Equal(t, "cyclohexan-1-ol", mustName(t, "OC1CCCCC1").Name)
}

// TestHeterocycleParentNames resolves table heterocycles.
func TestHeterocycleParentNames(t *testing.T) {
	assert.Equal(t, "pyridine", mustName(t, "C1=CC=NC=C1").Name)
	assert.Equal(t, "morpholine", mustName(t, "C1COCCN1").Name)
}
