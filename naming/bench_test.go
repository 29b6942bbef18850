package naming_test

import (
	"testing"

	"github.com/molgraph/nomen/naming"
	"github.com/molgraph/nomen/smiles"
)

// BenchmarkGenerateName_Chain measures the full pipeline on a simple
// branched chain.
func BenchmarkGenerateName_Chain(b *testing.B) {
	m, err := smiles.Parse("CC(C)CCO")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := naming.GenerateIUPACName(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateName_Ester measures the heaviest regression input:
// ester/amide competition plus an aromatic ring substituent.
func BenchmarkGenerateName_Ester(b *testing.B) {
	m, err := smiles.Parse("CCCC(=O)OC(C)(C)C(=O)NC1=CC(=C(C=C1)[N+](=O)[O-])C(F)(F)F")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := naming.GenerateIUPACName(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateName_Polycyclic measures von Baeyer decomposition and
// numbering on a pentacyclic cage.
func BenchmarkGenerateName_Polycyclic(b *testing.B) {
	m, err := smiles.Parse("C1CC2C3(CCC4C25CC(OC4OC5)C6=COC=C6)COC(=O)C3=C1")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := naming.GenerateIUPACName(m); err != nil {
			b.Fatal(err)
		}
	}
}
