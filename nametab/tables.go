// Fixed stems, multiplying prefixes, and suffix specs.
package nametab

// alkaneStems indexes carbon-chain stems by length (1-based).
var alkaneStems = []string{"",
	"meth", "eth", "prop", "but", "pent", "hex", "hept", "oct", "non", "dec",
	"undec", "dodec", "tridec", "tetradec", "pentadec", "hexadec", "heptadec",
	"octadec", "nonadec", "icos", "henicos", "docos", "tricos", "tetracos",
	"pentacos", "hexacos", "heptacos", "octacos", "nonacos", "triacont",
}

// AlkaneStem returns the stem for an n-carbon chain ("meth", "eth", ...).
// ok is false when n is out of table range.
func AlkaneStem(n int) (string, bool) {
	if n < 1 || n >= len(alkaneStems) {
		return "", false
	}
	return alkaneStems[n], true
}

// multipliers holds the simple multiplying prefixes (di, tri, ...).
var multipliers = []string{"", "", "di", "tri", "tetra", "penta", "hexa", "hepta", "octa", "nona", "deca"}

// Multiplier returns the simple multiplying prefix for count n
// ("" for n ≤ 1, "di" for 2, ...). Counts beyond the table reuse the
// highest entry; the engine flags such names as low confidence upstream.
func Multiplier(n int) string {
	if n < 2 {
		return ""
	}
	if n >= len(multipliers) {
		return multipliers[len(multipliers)-1]
	}
	return multipliers[n]
}

// complexMultipliers holds bis/tris prefixes for substituents whose own
// name already contains a multiplying prefix or punctuation.
var complexMultipliers = []string{"", "", "bis", "tris", "tetrakis", "pentakis", "hexakis", "heptakis"}

// ComplexMultiplier returns the bis/tris-style prefix for count n.
func ComplexMultiplier(n int) string {
	if n < 2 {
		return ""
	}
	if n >= len(complexMultipliers) {
		return complexMultipliers[len(complexMultipliers)-1]
	}
	return complexMultipliers[n]
}

// polycyclo holds von Baeyer ring-count prefixes indexed by ring count.
var polycyclo = []string{"", "cyclo", "bicyclo", "tricyclo", "tetracyclo",
	"pentacyclo", "hexacyclo", "heptacyclo", "octacyclo", "nonacyclo", "decacyclo"}

// Polycyclo returns the von Baeyer prefix for a system of n rings.
func Polycyclo(n int) (string, bool) {
	if n < 1 || n >= len(polycyclo) {
		return "", false
	}
	return polycyclo[n], true
}

// HaloPrefix maps halogen element symbols to substituent prefixes.
var HaloPrefix = map[string]string{
	"F": "fluoro", "Cl": "chloro", "Br": "bromo", "I": "iodo",
}

// ReplacementPrefix maps skeletal heteroatom elements to replacement
// ("a") prefixes used in von Baeyer and fallback heterocycle names.
var ReplacementPrefix = map[string]string{
	"O": "oxa", "S": "thia", "N": "aza", "P": "phospha",
}

// ReplacementRank orders heteroatom citation (and low-locant preference):
// O before S before N before P, per the seniority of skeletal replacement.
var ReplacementRank = map[string]int{"O": 0, "S": 1, "N": 2, "P": 3}

// SuffixSpec pairs the suffix form of a characteristic group with the
// prefix used when the group is demoted to substituent status.
type SuffixSpec struct {
	// Suffix is appended to the parent name when the group is principal
	// ("ol", "one", "amine", "oic acid").
	Suffix string

	// Prefix cites the group when some more senior group holds the suffix
	// ("hydroxy", "oxo", "amino", "carboxy").
	Prefix string
}

// suffixSpecs is keyed by functional-class identifier. Ester has no plain
// suffix entry: it is rendered through the two-part "[alkyl] ...oate" form.
var suffixSpecs = map[string]SuffixSpec{
	"carboxylic-acid": {Suffix: "oic acid", Prefix: "carboxy"},
	"amide":           {Suffix: "amide", Prefix: "carbamoyl"},
	"nitrile":         {Suffix: "nitrile", Prefix: "cyano"},
	"aldehyde":        {Suffix: "al", Prefix: "oxo"},
	"ketone":          {Suffix: "one", Prefix: "oxo"},
	"alcohol":         {Suffix: "ol", Prefix: "hydroxy"},
	"thiol":           {Suffix: "thiol", Prefix: "sulfanyl"},
	"amine":           {Suffix: "amine", Prefix: "amino"},
}

// SuffixFor returns the suffix/prefix spec for a functional-class id.
func (t *Tables) SuffixFor(class string) (SuffixSpec, bool) {
	s, ok := t.suffixes[class]
	return s, ok
}
