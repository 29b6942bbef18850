package nametab_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/molgraph/nomen/nametab"
)

func TestAlkaneStem(t *testing.T) {
	cases := []struct {
		n    int
		want string
		ok   bool
	}{
		{1, "meth", true},
		{4, "but", true},
		{11, "undec", true},
		{30, "triacont", true},
		{0, "", false},
		{31, "", false},
	}
	for _, tc := range cases {
		got, ok := nametab.AlkaneStem(tc.n)
		if got != tc.want || ok != tc.ok {
			t.Errorf("AlkaneStem(%d) = (%q,%v); want (%q,%v)", tc.n, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMultipliers(t *testing.T) {
	if nametab.Multiplier(1) != "" || nametab.Multiplier(2) != "di" || nametab.Multiplier(10) != "deca" {
		t.Error("simple multiplier table broken")
	}
	// counts beyond the table clamp to the last entry
	if nametab.Multiplier(15) != "deca" {
		t.Errorf("Multiplier(15) = %q; want deca", nametab.Multiplier(15))
	}
	if nametab.ComplexMultiplier(2) != "bis" || nametab.ComplexMultiplier(3) != "tris" {
		t.Error("complex multiplier table broken")
	}
}

func TestPolycyclo(t *testing.T) {
	for n, want := range map[int]string{1: "cyclo", 2: "bicyclo", 5: "pentacyclo"} {
		got, ok := nametab.Polycyclo(n)
		if !ok || got != want {
			t.Errorf("Polycyclo(%d) = (%q,%v); want %q", n, got, ok, want)
		}
	}
	if _, ok := nametab.Polycyclo(0); ok {
		t.Error("Polycyclo(0) should miss")
	}
	if _, ok := nametab.Polycyclo(11); ok {
		t.Error("Polycyclo(11) should miss")
	}
}

func TestSuffixFor(t *testing.T) {
	tab := nametab.Default()
	spec, ok := tab.SuffixFor("ketone")
	if !ok || spec.Suffix != "one" || spec.Prefix != "oxo" {
		t.Errorf("ketone spec = (%v,%v)", spec, ok)
	}
	if _, ok := tab.SuffixFor("ester"); ok {
		t.Error("ester carries no plain suffix entry")
	}
}

func TestCanonicalHetero(t *testing.T) {
	cases := []struct {
		els  []string
		want string
	}{
		{[]string{"N", "C", "C", "C", "C", "C"}, "N1"},
		{[]string{"C", "C", "N", "C", "C", "C"}, "N1"},
		{[]string{"O", "C", "C", "N", "C", "C"}, "O1N4"},
		{[]string{"C", "N", "C", "N", "C"}, "N1N3"},
		{[]string{"C", "C", "C", "C", "C", "C"}, ""},
	}
	for _, tc := range cases {
		sig, perms := nametab.CanonicalHetero(tc.els)
		if sig != tc.want {
			t.Errorf("CanonicalHetero(%v) = %q; want %q", tc.els, sig, tc.want)
		}
		if len(perms) == 0 {
			t.Errorf("CanonicalHetero(%v): no traversals", tc.els)
		}
	}

	// A carbocycle admits every rotation in both directions.
	_, perms := nametab.CanonicalHetero([]string{"C", "C", "C", "C", "C", "C"})
	if len(perms) != 12 {
		t.Errorf("carbocycle traversals = %d; want 12", len(perms))
	}
}

func TestLookupRing(t *testing.T) {
	tab := nametab.Default()

	rn, perms, ok := tab.LookupRing([]string{"C", "C", "C", "C", "C", "C"}, false)
	if !ok || rn.Name != "benzene" || rn.Yl != "phenyl" {
		t.Fatalf("benzene lookup = (%v,%v)", rn, ok)
	}
	if len(perms) == 0 {
		t.Error("benzene lookup returned no traversals")
	}

	rn, _, ok = tab.LookupRing([]string{"N", "C", "C", "C", "C", "C"}, true)
	if !ok || rn.Name != "piperidine" {
		t.Errorf("piperidine lookup = (%v,%v)", rn, ok)
	}

	// Unsaturated ring with only a saturated entry falls back to it.
	rn, _, ok = tab.LookupRing([]string{"O", "C", "C", "C", "C", "C"}, false)
	if !ok || rn.Name != "oxane" {
		t.Errorf("pyran fallback = (%v,%v); want oxane", rn, ok)
	}

	// Saturated miss stays a miss.
	if _, _, ok := tab.LookupRing([]string{"C", "C", "C", "C", "C", "C", "C"}, true); ok {
		t.Error("cycloheptane must be named generatively, not from the table")
	}
}

func TestLoadAliases(t *testing.T) {
	tab, err := nametab.LoadAliases(strings.NewReader(
		`{"methoxy": ["methoxy", "methyloxy"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// lists re-sort longest-first regardless of input order
	if tab["methoxy"][0] != "methyloxy" {
		t.Errorf("alias list = %v; want longest first", tab["methoxy"])
	}

	if _, err := nametab.LoadAliases(strings.NewReader(`["not", "a", "map"]`)); !errors.Is(err, nametab.ErrBadAliasData) {
		t.Errorf("bad shape: want ErrBadAliasData, got %v", err)
	}
}

func TestAliasLookups(t *testing.T) {
	tab := nametab.Default().Aliases

	if got := tab.Canonical("phenylamino"); got != "anilino" {
		t.Errorf("Canonical(phenylamino) = %q; want anilino", got)
	}
	if got := tab.Canonical("cyclohexyl"); got != "" {
		t.Errorf("Canonical(cyclohexyl) = %q; want miss", got)
	}

	id, alias, ok := tab.MatchLongest("phenylmethylamine")
	if !ok || id != "benzyl" || alias != "phenylmethyl" {
		t.Errorf("MatchLongest = (%q,%q,%v); want benzyl/phenylmethyl", id, alias, ok)
	}
	if _, _, ok := tab.MatchLongest("cyclopropyl"); ok {
		t.Error("MatchLongest should miss on cyclopropyl")
	}
}
