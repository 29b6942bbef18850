// Ring alias table: canonical monocycle names keyed by ring size,
// heteroatom signature, and saturation, plus the canonical-numbering
// machinery that fixes which ring traversals a name permits.
package nametab

import (
	"fmt"
	"sort"
	"strings"
)

// RingName is one canonical monocycle entry.
type RingName struct {
	// Name is the parent-hydride name ("imidazolidine", "1,2,4-triazine").
	Name string

	// Yl overrides the substituent form when non-empty ("phenyl" for
	// benzene); otherwise the engine derives name + locant + "yl".
	Yl string

	// Size is the ring size; Sig the canonical heteroatom signature;
	// Saturated whether this entry names the saturated variant.
	Size      int
	Sig       string
	Saturated bool
}

// ringNames lists the built-in monocycle entries. Carbocycles other than
// benzene are named generatively (cyclo + stem) and do not appear here.
var ringNames = []RingName{
	{Name: "benzene", Yl: "phenyl", Size: 6, Sig: "", Saturated: false},

	{Name: "furan", Size: 5, Sig: "O1", Saturated: false},
	{Name: "oxolane", Size: 5, Sig: "O1", Saturated: true},
	{Name: "thiophene", Size: 5, Sig: "S1", Saturated: false},
	{Name: "thiolane", Size: 5, Sig: "S1", Saturated: true},
	{Name: "pyrrole", Size: 5, Sig: "N1", Saturated: false},
	{Name: "pyrrolidine", Size: 5, Sig: "N1", Saturated: true},
	{Name: "pyrazole", Size: 5, Sig: "N1N2", Saturated: false},
	{Name: "pyrazolidine", Size: 5, Sig: "N1N2", Saturated: true},
	{Name: "imidazole", Size: 5, Sig: "N1N3", Saturated: false},
	{Name: "imidazolidine", Size: 5, Sig: "N1N3", Saturated: true},
	{Name: "oxazole", Size: 5, Sig: "O1N3", Saturated: false},
	{Name: "isoxazole", Size: 5, Sig: "O1N2", Saturated: false},
	{Name: "thiazole", Size: 5, Sig: "S1N3", Saturated: false},

	{Name: "pyridine", Size: 6, Sig: "N1", Saturated: false},
	{Name: "piperidine", Size: 6, Sig: "N1", Saturated: true},
	{Name: "pyridazine", Size: 6, Sig: "N1N2", Saturated: false},
	{Name: "pyrimidine", Size: 6, Sig: "N1N3", Saturated: false},
	{Name: "pyrazine", Size: 6, Sig: "N1N4", Saturated: false},
	{Name: "piperazine", Size: 6, Sig: "N1N4", Saturated: true},
	{Name: "1,2,3-triazine", Size: 6, Sig: "N1N2N3", Saturated: false},
	{Name: "1,2,4-triazine", Size: 6, Sig: "N1N2N4", Saturated: false},
	{Name: "1,3,5-triazine", Size: 6, Sig: "N1N3N5", Saturated: false},
	{Name: "oxane", Size: 6, Sig: "O1", Saturated: true},
	{Name: "thiane", Size: 6, Sig: "S1", Saturated: true},
	{Name: "morpholine", Size: 6, Sig: "O1N4", Saturated: true},
}

// hetAssignment records one heteroatom under one candidate traversal.
type hetAssignment struct {
	locant int
	rank   int // ReplacementRank of the element
	elem   string
}

// CanonicalHetero computes the canonical heteroatom signature of a ring
// given its atom elements in cyclic order, together with every traversal
// achieving that signature. A traversal is a slice perm of ring positions:
// perm[k] is the index (into els) of the atom receiving locant k+1.
//
// Canonical means: lowest heteroatom locant set first (first point of
// difference), then lower ReplacementRank elements at the earlier locants.
// Carbocycles return signature "" with all 2n traversals.
func CanonicalHetero(els []string) (string, [][]int) {
	n := len(els)
	var bestKey []hetAssignment
	var bestPerms [][]int

	for dir := 0; dir < 2; dir++ {
		for start := 0; start < n; start++ {
			perm := make([]int, n)
			for k := 0; k < n; k++ {
				if dir == 0 {
					perm[k] = (start + k) % n
				} else {
					perm[k] = ((start-k)%n + n) % n
				}
			}
			key := hetKey(els, perm)
			switch cmpHetKeys(key, bestKey, bestPerms == nil) {
			case -1:
				bestKey = key
				bestPerms = [][]int{perm}
			case 0:
				bestPerms = append(bestPerms, perm)
			}
		}
	}

	var sb strings.Builder
	for _, h := range bestKey {
		fmt.Fprintf(&sb, "%s%d", h.elem, h.locant)
	}
	return sb.String(), bestPerms
}

// hetKey lists the heteroatom assignments for one traversal, in locant order.
func hetKey(els []string, perm []int) []hetAssignment {
	var key []hetAssignment
	for k, idx := range perm {
		if els[idx] == "C" {
			continue
		}
		rank, ok := ReplacementRank[els[idx]]
		if !ok {
			rank = len(ReplacementRank) // unknown heteroatoms sort last
		}
		key = append(key, hetAssignment{locant: k + 1, rank: rank, elem: els[idx]})
	}
	sort.Slice(key, func(i, j int) bool { return key[i].locant < key[j].locant })
	return key
}

// cmpHetKeys compares two keys: -1 if a is better (lower), 0 if equal,
// +1 if worse. first forces a to win when no best exists yet.
func cmpHetKeys(a, b []hetAssignment, first bool) int {
	if first {
		return -1
	}
	// 1) Lowest locant set at first point of difference.
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].locant != b[i].locant {
			if a[i].locant < b[i].locant {
				return -1
			}
			return 1
		}
	}
	// 2) Senior replacement elements (O before S before N) at early locants.
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].rank != b[i].rank {
			if a[i].rank < b[i].rank {
				return -1
			}
			return 1
		}
	}
	return 0
}

// LookupRing resolves a monocycle to its canonical name. els holds the
// ring atoms' elements in cyclic order; saturated reports whether the
// ring carries no in-ring multiple or aromatic bonds. On success it
// returns the entry plus every ring traversal consistent with the name's
// fixed heteroatom numbering.
func (t *Tables) LookupRing(els []string, saturated bool) (RingName, [][]int, bool) {
	sig, perms := CanonicalHetero(els)
	key := ringKey(len(els), sig, saturated)
	if rn, ok := t.rings[key]; ok {
		return rn, perms, true
	}
	// An unsaturated ring with no unsaturated entry (2H-pyran and friends)
	// falls back to the saturated entry; the engine warns for that case.
	if saturated {
		return RingName{}, nil, false
	}
	if rn, ok := t.rings[ringKey(len(els), sig, true)]; ok {
		return rn, perms, true
	}
	return RingName{}, nil, false
}

func ringKey(size int, sig string, saturated bool) string {
	sat := "u"
	if saturated {
		sat = "s"
	}
	return fmt.Sprintf("%d:%s:%s", size, sig, sat)
}
