// Ring-system grouping and aromaticity flagging.
package rings

import (
	"sort"

	"github.com/molgraph/nomen/molecule"
)

// Systems groups SSSR rings into ring systems: two rings belong to the
// same system iff they share at least one bond. Rings attached to the rest
// of the structure through a single acyclic bond therefore form their own
// system — the invariant that keeps pendant rings out of polycyclo counts.
// The result lists ring indices (into the input slice), each group sorted,
// groups ordered by their smallest member.
func Systems(rs []molecule.Ring) [][]int {
	n := len(rs)
	if n == 0 {
		return nil
	}

	// 1) Union-find over rings, joined by shared bonds.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	bondSets := make([]map[[2]int]struct{}, n)
	for i, r := range rs {
		bondSets[i] = make(map[[2]int]struct{}, len(r))
		for k := range r {
			bondSets[i][bondKey(r[k], r[(k+1)%len(r)])] = struct{}{}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := range bondSets[j] {
				if _, shared := bondSets[i][k]; shared {
					union(i, j)
					break
				}
			}
		}
	}

	// 2) Collect groups deterministically.
	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := find(i)
		groups[root] = append(groups[root], i)
	}
	var roots []int
	for root := range groups {
		sort.Ints(groups[root])
		roots = append(roots, root)
	}
	sort.Slice(roots, func(a, b int) bool { return groups[roots[a]][0] < groups[roots[b]][0] })

	out := make([][]int, 0, len(roots))
	for _, root := range roots {
		out = append(out, groups[root])
	}
	return out
}

// Analyze perceives SSSR rings, marks aromatic atoms and bonds, and
// returns a sealed Molecule carrying both. The input molecule is not
// modified.
func Analyze(m *molecule.Molecule) (*molecule.Molecule, error) {
	rs := SSSR(m)
	withRings := m.WithRingSet(rs)

	// Stamp aromaticity on atoms of rings perceived aromatic.
	aromaticAtoms := make(map[int]bool)
	for _, r := range rs {
		if isAromatic(withRings, r) {
			for _, id := range r {
				aromaticAtoms[id] = true
			}
		}
	}
	if len(aromaticAtoms) == 0 {
		return withRings, nil
	}

	atoms := withRings.Atoms()
	for i := range atoms {
		if aromaticAtoms[atoms[i].ID] {
			atoms[i].Aromatic = true
		}
	}
	return withRings.WithAtoms(atoms)
}

// isAromatic applies the modest aromaticity model documented in the
// package comment: declared flags, alternating even rings, or classic
// five-membered heteroaromatics.
func isAromatic(m *molecule.Molecule, r molecule.Ring) bool {
	n := len(r)

	// 1) Every atom already declared aromatic (lowercase SMILES input).
	declared := true
	for _, id := range r {
		a, _ := m.Atom(id)
		if !a.Aromatic {
			declared = false
			break
		}
	}
	if declared {
		return true
	}

	// 2) Count in-ring double bonds and locate saturated positions.
	doubles := 0
	var saturated []int
	for i, id := range r {
		next := r[(i+1)%n]
		b, ok := m.BondBetween(id, next)
		if !ok {
			return false
		}
		if b.Order == molecule.Double {
			doubles++
		}
		inDouble := false
		for _, ib := range m.BondsOf(id) {
			if ib.Order == molecule.Double && r.Contains(ib.Other(id)) {
				inDouble = true
				break
			}
		}
		if !inDouble {
			saturated = append(saturated, id)
		}
	}

	// 3) Benzene-like: even ring, perfectly alternating double bonds.
	if n%2 == 0 && doubles == n/2 && len(saturated) == 0 {
		return true
	}

	// 4) Furan/pyrrole/thiophene pattern: 5-ring, two double bonds, the
	//    single saturated position held by a lone-pair heteroatom.
	if n == 5 && doubles == 2 && len(saturated) == 1 {
		a, _ := m.Atom(saturated[0])
		switch a.Element {
		case "O", "S", "N":
			return true
		}
	}

	return false
}
