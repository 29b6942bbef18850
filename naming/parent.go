// Parent-structure selection (pipeline phase 2).
//
// Candidate parents are every maximal acyclic carbon chain and every ring
// system. Selection order: structures containing the most principal-group
// carriers win outright; rings beat chains at equal containment; size
// breaks the next tie; the lowest leading atom ID makes the choice
// deterministic.
package naming

import (
	"fmt"
	"sort"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/rings"
)

// parentCandidate is one scored candidate structure.
type parentCandidate struct {
	atoms    []int // chain order, or ring-system members sorted
	isRing   bool
	system   []molecule.Ring // non-nil for ring candidates
	contains int
	size     int
}

// ruleSelectParent scores all candidates and installs the winner.
func ruleSelectParent(ctx *Context) (*Context, error) {
	next := ctx.clone()
	next.Phase = PhaseParentSelection

	principal := make(map[int]bool)
	for _, g := range next.Groups {
		if g.Principal {
			principal[g.LocantAtom] = true
		}
	}

	var cands []parentCandidate
	rs := ctx.Mol.Rings()
	for _, idxs := range rings.Systems(rs) {
		sys := make([]molecule.Ring, 0, len(idxs))
		for _, i := range idxs {
			sys = append(sys, rs[i])
		}
		cands = append(cands, ringCandidate(sys, principal))
	}
	for _, chain := range maximalChains(ctx) {
		cands = append(cands, chainCandidate(chain, principal))
	}
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: no carbon chain or ring to serve as parent", ErrNoParent)
	}

	sort.SliceStable(cands, func(i, j int) bool { return betterParent(cands[i], cands[j]) })
	win := cands[0]

	parent, err := next.buildParent(win)
	if err != nil {
		return nil, err
	}
	next.Parent = parent

	// Principal groups falling outside the parent skeleton are demoted to
	// prefixes; the substituent walk will cite them.
	demoted := 0
	for i := range next.Groups {
		g := &next.Groups[i]
		if g.Principal && !parent.Contains(g.LocantAtom) {
			g.Principal = false
			demoted++
		}
	}
	if demoted > 0 {
		next.warn(fmt.Sprintf("%d principal group(s) fall outside the parent and were demoted to prefixes", demoted), 0.05)
	}

	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-44",
		Phase:  PhaseParentSelection,
		Atoms:  append([]int(nil), parent.Atoms...),
		Note:   fmt.Sprintf("selected %s parent (%d atoms)", parent.Kind, len(parent.Atoms)),
	})
	return next, nil
}

// betterParent orders candidates best-first.
func betterParent(a, b parentCandidate) bool {
	if a.contains != b.contains {
		return a.contains > b.contains
	}
	if a.isRing != b.isRing {
		return a.isRing
	}
	if a.size != b.size {
		return a.size > b.size
	}
	return leadAtom(a) < leadAtom(b)
}

func leadAtom(c parentCandidate) int {
	lead := 1 << 30
	for _, id := range c.atoms {
		if id < lead {
			lead = id
		}
	}
	return lead
}

func ringCandidate(sys []molecule.Ring, principal map[int]bool) parentCandidate {
	set := map[int]bool{}
	for _, r := range sys {
		for _, id := range r {
			set[id] = true
		}
	}
	atoms := make([]int, 0, len(set))
	contains := 0
	for id := range set {
		atoms = append(atoms, id)
		if principal[id] {
			contains++
		}
	}
	sort.Ints(atoms)
	return parentCandidate{atoms: atoms, isRing: true, system: sys, contains: contains, size: len(atoms)}
}

func chainCandidate(chain []int, principal map[int]bool) parentCandidate {
	contains := 0
	for _, id := range chain {
		if principal[id] {
			contains++
		}
	}
	return parentCandidate{atoms: chain, contains: contains, size: len(chain)}
}

// maximalChains enumerates every maximal simple path through the acyclic
// carbon subgraph. Paths are deduplicated against their reversals.
func maximalChains(ctx *Context) [][]int {
	m := ctx.Mol
	eligible := map[int]bool{}
	for _, id := range m.AtomIDs() {
		a, _ := m.Atom(id)
		if a.Element == "C" && !m.InRing(id) {
			eligible[id] = true
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	adj := map[int][]int{}
	for id := range eligible {
		for _, nb := range m.Neighbors(id) {
			if eligible[nb] {
				adj[id] = append(adj[id], nb)
			}
		}
		sort.Ints(adj[id])
	}

	seen := map[string]bool{}
	var out [][]int
	var path []int
	onPath := map[int]bool{}

	var extend func(cur int)
	extend = func(cur int) {
		path = append(path, cur)
		onPath[cur] = true
		grew := false
		for _, nb := range adj[cur] {
			if !onPath[nb] {
				grew = true
				extend(nb)
			}
		}
		if !grew {
			// Ends at a leaf; the outer loop only starts at leaves, so the
			// whole path is maximal.
			key := chainKey(path)
			if !seen[key] {
				seen[key] = true
				out = append(out, append([]int(nil), path...))
			}
		}
		delete(onPath, cur)
		path = path[:len(path)-1]
	}

	starts := make([]int, 0, len(eligible))
	for id := range eligible {
		starts = append(starts, id)
	}
	sort.Ints(starts)
	for _, id := range starts {
		if isChainLeaf(id, adj) {
			extend(id)
		}
	}
	return out
}

// isChainLeaf reports whether id can start a maximal path: a degree ≤ 1
// endpoint of the eligible subgraph.
func isChainLeaf(id int, adj map[int][]int) bool {
	return len(adj[id]) <= 1
}

// chainKey canonicalizes a path against its reversal.
func chainKey(path []int) string {
	n := len(path)
	fwd := n == 1 || path[0] < path[n-1]
	buf := make([]byte, 0, 4*n)
	for i := 0; i < n; i++ {
		idx := i
		if !fwd {
			idx = n - 1 - i
		}
		buf = append(buf, byte(path[idx]), byte(path[idx]>>8), byte(path[idx]>>16), ',')
	}
	return string(buf)
}

// buildParent converts the winning candidate into a Parent skeleton.
// Numbering is left to the next phase.
func (c *Context) buildParent(win parentCandidate) (*Parent, error) {
	if !win.isRing {
		return &Parent{Kind: KindChain, Atoms: win.atoms}, nil
	}
	if len(win.system) == 1 {
		return c.buildSimpleRing(win.system[0])
	}
	return c.buildPolycyclic(win)
}

// buildSimpleRing resolves a monocycle against the ring alias table,
// falling back to generative naming for carbocycles and replacement
// naming for unlisted heterocycles.
func (c *Context) buildSimpleRing(r molecule.Ring) (*Parent, error) {
	atoms := append([]int(nil), r...)
	els, saturated, aromatic := ringProfile(c, atoms)
	hetero := false
	for _, e := range els {
		if e != "C" {
			hetero = true
		}
	}

	p := &Parent{Kind: KindSimpleRing, Atoms: atoms, ringAtoms: atoms}
	if rn, perms, ok := lookupRingName(c, els, saturated, aromatic); ok {
		if rn.Saturated && !saturated {
			c.warn(fmt.Sprintf("no unsaturated name for %d-ring; using %s", len(atoms), rn.Name), 0.1)
		}
		p.Ring = &rn
		p.ringPerms = perms
		return p, nil
	}
	if hetero {
		c.warn(fmt.Sprintf("unlisted %d-membered heterocycle named by skeletal replacement", len(atoms)), 0.1)
	}
	return p, nil
}

// buildPolycyclic runs von Baeyer analysis on a multi-ring system.
func (c *Context) buildPolycyclic(win parentCandidate) (*Parent, error) {
	vb, err := analyzeVonBaeyer(c.Mol, win.atoms)
	if err != nil {
		return nil, err
	}
	kind := KindBridgedRingSystem
	if vb.Fused() {
		kind = KindFusedRingSystem
	}
	return &Parent{Kind: kind, Atoms: win.atoms, VB: vb}, nil
}
