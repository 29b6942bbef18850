// Numbering (pipeline phase 3): candidate generation plus the stepwise
// locant rules. Each rule keeps only the candidates minimal for its
// criterion, compared at the first point of difference; the survivors
// flow to the next rule. The final rule stamps locants onto the parent
// and every group.
package naming

import (
	"fmt"
	"sort"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/nametab"
)

// ruleNumberingCandidates seeds the candidate set for the parent kind.
func ruleNumberingCandidates(ctx *Context) (*Context, error) {
	next := ctx.clone()
	next.Phase = PhaseNumbering

	p := next.Parent
	var cands [][]int
	switch p.Kind {
	case KindChain:
		fwd := append([]int(nil), p.Atoms...)
		rev := make([]int, len(fwd))
		for i, id := range fwd {
			rev[len(fwd)-1-i] = id
		}
		cands = [][]int{fwd, rev}
	case KindSimpleRing:
		if p.Ring != nil && len(p.ringPerms) > 0 {
			for _, perm := range p.ringPerms {
				order := make([]int, len(perm))
				for k, idx := range perm {
					order[k] = p.ringAtoms[idx]
				}
				cands = append(cands, order)
			}
		} else {
			cands = allRotations(p.ringAtoms)
		}
	default:
		cands = p.VB.orders()
	}
	next.candidates = cands
	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-14.1",
		Phase:  PhaseNumbering,
		Note:   fmt.Sprintf("%d numbering candidate(s)", len(cands)),
	})
	return next, nil
}

// ruleLowHeteroatoms keeps candidates giving skeletal heteroatoms the
// lowest locants, then the most senior replacement elements first.
func ruleLowHeteroatoms(ctx *Context) (*Context, error) {
	return applyLocantRule(ctx, "P-14.2", "lowest locants to skeletal heteroatoms",
		func(order []int) []int { return heteroLocantKey(ctx, order) })
}

// ruleLowPrincipal keeps candidates giving the principal characteristic
// groups the lowest locants.
func ruleLowPrincipal(ctx *Context) (*Context, error) {
	return applyLocantRule(ctx, "P-14.3", "lowest locants to principal groups",
		func(order []int) []int { return groupLocantKey(ctx, order) })
}

// ruleLowUnsaturation keeps candidates giving skeletal multiple bonds the
// lowest locants, double bonds breaking the tie.
func ruleLowUnsaturation(ctx *Context) (*Context, error) {
	return applyLocantRule(ctx, "P-31", "lowest locants to multiple bonds",
		func(order []int) []int { return unsatLocantKey(ctx, order) })
}

// ruleLowSubstituents keeps candidates giving detachable prefixes the
// lowest locants as a set.
func ruleLowSubstituents(ctx *Context) (*Context, error) {
	return applyLocantRule(ctx, "P-14.4", "lowest locants to substituent prefixes",
		func(order []int) []int { return substituentLocantKey(ctx, order) })
}

// ruleFinalizeNumbering resolves any remaining tie by rendered prefix
// order (alphanumerically lowest name wins), falls back to atom-ID order,
// and stamps locants.
func ruleFinalizeNumbering(ctx *Context) (*Context, error) {
	next := ctx.clone()

	cands := distinctOrders(next.candidates)
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: numbering produced no candidates", ErrNoParent)
	}
	if len(cands) > 1 {
		// Rendered-prefix comparison implements the alphanumeric tiebreak;
		// equal renderings are true symmetries and any pick is safe.
		previews := make([]string, len(cands))
		for i, order := range cands {
			previews[i] = previewPrefixBlock(next, order)
		}
		best := 0
		for i := 1; i < len(cands); i++ {
			if previews[i] < previews[best] ||
				(previews[i] == previews[best] && lessSeq(cands[i], cands[best])) {
				best = i
			}
		}
		cands = [][]int{cands[best]}
	}

	order := cands[0]
	stampNumbering(next, order)
	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-14.5",
		Phase:  PhaseNumbering,
		Atoms:  append([]int(nil), order...),
		Note:   "numbering fixed",
	})
	return next, nil
}

// applyLocantRule filters the candidate set by one locant criterion.
func applyLocantRule(ctx *Context, id, note string, key func([]int) []int) (*Context, error) {
	next := ctx.clone()
	if len(next.candidates) <= 1 {
		return next, nil
	}

	keys := make([][]int, len(next.candidates))
	best := -1
	for i, order := range next.candidates {
		keys[i] = key(order)
		if best == -1 || lessLocants(keys[i], keys[best]) {
			best = i
		}
	}
	var kept [][]int
	for i, order := range next.candidates {
		if !lessLocants(keys[best], keys[i]) {
			kept = append(kept, order)
		}
	}
	if len(kept) < len(next.candidates) {
		next.Trace = append(next.Trace, TraceEntry{
			RuleID: id,
			Phase:  PhaseNumbering,
			Note:   fmt.Sprintf("%s: %d candidate(s) remain", note, len(kept)),
		})
	}
	next.candidates = kept
	return next, nil
}

// lessLocants compares two locant keys at the first point of difference.
func lessLocants(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// heteroLocantKey lists heteroatom locants ascending, then the seniority
// ranks of the elements in locant order.
func heteroLocantKey(ctx *Context, order []int) []int {
	var locs, ranks []int
	for i, id := range order {
		a, _ := ctx.Mol.Atom(id)
		if a.Element == "C" {
			continue
		}
		rank, ok := nametab.ReplacementRank[a.Element]
		if !ok {
			rank = len(nametab.ReplacementRank)
		}
		locs = append(locs, i+1)
		ranks = append(ranks, rank)
	}
	return append(locs, ranks...)
}

// groupLocantKey lists the principal-group locants ascending.
func groupLocantKey(ctx *Context, order []int) []int {
	loc := locantsOf(order)
	var locs []int
	for _, g := range ctx.Groups {
		if !g.Principal {
			continue
		}
		if l, ok := loc[g.LocantAtom]; ok {
			locs = append(locs, l)
		}
	}
	sort.Ints(locs)
	return locs
}

// unsatLocantKey lists all skeletal multiple-bond locants ascending, then
// the double-bond locants ascending. Delocalized ring bonds carry no
// locant: a Kekulé form must number identically to its aromatic spelling.
func unsatLocantKey(ctx *Context, order []int) []int {
	loc := locantsOf(order)
	var all, doubles []int
	for _, b := range ctx.Mol.Bonds() {
		if b.Order == molecule.Single || delocalizedBond(ctx.Mol, b) {
			continue
		}
		lf, okF := loc[b.From]
		lt, okT := loc[b.To]
		if !okF || !okT {
			continue
		}
		l := bondLocant(lf, lt)
		all = append(all, l)
		if b.Order == molecule.Double {
			doubles = append(doubles, l)
		}
	}
	sort.Ints(all)
	sort.Ints(doubles)
	return append(all, doubles...)
}

// bondLocant cites a skeletal bond between two parent positions. A bond
// joining consecutive positions i, i+1 is cited at i; the non-consecutive
// pair is a ring's closure bond (positions n and 1), cited at n.
func bondLocant(lf, lt int) int {
	lo, hi := lf, lt
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi-lo == 1 {
		return lo
	}
	return hi
}

// delocalizedBond reports a bond inside an aromatic circuit, written
// either in aromatic notation or as a Kekulé double bond.
func delocalizedBond(m *molecule.Molecule, b molecule.Bond) bool {
	if b.Aromatic {
		return true
	}
	fa, _ := m.Atom(b.From)
	ta, _ := m.Atom(b.To)
	return fa.Aromatic && ta.Aromatic
}

// substituentLocantKey lists the attachment locants of detachable
// prefixes ascending.
func substituentLocantKey(ctx *Context, order []int) []int {
	loc := locantsOf(order)
	consumed := consumedAtoms(ctx)
	var locs []int
	for i, id := range order {
		for _, nb := range ctx.Mol.Neighbors(id) {
			if _, inParent := loc[nb]; inParent || consumed[nb] {
				continue
			}
			locs = append(locs, i+1)
		}
	}
	sort.Ints(locs)
	return locs
}

// consumedAtoms collects atoms expressed by the suffix (or by a ring's
// absorbed carbonyl): they are invisible to the substituent walk.
func consumedAtoms(ctx *Context) map[int]bool {
	consumed := make(map[int]bool)
	for _, g := range ctx.Groups {
		if !g.Principal && !g.Absorbed {
			continue
		}
		for _, id := range g.Atoms {
			if id == g.LocantAtom {
				continue
			}
			if ctx.Parent != nil && ctx.Parent.Contains(id) {
				continue
			}
			consumed[id] = true
		}
	}
	return consumed
}

func locantsOf(order []int) map[int]int {
	loc := make(map[int]int, len(order))
	for i, id := range order {
		loc[id] = i + 1
	}
	return loc
}

// stampNumbering writes the winning order onto the parent and rewrites
// every on-parent group's locants.
func stampNumbering(ctx *Context, order []int) {
	p := ctx.Parent
	p.Atoms = append([]int(nil), order...)
	p.Locants = locantsOf(order)

	p.DoubleBonds, p.TripleBonds = nil, nil
	for _, b := range ctx.Mol.Bonds() {
		if delocalizedBond(ctx.Mol, b) {
			continue
		}
		lf, okF := p.Locants[b.From]
		lt, okT := p.Locants[b.To]
		if !okF || !okT {
			continue
		}
		l := bondLocant(lf, lt)
		switch b.Order {
		case molecule.Double:
			p.DoubleBonds = append(p.DoubleBonds, l)
		case molecule.Triple:
			p.TripleBonds = append(p.TripleBonds, l)
		}
	}
	sort.Ints(p.DoubleBonds)
	sort.Ints(p.TripleBonds)

	for i := range ctx.Groups {
		g := &ctx.Groups[i]
		if l, ok := p.Locants[g.LocantAtom]; ok {
			g.Locants = []int{l}
		}
	}
}

// distinctOrders deduplicates identical candidate orders.
func distinctOrders(cands [][]int) [][]int {
	var out [][]int
	seen := map[string]bool{}
	for _, order := range cands {
		buf := make([]byte, 0, 4*len(order))
		for _, id := range order {
			buf = append(buf, byte(id), byte(id>>8), byte(id>>16), ',')
		}
		if key := string(buf); !seen[key] {
			seen[key] = true
			out = append(out, order)
		}
	}
	return out
}

// allRotations yields all 2n traversals of a cycle.
func allRotations(ring []int) [][]int {
	n := len(ring)
	var out [][]int
	for dir := 0; dir < 2; dir++ {
		for start := 0; start < n; start++ {
			order := make([]int, n)
			for k := 0; k < n; k++ {
				if dir == 0 {
					order[k] = ring[(start+k)%n]
				} else {
					order[k] = ring[((start-k)%n+n)%n]
				}
			}
			out = append(out, order)
		}
	}
	return out
}
