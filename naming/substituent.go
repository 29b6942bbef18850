// Substituent assembly (pipeline phase 4): recursive branch naming,
// nested enclosure, merging of identical prefixes, and alphabetization.
package naming

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/nametab"
	"github.com/molgraph/nomen/rings"
)

// ruleAssembleSubstituents names every branch hanging off the parent,
// renders the ester O-side component when the principal group is an
// ester, and stores the merged prefix block.
func ruleAssembleSubstituents(ctx *Context) (*Context, error) {
	next := ctx.clone()
	next.Phase = PhaseSubstituentAssembly

	as := newAssembler(next, next.Parent.Locants)
	subs := as.parentPrefixes()

	for _, g := range next.Groups {
		if g.Class == ClassEster && g.Principal {
			next.EsterAlkyl = as.esterAlkyl(g)
			break
		}
	}

	as.flush(next)
	next.Parent.Substituents = subs
	next.Prefixes = renderPrefixBlock(subs, next.omitPrefixLocants(subs))

	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-29",
		Phase:  PhaseSubstituentAssembly,
		Note:   fmt.Sprintf("%d substituent prefix(es)", len(subs)),
	})
	return next, nil
}

// omitPrefixLocants reports whether attachment locants may be dropped:
// one- and two-carbon chains with a single unambiguous citation, and a
// lone substituent on a ring whose positions are interchangeable
// (chlorobenzene, methylcyclohexane). A heteroatom, an ene
// locant, or a principal group pins ring positions, so 2-methylpyridine
// and 1-methylcyclohex-1-ene keep theirs.
func (c *Context) omitPrefixLocants(subs []*Substituent) bool {
	citations := 0
	for _, s := range subs {
		citations += len(s.Locants)
	}
	if c.Parent.Kind == KindChain {
		n := len(c.Parent.Atoms)
		if n == 1 {
			return true
		}
		return n == 2 && citations == 1 && !c.hasPrincipal()
	}
	if c.Parent.Kind != KindSimpleRing || citations != 1 || c.hasPrincipal() {
		return false
	}
	for _, id := range c.Parent.Atoms {
		if a, _ := c.Mol.Atom(id); a.Element != "C" {
			return false
		}
	}
	// Delocalized bonds are never stamped, so benzene passes here while
	// cyclohexene keeps its ene-pinned locant.
	return len(c.Parent.DoubleBonds)+len(c.Parent.TripleBonds) == 0
}

func (c *Context) hasPrincipal() bool {
	for _, g := range c.Groups {
		if g.Principal {
			return true
		}
	}
	return false
}

// assembler carries the shared state of one branch-naming walk.
type assembler struct {
	ctx      *Context
	loc      map[int]int // parent atom → locant
	consumed map[int]bool
	visiting map[int]bool
	warnings []string
	penalty  float64
}

// builtSub is one named branch before attachment bookkeeping.
type builtSub struct {
	name    string
	complex bool
}

func newAssembler(ctx *Context, loc map[int]int) *assembler {
	return &assembler{
		ctx:      ctx,
		loc:      loc,
		consumed: consumedAtoms(ctx),
		visiting: make(map[int]bool),
	}
}

// flush applies collected diagnostics to the context (previews skip it).
func (as *assembler) flush(ctx *Context) {
	for _, w := range as.warnings {
		ctx.Warnings = append(ctx.Warnings, w)
	}
	ctx.Confidence -= as.penalty
	if ctx.Confidence < 0.05 {
		ctx.Confidence = 0.05
	}
}

func (as *assembler) warn(msg string, penalty float64) {
	as.warnings = append(as.warnings, msg)
	as.penalty += penalty
}

// parentPrefixes walks every parent atom and names its branches. For a
// principal amide the nitrogen's own substituents are cited with the
// italic-N locant.
func (as *assembler) parentPrefixes() []*Substituent {
	m := as.ctx.Mol
	byLocant := make([]int, len(as.loc)+1)
	for id, l := range as.loc {
		byLocant[l] = id
	}
	var subs []*Substituent
	for l := 1; l < len(byLocant); l++ {
		id := byLocant[l]
		for _, nb := range m.Neighbors(id) {
			if _, inParent := as.loc[nb]; inParent || as.consumed[nb] {
				continue
			}
			b := as.branchName(id, nb)
			subs = append(subs, &Substituent{
				Name:    b.name,
				Locants: []string{strconv.Itoa(l)},
				Complex: b.complex,
			})
		}
	}
	for _, g := range as.ctx.Groups {
		if g.Class != ClassAmide || !g.Principal || len(g.Atoms) < 3 {
			continue
		}
		nid := g.Atoms[2]
		for _, nb := range m.Neighbors(nid) {
			if nb == g.LocantAtom {
				continue
			}
			b := as.branchName(nid, nb)
			subs = append(subs, &Substituent{
				Name:    b.name,
				Locants: []string{"N"},
				Complex: b.complex,
			})
		}
	}
	return subs
}

// esterAlkyl renders the O-side component of an ester, enclosed when its
// name is not a simple substituent.
func (as *assembler) esterAlkyl(g Group) string {
	m := as.ctx.Mol
	if len(g.Atoms) < 3 {
		return ""
	}
	bridge := g.Atoms[2]
	for _, nb := range m.Neighbors(bridge) {
		if nb == g.LocantAtom {
			continue
		}
		b := as.branchName(bridge, nb)
		if b.complex {
			return "[" + b.name + "]"
		}
		return b.name
	}
	return ""
}

// branchName names the branch rooted at root, entered from atom from.
func (as *assembler) branchName(from, root int) builtSub {
	if as.visiting[root] {
		return as.generic(root, "cyclic fragment re-entered")
	}
	as.visiting[root] = true
	defer delete(as.visiting, root)

	m := as.ctx.Mol
	a, _ := m.Atom(root)
	bond, _ := m.BondBetween(from, root)

	if p, ok := nametab.HaloPrefix[a.Element]; ok {
		return builtSub{name: p}
	}

	switch a.Element {
	case "O":
		if bond.Order == 2 {
			return builtSub{name: "oxo"}
		}
		return as.oxyBranch(from, root)
	case "S":
		if bond.Order == 2 {
			return builtSub{name: "sulfanylidene"}
		}
		return as.sulfanylBranch(from, root)
	case "N":
		if bond.Order == 2 {
			return builtSub{name: "imino"}
		}
		return as.aminoBranch(from, root)
	case "C":
		if m.InRing(root) {
			prefix, base, complexBase := as.ringSubName(from, root, "")
			return builtSub{name: prefix + base, complex: prefix != "" || complexBase}
		}
		return as.chainSubstituent(from, root)
	default:
		return as.generic(root, "element "+a.Element)
	}
}

// oxyBranch names -OH and -OR branches.
func (as *assembler) oxyBranch(from, root int) builtSub {
	m := as.ctx.Mol
	a, _ := m.Atom(root)
	onward := as.onwardNeighbor(from, root)
	if onward == 0 {
		if a.Hydrogens > 0 || a.Charge < 0 || m.Degree(root) == 1 {
			return builtSub{name: "hydroxy"}
		}
		return as.generic(root, "dangling oxygen")
	}
	return as.linkedBranch(from, root, onward, "oxy")
}

// sulfanylBranch names -SH and -SR branches.
func (as *assembler) sulfanylBranch(from, root int) builtSub {
	m := as.ctx.Mol
	a, _ := m.Atom(root)
	onward := as.onwardNeighbor(from, root)
	if onward == 0 {
		if a.Hydrogens > 0 || a.Charge < 0 || m.Degree(root) == 1 {
			return builtSub{name: "sulfanyl"}
		}
		return as.generic(root, "dangling sulfur")
	}
	return as.linkedBranch(from, root, onward, "sulfanyl")
}

// aminoBranch names -NO2, -NH2, and -NHR branches.
func (as *assembler) aminoBranch(from, root int) builtSub {
	m := as.ctx.Mol
	if as.isNitro(root) {
		return builtSub{name: "nitro"}
	}
	var onwards []int
	for _, nb := range m.Neighbors(root) {
		if nb != from && !as.consumed[nb] {
			onwards = append(onwards, nb)
		}
	}
	switch len(onwards) {
	case 0:
		return builtSub{name: "amino"}
	case 1:
		return as.linkedBranch(from, root, onwards[0], "amino")
	default:
		// Disubstituted nitrogen: cite both branches, alphabetized.
		var parts []string
		for _, nb := range onwards {
			parts = append(parts, as.branchName(root, nb).name)
		}
		sort.Strings(parts)
		return builtSub{name: strings.Join(parts, "-") + "amino", complex: true}
	}
}

// linkedBranch composes an inner substituent with a linking unit (oxy,
// sulfanyl, amino), contracting through the alias table where possible.
// Contracted spellings (methoxy, anilino) count as simple names; open
// compositions (methylsulfanyl) stay complex so they multiply with
// bis/tris.
func (as *assembler) linkedBranch(from, root, onward int, link string) builtSub {
	m := as.ctx.Mol
	oa, _ := m.Atom(onward)

	if oa.Element == "C" && m.InRing(onward) {
		prefix, base, complexBase := as.ringSubName(root, onward, link)
		return builtSub{name: prefix + base, complex: prefix != "" || complexBase}
	}

	inner := as.branchName(root, onward)
	combined := inner.name + link
	if canon, ok := contractAlias(as.ctx.Tables.Aliases, combined); ok {
		return builtSub{name: canon, complex: inner.complex}
	}
	if inner.complex {
		return builtSub{name: enclose(inner.name) + link, complex: true}
	}
	return builtSub{name: combined, complex: true}
}

// contractAlias runs the greedy longest-match walk over the alias table
// and contracts only when the matched alias covers the whole spelling: a
// bare head hit (benzyl inside benzyloxy) leaves the composition open.
func contractAlias(at nametab.AliasTable, spelling string) (string, bool) {
	id, alias, ok := at.MatchLongest(spelling)
	if !ok || alias != spelling {
		return "", false
	}
	return id, true
}

// ringSubName names a ring-borne substituent: its own prefixes plus the
// -yl base. link composes the base with a linking unit first, so the
// alias table can contract the unsubstituted core (phenyl + amino →
// anilino) while ring prefixes stay outside.
func (as *assembler) ringSubName(from, root int, link string) (prefix, base string, complexBase bool) {
	m := as.ctx.Mol
	rs := m.Rings()
	sysIdx := -1
	groups := rings.Systems(rs)
	for gi, idxs := range groups {
		for _, ri := range idxs {
			if rs[ri].Contains(root) {
				sysIdx = gi
			}
		}
	}
	if sysIdx == -1 {
		as.warn(fmt.Sprintf("atom %d flagged in-ring without a perceived ring", root), 0.2)
		return "", "carbocyclyl", true
	}
	idxs := groups[sysIdx]
	if len(idxs) > 1 {
		return as.polycyclicSubName(idxs, rs, from, root, link)
	}

	r := rs[idxs[0]]
	els, saturated, aromatic := ringProfile(as.ctx, r)

	rn, perms, ok := lookupRingName(as.ctx, els, saturated, aromatic)
	if !ok {
		perms = allPerms(len(r))
	}

	order, att := as.bestRingOrder(r, perms, root, from)
	ringSubs := as.ringPrefixes(r, order, from, root)
	prefix = renderPrefixBlock(ringSubs, false)

	switch {
	case ok && rn.Yl != "":
		base = rn.Yl
	case ok:
		base = trimFinalE(rn.Name) + "-" + strconv.Itoa(att) + "-yl"
		complexBase = true
	default:
		base = as.generativeRingYl(r, order, att)
		complexBase = strings.ContainsAny(base, "0123456789")
	}

	if link != "" {
		combined := base + link
		if canon, ok := contractAlias(as.ctx.Tables.Aliases, combined); ok {
			base = canon
		} else {
			base = combined
			complexBase = true
		}
	}
	return prefix, base, complexBase
}

// bestRingOrder picks the traversal giving the attachment the lowest
// locant, then the ring's own substituents the lowest locants.
func (as *assembler) bestRingOrder(r []int, perms [][]int, root, from int) ([]int, int) {
	type cand struct {
		order []int
		att   int
		key   []int
	}
	var best *cand
	for _, perm := range perms {
		order := make([]int, len(perm))
		att := 0
		for k, idx := range perm {
			order[k] = r[idx]
			if order[k] == root {
				att = k + 1
			}
		}
		key := as.ringSubKey(order, from, root)
		c := &cand{order: order, att: att, key: key}
		if best == nil || c.att < best.att ||
			(c.att == best.att && lessLocants(c.key, best.key)) {
			best = c
		}
	}
	return best.order, best.att
}

// ringSubKey lists the locants of ring positions carrying branches.
func (as *assembler) ringSubKey(order []int, from, root int) []int {
	m := as.ctx.Mol
	inRing := map[int]bool{}
	for _, id := range order {
		inRing[id] = true
	}
	var locs []int
	for i, id := range order {
		for _, nb := range m.Neighbors(id) {
			if inRing[nb] || as.consumed[nb] {
				continue
			}
			if id == root && nb == from {
				continue
			}
			locs = append(locs, i+1)
		}
	}
	sort.Ints(locs)
	return locs
}

// ringPrefixes names the branches on a ring substituent's own atoms.
func (as *assembler) ringPrefixes(r, order []int, from, root int) []*Substituent {
	m := as.ctx.Mol
	inRing := map[int]bool{}
	for _, id := range order {
		inRing[id] = true
	}
	var subs []*Substituent
	for i, id := range order {
		for _, nb := range m.Neighbors(id) {
			if inRing[nb] || as.consumed[nb] {
				continue
			}
			if id == root && nb == from {
				continue
			}
			b := as.branchName(id, nb)
			subs = append(subs, &Substituent{
				Name:    b.name,
				Locants: []string{strconv.Itoa(i + 1)},
				Complex: b.complex,
			})
		}
	}
	return subs
}

// generativeRingYl builds cycloalkyl-style bases for rings without a
// table entry, citing skeletal heteroatoms by replacement prefixes.
func (as *assembler) generativeRingYl(r, order []int, att int) string {
	stem, ok := nametab.AlkaneStem(len(r))
	if !ok {
		as.warn(fmt.Sprintf("ring of %d atoms exceeds the stem table", len(r)), 0.2)
		return "macrocyclyl"
	}
	var sb strings.Builder
	sb.WriteString(replacementPrefixes(as.ctx, order))
	sb.WriteString("cyclo")
	sb.WriteString(stem)
	if att > 1 {
		sb.WriteString("an-")
		sb.WriteString(strconv.Itoa(att))
		sb.WriteString("-")
	}
	sb.WriteString("yl")
	return sb.String()
}

// polycyclicSubName names a substituent rooted in a multi-ring system via
// its von Baeyer skeleton. The attachment locant comes from the system's
// default numbering; ring-borne branches are walked like any others.
func (as *assembler) polycyclicSubName(idxs []int, rs []molecule.Ring, from, root int, link string) (string, string, bool) {
	set := map[int]bool{}
	for _, ri := range idxs {
		for _, id := range rs[ri] {
			set[id] = true
		}
	}
	atoms := make([]int, 0, len(set))
	for id := range set {
		atoms = append(atoms, id)
	}
	sort.Ints(atoms)

	vb, err := analyzeVonBaeyer(as.ctx.Mol, atoms)
	if err != nil {
		as.warn(fmt.Sprintf("polycyclic substituent at atom %d could not be decomposed", root), 0.2)
		return "", "polycyclyl", true
	}

	// Prefer the candidate order placing the attachment lowest.
	var order []int
	att := 0
	for _, cand := range vb.orders() {
		p := posOf(cand, root)
		if order == nil || (p != 0 && (att == 0 || p < att)) {
			order, att = cand, p
		}
	}
	if att == 0 {
		att = 1
	}

	ringSubs := as.ringPrefixes(atoms, order, from, root)
	prefix := renderPrefixBlock(ringSubs, false)

	stem, ok := nametab.AlkaneStem(len(order))
	if !ok {
		as.warn(fmt.Sprintf("polycyclic substituent of %d atoms exceeds the stem table", len(order)), 0.2)
		return prefix, "polycyclyl", true
	}
	cyclo, ok := nametab.Polycyclo(vb.RingCount)
	if !ok {
		cyclo = "polycyclo"
	}
	base := replacementPrefixes(as.ctx, order) + cyclo +
		vbDescriptor(vb, locantsOf(order)) + stem + "an-" + strconv.Itoa(att) + "-yl"
	return prefix, base, true
}

// generic produces the placeholder name for unrecognized fragments.
func (as *assembler) generic(root int, why string) builtSub {
	a, _ := as.ctx.Mol.Atom(root)
	as.warn(fmt.Sprintf("unrecognized fragment at atom %d (%s); generic name used", root, why), 0.2)
	return builtSub{name: strings.ToLower(a.Element) + "anyl", complex: false}
}

// onwardNeighbor returns root's sole eligible continuation, or 0.
func (as *assembler) onwardNeighbor(from, root int) int {
	for _, nb := range as.ctx.Mol.Neighbors(root) {
		if nb != from && !as.consumed[nb] {
			return nb
		}
	}
	return 0
}

// isNitro matches the detector's nitro pattern.
func (as *assembler) isNitro(nid int) bool {
	m := as.ctx.Mol
	oxys, charged := 0, false
	for _, b := range m.BondsOf(nid) {
		nb := b.Other(nid)
		na, _ := m.Atom(nb)
		if na.Element != "O" || m.Degree(nb) != 1 {
			continue
		}
		if b.Order == 2 || na.Charge != 0 {
			charged = true
		}
		oxys++
	}
	return oxys == 2 && charged
}

// chainSubstituent names an acyclic carbon branch: principal subchain,
// direction, own prefixes, unsaturation, and the -yl attachment.
func (as *assembler) chainSubstituent(from, root int) builtSub {
	m := as.ctx.Mol

	members := as.branchCarbons(from, root)
	chain := as.pickSubChain(members, from, root)
	chain = as.orientSubChain(chain, from, root)

	inChain := map[int]bool{}
	for _, id := range chain {
		inChain[id] = true
	}

	var subs []*Substituent
	for i, id := range chain {
		for _, nb := range m.Neighbors(id) {
			if inChain[nb] || as.consumed[nb] {
				continue
			}
			if id == root && nb == from {
				continue
			}
			b := as.branchName(id, nb)
			subs = append(subs, &Substituent{
				Name:    b.name,
				Locants: []string{strconv.Itoa(i + 1)},
				Complex: b.complex,
			})
		}
	}

	var enes, ynes []int
	for i := 0; i+1 < len(chain); i++ {
		if b, ok := m.BondBetween(chain[i], chain[i+1]); ok {
			switch b.Order {
			case 2:
				enes = append(enes, i+1)
			case 3:
				ynes = append(ynes, i+1)
			}
		}
	}

	rootPos := 0
	for i, id := range chain {
		if id == root {
			rootPos = i + 1
		}
	}

	stem, ok := nametab.AlkaneStem(len(chain))
	if !ok {
		return as.generic(root, fmt.Sprintf("chain of %d atoms exceeds the stem table", len(chain)))
	}

	omit := len(chain) == 1
	prefix := renderPrefixBlock(subs, omit)

	base := stem
	unsat := len(enes)+len(ynes) > 0
	if unsat {
		base += hydridePart(enes, "en") + hydridePart(ynes, "yn")
		base += "-" + strconv.Itoa(rootPos) + "-yl"
	} else if rootPos > 1 {
		base += "an-" + strconv.Itoa(rootPos) + "-yl"
	} else {
		base += "yl"
	}

	name := prefix + base
	if canon := as.ctx.Tables.Aliases.Canonical(name); canon != "" {
		return builtSub{name: canon}
	}
	complexName := prefix != "" || unsat || rootPos > 1
	return builtSub{name: name, complex: complexName}
}

// branchCarbons collects the acyclic carbons reachable from root without
// crossing back through from.
func (as *assembler) branchCarbons(from, root int) map[int]bool {
	m := as.ctx.Mol
	members := map[int]bool{}
	var walk func(id int)
	walk = func(id int) {
		members[id] = true
		for _, nb := range m.Neighbors(id) {
			na, _ := m.Atom(nb)
			if nb == from || members[nb] || na.Element != "C" || m.InRing(nb) {
				continue
			}
			walk(nb)
		}
	}
	walk(root)
	return members
}

// pickSubChain selects the branch's principal subchain: longest, then
// carrying the most branches, then lexicographically lowest.
func (as *assembler) pickSubChain(members map[int]bool, from, root int) []int {
	m := as.ctx.Mol
	adj := map[int][]int{}
	for id := range members {
		for _, nb := range m.Neighbors(id) {
			if members[nb] {
				adj[id] = append(adj[id], nb)
			}
		}
		sort.Ints(adj[id])
	}

	var best []int
	bestBranches := -1
	var path []int
	on := map[int]bool{}

	consider := func() {
		hasRoot := false
		for _, id := range path {
			if id == root {
				hasRoot = true
			}
		}
		if !hasRoot {
			return
		}
		branches := as.countOffChain(path, from, root)
		switch {
		case best == nil,
			len(path) > len(best),
			len(path) == len(best) && branches > bestBranches,
			len(path) == len(best) && branches == bestBranches && lessSeq(path, best):
			best = append([]int(nil), path...)
			bestBranches = branches
		}
	}

	var dfs func(cur int)
	dfs = func(cur int) {
		path = append(path, cur)
		on[cur] = true
		grew := false
		for _, nb := range adj[cur] {
			if !on[nb] {
				grew = true
				dfs(nb)
			}
		}
		if !grew {
			consider()
		}
		delete(on, cur)
		path = path[:len(path)-1]
	}

	var leaves []int
	for id := range members {
		if len(adj[id]) <= 1 {
			leaves = append(leaves, id)
		}
	}
	sort.Ints(leaves)
	for _, id := range leaves {
		dfs(id)
	}
	if best == nil {
		best = []int{root}
	}
	return best
}

// countOffChain counts branch attachments hanging off a candidate chain.
func (as *assembler) countOffChain(chain []int, from, root int) int {
	m := as.ctx.Mol
	inChain := map[int]bool{}
	for _, id := range chain {
		inChain[id] = true
	}
	count := 0
	for _, id := range chain {
		for _, nb := range m.Neighbors(id) {
			if inChain[nb] || as.consumed[nb] {
				continue
			}
			if id == root && nb == from {
				continue
			}
			count++
		}
	}
	return count
}

// orientSubChain numbers the subchain from the end giving the attachment
// point the lower locant, branch locants breaking the tie.
func (as *assembler) orientSubChain(chain []int, from, root int) []int {
	rev := make([]int, len(chain))
	for i, id := range chain {
		rev[len(chain)-1-i] = id
	}
	fwdRoot, revRoot := posOf(chain, root), posOf(rev, root)
	if fwdRoot != revRoot {
		if revRoot < fwdRoot {
			return rev
		}
		return chain
	}
	fwdKey := as.subChainKey(chain, from, root)
	revKey := as.subChainKey(rev, from, root)
	if lessLocants(revKey, fwdKey) {
		return rev
	}
	return chain
}

// subChainKey lists branch locants along one subchain orientation.
func (as *assembler) subChainKey(chain []int, from, root int) []int {
	m := as.ctx.Mol
	inChain := map[int]bool{}
	for _, id := range chain {
		inChain[id] = true
	}
	var locs []int
	for i, id := range chain {
		for _, nb := range m.Neighbors(id) {
			if inChain[nb] || as.consumed[nb] {
				continue
			}
			if id == root && nb == from {
				continue
			}
			locs = append(locs, i+1)
		}
	}
	sort.Ints(locs)
	return locs
}

func posOf(chain []int, id int) int {
	for i, c := range chain {
		if c == id {
			return i + 1
		}
	}
	return 0
}

// previewPrefixBlock renders the prefix block a candidate numbering would
// produce, without touching the context's diagnostics.
func previewPrefixBlock(ctx *Context, order []int) string {
	as := newAssembler(ctx, locantsOf(order))
	subs := as.parentPrefixes()
	return renderPrefixBlock(subs, false)
}

// renderPrefixBlock merges identical substituent names, alphabetizes by
// letters-only key, applies di/tri or bis/tris multiplication, and joins
// the pieces.
func renderPrefixBlock(subs []*Substituent, omitLocants bool) string {
	type entry struct {
		name      string
		complex   bool
		locants   []string
		renderLoc bool
	}
	byName := map[string]*entry{}
	var names []string
	for _, s := range subs {
		e, ok := byName[s.Name]
		if !ok {
			e = &entry{name: s.Name, complex: s.Complex, renderLoc: !omitLocants && len(s.Locants) > 0}
			byName[s.Name] = e
			names = append(names, s.Name)
		}
		e.locants = append(e.locants, s.Locants...)
	}

	sort.Slice(names, func(i, j int) bool {
		ki, kj := alphaKey(names[i]), alphaKey(names[j])
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})

	var pieces []string
	for _, n := range names {
		e := byName[n]
		sortLocantLabels(e.locants)
		count := len(e.locants)
		if count == 0 {
			count = 1
		}

		var sb strings.Builder
		if e.renderLoc {
			sb.WriteString(strings.Join(e.locants, ","))
			sb.WriteString("-")
		}
		if count > 1 {
			if e.complex {
				sb.WriteString(nametab.ComplexMultiplier(count))
				sb.WriteString(enclose(e.name))
			} else {
				sb.WriteString(nametab.Multiplier(count))
				sb.WriteString(e.name)
			}
		} else if e.complex {
			sb.WriteString(enclose(e.name))
		} else {
			sb.WriteString(e.name)
		}
		pieces = append(pieces, sb.String())
	}
	return strings.Join(pieces, "-")
}

// alphaKey strips everything but letters for alphabetization, so
// multiplying prefixes inside complex names still count while locants and
// enclosures do not.
func alphaKey(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return strings.ToLower(sb.String())
}

// sortLocantLabels orders numeric labels numerically, letter labels after.
func sortLocantLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		ni, ei := strconv.Atoi(labels[i])
		nj, ej := strconv.Atoi(labels[j])
		if ei == nil && ej == nil {
			return ni < nj
		}
		if ei == nil {
			return true
		}
		if ej == nil {
			return false
		}
		return labels[i] < labels[j]
	})
}

// enclose wraps a complex name in the innermost unused enclosing mark.
func enclose(name string) string {
	switch {
	case !strings.ContainsAny(name, "()[]{}"):
		return "(" + name + ")"
	case !strings.ContainsAny(name, "[]{}"):
		return "[" + name + "]"
	default:
		return "{" + name + "}"
	}
}

// hydridePart renders one unsaturation segment ("-2-en", "a-1,3-dien").
func hydridePart(locs []int, kind string) string {
	if len(locs) == 0 {
		return ""
	}
	var sb strings.Builder
	mult := nametab.Multiplier(len(locs))
	if mult != "" {
		sb.WriteString("a")
	}
	sb.WriteString("-")
	for i, l := range locs {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.Itoa(l))
	}
	sb.WriteString("-")
	sb.WriteString(mult)
	sb.WriteString(kind)
	return sb.String()
}

// trimFinalE drops a trailing "e" before a vowel- or locant-led suffix.
func trimFinalE(name string) string {
	return strings.TrimSuffix(name, "e")
}

// replacementPrefixes renders skeletal-heteroatom replacement prefixes
// ("4,8,16-trioxa-2-aza") for the given numbering order.
func replacementPrefixes(ctx *Context, order []int) string {
	byElem := map[string][]int{}
	for i, id := range order {
		a, _ := ctx.Mol.Atom(id)
		if a.Element == "C" {
			continue
		}
		byElem[a.Element] = append(byElem[a.Element], i+1)
	}
	if len(byElem) == 0 {
		return ""
	}

	elems := make([]string, 0, len(byElem))
	for e := range byElem {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool {
		ri, iok := nametab.ReplacementRank[elems[i]]
		rj, jok := nametab.ReplacementRank[elems[j]]
		if !iok {
			ri = len(nametab.ReplacementRank)
		}
		if !jok {
			rj = len(nametab.ReplacementRank)
		}
		if ri != rj {
			return ri < rj
		}
		return elems[i] < elems[j]
	})

	var parts []string
	for _, e := range elems {
		prefix, ok := nametab.ReplacementPrefix[e]
		if !ok {
			continue
		}
		locs := byElem[e]
		sort.Ints(locs)
		var sb strings.Builder
		for i, l := range locs {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(l))
		}
		sb.WriteString("-")
		sb.WriteString(nametab.Multiplier(len(locs)))
		sb.WriteString(prefix)
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "-")
}

// ringProfile extracts a ring's element sequence, saturation, and
// aromaticity.
func ringProfile(ctx *Context, r []int) (els []string, saturated, aromatic bool) {
	m := ctx.Mol
	els = make([]string, len(r))
	saturated, aromatic = true, true
	n := len(r)
	for i, id := range r {
		a, _ := m.Atom(id)
		els[i] = a.Element
		if !a.Aromatic {
			aromatic = false
		}
		if b, ok := m.BondBetween(id, r[(i+1)%n]); ok && (b.Order > 1 || b.Aromatic) {
			saturated = false
		}
	}
	return els, saturated, aromatic
}

// lookupRingName resolves a monocycle against the name table. An
// unsaturated carbocycle only matches when aromatic, so cyclohexene never
// resolves to benzene.
func lookupRingName(ctx *Context, els []string, saturated, aromatic bool) (nametab.RingName, [][]int, bool) {
	allCarbon := true
	for _, e := range els {
		if e != "C" {
			allCarbon = false
			break
		}
	}
	if allCarbon && !saturated && !aromatic {
		return nametab.RingName{}, nil, false
	}
	return ctx.Tables.LookupRing(els, saturated)
}

// allPerms yields the 2n identity-style traversals of an n-ring (used for
// rings with no fixed table numbering).
func allPerms(n int) [][]int {
	var out [][]int
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
			out = append(out, perm)
		}
	}
	return out
}
