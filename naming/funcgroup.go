// Functional-group detection (pipeline phase 1).
//
// Detection walks atoms in ascending ID order and claims pattern atoms in
// a consumption map, so overlapping motifs resolve the same way on every
// run: a carboxylic acid is never double-reported as ketone + alcohol,
// and an amide nitrogen is never re-reported as an amine.
package naming

import (
	"fmt"
	"sort"

	"github.com/molgraph/nomen/molecule"
)

// ruleDetectGroups scans the molecule for every recognized group motif.
func ruleDetectGroups(ctx *Context) (*Context, error) {
	next := ctx.clone()
	next.Phase = PhaseFunctionalGroupDetection

	d := &detector{m: ctx.Mol, used: make(map[int]bool)}
	groups := d.run()
	next.Groups = groups

	var atoms []int
	for _, g := range groups {
		atoms = append(atoms, g.LocantAtom)
	}
	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-41",
		Phase:  PhaseFunctionalGroupDetection,
		Atoms:  atoms,
		Note:   fmt.Sprintf("detected %d functional group(s)", len(groups)),
	})
	return next, nil
}

// ruleSelectPrincipal marks every group of the most senior suffixable
// class as principal. Absorbed groups never compete.
func ruleSelectPrincipal(ctx *Context) (*Context, error) {
	next := ctx.clone()

	best := -1
	for _, g := range next.Groups {
		if g.Absorbed || !g.Class.Suffixable() {
			continue
		}
		if best == -1 || g.Priority < best {
			best = g.Priority
		}
	}
	if best == -1 {
		return next, nil
	}

	var atoms []int
	var class GroupClass
	for i := range next.Groups {
		g := &next.Groups[i]
		if !g.Absorbed && g.Class.Suffixable() && g.Priority == best {
			g.Principal = true
			class = g.Class
			atoms = append(atoms, g.LocantAtom)
		}
	}
	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-41.1",
		Phase:  PhaseFunctionalGroupDetection,
		Atoms:  atoms,
		Note:   fmt.Sprintf("principal characteristic group: %s", class),
	})
	return next, nil
}

// detector holds the per-run consumption state of the motif scan.
type detector struct {
	m    *molecule.Molecule
	used map[int]bool // atoms claimed by an already-emitted motif
}

func (d *detector) run() []Group {
	var groups []Group
	groups = append(groups, d.carbonScan()...)
	groups = append(groups, d.nitrogenScan()...)
	groups = append(groups, d.chalcogenScan()...)
	groups = append(groups, d.halideScan()...)
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Priority != groups[j].Priority {
			return groups[i].Priority < groups[j].Priority
		}
		return groups[i].LocantAtom < groups[j].LocantAtom
	})
	return groups
}

// carbonScan recognizes every carbonyl- and nitrile-centered motif:
// carboxylic acid, ester, amide, aldehyde, ketone, nitrile, and the
// ring-absorbed lactam/lactone forms.
func (d *detector) carbonScan() []Group {
	var groups []Group
	for _, cid := range d.m.AtomIDs() {
		a, _ := d.m.Atom(cid)
		if a.Element != "C" {
			continue
		}

		var dblO, sglO, sglN []int
		var bondIDs []int
		tripleN := 0
		carbonNbrs := 0
		for _, b := range d.m.BondsOf(cid) {
			nb := b.Other(cid)
			na, _ := d.m.Atom(nb)
			switch {
			case na.Element == "O" && b.Order == molecule.Double:
				dblO = append(dblO, nb)
				bondIDs = append(bondIDs, b.ID)
			case na.Element == "O" && b.Order == molecule.Single:
				sglO = append(sglO, nb)
			case na.Element == "N" && b.Order == molecule.Triple:
				tripleN = nb
				bondIDs = append(bondIDs, b.ID)
			case na.Element == "N" && b.Order == molecule.Single:
				sglN = append(sglN, nb)
			case na.Element == "C":
				carbonNbrs++
			}
		}

		if tripleN != 0 && !d.used[tripleN] {
			d.used[tripleN] = true
			groups = append(groups, newGroup(ClassNitrile, cid, []int{cid, tripleN}, bondIDs))
			continue
		}
		if len(dblO) == 0 {
			continue
		}
		co := dblO[0]
		if d.used[co] {
			continue
		}

		// 1) Acid: C(=O)–O where the single oxygen carries H or a negative
		//    charge.
		if oid, ok := d.acidOxygen(cid, sglO); ok {
			d.used[co], d.used[oid] = true, true
			groups = append(groups, newGroup(ClassCarboxylicAcid, cid, []int{cid, co, oid}, bondIDs))
			continue
		}

		// 2) Ester: C(=O)–O–C. Inside a ring this is a lactone: the ester
		//    stays on record as absorbed and the carbonyl becomes a ring
		//    ketone so the ring suffix expresses it exactly once.
		if oid, ok := d.esterOxygen(cid, sglO); ok {
			d.used[co] = true
			if d.sameRing(cid, oid) {
				g := newGroup(ClassEster, cid, []int{cid, co, oid}, bondIDs)
				g.Absorbed = true
				groups = append(groups, g, newGroup(ClassKetone, cid, []int{cid, co}, bondIDs))
				continue
			}
			d.used[oid] = true
			groups = append(groups, newGroup(ClassEster, cid, []int{cid, co, oid}, bondIDs))
			continue
		}

		// 3) Amide: C(=O)–N. The in-ring form is a lactam, handled like the
		//    lactone above.
		if len(sglN) > 0 {
			nid := sglN[0]
			d.used[co] = true
			if d.sameRing(cid, nid) {
				d.used[nid] = true
				g := newGroup(ClassAmide, cid, []int{cid, co, nid}, bondIDs)
				g.Absorbed = true
				groups = append(groups, g, newGroup(ClassKetone, cid, []int{cid, co}, bondIDs))
				continue
			}
			d.used[nid] = true
			groups = append(groups, newGroup(ClassAmide, cid, []int{cid, co, nid}, bondIDs))
			continue
		}

		// 4) Plain carbonyl: one carbon neighbor (or an explicit H) makes an
		//    aldehyde, two make a ketone.
		d.used[co] = true
		if carbonNbrs <= 1 || a.Hydrogens > 0 {
			groups = append(groups, newGroup(ClassAldehyde, cid, []int{cid, co}, bondIDs))
		} else {
			groups = append(groups, newGroup(ClassKetone, cid, []int{cid, co}, bondIDs))
		}
	}
	return groups
}

// nitrogenScan recognizes nitro groups and free amines. Ring nitrogens
// are skeletal heteroatoms, not functional groups.
func (d *detector) nitrogenScan() []Group {
	var groups []Group
	for _, nid := range d.m.AtomIDs() {
		a, _ := d.m.Atom(nid)
		if a.Element != "N" || d.used[nid] {
			continue
		}
		if oxys, ok := d.nitroOxygens(nid); ok {
			for _, o := range oxys {
				d.used[o] = true
			}
			d.used[nid] = true
			carrier := d.carbonNeighbor(nid)
			if carrier == 0 {
				carrier = nid
			}
			g := newGroup(ClassNitro, carrier, append([]int{nid}, oxys...), nil)
			groups = append(groups, g)
			continue
		}
		if d.m.InRing(nid) {
			continue
		}
		carrier := d.carbonNeighbor(nid)
		if carrier == 0 {
			continue
		}
		d.used[nid] = true
		groups = append(groups, newGroup(ClassAmine, carrier, []int{nid, carrier}, nil))
	}
	return groups
}

// chalcogenScan recognizes alcohols, thiols, ethers, and sulfides on
// oxygens and sulfurs not already claimed by a carbonyl motif.
func (d *detector) chalcogenScan() []Group {
	var groups []Group
	for _, id := range d.m.AtomIDs() {
		a, _ := d.m.Atom(id)
		if d.used[id] || d.m.InRing(id) {
			continue
		}
		switch a.Element {
		case "O":
			carrier := d.carbonNeighbor(id)
			if carrier == 0 {
				continue
			}
			d.used[id] = true
			if a.Hydrogens > 0 || a.Charge < 0 {
				groups = append(groups, newGroup(ClassAlcohol, carrier, []int{id, carrier}, nil))
			} else {
				groups = append(groups, newGroup(ClassEther, carrier, []int{id}, nil))
			}
		case "S":
			carrier := d.carbonNeighbor(id)
			if carrier == 0 {
				continue
			}
			d.used[id] = true
			if a.Hydrogens > 0 || a.Charge < 0 {
				groups = append(groups, newGroup(ClassThiol, carrier, []int{id, carrier}, nil))
			} else {
				groups = append(groups, newGroup(ClassEther, carrier, []int{id}, nil))
			}
		}
	}
	return groups
}

// halideScan records halogen attachments (always prefix-only).
func (d *detector) halideScan() []Group {
	var groups []Group
	for _, id := range d.m.AtomIDs() {
		a, _ := d.m.Atom(id)
		if _, halogen := haloElements[a.Element]; !halogen {
			continue
		}
		carrier := d.carbonNeighbor(id)
		if carrier == 0 {
			continue
		}
		groups = append(groups, newGroup(ClassHalide, carrier, []int{id}, nil))
	}
	return groups
}

var haloElements = map[string]bool{"F": true, "Cl": true, "Br": true, "I": true}

// acidOxygen picks the hydroxyl-like oxygen of an acid motif, if present.
func (d *detector) acidOxygen(cid int, sglO []int) (int, bool) {
	for _, o := range sglO {
		if d.used[o] {
			continue
		}
		oa, _ := d.m.Atom(o)
		if oa.Hydrogens > 0 || oa.Charge < 0 {
			return o, true
		}
	}
	return 0, false
}

// esterOxygen picks a bridging oxygen bonded onward to another carbon.
func (d *detector) esterOxygen(cid int, sglO []int) (int, bool) {
	for _, o := range sglO {
		if d.used[o] {
			continue
		}
		for _, nb := range d.m.Neighbors(o) {
			if nb == cid {
				continue
			}
			na, _ := d.m.Atom(nb)
			if na.Element == "C" {
				return o, true
			}
		}
	}
	return 0, false
}

// nitroOxygens matches N bonded to two oxygens, at least one by a double
// bond or carrying a charge (both resonance spellings accepted).
func (d *detector) nitroOxygens(nid int) ([]int, bool) {
	var oxys []int
	charged := false
	for _, b := range d.m.BondsOf(nid) {
		nb := b.Other(nid)
		na, _ := d.m.Atom(nb)
		if na.Element != "O" || d.m.Degree(nb) != 1 {
			continue
		}
		if b.Order == molecule.Double || na.Charge != 0 {
			charged = true
		}
		oxys = append(oxys, nb)
	}
	return oxys, len(oxys) == 2 && charged
}

// carbonNeighbor returns the lowest-ID carbon neighbor, or 0.
func (d *detector) carbonNeighbor(id int) int {
	for _, nb := range d.m.Neighbors(id) {
		na, _ := d.m.Atom(nb)
		if na.Element == "C" {
			return nb
		}
	}
	return 0
}

// sameRing reports whether atoms a and b lie on one common ring.
func (d *detector) sameRing(a, b int) bool {
	for _, r := range d.m.Rings() {
		if r.Contains(a) && r.Contains(b) {
			return true
		}
	}
	return false
}

func newGroup(class GroupClass, locantAtom int, atoms, bonds []int) Group {
	return Group{
		Class:      class,
		Atoms:      atoms,
		Bonds:      bonds,
		LocantAtom: locantAtom,
		Priority:   class.Priority(),
	}
}
