// Molecule construction and read-only graph queries.
//
// Complexity:
//
//   - New:          Time O(A + B·log B), Memory O(A + B)
//   - Neighbors:    Time O(deg)
//   - BondBetween:  Time O(deg)
package molecule

import (
	"fmt"
	"sort"
)

// Molecule is the immutable molecular graph consumed by the naming engine.
//
// All index maps are built once in New; no method mutates a sealed
// Molecule, so values may be shared freely across goroutines.
type Molecule struct {
	atoms   map[int]Atom
	atomIDs []int // sorted, for deterministic iteration
	bonds   []Bond
	byBond  map[int]int   // bond ID → index into bonds
	adj     map[int][]int // atom ID → bond IDs, sorted
	rings   []Ring
}

// New builds and validates a Molecule from atom and bond lists.
// Atom IDs must be unique and positive; every bond endpoint must name an
// existing atom. Violations return an error wrapping ErrStructural.
// Input slices are copied; the caller keeps ownership of its own data.
func New(atoms []Atom, bonds []Bond, opts ...Option) (*Molecule, error) {
	m := &Molecule{
		atoms:  make(map[int]Atom, len(atoms)),
		byBond: make(map[int]int, len(bonds)),
		adj:    make(map[int][]int, len(atoms)),
	}

	// 1) Register atoms, rejecting duplicate or non-positive IDs.
	for _, a := range atoms {
		if a.ID <= 0 {
			return nil, fmt.Errorf("%w: atom id %d is not positive", ErrStructural, a.ID)
		}
		if _, dup := m.atoms[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate atom id %d", ErrStructural, a.ID)
		}
		m.atoms[a.ID] = a
		m.atomIDs = append(m.atomIDs, a.ID)
	}
	sort.Ints(m.atomIDs)

	// 2) Register bonds, validating endpoints and order.
	m.bonds = make([]Bond, len(bonds))
	copy(m.bonds, bonds)
	for i, b := range m.bonds {
		if _, ok := m.atoms[b.From]; !ok {
			return nil, fmt.Errorf("%w: bond %d references missing atom %d", ErrStructural, b.ID, b.From)
		}
		if _, ok := m.atoms[b.To]; !ok {
			return nil, fmt.Errorf("%w: bond %d references missing atom %d", ErrStructural, b.ID, b.To)
		}
		if b.Order < Single || b.Order > Triple {
			return nil, fmt.Errorf("%w: bond %d has order %d", ErrStructural, b.ID, b.Order)
		}
		if _, dup := m.byBond[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate bond id %d", ErrStructural, b.ID)
		}
		m.byBond[b.ID] = i
		m.adj[b.From] = append(m.adj[b.From], b.ID)
		m.adj[b.To] = append(m.adj[b.To], b.ID)
	}
	for id := range m.adj {
		sort.Ints(m.adj[id])
	}

	// 3) Apply options (ring set attachment).
	for _, opt := range opts {
		opt(m)
	}

	// 4) Validate any attached rings against the atom set.
	for _, r := range m.rings {
		for _, id := range r {
			if _, ok := m.atoms[id]; !ok {
				return nil, fmt.Errorf("%w: ring references missing atom %d", ErrStructural, id)
			}
		}
	}

	return m, nil
}

// NumAtoms returns the number of atoms.
func (m *Molecule) NumAtoms() int { return len(m.atomIDs) }

// NumBonds returns the number of bonds.
func (m *Molecule) NumBonds() int { return len(m.bonds) }

// Atom returns the atom with the given ID.
func (m *Molecule) Atom(id int) (Atom, bool) {
	a, ok := m.atoms[id]
	return a, ok
}

// AtomIDs returns all atom IDs in ascending order.
// The returned slice is a fresh copy.
func (m *Molecule) AtomIDs() []int {
	out := make([]int, len(m.atomIDs))
	copy(out, m.atomIDs)
	return out
}

// Atoms returns all atoms ordered by ID.
func (m *Molecule) Atoms() []Atom {
	out := make([]Atom, 0, len(m.atomIDs))
	for _, id := range m.atomIDs {
		out = append(out, m.atoms[id])
	}
	return out
}

// Bonds returns a copy of all bonds in input order.
func (m *Molecule) Bonds() []Bond {
	out := make([]Bond, len(m.bonds))
	copy(out, m.bonds)
	return out
}

// Bond returns the bond with the given ID.
func (m *Molecule) Bond(id int) (Bond, bool) {
	i, ok := m.byBond[id]
	if !ok {
		return Bond{}, false
	}
	return m.bonds[i], true
}

// BondsOf returns the bonds incident to atom id, ordered by bond ID.
func (m *Molecule) BondsOf(id int) []Bond {
	ids := m.adj[id]
	out := make([]Bond, 0, len(ids))
	for _, bid := range ids {
		out = append(out, m.bonds[m.byBond[bid]])
	}
	return out
}

// Neighbors returns the atom IDs adjacent to atom id, in ascending order.
func (m *Molecule) Neighbors(id int) []int {
	ids := m.adj[id]
	out := make([]int, 0, len(ids))
	for _, bid := range ids {
		out = append(out, m.bonds[m.byBond[bid]].Other(id))
	}
	sort.Ints(out)
	return out
}

// Degree returns the number of explicit bonds incident to atom id.
func (m *Molecule) Degree(id int) int { return len(m.adj[id]) }

// BondBetween returns the bond joining atoms a and b, if any.
func (m *Molecule) BondBetween(a, b int) (Bond, bool) {
	for _, bid := range m.adj[a] {
		bd := m.bonds[m.byBond[bid]]
		if bd.Other(a) == b {
			return bd, true
		}
	}
	return Bond{}, false
}

// Rings returns the attached SSSR ring set (nil if none was attached).
// The returned slice is a fresh copy.
func (m *Molecule) Rings() []Ring { return cloneRings(m.rings) }

// InRing reports whether atom id belongs to any attached ring.
func (m *Molecule) InRing(id int) bool {
	for _, r := range m.rings {
		if r.Contains(id) {
			return true
		}
	}
	return false
}

// RingBond reports whether the a–b bond lies on any attached ring.
func (m *Molecule) RingBond(a, b int) bool {
	for _, r := range m.rings {
		n := len(r)
		for i := 0; i < n; i++ {
			u, v := r[i], r[(i+1)%n]
			if (u == a && v == b) || (u == b && v == a) {
				return true
			}
		}
	}
	return false
}

// WithRingSet returns a copy of m with the given ring set attached,
// leaving m untouched. Used by the rings package to seal analysis results.
func (m *Molecule) WithRingSet(rings []Ring) *Molecule {
	out := *m
	out.rings = cloneRings(rings)
	return &out
}

// WithAtoms returns a copy of m with the given atoms replacing the current
// atom values (IDs must be unchanged). Used by ring analysis to stamp
// aromaticity flags without breaking the sealed-value discipline.
func (m *Molecule) WithAtoms(atoms []Atom) (*Molecule, error) {
	return New(atoms, m.bonds, WithRings(m.rings))
}

// Connected reports whether the molecular graph is a single component.
// An empty molecule is not connected.
func (m *Molecule) Connected() bool {
	if len(m.atomIDs) == 0 {
		return false
	}
	seen := make(map[int]bool, len(m.atomIDs))
	queue := []int{m.atomIDs[0]}
	seen[m.atomIDs[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range m.Neighbors(cur) {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(m.atomIDs)
}

func cloneRings(rings []Ring) []Ring {
	if rings == nil {
		return nil
	}
	out := make([]Ring, len(rings))
	for i, r := range rings {
		out[i] = append(Ring(nil), r...)
	}
	return out
}
