// Package molecule defines the central Atom, Bond, and Molecule types,
// and provides validated, read-only primitives for querying molecular graphs.
//
// A Molecule is sealed at construction: New validates every bond endpoint
// against the atom set, builds the adjacency index once, and never mutates
// afterwards, so concurrent readers require no locking.
//
// This file declares Atom, Bond, BondOrder, Stereo, Ring, sentinel errors,
// and the Option type consumed by New.
//
// Errors:
//
//	ErrStructural     - malformed structure (dangling bond, duplicate id).
//	ErrAtomNotFound   - requested atom does not exist.
//	ErrBondNotFound   - requested bond does not exist.
package molecule

import "errors"

// Sentinel errors for molecule construction and lookup.
var (
	// ErrStructural indicates a malformed input structure: a bond referencing
	// a missing atom, a duplicate atom id, or an order outside 1..3.
	// Per the engine contract this is a hard precondition violation and is
	// never silently repaired.
	ErrStructural = errors.New("molecule: malformed structure")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("molecule: bond not found")
)

// BondOrder is the integer order of a bond (single, double, triple).
type BondOrder int

// Recognized bond orders.
const (
	Single BondOrder = iota + 1
	Double
	Triple
)

// Stereo marks a bond-level stereo descriptor carried through from input.
// The naming engine records but does not currently interpret stereo marks.
type Stereo int

// Recognized stereo marks.
const (
	StereoNone Stereo = iota
	StereoUp
	StereoDown
)

// Atom represents a single atom in the molecular graph.
//
// ID uniquely identifies this Atom within its Molecule. IDs are 1-based
// and caller-supplied; the SMILES reader assigns them in reading order.
type Atom struct {
	// ID is the unique identifier for this Atom.
	ID int

	// Element is the atomic symbol ("C", "N", "O", "Cl", ...).
	Element string

	// Charge is the formal charge (+1, -1, 0, ...).
	Charge int

	// Isotope is the mass number, or 0 when unspecified.
	Isotope int

	// Aromatic reports whether the atom is part of a perceived or declared
	// aromatic system.
	Aromatic bool

	// Hydrogens is the implicit hydrogen count attached to this atom.
	Hydrogens int
}

// Bond represents a connection between two atoms.
type Bond struct {
	// ID uniquely identifies this bond in the Molecule.
	ID int

	// From and To are the endpoint atom IDs. Bonds are undirected; the
	// ordering only mirrors input order.
	From, To int

	// Order is the bond order (Single, Double, Triple).
	Order BondOrder

	// Aromatic reports whether the bond belongs to an aromatic system.
	Aromatic bool

	// Stereo is the recorded stereo marker, if any.
	Stereo Stereo
}

// Other returns the endpoint of b opposite to atom id.
// If id is not an endpoint of b, Other returns 0.
func (b Bond) Other(id int) int {
	switch id {
	case b.From:
		return b.To
	case b.To:
		return b.From
	default:
		return 0
	}
}

// Ring is an ordered cycle of atom IDs: consecutive entries (and the
// last/first pair) are bonded. Rings come from SSSR perception and are
// attached to a Molecule via WithRings or Molecule.WithRingSet.
type Ring []int

// Contains reports whether the ring passes through atom id.
func (r Ring) Contains(id int) bool {
	for _, a := range r {
		if a == id {
			return true
		}
	}
	return false
}

// Option configures a Molecule before it is sealed by New.
type Option func(*Molecule)

// WithRings attaches a precomputed SSSR ring set at construction time.
func WithRings(rings []Ring) Option {
	return func(m *Molecule) { m.rings = cloneRings(rings) }
}
