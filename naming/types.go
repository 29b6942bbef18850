// Core types of the nomenclature engine: phases, rules, the immutable
// naming context, functional groups, the parent-structure union, and the
// final result value.
//
// Errors:
//
//	ErrStructural - malformed molecule reached the engine boundary.
//	ErrNoParent   - no suitable parent structure (degenerate or
//	                disconnected input).
package naming

import (
	"errors"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/nametab"
)

// Sentinel errors surfaced across the engine boundary. Everything else
// degrades inside the NameResult (warnings plus reduced confidence).
var (
	// ErrStructural mirrors molecule.ErrStructural for callers that only
	// import this package.
	ErrStructural = molecule.ErrStructural

	// ErrNoParent indicates no parent structure could be selected:
	// disconnected input, an empty molecule, or a skeleton with no
	// carbon or ring to build on.
	ErrNoParent = errors.New("naming: no suitable parent structure")
)

// Phase tags the engine's strictly linear pipeline position.
type Phase int

// Pipeline phases, in execution order. There is no branching back.
const (
	PhaseFunctionalGroupDetection Phase = iota
	PhaseParentSelection
	PhaseNumbering
	PhaseSubstituentAssembly
	PhaseNameAssembly
	PhaseDone
)

// String returns the phase tag used in traces.
func (p Phase) String() string {
	switch p {
	case PhaseFunctionalGroupDetection:
		return "FUNCTIONAL_GROUP_DETECTION"
	case PhaseParentSelection:
		return "PARENT_SELECTION"
	case PhaseNumbering:
		return "NUMBERING"
	case PhaseSubstituentAssembly:
		return "SUBSTITUENT_ASSEMBLY"
	case PhaseNameAssembly:
		return "NAME_ASSEMBLY"
	case PhaseDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// GroupClass enumerates recognized functional-group classes.
type GroupClass int

// Functional-group classes. Order here is incidental; seniority comes
// from Priority.
const (
	ClassCarboxylicAcid GroupClass = iota
	ClassEster
	ClassAmide
	ClassNitrile
	ClassAldehyde
	ClassKetone
	ClassAlcohol
	ClassThiol
	ClassAmine
	ClassEther
	ClassNitro
	ClassHalide
)

// classInfo fixes the seniority total order (lower = more senior) and the
// nametab suffix-table key per class. Prefix-only classes carry priority
// ≥ 100 and never hold the suffix.
var classInfo = map[GroupClass]struct {
	priority int
	key      string
	name     string
}{
	ClassCarboxylicAcid: {1, "carboxylic-acid", "carboxylic acid"},
	ClassEster:          {2, "", "ester"},
	ClassAmide:          {3, "amide", "amide"},
	ClassNitrile:        {4, "nitrile", "nitrile"},
	ClassAldehyde:       {5, "aldehyde", "aldehyde"},
	ClassKetone:         {6, "ketone", "ketone"},
	ClassAlcohol:        {7, "alcohol", "alcohol"},
	ClassThiol:          {8, "thiol", "thiol"},
	ClassAmine:          {9, "amine", "amine"},
	ClassEther:          {100, "", "ether"},
	ClassNitro:          {101, "", "nitro"},
	ClassHalide:         {102, "", "halide"},
}

// Priority returns the seniority rank (lower = more senior).
func (c GroupClass) Priority() int { return classInfo[c].priority }

// Suffixable reports whether the class may hold the name's suffix.
func (c GroupClass) Suffixable() bool { return classInfo[c].priority < 100 }

// SuffixKey returns the nametab suffix-table key ("" for classes without
// a plain suffix form, such as ester).
func (c GroupClass) SuffixKey() string { return classInfo[c].key }

// String returns the class name.
func (c GroupClass) String() string { return classInfo[c].name }

// Group is one detected functional group. Locants are filled in
// progressively: detection leaves them empty, the numbering phase rewrites
// them against the winning numbering.
type Group struct {
	// Class is the recognized motif class.
	Class GroupClass

	// Atoms lists member atom IDs; Atoms[0] is the motif center.
	Atoms []int

	// Bonds lists member bond IDs.
	Bonds []int

	// LocantAtom is the skeletal atom that carries the group's locant
	// (the carbonyl carbon, the O-bearing carbon, ...).
	LocantAtom int

	// Locants holds the group's positions under the winning numbering.
	Locants []int

	// Priority caches Class.Priority() for external consumers.
	Priority int

	// Principal is true iff this group determines the parent suffix.
	Principal bool

	// Absorbed flags a group already expressed by a ring's own suffix
	// (the lactam/lactone case): it must not add a second suffix.
	Absorbed bool
}

// ParentKind discriminates the parent-structure union.
type ParentKind int

// Parent-structure variants.
const (
	KindChain ParentKind = iota
	KindSimpleRing
	KindFusedRingSystem
	KindBridgedRingSystem
)

// String returns the variant tag.
func (k ParentKind) String() string {
	switch k {
	case KindChain:
		return "chain"
	case KindSimpleRing:
		return "simple-ring"
	case KindFusedRingSystem:
		return "fused-ring-system"
	case KindBridgedRingSystem:
		return "bridged-ring-system"
	default:
		return "unknown"
	}
}

// Parent is the selected parent structure. Exactly one exists per name.
// Variant-specific fields are nil/zero for other kinds; consumers switch
// exhaustively on Kind.
type Parent struct {
	// Kind is the union discriminant.
	Kind ParentKind

	// Atoms holds the skeleton in numbering order once locants are
	// stamped: Atoms[i] carries locant i+1.
	Atoms []int

	// Locants maps atom ID → 1-based locant (stamped by numbering).
	Locants map[int]int

	// DoubleBonds and TripleBonds list skeletal multiple-bond locants.
	DoubleBonds []int
	TripleBonds []int

	// Substituents lists the owned prefix substituents (assembled phase).
	Substituents []*Substituent

	// Ring is the alias-table entry for a named simple ring (nil for
	// chains, generative carbocycles, and polycyclic systems).
	Ring *nametab.RingName

	// VB is the von Baeyer skeleton for polycyclic systems.
	VB *VonBaeyer

	// ringAtoms preserves the cyclic order of a simple ring; ringPerms
	// the traversals consistent with the ring name's fixed numbering.
	ringAtoms []int
	ringPerms [][]int
}

// Contains reports whether atom id belongs to the parent skeleton.
func (p *Parent) Contains(id int) bool {
	_, ok := p.Locants[id]
	if ok {
		return true
	}
	for _, a := range p.Atoms {
		if a == id {
			return true
		}
	}
	return false
}

// Substituent is one named substituent owned by a parent structure or,
// for nested substituents, by its enclosing substituent.
type Substituent struct {
	// Name is the rendered name without enclosure or assembly-level
	// multiplying prefix.
	Name string

	// Locants are the rendered attachment labels ("1", "3", "N"), nil
	// when the attachment position is omitted by convention.
	Locants []string

	// Complex marks names that need enclosing marks and bis/tris
	// multiplication.
	Complex bool

	// Nested lists owned sub-substituents (informational; their text is
	// already folded into Name).
	Nested []*Substituent
}

// TraceEntry records one applied rule for the audit trail.
type TraceEntry struct {
	// RuleID is the human-readable rule identifier ("P-14.3").
	RuleID string

	// Phase tags the pipeline phase the rule ran in.
	Phase Phase

	// Atoms lists the atom IDs the rule touched or matched.
	Atoms []int

	// Note carries a short free-form description of the change.
	Note string
}

// Rule pairs a predicate with a transformation. Rules execute strictly in
// table order; a rule whose When returns false is skipped without trace.
type Rule struct {
	// ID is the human-readable rule identifier.
	ID string

	// Phase is the pipeline phase the rule belongs to.
	Phase Phase

	// When gates the rule on the current context.
	When func(*Context) bool

	// Apply produces the successor context. It must not mutate its input.
	Apply func(*Context) (*Context, error)
}

// Context is the engine's append-only state: each applied rule produces a
// fresh value, so earlier snapshots stay valid and the whole run is a
// fold over the rule table.
type Context struct {
	// Mol is the immutable input molecule.
	Mol *molecule.Molecule

	// Tables is the injected static name data.
	Tables *nametab.Tables

	// Phase is the current pipeline position.
	Phase Phase

	// Groups holds the functional groups detected so far.
	Groups []Group

	// Parent is the selected parent structure (nil before selection).
	Parent *Parent

	// EsterAlkyl carries the rendered O-side ester component, already
	// enclosed, or "" when the principal group is not an ester.
	EsterAlkyl string

	// Prefixes is the merged, alphabetized substituent-prefix block.
	Prefixes string

	// Name is the final rendered name (set by the assembly phase).
	Name string

	// Trace, Warnings, Confidence accumulate diagnostics.
	Trace      []TraceEntry
	Warnings   []string
	Confidence float64

	// candidates holds the surviving numbering candidates between the
	// numbering-phase rules.
	candidates [][]int
}

// clone produces the successor context with copied slice headers, so the
// predecessor stays observable and untouched.
func (c *Context) clone() *Context {
	next := *c
	next.Groups = append([]Group(nil), c.Groups...)
	next.Trace = append([]TraceEntry(nil), c.Trace...)
	next.Warnings = append([]string(nil), c.Warnings...)
	next.candidates = append([][]int(nil), c.candidates...)
	if c.Parent != nil {
		p := *c.Parent
		next.Parent = &p
	}
	return &next
}

// warn appends a diagnostic and lowers confidence by penalty (floored).
func (c *Context) warn(msg string, penalty float64) {
	c.Warnings = append(c.Warnings, msg)
	c.Confidence -= penalty
	if c.Confidence < 0.05 {
		c.Confidence = 0.05
	}
}

// NameResult is the engine's terminal value: a name is always produced
// for accepted inputs, with diagnostics instead of silent failure.
type NameResult struct {
	// Name is the rendered systematic name.
	Name string

	// Confidence grades the result in [0,1]; documented fallbacks and
	// generic fragments lower it without failing the call.
	Confidence float64

	// FunctionalGroups lists all detected groups, including demoted and
	// absorbed ones.
	FunctionalGroups []Group

	// Parent is the selected parent structure with stamped locants.
	Parent *Parent

	// Trace is the ordered record of every applied rule.
	Trace []TraceEntry

	// Warnings lists accumulated diagnostics.
	Warnings []string
}

// Option configures a naming run.
type Option func(*Context)

// WithTables injects a custom static-name-table bundle, replacing
// nametab.Default().
func WithTables(t *nametab.Tables) Option {
	return func(c *Context) { c.Tables = t }
}
