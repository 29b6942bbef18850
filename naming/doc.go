// Package naming converts analyzed molecular graphs into systematic
// IUPAC names through a five-phase rule pipeline.
//
// What:
//
//   - Functional-group detection: carbonyl-, nitrogen-, and chalcogen-
//     centered motif scans with deterministic consumption, ranked by
//     suffix seniority (acid > ester > amide > ... > amine).
//   - Parent selection: maximal acyclic chains vs. ring systems, scored
//     by principal-group containment, ring preference, then size.
//   - Numbering: the full candidate set (chain directions, ring
//     traversals, von Baeyer orders) reduced stepwise by heteroatoms,
//     principal groups, multiple bonds, then substituents, each at the
//     first point of difference.
//   - Substituent assembly: recursive branch naming with nested
//     enclosure marks, alias contraction (methoxy, anilino, benzyl),
//     di/tri vs. bis/tris multiplication, and letters-only
//     alphabetization.
//   - Name assembly: hydride base, unsaturation infixes, suffix with
//     vowel elision and locant-omission conventions.
//
// Why:
//   - Each rule maps a context to a fresh context, so a naming run is a
//     fold over an ordered rule table: deterministic, auditable through
//     the trace, and never re-entrant.
//
// Notable invariants, guarded by regression tests:
//
//   - A ring attached through a single acyclic bond never joins a
//     polycyclo count (a pendant furan stays furan-3-yl).
//   - A lactam or lactone carbonyl is absorbed into the ring's -one
//     suffix; no duplicate -amide/-oate appears.
//   - An ester outranks an amide exactly once; the amide nitrogen is
//     then cited as a substituent prefix.
//
// Complexity: chain and cycle enumeration are exponential in the worst
// case but bounded by typical molecule sizes; every other phase is
// polynomial in atoms + bonds.
//
// Errors:
//
//	ErrStructural - malformed molecule at the engine boundary.
//	ErrNoParent   - empty, disconnected, or carbon-free skeleton.
//
// Degradation inside an accepted input never fails the call: generic
// fragment names, table overflows, and documented fallbacks surface as
// warnings with reduced confidence.
package naming
