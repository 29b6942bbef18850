// Package rings implements ring perception for molecular graphs: SSSR
// (Smallest Set of Smallest Rings) extraction, fused-ring-system grouping,
// and aromaticity flagging.
//
// What:
//
//   - SSSR: per-bond BFS shortest cycles, reduced greedily to a minimal
//     basis of size bonds − atoms + components (the cyclomatic rank).
//   - Systems: groups SSSR rings into ring systems by shared bonds. Rings
//     joined only through a single acyclic bond (pendant rings) land in
//     separate systems — the distinction that keeps a pendant furan out of
//     a polycyclo- count.
//   - Analyze: convenience pass that perceives rings, marks aromatic atoms
//     and bonds, and returns a sealed Molecule carrying both.
//
// Why:
//   - The naming engine consumes ring facts read-only; it never infers
//     rings itself. This package is the collaborator that produces them.
//
// Aromaticity here is deliberately modest: explicit aromatic flags from
// the reader are honored, and otherwise a ring is marked aromatic when its
// in-ring double bonds alternate perfectly (benzene-like 6-rings) or when
// it is a classic five-membered heteroaromatic (furan, pyrrole, thiophene
// pattern). Naming keys on ring composition, so Kekulé and aromatic
// spellings of the same ring produce the same name.
//
// Complexity:
//
//   - SSSR:    Time O(B·(A+B)), Memory O(A+B)
//   - Systems: Time O(R²·L), Memory O(R)
//
// Errors: Analyze propagates molecule construction errors unchanged.
package rings
