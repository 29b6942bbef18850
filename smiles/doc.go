// Package smiles reads SMILES text into analyzed molecule values.
//
// What:
//
//   - Parse: full reader for the organic subset (B, C, N, O, P, S, F, Cl,
//     Br, I and their aromatic lowercase forms), bracket atoms with
//     isotope / charge / chirality / explicit hydrogen counts, bond
//     symbols - = # : / \, branches, ring-bond digits and %nn pairs, and
//     dot-separated fragments.
//
// Why:
//
//   - The nomenclature engine requires a Molecule whose ring and
//     aromaticity analysis is already finalized; Parse produces exactly
//     that by composing the reader with rings.Analyze.
//
// Implicit hydrogens are assigned from standard valences (charge-adjusted)
// for organic-subset atoms; bracket atoms carry exactly the hydrogen count
// written in the brackets. Chirality marks (@, @@) and directional bonds
// (/ \) are parsed and recorded but not interpreted by the engine.
//
// Complexity: Time O(n) over the input text plus ring analysis.
//
// Errors:
//
//	ErrSyntax      - malformed SMILES text (position reported in the message)
//	ErrRingClosure - a ring-bond digit was opened but never closed
//	ErrUnsupported - a construct outside the supported subset (e.g. wildcard *)
package smiles
