// Package nomen is a systematic-chemical-nomenclature toolkit: it turns an
// analyzed molecular graph into an IUPAC name, together with the structural
// analyses that make this possible.
//
// 🚀 What is nomen?
//
//	A pure-Go naming engine that brings together:
//		• Molecule model: atoms, bonds, rings — immutable once sealed
//		• Ring analysis: SSSR perception, fused-system grouping, aromaticity
//		• SMILES reader: organic subset + bracket atoms, rings & branches
//		• Functional groups: motif detection ranked by suffix seniority
//		• Parent selection: principal chains, heterocycles, von Baeyer polycycles
//		• Numbering: exhaustive locant candidates reduced by the P-14 rule chain
//		• Assembly: substituent prefixes, multiplying prefixes, final string
//
// ✨ Why choose nomen?
//
//   - Deterministic – identical input yields a byte-identical name
//   - Auditable – every applied rule lands in an ordered trace
//   - Pure Go engine – no cgo, no chemistry toolkit binaries
//   - Injectable – static name tables are passed in, never ambient singletons
//
// Under the hood, everything is organized under five subpackages:
//
//	molecule/ — Atom, Bond, Molecule value types & structural validation
//	rings/    — SSSR perception, ring-system grouping, aromaticity flags
//	smiles/   — SMILES text → analyzed Molecule
//	nametab/  — static alkane/ring/substituent name tables & alias loading
//	naming/   — the multi-phase nomenclature rule engine itself
//
// Quick ASCII example:
//
//	    C───C───O─H
//
//	parses from "CCO" and names as "ethanol".
//
// Dive into the package docs for the phase pipeline, rule ordering, and the
// regression-guarded naming invariants.
//
//	go get github.com/molgraph/nomen
package nomen
