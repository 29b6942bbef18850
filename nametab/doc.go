// Package nametab holds the static nomenclature data every naming run
// shares: alkane stems, multiplying prefixes, suffix specs per functional
// class, the ring alias table, and substituent alias spellings.
//
// What:
//
//   - AlkaneStem, Multiplier, ComplexMultiplier, Polycyclo: fixed lookup
//     tables for stems and prefixes.
//   - RingName / LookupRing: canonical heterocycle names keyed by ring
//     size, heteroatom pattern, and saturation, together with every
//     traversal of the ring consistent with the name's fixed numbering.
//   - AliasTable / LoadAliases: identifier → alias-spelling lists, kept
//     sorted longest-first so greedy longest-match lookup stays correct.
//     LoadAliases re-sorts on load, so untrusted data cannot break the
//     invariant.
//   - Tables / Default: the injectable bundle of all of the above.
//     Default() builds the embedded tables exactly once per process and
//     the result is read-only thereafter, so concurrent readers need no
//     locking. Engines receive a *Tables explicitly — there is no ambient
//     singleton lookup inside the rule code.
//
// Why:
//
//   - Name tables are rule data, not logic: keeping them here lets tests
//     inject trimmed or extended tables without touching the engine.
//
// Errors:
//
//	ErrBadAliasData - alias JSON did not decode to identifier → []string
package nametab
