// Alias-table loading and the injectable Tables bundle.
package nametab

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// ErrBadAliasData indicates alias JSON that did not decode to the
// identifier → []string shape.
var ErrBadAliasData = errors.New("nametab: malformed alias data")

// AliasTable maps canonical identifiers to alias spellings. Each alias
// list is kept sorted longest-first so greedy longest-match lookup over a
// list is correct; LoadAliases enforces the invariant on every load.
type AliasTable map[string][]string

// LoadAliases decodes an alias table from JSON and re-sorts every alias
// list longest-first (ties broken lexicographically). Untrusted input is
// therefore safe with respect to the greedy-match invariant.
func LoadAliases(r io.Reader) (AliasTable, error) {
	var raw map[string][]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAliasData, err)
	}
	t := make(AliasTable, len(raw))
	for id, aliases := range raw {
		list := append([]string(nil), aliases...)
		sort.Slice(list, func(i, j int) bool {
			if len(list[i]) != len(list[j]) {
				return len(list[i]) > len(list[j])
			}
			return list[i] < list[j]
		})
		t[id] = list
	}
	return t, nil
}

// Canonical returns the identifier whose alias list contains name exactly,
// or "" when no alias matches. Identifiers are probed in sorted order so
// repeated calls are deterministic even with overlapping tables.
func (t AliasTable) Canonical(name string) string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, alias := range t[id] {
			if alias == name {
				return id
			}
		}
	}
	return ""
}

// MatchLongest finds the identifier owning the longest alias that
// prefixes s. The longest-first list ordering makes the per-identifier
// scan greedy-correct; across identifiers the longest overall wins.
func (t AliasTable) MatchLongest(s string) (id, alias string, ok bool) {
	for cand, aliases := range t {
		for _, a := range aliases {
			if strings.HasPrefix(s, a) {
				// Lists are longest-first: the first prefix hit is the
				// longest this identifier offers.
				if len(a) > len(alias) || (len(a) == len(alias) && cand < id) {
					id, alias, ok = cand, a, true
				}
				break
			}
		}
	}
	return id, alias, ok
}

// Tables bundles all static name data consumed by a naming run. Values
// are read-only after construction and safe for concurrent use.
type Tables struct {
	// Aliases holds substituent alias spellings (longest-first lists).
	Aliases AliasTable

	rings    map[string]RingName
	suffixes map[string]SuffixSpec
}

//go:embed aliases.json
var defaultAliasJSON []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide embedded tables, built exactly once.
// The result is shared and must not be mutated; callers needing custom
// data build their own Tables via NewTables.
func Default() *Tables {
	defaultOnce.Do(func() {
		aliases, err := LoadAliases(strings.NewReader(string(defaultAliasJSON)))
		if err != nil {
			// The embedded table is compiled in; a decode failure is a
			// build defect, not a runtime condition.
			panic(err)
		}
		defaultTables = NewTables(aliases)
	})
	return defaultTables
}

// NewTables builds a Tables bundle around the given alias table and the
// built-in ring and suffix data.
func NewTables(aliases AliasTable) *Tables {
	t := &Tables{
		Aliases:  aliases,
		rings:    make(map[string]RingName, len(ringNames)),
		suffixes: suffixSpecs,
	}
	for _, rn := range ringNames {
		t.rings[ringKey(rn.Size, rn.Sig, rn.Saturated)] = rn
	}
	return t
}
