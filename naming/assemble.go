// Name assembly (pipeline phase 5): hydride base, unsaturation infixes,
// suffix with elision and locant-omission rules, and the final joined
// string.
package naming

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/molgraph/nomen/nametab"
)

// ruleRenderName produces the final name for the selected parent.
func ruleRenderName(ctx *Context) (*Context, error) {
	next := ctx.clone()
	next.Phase = PhaseNameAssembly

	var name string
	switch next.Parent.Kind {
	case KindChain:
		name = next.chainName()
	case KindSimpleRing:
		name = next.simpleRingName()
	default:
		name = next.polycyclicName()
	}
	next.Name = name

	next.Trace = append(next.Trace, TraceEntry{
		RuleID: "P-16",
		Phase:  PhaseNameAssembly,
		Note:   "name assembled: " + name,
	})
	return next, nil
}

// principalGroups returns the suffix-bearing groups.
func (c *Context) principalGroups() []Group {
	var out []Group
	for _, g := range c.Groups {
		if g.Principal {
			out = append(out, g)
		}
	}
	return out
}

// terminalClasses always sit on carbon 1; their suffix locants are
// omitted.
var terminalClasses = map[GroupClass]bool{
	ClassCarboxylicAcid: true,
	ClassEster:          true,
	ClassAmide:          true,
	ClassNitrile:        true,
	ClassAldehyde:       true,
}

// chainName renders an acyclic parent.
func (c *Context) chainName() string {
	p := c.Parent
	n := len(p.Atoms)
	stem, ok := nametab.AlkaneStem(n)
	if !ok {
		c.warn(fmt.Sprintf("chain of %d atoms exceeds the stem table", n), 0.2)
		stem = "polycarb"
	}

	groups := c.principalGroups()
	omitUnsat := len(p.DoubleBonds)+len(p.TripleBonds) == 1 && n <= 3
	base := hydrideName(stem, p.DoubleBonds, p.TripleBonds, omitUnsat)

	if len(groups) > 0 && groups[0].Class == ClassEster {
		acyl := joinPrefix(c.Prefixes, appendSuffix(base, "", "oate"))
		if c.EsterAlkyl == "" {
			c.warn("ester missing its O-side component; acyl name used alone", 0.15)
			return acyl
		}
		return c.EsterAlkyl + " " + acyl
	}

	if len(groups) == 0 {
		return joinPrefix(c.Prefixes, base)
	}
	locPart, word := c.suffixParts(groups, n)
	return joinPrefix(c.Prefixes, appendSuffix(base, locPart, word))
}

// simpleRingName renders a monocyclic parent.
func (c *Context) simpleRingName() string {
	p := c.Parent
	var base string
	if p.Ring != nil {
		base = p.Ring.Name
	} else {
		stem, ok := nametab.AlkaneStem(len(p.Atoms))
		if !ok {
			c.warn(fmt.Sprintf("ring of %d atoms exceeds the stem table", len(p.Atoms)), 0.2)
			stem = "polycarb"
		}
		omitUnsat := len(p.DoubleBonds)+len(p.TripleBonds) == 1 &&
			c.Prefixes == "" && len(c.principalGroups()) == 0
		base = replacementPrefixes(c, p.Atoms) + "cyclo" +
			hydrideName(stem, p.DoubleBonds, p.TripleBonds, omitUnsat)
	}

	groups := c.principalGroups()
	if len(groups) == 0 {
		return joinPrefix(c.Prefixes, base)
	}
	locPart, word := c.ringSuffixParts(groups)
	return joinPrefix(c.Prefixes, appendSuffix(base, locPart, word))
}

// polycyclicName renders a von Baeyer parent.
func (c *Context) polycyclicName() string {
	p := c.Parent
	vb := p.VB

	cyclo, ok := nametab.Polycyclo(vb.RingCount)
	if !ok {
		c.warn(fmt.Sprintf("%d rings exceed the polycyclo table", vb.RingCount), 0.2)
		cyclo = "polycyclo"
	}
	stem, ok := nametab.AlkaneStem(len(p.Atoms))
	if !ok {
		c.warn(fmt.Sprintf("skeleton of %d atoms exceeds the stem table", len(p.Atoms)), 0.2)
		stem = "polycarb"
	}

	base := replacementPrefixes(c, p.Atoms) + cyclo + vbDescriptor(vb, p.Locants) +
		hydrideName(stem, p.DoubleBonds, p.TripleBonds, false)

	groups := c.principalGroups()
	if len(groups) == 0 {
		return joinPrefix(c.Prefixes, base)
	}
	locPart, word := c.ringSuffixParts(groups)
	return joinPrefix(c.Prefixes, appendSuffix(base, locPart, word))
}

// suffixParts renders the locant segment and suffix word for a chain
// parent's principal groups.
func (c *Context) suffixParts(groups []Group, chainLen int) (locPart, word string) {
	class := groups[0].Class
	spec, ok := c.Tables.SuffixFor(class.SuffixKey())
	if !ok {
		c.warn(fmt.Sprintf("no suffix entry for class %s", class), 0.15)
		return "", ""
	}
	locs := suffixLocants(groups)
	omit := terminalClasses[class] || (len(locs) == 1 && chainLen <= 2)
	if !omit {
		locPart = "-" + joinInts(locs) + "-"
	}
	return locPart, nametab.Multiplier(len(locs)) + spec.Suffix
}

// ringSuffixParts is the ring variant: locants are always cited.
func (c *Context) ringSuffixParts(groups []Group) (locPart, word string) {
	class := groups[0].Class
	spec, ok := c.Tables.SuffixFor(class.SuffixKey())
	if !ok {
		c.warn(fmt.Sprintf("no suffix entry for class %s", class), 0.15)
		return "", ""
	}
	locs := suffixLocants(groups)
	return "-" + joinInts(locs) + "-", nametab.Multiplier(len(locs)) + spec.Suffix
}

func suffixLocants(groups []Group) []int {
	var locs []int
	for _, g := range groups {
		locs = append(locs, g.Locants...)
	}
	sort.Ints(locs)
	if len(locs) == 0 {
		locs = []int{1}
	}
	return locs
}

// hydrideName composes stem + unsaturation: "butane", "but-2-ene",
// "propene" (omitted locant), "buta-1,3-diene", "but-1-en-3-yne".
func hydrideName(stem string, enes, ynes []int, omitLocants bool) string {
	if len(enes) == 0 && len(ynes) == 0 {
		return stem + "ane"
	}
	if omitLocants && len(enes)+len(ynes) == 1 {
		if len(enes) == 1 {
			return stem + "ene"
		}
		return stem + "yne"
	}
	return stem + hydridePart(enes, "en") + hydridePart(ynes, "yn") + "e"
}

// appendSuffix joins base + locant segment + suffix word, eliding the
// base's final "e" before a vowel-initial suffix word.
func appendSuffix(base, locPart, word string) string {
	if word == "" {
		return base
	}
	if strings.HasSuffix(base, "e") && startsWithVowel(word) {
		base = base[:len(base)-1]
	}
	return base + locPart + word
}

func startsWithVowel(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// joinPrefix glues the substituent-prefix block onto the base, inserting
// a hyphen when the base itself starts with a locant.
func joinPrefix(prefix, base string) string {
	if prefix == "" {
		return base
	}
	if base != "" && base[0] >= '0' && base[0] <= '9' {
		return prefix + "-" + base
	}
	return prefix + base
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// vbDescriptor renders the bracketed von Baeyer descriptor under the
// final numbering: arc sizes, main bridge size, then secondary bridges
// with their attachment locants.
func vbDescriptor(vb *VonBaeyer, loc map[int]int) string {
	var sizes []string

	arcs := ringArcs(vb.MainRing, vb.MainBridge.Ends[0], vb.MainBridge.Ends[1])
	if arcs != nil {
		a1, a2 := len(arcs[0]), len(arcs[1])
		if a2 > a1 {
			a1, a2 = a2, a1
		}
		sizes = append(sizes, strconv.Itoa(a1), strconv.Itoa(a2))
	} else {
		sizes = append(sizes, strconv.Itoa(len(vb.MainRing)-2), "0")
	}
	sizes = append(sizes, strconv.Itoa(len(vb.MainBridge.Interior)))

	type sec struct {
		size     int
		lo, hi   int
		rendered string
	}
	var secs []sec
	for _, br := range vb.Secondary {
		lo, hi := loc[br.Ends[0]], loc[br.Ends[1]]
		if hi < lo {
			lo, hi = hi, lo
		}
		secs = append(secs, sec{
			size:     len(br.Interior),
			lo:       lo,
			hi:       hi,
			rendered: fmt.Sprintf("%d%d,%d", len(br.Interior), lo, hi),
		})
	}
	sort.SliceStable(secs, func(i, j int) bool {
		if secs[i].size != secs[j].size {
			return secs[i].size > secs[j].size
		}
		if secs[i].lo != secs[j].lo {
			return secs[i].lo < secs[j].lo
		}
		return secs[i].hi < secs[j].hi
	})
	for _, s := range secs {
		sizes = append(sizes, s.rendered)
	}

	return "[" + strings.Join(sizes, ".") + "]"
}
