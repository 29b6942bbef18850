// SMILES reader: tokenizes the text left to right, maintaining a branch
// stack and open ring-bond table, then seals the result through ring
// analysis so the molecule arrives at the engine fully analyzed.
package smiles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/rings"
)

// Sentinel errors for SMILES reading.
var (
	// ErrSyntax indicates malformed SMILES text.
	ErrSyntax = errors.New("smiles: syntax error")

	// ErrRingClosure indicates an unmatched ring-bond digit.
	ErrRingClosure = errors.New("smiles: unclosed ring bond")

	// ErrUnsupported indicates a construct outside the supported subset.
	ErrUnsupported = errors.New("smiles: unsupported construct")
)

// organic lists subset elements writable without brackets, two-letter
// symbols first so greedy matching stays correct.
var organic = []string{"Cl", "Br", "B", "C", "N", "O", "P", "S", "F", "I"}

// aromaticOrganic lists lowercase aromatic subset symbols.
var aromaticOrganic = []string{"b", "c", "n", "o", "p", "s"}

// pendingAtom accumulates one atom during the scan before IDs are final.
type pendingAtom struct {
	atom      molecule.Atom
	bracket   bool // explicit-H semantics
	explicitH int
}

type openRing struct {
	atom   int
	order  molecule.BondOrder
	stereo molecule.Stereo
	set    bool // a bond symbol preceded the digit
}

// Parse reads a SMILES string and returns a sealed molecule with ring and
// aromaticity analysis attached.
func Parse(text string) (*molecule.Molecule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	var (
		atoms     []pendingAtom
		bonds     []molecule.Bond
		stack     []int // branch return points (atom IDs)
		prev      int   // last atom ID, 0 before the first atom
		bondOrder = molecule.Single
		bondArom  bool
		stereo    = molecule.StereoNone
		bondSet   bool
		ringTab   = map[int]openRing{}
		nextBond  = 1
	)

	addBond := func(from, to int, order molecule.BondOrder, aromatic bool, st molecule.Stereo) {
		bonds = append(bonds, molecule.Bond{
			ID: nextBond, From: from, To: to, Order: order, Aromatic: aromatic, Stereo: st,
		})
		nextBond++
	}

	// placeAtom links a freshly read atom to the running chain and resets
	// the pending bond state.
	placeAtom := func(pa pendingAtom) {
		pa.atom.ID = len(atoms) + 1
		atoms = append(atoms, pa)
		if prev != 0 {
			order, arom := bondOrder, bondArom
			if !bondSet && pa.atom.Aromatic && atoms[prev-1].atom.Aromatic {
				arom = true
			}
			addBond(prev, pa.atom.ID, order, arom, stereo)
		}
		prev = pa.atom.ID
		bondOrder, bondArom, stereo, bondSet = molecule.Single, false, molecule.StereoNone, false
	}

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '(':
			if prev == 0 {
				return nil, fmt.Errorf("%w: branch before any atom at %d", ErrSyntax, i)
			}
			stack = append(stack, prev)
			i++
		case c == ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unmatched ')' at %d", ErrSyntax, i)
			}
			prev = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i++
		case c == '-':
			bondOrder, bondSet = molecule.Single, true
			i++
		case c == '=':
			bondOrder, bondSet = molecule.Double, true
			i++
		case c == '#':
			bondOrder, bondSet = molecule.Triple, true
			i++
		case c == ':':
			bondOrder, bondArom, bondSet = molecule.Single, true, true
			i++
		case c == '/':
			bondOrder, stereo, bondSet = molecule.Single, molecule.StereoUp, true
			i++
		case c == '\\':
			bondOrder, stereo, bondSet = molecule.Single, molecule.StereoDown, true
			i++
		case c == '.':
			prev = 0
			bondOrder, bondArom, stereo, bondSet = molecule.Single, false, molecule.StereoNone, false
			i++
		case c >= '0' && c <= '9', c == '%':
			num, width, err := ringDigit(text, i)
			if err != nil {
				return nil, err
			}
			if prev == 0 {
				return nil, fmt.Errorf("%w: ring bond before any atom at %d", ErrSyntax, i)
			}
			if open, ok := ringTab[num]; ok {
				order, st := bondOrder, stereo
				if !bondSet && open.set {
					order, st = open.order, open.stereo
				}
				arom := bondArom ||
					(!bondSet && !open.set && atoms[prev-1].atom.Aromatic && atoms[open.atom-1].atom.Aromatic)
				addBond(open.atom, prev, order, arom, st)
				delete(ringTab, num)
			} else {
				ringTab[num] = openRing{atom: prev, order: bondOrder, stereo: stereo, set: bondSet}
			}
			bondOrder, bondArom, stereo, bondSet = molecule.Single, false, molecule.StereoNone, false
			i += width
		case c == '[':
			pa, width, err := readBracket(text, i)
			if err != nil {
				return nil, err
			}
			placeAtom(pa)
			i += width
		case c == '*':
			return nil, fmt.Errorf("%w: wildcard atom at %d", ErrUnsupported, i)
		default:
			pa, width, err := readOrganic(text, i)
			if err != nil {
				return nil, err
			}
			placeAtom(pa)
			i += width
		}
	}

	if len(ringTab) != 0 {
		return nil, fmt.Errorf("%w: %d ring bond(s) left open", ErrRingClosure, len(ringTab))
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unmatched '('", ErrSyntax)
	}

	// Finalize atoms: implicit hydrogens for organic-subset atoms; bracket
	// atoms keep exactly the hydrogen count they declared.
	finalAtoms := make([]molecule.Atom, len(atoms))
	orderSum := make([]int, len(atoms)+1)
	aromBonds := make([]int, len(atoms)+1)
	for _, b := range bonds {
		orderSum[b.From] += int(b.Order)
		orderSum[b.To] += int(b.Order)
		if b.Aromatic {
			aromBonds[b.From]++
			aromBonds[b.To]++
		}
	}
	for idx, pa := range atoms {
		a := pa.atom
		if pa.bracket {
			a.Hydrogens = pa.explicitH
		} else {
			sum := orderSum[a.ID]
			if a.Aromatic && aromBonds[a.ID] >= 2 {
				sum++ // one delocalized double bond's worth
			}
			a.Hydrogens = implicitHydrogens(a.Element, a.Charge, sum)
		}
		finalAtoms[idx] = a
	}

	mol, err := molecule.New(finalAtoms, bonds)
	if err != nil {
		return nil, err
	}
	return rings.Analyze(mol)
}

// ringDigit reads a ring-bond number at position i: a single digit or a
// %nn two-digit form. Returns the number and consumed width.
func ringDigit(text string, i int) (int, int, error) {
	if text[i] != '%' {
		return int(text[i] - '0'), 1, nil
	}
	if i+2 >= len(text) || !isDigit(text[i+1]) || !isDigit(text[i+2]) {
		return 0, 0, fmt.Errorf("%w: malformed %%nn ring bond at %d", ErrSyntax, i)
	}
	return int(text[i+1]-'0')*10 + int(text[i+2]-'0'), 3, nil
}

// readOrganic reads an organic-subset atom at position i.
func readOrganic(text string, i int) (pendingAtom, int, error) {
	for _, sym := range organic {
		if strings.HasPrefix(text[i:], sym) {
			return pendingAtom{atom: molecule.Atom{Element: sym}}, len(sym), nil
		}
	}
	for _, sym := range aromaticOrganic {
		if strings.HasPrefix(text[i:], sym) {
			return pendingAtom{atom: molecule.Atom{
				Element:  strings.ToUpper(sym),
				Aromatic: true,
			}}, len(sym), nil
		}
	}
	return pendingAtom{}, 0, fmt.Errorf("%w: unexpected character %q at %d", ErrSyntax, text[i], i)
}

// readBracket reads a [isotope symbol chirality Hcount charge] atom
// starting at the '[' in position i. Returns the atom and total width
// including both brackets.
func readBracket(text string, i int) (pendingAtom, int, error) {
	end := strings.IndexByte(text[i:], ']')
	if end < 0 {
		return pendingAtom{}, 0, fmt.Errorf("%w: unterminated bracket atom at %d", ErrSyntax, i)
	}
	body := text[i+1 : i+end]
	pa := pendingAtom{bracket: true}
	j := 0

	// 1) Optional isotope.
	for j < len(body) && isDigit(body[j]) {
		pa.atom.Isotope = pa.atom.Isotope*10 + int(body[j]-'0')
		j++
	}

	// 2) Element symbol (uppercase + optional lowercase, or aromatic lowercase).
	if j >= len(body) {
		return pendingAtom{}, 0, fmt.Errorf("%w: empty bracket atom at %d", ErrSyntax, i)
	}
	switch {
	case body[j] >= 'A' && body[j] <= 'Z':
		sym := string(body[j])
		j++
		if j < len(body) && body[j] >= 'a' && body[j] <= 'z' && body[j] != 'H' {
			// Two-letter symbols only when the pair is a known element style;
			// H-count 'H' must not be swallowed.
			if !strings.ContainsRune("@+-0123456789", rune(body[j])) {
				sym += string(body[j])
				j++
			}
		}
		pa.atom.Element = sym
	case body[j] >= 'a' && body[j] <= 'z':
		pa.atom.Element = strings.ToUpper(string(body[j]))
		pa.atom.Aromatic = true
		j++
	default:
		return pendingAtom{}, 0, fmt.Errorf("%w: bad element in bracket atom at %d", ErrSyntax, i)
	}

	// 3) Optional chirality marks (parsed, not interpreted).
	for j < len(body) && body[j] == '@' {
		j++
	}

	// 4) Optional explicit hydrogen count.
	if j < len(body) && body[j] == 'H' {
		j++
		pa.explicitH = 1
		if j < len(body) && isDigit(body[j]) {
			pa.explicitH = int(body[j] - '0')
			j++
		}
	}

	// 5) Optional charge.
	for j < len(body) && (body[j] == '+' || body[j] == '-') {
		sign := 1
		if body[j] == '-' {
			sign = -1
		}
		j++
		if j < len(body) && isDigit(body[j]) {
			pa.atom.Charge += sign * int(body[j]-'0')
			j++
		} else {
			pa.atom.Charge += sign
		}
	}

	if j != len(body) {
		return pendingAtom{}, 0, fmt.Errorf("%w: trailing %q in bracket atom at %d", ErrSyntax, body[j:], i)
	}
	return pa, end + 1, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
