// The rule table and the fold that runs it.
package naming

import (
	"fmt"

	"github.com/molgraph/nomen/molecule"
	"github.com/molgraph/nomen/nametab"
	"github.com/molgraph/nomen/rings"
	"github.com/molgraph/nomen/smiles"
)

// defaultRules is the engine's ordered rule table. Execution is a single
// left-to-right fold; no rule runs twice.
var defaultRules = []Rule{
	{ID: "P-41", Phase: PhaseFunctionalGroupDetection, When: always, Apply: ruleDetectGroups},
	{ID: "P-41.1", Phase: PhaseFunctionalGroupDetection, When: hasGroups, Apply: ruleSelectPrincipal},
	{ID: "P-44", Phase: PhaseParentSelection, When: always, Apply: ruleSelectParent},
	{ID: "P-14.1", Phase: PhaseNumbering, When: hasParent, Apply: ruleNumberingCandidates},
	{ID: "P-14.2", Phase: PhaseNumbering, When: hasParent, Apply: ruleLowHeteroatoms},
	{ID: "P-14.3", Phase: PhaseNumbering, When: hasParent, Apply: ruleLowPrincipal},
	{ID: "P-31", Phase: PhaseNumbering, When: hasParent, Apply: ruleLowUnsaturation},
	{ID: "P-14.4", Phase: PhaseNumbering, When: hasParent, Apply: ruleLowSubstituents},
	{ID: "P-14.5", Phase: PhaseNumbering, When: hasParent, Apply: ruleFinalizeNumbering},
	{ID: "P-29", Phase: PhaseSubstituentAssembly, When: hasParent, Apply: ruleAssembleSubstituents},
	{ID: "P-16", Phase: PhaseNameAssembly, When: hasParent, Apply: ruleRenderName},
}

func always(*Context) bool      { return true }
func hasGroups(c *Context) bool { return len(c.Groups) > 0 }
func hasParent(c *Context) bool { return c.Parent != nil }

// GenerateIUPACName names a molecular graph. The molecule must be a
// single connected component; ring perception runs automatically when the
// input carries no ring set.
func GenerateIUPACName(m *molecule.Molecule, opts ...Option) (NameResult, error) {
	if m == nil {
		return NameResult{}, fmt.Errorf("%w: nil molecule", ErrStructural)
	}
	if m.NumAtoms() == 0 {
		return NameResult{}, fmt.Errorf("%w: empty molecule", ErrStructural)
	}
	if !m.Connected() {
		return NameResult{}, fmt.Errorf("%w: molecule is not a single connected component", ErrNoParent)
	}
	if len(m.Rings()) == 0 {
		analyzed, err := rings.Analyze(m)
		if err != nil {
			return NameResult{}, fmt.Errorf("%w: ring perception failed: %v", ErrStructural, err)
		}
		m = analyzed
	}

	ctx := &Context{
		Mol:        m,
		Tables:     nametab.Default(),
		Confidence: 1.0,
	}
	for _, opt := range opts {
		opt(ctx)
	}

	for _, r := range defaultRules {
		if !r.When(ctx) {
			continue
		}
		next, err := r.Apply(ctx)
		if err != nil {
			return resultOf(ctx), err
		}
		ctx = next
	}
	ctx.Phase = PhaseDone
	return resultOf(ctx), nil
}

// GenerateNameFromSMILES parses a SMILES string and names the result.
func GenerateNameFromSMILES(text string, opts ...Option) (NameResult, error) {
	m, err := smiles.Parse(text)
	if err != nil {
		return NameResult{}, err
	}
	return GenerateIUPACName(m, opts...)
}

func resultOf(ctx *Context) NameResult {
	return NameResult{
		Name:             ctx.Name,
		Confidence:       ctx.Confidence,
		FunctionalGroups: ctx.Groups,
		Parent:           ctx.Parent,
		Trace:            ctx.Trace,
		Warnings:         ctx.Warnings,
	}
}
