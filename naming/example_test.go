package naming_test

import (
	"fmt"

	"github.com/molgraph/nomen/naming"
)

// ExampleGenerateNameFromSMILES names ethanol from its SMILES spelling.
func ExampleGenerateNameFromSMILES() {
	res, err := naming.GenerateNameFromSMILES("CCO")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Name)
	// Output:
	// ethanol
}

// ExampleGenerateNameFromSMILES_seniority shows a ketone outranking an
// alcohol: the hydroxyl demotes to a hydroxy prefix.
func ExampleGenerateNameFromSMILES_seniority() {
	res, err := naming.GenerateNameFromSMILES("CC(=O)CCO")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Name)
	for _, g := range res.FunctionalGroups {
		if g.Class.Suffixable() {
			fmt.Printf("%s principal=%v\n", g.Class, g.Principal)
		}
	}
	// Output:
	// 4-hydroxybutan-2-one
	// ketone principal=true
	// alcohol principal=false
}

// ExampleGenerateNameFromSMILES_trace prints the applied rule chain.
func ExampleGenerateNameFromSMILES_trace() {
	res, err := naming.GenerateNameFromSMILES("CC=CC")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Trace {
		fmt.Printf("%s %s\n", e.Phase, e.RuleID)
	}
	// Output:
	// FUNCTIONAL_GROUP_DETECTION P-41
	// PARENT_SELECTION P-44
	// NUMBERING P-14.1
	// NUMBERING P-14.5
	// SUBSTITUENT_ASSEMBLY P-29
	// NAME_ASSEMBLY P-16
}
