// Standard-valence implicit hydrogen assignment for organic-subset atoms.
package smiles

// defaultValence holds the lowest normal valence per organic-subset element.
var defaultValence = map[string]int{
	"B": 3, "C": 4, "N": 3, "O": 2, "P": 3,
	"S": 2, "F": 1, "Cl": 1, "Br": 1, "I": 1,
}

// implicitHydrogens returns the implicit hydrogen count for an
// organic-subset atom given its formal charge and total bond-order sum.
// Charge shifts the effective valence for N/O/S/P (N+ binds four, O- one);
// carbon loses a binding site either way. Hypervalent sulfur and
// phosphorus step up to the next normal valence when the bond-order sum
// already exceeds the default.
func implicitHydrogens(element string, charge, orderSum int) int {
	val, ok := defaultValence[element]
	if !ok {
		return 0 // unknown element: no implicit hydrogens
	}

	switch element {
	case "C", "B":
		if charge != 0 {
			val-- // carbanion/carbocation both drop one binding site
		}
	default:
		val += charge
	}

	// Hypervalent S (4, 6) and P (5).
	if element == "S" && orderSum > val {
		if orderSum <= 4 {
			val = 4
		} else {
			val = 6
		}
	}
	if element == "P" && orderSum > val {
		val = 5
	}

	if h := val - orderSum; h > 0 {
		return h
	}
	return 0
}
