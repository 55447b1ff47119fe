package dice

import "fmt"

// faceTables lists the faces of each variant in index order. The order is
// fixed: a seeded roll replays only while the tables stay as written.
var faceTables = [...][]Face{
	Boost: {
		Blank, Blank, Success, SuccessAndAdvantage, DoubleAdvantage, Advantage,
	},
	Setback: {
		Blank, Blank, Failure, Failure, Threat, Threat,
	},
	Ability: {
		Blank, Success, Success, DoubleSuccess,
		Advantage, Advantage, SuccessAndAdvantage, DoubleAdvantage,
	},
	Difficulty: {
		Blank, Failure, DoubleFailure, Threat,
		Threat, Threat, DoubleThreat, FailureAndThreat,
	},
	Proficiency: {
		Blank, Success, Success, DoubleSuccess,
		DoubleSuccess, Advantage, SuccessAndAdvantage, SuccessAndAdvantage,
		SuccessAndAdvantage, DoubleAdvantage, DoubleAdvantage, Triumph,
	},
	Challenge: {
		Blank, Failure, Failure, DoubleFailure,
		DoubleFailure, Threat, Threat, FailureAndThreat,
		FailureAndThreat, DoubleThreat, DoubleThreat, Despair,
	},
	Force: {
		SingleDarkPip, SingleDarkPip, SingleDarkPip, SingleDarkPip,
		SingleDarkPip, SingleDarkPip, DoubleDarkPip, SingleLightPip,
		SingleLightPip, DoubleLightPip, DoubleLightPip, DoubleLightPip,
	},
}

func init() {
	for _, v := range Variants() {
		if len(faceTables[v]) != v.Sides() {
			panic(fmt.Sprintf("dice: %s table has %d faces, want %d", v, len(faceTables[v]), v.Sides()))
		}
	}
}

// FaceFor returns the face at index on a die of the given variant.
//
// Precondition: variant is valid and 0 <= index < variant.Sides().
// Anything else is a programming error and panics.
func FaceFor(variant DieVariant, index int) Face {
	if !variant.Valid() {
		panic(fmt.Sprintf("dice: face requested for invalid variant %d", int(variant)))
	}
	table := faceTables[variant]
	if index < 0 || index >= len(table) {
		panic(fmt.Sprintf("dice: face index %d out of range for %s (sides %d)", index, variant, len(table)))
	}
	return table[index]
}

// Faces returns a copy of the face table for a variant
func Faces(variant DieVariant) []Face {
	if !variant.Valid() {
		return nil
	}
	out := make([]Face, len(faceTables[variant]))
	copy(out, faceTables[variant])
	return out
}
