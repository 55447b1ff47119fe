// Package testutils provides shared fixtures for tests
package testutils

import (
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
)

// Common expressions used across tests
const (
	// ExpressionSkillCheck is an average skill check against average difficulty
	ExpressionSkillCheck = "2g1y2p1b"

	// ExpressionOpposed is a fearsome opposition with setbacks
	ExpressionOpposed = "1r2k"

	// ExpressionForce is a force power check
	ExpressionForce = "3w"

	// ExpressionThreeChecks rolls all three fixtures as separate sets
	ExpressionThreeChecks = ExpressionSkillCheck + ", " + ExpressionOpposed + ", " + ExpressionForce
)

// FixedTime is the instant stamped by clocks in tests
var FixedTime = time.Date(2024, time.March, 9, 19, 30, 0, 0, time.UTC)

// SkillCheckSet is the parsed form of ExpressionSkillCheck
func SkillCheckSet() dice.Set {
	return dice.Set{
		{Count: 2, Variant: dice.Ability},
		{Count: 1, Variant: dice.Proficiency},
		{Count: 2, Variant: dice.Difficulty},
		{Count: 1, Variant: dice.Boost},
	}
}

// OpposedSet is the parsed form of ExpressionOpposed
func OpposedSet() dice.Set {
	return dice.Set{
		{Count: 1, Variant: dice.Challenge},
		{Count: 2, Variant: dice.Setback},
	}
}

// ForceSet is the parsed form of ExpressionForce
func ForceSet() dice.Set {
	return dice.Set{
		{Count: 3, Variant: dice.Force},
	}
}

// ThreeCheckSets is the parsed form of ExpressionThreeChecks
func ThreeCheckSets() []dice.Set {
	return []dice.Set{SkillCheckSet(), OpposedSet(), ForceSet()}
}

// ThreeCheckIndexes drives a source through ThreeCheckSets.
// Totals: {3 success, 1 advantage, 1 triumph}, {1 failure, 1 threat,
// 1 despair}, {3 light, 1 dark}.
func ThreeCheckIndexes() []int {
	return []int{1, 3, 11, 3, 0, 4, 11, 2, 4, 0, 7, 9}
}
