// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
	dicemock "github.com/KirkDiggler/genesys-dice/internal/dice/mock"
)

// ExpectSetIndexes sets up ordered Intn expectations that roll every die of
// set with the given indexes, in roll order. The number of indexes must equal
// set.DiceCount().
func ExpectSetIndexes(mockSource *dicemock.MockSource, set dice.Set, indexes ...int) {
	var prev *gomock.Call
	next := 0
	for _, group := range set {
		for _, idx := range indexes[next : next+group.Count] {
			call := mockSource.EXPECT().
				Intn(group.Variant.Sides()).
				Return(idx, nil)
			if prev != nil {
				call.After(prev)
			}
			prev = call
		}
		next += group.Count
	}
}

// ExpectBlankRolls lets the source return index 0 for any number of draws
func ExpectBlankRolls(mockSource *dicemock.MockSource) {
	mockSource.EXPECT().
		Intn(gomock.Any()).
		Return(0, nil).
		AnyTimes()
}
