package dice

import (
	"fmt"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// DieGroup is a homogeneous batch of dice, e.g. 3 Ability
type DieGroup struct {
	Count   int        `json:"count"`
	Variant DieVariant `json:"variant"`
}

func (g DieGroup) String() string {
	return fmt.Sprintf("%d %s", g.Count, g.Variant)
}

// Set is the groups rolled together and reported as one check
type Set []DieGroup

// DiceCount returns how many dice the set rolls in total
func (s Set) DiceCount() int {
	n := 0
	for _, g := range s {
		n += g.Count
	}
	return n
}

// RollGroup rolls one group and reduces its faces
func RollGroup(group DieGroup, src Source) (GroupResult, error) {
	faces, err := Roll(group.Variant, group.Count, src)
	if err != nil {
		return GroupResult{}, err
	}
	return newGroupResult(group.Variant, faces), nil
}

// RollAll rolls every set and returns one SetResult per set, in input order.
//
// src is shared across the whole call: groups draw from it one after
// another in set order, then group order. Any failure fails the call and no
// partial results are returned.
func RollAll(sets []Set, src Source) ([]SetResult, error) {
	if src == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	results := make([]SetResult, 0, len(sets))
	for i, set := range sets {
		groups := make([]GroupResult, 0, len(set))
		for j, group := range set {
			result, err := RollGroup(group, src)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll set %d group %d (%s)", i+1, j+1, group)
			}
			groups = append(groups, result)
		}
		results = append(results, Aggregate(groups))
	}

	return results, nil
}
