// Package dice rolls Genesys narrative dice.
//
// The package is a pure computation split into four steps:
//
//   - FaceFor maps a die variant and a face index to the symbol printed on that side.
//   - Roll draws faces for one homogeneous group of dice from a Source.
//   - Reduce folds a group's faces into net totals.
//   - Aggregate sums the group results of one set (one check).
//
// RollAll drives every step for a list of sets with a single shared Source,
// so a seeded Source reproduces the whole roll.
//
// # Randomness
//
// Source is the only non-deterministic input. NewCryptoSource adapts the
// rpg-toolkit roller for production use; NewSeededSource gives a
// reproducible sequence for tests and replays. A seeded source is not safe
// for concurrent use; give every goroutine its own instance.
//
// # Netting
//
// Success and failure cancel into SuccessFailNet, advantage and threat into
// AdvantageThreatNet. Triumph, despair and Force pips are plain counts and
// never cancel against anything, including each other.
package dice
