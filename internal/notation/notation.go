// Package notation parses narrative dice expressions such as "2g1p1y, 3b2k".
//
// An expression is one or more comma separated sets. A set is one or more
// groups, optionally joined with '+'. A group is an optional count (default
// 1) followed by a die, written as a colour letter, a short letter or a full
// name. Whitespace and case are ignored.
//
//	b, boost, blue           Boost
//	k, s, setback, black     Setback
//	g, a, ability, green     Ability
//	p, d, difficulty, purple Difficulty
//	y, proficiency, yellow   Proficiency
//	r, c, challenge, red     Challenge
//	w, f, force, white       Force
//
// A run of letters that is not a full name is read one die per letter, so
// "2gp" is two Ability and one Difficulty.
package notation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// MaxGroupCount bounds the count of a single group
const MaxGroupCount = 1000

var (
	// optional '+', optional count, optional die letters
	groupPattern = regexp.MustCompile(`^\s*(\+)?\s*(\d*)\s*([A-Za-z]*)\s*`)

	letters = map[rune]dice.DieVariant{
		'b': dice.Boost,
		'k': dice.Setback,
		's': dice.Setback,
		'g': dice.Ability,
		'a': dice.Ability,
		'p': dice.Difficulty,
		'd': dice.Difficulty,
		'y': dice.Proficiency,
		'r': dice.Challenge,
		'c': dice.Challenge,
		'w': dice.Force,
		'f': dice.Force,
	}

	canonical = map[dice.DieVariant]string{
		dice.Boost:       "b",
		dice.Setback:     "k",
		dice.Ability:     "g",
		dice.Difficulty:  "p",
		dice.Proficiency: "y",
		dice.Challenge:   "r",
		dice.Force:       "w",
	}
)

// Parse turns an expression into sets of die groups, in the order written.
// Every failure is an InvalidArgument error with "expression", "position"
// (1-based column) and "token" metadata.
func Parse(expression string) ([]dice.Set, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, parseError(expression, 0, "", "roll expression is empty")
	}

	parts := strings.Split(expression, ",")
	sets := make([]dice.Set, 0, len(parts))
	offset := 0
	for _, part := range parts {
		set, err := parseSet(expression, part, offset)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
		offset += len(part) + 1
	}

	return sets, nil
}

func parseSet(expression, part string, offset int) (dice.Set, error) {
	var set dice.Set
	rest := part
	pos := offset

	for strings.TrimSpace(rest) != "" {
		m := groupPattern.FindStringSubmatchIndex(rest)
		if m == nil || m[1] == 0 {
			return nil, parseError(expression, pos, rest[:1], "unexpected character %q", rest[:1])
		}

		plus := m[2] >= 0
		digits := rest[m[4]:m[5]]
		word := rest[m[6]:m[7]]

		if plus && len(set) == 0 {
			return nil, parseError(expression, pos+m[2], "+", "expected a die before '+'")
		}

		if word == "" {
			if digits != "" {
				return nil, parseError(expression, pos+m[4], digits, "dice count %s has no die", digits)
			}
			if plus {
				return nil, parseError(expression, pos+m[2], "+", "expected a die after '+'")
			}
			return nil, parseError(expression, pos+m[1], rest[m[1]:m[1]+1], "unexpected character %q", rest[m[1]:m[1]+1])
		}

		count := 1
		if digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil || n > MaxGroupCount {
				return nil, parseError(expression, pos+m[4], digits, "dice count %s exceeds %d", digits, MaxGroupCount)
			}
			count = n
		}

		groups, err := parseDice(expression, word, pos+m[6], count)
		if err != nil {
			return nil, err
		}
		set = append(set, groups...)

		rest = rest[m[1]:]
		pos += m[1]
	}

	if len(set) == 0 {
		return nil, parseError(expression, offset, "", "empty dice set")
	}

	return set, nil
}

// parseDice resolves a letter run. count applies to the first die only.
func parseDice(expression, word string, pos, count int) ([]dice.DieGroup, error) {
	lower := strings.ToLower(word)
	if len(lower) > 1 {
		if v, err := dice.ParseVariant(lower); err == nil {
			return []dice.DieGroup{{Count: count, Variant: v}}, nil
		}
	}

	groups := make([]dice.DieGroup, 0, len(lower))
	for i, r := range lower {
		v, ok := letters[r]
		if !ok {
			return nil, parseError(expression, pos, word, "unknown die %q", word)
		}
		n := 1
		if i == 0 {
			n = count
		}
		groups = append(groups, dice.DieGroup{Count: n, Variant: v})
	}

	return groups, nil
}

func parseError(expression string, pos int, token, format string, args ...interface{}) error {
	column := pos + 1
	return errors.InvalidArgumentf(format, args...).
		WithMeta("expression", expression).
		WithMeta("position", column).
		WithMeta("token", token)
}

// Format renders sets in canonical notation, e.g. "2g1p, 1y".
// Parse(Format(sets)) returns sets unchanged.
func Format(sets []dice.Set) string {
	parts := make([]string, len(sets))
	for i, set := range sets {
		var b strings.Builder
		for _, g := range set {
			b.WriteString(strconv.Itoa(g.Count))
			b.WriteString(canonical[g.Variant])
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}
