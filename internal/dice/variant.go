package dice

import (
	"strings"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// DieVariant is one of the seven narrative die kinds
type DieVariant int

// Die variants. The zero value is not a valid variant.
const (
	VariantUnspecified DieVariant = iota
	Boost
	Setback
	Ability
	Difficulty
	Proficiency
	Challenge
	Force
)

var variantNames = [...]string{
	VariantUnspecified: "unspecified",
	Boost:              "boost",
	Setback:            "setback",
	Ability:            "ability",
	Difficulty:         "difficulty",
	Proficiency:        "proficiency",
	Challenge:          "challenge",
	Force:              "force",
}

var variantColours = [...]string{
	VariantUnspecified: "",
	Boost:              "blue",
	Setback:            "black",
	Ability:            "green",
	Difficulty:         "purple",
	Proficiency:        "yellow",
	Challenge:          "red",
	Force:              "white",
}

// Variants returns every valid variant in declaration order
func Variants() []DieVariant {
	return []DieVariant{Boost, Setback, Ability, Difficulty, Proficiency, Challenge, Force}
}

// Valid reports whether v is one of the seven die kinds
func (v DieVariant) Valid() bool {
	return v >= Boost && v <= Force
}

// Sides returns the number of faces on a die of this variant.
// It panics for an invalid variant.
func (v DieVariant) Sides() int {
	switch v {
	case Boost, Setback:
		return 6
	case Ability, Difficulty:
		return 8
	case Proficiency, Challenge, Force:
		return 12
	default:
		panic("dice: sides requested for invalid variant " + v.String())
	}
}

// String returns the lower-case variant name
func (v DieVariant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// Colour returns the colour of the physical die
func (v DieVariant) Colour() string {
	if !v.Valid() {
		return ""
	}
	return variantColours[v]
}

// MarshalText renders the variant by name so JSON output stays readable
func (v DieVariant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseVariant resolves a variant from its name or die colour, ignoring case
func ParseVariant(s string) (DieVariant, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants() {
		if needle == variantNames[v] || needle == variantColours[v] {
			return v, nil
		}
	}
	return VariantUnspecified, errors.InvalidArgumentf("unknown die variant: %q", s).
		WithMeta("variant", s)
}
