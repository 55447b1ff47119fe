package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/notation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []dice.Set
	}{
		{
			name:  "colour letters",
			input: "2p2g1y",
			want: []dice.Set{{
				{Count: 2, Variant: dice.Difficulty},
				{Count: 2, Variant: dice.Ability},
				{Count: 1, Variant: dice.Proficiency},
			}},
		},
		{
			name:  "three separate checks",
			input: "2p2g1y, 2p2g1y,2p2g1y",
			want: []dice.Set{
				{{Count: 2, Variant: dice.Difficulty}, {Count: 2, Variant: dice.Ability}, {Count: 1, Variant: dice.Proficiency}},
				{{Count: 2, Variant: dice.Difficulty}, {Count: 2, Variant: dice.Ability}, {Count: 1, Variant: dice.Proficiency}},
				{{Count: 2, Variant: dice.Difficulty}, {Count: 2, Variant: dice.Ability}, {Count: 1, Variant: dice.Proficiency}},
			},
		},
		{
			name:  "default count and plus signs",
			input: "g + p + 3 b",
			want: []dice.Set{{
				{Count: 1, Variant: dice.Ability},
				{Count: 1, Variant: dice.Difficulty},
				{Count: 3, Variant: dice.Boost},
			}},
		},
		{
			name:  "full names and colours",
			input: "2 Ability + 1 red, 1force 2 black",
			want: []dice.Set{
				{{Count: 2, Variant: dice.Ability}, {Count: 1, Variant: dice.Challenge}},
				{{Count: 1, Variant: dice.Force}, {Count: 2, Variant: dice.Setback}},
			},
		},
		{
			name:  "short letters",
			input: "1a1d1s1c1f",
			want: []dice.Set{{
				{Count: 1, Variant: dice.Ability},
				{Count: 1, Variant: dice.Difficulty},
				{Count: 1, Variant: dice.Setback},
				{Count: 1, Variant: dice.Challenge},
				{Count: 1, Variant: dice.Force},
			}},
		},
		{
			name:  "letter run shares the count with its first die",
			input: "2gp",
			want: []dice.Set{{
				{Count: 2, Variant: dice.Ability},
				{Count: 1, Variant: dice.Difficulty},
			}},
		},
		{
			name:  "zero count",
			input: "0g1p",
			want: []dice.Set{{
				{Count: 0, Variant: dice.Ability},
				{Count: 1, Variant: dice.Difficulty},
			}},
		},
		{
			name:  "upper case",
			input: "1Y1R",
			want: []dice.Set{{
				{Count: 1, Variant: dice.Proficiency},
				{Count: 1, Variant: dice.Challenge},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := notation.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken string
		wantPos   int
		wantMsg   string
	}{
		{name: "empty", input: "   ", wantToken: "", wantPos: 1, wantMsg: "roll expression is empty"},
		{name: "unknown die", input: "2x", wantToken: "x", wantPos: 2, wantMsg: `unknown die "x"`},
		{name: "unknown word", input: "1g 2blah", wantToken: "blah", wantPos: 5, wantMsg: `unknown die "blah"`},
		{name: "count without die", input: "2g3", wantToken: "3", wantPos: 3, wantMsg: "dice count 3 has no die"},
		{name: "d20 style", input: "1d20", wantToken: "20", wantPos: 3, wantMsg: "dice count 20 has no die"},
		{name: "trailing comma", input: "2g,", wantToken: "", wantPos: 4, wantMsg: "empty dice set"},
		{name: "empty middle set", input: "2g, ,1p", wantToken: "", wantPos: 4, wantMsg: "empty dice set"},
		{name: "leading plus", input: "+2g", wantToken: "+", wantPos: 1, wantMsg: "expected a die before '+'"},
		{name: "dangling plus", input: "2g +", wantToken: "+", wantPos: 4, wantMsg: "expected a die after '+'"},
		{name: "bad character", input: "2g*1p", wantToken: "*", wantPos: 3, wantMsg: `unexpected character "*"`},
		{name: "count too large", input: "1001g", wantToken: "1001", wantPos: 1, wantMsg: "dice count 1001 exceeds 1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := notation.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, sets)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Equal(t, tt.wantMsg, errors.GetMessage(err))

			meta := errors.GetMeta(err)
			assert.Equal(t, tt.input, meta["expression"])
			assert.Equal(t, tt.wantPos, meta["position"])
			assert.Equal(t, tt.wantToken, meta["token"])
		})
	}
}

func TestFormat(t *testing.T) {
	sets := []dice.Set{
		{{Count: 2, Variant: dice.Ability}, {Count: 1, Variant: dice.Difficulty}},
		{{Count: 1, Variant: dice.Proficiency}, {Count: 0, Variant: dice.Boost}},
		{{Count: 2, Variant: dice.Setback}, {Count: 1, Variant: dice.Challenge}, {Count: 1, Variant: dice.Force}},
	}

	formatted := notation.Format(sets)
	assert.Equal(t, "2g1p, 1y0b, 2k1r1w", formatted)

	parsed, err := notation.Parse(formatted)
	require.NoError(t, err)
	assert.Equal(t, sets, parsed)

	assert.Equal(t, "", notation.Format(nil))
}
