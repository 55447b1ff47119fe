package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
)

func TestReduce_SingleFaceContributions(t *testing.T) {
	tests := []struct {
		face dice.Face
		want dice.Totals
	}{
		{dice.Blank, dice.Totals{}},
		{dice.Success, dice.Totals{SuccessFailNet: 1}},
		{dice.Failure, dice.Totals{SuccessFailNet: -1}},
		{dice.Advantage, dice.Totals{AdvantageThreatNet: 1}},
		{dice.Threat, dice.Totals{AdvantageThreatNet: -1}},
		{dice.Triumph, dice.Totals{TriumphCount: 1}},
		{dice.Despair, dice.Totals{DespairCount: 1}},
		{dice.SuccessAndAdvantage, dice.Totals{SuccessFailNet: 1, AdvantageThreatNet: 1}},
		{dice.FailureAndThreat, dice.Totals{SuccessFailNet: -1, AdvantageThreatNet: -1}},
		{dice.DoubleSuccess, dice.Totals{SuccessFailNet: 2}},
		{dice.DoubleFailure, dice.Totals{SuccessFailNet: -2}},
		{dice.DoubleAdvantage, dice.Totals{AdvantageThreatNet: 2}},
		{dice.DoubleThreat, dice.Totals{AdvantageThreatNet: -2}},
		{dice.SingleLightPip, dice.Totals{LightPips: 1}},
		{dice.SingleDarkPip, dice.Totals{DarkPips: 1}},
		{dice.DoubleLightPip, dice.Totals{LightPips: 2}},
		{dice.DoubleDarkPip, dice.Totals{DarkPips: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			result := dice.Reduce([]dice.Face{tt.face})
			assert.Equal(t, tt.want, result.Totals)
			assert.Equal(t, []dice.Face{tt.face}, result.Faces)
			assert.Equal(t, dice.VariantUnspecified, result.Variant)
		})
	}
}

func TestReduce_Nets(t *testing.T) {
	t.Run("success and failure cancel", func(t *testing.T) {
		result := dice.Reduce([]dice.Face{
			dice.DoubleSuccess, dice.Failure, dice.FailureAndThreat, dice.Advantage,
		})
		assert.Equal(t, 0, result.SuccessFailNet)
		assert.Equal(t, 0, result.AdvantageThreatNet)
	})

	t.Run("triumph and despair never net", func(t *testing.T) {
		result := dice.Reduce([]dice.Face{dice.Triumph, dice.Despair, dice.Despair})
		assert.Equal(t, 0, result.SuccessFailNet)
		assert.Equal(t, 1, result.TriumphCount)
		assert.Equal(t, 2, result.DespairCount)
	})

	t.Run("pips are counted on both sides", func(t *testing.T) {
		result := dice.Reduce([]dice.Face{
			dice.SingleDarkPip, dice.DoubleLightPip, dice.DoubleDarkPip, dice.SingleLightPip,
		})
		assert.Equal(t, 3, result.LightPips)
		assert.Equal(t, 3, result.DarkPips)
		assert.Equal(t, 0, result.SuccessFailNet)
		assert.Equal(t, 0, result.AdvantageThreatNet)
	})

	t.Run("empty faces", func(t *testing.T) {
		result := dice.Reduce(nil)
		assert.True(t, result.IsZero())
		assert.Empty(t, result.Faces)
	})
}

func TestReduce_CopiesFaces(t *testing.T) {
	faces := []dice.Face{dice.Success, dice.Threat}
	result := dice.Reduce(faces)

	faces[0] = dice.Despair

	assert.Equal(t, []dice.Face{dice.Success, dice.Threat}, result.Faces)
	assert.Equal(t, 1, result.SuccessFailNet)
}

func TestAggregate(t *testing.T) {
	ability := dice.Reduce([]dice.Face{dice.DoubleSuccess, dice.Advantage})
	difficulty := dice.Reduce([]dice.Face{dice.Failure, dice.DoubleThreat})
	proficiency := dice.Reduce([]dice.Face{dice.Triumph})
	force := dice.Reduce([]dice.Face{dice.DoubleLightPip, dice.SingleDarkPip})

	t.Run("empty input", func(t *testing.T) {
		result := dice.Aggregate(nil)
		assert.True(t, result.IsZero())
		require.NotNil(t, result.Groups)
		assert.Empty(t, result.Groups)
	})

	t.Run("sums every field", func(t *testing.T) {
		result := dice.Aggregate([]dice.GroupResult{ability, difficulty, proficiency, force})
		assert.Equal(t, dice.Totals{
			SuccessFailNet:     1,
			AdvantageThreatNet: -1,
			TriumphCount:       1,
			DespairCount:       0,
			LightPips:          2,
			DarkPips:           1,
		}, result.Totals)
		assert.Equal(t, []dice.GroupResult{ability, difficulty, proficiency, force}, result.Groups)
	})

	t.Run("order independent totals", func(t *testing.T) {
		forward := dice.Aggregate([]dice.GroupResult{ability, difficulty, proficiency, force})
		backward := dice.Aggregate([]dice.GroupResult{force, proficiency, difficulty, ability})

		assert.Equal(t, forward.Totals, backward.Totals)
		assert.Equal(t, force, backward.Groups[0])
		assert.Equal(t, ability, forward.Groups[0])
	})

	t.Run("no triumph to success adjustment", func(t *testing.T) {
		result := dice.Aggregate([]dice.GroupResult{proficiency})
		assert.Equal(t, 0, result.SuccessFailNet)
		assert.Equal(t, 1, result.TriumphCount)
	})
}

func TestTotals_Summary(t *testing.T) {
	tests := []struct {
		name   string
		totals dice.Totals
		want   string
	}{
		{
			name:   "nothing left",
			totals: dice.Totals{},
			want:   "no net result",
		},
		{
			name:   "success with threat",
			totals: dice.Totals{SuccessFailNet: 2, AdvantageThreatNet: -1},
			want:   "2 success, 1 threat",
		},
		{
			name:   "failure with advantage and triumph",
			totals: dice.Totals{SuccessFailNet: -1, AdvantageThreatNet: 3, TriumphCount: 1},
			want:   "1 failure, 3 advantage, 1 triumph",
		},
		{
			name:   "force pips",
			totals: dice.Totals{LightPips: 2, DarkPips: 1},
			want:   "2 light, 1 dark",
		},
		{
			name:   "despair alone",
			totals: dice.Totals{DespairCount: 1},
			want:   "1 despair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.totals.Summary())
		})
	}
}
