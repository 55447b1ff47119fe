package dice

import (
	"fmt"
	"strings"
)

// tally counts the raw symbols on a face before any netting
type tally struct {
	success, failure  int
	advantage, threat int
	triumph, despair  int
	lightPip, darkPip int
}

func (t tally) add(o tally) tally {
	return tally{
		success:   t.success + o.success,
		failure:   t.failure + o.failure,
		advantage: t.advantage + o.advantage,
		threat:    t.threat + o.threat,
		triumph:   t.triumph + o.triumph,
		despair:   t.despair + o.despair,
		lightPip:  t.lightPip + o.lightPip,
		darkPip:   t.darkPip + o.darkPip,
	}
}

// contributions holds what each face adds to the running counters.
// Triumph and despair do not also count as success or failure.
var contributions = [...]tally{
	Blank:               {},
	Success:             {success: 1},
	Failure:             {failure: 1},
	Advantage:           {advantage: 1},
	Threat:              {threat: 1},
	Triumph:             {triumph: 1},
	Despair:             {despair: 1},
	SuccessAndAdvantage: {success: 1, advantage: 1},
	FailureAndThreat:    {failure: 1, threat: 1},
	DoubleSuccess:       {success: 2},
	DoubleFailure:       {failure: 2},
	DoubleAdvantage:     {advantage: 2},
	DoubleThreat:        {threat: 2},
	SingleLightPip:      {lightPip: 1},
	SingleDarkPip:       {darkPip: 1},
	DoubleLightPip:      {lightPip: 2},
	DoubleDarkPip:       {darkPip: 2},
}

// Totals is the netted outcome of a group or a set
type Totals struct {
	SuccessFailNet     int `json:"success_fail_net"`
	AdvantageThreatNet int `json:"advantage_threat_net"`
	TriumphCount       int `json:"triumph_count"`
	DespairCount       int `json:"despair_count"`
	LightPips          int `json:"light_pips"`
	DarkPips           int `json:"dark_pips"`
}

func (t tally) totals() Totals {
	return Totals{
		SuccessFailNet:     t.success - t.failure,
		AdvantageThreatNet: t.advantage - t.threat,
		TriumphCount:       t.triumph,
		DespairCount:       t.despair,
		LightPips:          t.lightPip,
		DarkPips:           t.darkPip,
	}
}

// Add returns the field-wise sum of t and o
func (t Totals) Add(o Totals) Totals {
	return Totals{
		SuccessFailNet:     t.SuccessFailNet + o.SuccessFailNet,
		AdvantageThreatNet: t.AdvantageThreatNet + o.AdvantageThreatNet,
		TriumphCount:       t.TriumphCount + o.TriumphCount,
		DespairCount:       t.DespairCount + o.DespairCount,
		LightPips:          t.LightPips + o.LightPips,
		DarkPips:           t.DarkPips + o.DarkPips,
	}
}

// IsZero reports whether every field is zero
func (t Totals) IsZero() bool {
	return t == Totals{}
}

// Summary renders the totals as a short line such as
// "2 success, 1 threat, 1 triumph".
func (t Totals) Summary() string {
	var parts []string

	switch {
	case t.SuccessFailNet > 0:
		parts = append(parts, fmt.Sprintf("%d success", t.SuccessFailNet))
	case t.SuccessFailNet < 0:
		parts = append(parts, fmt.Sprintf("%d failure", -t.SuccessFailNet))
	}
	switch {
	case t.AdvantageThreatNet > 0:
		parts = append(parts, fmt.Sprintf("%d advantage", t.AdvantageThreatNet))
	case t.AdvantageThreatNet < 0:
		parts = append(parts, fmt.Sprintf("%d threat", -t.AdvantageThreatNet))
	}
	if t.TriumphCount > 0 {
		parts = append(parts, fmt.Sprintf("%d triumph", t.TriumphCount))
	}
	if t.DespairCount > 0 {
		parts = append(parts, fmt.Sprintf("%d despair", t.DespairCount))
	}
	if t.LightPips > 0 {
		parts = append(parts, fmt.Sprintf("%d light", t.LightPips))
	}
	if t.DarkPips > 0 {
		parts = append(parts, fmt.Sprintf("%d dark", t.DarkPips))
	}

	if len(parts) == 0 {
		return "no net result"
	}
	return strings.Join(parts, ", ")
}

// GroupResult is the outcome of rolling one die group
type GroupResult struct {
	// Variant is unspecified when the result came from Reduce directly
	Variant DieVariant `json:"variant"`
	// Faces in roll order
	Faces []Face `json:"faces"`
	Totals
}

// Reduce folds faces into a GroupResult. The faces are copied, so the
// caller's slice may be reused.
func Reduce(faces []Face) GroupResult {
	return newGroupResult(VariantUnspecified, faces)
}

func newGroupResult(variant DieVariant, faces []Face) GroupResult {
	var sum tally
	for _, f := range faces {
		sum = sum.add(contributions[f])
	}

	kept := make([]Face, len(faces))
	copy(kept, faces)

	return GroupResult{
		Variant: variant,
		Faces:   kept,
		Totals:  sum.totals(),
	}
}

// SetResult is the combined outcome of every group in one set
type SetResult struct {
	// Groups in the order they were rolled
	Groups []GroupResult `json:"groups"`
	Totals
}

// Aggregate sums group results into a SetResult. No game rule is applied on
// top of the sums. An empty input gives a zero result with no groups.
func Aggregate(groups []GroupResult) SetResult {
	kept := make([]GroupResult, len(groups))
	copy(kept, groups)

	var total Totals
	for _, g := range groups {
		total = total.Add(g.Totals)
	}

	return SetResult{
		Groups: kept,
		Totals: total,
	}
}
