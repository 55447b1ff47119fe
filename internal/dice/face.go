package dice

// Face is the symbol on one side of a narrative die
type Face int

// Faces. Blank is the zero value.
const (
	Blank Face = iota
	Success
	Failure
	Advantage
	Threat
	Triumph
	Despair
	SuccessAndAdvantage
	FailureAndThreat
	DoubleSuccess
	DoubleFailure
	DoubleAdvantage
	DoubleThreat
	SingleLightPip
	SingleDarkPip
	DoubleLightPip
	DoubleDarkPip
)

var faceNames = [...]string{
	Blank:               "blank",
	Success:             "success",
	Failure:             "failure",
	Advantage:           "advantage",
	Threat:              "threat",
	Triumph:             "triumph",
	Despair:             "despair",
	SuccessAndAdvantage: "success_advantage",
	FailureAndThreat:    "failure_threat",
	DoubleSuccess:       "double_success",
	DoubleFailure:       "double_failure",
	DoubleAdvantage:     "double_advantage",
	DoubleThreat:        "double_threat",
	SingleLightPip:      "light_pip",
	SingleDarkPip:       "dark_pip",
	DoubleLightPip:      "double_light_pip",
	DoubleDarkPip:       "double_dark_pip",
}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "unknown"
	}
	return faceNames[f]
}

// MarshalText renders the face by name so JSON output stays readable
func (f Face) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
