package roll

import (
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
)

// RollInput defines the request for rolling an expression
type RollInput struct {
	Expression string
	// Seed replays a roll when set; nil uses the configured source
	Seed *int64
}

// RollOutput defines the response for rolling an expression
type RollOutput struct {
	RollID string `json:"roll_id"`
	// Expression in canonical notation
	Expression string           `json:"expression"`
	Seed       *int64           `json:"seed,omitempty"`
	Sets       []dice.Set       `json:"sets"`
	Results    []dice.SetResult `json:"results"`
	RolledAt   time.Time        `json:"rolled_at"`
}

// FacesInput defines the request for listing face tables
type FacesInput struct {
	// Variant name or colour; empty lists every variant
	Variant string
}

// FacesOutput defines the response for listing face tables
type FacesOutput struct {
	Tables []FaceTable `json:"tables"`
}

// FaceTable is the faces of one die variant in index order
type FaceTable struct {
	Variant dice.DieVariant `json:"variant"`
	Colour  string          `json:"colour"`
	Faces   []dice.Face     `json:"faces"`
}
