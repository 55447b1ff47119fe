// Package roll implements the roll orchestrator: it parses an expression,
// rolls every set and stamps the result
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/genesys-dice/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/genesys-dice/internal/dice"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/notation"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/clock"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/idgen"
)

// Service defines the interface for roll operations
type Service interface {
	// Roll parses and rolls an expression
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Faces lists the face tables of one or every variant
	Faces(ctx context.Context, input *FacesInput) (*FacesOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	// Source is used for unseeded rolls. It must be safe for concurrent
	// use if the Service is.
	Source      dice.Source
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	source dice.Source
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		source: cfg.Source,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// Roll parses the expression and rolls every set with one source. A seeded
// request gets its own source so concurrent seeded rolls never share state.
// Parse errors are returned unchanged.
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Expression == "" {
		return nil, errors.InvalidArgument("roll expression is required")
	}

	sets, err := notation.Parse(input.Expression)
	if err != nil {
		return nil, err
	}

	src := o.source
	if input.Seed != nil {
		src = dice.NewSeededSource(*input.Seed)
	}

	results, err := dice.RollAll(sets, src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %q", input.Expression)
	}

	output := &RollOutput{
		RollID:     o.idGen.Generate(),
		Expression: notation.Format(sets),
		Seed:       input.Seed,
		Sets:       sets,
		Results:    results,
		RolledAt:   o.clock.Now(),
	}

	diceCount := 0
	for _, set := range sets {
		diceCount += set.DiceCount()
	}

	slog.InfoContext(ctx, "Dice rolled",
		"roll_id", output.RollID,
		"expression", output.Expression,
		"sets", len(sets),
		"dice", diceCount,
		"seeded", input.Seed != nil,
	)

	for i, result := range results {
		slog.DebugContext(ctx, "Set result",
			"roll_id", output.RollID,
			"set", i+1,
			"summary", result.Summary(),
		)
	}

	return output, nil
}

// Faces returns face tables for display
func (o *orchestrator) Faces(_ context.Context, input *FacesInput) (*FacesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	variants := dice.Variants()
	if input.Variant != "" {
		v, err := dice.ParseVariant(input.Variant)
		if err != nil {
			return nil, err
		}
		variants = []dice.DieVariant{v}
	}

	tables := make([]FaceTable, 0, len(variants))
	for _, v := range variants {
		tables = append(tables, FaceTable{
			Variant: v,
			Colour:  v.Colour(),
			Faces:   dice.Faces(v),
		})
	}

	return &FacesOutput{Tables: tables}, nil
}
