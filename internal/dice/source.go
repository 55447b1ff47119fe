package dice

//go:generate mockgen -destination=mock/mock_source.go -package=dicemock github.com/KirkDiggler/genesys-dice/internal/dice Source

import (
	"math/rand/v2"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// Source supplies uniformly distributed face indexes
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	// n must be positive.
	Intn(n int) (int, error)
}

// cryptoSource draws from an rpg-toolkit roller, which rolls 1-based dN
type cryptoSource struct {
	roller toolkitdice.Roller
}

// NewCryptoSource returns a Source backed by the given rpg-toolkit roller.
// A nil roller selects the toolkit's crypto/rand default.
func NewCryptoSource(roller toolkitdice.Roller) Source {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &cryptoSource{roller: roller}
}

func (s *cryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("source range must be positive, got %d", n)
	}

	v, err := s.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	if v < 1 || v > n {
		return 0, errors.Internalf("roller returned %d for d%d", v, n)
	}

	return v - 1, nil
}

// SeededSource is a deterministic Source: the same seed always yields the
// same sequence of draws. It is not safe for concurrent use.
type SeededSource struct {
	seed int64
	rng  *rand.Rand
}

// NewSeededSource creates a deterministic source from seed
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed))), // nolint:gosec // replayable rolls, not secrets
	}
}

// Seed returns the seed the source was created with
func (s *SeededSource) Seed() int64 {
	return s.seed
}

// Intn implements Source
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("source range must be positive, got %d", n)
	}
	return s.rng.IntN(n), nil
}
