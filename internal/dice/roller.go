package dice

import (
	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

// Roll draws count faces for dice of one variant, in roll order.
//
// Every draw takes one index in [0, variant.Sides()) from src, so the result
// is fully determined by the source. A count of zero returns an empty slice.
// If the source fails, no faces are returned.
func Roll(variant DieVariant, count int, src Source) ([]Face, error) {
	if !variant.Valid() {
		return nil, errors.InvalidArgumentf("invalid die variant: %d", int(variant))
	}
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	if src == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	sides := variant.Sides()
	faces := make([]Face, 0, count)
	for i := 0; i < count; i++ {
		index, err := src.Intn(sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s die %d of %d", variant, i+1, count)
		}
		if index < 0 || index >= sides {
			return nil, errors.Internalf("source returned index %d for a %d-sided %s die", index, sides, variant).
				WithMeta("variant", variant.String()).
				WithMeta("index", index)
		}
		faces = append(faces, FaceFor(variant, index))
	}

	return faces, nil
}
