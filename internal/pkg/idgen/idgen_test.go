package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/genesys-dice/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("roll")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "roll_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "roll_"))
	require.NoError(t, err)

	assert.NotEqual(t, id, gen.Generate())

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("roll")
	assert.Equal(t, "roll_1", gen.Generate())
	assert.Equal(t, "roll_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
