package selector

import (
	"testing"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/stretchr/testify/assert"
)

func TestOptionsRebuildFromCollection(t *testing.T) {
	alts := []domain.Alternative{
		{ID: 1, Score: 87.3},
		{ID: 2, Score: 79.0},
	}

	opts := Options(alts)

	assert.Len(t, opts, 2)
	assert.Equal(t, 1, opts[0].ID)
	assert.Equal(t, "Alternative 1 (score 87.3)", opts[0].Label)
	assert.Equal(t, "Alternative 2 (score 79.0)", opts[1].Label)
}

func TestOptionsEmptyAfterReplacementWithNothing(t *testing.T) {
	opts := Options(nil)

	assert.Empty(t, opts)
}

func TestCompareVisible(t *testing.T) {
	assert.False(t, CompareVisible(nil))
	assert.False(t, CompareVisible([]domain.Alternative{{ID: 1}}))
	assert.True(t, CompareVisible([]domain.Alternative{{ID: 1}, {ID: 2}}))
}

func TestValidatePair(t *testing.T) {
	assert.NoError(t, ValidatePair(1, 2))

	err := ValidatePair(0, 2)
	assert.Error(t, err)
	assert.Equal(t, gateway.KindLocalValidation, gateway.Kind(err))

	err = ValidatePair(1, 0)
	assert.Error(t, err)

	err = ValidatePair(3, 3)
	assert.Error(t, err)
	assert.Equal(t, gateway.KindLocalValidation, gateway.Kind(err))
}
