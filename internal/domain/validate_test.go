package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResource(t *testing.T) {
	assert.NoError(t, ValidateResource("Alice", "developer", 40))

	assert.Error(t, ValidateResource("", "developer", 40))
	assert.Error(t, ValidateResource("Alice", "", 40))
	assert.Error(t, ValidateResource("Alice", "developer", 0))
	assert.Error(t, ValidateResource("Alice", "developer", -3))
}

func TestValidateTask(t *testing.T) {
	assert.NoError(t, ValidateTask("Implement API", 16, 1))
	assert.NoError(t, ValidateTask("Implement API", 0.5, 5))

	assert.Error(t, ValidateTask("", 16, 1))
	assert.Error(t, ValidateTask("Implement API", 0, 1))
	assert.Error(t, ValidateTask("Implement API", 16, 0))
	assert.Error(t, ValidateTask("Implement API", 16, 6))
}

func TestJoinRecommendationsDropsUnknownIDs(t *testing.T) {
	alts := []Alternative{{ID: 1}, {ID: 2}}
	recs := []Recommendation{
		{AlternativeID: 1, IsRecommended: true, RecommendationScore: 0.9},
		{AlternativeID: 7, IsRecommended: true, RecommendationScore: 0.5},
	}

	joined := JoinRecommendations(alts, recs)

	assert.Len(t, joined, 1)
	assert.True(t, joined[1].IsRecommended)
	_, ok := joined[7]
	assert.False(t, ok)
}

func TestAlternativeLabels(t *testing.T) {
	a := Alternative{ID: 3, Score: 87.3}

	assert.Equal(t, "87.3", a.ScoreLabel())
	assert.Equal(t, "Alternative 3 (score 87.3)", a.Label())
}

func TestAlternativeTotalHours(t *testing.T) {
	a := Alternative{Allocations: []Allocation{
		{Hours: 8}, {Hours: 4.5},
	}}

	assert.InDelta(t, 12.5, a.TotalHours(), 0.0001)
}

func TestStatsEmpty(t *testing.T) {
	assert.True(t, Stats{}.Empty())
	assert.True(t, Stats{TotalResources: 2, TotalTasks: 3}.Empty())
	assert.False(t, Stats{ResourceStats: []ResourceStats{{ResourceID: 1}}}.Empty())
	assert.False(t, Stats{TaskStats: []TaskStats{{TaskID: 1}}}.Empty())
}
