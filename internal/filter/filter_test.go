package filter

import (
	"testing"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResources() []domain.Resource {
	return []domain.Resource{
		{ID: 1, Name: "Alice", Type: "developer", AvailableHours: 40},
		{ID: 2, Name: "Bob", Type: "designer", AvailableHours: 30},
		{ID: 3, Name: "CNC-1", Type: "machine", AvailableHours: 160},
		{ID: 4, Name: "Carol", Type: "developer", AvailableHours: 20},
	}
}

func TestResourcesEmptyCriteriaPreservesOrder(t *testing.T) {
	list := sampleResources()

	got := Resources(list, ResourceCriteria{})

	assert.Equal(t, list, got)
}

func TestResourcesSearchMatchesNameOrType(t *testing.T) {
	list := sampleResources()

	byName := Resources(list, ResourceCriteria{Search: "cnc"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "CNC-1", byName[0].Name)

	byType := Resources(list, ResourceCriteria{Search: "DEVELOPER"})
	assert.Len(t, byType, 2)
	assert.Equal(t, "Alice", byType[0].Name)
	assert.Equal(t, "Carol", byType[1].Name)
}

func TestResourcesCriteriaCombineAsAnd(t *testing.T) {
	list := sampleResources()

	got := Resources(list, ResourceCriteria{Search: "carol", Type: "developer"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].Name)

	// Search matches Bob but the type doesn't.
	got = Resources(list, ResourceCriteria{Search: "bob", Type: "developer"})
	assert.Empty(t, got)
}

func TestResourcesIsIdempotent(t *testing.T) {
	list := sampleResources()
	c := ResourceCriteria{Type: "developer"}

	once := Resources(list, c)
	twice := Resources(once, c)

	assert.Equal(t, once, twice)
}

func TestResourcesDoesNotMutateSource(t *testing.T) {
	list := sampleResources()

	_ = Resources(list, ResourceCriteria{Search: "alice"})

	assert.Equal(t, sampleResources(), list)
}

func TestClearingCriteriaRecoversFullSet(t *testing.T) {
	list := sampleResources()

	narrowed := Resources(list, ResourceCriteria{Search: "zzz"})
	assert.Empty(t, narrowed)

	recovered := Resources(list, ResourceCriteria{})
	assert.Equal(t, list, recovered)
}

func TestTasksFilter(t *testing.T) {
	list := []domain.Task{
		{ID: 1, Title: "Implement API", Priority: 1},
		{ID: 2, Title: "Design landing page", Priority: 3},
		{ID: 3, Title: "API documentation", Priority: 3},
	}

	bySearch := Tasks(list, TaskCriteria{Search: "api"})
	assert.Len(t, bySearch, 2)

	byPriority := Tasks(list, TaskCriteria{Priority: 3})
	assert.Len(t, byPriority, 2)

	both := Tasks(list, TaskCriteria{Search: "api", Priority: 3})
	assert.Len(t, both, 1)
	assert.Equal(t, "API documentation", both[0].Title)

	all := Tasks(list, TaskCriteria{})
	assert.Equal(t, list, all)
}

func TestResourceTypesDistinctFirstSeen(t *testing.T) {
	types := ResourceTypes(sampleResources())

	assert.Equal(t, []string{"developer", "designer", "machine"}, types)
}

func TestResourceTypesEmpty(t *testing.T) {
	assert.Empty(t, ResourceTypes(nil))
}
