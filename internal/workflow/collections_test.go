package workflow

import (
	"context"
	"testing"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResourceRejectsInvalidInputLocally(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)

	_, err := o.AddResource(context.Background(), gateway.ResourceInput{
		Name: "", Type: "developer", AvailableHours: 40,
	})

	require.Error(t, err)
	assert.Equal(t, gateway.KindLocalValidation, gateway.Kind(err))
	assert.Zero(t, api.callCount("create_resource"))
}

func TestAddResourceRefetchesCollection(t *testing.T) {
	api := &fakeAPI{
		createResourceFn: func(in gateway.ResourceInput) (*domain.Resource, error) {
			return &domain.Resource{ID: 2, Name: in.Name, Type: in.Type, AvailableHours: in.AvailableHours}, nil
		},
		listResourcesFn: func() ([]domain.Resource, error) {
			return []domain.Resource{
				{ID: 1, Name: "Alice"},
				{ID: 2, Name: "Bob"},
			}, nil
		},
	}
	o := newTestOrchestrator(api)

	created, err := o.AddResource(context.Background(), gateway.ResourceInput{
		Name: "Bob", Type: "designer", AvailableHours: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	// The mirror reflects the server's list, not a local append.
	assert.Len(t, o.Store().Resources(), 2)
}

func TestAddResourceToleratesFailedRefresh(t *testing.T) {
	api := &fakeAPI{
		createResourceFn: func(in gateway.ResourceInput) (*domain.Resource, error) {
			return &domain.Resource{ID: 1, Name: in.Name}, nil
		},
		listResourcesFn: func() ([]domain.Resource, error) {
			return nil, gateway.ErrUnreachable
		},
	}
	o := newTestOrchestrator(api)

	created, err := o.AddResource(context.Background(), gateway.ResourceInput{
		Name: "Alice", Type: "developer", AvailableHours: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Name)
}

func TestUpdateResourcePatchesAfterConfirmation(t *testing.T) {
	name := "Alice M"
	api := &fakeAPI{
		updateResourceFn: func(id int, in gateway.ResourceUpdate) (*domain.Resource, error) {
			return &domain.Resource{ID: id, Name: *in.Name, Type: "developer", AvailableHours: 40}, nil
		},
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceResources([]domain.Resource{{ID: 1, Name: "Alice", Type: "developer", AvailableHours: 40}})

	updated, err := o.UpdateResource(context.Background(), 1, gateway.ResourceUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Alice M", updated.Name)
	got, ok := o.Store().Resource(1)
	require.True(t, ok)
	assert.Equal(t, "Alice M", got.Name)
}

func TestUpdateResourceFailureLeavesMirrorUntouched(t *testing.T) {
	name := "Alice M"
	api := &fakeAPI{
		updateResourceFn: func(int, gateway.ResourceUpdate) (*domain.Resource, error) {
			return nil, &gateway.RejectedError{Status: 404, Message: "resource not found"}
		},
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceResources([]domain.Resource{{ID: 1, Name: "Alice"}})

	_, err := o.UpdateResource(context.Background(), 1, gateway.ResourceUpdate{Name: &name})

	require.Error(t, err)
	got, _ := o.Store().Resource(1)
	assert.Equal(t, "Alice", got.Name)
}

func TestDeleteResourceRefetchesAfterConfirmation(t *testing.T) {
	api := &fakeAPI{
		listResourcesFn: func() ([]domain.Resource, error) {
			return []domain.Resource{{ID: 2, Name: "Bob"}}, nil
		},
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceResources([]domain.Resource{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}})

	err := o.DeleteResource(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, o.Store().Resources(), 1)
	_, ok := o.Store().Resource(1)
	assert.False(t, ok)
}

func TestDeleteResourceFailureSkipsRefetch(t *testing.T) {
	api := &fakeAPI{
		deleteResourceFn: func(int) error { return gateway.ErrUnreachable },
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceResources([]domain.Resource{{ID: 1, Name: "Alice"}})

	err := o.DeleteResource(context.Background(), 1)

	require.Error(t, err)
	assert.Zero(t, api.callCount("list_resources"))
	assert.Len(t, o.Store().Resources(), 1)
}

func TestAddTaskRejectsInvalidPriorityLocally(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)

	_, err := o.AddTask(context.Background(), gateway.TaskInput{
		Title: "Implement API", RequiredHours: 16, Priority: 9,
	})

	require.Error(t, err)
	assert.Equal(t, gateway.KindLocalValidation, gateway.Kind(err))
	assert.Zero(t, api.callCount("create_task"))
}

func TestUpdateTaskPatchesSingleEntry(t *testing.T) {
	priority := 1
	api := &fakeAPI{
		updateTaskFn: func(id int, in gateway.TaskUpdate) (*domain.Task, error) {
			return &domain.Task{ID: id, Title: "Write docs", Priority: *in.Priority}, nil
		},
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceTasks([]domain.Task{
		{ID: 1, Title: "Implement API", Priority: 2},
		{ID: 2, Title: "Write docs", Priority: 3},
	})

	_, err := o.UpdateTask(context.Background(), 2, gateway.TaskUpdate{Priority: &priority})

	require.NoError(t, err)
	got, _ := o.Store().Task(2)
	assert.Equal(t, 1, got.Priority)
	other, _ := o.Store().Task(1)
	assert.Equal(t, 2, other.Priority)
}

func TestDeleteTaskRefetchesAfterConfirmation(t *testing.T) {
	api := &fakeAPI{
		listTasksFn: func() ([]domain.Task, error) { return nil, nil },
	}
	o := newTestOrchestrator(api)
	o.Store().ReplaceTasks([]domain.Task{{ID: 1, Title: "Implement API"}})

	err := o.DeleteTask(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, o.Store().Tasks())
}
