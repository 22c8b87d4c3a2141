package workflow

import (
	"context"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
)

// RefreshResources re-fetches the resource collection into the store.
func (o *Orchestrator) RefreshResources(ctx context.Context) error {
	list, err := o.api.ListResources(ctx)
	if err != nil {
		return err
	}
	o.store.ReplaceResources(list)
	return nil
}

// RefreshTasks re-fetches the task collection into the store.
func (o *Orchestrator) RefreshTasks(ctx context.Context) error {
	list, err := o.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	o.store.ReplaceTasks(list)
	return nil
}

// AddResource validates and creates a resource, then re-fetches the
// collection so the mirror reflects the server's ordering and IDs.
func (o *Orchestrator) AddResource(ctx context.Context, in gateway.ResourceInput) (*domain.Resource, error) {
	if err := domain.ValidateResource(in.Name, in.Type, in.AvailableHours); err != nil {
		return nil, wrapValidation(err)
	}
	created, err := o.api.CreateResource(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := o.RefreshResources(ctx); err != nil {
		// The create succeeded; a failed refresh only staled the mirror.
		return created, nil
	}
	return created, nil
}

// UpdateResource applies a remote update and patches the single mirrored
// entry only after the service confirms it.
func (o *Orchestrator) UpdateResource(ctx context.Context, id int, in gateway.ResourceUpdate) (*domain.Resource, error) {
	updated, err := o.api.UpdateResource(ctx, id, in)
	if err != nil {
		return nil, err
	}
	o.store.PatchResource(*updated)
	return updated, nil
}

// DeleteResource removes a resource remotely and then re-fetches the
// collection. Optimistic removal is not permitted: the mirror drops the
// entry only after the service confirms the delete.
func (o *Orchestrator) DeleteResource(ctx context.Context, id int) error {
	if err := o.api.DeleteResource(ctx, id); err != nil {
		return err
	}
	return o.RefreshResources(ctx)
}

// AddTask validates and creates a task, then re-fetches the collection.
func (o *Orchestrator) AddTask(ctx context.Context, in gateway.TaskInput) (*domain.Task, error) {
	if err := domain.ValidateTask(in.Title, in.RequiredHours, in.Priority); err != nil {
		return nil, wrapValidation(err)
	}
	created, err := o.api.CreateTask(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := o.RefreshTasks(ctx); err != nil {
		return created, nil
	}
	return created, nil
}

// UpdateTask applies a remote update and patches the mirrored entry after
// confirmation.
func (o *Orchestrator) UpdateTask(ctx context.Context, id int, in gateway.TaskUpdate) (*domain.Task, error) {
	updated, err := o.api.UpdateTask(ctx, id, in)
	if err != nil {
		return nil, err
	}
	o.store.PatchTask(*updated)
	return updated, nil
}

// DeleteTask removes a task remotely and then re-fetches the collection.
func (o *Orchestrator) DeleteTask(ctx context.Context, id int) error {
	if err := o.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	return o.RefreshTasks(ctx)
}

func wrapValidation(err error) error {
	return gateway.ErrLocalValidationf("%v", err)
}
