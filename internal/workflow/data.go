package workflow

import (
	"context"
	"fmt"
)

// SeedResult reports a completed example-data load.
type SeedResult struct {
	ResourcesAdded int
	TasksAdded     int
	Message        string
}

// LoadExampleData seeds the backend with example resources and tasks and
// refreshes both mirrors.
func (o *Orchestrator) LoadExampleData(ctx context.Context) (*SeedResult, error) {
	if err := o.begin(Seed); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(Seed, err) }()

	var res *SeedResult
	raw, seedErr := o.api.LoadExampleData(ctx)
	if seedErr != nil {
		err = seedErr
		return nil, err
	}
	res = &SeedResult{
		ResourcesAdded: raw.ResourcesAdded,
		TasksAdded:     raw.TasksAdded,
		Message: fmt.Sprintf("Loaded %d example resources and %d example tasks",
			raw.ResourcesAdded, raw.TasksAdded),
	}

	if refreshErr := o.RefreshResources(ctx); refreshErr != nil {
		res.Message += " (resource list refresh failed)"
	}
	if refreshErr := o.RefreshTasks(ctx); refreshErr != nil {
		res.Message += " (task list refresh failed)"
	}
	return res, nil
}

// ClearResult reports a completed bulk clear.
type ClearResult struct {
	ResourcesDeleted    int
	TasksDeleted        int
	AlternativesDeleted int
	Message             string
	Declined            bool
}

// Prompts for the two-step bulk clear confirmation. The second prompt is a
// distinct question about irreversibility, not a repeat of the first.
const (
	ClearPromptIntent       = "Delete ALL resources, tasks and alternatives?"
	ClearPromptIrreversible = "This cannot be undone. Really delete everything?"
)

// Clear purges every backend collection. The destructive call is issued
// only after two independent confirmations; declining either one issues no
// network call and leaves all state unchanged. On success all mirrors and
// derived views reset to their empty state in a single pass.
func (o *Orchestrator) Clear(ctx context.Context, confirm Confirmer) (*ClearResult, error) {
	if err := o.begin(BulkClear); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(BulkClear, err) }()

	if !confirm.Confirm(ClearPromptIntent) || !confirm.Confirm(ClearPromptIrreversible) {
		return &ClearResult{Declined: true, Message: "Clear cancelled"}, nil
	}

	raw, clearErr := o.api.ClearAllData(ctx)
	if clearErr != nil {
		// The user confirmed twice and the destructive call still failed;
		// state is intact but the failure must be surfaced prominently.
		err = clearErr
		return nil, err
	}

	o.store.Clear()

	return &ClearResult{
		ResourcesDeleted:    raw.ResourcesDeleted,
		TasksDeleted:        raw.TasksDeleted,
		AlternativesDeleted: raw.AlternativesDeleted,
		Message: fmt.Sprintf("Removed %d resources, %d tasks, %d alternatives",
			raw.ResourcesDeleted, raw.TasksDeleted, raw.AlternativesDeleted),
	}, nil
}

// ExportAlternatives downloads the current alternatives in the given
// format ("json" or "csv") as raw bytes ready to be written to a file.
func (o *Orchestrator) ExportAlternatives(ctx context.Context, format string) ([]byte, error) {
	if err := o.begin(Export); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(Export, err) }()

	var data []byte
	data, err = o.api.ExportAlternatives(ctx, format)
	if err != nil {
		return nil, err
	}
	return data, nil
}
