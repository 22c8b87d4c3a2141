// Package workflow sequences the multi-step user actions that span the
// gateway, the store, and the derived views.
//
// Each workflow moves through idle → in_flight → settled/failed. A
// re-trigger while in_flight is refused with a local validation error
// instead of racing a duplicate request: one click means one exchange.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/store"
)

// Name identifies a workflow for state tracking.
type Name string

const (
	Generate         Name = "generate"
	LoadAlternatives Name = "load_alternatives"
	TrainModel       Name = "train_model"
	SelectChoice     Name = "select_alternative"
	DashboardRefresh Name = "dashboard_refresh"
	BulkClear        Name = "bulk_clear"
	Seed             Name = "seed"
	Export           Name = "export"
)

// Status is the lifecycle state of one workflow.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
	StatusSettled
	StatusFailed
)

// ErrBusy is returned when a workflow is re-triggered while in flight.
var ErrBusy = fmt.Errorf("%w: action already in progress", gateway.ErrLocalValidation)

// Confirmer obtains explicit user confirmation for destructive actions.
// Implementations prompt in whatever surface is active (huh form, terminal).
type Confirmer interface {
	Confirm(prompt string) bool
}

// Orchestrator coordinates workflows against the gateway and the store.
type Orchestrator struct {
	api   gateway.API
	store *store.Store

	mu     sync.Mutex
	states map[Name]Status
}

// New creates an orchestrator over the given gateway and store.
func New(api gateway.API, st *store.Store) *Orchestrator {
	return &Orchestrator{
		api:    api,
		store:  st,
		states: make(map[Name]Status),
	}
}

// Store exposes the collection store for read access by views.
func (o *Orchestrator) Store() *store.Store { return o.store }

// Status returns the current lifecycle state of a workflow.
func (o *Orchestrator) Status(name Name) Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.states[name]
}

// begin transitions a workflow to in_flight, refusing duplicates.
func (o *Orchestrator) begin(name Name) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.states[name] == StatusInFlight {
		return ErrBusy
	}
	o.states[name] = StatusInFlight
	return nil
}

// finish settles a workflow according to err.
func (o *Orchestrator) finish(name Name, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.states[name] = StatusFailed
		return
	}
	o.states[name] = StatusSettled
}

// MLInfo fetches the model state and mirrors it into the store.
func (o *Orchestrator) MLInfo(ctx context.Context) (*domain.MLInfo, error) {
	info, err := o.api.MLInfo(ctx)
	if err != nil {
		return nil, err
	}
	o.store.SetMLInfo(info)
	return info, nil
}

// refreshMLInfo re-fetches the model state into the store. Failures are
// tolerated: the prior MLInfo stays in place and the caller's workflow
// outcome is unaffected.
func (o *Orchestrator) refreshMLInfo(ctx context.Context) {
	info, err := o.api.MLInfo(ctx)
	if err != nil {
		return
	}
	o.store.SetMLInfo(info)
}
