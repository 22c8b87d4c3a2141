package workflow

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/selector"
)

// GenerateResult reports a completed generation.
type GenerateResult struct {
	Count   int
	Message string
}

// GenerateAlternatives asks the planning service for a fresh set of
// alternatives and swaps them into the store. On failure the prior
// collection is left untouched and the service's rejection message is
// surfaced verbatim to the caller.
func (o *Orchestrator) GenerateAlternatives(ctx context.Context) (*GenerateResult, error) {
	if err := o.begin(Generate); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(Generate, err) }()

	var res *gateway.AlternativesResult
	res, err = o.api.Alternatives(ctx)
	if err != nil {
		return nil, err
	}

	o.store.ReplaceAlternatives(res.Alternatives, res.Recommendations)
	o.refreshMLInfo(ctx)

	return &GenerateResult{
		Count:   res.Total,
		Message: fmt.Sprintf("Generated %d alternatives", res.Total),
	}, nil
}

// LoadResult reports a passive fetch of the current alternatives.
type LoadResult struct {
	Count int
	// Guidance is set instead of Count when no alternatives could be
	// produced, e.g. the system holds no resources or tasks yet.
	Guidance string
}

// Load fetches the current alternatives without treating a rejection as a
// failure: a planner with no registered resources or tasks simply has
// nothing to plan, so the collection (and with it every dependent selector)
// is cleared and a guidance message is returned. Transport and decode
// failures still fail the workflow and leave prior state intact.
func (o *Orchestrator) Load(ctx context.Context) (*LoadResult, error) {
	if err := o.begin(LoadAlternatives); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(LoadAlternatives, err) }()

	res, loadErr := o.api.Alternatives(ctx)
	if loadErr != nil {
		if gateway.Kind(loadErr) == gateway.KindRejected {
			o.store.ReplaceAlternatives(nil, nil)
			return &LoadResult{Guidance: gateway.Message(loadErr)}, nil
		}
		err = loadErr
		return nil, err
	}

	o.store.ReplaceAlternatives(res.Alternatives, res.Recommendations)
	o.refreshMLInfo(ctx)

	return &LoadResult{Count: res.Total}, nil
}

// TrainResult reports a completed training run.
type TrainResult struct {
	Trained bool
	Message string
}

// Train requests model training. On success it reports the accuracy as a
// percentage and reloads the alternatives so fresh recommendation
// annotations are picked up. Non-success training statuses (not enough
// selections recorded, no variety) are outcomes, not failures.
func (o *Orchestrator) Train(ctx context.Context) (*TrainResult, error) {
	if err := o.begin(TrainModel); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(TrainModel, err) }()

	var res *gateway.TrainResult
	res, err = o.api.TrainModel(ctx)
	if err != nil {
		return nil, err
	}

	if res.Status != "success" {
		msg := res.Message
		if msg == "" {
			msg = "Model training did not complete: " + res.Status
		}
		return &TrainResult{Trained: false, Message: msg}, nil
	}

	accuracy := 0.0
	if res.Accuracy != nil {
		accuracy = *res.Accuracy
	}
	result := &TrainResult{
		Trained: true,
		Message: fmt.Sprintf("Model trained, accuracy %.0f%%", accuracy*100),
	}

	// Pick up new recommendation annotations and the updated model state.
	if _, reloadErr := o.Load(ctx); reloadErr != nil {
		result.Message += " (reload of alternatives failed: " + gateway.Message(reloadErr) + ")"
	}

	return result, nil
}

// SelectResult reports a recorded selection.
type SelectResult struct {
	Message      string
	MLPrediction *float64
}

// Select records the user's chosen alternative on the service for later
// training. The recording happens server-side; no local state changes.
func (o *Orchestrator) Select(ctx context.Context, alternativeID int) (*SelectResult, error) {
	if err := o.begin(SelectChoice); err != nil {
		return nil, err
	}
	var err error
	defer func() { o.finish(SelectChoice, err) }()

	if _, ok := o.store.Alternative(alternativeID); !ok {
		err = fmt.Errorf("%w: unknown alternative %d", gateway.ErrLocalValidation, alternativeID)
		return nil, err
	}

	var res *gateway.SelectionResult
	res, err = o.api.SelectAlternative(ctx, alternativeID)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Selection of alternative %d recorded", alternativeID)
	if res.MLPrediction != nil {
		msg += fmt.Sprintf(" (model prediction %.0f%%)", *res.MLPrediction*100)
	}
	return &SelectResult{Message: msg, MLPrediction: res.MLPrediction}, nil
}

// StatsFor returns the distribution report for one alternative, or for the
// best one when alternativeID is nil. Reports are cached per generation;
// the cache key 0 holds the "best" report.
func (o *Orchestrator) StatsFor(ctx context.Context, alternativeID *int) (*domain.Stats, error) {
	key := 0
	if alternativeID != nil {
		key = *alternativeID
	}
	if cached, ok := o.store.CachedStats(key); ok {
		return cached, nil
	}

	stats, err := o.api.Stats(ctx, alternativeID)
	if err != nil {
		return nil, err
	}
	o.store.CacheStats(key, stats)
	return stats, nil
}

// Comparison holds the two alternatives of a comparison and their reports.
type Comparison struct {
	First       domain.Alternative
	Second      domain.Alternative
	FirstStats  *domain.Stats
	SecondStats *domain.Stats
}

// Compare validates a comparison pair locally and, only if valid, fetches
// the distribution report for each side. Equal or unset IDs never reach
// the service.
func (o *Orchestrator) Compare(ctx context.Context, firstID, secondID int) (*Comparison, error) {
	if err := selector.ValidatePair(firstID, secondID); err != nil {
		return nil, err
	}

	first, ok := o.store.Alternative(firstID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown alternative %d", gateway.ErrLocalValidation, firstID)
	}
	second, ok := o.store.Alternative(secondID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown alternative %d", gateway.ErrLocalValidation, secondID)
	}

	firstStats, err := o.StatsFor(ctx, &firstID)
	if err != nil {
		return nil, err
	}
	secondStats, err := o.StatsFor(ctx, &secondID)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		First:       first,
		Second:      second,
		FirstStats:  firstStats,
		SecondStats: secondStats,
	}, nil
}
