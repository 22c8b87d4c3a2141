// Package store holds the client's mirror of the backend collections.
//
// The store is passive: no network calls originate here. Collections are
// replaced wholesale, never merged, so a server-side delete can never leave
// a stale entry behind. Mutations publish events to subscribers so derived
// components (selectors, charts, views) recompute without depending on
// call-site ordering.
//
// Workflows complete on their own goroutines (the TUI runs each command off
// the update loop, and the dashboard refresh fans out), so every access goes
// through an RWMutex. Events are published outside the lock; subscribers
// read back through the store's own accessors.
package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexmorozov/lachesis/internal/domain"
)

// EventKind identifies which collection changed.
type EventKind int

const (
	EventResourcesReplaced EventKind = iota
	EventTasksReplaced
	EventAlternativesReplaced
	EventMLInfoUpdated
	EventResourcePatched
	EventTaskPatched
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventResourcesReplaced:
		return "resources_replaced"
	case EventTasksReplaced:
		return "tasks_replaced"
	case EventAlternativesReplaced:
		return "alternatives_replaced"
	case EventMLInfoUpdated:
		return "ml_info_updated"
	case EventResourcePatched:
		return "resource_patched"
	case EventTaskPatched:
		return "task_patched"
	case EventCleared:
		return "cleared"
	}
	return "unknown"
}

// Event describes one store mutation.
type Event struct {
	Kind EventKind
	// ID is set for patch events.
	ID int
}

// Store is the single source of truth for all views. Collections are
// replaced, not mutated in place, so readers holding a previously returned
// slice always see a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	resources       []domain.Resource
	tasks           []domain.Task
	alternatives    []domain.Alternative
	recommendations map[int]domain.Recommendation
	mlInfo          *domain.MLInfo

	// statsCache holds per-alternative distribution reports. Reports are
	// only valid for the generation they were computed against, so the
	// cache is purged whenever the alternatives collection is replaced.
	statsCache *lru.Cache[int, *domain.Stats]

	subscribers []func(Event)
}

// New creates an empty store. statsCacheSize bounds the per-alternative
// stats cache; sizes below 1 fall back to a small default.
func New(statsCacheSize int) *Store {
	if statsCacheSize < 1 {
		statsCacheSize = 16
	}
	cache, _ := lru.New[int, *domain.Stats](statsCacheSize)
	return &Store{
		recommendations: make(map[int]domain.Recommendation),
		statsCache:      cache,
	}
}

// Subscribe registers fn to be called after every store mutation.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// publish notifies a snapshot of the subscribers taken after the mutation
// released the write lock, so a subscriber may read the store freely.
func (s *Store) publish(e Event) {
	s.mu.RLock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(e)
	}
}

// ── reads ────────────────────────────────────────────────────────────────────

// Resources returns the current resource mirror. Callers must not mutate
// the returned slice; filtering always derives a fresh subsequence.
func (s *Store) Resources() []domain.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resources
}

// Tasks returns the current task mirror.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks
}

// Alternatives returns the current alternatives mirror.
func (s *Store) Alternatives() []domain.Alternative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alternatives
}

// Recommendations returns the ML annotations joined against the current
// alternatives, keyed by alternative ID.
func (s *Store) Recommendations() map[int]domain.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recommendations
}

// MLInfo returns the last-fetched model state, or nil if never fetched.
func (s *Store) MLInfo() *domain.MLInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mlInfo
}

// Resource looks up a resource by ID in the current mirror.
func (s *Store) Resource(id int) (domain.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.resources {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Resource{}, false
}

// Task looks up a task by ID in the current mirror.
func (s *Store) Task(id int) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Alternative looks up an alternative by ID in the current mirror.
func (s *Store) Alternative(id int) (domain.Alternative, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.alternatives {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Alternative{}, false
}

// ── replacements ─────────────────────────────────────────────────────────────

// ReplaceResources atomically swaps the whole resource collection.
func (s *Store) ReplaceResources(list []domain.Resource) {
	s.mu.Lock()
	s.resources = list
	s.mu.Unlock()
	s.publish(Event{Kind: EventResourcesReplaced})
}

// ReplaceTasks atomically swaps the whole task collection.
func (s *Store) ReplaceTasks(list []domain.Task) {
	s.mu.Lock()
	s.tasks = list
	s.mu.Unlock()
	s.publish(Event{Kind: EventTasksReplaced})
}

// ReplaceAlternatives atomically swaps the alternatives collection and its
// recommendation annotations. Stale per-alternative stats are purged: a
// report computed for a previous generation must never be served again.
func (s *Store) ReplaceAlternatives(list []domain.Alternative, recs []domain.Recommendation) {
	s.mu.Lock()
	s.alternatives = list
	s.recommendations = domain.JoinRecommendations(list, recs)
	s.statsCache.Purge()
	s.mu.Unlock()
	s.publish(Event{Kind: EventAlternativesReplaced})
}

// SetMLInfo stores the last-fetched model state.
func (s *Store) SetMLInfo(info *domain.MLInfo) {
	s.mu.Lock()
	s.mlInfo = info
	s.mu.Unlock()
	s.publish(Event{Kind: EventMLInfoUpdated})
}

// Clear resets every collection to its empty state in one pass.
func (s *Store) Clear() {
	s.mu.Lock()
	s.resources = nil
	s.tasks = nil
	s.alternatives = nil
	s.recommendations = make(map[int]domain.Recommendation)
	s.mlInfo = nil
	s.statsCache.Purge()
	s.mu.Unlock()
	s.publish(Event{Kind: EventCleared})
}

// ── patches ──────────────────────────────────────────────────────────────────

// PatchResource replaces the single matching entry after a successful
// remote update. An absent ID is a no-op: it signals a stale mirror, not
// an error, and the next full fetch repairs it.
func (s *Store) PatchResource(updated domain.Resource) {
	s.mu.Lock()
	patched := false
	for i, r := range s.resources {
		if r.ID == updated.ID {
			next := make([]domain.Resource, len(s.resources))
			copy(next, s.resources)
			next[i] = updated
			s.resources = next
			patched = true
			break
		}
	}
	s.mu.Unlock()
	if patched {
		s.publish(Event{Kind: EventResourcePatched, ID: updated.ID})
	}
}

// PatchTask replaces the single matching entry after a successful remote
// update. An absent ID is a no-op.
func (s *Store) PatchTask(updated domain.Task) {
	s.mu.Lock()
	patched := false
	for i, t := range s.tasks {
		if t.ID == updated.ID {
			next := make([]domain.Task, len(s.tasks))
			copy(next, s.tasks)
			next[i] = updated
			s.tasks = next
			patched = true
			break
		}
	}
	s.mu.Unlock()
	if patched {
		s.publish(Event{Kind: EventTaskPatched, ID: updated.ID})
	}
}

// ── stats cache ──────────────────────────────────────────────────────────────

// CachedStats returns the cached report for an alternative, if present.
// The zero key caches the "best alternative" report.
func (s *Store) CachedStats(alternativeID int) (*domain.Stats, bool) {
	return s.statsCache.Get(alternativeID)
}

// CacheStats records a fetched report for an alternative.
func (s *Store) CacheStats(alternativeID int, stats *domain.Stats) {
	s.statsCache.Add(alternativeID, stats)
}
