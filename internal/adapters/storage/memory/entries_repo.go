package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"maternity-journal/internal/domain/schedule"
)

type entryRepo struct {
	mu   sync.RWMutex
	byID map[string]schedule.Entry
}

func NewEntryRepo() schedule.Repository {
	return &entryRepo{
		byID: make(map[string]schedule.Entry),
	}
}

// CreateMany valida todo antes de escribir: o entran todas o ninguna.
func (r *entryRepo) CreateMany(ctx context.Context, entries []schedule.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return errors.New("entry id required")
		}
		if _, exists := r.byID[e.ID]; exists {
			return errors.New("entry already exists")
		}
		if _, dup := seen[e.ID]; dup {
			return errors.New("duplicate entry id in batch")
		}
		seen[e.ID] = struct{}{}
	}

	for _, e := range entries {
		r.byID[e.ID] = e
	}
	return nil
}

func (r *entryRepo) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return schedule.Entry{}, schedule.ErrNotFound
	}
	return e, nil
}

func (r *entryRepo) ListByOwner(ctx context.Context, ownerID string, filter schedule.ListFilter) ([]schedule.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Entry, 0)
	for _, e := range r.byID {
		if e.OwnerID != ownerID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}

	// fecha asc, hora asc; id como desempate para que el orden sea estable
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.Time != b.Time {
			return a.Time.Before(b.Time)
		}
		return a.ID < b.ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *entryRepo) ToggleCompleted(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return schedule.ErrNotFound
	}
	e.Completed = !e.Completed
	r.byID[id] = e
	return nil
}

func (r *entryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
