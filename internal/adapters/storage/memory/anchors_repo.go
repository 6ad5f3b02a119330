package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/platform/civil"
)

type anchorRepo struct {
	mu      sync.RWMutex
	byOwner map[string]gestation.Anchor
}

func NewAnchorRepo() gestation.Repository {
	return &anchorRepo{
		byOwner: make(map[string]gestation.Anchor),
	}
}

func (r *anchorRepo) Get(ctx context.Context, ownerID string) (gestation.Anchor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byOwner[ownerID]
	if !ok {
		return gestation.Anchor{}, gestation.ErrNotFound
	}
	return copyAnchor(a), nil
}

func (r *anchorRepo) Create(ctx context.Context, a gestation.Anchor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.OwnerID == "" {
		return errors.New("owner id required")
	}
	// owner_id es la clave única, igual que en postgres
	if _, exists := r.byOwner[a.OwnerID]; exists {
		return gestation.ErrDuplicateAnchor
	}

	r.byOwner[a.OwnerID] = copyAnchor(a)
	return nil
}

func (r *anchorRepo) UpdateDate(ctx context.Context, ownerID string, d civil.Date, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byOwner[ownerID]
	if !ok {
		return gestation.ErrNotFound
	}
	a.LastPeriodDate = &d
	a.UpdatedAt = updatedAt
	r.byOwner[ownerID] = a
	return nil
}

// copyAnchor evita que el caller comparta el puntero de la fecha con el mapa.
func copyAnchor(a gestation.Anchor) gestation.Anchor {
	if a.LastPeriodDate != nil {
		d := *a.LastPeriodDate
		a.LastPeriodDate = &d
	}
	return a
}
