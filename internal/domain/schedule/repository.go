package schedule

import (
	"context"

	"maternity-journal/internal/platform/civil"
)

// Repository es el acceso a calendar_entries.
// CreateMany es atómico: o se insertan todas las ocurrencias o ninguna.
type Repository interface {
	CreateMany(ctx context.Context, entries []Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByOwner(ctx context.Context, ownerID string, filter ListFilter) ([]Entry, error)
	ToggleCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ListFilter: rango inclusive por fecha. Orden siempre (fecha, hora) ascendente.
type ListFilter struct {
	From  *civil.Date
	To    *civil.Date
	Limit int
}
