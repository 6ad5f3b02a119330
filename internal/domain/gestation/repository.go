package gestation

import (
	"context"
	"time"

	"maternity-journal/internal/platform/civil"
)

// Repository es el acceso al store de anchors (una fila por dueño).
// Get devuelve ErrNotFound si no hay fila; Create devuelve ErrDuplicateAnchor
// si la fila ya existe (ej: carrera de primera creación).
type Repository interface {
	Get(ctx context.Context, ownerID string) (Anchor, error)
	Create(ctx context.Context, a Anchor) error
	UpdateDate(ctx context.Context, ownerID string, d civil.Date, updatedAt time.Time) error
}
