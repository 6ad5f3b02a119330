package gestation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maternity-journal/internal/platform/civil"
	"maternity-journal/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured no es una falla: el dueño todavía no cargó su LMP.
	ErrNotConfigured = errors.New("gestation not configured")

	ErrNotFound         = errors.New("anchor not found")
	ErrDuplicateAnchor  = errors.New("anchor already exists")
	ErrStoreUnavailable = errors.New("storage unavailable")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "gestation"}),
		now:  time.Now,
	}
}

// Load devuelve el anchor configurado o ErrNotConfigured.
// Si el dueño no tiene fila, la crea vacía (lazy) y sigue devolviendo ErrNotConfigured.
func (s *Service) Load(ctx context.Context, ownerID string) (Anchor, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Anchor{}, ErrInvalidInput
	}

	a, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		if err := s.ensureRow(ctx, ownerID); err != nil {
			return Anchor{}, err
		}
		s.log.Debug("anchor not configured", map[string]any{"owner_id": ownerID})
		return Anchor{}, ErrNotConfigured
	}
	if err != nil {
		return Anchor{}, s.unavailable("load anchor", ownerID, err)
	}

	if !a.Configured() {
		return a, ErrNotConfigured
	}
	return a, nil
}

// Save setea (o sobrescribe) la LMP. No valida plausibilidad: eso es del caller.
func (s *Service) Save(ctx context.Context, ownerID string, d civil.Date) (Anchor, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || d.IsZero() {
		return Anchor{}, ErrInvalidInput
	}

	if err := s.ensureRow(ctx, ownerID); err != nil {
		return Anchor{}, err
	}

	now := s.now()
	if err := s.repo.UpdateDate(ctx, ownerID, d, now); err != nil {
		return Anchor{}, s.unavailable("update anchor date", ownerID, err)
	}

	a, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		return Anchor{}, s.unavailable("reload anchor", ownerID, err)
	}
	s.log.Info("anchor saved", map[string]any{"owner_id": ownerID, "last_period_date": d.String()})
	return a, nil
}

// Snapshot carga el anchor y calcula los valores derivados para "now".
func (s *Service) Snapshot(ctx context.Context, ownerID string) (*Snapshot, error) {
	a, err := s.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Calculate(a.LastPeriodDate, s.now()), nil
}

// Countdown es el contador de la DPP para "now".
func (s *Service) Countdown(snap *Snapshot) Countdown {
	if snap == nil {
		return Countdown{}
	}
	return CountdownTo(snap.DueDate, s.now())
}

// ensureRow inserta la fila vacía si no existe. Una carrera con otro insert
// del mismo dueño (ErrDuplicateAnchor) se ignora.
func (s *Service) ensureRow(ctx context.Context, ownerID string) error {
	_, err := s.repo.Get(ctx, ownerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return s.unavailable("load anchor", ownerID, err)
	}

	now := s.now()
	err = s.repo.Create(ctx, Anchor{OwnerID: ownerID, CreatedAt: now, UpdatedAt: now})
	if errors.Is(err, ErrDuplicateAnchor) {
		s.log.Debug("duplicate anchor insert ignored", map[string]any{"owner_id": ownerID})
		return nil
	}
	if err != nil {
		return s.unavailable("create anchor", ownerID, err)
	}
	return nil
}

func (s *Service) unavailable(op, ownerID string, err error) error {
	s.log.Error(op+" failed", map[string]any{"owner_id": ownerID, "error": err.Error()})
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
