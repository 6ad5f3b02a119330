package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"maternity-journal/internal/platform/civil"
	"maternity-journal/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRule: la regla no se puede materializar. Nunca hay escrituras parciales.
	ErrInvalidRule = errors.New("invalid recurrence rule")

	ErrNotFound         = errors.New("entry not found")
	ErrStoreUnavailable = errors.New("storage unavailable")
)

// DefaultUpcomingDays es la ventana de "próximos eventos" del dashboard.
const DefaultUpcomingDays = 7

type Service struct {
	repo           Repository
	log            logger.Logger
	now            func() time.Time
	maxOccurrences int
}

func NewService(repo Repository, log logger.Logger, maxOccurrences int) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	return &Service{
		repo:           repo,
		log:            log.With(map[string]any{"component": "schedule"}),
		now:            time.Now,
		maxOccurrences: maxOccurrences,
	}
}

type CreateInput struct {
	Title       string
	Description string
	Date        civil.Date
	Time        TimeOfDay
	Category    Category
	Unit        Unit
	Until       civil.Date
}

func (in CreateInput) rule() Rule {
	return Rule{Start: in.Date, Unit: in.Unit, End: in.Until}
}

func (in CreateInput) metadata(ownerID string) Metadata {
	cat := in.Category
	if cat == "" {
		cat = CategoryAppointment
	}
	return Metadata{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Time:        in.Time,
		Category:    cat,
	}
}

// Create materializa la regla y guarda todas las ocurrencias en una sola
// llamada al repositorio. Si algo falla no queda ninguna fila.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) ([]Entry, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidInput
	}

	entries, err := Materialize(in.rule(), in.metadata(ownerID), s.maxOccurrences)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].CreatedAt = now
	}

	if err := s.repo.CreateMany(ctx, entries); err != nil {
		return nil, s.unavailable("create entries", ownerID, err)
	}
	s.log.Info("entries created", map[string]any{
		"owner_id": ownerID,
		"unit":     string(in.Unit),
		"count":    len(entries),
	})
	return entries, nil
}

// Preview devuelve las fechas que generaría Create, sin escribir nada.
func (s *Service) Preview(in CreateInput) ([]civil.Date, error) {
	entries, err := Materialize(in.rule(), Metadata{}, s.maxOccurrences)
	if err != nil {
		return nil, err
	}
	dates := make([]civil.Date, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}
	return dates, nil
}

// List devuelve las entradas del dueño en [from, to] ordenadas por fecha y hora.
func (s *Service) List(ctx context.Context, ownerID string, from, to civil.Date) ([]Entry, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || from.IsZero() || to.IsZero() {
		return nil, ErrInvalidInput
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to %s is before from %s", ErrInvalidInput, to, from)
	}

	out, err := s.repo.ListByOwner(ctx, ownerID, ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, s.unavailable("list entries", ownerID, err)
	}
	return out, nil
}

// DefaultRange es la ventana que muestra la agenda sin filtros:
// desde el 1° del mes actual hasta el último día de dos meses después.
func (s *Service) DefaultRange() (civil.Date, civil.Date) {
	today := civil.Today(s.now())
	from := civil.New(today.Year, today.Month, 1)
	to := civil.New(today.Year, today.Month+3, 0)
	return from, to
}

// Upcoming devuelve las entradas de hoy a hoy+days (inclusive).
func (s *Service) Upcoming(ctx context.Context, ownerID string, days int) ([]Entry, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be >= 0", ErrInvalidInput)
	}
	today := civil.Today(s.now())
	return s.List(ctx, ownerID, today, today.AddDays(days))
}

// Toggle invierte is_completed. Entradas de otro dueño se tratan como inexistentes.
func (s *Service) Toggle(ctx context.Context, ownerID, id string) (Entry, error) {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return Entry{}, err
	}
	if err := s.repo.ToggleCompleted(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, s.unavailable("toggle entry", ownerID, err)
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, s.unavailable("reload entry", ownerID, err)
	}
	return e, nil
}

// Delete borra una sola ocurrencia; las demás de la misma serie quedan.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return s.unavailable("delete entry", ownerID, err)
	}
	s.log.Info("entry deleted", map[string]any{"owner_id": ownerID, "entry_id": id})
	return nil
}

func (s *Service) owned(ctx context.Context, ownerID, id string) (Entry, error) {
	ownerID = strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if ownerID == "" || id == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, s.unavailable("load entry", ownerID, err)
	}
	if e.OwnerID != ownerID {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (s *Service) unavailable(op, ownerID string, err error) error {
	s.log.Error(op+" failed", map[string]any{"owner_id": ownerID, "error": err.Error()})
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
