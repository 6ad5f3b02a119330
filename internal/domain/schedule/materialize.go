package schedule

import (
	"fmt"
	"strings"
)

// DefaultMaxOccurrences acota cuántas filas puede generar una sola regla.
const DefaultMaxOccurrences = 1000

// Materialize expande rule y devuelve una Entry por fecha, todas con la misma
// metadata. No asigna IDs ni persiste: eso es del Service.
func Materialize(rule Rule, meta Metadata, maxOccurrences int) ([]Entry, error) {
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	if rule.Start.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidRule)
	}

	switch rule.Unit {
	case UnitNone:
	case UnitDaily, UnitWeekly, UnitMonthly:
		if rule.End.IsZero() {
			return nil, fmt.Errorf("%w: end date is required for %s recurrence", ErrInvalidRule, rule.Unit)
		}
		if rule.End.Before(rule.Start) {
			return nil, fmt.Errorf("%w: end date %s is before start %s", ErrInvalidRule, rule.End, rule.Start)
		}
	default:
		return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidRule, rule.Unit)
	}

	dates, truncated := expand(rule.Start, rule.Unit, rule.End, maxOccurrences)
	if truncated {
		return nil, fmt.Errorf("%w: more than %d occurrences", ErrInvalidRule, maxOccurrences)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: rule produces no dates", ErrInvalidRule)
	}

	entries := make([]Entry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, Entry{
			OwnerID:     meta.OwnerID,
			Title:       strings.TrimSpace(meta.Title),
			Description: strings.TrimSpace(meta.Description),
			Date:        d,
			Time:        meta.Time,
			Category:    meta.Category,
			Recurring:   rule.Unit.Recurring(),
			Unit:        rule.Unit,
		})
	}
	return entries, nil
}
