package schedule

import (
	"fmt"
	"strings"
)

// Unit es el paso de la recurrencia. UnitNone = entrada única.
type Unit string

const (
	UnitNone    Unit = ""
	UnitDaily   Unit = "daily"
	UnitWeekly  Unit = "weekly"
	UnitMonthly Unit = "monthly"
)

func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitNone, UnitDaily, UnitWeekly, UnitMonthly:
		return u, nil
	case "none", "once":
		return UnitNone, nil
	default:
		return UnitNone, fmt.Errorf("%w: unknown unit %q", ErrInvalidRule, s)
	}
}

func (u Unit) Recurring() bool {
	return u != UnitNone
}

type Category string

const (
	CategoryMood        Category = "mood"
	CategoryWeight      Category = "weight"
	CategoryPhoto       Category = "photo"
	CategoryMedical     Category = "medical"
	CategoryAppointment Category = "appointment"
	CategoryGeneral     Category = "general"
)

// ParseCategory: vacío => appointment (default de la agenda).
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryAppointment, nil
	case CategoryMood, CategoryWeight, CategoryPhoto, CategoryMedical, CategoryAppointment, CategoryGeneral:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
}
