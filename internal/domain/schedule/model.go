package schedule

import (
	"time"

	"maternity-journal/internal/platform/civil"
)

// Entry es una ocurrencia concreta en la agenda. Cada ocurrencia de una
// recurrencia es su propia fila; la regla no se guarda.
type Entry struct {
	ID      string
	OwnerID string

	Title       string
	Description string

	Date     civil.Date
	Time     TimeOfDay
	Category Category

	Completed bool

	// Recurring/Unit son solo informativos (badge en la UI).
	Recurring bool
	Unit      Unit

	CreatedAt time.Time
}

// Rule define la recurrencia: desde Start, cada Unit, hasta End (inclusive).
type Rule struct {
	Start civil.Date
	Unit  Unit
	End   civil.Date
}

// Metadata es lo que comparten todas las ocurrencias materializadas.
type Metadata struct {
	OwnerID     string
	Title       string
	Description string
	Time        TimeOfDay
	Category    Category
}
