package gestation

import (
	"time"

	"maternity-journal/internal/platform/civil"
)

const (
	// PregnancyDays es la duración estándar desde la LMP hasta la DPP (40 semanas).
	PregnancyDays = 280
	TotalWeeks    = 40

	// Límites canónicos de trimestre (inclusive).
	FirstTrimesterLastWeek  = 13
	SecondTrimesterLastWeek = 27
)

// Anchor es la fila única por dueño con la fecha de la última menstruación.
// LastPeriodDate nil = todavía no configurado.
type Anchor struct {
	OwnerID        string
	LastPeriodDate *civil.Date

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Anchor) Configured() bool {
	return a.LastPeriodDate != nil && !a.LastPeriodDate.IsZero()
}

// Snapshot son los valores derivados; se recalculan en cada lectura.
type Snapshot struct {
	LastPeriodDate  civil.Date
	Week            int
	DayOfWeek       int
	Trimester       int
	DueDate         civil.Date
	DaysElapsed     int
	DaysRemaining   int
	ProgressPercent int
	Overdue         bool
	DaysOverdue     int
}

// Countdown es el desglose días/horas/minutos hasta la medianoche local de la DPP.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
}
