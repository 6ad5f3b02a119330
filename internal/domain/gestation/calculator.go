package gestation

import (
	"math"
	"time"

	"maternity-journal/internal/platform/civil"
)

// Calculate deriva el snapshot a partir de la LMP y "now".
// Devuelve nil si no hay LMP: es el estado inicial de todo dueño nuevo.
// "Hoy" es el día de calendario de now en su propia zona.
func Calculate(lastPeriod *civil.Date, now time.Time) *Snapshot {
	if lastPeriod == nil || lastPeriod.IsZero() {
		return nil
	}

	lmp := *lastPeriod
	today := civil.Today(now)
	due := DueDate(lmp)

	elapsed := today.DaysSince(lmp)
	week := WeekFor(elapsed)

	remaining := due.DaysSince(today)
	overdue := remaining < 0

	return &Snapshot{
		LastPeriodDate:  lmp,
		Week:            week,
		DayOfWeek:       floorMod(elapsed, 7),
		Trimester:       TrimesterFor(week),
		DueDate:         due,
		DaysElapsed:     elapsed,
		DaysRemaining:   max(0, remaining),
		ProgressPercent: ProgressFor(week),
		Overdue:         overdue,
		DaysOverdue:     max(0, -remaining),
	}
}

// DueDate = LMP + 280 días.
func DueDate(lmp civil.Date) civil.Date {
	return lmp.AddDays(PregnancyDays)
}

// WeekFor: semanas completas transcurridas + 1, con piso 1 (día 0..6 = semana 1).
func WeekFor(elapsedDays int) int {
	return max(1, floorDiv(elapsedDays, 7)+1)
}

func TrimesterFor(week int) int {
	switch {
	case week <= FirstTrimesterLastWeek:
		return 1
	case week <= SecondTrimesterLastWeek:
		return 2
	default:
		return 3
	}
}

// ProgressFor = min(100, round(week/40*100)).
func ProgressFor(week int) int {
	p := int(math.Round(float64(week) / TotalWeeks * 100))
	return min(100, max(0, p))
}

// CountdownTo calcula cuánto falta hasta la medianoche local (zona de now) de due.
// Nunca negativo: una DPP vencida da {0,0,0}.
func CountdownTo(due civil.Date, now time.Time) Countdown {
	left := due.In(now.Location()).Sub(now)
	if left <= 0 {
		return Countdown{}
	}
	totalMinutes := int(left / time.Minute)
	return Countdown{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes / 60) % 24,
		Minutes: totalMinutes % 60,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
