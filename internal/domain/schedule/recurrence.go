package schedule

import (
	"github.com/teambition/rrule-go"

	"maternity-journal/internal/platform/civil"
)

// Expand devuelve las fechas de la recurrencia en [start, end], ascendentes y
// sin duplicados. Mensual conserva el día del mes de start y, si el mes destino
// es más corto, cae en su último día (31/01 -> 29/02 -> 31/03 -> 30/04).
// UnitNone devuelve solo start.
func Expand(start civil.Date, unit Unit, end civil.Date) []civil.Date {
	dates, _ := expand(start, unit, end, 0)
	return dates
}

// expand corta en limit ocurrencias (0 = sin límite) y avisa si había más.
func expand(start civil.Date, unit Unit, end civil.Date, limit int) ([]civil.Date, bool) {
	if start.IsZero() {
		return nil, false
	}
	if unit == UnitNone {
		return []civil.Date{start}, false
	}
	if end.Before(start) {
		return nil, false
	}

	opt, ok := ruleOption(start, unit, end)
	if !ok {
		return nil, false
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, false
	}

	out := make([]civil.Date, 0)
	next := r.Iterator()
	for {
		t, ok := next()
		if !ok {
			return out, false
		}
		if limit > 0 && len(out) == limit {
			return out, true
		}
		out = append(out, civil.FromTime(t))
	}
}

func ruleOption(start civil.Date, unit Unit, end civil.Date) (rrule.ROption, bool) {
	opt := rrule.ROption{
		Dtstart: start.Time(),
		Until:   end.Time(),
	}
	switch unit {
	case UnitDaily:
		opt.Freq = rrule.DAILY
	case UnitWeekly:
		opt.Freq = rrule.WEEKLY
	case UnitMonthly:
		opt.Freq = rrule.MONTHLY
		if start.Day > 28 {
			// BYMONTHDAY=28..d;BYSETPOS=-1 = el día d o el último día del mes si no existe.
			days := make([]int, 0, start.Day-27)
			for d := 28; d <= start.Day; d++ {
				days = append(days, d)
			}
			opt.Bymonthday = days
			opt.Bysetpos = []int{-1}
		} else {
			opt.Bymonthday = []int{start.Day}
		}
	default:
		return rrule.ROption{}, false
	}
	return opt, true
}
