package schedule

import (
	"context"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"maternity-journal/internal/platform/civil"
)

// icsFloatingLayout es DATE-TIME "flotante" (sin zona): la hora de la
// agenda es local al dueño y no tiene offset.
const icsFloatingLayout = "20060102T150405"

// ExportICS escribe las entradas de [from, to] como VCALENDAR.
func (s *Service) ExportICS(ctx context.Context, w io.Writer, ownerID string, from, to civil.Date) error {
	entries, err := s.List(ctx, ownerID, from, to)
	if err != nil {
		return err
	}
	return WriteCalendar(w, entries, s.now())
}

// WriteCalendar serializa entries; stamp va en DTSTAMP de cada VEVENT.
func WriteCalendar(w io.Writer, entries []Entry, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//maternity-journal//schedule//ES")
	cal.SetName("Agenda")

	for _, e := range entries {
		ev := cal.AddEvent(e.ID + "@maternity-journal")
		ev.SetDtStampTime(stamp)
		if !e.CreatedAt.IsZero() {
			ev.SetCreatedTime(e.CreatedAt)
		}
		start := time.Date(e.Date.Year, e.Date.Month, e.Date.Day, e.Time.Hour, e.Time.Minute, 0, 0, time.UTC)
		ev.SetProperty(ical.ComponentPropertyDtStart, start.Format(icsFloatingLayout))
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Category != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, string(e.Category))
		}
	}

	return cal.SerializeTo(w)
}
