package sqlite

import (
	"fmt"
	"time"

	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/domain/schedule"
	"maternity-journal/internal/platform/civil"
)

// Fechas y horas se guardan como texto (YYYY-MM-DD / HH:MM): ordenan bien
// lexicográficamente y el driver no intenta convertirlas a time.Time.

type anchorRow struct {
	OwnerID        string  `gorm:"primaryKey;size:128"`
	LastPeriodDate *string `gorm:"size:10"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (anchorRow) TableName() string { return "gestation_anchors" }

func (r anchorRow) toDomain() (gestation.Anchor, error) {
	a := gestation.Anchor{OwnerID: r.OwnerID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
	if r.LastPeriodDate != nil && *r.LastPeriodDate != "" {
		d, err := civil.Parse(*r.LastPeriodDate)
		if err != nil {
			return gestation.Anchor{}, fmt.Errorf("decode anchor %s: %w", r.OwnerID, err)
		}
		a.LastPeriodDate = &d
	}
	return a, nil
}

type entryRow struct {
	ID             string `gorm:"primaryKey;size:36"`
	OwnerID        string `gorm:"size:128;not null;index:idx_calendar_entries_owner_date,priority:1"`
	Title          string `gorm:"not null"`
	Description    string
	EntryDate      string `gorm:"size:10;not null;index:idx_calendar_entries_owner_date,priority:2"`
	ScheduledTime  string `gorm:"size:5;not null;index:idx_calendar_entries_owner_date,priority:3"`
	Category       string `gorm:"size:32"`
	IsCompleted    bool
	IsRecurring    bool
	RecurrenceUnit string `gorm:"size:16"`
	CreatedAt      time.Time
}

func (entryRow) TableName() string { return "calendar_entries" }

func fromEntry(e schedule.Entry) entryRow {
	return entryRow{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		Title:          e.Title,
		Description:    e.Description,
		EntryDate:      e.Date.String(),
		ScheduledTime:  e.Time.String(),
		Category:       string(e.Category),
		IsCompleted:    e.Completed,
		IsRecurring:    e.Recurring,
		RecurrenceUnit: string(e.Unit),
		CreatedAt:      e.CreatedAt,
	}
}

func (r entryRow) toDomain() (schedule.Entry, error) {
	d, err := civil.Parse(r.EntryDate)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("decode entry %s: %w", r.ID, err)
	}
	tod, err := schedule.ParseTimeOfDay(r.ScheduledTime)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("decode entry %s: %w", r.ID, err)
	}
	return schedule.Entry{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Date:        d,
		Time:        tod,
		Category:    schedule.Category(r.Category),
		Completed:   r.IsCompleted,
		Recurring:   r.IsRecurring,
		Unit:        schedule.Unit(r.RecurrenceUnit),
		CreatedAt:   r.CreatedAt,
	}, nil
}
