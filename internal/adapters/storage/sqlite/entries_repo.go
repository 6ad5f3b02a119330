package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"maternity-journal/internal/domain/schedule"
)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// CreateMany inserta una fila por ocurrencia dentro de una transacción.
func (r *EntryRepository) CreateMany(ctx context.Context, entries []schedule.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			row := fromEntry(e)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert entry %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

func (r *EntryRepository) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	var row entryRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return schedule.Entry{}, schedule.ErrNotFound
		}
		return schedule.Entry{}, err
	}
	return row.toDomain()
}

func (r *EntryRepository) ListByOwner(ctx context.Context, ownerID string, filter schedule.ListFilter) ([]schedule.Entry, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.From != nil {
		q = q.Where("entry_date >= ?", filter.From.String())
	}
	if filter.To != nil {
		q = q.Where("entry_date <= ?", filter.To.String())
	}
	q = q.Order("entry_date ASC, scheduled_time ASC, id ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []entryRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *EntryRepository) ToggleCompleted(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&entryRow{}).
		Where("id = ?", id).
		Update("is_completed", gorm.Expr("NOT is_completed"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entryRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
