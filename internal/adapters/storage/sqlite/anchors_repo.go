package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/platform/civil"
)

type AnchorRepository struct {
	db *gorm.DB
}

func NewAnchorRepository(db *gorm.DB) *AnchorRepository {
	return &AnchorRepository{db: db}
}

func (r *AnchorRepository) Get(ctx context.Context, ownerID string) (gestation.Anchor, error) {
	var row anchorRow
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gestation.Anchor{}, gestation.ErrNotFound
		}
		return gestation.Anchor{}, err
	}
	return row.toDomain()
}

func (r *AnchorRepository) Create(ctx context.Context, a gestation.Anchor) error {
	row := anchorRow{OwnerID: a.OwnerID, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
	if a.LastPeriodDate != nil {
		s := a.LastPeriodDate.String()
		row.LastPeriodDate = &s
	}

	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return gestation.ErrDuplicateAnchor
	}
	return err
}

func (r *AnchorRepository) UpdateDate(ctx context.Context, ownerID string, d civil.Date, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&anchorRow{}).
		Where("owner_id = ?", ownerID).
		Updates(map[string]any{
			"last_period_date": d.String(),
			"updated_at":       updatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gestation.ErrNotFound
	}
	return nil
}
