package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/platform/civil"
)

type AnchorsRepo struct {
	db *sql.DB
}

func NewAnchorsRepo(db *sql.DB) *AnchorsRepo {
	return &AnchorsRepo{db: db}
}

func (r *AnchorsRepo) Get(ctx context.Context, ownerID string) (gestation.Anchor, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return gestation.Anchor{}, gestation.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT owner_id, last_period_date, created_at, updated_at
		FROM gestation_anchors
		WHERE owner_id = $1
	`, ownerID)

	var a gestation.Anchor
	var lmp civil.Date
	if err := row.Scan(&a.OwnerID, &lmp, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gestation.Anchor{}, gestation.ErrNotFound
		}
		return gestation.Anchor{}, err
	}
	if !lmp.IsZero() {
		a.LastPeriodDate = &lmp
	}
	return a, nil
}

func (r *AnchorsRepo) Create(ctx context.Context, a gestation.Anchor) error {
	var lmp any
	if a.LastPeriodDate != nil {
		lmp = a.LastPeriodDate.String()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gestation_anchors (owner_id, last_period_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, a.OwnerID, lmp, a.CreatedAt, a.UpdatedAt)
	if isUniqueViolation(err) {
		return gestation.ErrDuplicateAnchor
	}
	return err
}

func (r *AnchorsRepo) UpdateDate(ctx context.Context, ownerID string, d civil.Date, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gestation_anchors
		SET last_period_date = $2, updated_at = $3
		WHERE owner_id = $1
	`, ownerID, d, updatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return gestation.ErrNotFound
	}
	return nil
}
