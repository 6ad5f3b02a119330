package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"maternity-journal/internal/domain/schedule"
)

type EntriesRepo struct {
	db *sql.DB
}

func NewEntriesRepo(db *sql.DB) *EntriesRepo {
	return &EntriesRepo{db: db}
}

const entryColumns = `
	id, owner_id,
	title, description,
	entry_date, scheduled_time,
	category, is_completed,
	is_recurring, recurrence_unit,
	created_at
`

// selectColumns castea uuid/time a texto para escanear sin tipos pgtype.
const selectColumns = `
	id::text, owner_id,
	title, description,
	entry_date, scheduled_time::text,
	category, is_completed,
	is_recurring, recurrence_unit,
	created_at
`

// CreateMany inserta una fila por ocurrencia dentro de una transacción.
func (r *EntriesRepo) CreateMany(ctx context.Context, entries []schedule.Entry) (err error) {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO calendar_entries (`+entryColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err = stmt.ExecContext(ctx,
			e.ID,
			e.OwnerID,
			e.Title,
			e.Description,
			e.Date,
			e.Time,
			string(e.Category),
			e.Completed,
			e.Recurring,
			string(e.Unit),
			e.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.Date, err)
		}
	}

	return tx.Commit()
}

func (r *EntriesRepo) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return schedule.Entry{}, schedule.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM calendar_entries WHERE id::text = $1`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.Entry{}, schedule.ErrNotFound
	}
	return e, err
}

func (r *EntriesRepo) ListByOwner(ctx context.Context, ownerID string, filter schedule.ListFilter) ([]schedule.Entry, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + selectColumns + ` FROM calendar_entries WHERE owner_id = $1`)

	args := []any{ownerID}
	argN := 2

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND entry_date >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND entry_date <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY entry_date ASC, scheduled_time ASC, id ASC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EntriesRepo) ToggleCompleted(ctx context.Context, id string) error {
	return r.execOne(ctx, `UPDATE calendar_entries SET is_completed = NOT is_completed WHERE id::text = $1`, id)
}

func (r *EntriesRepo) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM calendar_entries WHERE id::text = $1`, id)
}

// execOne corre un UPDATE/DELETE por id y devuelve ErrNotFound si no tocó filas.
func (r *EntriesRepo) execOne(ctx context.Context, query, id string) error {
	res, err := r.db.ExecContext(ctx, query, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (schedule.Entry, error) {
	var e schedule.Entry
	var category, unit string
	if err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.Time,
		&category,
		&e.Completed,
		&e.Recurring,
		&unit,
		&e.CreatedAt,
	); err != nil {
		return schedule.Entry{}, err
	}
	e.Category = schedule.Category(category)
	e.Unit = schedule.Unit(unit)
	return e, nil
}
