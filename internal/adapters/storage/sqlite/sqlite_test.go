package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/domain/schedule"
	"maternity-journal/internal/platform/civil"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestAnchorRepository_CreateGetUpdate(t *testing.T) {
	repo := NewAnchorRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Get(ctx, "owner-1"); !errors.Is(err, gestation.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Create(ctx, gestation.Anchor{OwnerID: "owner-1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, gestation.Anchor{OwnerID: "owner-1", CreatedAt: now, UpdatedAt: now}); !errors.Is(err, gestation.ErrDuplicateAnchor) {
		t.Fatalf("expected ErrDuplicateAnchor, got %v", err)
	}

	a, err := repo.Get(ctx, "owner-1")
	if err != nil || a.Configured() {
		t.Fatalf("expected empty anchor, got %#v err=%v", a, err)
	}

	if err := repo.UpdateDate(ctx, "owner-1", civil.MustParse("2024-01-01"), now.Add(time.Hour)); err != nil {
		t.Fatalf("update: %v", err)
	}
	a, err = repo.Get(ctx, "owner-1")
	if err != nil || a.LastPeriodDate == nil || a.LastPeriodDate.String() != "2024-01-01" {
		t.Fatalf("unexpected anchor %#v err=%v", a, err)
	}

	if err := repo.UpdateDate(ctx, "ghost", civil.MustParse("2024-01-01"), now); !errors.Is(err, gestation.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing owner, got %v", err)
	}
}

func TestEntryRepository_RoundTrip(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

	batch, err := schedule.Materialize(
		schedule.Rule{Start: civil.MustParse("2024-01-31"), Unit: schedule.UnitMonthly, End: civil.MustParse("2024-04-30")},
		schedule.Metadata{OwnerID: "owner-1", Title: "Control", Time: schedule.TimeOfDay{Hour: 10, Minute: 30}, Category: schedule.CategoryMedical},
		0,
	)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	for i := range batch {
		batch[i].ID = uuid.NewString()
		batch[i].CreatedAt = now
	}
	if err := repo.CreateMany(ctx, batch); err != nil {
		t.Fatalf("create many: %v", err)
	}

	from, to := civil.MustParse("2024-02-01"), civil.MustParse("2024-04-30")
	got, err := repo.ListByOwner(ctx, "owner-1", schedule.ListFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-02-29", "2024-03-31", "2024-04-30"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.Date.String() != want[i] || e.Time.String() != "10:30" || !e.Recurring || e.Unit != schedule.UnitMonthly {
			t.Fatalf("entry %d: unexpected %#v", i, e)
		}
	}

	if err := repo.ToggleCompleted(ctx, got[0].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	e, err := repo.GetByID(ctx, got[0].ID)
	if err != nil || !e.Completed {
		t.Fatalf("expected completed entry, got %#v err=%v", e, err)
	}

	if err := repo.Delete(ctx, got[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, got[0].ID); !errors.Is(err, schedule.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.ToggleCompleted(ctx, got[0].ID); !errors.Is(err, schedule.ErrNotFound) {
		t.Fatalf("expected ErrNotFound toggling deleted entry, got %v", err)
	}
}

func TestEntryRepository_CreateManyRollsBack(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))
	ctx := context.Background()

	dupID := uuid.NewString()
	batch := []schedule.Entry{
		{ID: uuid.NewString(), OwnerID: "o", Title: "a", Date: civil.MustParse("2024-03-01")},
		{ID: dupID, OwnerID: "o", Title: "b", Date: civil.MustParse("2024-03-02")},
		{ID: dupID, OwnerID: "o", Title: "c", Date: civil.MustParse("2024-03-03")},
	}
	if err := repo.CreateMany(ctx, batch); err == nil {
		t.Fatalf("expected error on duplicate id")
	}

	got, err := repo.ListByOwner(ctx, "o", schedule.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected rollback, found %d rows", len(got))
	}
}
