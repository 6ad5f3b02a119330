package schedule

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"maternity-journal/internal/platform/civil"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Entry

	createErr error
	listErr   error
	calls     int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Entry{}}
}

func (r *testRepo) CreateMany(ctx context.Context, entries []Entry) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	for _, e := range entries {
		r.byID[e.ID] = e
	}
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string, filter ListFilter) ([]Entry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Entry, 0)
	for _, e := range r.byID {
		if e.OwnerID != ownerID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

func (r *testRepo) ToggleCompleted(ctx context.Context, id string) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	e.Completed = !e.Completed
	r.byID[id] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo Repository, now time.Time) *Service {
	svc := NewService(repo, nil, 0)
	svc.now = func() time.Time { return now }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_MonthlyRoundTrip(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	created, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Title:    "Control prenatal",
		Date:     civil.MustParse("2024-01-31"),
		Time:     TimeOfDay{Hour: 10},
		Category: CategoryAppointment,
		Unit:     UnitMonthly,
		Until:    civil.MustParse("2024-04-30"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(created))
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single CreateMany call, got %d", repo.calls)
	}

	ids := map[string]bool{}
	for _, e := range created {
		if e.ID == "" || ids[e.ID] {
			t.Fatalf("expected unique non-empty ids, got %q", e.ID)
		}
		ids[e.ID] = true
		if !e.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, e.CreatedAt)
		}
	}

	got, err := svc.List(context.Background(), "owner-1", civil.MustParse("2024-01-01"), civil.MustParse("2024-12-31"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	dates := make([]civil.Date, 0, len(got))
	for _, e := range got {
		dates = append(dates, e.Date)
	}
	assertDates(t, dates, "2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30")
}

func TestService_Create_InvalidRuleWritesNothing(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Title: "x",
		Date:  civil.MustParse("2024-03-10"),
		Unit:  UnitDaily,
		Until: civil.MustParse("2024-03-01"),
	})
	if !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if repo.calls != 0 || len(repo.byID) != 0 {
		t.Fatalf("expected no writes, calls=%d rows=%d", repo.calls, len(repo.byID))
	}
}

func TestService_Create_RequiresTitleAndOwner(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	in := CreateInput{Date: civil.MustParse("2024-03-10")}

	if _, err := svc.Create(context.Background(), "owner-1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}
	in.Title = "Eco"
	if _, err := svc.Create(context.Background(), " ", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty owner, got %v", err)
	}
}

func TestService_Create_StoreFailureIsUnavailable(t *testing.T) {
	repo := newTestRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{Title: "Eco", Date: civil.MustParse("2024-03-10")})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestService_Create_DefaultsCategory(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	out, err := svc.Create(context.Background(), "owner-1", CreateInput{Title: "Eco", Date: civil.MustParse("2024-03-10")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out[0].Category != CategoryAppointment {
		t.Fatalf("expected default category appointment, got %q", out[0].Category)
	}
}

func TestService_Preview_DoesNotWrite(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())

	dates, err := svc.Preview(CreateInput{
		Date:  civil.MustParse("2024-02-26"),
		Unit:  UnitWeekly,
		Until: civil.MustParse("2024-03-11"),
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	assertDates(t, dates, "2024-02-26", "2024-03-04", "2024-03-11")
	if repo.calls != 0 {
		t.Fatalf("preview must not write")
	}
}

func TestService_List_OrdersByDateThenTime(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	for _, in := range []CreateInput{
		{Title: "tarde", Date: civil.MustParse("2024-03-10"), Time: TimeOfDay{Hour: 18}},
		{Title: "mañana", Date: civil.MustParse("2024-03-10"), Time: TimeOfDay{Hour: 8}},
		{Title: "antes", Date: civil.MustParse("2024-03-09"), Time: TimeOfDay{Hour: 23}},
	} {
		if _, err := svc.Create(ctx, "owner-1", in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, "owner-2", CreateInput{Title: "ajeno", Date: civil.MustParse("2024-03-10")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(ctx, "owner-1", civil.MustParse("2024-03-01"), civil.MustParse("2024-03-31"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 || got[0].Title != "antes" || got[1].Title != "mañana" || got[2].Title != "tarde" {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestService_List_RejectsInvertedRange(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	_, err := svc.List(context.Background(), "owner-1", civil.MustParse("2024-03-10"), civil.MustParse("2024-03-01"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Upcoming_WindowIsInclusive(t *testing.T) {
	repo := newTestRepo()
	// 23:30 del 1° de marzo en São Paulo: "hoy" sigue siendo 1° de marzo.
	loc := time.FixedZone("BRT", -3*60*60)
	svc := newTestService(repo, time.Date(2024, 3, 1, 23, 30, 0, 0, loc))
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", CreateInput{
		Title: "Agua", Date: civil.MustParse("2024-02-25"), Unit: UnitDaily, Until: civil.MustParse("2024-03-20"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Upcoming(ctx, "owner-1", 7)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(got) != 8 || got[0].Date.String() != "2024-03-01" || got[7].Date.String() != "2024-03-08" {
		t.Fatalf("expected 2024-03-01..2024-03-08, got %d entries", len(got))
	}
}

func TestService_DefaultRange(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC))
	from, to := svc.DefaultRange()
	if from.String() != "2024-11-01" || to.String() != "2025-01-31" {
		t.Fatalf("expected 2024-11-01..2025-01-31, got %s..%s", from, to)
	}
}

func TestService_ToggleAndDelete_OwnerScoped(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateInput{
		Title: "Peso", Date: civil.MustParse("2024-03-01"), Unit: UnitWeekly, Until: civil.MustParse("2024-03-15"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created[1].ID

	if _, err := svc.Toggle(ctx, "owner-2", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign toggle: expected ErrNotFound, got %v", err)
	}
	e, err := svc.Toggle(ctx, "owner-1", id)
	if err != nil || !e.Completed {
		t.Fatalf("expected completed after toggle, got %#v err=%v", e, err)
	}
	e, err = svc.Toggle(ctx, "owner-1", id)
	if err != nil || e.Completed {
		t.Fatalf("expected not completed after second toggle, got %#v err=%v", e, err)
	}

	if err := svc.Delete(ctx, "owner-2", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "owner-1", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "owner-1", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}

	// el resto de la serie sigue ahí
	rest, err := svc.List(ctx, "owner-1", civil.MustParse("2024-03-01"), civil.MustParse("2024-03-31"))
	if err != nil || len(rest) != 2 {
		t.Fatalf("expected 2 remaining entries, got %d err=%v", len(rest), err)
	}
}
