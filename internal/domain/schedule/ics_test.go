package schedule

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"maternity-journal/internal/platform/civil"
)

func TestExportICS_OneEventPerEntry(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateInput{
		Title:    "Control prenatal",
		Date:     civil.MustParse("2024-01-31"),
		Time:     TimeOfDay{Hour: 10, Minute: 15},
		Category: CategoryMedical,
		Unit:     UnitMonthly,
		Until:    civil.MustParse("2024-03-31"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportICS(ctx, &buf, "owner-1", civil.MustParse("2024-01-01"), civil.MustParse("2024-12-31")); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
		t.Fatalf("expected VCALENDAR, got %q", out)
	}
	if n := strings.Count(out, "BEGIN:VEVENT"); n != len(created) {
		t.Fatalf("expected %d VEVENTs, got %d", len(created), n)
	}
	for _, want := range []string{"DTSTART:20240131T101500", "DTSTART:20240229T101500", "DTSTART:20240331T101500", "SUMMARY:Control prenatal", "CATEGORIES:medical"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in export:\n%s", want, out)
		}
	}
	if !strings.Contains(out, created[0].ID+"@maternity-journal") {
		t.Fatalf("expected uid derived from entry id")
	}
}
