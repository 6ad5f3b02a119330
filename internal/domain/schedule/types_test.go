package schedule

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	for in, want := range map[string]string{"09:05": "09:05", "9:05": "09:05", "23:59:00": "23:59", " 00:00 ": "00:00"} {
		got, err := ParseTimeOfDay(in)
		if err != nil || got.String() != want {
			t.Fatalf("%q: expected %s, got %s err=%v", in, want, got, err)
		}
	}
	for _, in := range []string{"", "24:00", "12:60", "noon", "1"} {
		if _, err := ParseTimeOfDay(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestTimeOfDay_JSONAndScan(t *testing.T) {
	b, _ := json.Marshal(TimeOfDay{Hour: 7, Minute: 5})
	if string(b) != `"07:05"` {
		t.Fatalf("unexpected json %s", b)
	}

	var tod TimeOfDay
	if err := tod.Scan([]byte("14:30:00")); err != nil || tod.String() != "14:30" {
		t.Fatalf("scan: %v %s", err, tod)
	}
	if err := tod.Scan(3); err == nil {
		t.Fatalf("expected error scanning int")
	}
}

func TestParseUnitAndCategory(t *testing.T) {
	for in, want := range map[string]Unit{"": UnitNone, "none": UnitNone, "Daily": UnitDaily, "weekly": UnitWeekly, "MONTHLY": UnitMonthly} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %q, got %q err=%v", in, want, got, err)
		}
	}
	if _, err := ParseUnit("yearly"); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}

	if c, _ := ParseCategory(""); c != CategoryAppointment {
		t.Fatalf("expected default appointment, got %q", c)
	}
	if _, err := ParseCategory("party"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
