package calendar

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return parsed
}

func TestAddDays(t *testing.T) {
	d := mustParse(t, "2025-01-06")
	if got := Format(AddDays(d, 7)); got != "2025-01-13" {
		t.Fatalf("expected 2025-01-13, got %s", got)
	}
	if got := Format(AddDays(d, -6)); got != "2024-12-31" {
		t.Fatalf("expected 2024-12-31, got %s", got)
	}
}

func TestAddDaysAcrossDSTBoundary(t *testing.T) {
	// 2025-03-30 is the CET->CEST switch; a local-midnight representation
	// would land on the wrong day when shifted.
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2025, 3, 29, 0, 30, 0, 0, loc)
	if got := Format(AddDays(local, 2)); got != "2025-03-31" {
		t.Fatalf("expected 2025-03-31, got %s", got)
	}
}

func TestISOWeekKey(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-06", "2025-W02"},
		{"2024-12-30", "2025-W01"}, // Monday belonging to the next ISO year
		{"2026-01-01", "2026-W01"},
		{"2021-01-01", "2020-W53"}, // Friday belonging to the previous ISO year
	}
	for _, tc := range cases {
		if got := ISOWeekKey(mustParse(t, tc.date)); got != tc.want {
			t.Fatalf("ISOWeekKey(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestNextMondayOrSame(t *testing.T) {
	monday := mustParse(t, "2025-01-06")
	if got := Format(NextMondayOrSame(monday)); got != "2025-01-06" {
		t.Fatalf("Monday should be unchanged, got %s", got)
	}
	for date, want := range map[string]string{
		"2025-01-07": "2025-01-13", // Tuesday
		"2025-01-11": "2025-01-13", // Saturday
		"2025-01-12": "2025-01-13", // Sunday
	} {
		if got := Format(NextMondayOrSame(mustParse(t, date))); got != want {
			t.Fatalf("NextMondayOrSame(%s) = %s, want %s", date, got, want)
		}
	}
}

func TestNextAnnualDateRollsForwardOnExactMatch(t *testing.T) {
	ref := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	if got := Format(NextAnnualDate(time.August, 1, ref)); got != "2026-08-01" {
		t.Fatalf("boundary date must roll to next year, got %s", got)
	}
}

func TestNextAnnualDate(t *testing.T) {
	before := mustParse(t, "2025-03-15")
	if got := Format(NextAnnualDate(time.August, 1, before)); got != "2025-08-01" {
		t.Fatalf("expected 2025-08-01, got %s", got)
	}
	after := mustParse(t, "2025-09-02")
	if got := Format(NextAnnualDate(time.August, 1, after)); got != "2026-08-01" {
		t.Fatalf("expected 2026-08-01, got %s", got)
	}
}

func TestFormatOrdersLexicographically(t *testing.T) {
	a := Format(mustParse(t, "2025-02-28"))
	b := Format(mustParse(t, "2025-03-01"))
	if !(a < b) {
		t.Fatalf("expected %s < %s", a, b)
	}
}
