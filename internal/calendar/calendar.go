// Package calendar provides the date arithmetic the plan generator and the
// weekly statistics are built on. All functions are pure; dates are normalized
// to noon UTC before arithmetic so daylight-saving transitions cannot shift a
// day boundary.
package calendar

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// Normalize pins t to noon UTC on its calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// Format renders t as a fixed-width YYYY-MM-DD string. Strings in this format
// order lexicographically, which is the canonical date ordering everywhere in
// the system.
func Format(t time.Time) string {
	return t.Format(isoDate)
}

// Parse reads a YYYY-MM-DD string back into a normalized time value.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Normalize(t), nil
}

// AddDays shifts t by n calendar days. n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// ISOWeekKey returns the ISO-8601 week key YYYY-Www for t. The week containing
// the date's Thursday determines the week-numbering year; weeks start Monday.
func ISOWeekKey(t time.Time) string {
	year, week := Normalize(t).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// NextMondayOrSame returns t unchanged if it falls on a Monday, otherwise the
// following Monday.
func NextMondayOrSame(t time.Time) time.Time {
	t = Normalize(t)
	offset := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return AddDays(t, offset)
}

// NextAnnualDate returns the next occurrence of month/day strictly after ref.
// A ref falling exactly on month/day is treated as already past and rolls to
// the next year, so a target computed from "now" is always in the future.
func NextAnnualDate(month time.Month, day int, ref time.Time) time.Time {
	ref = Normalize(ref)
	candidate := time.Date(ref.Year(), month, day, 12, 0, 0, 0, time.UTC)
	if !candidate.After(ref) {
		candidate = time.Date(ref.Year()+1, month, day, 12, 0, 0, 0, time.UTC)
	}
	return candidate
}
