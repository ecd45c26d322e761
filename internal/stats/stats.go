// Package stats derives weekly progress rollups from the session collection.
package stats

import (
	"sort"

	"trainlock/internal/calendar"
	"trainlock/internal/models"
)

// WeekSummary aggregates one ISO week. Planned counts cover active sessions
// only; actual totals come from recorded outcomes, falling back to the
// planned figures when a completed session has no actuals.
type WeekSummary struct {
	Week           string
	Planned        int
	Completed      int
	PlannedMinutes int
	ActualMinutes  int
	PlannedKm      float64
	ActualKm       float64
}

// Totals is the whole-plan rollup.
type Totals struct {
	Planned       int
	Completed     int
	ActualMinutes int
	ActualKm      float64
}

// Weekly groups active sessions by ISO week, ordered chronologically.
// Sessions with unparseable dates are skipped.
func Weekly(sessions []models.Session) []WeekSummary {
	byWeek := map[string]*WeekSummary{}
	var order []string
	for _, s := range sessions {
		if !s.Active {
			continue
		}
		t, err := calendar.Parse(s.Date)
		if err != nil {
			continue
		}
		week := calendar.ISOWeekKey(t)
		sum, ok := byWeek[week]
		if !ok {
			sum = &WeekSummary{Week: week}
			byWeek[week] = sum
			order = append(order, week)
		}

		sum.Planned++
		if s.PlannedMinutes != nil {
			sum.PlannedMinutes += *s.PlannedMinutes
		}
		if s.PlannedKm != nil {
			sum.PlannedKm += *s.PlannedKm
		}
		if !s.Completed {
			continue
		}
		sum.Completed++
		sum.ActualMinutes += actualMinutes(s)
		sum.ActualKm += actualKm(s)
	}

	sort.Strings(order)
	out := make([]WeekSummary, 0, len(order))
	for _, week := range order {
		out = append(out, *byWeek[week])
	}
	return out
}

// Total sums the weekly rollups into a single figure.
func Total(weeks []WeekSummary) Totals {
	var t Totals
	for _, w := range weeks {
		t.Planned += w.Planned
		t.Completed += w.Completed
		t.ActualMinutes += w.ActualMinutes
		t.ActualKm += w.ActualKm
	}
	return t
}

func actualMinutes(s models.Session) int {
	if s.ActualMinutes != nil {
		return *s.ActualMinutes
	}
	if s.PlannedMinutes != nil {
		return *s.PlannedMinutes
	}
	return 0
}

func actualKm(s models.Session) float64 {
	if s.ActualKm != nil {
		return *s.ActualKm
	}
	if s.PlannedKm != nil {
		return *s.PlannedKm
	}
	return 0
}
