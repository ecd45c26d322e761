// Package plan expands the static phase catalog into dated session records.
// Generation is deterministic for a fixed "now" apart from the freshly
// assigned ids; tests inject a counting id source.
package plan

import (
	"time"

	"github.com/google/uuid"

	"trainlock/internal/calendar"
	"trainlock/internal/config"
	"trainlock/internal/models"
	"trainlock/internal/util"
)

// Generator materializes sessions from template weeks.
type Generator struct {
	// NewID supplies fresh unique record ids.
	NewID func() string
}

func NewGenerator() Generator {
	return Generator{NewID: uuid.NewString}
}

// Block expands one phase application anchored at start. Week w, day d maps to
// start + d + 7w days; day dates are locked from here on.
func (g Generator) Block(weeks []Week, start time.Time, blockName string, now time.Time) []models.Session {
	stamp := now.UnixMilli()
	sessions := make([]models.Session, 0, len(weeks)*config.SessionsPerWeek)
	for w, week := range weeks {
		for d, tpl := range week {
			s := models.Session{
				ID:           g.NewID(),
				Date:         calendar.Format(calendar.AddDays(start, d+7*w)),
				PlannedType:  tpl.Type,
				Focus:        tpl.Focus,
				Instructions: tpl.Instructions,
				Block:        blockName,
				Active:       true,
				UpdatedAt:    stamp,
			}
			if tpl.Minutes > 0 {
				s.PlannedMinutes = util.Ptr(tpl.Minutes)
			}
			if tpl.Km > 0 {
				s.PlannedKm = util.Ptr(tpl.Km)
			}
			sessions = append(sessions, s)
		}
	}
	return sessions
}

// FullLockedPlan generates the complete dated plan from the next Monday on or
// after now through the next August 1 strictly after now. Phases apply in
// fixed round-robin order; the cursor advances by exactly eight weeks per
// block regardless of which phase ran, and the final block is truncated at the
// target date.
func (g Generator) FullLockedPlan(now time.Time) []models.Session {
	start := calendar.NextMondayOrSame(now)
	target := calendar.NextAnnualDate(config.TargetMonth, config.TargetDay, now)
	if start.After(target) {
		return nil
	}

	phases := Phases()
	var all []models.Session
	cursor := start
	for i := 0; !cursor.After(target); i++ {
		phase := phases[i%len(phases)]
		all = append(all, g.Block(phase.Weeks, cursor, phase.Name, now)...)
		cursor = calendar.AddDays(cursor, config.BlockAdvanceDays)
	}

	limit := calendar.Format(target)
	out := all[:0]
	for _, s := range all {
		if s.Date <= limit {
			out = append(out, s)
		}
	}
	return out
}
