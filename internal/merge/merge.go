// Package merge reconciles two divergent collections of session records into
// one consistent, duplicate-free collection. All operations are pure: they
// take collections and return new ones, with no I/O and no shared state.
package merge

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"trainlock/internal/models"
)

// ErrMissingID marks a caller bug: records must carry an id before they reach
// the merge engine.
var ErrMissingID = errors.New("session record has no id")

// Score ranks how much user-entered evidence a record carries. It is only a
// tie-break signal for semantic duplicates, never for identity merge.
func Score(s models.Session) int {
	score := 0
	if s.Completed {
		score += 10
	}
	if s.ActualMinutes != nil {
		score += 4
	}
	if s.ActualKm != nil {
		score += 3
	}
	if s.RPE != nil {
		score += 2
	}
	if strings.TrimSpace(s.Notes) != "" {
		score++
	}
	return score
}

// Key derives the semantic identity of a planned session: two records with
// equal keys are presumed to describe the same intended session even when
// their ids differ.
func Key(s models.Session) string {
	minutes := 0
	if s.PlannedMinutes != nil {
		minutes = *s.PlannedMinutes
	}
	return fmt.Sprintf("%s|%s|%d|%s", s.Date, s.PlannedType, minutes, strings.TrimSpace(s.Focus))
}

// ByID unions two collections by record id. When both sides carry the same id
// the variant with the strictly greater UpdatedAt wins; on a tie the second
// one encountered wins. Last-writer-wins is deliberately lossy: there is no
// field-level merge.
func ByID(a, b []models.Session) ([]models.Session, error) {
	out := make([]models.Session, 0, len(a)+len(b))
	index := make(map[string]int, len(a)+len(b))
	for _, s := range a {
		if err := place(&out, index, s); err != nil {
			return nil, err
		}
	}
	for _, s := range b {
		if err := place(&out, index, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func place(out *[]models.Session, index map[string]int, s models.Session) error {
	if s.ID == "" {
		return fmt.Errorf("%w (date %s)", ErrMissingID, s.Date)
	}
	if at, ok := index[s.ID]; ok {
		if s.UpdatedAt >= (*out)[at].UpdatedAt {
			(*out)[at] = s
		}
		return nil
	}
	index[s.ID] = len(*out)
	*out = append(*out, s)
	return nil
}

// Dedupe collapses semantic duplicates: within each Key group the record with
// the higher completeness score survives; equal scores fall back to the
// greater UpdatedAt. The result is stably sorted by date ascending, the
// canonical iteration order of the whole system.
func Dedupe(sessions []models.Session) []models.Session {
	order := make([]string, 0, len(sessions))
	winners := make(map[string]models.Session, len(sessions))
	for _, s := range sessions {
		key := Key(s)
		current, ok := winners[key]
		if !ok {
			order = append(order, key)
			winners[key] = s
			continue
		}
		if better(s, current) {
			winners[key] = s
		}
	}
	out := make([]models.Session, 0, len(order))
	for _, key := range order {
		out = append(out, winners[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func better(candidate, current models.Session) bool {
	cs, ws := Score(candidate), Score(current)
	if cs != ws {
		return cs > ws
	}
	return candidate.UpdatedAt > current.UpdatedAt
}

// Reconcile is the combined operation: identity merge first, so that two
// versions of literally the same record collapse by recency before the
// semantic pass runs on the union.
func Reconcile(a, b []models.Session) ([]models.Session, error) {
	union, err := ByID(a, b)
	if err != nil {
		return nil, err
	}
	return Dedupe(union), nil
}
