// Package tui is the interactive dashboard: a week-by-week view of the plan
// where sessions are checked off, actuals are recorded, and a sync pass can be
// triggered without leaving the terminal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"trainlock/internal/calendar"
	"trainlock/internal/models"
	"trainlock/internal/store"
	"trainlock/internal/syncsvc"
	"trainlock/internal/util"
)

// Reconciler runs one sync pass. Nil when no remote is configured.
type Reconciler interface {
	Reconcile(ctx context.Context) (syncsvc.Result, error)
}

type mode int

const (
	modeBrowse mode = iota
	modeActuals
)

// Model is the root bubbletea model.
type Model struct {
	store  store.Store
	syncer Reconciler

	version  int
	sessions []models.Session
	weeks    []string
	weekIdx  int
	cursor   int

	mode    mode
	form    actualsForm
	status  string
	err     error
	syncing bool
	loaded  bool

	width  int
	height int
}

func NewModel(st store.Store, syncer Reconciler) Model {
	return Model{store: st, syncer: syncer}
}

func (m Model) Init() tea.Cmd {
	return loadSessions(m.store)
}

// weekSessions returns the sessions of the selected week, in stored order.
func (m Model) weekSessions() []models.Session {
	if m.weekIdx >= len(m.weeks) {
		return nil
	}
	week := m.weeks[m.weekIdx]
	var out []models.Session
	for _, s := range m.sessions {
		if weekKey(s) == week {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) selected() (models.Session, bool) {
	week := m.weekSessions()
	if len(week) == 0 || m.cursor >= len(week) {
		return models.Session{}, false
	}
	return week[m.cursor], true
}

func (m *Model) setSessions(version int, sessions []models.Session) {
	m.version = version
	m.sessions = sessions
	m.weeks = m.weeks[:0]
	seen := map[string]bool{}
	for _, s := range sessions {
		week := weekKey(s)
		if week != "" && !seen[week] {
			seen[week] = true
			m.weeks = append(m.weeks, week)
		}
	}
	if !m.loaded {
		m.loaded = true
		m.weekIdx = m.initialWeek()
	}
	m.clamp()
}

// initialWeek lands on the current week when the plan covers it, otherwise on
// the first week with an unfinished session.
func (m Model) initialWeek() int {
	today := calendar.ISOWeekKey(calendar.Normalize(nowFunc()))
	for i, week := range m.weeks {
		if week == today {
			return i
		}
	}
	for i, week := range m.weeks {
		for _, s := range m.sessions {
			if weekKey(s) == week && s.Active && !s.Completed {
				return i
			}
		}
	}
	return 0
}

func (m *Model) clamp() {
	m.weekIdx = util.Clamp(m.weekIdx, 0, max(0, len(m.weeks)-1))
	m.cursor = util.Clamp(m.cursor, 0, max(0, len(m.weekSessions())-1))
}

func weekKey(s models.Session) string {
	t, err := calendar.Parse(s.Date)
	if err != nil {
		return ""
	}
	return calendar.ISOWeekKey(t)
}
