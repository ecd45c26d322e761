package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trainlock/internal/models"
	"trainlock/internal/store"
	"trainlock/internal/syncsvc"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

type sessionsLoadedMsg struct {
	version  int
	sessions []models.Session
}

type opDoneMsg struct{}

type syncDoneMsg struct {
	result syncsvc.Result
	err    error
}

type errMsg struct{ err error }

func loadSessions(st store.Store) tea.Cmd {
	return func() tea.Msg {
		version, sessions, err := st.Load(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return sessionsLoadedMsg{version: version, sessions: sessions}
	}
}

func toggleCompleted(st store.Store, s models.Session) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetCompleted(context.Background(), s.ID, !s.Completed); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{}
	}
}

func toggleActive(st store.Store, s models.Session) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetActive(context.Background(), s.ID, !s.Active); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{}
	}
}

func saveActuals(st store.Store, id string, update store.ActualsUpdate) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetActuals(context.Background(), id, update); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{}
	}
}

func runSync(syncer Reconciler) tea.Cmd {
	return func() tea.Msg {
		res, err := syncer.Reconcile(context.Background())
		return syncDoneMsg{result: res, err: err}
	}
}
