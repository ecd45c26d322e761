package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionsLoadedMsg:
		m.setSessions(msg.version, msg.sessions)
		return m, nil

	case opDoneMsg:
		return m, loadSessions(m.store)

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.status = fmt.Sprintf("sync failed: %v", msg.err)
			return m, nil
		}
		switch {
		case !msg.result.Pulled:
			m.status = "remote unavailable, kept local plan"
		case !msg.result.Pushed:
			m.status = fmt.Sprintf("merged %d sessions, push failed", msg.result.Merged)
		default:
			m.status = fmt.Sprintf("synced %d sessions", msg.result.Merged)
		}
		return m, loadSessions(m.store)

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.err = nil
		}
		return m, nil
	}

	switch m.mode {
	case modeActuals:
		return m.updateActuals(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if m.weekIdx > 0 {
			m.weekIdx--
			m.clamp()
		}
	case "right", "l":
		if m.weekIdx < len(m.weeks)-1 {
			m.weekIdx++
			m.clamp()
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.weekSessions())-1 {
			m.cursor++
		}

	case " ":
		if s, ok := m.selected(); ok {
			m.status = ""
			return m, toggleCompleted(m.store, s)
		}
	case "x":
		if s, ok := m.selected(); ok {
			m.status = ""
			return m, toggleActive(m.store, s)
		}
	case "enter", "e":
		if s, ok := m.selected(); ok {
			m.mode = modeActuals
			m.form = newActualsForm(s)
		}
	case "s":
		if m.syncer == nil {
			m.status = "sync is not configured"
			return m, nil
		}
		if !m.syncing {
			m.syncing = true
			m.status = "syncing..."
			return m, runSync(m.syncer)
		}
	}
	return m, nil
}

func (m Model) updateActuals(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, done, saved, cmd := m.form.update(msg)
	m.form = form
	if !done {
		return m, cmd
	}
	m.mode = modeBrowse
	if saved == nil {
		return m, nil
	}
	return m, saveActuals(m.store, m.form.session.ID, *saved)
}
