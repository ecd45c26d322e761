package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"trainlock/internal/calendar"
	"trainlock/internal/models"
	"trainlock/internal/stats"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("TRAIN") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("LOCK")
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

func targetLabel(s models.Session) string {
	switch {
	case s.PlannedMinutes != nil && s.PlannedKm != nil:
		return fmt.Sprintf("%d min / %.1f km", *s.PlannedMinutes, *s.PlannedKm)
	case s.PlannedMinutes != nil:
		return fmt.Sprintf("%d min", *s.PlannedMinutes)
	case s.PlannedKm != nil:
		return fmt.Sprintf("%.1f km", *s.PlannedKm)
	}
	return ""
}

func weekdayLabel(s models.Session) string {
	t, err := calendar.Parse(s.Date)
	if err != nil {
		return "???"
	}
	return t.Weekday().String()[:3]
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress any key to continue.", m.err)
	}

	if m.mode == modeActuals {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CurrentTheme.Border).
			Padding(1, 2).
			Render(m.form.view())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s v%s", renderLogo(), AppVersion))
	b.WriteString("\n\n")

	if len(m.weeks) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No plan yet. Run 'trainlock generate' first."))
		return CurrentTheme.Base.Render(b.String())
	}

	week := m.weeks[m.weekIdx]
	b.WriteString(CurrentTheme.Header.Render(fmt.Sprintf("Week %s (%d/%d)", week, m.weekIdx+1, len(m.weeks))))
	b.WriteString("\n\n")

	focusWidth := m.width - 46
	for i, s := range m.weekSessions() {
		marker := "  "
		if i == m.cursor {
			marker = CurrentTheme.Focused.Render("> ")
		}
		box := "[ ]"
		if s.Completed {
			box = "[x]"
		}
		// Pad before styling so the ANSI codes do not skew the columns.
		typeCol := typeStyle(s.PlannedType).Render(fmt.Sprintf("%-9s", s.PlannedType))
		line := fmt.Sprintf("%s %s %s  %s %-16s %s",
			box,
			s.Date,
			weekdayLabel(s),
			typeCol,
			targetLabel(s),
			truncateLabel(s.Focus, focusWidth),
		)
		switch {
		case !s.Active:
			line = CurrentTheme.InactiveSession.Render(line + "  (inactive)")
		case s.Completed:
			line = CurrentTheme.CompletedSession.Render(line)
		default:
			line = CurrentTheme.Session.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n" + m.renderSummary() + "\n")
	if m.status != "" {
		b.WriteString(CurrentTheme.Highlight.Render(m.status) + "\n")
	}
	b.WriteString(CurrentTheme.Dim.Render("space done · enter log · x deactivate · h/l week · s sync · q quit"))
	return CurrentTheme.Base.Render(b.String())
}

func (m Model) renderSummary() string {
	total := stats.Total(stats.Weekly(m.sessions))
	if total.Planned == 0 {
		return CurrentTheme.Dim.Render("No active sessions.")
	}
	return CurrentTheme.Dim.Render(fmt.Sprintf("Progress: %d/%d sessions · %d min · %.1f km",
		total.Completed, total.Planned, total.ActualMinutes, total.ActualKm))
}
