package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"trainlock/internal/calendar"
	"trainlock/internal/models"
)

// WritePDF renders the plan as a week-by-week checklist report. Sessions are
// expected in canonical date order.
func WritePDF(path string, sessions []models.Session) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Training Plan")
	pdf.Ln(12)

	currentWeek := ""
	completed := 0
	for _, s := range sessions {
		week := weekOf(s)
		if week != currentWeek {
			currentWeek = week
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 13)
			pdf.Cell(0, 9, fmt.Sprintf("Week %s", week))
			pdf.Ln(8)
			pdf.SetFont("Arial", "", 11)
		}
		box := "[ ]"
		if s.Completed {
			box = "[x]"
			completed++
		}
		line := fmt.Sprintf("%s  %s  %s%s", box, s.Date, s.PlannedType, targetSuffix(s))
		if s.Focus != "" {
			line += "  - " + s.Focus
		}
		if !s.Active {
			line += "  (inactive)"
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Completed: %d of %d sessions", completed, len(sessions)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func weekOf(s models.Session) string {
	t, err := calendar.Parse(s.Date)
	if err != nil {
		return "?"
	}
	return calendar.ISOWeekKey(t)
}

func targetSuffix(s models.Session) string {
	switch {
	case s.PlannedMinutes != nil && s.PlannedKm != nil:
		return fmt.Sprintf(" %d min / %.1f km", *s.PlannedMinutes, *s.PlannedKm)
	case s.PlannedMinutes != nil:
		return fmt.Sprintf(" %d min", *s.PlannedMinutes)
	case s.PlannedKm != nil:
		return fmt.Sprintf(" %.1f km", *s.PlannedKm)
	}
	return ""
}
