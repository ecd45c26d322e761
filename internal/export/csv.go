// Package export serializes the session collection for the outside world:
// a flat CSV table, a versioned JSON document (optionally encrypted), a PDF
// week-by-week report, and the lenient decoder used by import and sync.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trainlock/internal/models"
	"trainlock/internal/util"
)

// Columns is the fixed CSV column order.
var Columns = []string{
	"date", "plannedType", "plannedMinutes", "plannedKm", "focus", "instructions",
	"completed", "actualMinutes", "actualKm", "rpe", "notes", "block", "active", "updatedAt",
}

// WriteCSV renders the collection as a delimited table. Embedded newlines in
// text fields are flattened to spaces and booleans serialize as 1/0.
func WriteCSV(w io.Writer, sessions []models.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range sessions {
		row := []string{
			s.Date,
			string(s.PlannedType),
			optInt(s.PlannedMinutes),
			optFloat(s.PlannedKm),
			flatten(s.Focus),
			flatten(s.Instructions),
			strconv.Itoa(util.BoolToInt(s.Completed)),
			optInt(s.ActualMinutes),
			optFloat(s.ActualKm),
			optInt(s.RPE),
			flatten(s.Notes),
			flatten(s.Block),
			strconv.Itoa(util.BoolToInt(s.Active)),
			strconv.FormatInt(s.UpdatedAt, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func flatten(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "\r", " ")
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
