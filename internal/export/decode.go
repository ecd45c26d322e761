package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"trainlock/internal/config"
	"trainlock/internal/models"
	"trainlock/internal/util"
)

// Decode reads either a bare list of records or a {version, entries} document
// wrapper. Malformed or missing optional fields are treated as absent, never
// rejected; records missing updatedAt are stamped with now so they can take
// part in the merge. Records without a usable date are dropped.
func Decode(raw []byte, now time.Time) (models.Document, error) {
	doc := models.Document{Version: config.SchemaVersion}

	var entries []json.RawMessage
	var wrapper struct {
		Version *int              `json:"version"`
		Entries []json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Entries != nil {
		if wrapper.Version != nil {
			doc.Version = *wrapper.Version
		}
		entries = wrapper.Entries
	} else if err := json.Unmarshal(raw, &entries); err != nil {
		return models.Document{}, fmt.Errorf("decode document: %w", err)
	}

	stamp := now.UnixMilli()
	for _, rawEntry := range entries {
		if rec, ok := decodeSession(rawEntry, stamp); ok {
			doc.Entries = append(doc.Entries, rec)
		}
	}
	return doc, nil
}

func decodeSession(raw json.RawMessage, stamp int64) (models.Session, bool) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return models.Session{}, false
	}
	rec := models.Session{Active: true}
	rec.Date = strings.TrimSpace(asString(m["date"]))
	if rec.Date == "" {
		return models.Session{}, false
	}
	rec.ID = strings.TrimSpace(asString(m["id"]))
	if rec.ID == "" {
		// Foreign data without identity becomes a fresh record; the semantic
		// dedupe pass decides whether it duplicates an existing session.
		rec.ID = uuid.NewString()
	}
	rec.PlannedType = models.SessionType(asString(m["plannedType"]))
	rec.Focus = asString(m["focus"])
	rec.Instructions = asString(m["instructions"])
	rec.Notes = asString(m["notes"])
	rec.Block = asString(m["block"])
	if v, ok := asInt(m["plannedMinutes"]); ok {
		rec.PlannedMinutes = util.Ptr(v)
	}
	if v, ok := asFloat(m["plannedKm"]); ok {
		rec.PlannedKm = util.Ptr(v)
	}
	if v, ok := asInt(m["actualMinutes"]); ok {
		rec.ActualMinutes = util.Ptr(v)
	}
	if v, ok := asFloat(m["actualKm"]); ok {
		rec.ActualKm = util.Ptr(v)
	}
	if v, ok := asInt(m["rpe"]); ok && v >= 1 && v <= 10 {
		rec.RPE = util.Ptr(v)
	}
	if b, ok := m["completed"].(bool); ok {
		rec.Completed = b
	}
	if b, ok := m["active"].(bool); ok {
		rec.Active = b
	}
	if ts, ok := asInt64(m["updatedAt"]); ok && ts > 0 {
		rec.UpdatedAt = ts
	} else {
		rec.UpdatedAt = stamp
	}
	return rec, true
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asInt64(v interface{}) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
