package models

// SessionType enumerates the possible kinds of a planned session.
type SessionType string

const (
	TypeLight    SessionType = "Light"
	TypeInterval SessionType = "Interval"
	TypeStrength SessionType = "Strength"
	TypeModerate SessionType = "Moderate"
	TypeLongRun  SessionType = "LongRun"
)

// KnownType reports whether t belongs to the closed session-type set.
func KnownType(t SessionType) bool {
	switch t {
	case TypeLight, TypeInterval, TypeStrength, TypeModerate, TypeLongRun:
		return true
	}
	return false
}

// Session is one dated entry of the training plan. The ID is assigned once at
// creation and never reassigned; Date is locked once the generator materializes
// the record. Only the status/actuals fields are user-editable afterwards, and
// every mutation must refresh UpdatedAt.
type Session struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"` // YYYY-MM-DD, compares lexicographically
	PlannedType    SessionType `json:"plannedType"`
	PlannedMinutes *int        `json:"plannedMinutes,omitempty"`
	PlannedKm      *float64    `json:"plannedKm,omitempty"`
	Focus          string      `json:"focus,omitempty"`
	Instructions   string      `json:"instructions,omitempty"`
	Completed      bool        `json:"completed"`
	ActualMinutes  *int        `json:"actualMinutes,omitempty"`
	ActualKm       *float64    `json:"actualKm,omitempty"`
	RPE            *int        `json:"rpe,omitempty"` // 1-10
	Notes          string      `json:"notes,omitempty"`
	Block          string      `json:"block,omitempty"`
	Active         bool        `json:"active"`
	UpdatedAt      int64       `json:"updatedAt"` // unix milliseconds, logical clock for merge
}

// Document wraps the canonical collection with a schema version. The version
// travels with the data; nothing below the store interprets it.
type Document struct {
	Version int       `json:"version"`
	Entries []Session `json:"entries"`
}
