package testutil

import (
	"trainlock/internal/models"
	"trainlock/internal/util"
)

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession(id string) *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:          id,
			Date:        "2025-01-06",
			PlannedType: models.TypeLight,
			Active:      true,
			UpdatedAt:   1,
		},
	}
}

func (b *SessionBuilder) On(date string) *SessionBuilder {
	b.session.Date = date
	return b
}

func (b *SessionBuilder) OfType(t models.SessionType) *SessionBuilder {
	b.session.PlannedType = t
	return b
}

func (b *SessionBuilder) Planned(minutes int) *SessionBuilder {
	b.session.PlannedMinutes = util.Ptr(minutes)
	return b
}

func (b *SessionBuilder) PlannedDistance(km float64) *SessionBuilder {
	b.session.PlannedKm = util.Ptr(km)
	return b
}

func (b *SessionBuilder) WithFocus(focus string) *SessionBuilder {
	b.session.Focus = focus
	return b
}

func (b *SessionBuilder) Done() *SessionBuilder {
	b.session.Completed = true
	return b
}

func (b *SessionBuilder) WithActuals(minutes int, km float64) *SessionBuilder {
	b.session.ActualMinutes = util.Ptr(minutes)
	b.session.ActualKm = util.Ptr(km)
	return b
}

func (b *SessionBuilder) WithRPE(rpe int) *SessionBuilder {
	b.session.RPE = util.Ptr(rpe)
	return b
}

func (b *SessionBuilder) WithNotes(notes string) *SessionBuilder {
	b.session.Notes = notes
	return b
}

func (b *SessionBuilder) InBlock(block string) *SessionBuilder {
	b.session.Block = block
	return b
}

func (b *SessionBuilder) Inactive() *SessionBuilder {
	b.session.Active = false
	return b
}

func (b *SessionBuilder) UpdatedAt(ts int64) *SessionBuilder {
	b.session.UpdatedAt = ts
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
