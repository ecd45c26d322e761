// Package store persists the canonical session collection. The merge engine
// and generator stay pure; this is the single place records are written.
package store

import (
	"context"

	"trainlock/internal/models"
)

// ActualsUpdate carries the user-recorded outcome of a session. Nil fields are
// left untouched; Notes always overwrite.
type ActualsUpdate struct {
	Minutes *int
	Km      *float64
	RPE     *int
	Notes   string
}

// Store defines persistence of the canonical collection plus the field-level
// mutations the UI performs. Every mutation refreshes the record's UpdatedAt.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=store
type Store interface {
	Load(ctx context.Context) (version int, sessions []models.Session, err error)
	Save(ctx context.Context, version int, sessions []models.Session) error
	HasData(ctx context.Context) bool
	SetCompleted(ctx context.Context, id string, completed bool) error
	SetActuals(ctx context.Context, id string, update ActualsUpdate) error
	SetActive(ctx context.Context, id string, active bool) error
	Close() error
}

var _ Store = (*SQLite)(nil)
