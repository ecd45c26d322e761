// Package syncsvc reconciles the local collection with the remote copy. The
// exchange is deliberately forgiving: when the remote side cannot be read the
// local state simply stays authoritative until the next attempt.
package syncsvc

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"trainlock/internal/merge"
	"trainlock/internal/models"
	"trainlock/internal/store"
)

// Transport moves session documents to and from the remote copy. Both
// operations report plain ok; transport failures are not errors here.
//
//go:generate mockgen -source=service.go -destination=mock_transport_test.go -package=syncsvc
type Transport interface {
	Pull(ctx context.Context) ([]models.Session, bool)
	Push(ctx context.Context, version int, sessions []models.Session) bool
}

// Result describes what a reconciliation pass did.
type Result struct {
	Local  int
	Remote int
	Merged int
	Pulled bool
	Pushed bool
}

// Service runs the pull-merge-save-push cycle.
type Service struct {
	store  store.Store
	remote Transport
	log    zerolog.Logger
}

func New(st store.Store, remote Transport, log zerolog.Logger) *Service {
	return &Service{store: st, remote: remote, log: log}
}

// Reconcile merges the remote document into the local one and writes the
// result back on both sides. Local records are the first merge operand, so a
// timestamp tie keeps the remote version of a record. A failed pull leaves
// local state untouched and skips the push: pushing without having seen the
// remote copy could clobber edits made elsewhere.
func (s *Service) Reconcile(ctx context.Context) (Result, error) {
	version, local, err := s.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load local sessions: %w", err)
	}
	res := Result{Local: len(local)}

	remote, ok := s.remote.Pull(ctx)
	if !ok {
		s.log.Warn().Msg("remote unavailable, keeping local state")
		return res, nil
	}
	res.Pulled = true
	res.Remote = len(remote)

	merged, err := merge.Reconcile(local, remote)
	if err != nil {
		return res, fmt.Errorf("merge collections: %w", err)
	}
	res.Merged = len(merged)

	if err := s.store.Save(ctx, version, merged); err != nil {
		return res, fmt.Errorf("save merged sessions: %w", err)
	}
	res.Pushed = s.remote.Push(ctx, version, merged)
	if !res.Pushed {
		s.log.Warn().Msg("push failed, remote copy is stale")
	}

	s.log.Info().
		Int("local", res.Local).
		Int("remote", res.Remote).
		Int("merged", res.Merged).
		Bool("pushed", res.Pushed).
		Msg("reconciled")
	return res, nil
}
