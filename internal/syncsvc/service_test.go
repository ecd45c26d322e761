package syncsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"trainlock/internal/models"
	"trainlock/internal/store"
	"trainlock/internal/testutil"
	"trainlock/internal/util"
)

// memStore is an in-memory Store; only the methods Reconcile touches matter.
type memStore struct {
	version  int
	sessions []models.Session
	loadErr  error
	saveErr  error
	saved    bool
}

func (m *memStore) Load(ctx context.Context) (int, []models.Session, error) {
	if m.loadErr != nil {
		return 0, nil, m.loadErr
	}
	return m.version, m.sessions, nil
}

func (m *memStore) Save(ctx context.Context, version int, sessions []models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.version = version
	m.sessions = sessions
	m.saved = true
	return nil
}

func (m *memStore) HasData(ctx context.Context) bool { return len(m.sessions) > 0 }

func (m *memStore) SetCompleted(ctx context.Context, id string, completed bool) error { return nil }

func (m *memStore) SetActuals(ctx context.Context, id string, update store.ActualsUpdate) error {
	return nil
}

func (m *memStore) SetActive(ctx context.Context, id string, active bool) error { return nil }

func (m *memStore) Close() error { return nil }

func TestReconcileMergesAndPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := []models.Session{
		testutil.NewSession("a").On("2025-01-06").UpdatedAt(100).Build(),
		testutil.NewSession("b").On("2025-01-07").UpdatedAt(100).Build(),
	}
	remote := []models.Session{
		testutil.NewSession("b").On("2025-01-07").Done().UpdatedAt(200).Build(),
		testutil.NewSession("c").On("2025-01-08").UpdatedAt(50).Build(),
	}

	st := &memStore{version: 1, sessions: local}
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Pull(gomock.Any()).Return(remote, true)
	transport.EXPECT().Push(gomock.Any(), 1, gomock.Any()).Return(true)

	res, err := New(st, transport, util.NopLogger()).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Local != 2 || res.Remote != 2 || res.Merged != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.Pulled || !res.Pushed {
		t.Fatalf("expected pull and push to succeed: %+v", res)
	}

	if !st.saved || len(st.sessions) != 3 {
		t.Fatalf("merged collection not saved: %+v", st.sessions)
	}
	byID := map[string]models.Session{}
	for _, s := range st.sessions {
		byID[s.ID] = s
	}
	if !byID["b"].Completed {
		t.Fatalf("newer remote record must win: %+v", byID["b"])
	}
}

func TestReconcileKeepsLocalWhenPullFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &memStore{version: 1, sessions: []models.Session{
		testutil.NewSession("a").On("2025-01-06").Build(),
	}}
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Pull(gomock.Any()).Return(nil, false)
	// No Push: a failed pull must not overwrite the remote copy.

	res, err := New(st, transport, util.NopLogger()).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Pulled || res.Pushed {
		t.Fatalf("expected no remote exchange: %+v", res)
	}
	if st.saved {
		t.Fatalf("local state must stay untouched")
	}
}

func TestReconcileReportsFailedPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &memStore{version: 1}
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Pull(gomock.Any()).Return([]models.Session{
		testutil.NewSession("a").On("2025-01-06").Build(),
	}, true)
	transport.EXPECT().Push(gomock.Any(), 1, gomock.Any()).Return(false)

	res, err := New(st, transport, util.NopLogger()).Reconcile(context.Background())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Pushed {
		t.Fatalf("push failure must be reported")
	}
	if !st.saved {
		t.Fatalf("merge result must still be saved locally")
	}
}

func TestReconcileLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &memStore{loadErr: errors.New("disk gone")}
	transport := NewMockTransport(ctrl)

	if _, err := New(st, transport, util.NopLogger()).Reconcile(context.Background()); err == nil {
		t.Fatalf("expected load error to propagate")
	}
}

func TestReconcileRejectsRemoteRecordWithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &memStore{version: 1}
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Pull(gomock.Any()).Return([]models.Session{
		{Date: "2025-01-06", PlannedType: models.TypeLight, Active: true, UpdatedAt: 1},
	}, true)

	if _, err := New(st, transport, util.NopLogger()).Reconcile(context.Background()); err == nil {
		t.Fatalf("expected merge error for record without id")
	}
	if st.saved {
		t.Fatalf("nothing must be saved on merge failure")
	}
}
