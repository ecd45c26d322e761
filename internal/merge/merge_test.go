package merge

import (
	"errors"
	"testing"

	"trainlock/internal/models"
	"trainlock/internal/testutil"
)

func TestScoreWeights(t *testing.T) {
	empty := testutil.NewSession("a").Build()
	if got := Score(empty); got != 0 {
		t.Fatalf("expected score 0 for untouched record, got %d", got)
	}
	full := testutil.NewSession("b").Done().WithActuals(32, 6.5).WithRPE(7).WithNotes("felt good").Build()
	if got := Score(full); got != 20 {
		t.Fatalf("expected score 20 for fully recorded session, got %d", got)
	}
	blankNotes := testutil.NewSession("c").WithNotes("   ").Build()
	if got := Score(blankNotes); got != 0 {
		t.Fatalf("blank notes must not score, got %d", got)
	}
}

func TestByIDUnion(t *testing.T) {
	a := []models.Session{testutil.NewSession("one").Build()}
	b := []models.Session{testutil.NewSession("two").Build()}
	out, err := ByID(a, b)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected union of 2, got %d", len(out))
	}
}

func TestByIDIdempotent(t *testing.T) {
	x := []models.Session{
		testutil.NewSession("one").UpdatedAt(5).Build(),
		testutil.NewSession("two").UpdatedAt(9).Build(),
	}
	out, err := ByID(x, x)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if len(out) != len(x) {
		t.Fatalf("expected %d records, got %d", len(x), len(out))
	}
	for i, s := range out {
		if s.ID != x[i].ID || s.UpdatedAt != x[i].UpdatedAt {
			t.Fatalf("record %d changed under self-merge: %+v", i, s)
		}
	}
}

func TestByIDNewerTimestampWins(t *testing.T) {
	older := testutil.NewSession("same").WithNotes("ok").UpdatedAt(150).Build()
	newer := testutil.NewSession("same").Done().UpdatedAt(200).Build()

	for _, pair := range [][2][]models.Session{
		{{older}, {newer}},
		{{newer}, {older}},
	} {
		out, err := ByID(pair[0], pair[1])
		if err != nil {
			t.Fatalf("ByID failed: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 record, got %d", len(out))
		}
		if !out[0].Completed || out[0].UpdatedAt != 200 {
			t.Fatalf("expected the updatedAt=200 variant to win, got %+v", out[0])
		}
		// Last-writer-wins is whole-record: the note on the older edit is lost.
		if out[0].Notes != "" {
			t.Fatalf("expected no field-level merge, got notes %q", out[0].Notes)
		}
	}
}

func TestByIDTieKeepsSecondEncountered(t *testing.T) {
	first := testutil.NewSession("same").WithNotes("first").UpdatedAt(100).Build()
	second := testutil.NewSession("same").WithNotes("second").UpdatedAt(100).Build()
	out, err := ByID([]models.Session{first}, []models.Session{second})
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if out[0].Notes != "second" {
		t.Fatalf("tie must keep the second encountered, got %q", out[0].Notes)
	}
}

func TestByIDRejectsMissingID(t *testing.T) {
	_, err := ByID([]models.Session{{Date: "2025-01-06"}}, nil)
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestDedupeKeepsHigherScoreDespiteOlderTimestamp(t *testing.T) {
	planned := testutil.NewSession("a").On("2025-01-06").OfType(models.TypeInterval).
		Planned(30).WithFocus("6×2 min").UpdatedAt(100).Build()
	recorded := testutil.NewSession("b").On("2025-01-06").OfType(models.TypeInterval).
		Planned(30).WithFocus("6×2 min").Done().Build()
	recorded.ActualMinutes = planned.PlannedMinutes // score 14 vs 0
	recorded.UpdatedAt = 50

	out := Dedupe([]models.Session{planned, recorded})
	if len(out) != 1 {
		t.Fatalf("expected 1 record after dedupe, got %d", len(out))
	}
	if out[0].ID != "b" {
		t.Fatalf("expected the completed record to win on score, got %q", out[0].ID)
	}
}

func TestDedupeScoreTieFallsBackToTimestamp(t *testing.T) {
	older := testutil.NewSession("a").On("2025-02-03").Planned(40).UpdatedAt(10).Build()
	newer := testutil.NewSession("b").On("2025-02-03").Planned(40).UpdatedAt(20).Build()
	out := Dedupe([]models.Session{older, newer})
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected newer record on score tie, got %+v", out)
	}
}

func TestDedupeConvergence(t *testing.T) {
	x := []models.Session{
		testutil.NewSession("a").On("2025-01-08").Planned(30).Build(),
		testutil.NewSession("b").On("2025-01-06").Planned(30).Build(),
		testutil.NewSession("c").On("2025-01-06").Planned(30).Done().Build(),
		testutil.NewSession("d").On("2025-01-07").OfType(models.TypeStrength).Build(),
	}
	once := Dedupe(x)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not convergent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("dedupe not convergent at %d: %q vs %q", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDedupeSortsByDateAscending(t *testing.T) {
	out := Dedupe([]models.Session{
		testutil.NewSession("late").On("2025-03-10").Build(),
		testutil.NewSession("early").On("2025-01-06").Build(),
		testutil.NewSession("mid").On("2025-02-14").OfType(models.TypeModerate).Build(),
	})
	for i := 1; i < len(out); i++ {
		if out[i-1].Date > out[i].Date {
			t.Fatalf("output not sorted by date: %s before %s", out[i-1].Date, out[i].Date)
		}
	}
}

func TestReconcileCommutativeOnContent(t *testing.T) {
	a := []models.Session{
		testutil.NewSession("a1").On("2025-01-06").OfType(models.TypeInterval).Planned(30).WithFocus("hills").Build(),
		testutil.NewSession("shared").On("2025-01-07").Done().UpdatedAt(90).Build(),
	}
	b := []models.Session{
		testutil.NewSession("b1").On("2025-01-06").OfType(models.TypeInterval).Planned(30).WithFocus("hills").Done().Build(),
		testutil.NewSession("shared").On("2025-01-07").WithNotes("tweaked").UpdatedAt(80).Build(),
	}

	ab, err := Reconcile(a, b)
	if err != nil {
		t.Fatalf("Reconcile(a,b) failed: %v", err)
	}
	ba, err := Reconcile(b, a)
	if err != nil {
		t.Fatalf("Reconcile(b,a) failed: %v", err)
	}
	if len(ab) != len(ba) {
		t.Fatalf("merge not commutative on size: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if Key(ab[i]) != Key(ba[i]) || Score(ab[i]) != Score(ba[i]) {
			t.Fatalf("merge not commutative at %d: %q/%d vs %q/%d",
				i, Key(ab[i]), Score(ab[i]), Key(ba[i]), Score(ba[i]))
		}
	}
}

func TestReconcileRunsIdentityMergeFirst(t *testing.T) {
	// The same id edited on two devices must collapse by recency before the
	// semantic pass, otherwise the stale variant could win on score.
	local := testutil.NewSession("same").On("2025-01-06").Planned(30).
		Done().WithActuals(31, 6).UpdatedAt(100).Build()
	remote := testutil.NewSession("same").On("2025-01-06").Planned(30).UpdatedAt(200).Build()

	out, err := Reconcile([]models.Session{local}, []models.Session{remote})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Completed {
		t.Fatalf("identity merge must resolve by recency, not score")
	}
}
