package domain

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(24 * time.Hour)
	t2 = t0.Add(48 * time.Hour)
)

func newEntry() *ReadingEntry {
	return NewReadingEntry(uuid.New(), uuid.New(), t0)
}

// ---------------------------------------------------------------------------
// Creation
// ---------------------------------------------------------------------------

func TestNewReadingEntry_InitialState(t *testing.T) {
	e := newEntry()
	if e.Status != StatusWantToRead {
		t.Errorf("expected initial status %q, got %q", StatusWantToRead, e.Status)
	}
	if e.Progress != 0 {
		t.Errorf("expected progress 0, got %v", e.Progress)
	}
	if e.StartDate != nil || e.EndDate != nil {
		t.Error("new entry must have no dates")
	}
}

// ---------------------------------------------------------------------------
// StartReading
// ---------------------------------------------------------------------------

func TestStartReading_SetsStatusAndDate(t *testing.T) {
	e := newEntry()
	e.StartReading(t1)

	if e.Status != StatusInProgress {
		t.Errorf("expected %q, got %q", StatusInProgress, e.Status)
	}
	if e.StartDate == nil || !e.StartDate.Equal(t1) {
		t.Errorf("expected start date %v, got %v", t1, e.StartDate)
	}
}

func TestStartReading_Twice_KeepsOriginalStartDate(t *testing.T) {
	e := newEntry()
	e.StartReading(t1)
	e.StartReading(t2)

	if !e.StartDate.Equal(t1) {
		t.Errorf("second call must not overwrite start date: got %v, want %v", e.StartDate, t1)
	}
	if e.Status != StatusInProgress {
		t.Errorf("expected %q, got %q", StatusInProgress, e.Status)
	}
}

// ---------------------------------------------------------------------------
// UpdateProgress
// ---------------------------------------------------------------------------

func TestUpdateProgress_OutOfRange(t *testing.T) {
	e := newEntry()
	for _, pct := range []float64{-1, -0.01, 100.01, 150} {
		if err := e.UpdateProgress(pct, t1); !errors.Is(err, ErrValidation) {
			t.Errorf("progress %v: expected ErrValidation, got %v", pct, err)
		}
	}
}

func TestUpdateProgress_Partial_SetsInProgress(t *testing.T) {
	e := newEntry()
	if err := e.UpdateProgress(42.5, t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != StatusInProgress {
		t.Errorf("expected %q, got %q", StatusInProgress, e.Status)
	}
	if e.Progress != 42.5 {
		t.Errorf("expected progress 42.5, got %v", e.Progress)
	}
	if e.StartDate == nil || !e.StartDate.Equal(t1) {
		t.Errorf("expected start date %v, got %v", t1, e.StartDate)
	}
}

func TestUpdateProgress_Zero_ResetsToWantToRead(t *testing.T) {
	e := newEntry()
	e.StartReading(t1)

	if err := e.UpdateProgress(0, t2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != StatusWantToRead {
		t.Errorf("expected %q, got %q", StatusWantToRead, e.Status)
	}
	if e.StartDate != nil {
		t.Errorf("start date must be cleared, got %v", e.StartDate)
	}
}

func TestUpdateProgress_Hundred_EquivalentToComplete(t *testing.T) {
	e := newEntry()
	if err := e.UpdateProgress(100, t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != StatusCompleted {
		t.Errorf("expected %q, got %q", StatusCompleted, e.Status)
	}
	if e.Progress != 100 {
		t.Errorf("expected progress 100, got %v", e.Progress)
	}
	if e.EndDate == nil {
		t.Error("end date must be set on completion")
	}
}

// ---------------------------------------------------------------------------
// MarkCompleted
// ---------------------------------------------------------------------------

func TestMarkCompleted_BackfillsStartDateFromCreation(t *testing.T) {
	e := newEntry()
	e.MarkCompleted(nil, t2)

	if e.StartDate == nil || !e.StartDate.Equal(e.CreatedAt) {
		t.Errorf("start date must be backfilled from creation time %v, got %v", e.CreatedAt, e.StartDate)
	}
	if e.EndDate == nil || !e.EndDate.Equal(t2) {
		t.Errorf("expected end date %v, got %v", t2, e.EndDate)
	}
}

func TestMarkCompleted_ExplicitEndDate(t *testing.T) {
	e := newEntry()
	e.MarkCompleted(&t1, t2)

	if !e.EndDate.Equal(t1) {
		t.Errorf("expected end date %v, got %v", t1, e.EndDate)
	}
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	e := newEntry()
	e.MarkCompleted(&t1, t1)
	e.MarkCompleted(&t2, t2)

	if !e.EndDate.Equal(t1) {
		t.Errorf("second completion must be a no-op: end date changed to %v", e.EndDate)
	}
}

// ---------------------------------------------------------------------------
// MarkAbandoned
// ---------------------------------------------------------------------------

func TestMarkAbandoned_KeepsProgressAndDates(t *testing.T) {
	e := newEntry()
	e.StartReading(t1)
	_ = e.UpdateProgress(60, t1)

	e.MarkAbandoned()

	if e.Status != StatusAbandoned {
		t.Errorf("expected %q, got %q", StatusAbandoned, e.Status)
	}
	if e.Progress != 60 {
		t.Errorf("abandon must not touch progress, got %v", e.Progress)
	}
	if e.StartDate == nil {
		t.Error("abandon must not clear start date")
	}
}

// ---------------------------------------------------------------------------
// SetReview
// ---------------------------------------------------------------------------

func TestSetReview_RatingBounds(t *testing.T) {
	e := newEntry()
	for _, rating := range []int{0, -1, 6, 42} {
		if err := e.SetReview(rating, nil); !errors.Is(err, ErrValidation) {
			t.Errorf("rating %d: expected ErrValidation, got %v", rating, err)
		}
	}
	if e.Rating != nil {
		t.Error("failed review must not set rating")
	}
}

func TestSetReview_TooLong(t *testing.T) {
	e := newEntry()
	long := make([]byte, maxReviewLength+1)
	for i := range long {
		long[i] = 'a'
	}
	text := string(long)
	if err := e.SetReview(3, &text); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for oversized review, got %v", err)
	}
}

func TestSetReview_DoesNotTouchLifecycle(t *testing.T) {
	e := newEntry()
	e.StartReading(t1)
	_ = e.UpdateProgress(30, t1)

	text := "ok"
	if err := e.SetReview(3, &text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Status != StatusInProgress {
		t.Errorf("review must not change status, got %q", e.Status)
	}
	if e.Progress != 30 {
		t.Errorf("review must not change progress, got %v", e.Progress)
	}
	if e.Rating == nil || *e.Rating != 3 {
		t.Errorf("expected rating 3, got %v", e.Rating)
	}
	if e.Review != "ok" {
		t.Errorf("expected review %q, got %q", "ok", e.Review)
	}
}

// ---------------------------------------------------------------------------
// Invariants under random operation sequences
// ---------------------------------------------------------------------------

func TestInvariants_RandomOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		e := newEntry()
		now := t0

		for step := 0; step < 25; step++ {
			now = now.Add(time.Hour)

			switch rng.Intn(5) {
			case 0:
				e.StartReading(now)
			case 1:
				_ = e.UpdateProgress(float64(rng.Intn(101)), now)
			case 2:
				e.MarkCompleted(nil, now)
			case 3:
				e.MarkAbandoned()
			case 4:
				_ = e.SetReview(1+rng.Intn(5), nil)
			}

			if err := e.CheckInvariants(); err != nil {
				t.Fatalf("run %d step %d: invariant violated after op: %v (entry %+v)", run, step, err, e)
			}
		}
	}
}
