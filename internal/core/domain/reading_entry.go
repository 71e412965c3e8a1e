package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReadingStatus represents the lifecycle state of a reading entry.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want_to_read"
	StatusInProgress ReadingStatus = "in_progress"
	StatusCompleted  ReadingStatus = "completed"
	StatusAbandoned  ReadingStatus = "abandoned"
)

// ValidStatus reports whether s is one of the known reading statuses.
func ValidStatus(s ReadingStatus) bool {
	switch s {
	case StatusWantToRead, StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

const maxReviewLength = 2000

// ReadingEntry is the record of one user's relationship to one book. The
// transition methods below mutate the aggregate in memory only; the caller
// is responsible for persisting the whole aggregate afterwards.
type ReadingEntry struct {
	ID        uuid.UUID     `json:"id" bson:"_id"`
	UserID    uuid.UUID     `json:"user_id" bson:"user_id"`
	BookID    uuid.UUID     `json:"book_id" bson:"book_id"`
	Status    ReadingStatus `json:"status" bson:"status"`
	Progress  float64       `json:"progress" bson:"progress"`
	StartDate *time.Time    `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate   *time.Time    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Rating    *int          `json:"rating,omitempty" bson:"rating,omitempty"`
	Review    string        `json:"review,omitempty" bson:"review,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// NewReadingEntry creates an entry in its initial state: want_to_read,
// zero progress, no dates.
func NewReadingEntry(userID, bookID uuid.UUID, now time.Time) *ReadingEntry {
	return &ReadingEntry{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Status:    StatusWantToRead,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StartReading moves the entry to in_progress. The start date is set to now
// only when unset, so calling twice never overwrites the original date. Any
// earlier completion date is discarded: a book being read has not been
// finished.
func (e *ReadingEntry) StartReading(now time.Time) {
	if e.Status != StatusInProgress {
		e.Status = StatusInProgress
	}
	e.EndDate = nil
	if e.StartDate == nil {
		e.StartDate = &now
	}
}

// UpdateProgress sets the progress percentage and derives the status:
//
//	0        → back to want_to_read, start date cleared
//	(0, 100) → in_progress, start date backfilled with now if unset
//	100      → delegates to MarkCompleted
func (e *ReadingEntry) UpdateProgress(percentage float64, now time.Time) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}

	e.Progress = percentage

	switch {
	case percentage == 0:
		if e.Status != StatusWantToRead {
			e.Status = StatusWantToRead
			e.StartDate = nil
			e.EndDate = nil
		}
	case percentage < 100:
		e.Status = StatusInProgress
		e.EndDate = nil
		if e.StartDate == nil {
			e.StartDate = &now
		}
	default:
		e.MarkCompleted(nil, now)
	}
	return nil
}

// MarkCompleted finishes the entry. Already-completed entries are left
// untouched. When the entry was never started, the start date is backfilled
// from the entry's creation timestamp rather than now.
func (e *ReadingEntry) MarkCompleted(endDate *time.Time, now time.Time) {
	if e.Status == StatusCompleted {
		return
	}

	e.Status = StatusCompleted
	e.Progress = 100
	if endDate != nil {
		e.EndDate = endDate
	} else {
		e.EndDate = &now
	}
	if e.StartDate == nil {
		created := e.CreatedAt
		e.StartDate = &created
	}
}

// MarkAbandoned sets the status to abandoned unconditionally. Progress and
// dates are preserved so the entry can be resumed later.
func (e *ReadingEntry) MarkAbandoned() {
	e.Status = StatusAbandoned
}

// SetReview records a rating and optional review text. Reviews are
// independent of the reading lifecycle and never trigger a status change.
func (e *ReadingEntry) SetReview(rating int, review *string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if review != nil && len(*review) > maxReviewLength {
		return fmt.Errorf("%w: review must be %d characters or less", ErrValidation, maxReviewLength)
	}

	e.Rating = &rating
	if review != nil {
		e.Review = *review
	}
	return nil
}

// CheckInvariants verifies the rest-state invariants that must hold after
// every transition. A violation indicates a bug in the state machine, not
// bad user input.
func (e *ReadingEntry) CheckInvariants() error {
	if e.StartDate != nil && e.EndDate != nil && e.EndDate.Before(*e.StartDate) {
		return fmt.Errorf("%w: end_date cannot be earlier than start_date", ErrValidation)
	}
	if e.Status == StatusCompleted {
		if e.Progress != 100 {
			return fmt.Errorf("%w: progress must be 100 when status is completed", ErrValidation)
		}
		if e.EndDate == nil {
			return fmt.Errorf("%w: end_date is required when status is completed", ErrValidation)
		}
	}
	if e.Status == StatusInProgress && e.StartDate == nil {
		return fmt.Errorf("%w: start_date is required when status is in_progress", ErrValidation)
	}
	return nil
}
