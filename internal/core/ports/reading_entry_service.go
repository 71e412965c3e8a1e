package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// ReadingEntryService defines the use-case operations driving the reading
// entry lifecycle. Every operation takes the acting user: an entry belonging
// to someone else may only be touched by a role holding the matching "any"
// permission (edit_reading_entry, delete_reading_entry, view_reading_entry).
type ReadingEntryService interface {
	// AddToLibrary creates an entry at want_to_read for (userID, bookID).
	// Idempotent: an existing pair returns the existing entry unchanged with
	// created=false.
	AddToLibrary(ctx context.Context, actor *domain.User, userID, bookID uuid.UUID) (entry *domain.ReadingEntry, created bool, err error)

	Get(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error)
	ListForUser(ctx context.Context, actor *domain.User, userID uuid.UUID, status domain.ReadingStatus) ([]*domain.ReadingEntry, error)

	StartReading(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error)
	UpdateProgress(ctx context.Context, actor *domain.User, entryID uuid.UUID, progress float64) (*domain.ReadingEntry, error)
	Complete(ctx context.Context, actor *domain.User, entryID uuid.UUID, endDate *time.Time) (*domain.ReadingEntry, error)
	Abandon(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error)
	UpdateReview(ctx context.Context, actor *domain.User, entryID uuid.UUID, rating int, review *string) (*domain.ReadingEntry, error)
	Delete(ctx context.Context, actor *domain.User, entryID uuid.UUID) error
}
