package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// ReadingEntryRepository defines persistence operations for reading entries.
// Update replaces the whole aggregate so a transition is committed atomically.
type ReadingEntryRepository interface {
	Create(ctx context.Context, entry *domain.ReadingEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ReadingEntry, error)
	// FindByUserAndBook backs the idempotent add-to-library check. Returns
	// domain.ErrEntryNotFound when no entry exists for the pair.
	FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.ReadingEntry, error)
	// ListByUser returns a user's entries, optionally filtered by status
	// (empty status = all).
	ListByUser(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) ([]*domain.ReadingEntry, error)
	Update(ctx context.Context, entry *domain.ReadingEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
