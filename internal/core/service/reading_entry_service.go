package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

// ReadingEntryService drives the reading-entry lifecycle. Transitions are
// applied in memory by the domain aggregate and then committed whole, so a
// partially applied transition is never observable.
type ReadingEntryService struct {
	entries ports.ReadingEntryRepository
	users   ports.UserRepository
	books   ports.BookRepository
	logger  zerolog.Logger
}

func NewReadingEntryService(
	entries ports.ReadingEntryRepository,
	users ports.UserRepository,
	books ports.BookRepository,
	logger zerolog.Logger,
) *ReadingEntryService {
	return &ReadingEntryService{
		entries: entries,
		users:   users,
		books:   books,
		logger:  logger,
	}
}

// AddToLibrary creates an entry at want_to_read for (userID, bookID), or
// returns the existing one with created=false: re-adding a book never
// duplicates the pair. The check here is a read; a concurrent add for the
// same pair loses the race and hits the storage unique index instead.
func (s *ReadingEntryService) AddToLibrary(ctx context.Context, actor *domain.User, userID, bookID uuid.UUID) (*domain.ReadingEntry, bool, error) {
	if err := ownershipCheck(actor, userID, domain.PermEditReadingEntry, "library"); err != nil {
		return nil, false, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, false, err
	}
	if _, err := s.books.FindByID(ctx, bookID); err != nil {
		return nil, false, err
	}

	existing, err := s.entries.FindByUserAndBook(ctx, userID, bookID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, domain.ErrEntryNotFound):
		return nil, false, fmt.Errorf("add to library: %w", err)
	}

	entry := domain.NewReadingEntry(userID, bookID, time.Now().UTC())
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, false, fmt.Errorf("add to library: %w", err)
	}

	s.logger.Info().
		Str("entry_id", entry.ID.String()).
		Str("user_id", userID.String()).
		Str("book_id", bookID.String()).
		Msg("book added to library")

	return entry, true, nil
}

// Get returns a single entry. Viewing does not require ownership; the
// view_reading_entry permission is granted to all roles.
func (s *ReadingEntryService) Get(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
	return s.entries.FindByID(ctx, entryID)
}

// ListForUser returns a user's entries, optionally filtered by status.
// Listing another user's library requires the view_all_users permission.
func (s *ReadingEntryService) ListForUser(ctx context.Context, actor *domain.User, userID uuid.UUID, status domain.ReadingStatus) ([]*domain.ReadingEntry, error) {
	if err := ownershipCheck(actor, userID, domain.PermViewAllUsers, "library"); err != nil {
		return nil, err
	}
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown reading status %q", domain.ErrValidation, status)
	}
	return s.entries.ListByUser(ctx, userID, status)
}

func (s *ReadingEntryService) StartReading(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
	return s.transition(ctx, actor, entryID, "start_reading", func(e *domain.ReadingEntry, now time.Time) error {
		e.StartReading(now)
		return nil
	})
}

func (s *ReadingEntryService) UpdateProgress(ctx context.Context, actor *domain.User, entryID uuid.UUID, progress float64) (*domain.ReadingEntry, error) {
	return s.transition(ctx, actor, entryID, "update_progress", func(e *domain.ReadingEntry, now time.Time) error {
		return e.UpdateProgress(progress, now)
	})
}

func (s *ReadingEntryService) Complete(ctx context.Context, actor *domain.User, entryID uuid.UUID, endDate *time.Time) (*domain.ReadingEntry, error) {
	return s.transition(ctx, actor, entryID, "complete", func(e *domain.ReadingEntry, now time.Time) error {
		e.MarkCompleted(endDate, now)
		return nil
	})
}

func (s *ReadingEntryService) Abandon(ctx context.Context, actor *domain.User, entryID uuid.UUID) (*domain.ReadingEntry, error) {
	return s.transition(ctx, actor, entryID, "abandon", func(e *domain.ReadingEntry, now time.Time) error {
		e.MarkAbandoned()
		return nil
	})
}

func (s *ReadingEntryService) UpdateReview(ctx context.Context, actor *domain.User, entryID uuid.UUID, rating int, review *string) (*domain.ReadingEntry, error) {
	return s.transition(ctx, actor, entryID, "update_review", func(e *domain.ReadingEntry, now time.Time) error {
		return e.SetReview(rating, review)
	})
}

func (s *ReadingEntryService) Delete(ctx context.Context, actor *domain.User, entryID uuid.UUID) error {
	entry, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := ownershipCheck(actor, entry.UserID, domain.PermDeleteReadingEntry, "reading entry"); err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete reading entry: %w", err)
	}
	s.logger.Info().Str("entry_id", entryID.String()).Msg("reading entry deleted")
	return nil
}

// transition is the shared read-modify-write path for every lifecycle
// mutation: load, ownership check, apply, verify invariants, commit whole
// aggregate. Invariant verification runs before the write so an invalid
// rest state (for example an explicit end date before the start date) is
// rejected rather than persisted.
func (s *ReadingEntryService) transition(
	ctx context.Context,
	actor *domain.User,
	entryID uuid.UUID,
	name string,
	apply func(*domain.ReadingEntry, time.Time) error,
) (*domain.ReadingEntry, error) {
	entry, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if err := ownershipCheck(actor, entry.UserID, domain.PermEditReadingEntry, "reading entry"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := apply(entry, now); err != nil {
		return nil, err
	}
	if err := entry.CheckInvariants(); err != nil {
		return nil, err
	}
	entry.UpdatedAt = now

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	s.logger.Debug().
		Str("entry_id", entry.ID.String()).
		Str("op", name).
		Str("status", string(entry.Status)).
		Msg("reading entry transition committed")

	return entry, nil
}
