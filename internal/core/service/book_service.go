package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

// BookService implements catalog management. Books are shared records, but
// edits and deletes are restricted to the creator unless the actor's role
// grants the catalog-wide permission.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

func (s *BookService) Create(ctx context.Context, actor *domain.User, input ports.CreateBookInput) (*domain.Book, error) {
	if input.Title == "" || input.Author == "" {
		return nil, fmt.Errorf("%w: title and author are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	book := &domain.Book{
		ID:             uuid.New(),
		Title:          input.Title,
		Author:         input.Author,
		ISBN:           input.ISBN,
		OLID:           input.OLID,
		CoverURL:       input.CoverURL,
		OpenLibraryURL: input.OpenLibraryURL,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.logger.Info().Str("book_id", book.ID.String()).Str("title", book.Title).Msg("book created")
	return book, nil
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) List(ctx context.Context, skip, limit int) ([]*domain.Book, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *BookService) Search(ctx context.Context, query string) ([]*domain.Book, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", domain.ErrValidation)
	}
	return s.repo.Search(ctx, query)
}

func (s *BookService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateBookInput) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownershipCheck(actor, book.CreatedBy, domain.PermEditBook, "book"); err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.ISBN != nil {
		book.ISBN = *input.ISBN
	}
	if input.OLID != nil {
		book.OLID = *input.OLID
	}
	if input.CoverURL != nil {
		book.CoverURL = *input.CoverURL
	}
	if input.OpenLibraryURL != nil {
		book.OpenLibraryURL = *input.OpenLibraryURL
	}
	if book.Title == "" || book.Author == "" {
		return nil, fmt.Errorf("%w: title and author are required", domain.ErrValidation)
	}
	book.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownershipCheck(actor, book.CreatedBy, domain.PermDeleteBook, "book"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	s.logger.Info().Str("book_id", id.String()).Msg("book deleted")
	return nil
}

// ownershipCheck enforces the "own resource" rule centrally: an actor may
// touch a resource they do not own only when their role grants the
// resource-wide permission. Every "own" permission call site funnels through
// here rather than assuming the router-level permission check was enough.
func ownershipCheck(actor *domain.User, ownerID uuid.UUID, anyPerm domain.Permission, resource string) error {
	if actor.ID == ownerID {
		return nil
	}
	if domain.HasPermission(actor.Role, anyPerm) {
		return nil
	}
	return fmt.Errorf("%w: %s belongs to another user", domain.ErrForbidden, resource)
}
