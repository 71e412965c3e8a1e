package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// BookRepository defines persistence operations for the book catalog.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Book, error)
	// Search performs a case-insensitive partial match on title or author.
	Search(ctx context.Context, query string) ([]*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}
