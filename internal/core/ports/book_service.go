package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// CreateBookInput carries the data needed to add a book to the catalog.
type CreateBookInput struct {
	Title          string
	Author         string
	ISBN           string
	OLID           string
	CoverURL       string
	OpenLibraryURL string
}

// UpdateBookInput carries a partial book update; nil fields are left untouched.
type UpdateBookInput struct {
	Title          *string
	Author         *string
	ISBN           *string
	OLID           *string
	CoverURL       *string
	OpenLibraryURL *string
}

// BookService defines use-case operations over the book catalog. Mutations
// take the acting user so ownership can be enforced: editing or deleting a
// book someone else created requires the corresponding "any" permission.
type BookService interface {
	Create(ctx context.Context, actor *domain.User, input CreateBookInput) (*domain.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Book, error)
	Search(ctx context.Context, query string) ([]*domain.Book, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}
