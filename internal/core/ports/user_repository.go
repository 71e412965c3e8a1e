package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// ListUsersFilter carries pagination and filtering for user listings.
type ListUsersFilter struct {
	Skip       int
	Limit      int
	ActiveOnly bool
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
}
