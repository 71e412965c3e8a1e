package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

// UpdateUserInput carries a partial user update; nil fields are left untouched.
type UpdateUserInput struct {
	DisplayName *string
	AvatarURL   *string
	IsActive    *bool
}

// UserService defines use-case operations over user accounts.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}
