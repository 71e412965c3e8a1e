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

const maxListLimit = 100

// UserService implements account administration.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

// Update applies a partial profile update; nil fields are left untouched.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Deactivate disables an account. A deactivated user fails authentication
// with domain.ErrInactiveAccount on the next request.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.setActive(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id.String()).Msg("user deactivated")
	return nil
}

// Reactivate re-enables a previously deactivated account.
func (s *UserService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.setActive(ctx, id, true); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id.String()).Msg("user reactivated")
	return nil
}

func (s *UserService) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}
