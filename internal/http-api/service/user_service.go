package service

import (
	"context"
	"errors"

	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserUpdate carries the profile fields a user may change. Nil means
// leave unchanged.
type UserUpdate struct {
	Email    *string
	Language *string
	Age      *int
	Platform *string
}

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if update.Email != nil {
		if existing, err := s.users.FindByEmail(ctx, *update.Email); err == nil && existing.ID != id {
			return nil, ErrEmailInUse
		}
		user.Email = *update.Email
	}
	if update.Language != nil {
		user.Language = *update.Language
	}
	if update.Age != nil && *update.Age >= 0 {
		user.Age = *update.Age
	}
	if update.Platform != nil {
		user.Platform = *update.Platform
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}
