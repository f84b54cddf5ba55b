package service

import (
	"context"
	"errors"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

// UserService はログイン中ユーザーの解決を行う
type UserService interface {
	// Current returns the user behind the caller in ctx. Unknown or
	// suspended users yield ErrUnauthorized.
	Current(ctx context.Context) (*model.User, error)
}

type userServiceImpl struct {
	users repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userServiceImpl{users: users}
}

func (s *userServiceImpl) Current(ctx context.Context) (*model.User, error) {
	caller, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	u, err := s.users.FindByID(ctx, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if u.IsSuspended() {
		return nil, ErrUnauthorized
	}
	return u, nil
}
