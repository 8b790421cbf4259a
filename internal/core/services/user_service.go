package services

import (
	"context"
	"errors"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles user profile and listing logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByUsername returns a user profile by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsersResult represents a page of users
type ListUsersResult struct {
	Users []*models.UserResponse
	Total int64
}

// List returns a page of all registered users. Admin-only at the guard
// level; this service does not re-check the role.
func (s *UserService) List(ctx context.Context, offset, limit int) (*ListUsersResult, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return &ListUsersResult{Users: responses, Total: total}, nil
}
