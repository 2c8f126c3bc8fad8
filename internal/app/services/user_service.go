package services

import (
	"context"
	"strings"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// UserService handles user administration and profile updates
type UserService interface {
	GetByID(ctx context.Context, actor Actor, id int64) (*models.User, error)
	List(ctx context.Context, page, pageSize int) ([]*models.User, int64, error)
	Update(ctx context.Context, actor Actor, id int64, req dto.UpdateUserRequest) (*models.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo userStore
}

// NewUserService creates a new user service
func NewUserService(userRepo userStore) UserService {
	return &userService{userRepo: userRepo}
}

// GetByID retrieves a user. Non-admins may only look up their own account.
func (s *userService) GetByID(ctx context.Context, actor Actor, id int64) (*models.User, error) {
	if id != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves a page of users
func (s *userService) List(ctx context.Context, page, pageSize int) ([]*models.User, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	users, err := s.userRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update edits a user's name and email. Non-admins may only edit themselves.
func (s *userService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	if id != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetActive enables or disables an account. Disabled accounts cannot log in.
func (s *userService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		return err
	}

	logger.Info().Int64("userId", id).Bool("active", active).Msg("User active flag changed")
	return nil
}

// Delete removes a user account. Accounts that still own events are refused.
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
