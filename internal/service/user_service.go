package service

import (
	"context"

	"codehub/internal/models"
	"codehub/internal/repository"
	"codehub/internal/validation"
)

// UserService implements profile reads and updates.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a partial profile update; nil pointers leave
// fields unchanged. Credential rotation is not supported.
type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Email    *string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = *in.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
