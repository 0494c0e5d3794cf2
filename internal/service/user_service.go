// Package service contains the business logic orchestration layer.
package service

import (
	"context"

	"recipeas/internal/models"
	"recipeas/internal/repository"
	"recipeas/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles profile reads, edits and account deletion.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a profile edit. Empty fields are left unchanged.
// Changing the password requires CurrentPassword to verify against the
// stored hash.
type UpdateProfileInput struct {
	UserID          uint
	Email           string
	FirstName       string
	LastName        string
	NewPassword     string
	CurrentPassword string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile edit for the acting user.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}
	if in.FirstName != "" {
		if err := validation.ValidateName("first name", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("last name", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}

	if in.NewPassword != "" {
		// Password changes are gated on re-authentication.
		if in.CurrentPassword == "" {
			return nil, models.NewUnauthorizedError("Current password is required to change the password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
			return nil, models.NewUnauthorizedError("Current password is incorrect")
		}
		if err := validation.ValidatePassword(in.NewPassword); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user and all owned pantry items and favorites.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}
