// Package service contains the application's business logic.
package service

import (
	"context"

	"warbler/internal/auth"
	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

type UpdateProfileInput struct {
	UserID         uint
	Username       string
	Email          string
	Bio            string
	Location       string
	ImageURL       string
	HeaderImageURL string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, search, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Profile returns a user together with their most recent messages, newest
// first, for the public profile page.
func (s *UserService) Profile(ctx context.Context, id uint, messageLimit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMessages(ctx, id, messageLimit)
}

// Signup registers a new user. The plaintext password is hashed exactly once
// here; nothing downstream ever sees or re-hashes it.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		Password:       hashed,
		ImageURL:       in.ImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. It returns (nil, nil) when
// the username is unknown or the password does not match, so callers can
// produce a uniform rejection without leaking which part failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxLocationLen = 100

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Location != "" {
		if len(in.Location) > maxLocationLen {
			return nil, models.NewValidationError("Location too long (max 100 characters)")
		}
		user.Location = in.Location
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user together with their messages, likes and
// follow edges.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, userID)
}
