package services

import (
	"context"
	"fmt"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/repositories"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
)

// IUserService defines the interface for user profile operations
type IUserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, userID int64) (string, error)
}

// UserService handles user profile operations
type UserService struct {
	userRepo  repositories.IUserRepository
	tokenRepo repositories.ITokenRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, tokenRepo repositories.ITokenRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// GetProfile retrieves the caller's public profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// DeleteAccount deletes the caller's account and returns the deleted
// username. Owned events and registrations go with it via the cascades.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens before account deletion")
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return "", fmt.Errorf("error deleting account: %w", err)
	}

	logger.Info().Int64("userID", userID).Str("username", user.Username).Msg("Account deleted")

	return user.Username, nil
}
