package services

import (
	"context"
	"fmt"
	"regexp"
	"unicode"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/repositories"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/auth"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

// AuthService handles account registration and token issuance
type AuthService struct {
	userRepo   repositories.IUserRepository
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new account and returns its public profile
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.Role != models.RoleCoordinator && req.Role != models.RoleParticipant {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Role must be either 'coordinator' or 'participant'.")
	}

	usernameExists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if usernameExists {
		return nil, apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists, "A user with that username already exists.")
	}

	emailExists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailExists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "A user with that email already exists.")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		YearOfStudy: req.YearOfStudy,
		CollegeName: req.CollegeName,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	logger.Info().Int64("userID", id).Str("role", string(user.Role)).Msg("New user registered")

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	err = s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry())
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// validateEmail checks the email format
func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Enter a valid email address.")
	}
	return nil
}

// validatePassword requires at least 8 characters with a letter and a digit
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "Password must be at least 8 characters long.")
	}

	var hasLetter, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "Password must contain at least one letter and one digit.")
	}

	return nil
}
