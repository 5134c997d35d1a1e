package dto

import "github.com/Amaldev1010/Archin-Eventmng/internal/app/models"

// SignupRequest represents a new account registration
type SignupRequest struct {
	Username    string          `json:"username" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	Role        models.RoleType `json:"role" binding:"required,oneof=coordinator participant"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Department  *string         `json:"department,omitempty"`
	YearOfStudy *string         `json:"year_of_study,omitempty"`
	CollegeName *string         `json:"college_name,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenResponse represents the issued token pair
type TokenResponse struct {
	AccessToken      string `json:"access"`
	RefreshToken     string `json:"refresh"`
	TokenType        string `json:"token_type" example:"Bearer"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}
