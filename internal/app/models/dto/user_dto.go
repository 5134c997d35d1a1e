package dto

import "github.com/Amaldev1010/Archin-Eventmng/internal/app/models"

// UserResponse represents a user's public profile
type UserResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	YearOfStudy *string `json:"year_of_study"`
	CollegeName *string `json:"college_name"`
}

// NewUserResponse maps a user model to its public profile
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        string(user.Role),
		PhoneNumber: user.PhoneNumber,
		Department:  user.Department,
		YearOfStudy: user.YearOfStudy,
		CollegeName: user.CollegeName,
	}
}
