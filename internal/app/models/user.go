package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleCoordinator RoleType = "coordinator"
	RoleParticipant RoleType = "participant"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username    string    `json:"username" db:"username" example:"amal"`                    // Unique login name
	Email       string    `json:"email" db:"email" example:"amal@example.com"`              // User's email address
	Password    string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role        RoleType  `json:"role" db:"role" example:"coordinator"`                     // User's role (coordinator or participant)
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`                  // Optional contact number
	Department  *string   `json:"department,omitempty" db:"department"`                     // Optional department name
	YearOfStudy *string   `json:"yearOfStudy,omitempty" db:"year_of_study" example:"2023"`  // Optional year of study
	CollegeName *string   `json:"collegeName,omitempty" db:"college_name"`                  // Optional college name
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
