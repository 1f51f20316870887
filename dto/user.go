package dto

import (
	"time"

	"github.com/devhub/devhub/models"
)

// RegisterRequest is the self-registration payload. Roles may be supplied
// (bare or ROLE_-prefixed); invalid values are dropped and an empty result
// falls back to the default role set.
type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Roles    []string `json:"roles"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserUpdateRequest is the self-service update payload. Nil fields are left
// untouched; an empty password never replaces the stored hash.
type UserUpdateRequest struct {
	Username    *string  `json:"username"`
	Email       *string  `json:"email"`
	Password    *string  `json:"password"`
	Bio         *string  `json:"bio"`
	LinkedinURL *string  `json:"linkedinUrl"`
	GithubURL   *string  `json:"githubUrl"`
	Roles       []string `json:"roles"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID          uint64    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio,omitempty"`
	LinkedinURL string    `json:"linkedinUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUserResponse maps a user record to its public view.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Bio:         u.Bio,
		LinkedinURL: u.LinkedinURL,
		GithubURL:   u.GithubURL,
		Roles:       u.Roles,
		CreatedAt:   u.CreatedAt,
	}
}

// NewUserResponses maps a list of user records.
func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}
