package dto

import (
	"github.com/campushub/campushub/internal/app/models"
)

// RegisterRequest represents a user registration request.
// The campus uid prefix (stu/fac/adm) encodes the requested role.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	UserUID   string `json:"userUid" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login credentials; identifier is an email or campus uid
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn" example:"43200"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// UserResponse represents user information on the wire
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"john.doe@campus.edu"`
	UserUID   string `json:"userUid" example:"stu1001"`
	Role      string `json:"role" example:"student"`
	RoleID    int    `json:"roleId" example:"1"`
	IsActive  bool   `json:"isActive" example:"true"`
}

// FromUser converts a user model to its response form
func FromUser(u *models.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		UserUID:   u.UserUID,
		Role:      string(u.Role()),
		RoleID:    u.RoleID,
		IsActive:  u.IsActive,
	}
}

// FromUsers converts a slice of user models
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
