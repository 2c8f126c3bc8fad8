package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	FirstName    string     `json:"firstName" db:"first_name" example:"John"`
	LastName     string     `json:"lastName" db:"last_name" example:"Doe"`
	Email        string     `json:"email" db:"email" example:"john.doe@campus.edu"`
	UserUID      string     `json:"userUid" db:"user_uid" example:"stu1001"`
	PasswordHash string     `json:"-" db:"password_hash"`
	RoleID       int        `json:"roleId" db:"role_id" example:"1"`
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// Role returns the role type encoded by RoleID
func (u *User) Role() RoleType {
	return RoleFromID(u.RoleID)
}

// IsFaculty reports whether the user holds the faculty role
func (u *User) IsFaculty() bool {
	return u.RoleID == RoleIDFaculty
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}

// RefreshToken defines a persisted refresh token row
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
