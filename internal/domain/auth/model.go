// Package auth provides user accounts, password hashing and JWT issuing.
package auth

import (
	"context"
	"strings"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
)

// Role is the coarse permission level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// User is an API user.
type User struct {
	entity.Base

	Username     string  `db:"username" json:"username"`
	Email        *string `db:"email" json:"email,omitempty"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Role         Role    `db:"role" json:"role"`
	IsActive     bool    `db:"is_active" json:"isActive"`
}

// NewUser creates a User with defaults applied.
func NewUser(username string) *User {
	return &User{
		Base:     entity.NewBase(),
		Username: strings.TrimSpace(username),
		Role:     RoleUser,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	var errs []string
	u.Username = strings.TrimSpace(u.Username)
	if len([]rune(u.Username)) < minUsernameLen {
		errs = append(errs, "username must be at least 3 characters")
	}
	if u.PasswordHash == "" {
		errs = append(errs, "password is required")
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		errs = append(errs, "role must be admin or user")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid user", errs...)
	}
	return nil
}
