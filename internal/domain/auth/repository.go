package auth

import (
	"context"
)

// Repository defines User persistence.
type Repository interface {
	Create(ctx context.Context, u *User) error

	// GetActiveByUsername returns the active user with the given
	// username; inactive users are invisible to login.
	GetActiveByUsername(ctx context.Context, username string) (*User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
