package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storeops/internal/core/apperror"
)

const bcryptCost = 10

// credentialsMessage is shared between unknown-user and wrong-password
// failures so responses do not reveal which part was wrong.
const credentialsMessage = "invalid username or password"

// Service provides registration and login.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates an auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// RegisterInput carries registration fields.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// Register creates a user and returns it with a signed token.
// Requesting any role other than admin yields the user role.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, string, error) {
	username := strings.TrimSpace(in.Username)
	var errs []string
	if len([]rune(username)) < minUsernameLen {
		errs = append(errs, "username must be at least 3 characters")
	}
	if len(in.Password) < minPasswordLen {
		errs = append(errs, "password must be at least 6 characters")
	}
	if len(errs) > 0 {
		return nil, "", apperror.NewValidation("invalid registration", errs...)
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, "", apperror.NewConflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := NewUser(username)
	u.PasswordHash = string(hash)
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		u.Email = &email
	}
	if in.Role == string(RoleAdmin) {
		u.Role = RoleAdmin
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.jwt.GenerateToken(u)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (*User, string, error) {
	u, err := s.repo.GetActiveByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, "", apperror.NewUnauthorized(credentialsMessage)
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.NewUnauthorized(credentialsMessage)
	}

	token, _, err := s.jwt.GenerateToken(u)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}
