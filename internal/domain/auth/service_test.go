package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
)

type mockRepo struct {
	byUsername map[string]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{byUsername: make(map[string]*User)}
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	m.byUsername[u.Username] = u
	return nil
}

func (m *mockRepo) GetActiveByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := m.byUsername[username]
	if !ok || !u.IsActive {
		return nil, apperror.NewNotFound("user")
	}
	return u, nil
}

func (m *mockRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, NewJWTService(DefaultJWTConfig("test-secret"))), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	u, token, err := svc.Register(context.Background(), RegisterInput{
		Username: "deniz",
		Password: "secret123",
		Email:    "Deniz@Example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, RoleUser, u.Role)
	require.NotNil(t, u.Email)
	assert.Equal(t, "deniz@example.com", *u.Email)

	got, loginToken, err := svc.Login(context.Background(), "deniz", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "ab", Password: "12345"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Len(t, appErr.FieldErrors, 2)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "deniz", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{Username: "deniz", Password: "other-pass"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestRegister_AdminRoleOnlyWhenRequestedExactly(t *testing.T) {
	svc, _ := newTestService()

	u, _, err := svc.Register(context.Background(), RegisterInput{Username: "boss", Password: "secret123", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)

	u, _, err = svc.Register(context.Background(), RegisterInput{Username: "minion", Password: "secret123", Role: "superadmin"})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, u.Role)
}

func TestLogin_SharedFailureMessage(t *testing.T) {
	svc, repo := newTestService()

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "deniz", Password: "secret123"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "secret123")
	_, _, badPassErr := svc.Login(context.Background(), "deniz", "wrong")
	require.Error(t, unknownErr)
	require.Error(t, badPassErr)

	a, _ := apperror.AsAppError(unknownErr)
	b, _ := apperror.AsAppError(badPassErr)
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, apperror.CodeUnauthorized, a.Code)

	// inactive users cannot log in
	repo.byUsername["deniz"].IsActive = false
	_, _, err = svc.Login(context.Background(), "deniz", "secret123")
	require.Error(t, err)
	c, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeUnauthorized, c.Code)
}

func TestJWTRoundTrip(t *testing.T) {
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))
	u := NewUser("deniz")
	u.Role = RoleAdmin

	token, expiresAt, err := jwtSvc.GenerateToken(u)
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	uc, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), uc.UserID)
	assert.Equal(t, "deniz", uc.Username)
	assert.Equal(t, "admin", uc.Role)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	signer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := signer.GenerateToken(NewUser("deniz"))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
