package server

import (
	"context"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*UserService, *mockStore) {
	st := newMockStore()
	authCfg := &config.AuthConfig{BcryptCost: 10, JWTSecret: "test-secret", TokenHours: 1}
	return NewUserService(st, authCfg), st
}

func TestUserService_Register(t *testing.T) {
	svc, st := newTestUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)

	// The stored hash must verify against the original password and must
	// not be the password itself.
	stored, err := st.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "strongpassword", stored.PasswordHash)
	assert.True(t, svc.authCfg.VerifyPassword("strongpassword", stored.PasswordHash))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "strongpassword"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "strongpassword",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "ada@example.com", Password: "strongpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "strongpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "ada@example.com", Password: "wrongpassword",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "strongpassword",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}
