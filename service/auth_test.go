package service

import (
	"StudyHub/models"
	"StudyHub/pkg/jwt"
	"StudyHub/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_GrantsSignupCredits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123", FullName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.User.Credits)
	assert.Equal(t, int64(100), env.credits(t, resp.User.ID))
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := jwt.ParseToken([]byte("test-secret"), jwt.TokenTypeAccess, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	var user models.User
	require.NoError(t, env.db.First(&user, resp.User.ID).Error)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "other123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var logs int64
	require.NoError(t, env.db.Model(&models.CreditLog{}).Count(&logs).Error)
	assert.Equal(t, int64(1), logs)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	resp, err := env.auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = env.auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, &types.LoginRequest{Username: "bob", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
