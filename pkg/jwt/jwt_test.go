package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "ana", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TokenTypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "ana", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "ana", "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenType)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "ana", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.Error(t, err)
}
