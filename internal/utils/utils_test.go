package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h1, err := HashPassword("senha123")
	require.NoError(t, err)
	h2, err := HashPassword("senha123")
	require.NoError(t, err)

	// per-password salt: same plaintext, different hashes
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "senha123", h1)

	assert.True(t, CheckPassword(h1, "senha123"))
	assert.True(t, CheckPassword(h2, "senha123"))
	assert.False(t, CheckPassword(h1, "senha124"))
	assert.False(t, CheckPassword("not-a-hash", "senha123"))
}

func TestSignAndParseJWT(t *testing.T) {
	token, err := SignJWT("secret", "user-1", "worker", 10)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "worker", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt.Time, time.Minute)

	_, err = ParseJWT("wrong-secret", token)
	assert.Error(t, err)
}

func TestParseExpiredJWT(t *testing.T) {
	token, err := SignJWT("secret", "user-1", "client", -1)
	require.NoError(t, err)

	_, err = ParseJWT("secret", token)
	assert.Error(t, err)
}

func TestNewActivationCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewActivationCode()
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
