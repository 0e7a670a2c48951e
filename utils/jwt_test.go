package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractIdentity(t *testing.T) {
	token, err := GenerateToken(42, "USUARIO", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, rol, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "USUARIO", rol)
}

func TestExtractIdentity_RejectsGarbage(t *testing.T) {
	_, _, err := ExtractIdentityFromToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractIdentity_RejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken(7, "ADMIN", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestExpiryFromToken(t *testing.T) {
	token, err := GenerateToken(7, "USUARIO", time.Hour)
	require.NoError(t, err)

	remaining, err := ExpiryFromToken(token)
	require.NoError(t, err)
	assert.Greater(t, remaining, 55*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestHashToken_DeterministicAndDistinct(t *testing.T) {
	a := HashToken("token-a")
	assert.Equal(t, a, HashToken("token-a"))
	assert.NotEqual(t, a, HashToken("token-b"))
	assert.Len(t, a, 64) // hex-encoded sha256
}
