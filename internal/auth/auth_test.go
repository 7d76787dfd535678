package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash, "hash must not be the plaintext")

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := HashPassword("secret1")
	require.NoError(t, err)
	b, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same password must hash differently")
}

func TestGenerateSessionToken(t *testing.T) {
	a, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
