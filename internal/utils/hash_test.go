package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Verifies(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestGenerateResetSecret_Unique(t *testing.T) {
	first, err := GenerateResetSecret()
	require.NoError(t, err)
	second, err := GenerateResetSecret()
	require.NoError(t, err)

	// 32 random bytes, hex-encoded
	assert.Len(t, first, 2*resetSecretLength)
	assert.NotEqual(t, first, second)
}

func TestHashResetSecret_Deterministic(t *testing.T) {
	digest := HashResetSecret("abc")

	assert.Equal(t, digest, HashResetSecret("abc"))
	assert.NotEqual(t, digest, HashResetSecret("abd"))
	assert.Len(t, digest, 64)
}
