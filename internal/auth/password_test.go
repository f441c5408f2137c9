package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("pw123")
	assert.NoError(t, err)
	hash2, err := HashPassword("pw123")
	assert.NoError(t, err)

	// fresh salt per call
	assert.NotEqual(t, hash1, hash2)
	assert.NotContains(t, hash1, "pw123")

	assert.True(t, VerifyPassword("pw123", hash1))
	assert.True(t, VerifyPassword("pw123", hash2))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw123")
	assert.NoError(t, err)

	assert.False(t, VerifyPassword("pw124", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("pw123", "not-a-hash"))
}
