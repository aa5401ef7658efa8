package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("usetheforce")
	require.NoError(t, err)

	assert.NotEqual(t, "usetheforce", hash)
	assert.True(t, IsHashed(hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("usetheforce")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("itsatrap")))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestIsHashed_Plaintext(t *testing.T) {
	assert.False(t, IsHashed("usetheforce"))
	assert.False(t, IsHashed(""))
}
