package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", "ada@campus.edu", "lecturer", time.Hour)
	require.NoError(t, err)

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ada@campus.edu", claims.Email)
	assert.Equal(t, "lecturer", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "ada@campus.edu", "student", -time.Minute)
	require.NoError(t, err)

	_, err = ParseClaims(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "ada@campus.edu", "student", time.Hour)
	require.NoError(t, err)

	_, err = ParseClaims(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
