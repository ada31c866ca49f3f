package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("planner", "admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "planner", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "supply-agent", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("planner", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
