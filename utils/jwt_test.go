package utils

import (
	"testing"
	"time"

	"rockgrip/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateToken("admin", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	role, err := ExtractRoleFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	tokenString, err := GenerateToken("admin", "admin", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	tokenString, err := GenerateToken("admin", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractRoleFromToken(tokenString)
	assert.Error(t, err)
}
