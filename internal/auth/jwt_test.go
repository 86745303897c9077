package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", 15*time.Minute)

	token, err := manager.GenerateAccessToken("mrodriguez")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", claims.Username)
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", 15*time.Minute)
	other := NewJWTManager("different", 15*time.Minute)

	token, err := manager.GenerateAccessToken("mrodriguez")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute)

	token, err := manager.GenerateAccessToken("mrodriguez")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(token)
	assert.Error(t, err)
}
