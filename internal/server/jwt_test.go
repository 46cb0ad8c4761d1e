package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kcheesee/JApplication-Tracker/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	s := testJWTService()
	userID := uuid.New()

	token, err := s.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("")

	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")

	assert.Error(t, err)
}
