package jwt

import (
	"testing"
	"time"

	"sillah/config"
	"sillah/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "patient@example.com", entity.RoleIDPatient)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "patient@example.com", claims.Email)
	assert.Equal(t, entity.RoleIDPatient, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "doctor@example.com", entity.RoleIDDoctor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testService("secret-a")
	token, _, err := svc.GenerateAccessToken(uuid.New(), "user@example.com", entity.RoleIDPatient)
	require.NoError(t, err)

	other := testService("secret-b")
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testService("test-secret")

	claims, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "user@example.com", entity.RoleIDPatient)
	require.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(userID, "user@example.com", entity.RoleIDPatient)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
