package auth

import (
	"testing"
	"time"

	"namedesk_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttlHours int) {
	t.Helper()

	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlHours
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "test-secret", 24)

	token, err := GenerateToken("user-1", RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, RoleEmployee, claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestGenerateToken_AdminFlag(t *testing.T) {
	setTestConfig(t, "test-secret", 24)

	token, err := GenerateToken("admin-1", RoleAdmin)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestGenerateToken_ExpiryMatchesTTL(t *testing.T) {
	setTestConfig(t, "test-secret", 24)

	token, err := GenerateToken("user-1", RoleEmployee)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)

	expected := time.Now().Add(24 * time.Hour)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	setTestConfig(t, "", 24)

	_, err := GenerateToken("user-1", RoleEmployee)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "test-secret", 24)
	token, err := GenerateToken("user-1", RoleEmployee)
	require.NoError(t, err)

	setTestConfig(t, "other-secret", 24)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, "test-secret", 24)

	claims := Claims{
		UserID: "user-1",
		Role:   RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(expired)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "test-secret", 24)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
