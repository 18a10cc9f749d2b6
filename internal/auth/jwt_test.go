package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-suite/erp-server/internal/config"
	"github.com/erp-suite/erp-server/internal/models"
)

func testManager(accessTTL time.Duration) *JWTManager {
	return NewJWTManager(&config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: time.Hour,
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       "user-1",
		Email:    "owner@acme.example",
		TenantID: "t1",
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	m := testManager(15 * time.Minute)

	access, refresh, err := m.GenerateTokenPair(testUser(), "Acme Stores")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "owner@acme.example", claims.Email)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, "Acme Stores", claims.TenantName)
	assert.False(t, claims.IsAdmin)

	subject, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := testManager(15 * time.Minute)
	access, _, err := m.GenerateTokenPair(testUser(), "")
	require.NoError(t, err)

	other := NewJWTManager(&config.JWTConfig{
		Secret:          "different-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	})

	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	m := testManager(-time.Minute)
	access, _, err := m.GenerateTokenPair(testUser(), "")
	require.NoError(t, err)

	_, err = m.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	m := testManager(15 * time.Minute)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = m.ValidateRefreshToken("not.a.token")
	assert.Error(t, err)
}

func TestAdminClaimsCarryNoTenant(t *testing.T) {
	m := testManager(15 * time.Minute)

	admin := &models.User{ID: "admin-1", Email: "admin@erp.example", IsAdmin: true}
	access, _, err := m.GenerateTokenPair(admin, "")
	require.NoError(t, err)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Empty(t, claims.TenantID)
	assert.Empty(t, claims.TenantName)
}
