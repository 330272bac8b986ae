package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praveennqumar/blood-bridge/internal/auth"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

	userID := uuid.New()
	role := models.RoleOrganisation

	t.Run("generates valid token", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		// Should be parseable
		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, role, claims.Role)
	})

	t.Run("token contains correct issuer", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "blood-bridge", claims.Issuer)
	})

	t.Run("token contains correct subject", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.Subject)
	})
}

func TestJWTService_ValidateToken(t *testing.T) {
	userID := uuid.New()
	role := models.RoleDonor

	t.Run("validates correct token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		// Token remains valid for its window, then fails regardless
		// of prior validity
		jwtService := auth.NewJWTService("test-secret", 1*time.Millisecond)

		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = jwtService.ValidateToken(token)
		assert.Equal(t, auth.ErrExpiredToken, err)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

		token, err := jwtService.GenerateToken(userID, role)
		require.NoError(t, err)

		_, err = jwtService.ValidateToken(token + "tampered")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		jwtService1 := auth.NewJWTService("secret-1", 24*time.Hour)
		jwtService2 := auth.NewJWTService("secret-2", 24*time.Hour)

		token, err := jwtService1.GenerateToken(userID, role)
		require.NoError(t, err)

		_, err = jwtService2.ValidateToken(token)
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

		_, err := jwtService.ValidateToken("not-a-valid-jwt")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

		_, err := jwtService.ValidateToken("")
		assert.Equal(t, auth.ErrInvalidToken, err)
	})
}

func TestJWTService_AllRoles(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

	userID := uuid.New()
	roles := []models.Role{models.RoleAdmin, models.RoleDonor, models.RoleOrganisation, models.RoleHospital}

	for _, role := range roles {
		t.Run("handles "+string(role)+" role", func(t *testing.T) {
			token, err := jwtService.GenerateToken(userID, role)
			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role)
		})
	}
}
