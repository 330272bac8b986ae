package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praveennqumar/blood-bridge/internal/auth"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

	userID := uuid.New()
	role := models.RoleOrganisation

	token, err := jwtService.GenerateToken(userID, role)
	require.NoError(t, err)

	handler := Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify context values are set
		assert.Equal(t, userID, GetUserID(r.Context()))
		assert.Equal(t, role, GetUserRole(r.Context()))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest("GET", "/api/v1/auth/current-user", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAuth_MissingCredential(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

	rejected := func(t *testing.T, mutate func(*http.Request)) {
		t.Helper()
		handler := Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest("GET", "/api/v1/inventory/get-inventory", nil)
		mutate(req)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}

	t.Run("no header", func(t *testing.T) {
		rejected(t, func(r *http.Request) {})
	})

	t.Run("no scheme prefix", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), models.RoleDonor)
		require.NoError(t, err)
		rejected(t, func(r *http.Request) {
			r.Header.Set("Authorization", token)
		})
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rejected(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})
	})

	t.Run("cookie is not a credential", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), models.RoleDonor)
		require.NoError(t, err)
		rejected(t, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "token", Value: token})
		})
	})
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 24*time.Hour)

	handler := Auth(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/auth/current-user", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := auth.NewJWTService("test-secret", time.Millisecond)
		token, err := shortLived.GenerateToken(uuid.New(), models.RoleAdmin)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		req := httptest.NewRequest("GET", "/api/v1/auth/current-user", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		Auth(shortLived)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 24*time.Hour)
		token, err := other.GenerateToken(uuid.New(), models.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/auth/current-user", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestContextHelpers_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, uuid.Nil, GetUserID(req.Context()))
	assert.Equal(t, models.Role(""), GetUserRole(req.Context()))
}
