package jwt

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paylane/payroll-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	employeeID := "emp-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", &employeeID, user.RoleFinance)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "finance", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilEmployeeID(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "admin@example.com", nil, user.RoleAdmin)
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	svc := newTestService()

	first, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("token-value", 1735689600)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", nil, user.RoleAdmin)
	assert.Error(t, err)
}
