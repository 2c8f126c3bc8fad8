package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMW := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMW.Authenticate(), func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "roleId": actor.RoleID})
	})
	router.GET("/staff", authMW.Authenticate(), authMW.RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", authMW.Authenticate(), authMW.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func testTokenFor(t *testing.T, jwtService *auth.JWTService, roleID int) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID: 10, UserUID: "stu1001", RoleID: roleID,
	})
	require.NoError(t, err)
	return accessToken
}

func doRequest(router *gin.Engine, path, token string) int {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder.Code
}

func TestAuthenticateRejectsMissingAndInvalidTokens(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour,
	})
	router := newTestRouter(jwtService)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", ""))
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", "garbage"))
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: -time.Minute, RefreshTokenExp: time.Hour,
	})
	router := newTestRouter(auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour,
	}))

	token := testTokenFor(t, expired, models.RoleIDStudent)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	// Expiry must surface as AUTH_003, not the generic invalid-token code
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_003")
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour,
	})
	router := newTestRouter(jwtService)

	token := testTokenFor(t, jwtService, models.RoleIDStudent)
	assert.Equal(t, http.StatusOK, doRequest(router, "/protected", token))
}

func TestRoleGates(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour,
	})
	router := newTestRouter(jwtService)

	student := testTokenFor(t, jwtService, models.RoleIDStudent)
	faculty := testTokenFor(t, jwtService, models.RoleIDFaculty)
	admin := testTokenFor(t, jwtService, models.RoleIDAdmin)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/staff", student))
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", faculty))
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", admin))

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", faculty))
	assert.Equal(t, http.StatusOK, doRequest(router, "/admin", admin))
}
