package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID  = "userID"
	ContextUserUID = "userUID"
	ContextRole    = "role"
	ContextRoleID  = "roleID"
)

// AuthMiddleware validates bearer tokens and enforces role requirements
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// Authenticate validates the Authorization header and stores the caller's
// identity in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Authorization header is required")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserUID, claims.UID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextRoleID, claims.RoleID)

		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated caller holds one of
// the given roles. Must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.RoleType(c.GetString(ContextRole))

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden,
				"You do not have permission to access this resource")))
	}
}

// RequireStaff aborts with 403 unless the caller is faculty or admin
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.RequireRoles(models.RoleFaculty, models.RoleAdmin)
}

// RequireAdmin aborts with 403 unless the caller is an admin
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(models.RoleAdmin)
}

// GetActor extracts the authenticated caller from the request context
func GetActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID: c.GetInt64(ContextUserID),
		RoleID: c.GetInt(ContextRoleID),
	}
}
