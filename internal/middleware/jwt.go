package middleware

import (
	"net/http"
	"strings"

	"github.com/campushub/teacher-service/internal/constants"
	"github.com/campushub/teacher-service/internal/service"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"github.com/gin-gonic/gin"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
}

func NewJWTMiddleware(jwtService *service.JWTService) *JWTMiddleware {
	return &JWTMiddleware{jwtService: jwtService}
}

// RequireAuth validates the bearer token and sets the caller's identity
// in both the gin context and the request context. Every failure mode
// answers with the same generic 401 body.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			logger.WarnWithContext(ctx, "Missing Authorization header").
				String("path", c.Request.URL.Path).
				String("method", c.Request.Method).
				Log()
			abortUnauthorized(c)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.WarnWithContext(ctx, "Invalid Authorization header format").
				String("path", c.Request.URL.Path).
				String("method", c.Request.Method).
				Log()
			abortUnauthorized(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			logger.WarnWithContext(ctx, "Token rejected").
				String("path", c.Request.URL.Path).
				String("method", c.Request.Method).
				Err(err).
				Log()
			abortUnauthorized(c)
			return
		}

		c.Set(constants.GinKeyUserID, claims.UserID)
		c.Set(constants.GinKeyUserEmail, claims.Email)
		c.Request = c.Request.WithContext(ctxutil.WithUserID(ctx, claims.UserID))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
	c.Abort()
}
