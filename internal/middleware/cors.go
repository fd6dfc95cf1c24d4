package middleware

import (
	"net/http"
	"strings"

	"github.com/campushub/teacher-service/config"
	"github.com/campushub/teacher-service/internal/constants"
	"github.com/gin-gonic/gin"
)

// CORS applies the configured cross-origin policy. Preflight requests
// are answered directly with 200.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowedOrigins := cfg.CORS.AllowedOrigins
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"
	methods := strings.Join(cfg.CORS.AllowedMethods, ", ")
	headers := strings.Join(cfg.CORS.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader(constants.HeaderOrigin)

		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case originAllowed(origin, allowedOrigins):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", methods)
		c.Writer.Header().Set("Access-Control-Allow-Headers", headers)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}
	for _, o := range allowed {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
