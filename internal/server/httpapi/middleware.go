package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/auth"
)

// usernameKey is the gin context key carrying the authenticated username.
// It is set only by requireAuth and read only by authenticatedUsername.
const usernameKey = "username"

// requireAuth validates the bearer token before any flow runs. Missing,
// malformed, badly signed, and expired tokens are all rejected with 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			writeError(c, common.ErrUnauthenticated)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(c, common.ErrUnauthenticated)
			c.Abort()
			return
		}

		username, err := auth.GetUsernameFromToken(parts[1], s.jwtSecret)
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// authenticatedUsername returns the identity established by requireAuth.
// Handlers pass it to the flows explicitly; nothing below the boundary reads
// ambient request state.
func authenticatedUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
