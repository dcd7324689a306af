package middleware

import (
	"strings"

	"inbox-srv/pkg/response"
	"inbox-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and puts the caller's scope on the request context.
// The Authorization header wins over the session cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if tokenString == "" && m.cookieName != "" {
			tokenString, _ = c.Cookie(m.cookieName)
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
