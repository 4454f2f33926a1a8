package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/auth/authctx"
)

// Authenticator is the gate protected routes call at the top of the request:
// it validates a bearer header against an optional required role.
// *auth.Gateway satisfies it.
type Authenticator interface {
	Authenticate(bearerHeader, requiredRole string) (authctx.Principal, error)
}

// RequireAuth returns a Gin middleware that authenticates the request and
// attaches the principal to the request context. requiredRole may be empty.
func RequireAuth(gate Authenticator, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := gate.Authenticate(c.GetHeader("Authorization"), requiredRole)
		if err != nil {
			appErr, ok := apperr.As(err)
			if !ok {
				appErr = apperr.Internal(err)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		c.Request = c.Request.WithContext(authctx.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
