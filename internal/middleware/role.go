package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
)

// RequireRole lets the request through only when the authenticated role is
// one of roles. It must run after AuthMiddleware.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !identity.Role.In(roles...) {
			httperr.Abort(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}
