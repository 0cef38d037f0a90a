package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/token"
)

const ContextIdentity = "identity"

const bearerPrefix = "Bearer "

type AccessVerifier interface {
	VerifyAccess(raw string) (token.Identity, error)
}

// AuthMiddleware authenticates the bearer access token and stores the
// resulting token.Identity in the gin context.
func AuthMiddleware(verifier AccessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := verifier.VerifyAccess(raw)
		if err != nil {
			if errors.Is(err, token.ErrSecretsNotConfigured) {
				httperr.Abort(c, http.StatusInternalServerError, token.ErrSecretsNotConfigured.Error())
				return
			}
			httperr.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity placed by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (token.Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return token.Identity{}, false
	}
	identity, ok := v.(token.Identity)
	return identity, ok
}
