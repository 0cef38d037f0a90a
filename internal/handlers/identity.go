package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/middleware"
	"github.com/healthguide/healthguide-api/internal/token"
)

// currentIdentity reads the authenticated caller, writing a 401 when the
// route was mounted without AuthMiddleware.
func currentIdentity(c *gin.Context) (token.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		httperr.Unauthorized(c, "Unauthorized")
	}
	return identity, ok
}
