package auth

import (
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/models"
	"github.com/healthguide/healthguide-api/internal/token"
)

// Result is what a successful signup or login hands back to the caller.
type Result struct {
	User   *models.User
	Tokens token.Pair
}

func identityOf(u *models.User) token.Identity {
	return token.Identity{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  domainuser.RoleFromClaim(u.Role),
	}
}
