package user

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// RoleFromClaim resolves the role carried by a token. Tokens minted before
// the role claim existed carry none and get the lowest privilege.
func RoleFromClaim(claim string) Role {
	if claim == "" {
		return RoleUser
	}
	return Role(claim)
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r belongs to the allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
