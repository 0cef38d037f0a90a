package profile

import (
	"context"

	"github.com/healthguide/healthguide-api/internal/audit"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/models"
)

type UpdateMe struct {
	users domainuser.Repository
	audit *audit.Logger
}

func NewUpdateMe(
	users domainuser.Repository,
	audit *audit.Logger,
) *UpdateMe {
	return &UpdateMe{
		users: users,
		audit: audit,
	}
}

// Execute persists only the fields present in changes. Identity fields
// (name, email, role, password) are not reachable from here.
func (uc *UpdateMe) Execute(
	ctx context.Context,
	userID uint,
	changes domainuser.ProfileChanges,
) (*models.User, error) {

	u, err := uc.users.UpdateProfile(ctx, userID, changes)
	if err != nil {
		return nil, userNotFound(err)
	}

	if !changes.Empty() {
		fields := make([]string, 0, len(changes.Columns()))
		for col := range changes.Columns() {
			fields = append(fields, col)
		}

		uc.audit.Log(ctx, audit.Event{
			UserID:   &u.ID,
			Action:   audit.ActionProfileUpdated,
			Entity:   "user",
			EntityID: &u.ID,
			Metadata: map[string]any{"fields": fields},
		})
	}

	return u, nil
}
