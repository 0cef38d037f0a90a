package profile

import (
	"context"
	"errors"

	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/models"
)

type GetMe struct {
	users domainuser.Repository
}

func NewGetMe(users domainuser.Repository) *GetMe {
	return &GetMe{users: users}
}

func (uc *GetMe) Execute(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err)
	}
	return u, nil
}

// userNotFound covers an account removed after its token was issued.
func userNotFound(err error) error {
	if errors.Is(err, domainuser.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeUserNotFound)
	}
	return err
}
