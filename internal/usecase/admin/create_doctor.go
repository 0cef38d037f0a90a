package admin

import (
	"context"
	"errors"

	"github.com/healthguide/healthguide-api/internal/audit"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/models"
)

type CreateDoctorInput struct {
	AdminID  uint
	Name     string
	Email    string
	Password string
}

type CreateDoctor struct {
	users domainuser.Repository
	audit *audit.Logger
}

func NewCreateDoctor(
	users domainuser.Repository,
	audit *audit.Logger,
) *CreateDoctor {
	return &CreateDoctor{
		users: users,
		audit: audit,
	}
}

// Execute creates an account whose role is fixed to doctor. No tokens are
// issued; the doctor logs in separately.
func (uc *CreateDoctor) Execute(
	ctx context.Context,
	in CreateDoctorInput,
) (*models.User, error) {

	exists, err := uc.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeDoctorExists)
	}

	hash, err := domainuser.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	doctor := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         string(domainuser.RoleDoctor),
	}

	if err := uc.users.Create(ctx, doctor); err != nil {
		if errors.Is(err, domainuser.ErrEmailTaken) {
			return nil, httperr.ErrBusiness(httperr.CodeDoctorExists)
		}
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		UserID:   &in.AdminID,
		Action:   audit.ActionDoctorCreated,
		Entity:   "user",
		EntityID: &doctor.ID,
	})

	return doctor, nil
}
