package auth

import (
	"context"
	"errors"

	"github.com/healthguide/healthguide-api/internal/audit"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/token"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  domainuser.Repository
	tokens *token.Manager
	audit  *audit.Logger
}

func NewLogin(
	users domainuser.Repository,
	tokens *token.Manager,
	audit *audit.Logger,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute answers an unknown email and a wrong password with the same
// invalid_credentials error.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*Result, error) {

	u, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			uc.audit.Log(ctx, audit.Event{
				Action:   audit.ActionLoginFailed,
				Metadata: map[string]any{"reason": "unknown_email"},
			})
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !domainuser.CheckPassword(u.PasswordHash, in.Password) {
		uc.audit.Log(ctx, audit.Event{
			UserID:   &u.ID,
			Action:   audit.ActionLoginFailed,
			Metadata: map[string]any{"reason": "password_mismatch"},
		})
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	pair, err := uc.tokens.Issue(identityOf(u))
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		UserID: &u.ID,
		Action: audit.ActionLoginSucceeded,
	})

	return &Result{User: u, Tokens: pair}, nil
}
