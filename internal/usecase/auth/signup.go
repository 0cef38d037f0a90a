package auth

import (
	"context"
	"errors"

	"github.com/healthguide/healthguide-api/internal/audit"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/models"
	"github.com/healthguide/healthguide-api/internal/token"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	users  domainuser.Repository
	tokens *token.Manager
	audit  *audit.Logger
}

func NewSignup(
	users domainuser.Repository,
	tokens *token.Manager,
	audit *audit.Logger,
) *Signup {
	return &Signup{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*Result, error) {

	// Refuse before persisting anything if tokens cannot be minted.
	if !uc.tokens.Configured() {
		return nil, token.ErrSecretsNotConfigured
	}

	exists, err := uc.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeUserExists)
	}

	hash, err := domainuser.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         string(domainuser.RoleUser),
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domainuser.ErrEmailTaken) {
			return nil, httperr.ErrBusiness(httperr.CodeUserExists)
		}
		return nil, err
	}

	pair, err := uc.tokens.Issue(identityOf(u))
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserSignedUp,
		Entity:   "user",
		EntityID: &u.ID,
	})

	return &Result{User: u, Tokens: pair}, nil
}
