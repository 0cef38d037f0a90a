package auth

import (
	"context"
	"errors"

	"github.com/healthguide/healthguide-api/internal/audit"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/token"
)

type Refresh struct {
	users  domainuser.Repository
	tokens *token.Manager
	audit  *audit.Logger
}

func NewRefresh(
	users domainuser.Repository,
	tokens *token.Manager,
	audit *audit.Logger,
) *Refresh {
	return &Refresh{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute exchanges a refresh token for a new pair. The subject is looked up
// again so deleted accounts cannot refresh. Expired, tampered and orphaned
// tokens all yield invalid_refresh_token.
func (uc *Refresh) Execute(
	ctx context.Context,
	refreshToken string,
) (token.Pair, error) {

	if !uc.tokens.Configured() {
		return token.Pair{}, token.ErrSecretsNotConfigured
	}

	claimed, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		uc.reject(ctx, nil, "verification_failed")
		return token.Pair{}, httperr.ErrBusiness(httperr.CodeInvalidRefresh)
	}

	u, err := uc.users.FindByID(ctx, claimed.ID)
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			uc.reject(ctx, &claimed.ID, "user_missing")
			return token.Pair{}, httperr.ErrBusiness(httperr.CodeInvalidRefresh)
		}
		return token.Pair{}, err
	}

	// Claims are re-derived from the stored record, not copied from the
	// presented token.
	pair, err := uc.tokens.Issue(identityOf(u))
	if err != nil {
		return token.Pair{}, err
	}

	uc.audit.Log(ctx, audit.Event{
		UserID: &u.ID,
		Action: audit.ActionTokenRefreshed,
	})

	return pair, nil
}

func (uc *Refresh) reject(ctx context.Context, userID *uint, reason string) {
	uc.audit.Log(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionRefreshRejected,
		Metadata: map[string]any{"reason": reason},
	})
}
