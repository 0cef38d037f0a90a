package user

import (
	"context"
	"errors"

	"github.com/healthguide/healthguide-api/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	// Create inserts u and fills its ID. A duplicate email yields
	// ErrEmailTaken, even when two inserts race.
	Create(ctx context.Context, u *models.User) error

	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfile persists only the supplied fields and returns the
	// updated record.
	UpdateProfile(ctx context.Context, id uint, changes ProfileChanges) (*models.User, error)

	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
