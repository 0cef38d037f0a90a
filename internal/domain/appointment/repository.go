package appointment

import (
	"context"

	"github.com/healthguide/healthguide-api/internal/models"
)

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListForDoctor returns the doctor's appointments ordered by start time,
	// with Patient preloaded.
	ListForDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	Count(ctx context.Context) (int64, error)
}
