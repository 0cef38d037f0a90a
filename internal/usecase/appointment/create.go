package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/healthguide/healthguide-api/internal/audit"
	domain "github.com/healthguide/healthguide-api/internal/domain/appointment"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// PatientID comes from the authenticated identity, never the payload.
	PatientID uint
	DoctorID  uint
	StartsAt  time.Time
	EndsAt    time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	users domainuser.Repository
	audit *audit.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	users domainuser.Repository,
	audit *audit.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		users: users,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Doctor must exist and hold the doctor role
	// --------------------------------------------------
	doctor, err := uc.users.FindByID(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDoctor)
		}
		return nil, err
	}
	if domainuser.Role(doctor.Role) != domainuser.RoleDoctor {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDoctor)
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  doctor.ID,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		UserID:   &in.PatientID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"doctor_id": doctor.ID},
	})

	return ap, nil
}
