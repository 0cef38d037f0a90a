package appointment

import (
	"context"

	domain "github.com/healthguide/healthguide-api/internal/domain/appointment"
	"github.com/healthguide/healthguide-api/internal/dto"
)

type ListDoctorAppointments struct {
	repo domain.Repository
}

func NewListDoctorAppointments(
	repo domain.Repository,
) *ListDoctorAppointments {
	return &ListDoctorAppointments{
		repo: repo,
	}
}

func (uc *ListDoctorAppointments) Execute(
	ctx context.Context,
	doctorID uint,
) ([]dto.DoctorAppointmentDTO, error) {

	appointments, err := uc.repo.ListForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DoctorAppointmentDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewDoctorAppointmentDTO(&appointments[i]))
	}

	return out, nil
}
