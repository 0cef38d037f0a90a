package dto

import (
	"time"

	domain "github.com/healthguide/healthguide-api/internal/domain/appointment"
	"github.com/healthguide/healthguide-api/internal/models"
)

type AppointmentDTO struct {
	ID        uint      `json:"id"`
	DoctorID  uint      `json:"doctorId"`
	PatientID uint      `json:"patientId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:        ap.ID,
		DoctorID:  ap.DoctorID,
		PatientID: ap.PatientID,
		StartsAt:  ap.StartsAt,
		EndsAt:    ap.EndsAt,
		Status:    ap.Status,
	}
}

// DoctorAppointmentDTO is one entry of a doctor's calendar.
type DoctorAppointmentDTO struct {
	ID          uint      `json:"id"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status"`
	PatientName string    `json:"patientName"`
}

func NewDoctorAppointmentDTO(ap *models.Appointment) DoctorAppointmentDTO {
	return DoctorAppointmentDTO{
		ID:          ap.ID,
		StartsAt:    ap.StartsAt,
		EndsAt:      ap.EndsAt,
		Status:      ap.Status,
		PatientName: domain.PatientName(ap),
	}
}
