package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthguide/healthguide-api/internal/dto"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/httpresp"
	ucAppointment "github.com/healthguide/healthguide-api/internal/usecase/appointment"
	"github.com/healthguide/healthguide-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create        *ucAppointment.CreateAppointment
	listForDoctor *ucAppointment.ListDoctorAppointments
	log           logrus.FieldLogger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	listForDoctor *ucAppointment.ListDoctorAppointments,
	log logrus.FieldLogger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:        create,
		listForDoctor: listForDoctor,
		log:           log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID int64  `json:"doctorId" binding:"required,gt=0"`
	StartsAt string `json:"startsAt" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt   string `json:"endsAt" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// ======================================================
// CREATE
// ======================================================

// Create books an appointment for the caller. The patient is always the
// authenticated identity.
func (h *AppointmentHandler) Create(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	issues := validators.NewIssues()
	startsAt, err := parseTimestamp(req.StartsAt)
	if err != nil {
		issues.AddField("startsAt", "Invalid datetime")
	}
	endsAt, err := parseTimestamp(req.EndsAt)
	if err != nil {
		issues.AddField("endsAt", "Invalid datetime")
	}
	if !issues.Empty() {
		httperr.Validation(c, issues)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID: identity.ID,
		DoctorID:  uint(req.DoctorID),
		StartsAt:  startsAt,
		EndsAt:    endsAt,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{"appointment": dto.NewAppointmentDTO(ap)})
}

// ======================================================
// LIST (DOCTOR)
// ======================================================

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	appointments, err := h.listForDoctor.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}
