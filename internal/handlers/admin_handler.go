package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/healthguide/healthguide-api/internal/dto"
	"github.com/healthguide/healthguide-api/internal/httpresp"
	ucAdmin "github.com/healthguide/healthguide-api/internal/usecase/admin"
)

type AdminHandler struct {
	createDoctor *ucAdmin.CreateDoctor
	getStats     *ucAdmin.GetStats
	log          logrus.FieldLogger
}

func NewAdminHandler(
	createDoctor *ucAdmin.CreateDoctor,
	getStats *ucAdmin.GetStats,
	log logrus.FieldLogger,
) *AdminHandler {
	return &AdminHandler{
		createDoctor: createDoctor,
		getStats:     getStats,
		log:          log,
	}
}

// CreateDoctorRequest shares the signup rules.
type CreateDoctorRequest = SignupRequest

func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor, err := h.createDoctor.Execute(c.Request.Context(), ucAdmin.CreateDoctorInput{
		AdminID:  identity.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{"doctor": dto.NewDoctorDTO(doctor)})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.getStats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"stats": stats})
}
