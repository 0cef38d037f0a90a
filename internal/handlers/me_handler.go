package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/dto"
	"github.com/healthguide/healthguide-api/internal/httperr"
	"github.com/healthguide/healthguide-api/internal/httpresp"
	ucProfile "github.com/healthguide/healthguide-api/internal/usecase/profile"
	"github.com/healthguide/healthguide-api/internal/validators"
)

type MeHandler struct {
	getMe    *ucProfile.GetMe
	updateMe *ucProfile.UpdateMe
	log      logrus.FieldLogger
}

func NewMeHandler(
	getMe *ucProfile.GetMe,
	updateMe *ucProfile.UpdateMe,
	log logrus.FieldLogger,
) *MeHandler {
	return &MeHandler{
		getMe:    getMe,
		updateMe: updateMe,
		log:      log,
	}
}

// UpdateMeRequest holds the self-editable profile fields. An omitted key
// leaves the field alone; null or a blank string clears it.
type UpdateMeRequest struct {
	DateOfBirth            dto.NullableString `json:"dateOfBirth"`
	Gender                 dto.NullableString `json:"gender"`
	BloodType              dto.NullableString `json:"bloodType"`
	Phone                  dto.NullableString `json:"phone"`
	Address                dto.NullableString `json:"address"`
	PreferredCommunication dto.NullableString `json:"preferredCommunication"`
	PrimaryCarePreference  dto.NullableString `json:"primaryCarePreference"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	u, err := h.getMe.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(u)})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}

	changes, issues := req.changes()
	if !issues.Empty() {
		httperr.Validation(c, issues)
		return
	}

	u, err := h.updateMe.Execute(c.Request.Context(), identity.ID, changes)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(u)})
}

func (r UpdateMeRequest) changes() (domainuser.ProfileChanges, validators.Issues) {
	issues := validators.NewIssues()

	changes := domainuser.ProfileChanges{
		Gender:                 stringChange(r.Gender),
		BloodType:              stringChange(r.BloodType),
		Phone:                  stringChange(r.Phone),
		Address:                stringChange(r.Address),
		PreferredCommunication: stringChange(r.PreferredCommunication),
		PrimaryCarePreference:  stringChange(r.PrimaryCarePreference),
	}

	if r.DateOfBirth.Set {
		v := r.DateOfBirth.Normalized()
		if v == nil {
			changes.DateOfBirth = domainuser.Clear[time.Time]()
		} else if dob, err := parseDateOfBirth(*v); err != nil {
			issues.AddField("dateOfBirth", "Invalid date")
		} else {
			changes.DateOfBirth = domainuser.SetTo(dob)
		}
	}

	return changes, issues
}

func stringChange(n dto.NullableString) domainuser.Change[string] {
	if !n.Set {
		return domainuser.Change[string]{}
	}
	v := n.Normalized()
	if v == nil {
		return domainuser.Clear[string]()
	}
	return domainuser.SetTo(*v)
}
