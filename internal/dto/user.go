package dto

import (
	"strconv"

	"github.com/healthguide/healthguide-api/internal/models"
)

const dateLayout = "2006-01-02"

// UserDTO is the public projection of a user. It never carries the
// password hash.
type UserDTO struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	Role                   string  `json:"role"`
	DateOfBirth            *string `json:"dateOfBirth"`
	Gender                 *string `json:"gender"`
	BloodType              *string `json:"bloodType"`
	Phone                  *string `json:"phone"`
	Address                *string `json:"address"`
	PreferredCommunication *string `json:"preferredCommunication"`
	PrimaryCarePreference  *string `json:"primaryCarePreference"`
}

func NewUserDTO(u *models.User) UserDTO {
	out := UserDTO{
		ID:                     formatID(u.ID),
		Name:                   u.Name,
		Email:                  u.Email,
		Role:                   u.Role,
		Gender:                 u.Gender,
		BloodType:              u.BloodType,
		Phone:                  u.Phone,
		Address:                u.Address,
		PreferredCommunication: u.PreferredCommunication,
		PrimaryCarePreference:  u.PrimaryCarePreference,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		out.DateOfBirth = &dob
	}
	return out
}

type DoctorDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewDoctorDTO(u *models.User) DoctorDTO {
	return DoctorDTO{
		ID:    formatID(u.ID),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type AdminStatsDTO struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalDoctors      int64 `json:"totalDoctors"`
	TotalAppointments int64 `json:"totalAppointments"`
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
