package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint  `gorm:"not null;index" json:"patientId"`
	Patient   *User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint  `gorm:"not null;index" json:"doctorId"`
	Doctor   *User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartsAt time.Time `gorm:"not null" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`

	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
