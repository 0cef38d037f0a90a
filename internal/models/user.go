package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:text;not null" json:"name"`
	Email        string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`

	DateOfBirth            *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Gender                 *string    `gorm:"type:text" json:"gender"`
	BloodType              *string    `gorm:"type:text" json:"bloodType"`
	Phone                  *string    `gorm:"type:text" json:"phone"`
	Address                *string    `gorm:"type:text" json:"address"`
	PreferredCommunication *string    `gorm:"type:text" json:"preferredCommunication"`
	PrimaryCarePreference  *string    `gorm:"type:text" json:"primaryCarePreference"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
