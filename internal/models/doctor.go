package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DepartmentID uint       `json:"department_id"`
	Department   Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"department"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Qualifications string `gorm:"size:255" json:"qualifications"`
	ExperienceYrs  int    `json:"experience_years"`
	City           string `gorm:"size:100" json:"city"`
	ImageURL       string `gorm:"size:255" json:"image_url"`

	// Status is the admin approval flag; IsAvailable is the doctor's own toggle.
	// Both must be true for the doctor to accept bookings.
	Status      bool `gorm:"default:false" json:"status"`
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) Bookable() bool {
	return d.Status && d.IsAvailable
}
