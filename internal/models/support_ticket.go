package models

import "time"

const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
)

type SupportTicket struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"not null;index" json:"user_id"`
	UserType string `gorm:"size:20;not null" json:"user_type"`

	Subject     string `gorm:"size:200;not null" json:"subject"`
	Description string `gorm:"size:1000" json:"description"`
	Priority    string `gorm:"size:20;default:'medium'" json:"priority"`
	Status      string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
