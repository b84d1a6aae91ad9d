package models

import "time"

type Document struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	FileName     string `gorm:"size:255;not null" json:"file_name"`
	DocumentType string `gorm:"size:50" json:"document_type"`
	FileURL      string `gorm:"size:500;not null" json:"file_url"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `gorm:"size:100" json:"mime_type"`

	// PatientVisible controls whether the patient dashboard lists this file.
	PatientVisible bool `gorm:"default:true" json:"patient_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Document) TableName() string { return "patient_documents" }
