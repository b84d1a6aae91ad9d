package models

import "time"

// Payment is the metadata recorded with a booking. It is stored verbatim and
// never verified against a gateway.
type Payment struct {
	TransactionID string  `gorm:"size:100" json:"transaction_id"`
	PayerName     string  `gorm:"size:100" json:"payer_name"`
	PayerPhone    string  `gorm:"size:20" json:"payer_phone"`
	Method        string  `gorm:"size:50" json:"payment_method"`
	Amount        float64 `json:"amount"`
	Currency      string  `gorm:"size:10" json:"currency"`
	Status        bool    `json:"payment_status"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	// Display names are snapshotted at booking time.
	PatientName string `gorm:"size:100" json:"patient_name"`
	DoctorName  string `gorm:"size:100" json:"doctor_name"`

	Age                int    `json:"age"`
	Gender             string `gorm:"size:20" json:"gender"`
	Address            string `gorm:"size:255" json:"address"`
	ProblemDescription string `gorm:"size:500" json:"problem_description"`
	Symptoms           string `gorm:"size:500" json:"symptoms"`
	MedicalHistory     string `gorm:"size:500" json:"medical_history"`

	AppointmentDate  string `gorm:"size:10;not null" json:"appointment_date"`
	AppointmentTime  string `gorm:"size:5;not null" json:"appointment_time"`
	SlotTime         string `gorm:"size:10;not null" json:"slot_time"`
	ConsultationType string `gorm:"size:20;default:'in-person'" json:"consultation_type"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	Payment Payment `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
