package dto

import "time"

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	SlotTime        string `json:"slot_time"`
	Status          string `json:"status"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
}

type PatientDashboardDTO struct {
	PatientID             uint `json:"patient_id"`
	UpcomingAppointments  int64 `json:"upcoming_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	Documents             int64 `json:"documents"`
	OpenTickets           int64 `json:"open_tickets"`
}

type DocumentListDTO struct {
	ID           uint      `json:"id"`
	FileName     string    `json:"file_name"`
	DocumentType string    `json:"document_type"`
	FileURL      string    `json:"file_url"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
