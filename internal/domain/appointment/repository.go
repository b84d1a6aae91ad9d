package appointment

import (
	"context"

	"github.com/itabaza/hms-api/internal/models"
)

type Repository interface {
	// -------- Patient / Doctor lookups --------
	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctorDate(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]models.Appointment, error)
}
