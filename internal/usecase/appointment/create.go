package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/audit"
	domain "github.com/itabaza/hms-api/internal/domain/appointment"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PaymentInput struct {
	TransactionID string
	PayerName     string
	PayerPhone    string
	Method        string
	Amount        float64
	Currency      string
}

type CreateAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Date string // 2006-01-02
	Time string // 15:04

	Age                int
	Gender             string
	Address            string
	ProblemDescription string
	Symptoms           string
	MedicalHistory     string
	ConsultationType   string

	Payment PaymentInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking workflow: identifier checks, doctor availability,
// slot derivation, then a single insert. There is deliberately no slot
// uniqueness check: two bookings for the same doctor and slot both succeed.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Identifier presence, before any datastore call
	// --------------------------------------------------
	if in.PatientID == 0 {
		return nil, httperr.ErrValidation("missing_patient_id", "Patient id is required.")
	}
	if in.DoctorID == 0 {
		return nil, httperr.ErrValidation("missing_doctor_id", "Doctor id is required.")
	}

	// --------------------------------------------------
	// 2. Doctor must exist, be approved and available
	// --------------------------------------------------
	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
		}
		return nil, httperr.ErrPersistence("doctor_lookup_failed", "Could not load doctor.")
	}
	if !doctor.Status {
		return nil, httperr.ErrUnavailable("doctor_not_approved", "Doctor is not approved for bookings.")
	}
	if !doctor.IsAvailable {
		return nil, httperr.ErrUnavailable("doctor_unavailable", "Doctor is currently unavailable.")
	}

	// --------------------------------------------------
	// 3. Date check + slot derivation
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Appointment date must be YYYY-MM-DD.")
	}

	slot, err := domain.SlotFor(in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Patient snapshot
	// --------------------------------------------------
	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("patient_not_found", "Patient not found.")
		}
		return nil, httperr.ErrPersistence("patient_lookup_failed", "Could not load patient.")
	}

	// --------------------------------------------------
	// 5. Compose row; payment copied verbatim
	// --------------------------------------------------
	consultation := in.ConsultationType
	if consultation == "" {
		consultation = "in-person"
	}

	ap := &models.Appointment{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,

		Age:                in.Age,
		Gender:             in.Gender,
		Address:            in.Address,
		ProblemDescription: in.ProblemDescription,
		Symptoms:           in.Symptoms,
		MedicalHistory:     in.MedicalHistory,

		AppointmentDate:  in.Date,
		AppointmentTime:  in.Time,
		SlotTime:         slot,
		ConsultationType: consultation,

		Status: string(domain.InitialStatus()),

		Payment: models.Payment{
			TransactionID: in.Payment.TransactionID,
			PayerName:     in.Payment.PayerName,
			PayerPhone:    in.Payment.PayerPhone,
			Method:        in.Payment.Method,
			Amount:        in.Payment.Amount,
			Currency:      in.Payment.Currency,
			Status:        in.Payment.TransactionID != "",
		},
	}

	// --------------------------------------------------
	// 6. Single insert, no retries
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrPersistence("failed_to_create_appointment", "Could not save appointment.")
	}

	// --------------------------------------------------
	// 7. Audit (fire and forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.PatientID,
		ActorType: models.UserTypePatient,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"doctor_id": in.DoctorID,
			"date":      in.Date,
			"slot":      slot,
		},
	})

	return ap, nil
}
