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

// Actor identifies who is acting on an appointment. Patients may only touch
// their own bookings, doctors only bookings assigned to them.
type Actor struct {
	ID   uint
	Type string
}

func (a Actor) owns(ap *models.Appointment) bool {
	switch a.Type {
	case models.UserTypePatient:
		return ap.PatientID == a.ID
	case models.UserTypeDoctor:
		return ap.DoctorID == a.ID
	case "admin":
		return true
	}
	return false
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, httperr.ErrPersistence("appointment_lookup_failed", "Could not load appointment.")
	}

	if !actor.owns(ap) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrPersistence("failed_to_cancel_appointment", "Could not cancel appointment.")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &actor.ID,
		ActorType: actor.Type,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
