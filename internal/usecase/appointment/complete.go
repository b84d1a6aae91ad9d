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

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks a booked appointment as completed. Only the assigned doctor
// (or an admin) may complete a consultation.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	if actor.Type == models.UserTypePatient {
		return nil, httperr.ErrValidation("patient_cannot_complete", "Patients cannot complete appointments.")
	}

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

	if err := domain.Complete(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrPersistence("failed_to_complete_appointment", "Could not complete appointment.")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &actor.ID,
		ActorType: actor.Type,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
