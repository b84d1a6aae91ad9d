package appointment

import (
	"context"
	"testing"

	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/models"
)

func seedBooked(repo *mockRepo) *models.Appointment {
	ap := &models.Appointment{
		ID:        10,
		PatientID: 1,
		DoctorID:  7,
		Status:    "booked",
	}
	repo.appointments[ap.ID] = ap
	repo.nextID = 11
	return ap
}

func TestCancel_ByOwningPatient(t *testing.T) {
	repo := seedRepo()
	seedBooked(repo)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	ap, err := uc.Execute(context.Background(), Actor{ID: 1, Type: models.UserTypePatient}, 10)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.Status != "cancelled" {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Error("CancelledAt should be stamped")
	}

	stored, _ := repo.GetAppointmentByID(context.Background(), 10)
	if stored.Status != "cancelled" {
		t.Errorf("stored status = %q, cancellation was not persisted", stored.Status)
	}
}

func TestCancel_ForeignPatientSeesNotFound(t *testing.T) {
	repo := seedRepo()
	seedBooked(repo)
	uc := NewCancelAppointment(repo, newTestDispatcher())

	// Ownership failures masquerade as not-found so the row's existence is
	// not leaked.
	_, err := uc.Execute(context.Background(), Actor{ID: 2, Type: models.UserTypePatient}, 10)
	if kindOf(t, err) != httperr.KindNotFound {
		t.Errorf("kind = %v, want not_found", err)
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := seedRepo()
	ap := seedBooked(repo)
	ap.Status = "cancelled"
	uc := NewCancelAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), Actor{ID: 1, Type: models.UserTypePatient}, 10)
	if kindOf(t, err) != httperr.KindValidation {
		t.Errorf("kind = %v, want validation", err)
	}
}

func TestCancel_MissingAppointment(t *testing.T) {
	repo := seedRepo()
	uc := NewCancelAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), Actor{ID: 1, Type: models.UserTypePatient}, 404)
	if kindOf(t, err) != httperr.KindNotFound {
		t.Errorf("kind = %v, want not_found", err)
	}
}

func TestComplete_ByAssignedDoctor(t *testing.T) {
	repo := seedRepo()
	seedBooked(repo)
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	ap, err := uc.Execute(context.Background(), Actor{ID: 7, Type: models.UserTypeDoctor}, 10)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.Status != "completed" {
		t.Errorf("status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("CompletedAt should be stamped")
	}
}

func TestComplete_PatientRejected(t *testing.T) {
	repo := seedRepo()
	seedBooked(repo)
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), Actor{ID: 1, Type: models.UserTypePatient}, 10)
	if !httperr.IsBusiness(err, "patient_cannot_complete") {
		t.Errorf("err = %v, want patient_cannot_complete", err)
	}
}

func TestComplete_OtherDoctorSeesNotFound(t *testing.T) {
	repo := seedRepo()
	seedBooked(repo)
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), Actor{ID: 8, Type: models.UserTypeDoctor}, 10)
	if kindOf(t, err) != httperr.KindNotFound {
		t.Errorf("kind = %v, want not_found", err)
	}
}

func TestComplete_CancelledAppointment(t *testing.T) {
	repo := seedRepo()
	ap := seedBooked(repo)
	ap.Status = "cancelled"
	uc := NewCompleteAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), Actor{ID: 7, Type: models.UserTypeDoctor}, 10)
	if kindOf(t, err) != httperr.KindValidation {
		t.Errorf("kind = %v, want validation", err)
	}
}
