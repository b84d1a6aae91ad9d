package appointment

import (
	"testing"
	"time"

	"github.com/itabaza/hms-api/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusBooked)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel on booked appointment failed: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %q, want %q", ap.Status, StatusCancelled)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Error("CancelledAt not set")
	}

	if err := Cancel(ap, now); err == nil {
		t.Error("Cancel on cancelled appointment should fail")
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusBooked)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete on booked appointment failed: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want %q", ap.Status, StatusCompleted)
	}
	if ap.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	if err := Complete(ap, now); err == nil {
		t.Error("Complete on completed appointment should fail")
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if err := Complete(cancelled, now); err == nil {
		t.Error("Complete on cancelled appointment should fail")
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusBooked {
		t.Errorf("InitialStatus() = %q, want %q", InitialStatus(), StatusBooked)
	}
}
