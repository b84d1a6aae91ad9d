package appointment

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/audit"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/models"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uint]*models.Patient
	doctors  map[uint]*models.Doctor

	appointments map[uint]*models.Appointment
	nextID       uint
	createCalls  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients:     make(map[uint]*models.Patient),
		doctors:      make(map[uint]*models.Doctor),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (m *mockRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.createCalls++
	ap.ID = m.nextID
	m.nextID++
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := m.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ap
	return &copied, nil
}

func (m *mockRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepo) ListAppointmentsForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.PatientID == patientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAppointmentsForDoctorDate(_ context.Context, doctorID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.DoctorID == doctorID && ap.AppointmentDate == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// -- No-op audit sink --

type noopSink struct{}

func (noopSink) Log(*uint, string, string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{}, zap.NewNop())
}

// -- Fixtures --

func seedRepo() *mockRepo {
	repo := newMockRepo()
	repo.patients[1] = &models.Patient{ID: 1, Name: "Alice Uwase", Email: "alice@example.com"}
	repo.doctors[7] = &models.Doctor{ID: 7, Name: "Jean Mugisha", Status: true, IsAvailable: true}
	return repo
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		PatientID:          1,
		DoctorID:           7,
		Date:               "2026-09-15",
		Time:               "11:00",
		Age:                34,
		Gender:             "female",
		Address:            "Kigali",
		ProblemDescription: "persistent headaches",
		Symptoms:           "headache, nausea",
		MedicalHistory:     "none",
		Payment: PaymentInput{
			TransactionID: "TXN-123",
			PayerName:     "Alice Uwase",
			PayerPhone:    "+250700000001",
			Method:        "mobile-money",
			Amount:        5000,
			Currency:      "RWF",
		},
	}
}

// -- Tests --

func kindOf(t *testing.T, err error) httperr.Kind {
	t.Helper()
	kind, ok := httperr.KindOf(err)
	if !ok {
		t.Fatalf("expected a business error, got %v", err)
	}
	return kind
}

func TestCreate_MissingPatientID(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.PatientID = 0

	_, err := uc.Execute(context.Background(), in)
	if kindOf(t, err) != httperr.KindValidation {
		t.Errorf("kind = %v, want validation", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("createCalls = %d, invalid input must not reach the datastore", repo.createCalls)
	}
}

func TestCreate_MissingDoctorID(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.DoctorID = 0

	_, err := uc.Execute(context.Background(), in)
	if kindOf(t, err) != httperr.KindValidation {
		t.Errorf("kind = %v, want validation", err)
	}
}

func TestCreate_DoctorNotFound(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.DoctorID = 99

	_, err := uc.Execute(context.Background(), in)
	if kindOf(t, err) != httperr.KindNotFound {
		t.Errorf("kind = %v, want not_found", err)
	}
}

func TestCreate_DoctorNotApproved(t *testing.T) {
	repo := seedRepo()
	repo.doctors[7].Status = false
	uc := NewCreateAppointment(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	if kindOf(t, err) != httperr.KindUnavailable {
		t.Errorf("kind = %v, want unavailable", err)
	}
}

func TestCreate_DoctorUnavailable(t *testing.T) {
	repo := seedRepo()
	repo.doctors[7].IsAvailable = false
	uc := NewCreateAppointment(repo, newTestDispatcher())

	// An unavailable doctor fails the booking regardless of input validity.
	_, err := uc.Execute(context.Background(), validInput())
	if kindOf(t, err) != httperr.KindUnavailable {
		t.Errorf("kind = %v, want unavailable", err)
	}
	if repo.createCalls != 0 {
		t.Error("unavailable doctor must not produce a write")
	}
}

func TestCreate_TimeOutsideSlots(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.Time = "23:59"

	_, err := uc.Execute(context.Background(), in)
	if kindOf(t, err) != httperr.KindValidation {
		t.Errorf("kind = %v, want validation", err)
	}
	if repo.createCalls != 0 {
		t.Error("out-of-slot time must not produce a write")
	}
}

func TestCreate_SlotDerivation(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.Time = "11:00"
	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.SlotTime != "11-12" {
		t.Errorf("slot for 11:00 = %q, want 11-12", ap.SlotTime)
	}

	in.Time = "14:00"
	ap, err = uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.SlotTime != "2-3" {
		t.Errorf("slot for 14:00 = %q, want 2-3", ap.SlotTime)
	}
}

func TestCreate_SnapshotsAndPayment(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ap.PatientName != "Alice Uwase" || ap.DoctorName != "Jean Mugisha" {
		t.Errorf("name snapshot = %q / %q", ap.PatientName, ap.DoctorName)
	}
	if !ap.Payment.Status {
		t.Error("payment status should default to true when a transaction id is present")
	}
	if ap.Payment.TransactionID != "TXN-123" || ap.Payment.Amount != 5000 || ap.Payment.Currency != "RWF" {
		t.Errorf("payment not copied verbatim: %+v", ap.Payment)
	}
	if ap.Status != "booked" {
		t.Errorf("status = %q, want booked", ap.Status)
	}
}

func TestCreate_NoTransactionID(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	in := validInput()
	in.Payment.TransactionID = ""

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.Payment.Status {
		t.Error("payment status should stay false without a transaction id")
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	fetched, err := repo.GetAppointmentByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("re-fetch failed: %v", err)
	}

	if fetched.ProblemDescription != created.ProblemDescription ||
		fetched.Symptoms != created.Symptoms ||
		fetched.MedicalHistory != created.MedicalHistory ||
		fetched.Payment != created.Payment ||
		fetched.SlotTime != created.SlotTime {
		t.Errorf("re-fetched appointment differs: %+v vs %+v", fetched, created)
	}
}

func TestCreate_SameSlotTwice(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, newTestDispatcher())

	// No uniqueness rule: two bookings for the same doctor and slot both
	// succeed.
	first, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second booking for the same slot failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("expected two distinct appointment rows")
	}
	if first.SlotTime != second.SlotTime || first.DoctorID != second.DoctorID {
		t.Error("expected both bookings in the same doctor slot")
	}
}
