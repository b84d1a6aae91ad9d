package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/itabaza/hms-api/internal/domain/appointment"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/mail"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/models"
	ucAppointment "github.com/itabaza/hms-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type createAppointmentUsecase interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type appointmentStateUsecase interface {
	Execute(ctx context.Context, actor ucAppointment.Actor, appointmentID uint) (*models.Appointment, error)
}

type patientGetter interface {
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
}

type AppointmentHandler struct {
	createUC   createAppointmentUsecase
	cancelUC   appointmentStateUsecase
	completeUC appointmentStateUsecase

	repo     domain.Repository
	patients patientGetter
	mailer   *mail.Mailer
	log      *zap.Logger
}

func NewAppointmentHandler(
	createUC createAppointmentUsecase,
	cancelUC appointmentStateUsecase,
	completeUC appointmentStateUsecase,
	repo domain.Repository,
	patients patientGetter,
	mailer *mail.Mailer,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		repo:       repo,
		patients:   patients,
		mailer:     mailer,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PaymentRequest struct {
	TransactionID string  `json:"transaction_id"`
	PayerName     string  `json:"payer_name"`
	PayerPhone    string  `json:"payer_phone"`
	Method        string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

type CreateAppointmentRequest struct {
	Date string `json:"appointment_date" binding:"required"`
	Time string `json:"appointment_time" binding:"required"`

	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Address            string `json:"address"`
	ProblemDescription string `json:"problem_description"`
	Symptoms           string `json:"symptoms"`
	MedicalHistory     string `json:"medical_history"`
	ConsultationType   string `json:"consultation_type"`

	Payment PaymentRequest `json:"payment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	patientID, role := currentUser(c)
	if role != middleware.RolePatient {
		httperr.Forbidden(c, "patients_only", "Only patients can book appointments.")
		return
	}

	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		httperr.BadRequest(c, "invalid_doctor_id", "Doctor id must be a positive integer.")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,

		Date: req.Date,
		Time: req.Time,

		Age:                req.Age,
		Gender:             req.Gender,
		Address:            req.Address,
		ProblemDescription: req.ProblemDescription,
		Symptoms:           req.Symptoms,
		MedicalHistory:     req.MedicalHistory,
		ConsultationType:   req.ConsultationType,

		Payment: ucAppointment.PaymentInput{
			TransactionID: req.Payment.TransactionID,
			PayerName:     req.Payment.PayerName,
			PayerPhone:    req.Payment.PayerPhone,
			Method:        req.Payment.Method,
			Amount:        req.Payment.Amount,
			Currency:      req.Payment.Currency,
		},
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	h.sendConfirmation(ap)

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) sendConfirmation(ap *models.Appointment) {
	patient, err := h.patients.GetByID(context.Background(), ap.PatientID)
	if err != nil || patient == nil {
		return
	}

	go func() {
		if err := h.mailer.SendBookingConfirmation(
			patient.Email, ap.PatientName, ap.DoctorName, ap.AppointmentDate, ap.SlotTime,
		); err != nil {
			h.log.Warn("booking confirmation mail failed", zap.Uint("appointment_id", ap.ID), zap.Error(err))
		}
	}()
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	userID, role := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return
	}

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	actor := ucAppointment.Actor{ID: userID, Type: role}
	if !actorOwns(actor, ap) {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

func actorOwns(actor ucAppointment.Actor, ap *models.Appointment) bool {
	switch actor.Type {
	case middleware.RolePatient:
		return ap.PatientID == actor.ID
	case middleware.RoleDoctor:
		return ap.DoctorID == actor.ID
	case middleware.RoleAdmin:
		return true
	}
	return false
}

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	userID, role := currentUser(c)

	patientID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_patient_id", "Patient id must be a positive integer.")
		return
	}

	if role == middleware.RolePatient && userID != patientID {
		httperr.Forbidden(c, "forbidden", "Patients can only view their own appointments.")
		return
	}

	aps, err := h.repo.ListAppointmentsForPatient(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	doctorID, role := currentUser(c)
	if role != middleware.RoleDoctor {
		httperr.Forbidden(c, "doctors_only", "Only doctors can view their schedule.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	aps, err := h.repo.ListAppointmentsForDoctorDate(c.Request.Context(), doctorID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, role := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ucAppointment.Actor{ID: userID, Type: role}, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID, role := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), ucAppointment.Actor{ID: userID, Type: role}, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// SLOTS
// ======================================================

// ListSlots exposes the fixed slot table so clients can render pickers.
func (h *AppointmentHandler) ListSlots(c *gin.Context) {
	type slotDTO struct {
		Label string `json:"label"`
		Start string `json:"start"`
		End   string `json:"end"`
	}

	var out []slotDTO
	for _, s := range domain.Slots() {
		out = append(out, slotDTO{
			Label: s.Label,
			Start: minutesToClock(s.StartMin),
			End:   minutesToClock(s.EndMin),
		})
	}

	httpresp.List(c, out)
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
