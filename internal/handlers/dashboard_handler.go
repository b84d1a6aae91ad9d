package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/dto"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/models"
	"github.com/itabaza/hms-api/internal/store"
)

type DashboardHandler struct {
	db        *gorm.DB
	documents *store.DocumentStore
}

func NewDashboardHandler(db *gorm.DB, documents *store.DocumentStore) *DashboardHandler {
	return &DashboardHandler{db: db, documents: documents}
}

// ======================================================
// PATIENT DASHBOARD
// ======================================================

func (h *DashboardHandler) PatientDashboard(c *gin.Context) {
	userID, role := currentUser(c)

	patientID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_patient_id", "Patient id must be a positive integer.")
		return
	}
	if role == middleware.RolePatient && userID != patientID {
		httperr.Forbidden(c, "forbidden", "Patients can only view their own dashboard.")
		return
	}

	today := time.Now().Format("2006-01-02")

	var upcoming, completed, documents, openTickets int64

	if err := h.db.Model(&models.Appointment{}).
		Where("patient_id = ? AND status = ? AND appointment_date >= ?", patientID, "booked", today).
		Count(&upcoming).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard.")
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("patient_id = ? AND status = ?", patientID, "completed").
		Count(&completed).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard.")
		return
	}

	if err := h.db.Model(&models.Document{}).
		Where("patient_id = ? AND patient_visible = ?", patientID, true).
		Count(&documents).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard.")
		return
	}

	if err := h.db.Model(&models.SupportTicket{}).
		Where("user_id = ? AND user_type = ? AND status IN ?", patientID, models.UserTypePatient, []string{"open", "in_progress"}).
		Count(&openTickets).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard.")
		return
	}

	httpresp.OK(c, dto.PatientDashboardDTO{
		PatientID:             patientID,
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
		Documents:             documents,
		OpenTickets:           openTickets,
	})
}

// ======================================================
// PATIENT DOCUMENTS
// ======================================================

func (h *DashboardHandler) PatientDocuments(c *gin.Context) {
	userID, role := currentUser(c)

	patientID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_patient_id", "Patient id must be a positive integer.")
		return
	}
	if role == middleware.RolePatient && userID != patientID {
		httperr.Forbidden(c, "forbidden", "Patients can only view their own documents.")
		return
	}

	docs, err := h.documents.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Could not list documents.")
		return
	}

	out := make([]dto.DocumentListDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.DocumentListDTO{
			ID:           d.ID,
			FileName:     d.FileName,
			DocumentType: d.DocumentType,
			FileURL:      d.FileURL,
			FileSize:     d.FileSize,
			MimeType:     d.MimeType,
			UploadedAt:   d.CreatedAt,
		})
	}

	httpresp.List(c, out)
}
