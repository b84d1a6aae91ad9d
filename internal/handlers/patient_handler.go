package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/store"
	"github.com/itabaza/hms-api/internal/validators"
)

type PatientHandler struct {
	patients *store.PatientStore
}

func NewPatientHandler(patients *store.PatientStore) *PatientHandler {
	return &PatientHandler{patients: patients}
}

func (h *PatientHandler) GetMe(c *gin.Context) {
	userID, role := currentUser(c)
	if role != middleware.RolePatient {
		httperr.Forbidden(c, "patients_only", "Only patients have a patient profile.")
		return
	}

	patient, err := h.patients.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_patient", "Could not load profile.")
		return
	}
	if patient == nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	httpresp.OK(c, patient)
}

type UpdatePatientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *PatientHandler) UpdateMe(c *gin.Context) {
	userID, role := currentUser(c)
	if role != middleware.RolePatient {
		httperr.Forbidden(c, "patients_only", "Only patients have a patient profile.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	patch := map[string]any{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Phone != "" {
		patch["phone"] = req.Phone
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
			return
		}
		patch["email"] = email
	}
	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}

	ctx := c.Request.Context()
	if err := h.patients.Update(ctx, userID, patch); err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not update profile.")
		return
	}

	patient, err := h.patients.GetByID(ctx, userID)
	if err != nil || patient == nil {
		httperr.Internal(c, "failed_to_load_patient", "Could not reload profile.")
		return
	}

	httpresp.OK(c, patient)
}
