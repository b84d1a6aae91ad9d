package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itabaza/hms-api/internal/audit"
	"github.com/itabaza/hms-api/internal/cache"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/store"
)

type DoctorHandler struct {
	doctors *store.DoctorStore
	cache   *cache.DoctorCache
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewDoctorHandler(
	doctors *store.DoctorStore,
	doctorCache *cache.DoctorCache,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		doctors: doctors,
		cache:   doctorCache,
		audit:   auditDispatcher,
		log:     log,
	}
}

// ======================================================
// PUBLIC LISTINGS
// ======================================================

func (h *DoctorHandler) ListAvailable(c *gin.Context) {
	ctx := c.Request.Context()

	if doctors, ok := h.cache.GetAvailable(ctx); ok {
		httpresp.List(c, doctors)
		return
	}

	doctors, err := h.doctors.ListAvailable(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	h.cache.SetAvailable(ctx, doctors)
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_doctor_id", "Doctor id must be a positive integer.")
		return
	}

	doctor, err := h.doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_load_doctor", "Could not load doctor.")
		return
	}
	if doctor == nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) ListByDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_department_id", "Department id must be a positive integer.")
		return
	}

	doctors, err := h.doctors.ListByDepartment(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

// ======================================================
// AVAILABILITY TOGGLE (doctor)
// ======================================================

type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *DoctorHandler) UpdateAvailability(c *gin.Context) {
	doctorID, _ := currentUser(c)

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_available is required.")
		return
	}

	ctx := c.Request.Context()
	if err := h.doctors.Update(ctx, doctorID, map[string]any{"is_available": *req.IsAvailable}); err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update availability.")
		return
	}

	h.cache.Invalidate(ctx)

	h.audit.Dispatch(audit.Event{
		ActorID:   &doctorID,
		ActorType: middleware.RoleDoctor,
		Action:    "doctor_availability_changed",
		Entity:    "doctor",
		EntityID:  &doctorID,
		Metadata:  map[string]any{"is_available": *req.IsAvailable},
	})

	httpresp.OK(c, gin.H{"is_available": *req.IsAvailable})
}

// ======================================================
// APPROVAL (admin)
// ======================================================

type UpdateStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

func (h *DoctorHandler) SetStatus(c *gin.Context) {
	adminID, _ := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_doctor_id", "Doctor id must be a positive integer.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}

	ctx := c.Request.Context()

	doctor, err := h.doctors.GetByID(ctx, id)
	if err != nil {
		httperr.Internal(c, "failed_to_load_doctor", "Could not load doctor.")
		return
	}
	if doctor == nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	if err := h.doctors.Update(ctx, id, map[string]any{"status": *req.Status}); err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update status.")
		return
	}

	h.cache.Invalidate(ctx)

	h.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: middleware.RoleAdmin,
		Action:    "doctor_status_changed",
		Entity:    "doctor",
		EntityID:  &id,
		Metadata:  map[string]any{"status": *req.Status},
	})

	httpresp.OK(c, gin.H{"id": id, "status": *req.Status})
}
