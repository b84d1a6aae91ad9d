package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itabaza/hms-api/internal/audit"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/mail"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/models"
	"github.com/itabaza/hms-api/internal/store"
)

type TicketHandler struct {
	tickets  *store.TicketStore
	patients *store.PatientStore
	doctors  *store.DoctorStore
	mailer   *mail.Mailer
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewTicketHandler(
	tickets *store.TicketStore,
	patients *store.PatientStore,
	doctors *store.DoctorStore,
	mailer *mail.Mailer,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *TicketHandler {
	return &TicketHandler{
		tickets:  tickets,
		patients: patients,
		doctors:  doctors,
		mailer:   mailer,
		audit:    auditDispatcher,
		log:      log,
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

func validPriority(p string) bool {
	switch p {
	case "low", "medium", "high":
		return true
	}
	return false
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID, role := currentUser(c)
	if role != middleware.RolePatient && role != middleware.RoleDoctor {
		httperr.Forbidden(c, "forbidden", "Only patients and doctors can open tickets.")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if !validPriority(priority) {
		httperr.BadRequest(c, "invalid_priority", "Priority must be low, medium or high.")
		return
	}

	ticket := models.SupportTicket{
		UserID:      userID,
		UserType:    role,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		Status:      "open",
	}

	ctx := c.Request.Context()
	if err := h.tickets.Create(ctx, &ticket); err != nil {
		httperr.Internal(c, "failed_to_create_ticket", "Could not create ticket.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   &userID,
		ActorType: role,
		Action:    "ticket_opened",
		Entity:    "support_ticket",
		EntityID:  &ticket.ID,
	})

	if email := h.lookupEmail(c, userID, role); email != "" {
		go func() {
			if err := h.mailer.SendTicketReceipt(email, ticket.Subject, ticket.ID); err != nil {
				h.log.Warn("ticket receipt mail failed", zap.Uint("ticket_id", ticket.ID), zap.Error(err))
			}
		}()
	}

	httpresp.Created(c, ticket)
}

func (h *TicketHandler) lookupEmail(c *gin.Context, userID uint, role string) string {
	ctx := c.Request.Context()
	switch role {
	case middleware.RolePatient:
		if p, err := h.patients.GetByID(ctx, userID); err == nil && p != nil {
			return p.Email
		}
	case middleware.RoleDoctor:
		if d, err := h.doctors.GetByID(ctx, userID); err == nil && d != nil {
			return d.Email
		}
	}
	return ""
}

// ======================================================
// LIST
// ======================================================

func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, role := currentUser(c)

	tickets, err := h.tickets.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Internal(c, "failed_to_list_tickets", "Could not list tickets.")
		return
	}

	httpresp.List(c, tickets)
}

func (h *TicketHandler) ListAll(c *gin.Context) {
	tickets, err := h.tickets.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_tickets", "Could not list tickets.")
		return
	}

	httpresp.List(c, tickets)
}

// ======================================================
// STATUS (support staff)
// ======================================================

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func validTicketStatus(s string) bool {
	switch s {
	case "open", "in_progress", "resolved", "closed":
		return true
	}
	return false
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	adminID, _ := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_ticket_id", "Ticket id must be a positive integer.")
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}
	if !validTicketStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status must be open, in_progress, resolved or closed.")
		return
	}

	ctx := c.Request.Context()

	ticket, err := h.tickets.GetByID(ctx, id)
	if err != nil {
		httperr.Internal(c, "failed_to_load_ticket", "Could not load ticket.")
		return
	}
	if ticket == nil {
		httperr.NotFound(c, "ticket_not_found", "Ticket not found.")
		return
	}

	if err := h.tickets.Update(ctx, id, map[string]any{"status": req.Status}); err != nil {
		httperr.Internal(c, "failed_to_update_ticket", "Could not update ticket.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: middleware.RoleAdmin,
		Action:    "ticket_status_changed",
		Entity:    "support_ticket",
		EntityID:  &id,
		Metadata:  map[string]any{"status": req.Status},
	})

	httpresp.OK(c, gin.H{"id": id, "status": req.Status})
}
