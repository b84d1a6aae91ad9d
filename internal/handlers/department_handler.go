package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/models"
	"github.com/itabaza/hms-api/internal/store"
)

type DepartmentHandler struct {
	departments *store.DepartmentStore
}

func NewDepartmentHandler(departments *store.DepartmentStore) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_departments", "Could not list departments.")
		return
	}

	httpresp.List(c, departments)
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dept := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.departments.Create(c.Request.Context(), &dept); err != nil {
		httperr.Internal(c, "failed_to_create_department", "Could not create department.")
		return
	}

	httpresp.Created(c, dept)
}
