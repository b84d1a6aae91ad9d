package handlers

import (
	"io"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itabaza/hms-api/internal/audit"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/httpresp"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/models"
	"github.com/itabaza/hms-api/internal/storage"
	"github.com/itabaza/hms-api/internal/store"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type DocumentHandler struct {
	documents *store.DocumentStore
	patients  *store.PatientStore
	storage   *storage.S3Storage
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewDocumentHandler(
	documents *store.DocumentStore,
	patients *store.PatientStore,
	s3 *storage.S3Storage,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		patients:  patients,
		storage:   s3,
		audit:     auditDispatcher,
		log:       log,
	}
}

// ======================================================
// UPLOAD (doctor)
// ======================================================

func (h *DocumentHandler) Upload(c *gin.Context) {
	doctorID, role := currentUser(c)
	if role != middleware.RoleDoctor {
		httperr.Forbidden(c, "doctors_only", "Only doctors can upload documents.")
		return
	}

	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		httperr.BadRequest(c, "invalid_patient_id", "Patient id must be a positive integer.")
		return
	}

	ctx := c.Request.Context()

	patient, err := h.patients.GetByID(ctx, patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_patient", "Could not load patient.")
		return
	}
	if patient == nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field 'file' is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File exceeds the 10 MiB limit.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read upload.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		httperr.Internal(c, "failed_to_read_file", "Could not read upload.")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	fileName := fileHeader.Filename

	// Image uploads are re-encoded to webp before they hit the bucket.
	if storage.IsImageMime(mimeType) {
		if converted, err := storage.EncodeWebP(data); err == nil {
			data = converted
			mimeType = "image/webp"
			fileName = strings.TrimSuffix(fileName, path.Ext(fileName)) + ".webp"
		} else {
			h.log.Warn("webp conversion failed, storing original", zap.String("file", fileName), zap.Error(err))
		}
	}

	key := storage.ObjectKey(patientID, fileName)
	url, err := h.storage.Upload(ctx, key, mimeType, data)
	if err != nil {
		httperr.Internal(c, "failed_to_store_file", "Could not store file.")
		return
	}

	doc := models.Document{
		PatientID:      patientID,
		DoctorID:       doctorID,
		FileName:       fileName,
		DocumentType:   c.PostForm("document_type"),
		FileURL:        url,
		FileSize:       int64(len(data)),
		MimeType:       mimeType,
		PatientVisible: true,
	}

	if err := h.documents.Create(ctx, &doc); err != nil {
		httperr.Internal(c, "failed_to_create_document", "Could not save document record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   &doctorID,
		ActorType: middleware.RoleDoctor,
		Action:    "document_uploaded",
		Entity:    "document",
		EntityID:  &doc.ID,
		Metadata:  map[string]any{"patient_id": patientID, "mime": mimeType},
	})

	httpresp.Created(c, doc)
}

// ======================================================
// ACCESS FLAG
// ======================================================

type UpdateAccessRequest struct {
	PatientVisible *bool `json:"patient_visible" binding:"required"`
}

func (h *DocumentHandler) SetAccess(c *gin.Context) {
	doctorID, role := currentUser(c)
	if role != middleware.RoleDoctor && role != middleware.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Only doctors can change document access.")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_document_id", "Document id must be a positive integer.")
		return
	}

	var req UpdateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "patient_visible is required.")
		return
	}

	ctx := c.Request.Context()

	doc, err := h.documents.GetByID(ctx, id)
	if err != nil {
		httperr.Internal(c, "failed_to_load_document", "Could not load document.")
		return
	}
	if doc == nil {
		httperr.NotFound(c, "document_not_found", "Document not found.")
		return
	}
	if role == middleware.RoleDoctor && doc.DoctorID != doctorID {
		httperr.NotFound(c, "document_not_found", "Document not found.")
		return
	}

	if err := h.documents.Update(ctx, id, map[string]any{"patient_visible": *req.PatientVisible}); err != nil {
		httperr.Internal(c, "failed_to_update_document", "Could not update document.")
		return
	}

	httpresp.OK(c, gin.H{"id": id, "patient_visible": *req.PatientVisible})
}

// ======================================================
// DOCTOR LISTING
// ======================================================

func (h *DocumentHandler) ListMine(c *gin.Context) {
	doctorID, role := currentUser(c)
	if role != middleware.RoleDoctor {
		httperr.Forbidden(c, "doctors_only", "Only doctors can list their uploads.")
		return
	}

	docs, err := h.documents.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Could not list documents.")
		return
	}

	httpresp.List(c, docs)
}
