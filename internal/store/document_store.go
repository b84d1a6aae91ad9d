package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/models"
)

type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Create(ctx context.Context, d *models.Document) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *DocumentStore) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var d models.Document
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// ListForPatient returns the documents the patient dashboard may show.
func (s *DocumentStore) ListForPatient(ctx context.Context, patientID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.WithContext(ctx).
		Where("patient_id = ? AND patient_visible = ?", patientID, true).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocumentStore) ListForDoctor(ctx context.Context, doctorID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocumentStore) Update(ctx context.Context, id uint, patch map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(patch).Error
}

func (s *DocumentStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Document{}, id).Error
}
