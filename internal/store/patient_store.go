package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/models"
)

// Stores are thin per-entity wrappers: one gorm call per operation. Lookups
// return (nil, nil) when the row does not exist so callers can tell absence
// apart from a failing query.

type PatientStore struct {
	db *gorm.DB
}

func NewPatientStore(db *gorm.DB) *PatientStore {
	return &PatientStore{db: db}
}

func (s *PatientStore) Create(ctx context.Context, p *models.Patient) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PatientStore) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PatientStore) GetByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PatientStore) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *PatientStore) Update(ctx context.Context, id uint, patch map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Updates(patch).Error
}

func (s *PatientStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Patient{}, id).Error
}
