package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/models"
)

type DoctorStore struct {
	db *gorm.DB
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{db: db}
}

func (s *DoctorStore) Create(ctx context.Context, d *models.Doctor) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *DoctorStore) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.WithContext(ctx).Preload("Department").First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *DoctorStore) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *DoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).Preload("Department").Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// ListAvailable returns approved doctors whose availability toggle is on.
func (s *DoctorStore) ListAvailable(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).
		Preload("Department").
		Where("status = ? AND is_available = ?", true, true).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorStore) ListByDepartment(ctx context.Context, departmentID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).
		Where("department_id = ? AND status = ?", departmentID, true).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorStore) Update(ctx context.Context, id uint, patch map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).Updates(patch).Error
}

func (s *DoctorStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Doctor{}, id).Error
}
