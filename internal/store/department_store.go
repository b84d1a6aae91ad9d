package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/models"
)

type DepartmentStore struct {
	db *gorm.DB
}

func NewDepartmentStore(db *gorm.DB) *DepartmentStore {
	return &DepartmentStore{db: db}
}

func (s *DepartmentStore) Create(ctx context.Context, d *models.Department) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *DepartmentStore) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	var d models.Department
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *DepartmentStore) List(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *DepartmentStore) Update(ctx context.Context, id uint, patch map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.Department{}).Where("id = ?", id).Updates(patch).Error
}

func (s *DepartmentStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Department{}, id).Error
}
