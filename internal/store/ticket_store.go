package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itabaza/hms-api/internal/models"
)

type TicketStore struct {
	db *gorm.DB
}

func NewTicketStore(db *gorm.DB) *TicketStore {
	return &TicketStore{db: db}
}

func (s *TicketStore) Create(ctx context.Context, t *models.SupportTicket) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *TicketStore) GetByID(ctx context.Context, id uint) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *TicketStore) ListForUser(ctx context.Context, userID uint, userType string) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND user_type = ?", userID, userType).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketStore) List(ctx context.Context) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketStore) Update(ctx context.Context, id uint, patch map[string]any) error {
	return s.db.WithContext(ctx).Model(&models.SupportTicket{}).Where("id = ?", id).Updates(patch).Error
}

func (s *TicketStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.SupportTicket{}, id).Error
}
