package repository

import (
	"context"

	"shareit/internal/models"
	"gorm.io/gorm"
)

type ItemRequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	FindAllByRequesterID(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	// FindAllOthers pages through requests posted by everyone except
	// requesterID, newest first.
	FindAllOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type itemRequestRepository struct {
	db *gorm.DB
}

func NewItemRequestRepository(db *gorm.DB) ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *itemRequestRepository) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *itemRequestRepository) FindAllByRequesterID(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *itemRequestRepository) FindAllOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *itemRequestRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ItemRequest{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
