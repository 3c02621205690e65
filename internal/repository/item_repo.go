package repository

import (
	"context"

	"shareit/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	FindAllByOwnerID(ctx context.Context, ownerID int64) ([]models.Item, error)
	FindAllByRequestID(ctx context.Context, requestID int64) ([]models.Item, error)
	// Search matches available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Preload("Owner").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindAllByOwnerID(ctx context.Context, ownerID int64) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindAllByRequestID(ctx context.Context, requestID int64) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
