package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

// ItemDetails is an item together with the booking/comment context shown on
// item views. LastBooking/NextBooking are only populated for the owner.
type ItemDetails struct {
	Item        *models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []models.Comment
}

type ItemService interface {
	AddItem(ctx context.Context, req dto.CreateItemRequest, userID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int64, req dto.UpdateItemRequest, userID int64) (*models.Item, error)
	FindItemByID(ctx context.Context, itemID, userID int64) (*ItemDetails, error)
	FindUserItems(ctx context.Context, userID int64) ([]ItemDetails, error)
	SearchItems(ctx context.Context, text string) ([]models.Item, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

func (s *itemService) AddItem(ctx context.Context, req dto.CreateItemRequest, userID int64) (*models.Item, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     userID,
		RequestID:   req.RequestID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID int64, req dto.UpdateItemRequest, userID int64) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	if item.OwnerID != userID {
		return nil, ErrNotItemOwner
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) FindItemByID(ctx context.Context, itemID, userID int64) (*ItemDetails, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.FindAllByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &ItemDetails{Item: item, Comments: comments}
	if item.OwnerID == userID {
		// The single-item view tolerates a last booking still running for
		// up to an hour.
		if err := s.attachBookings(ctx, details, time.Hour); err != nil {
			return nil, err
		}
	}
	return details, nil
}

func (s *itemService) FindUserItems(ctx context.Context, userID int64) ([]ItemDetails, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	items, err := s.itemRepo.FindAllByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detailsList := make([]ItemDetails, 0, len(items))
	for i := range items {
		comments, err := s.commentRepo.FindAllByItemID(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		details := ItemDetails{Item: &items[i], Comments: comments}
		if err := s.attachBookings(ctx, &details, 0); err != nil {
			return nil, err
		}
		detailsList = append(detailsList, details)
	}
	return detailsList, nil
}

func (s *itemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

// attachBookings resolves the owner-only last/next booking views. "Last"
// means ended before now+grace; a REJECTED booking is never surfaced in
// either slot.
func (s *itemService) attachBookings(ctx context.Context, details *ItemDetails, grace time.Duration) error {
	now := time.Now()

	last, err := s.bookingRepo.FindLastForItem(ctx, details.Item.ID, now.Add(grace))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if last != nil && last.Status != models.StatusRejected {
		details.LastBooking = last
	}

	next, err := s.bookingRepo.FindNextForItem(ctx, details.Item.ID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if next != nil && next.Status != models.StatusRejected {
		details.NextBooking = next
	}
	return nil
}
