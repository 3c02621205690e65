package service

import (
	"context"
	"errors"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
)

var ErrRequestNotFound = errors.New("item request not found")

// RequestWithItems pairs an item request with the items offered for it.
type RequestWithItems struct {
	Request *models.ItemRequest
	Items   []models.Item
}

type ItemRequestService interface {
	PostItemRequest(ctx context.Context, description string, userID int64) (*models.ItemRequest, error)
	FindOwnItemRequests(ctx context.Context, userID int64) ([]RequestWithItems, error)
	FindOtherItemRequests(ctx context.Context, userID int64, offset, limit int) ([]RequestWithItems, error)
	FindItemRequestByID(ctx context.Context, requestID, userID int64) (*RequestWithItems, error)
}

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *itemRequestService) PostItemRequest(ctx context.Context, description string, userID int64) (*models.ItemRequest, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *itemRequestService) FindOwnItemRequests(ctx context.Context, userID int64) ([]RequestWithItems, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindAllByRequesterID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *itemRequestService) FindOtherItemRequests(ctx context.Context, userID int64, offset, limit int) ([]RequestWithItems, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindAllOthers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *itemRequestService) FindItemRequestByID(ctx context.Context, requestID, userID int64) (*RequestWithItems, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.requestRepo.ExistsByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRequestNotFound
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindAllByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &RequestWithItems{Request: request, Items: items}, nil
}

func (s *itemRequestService) withItems(ctx context.Context, requests []models.ItemRequest) ([]RequestWithItems, error) {
	result := make([]RequestWithItems, 0, len(requests))
	for i := range requests {
		items, err := s.itemRepo.FindAllByRequestID(ctx, requests[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, RequestWithItems{Request: &requests[i], Items: items})
	}
	return result, nil
}

func (s *itemRequestService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
