package service

import (
	"context"
	"errors"
	"time"

	"shareit/internal/models"
	"shareit/internal/repository"
	"gorm.io/gorm"
)

// ErrCommentWithoutBooking gates comments to users who actually borrowed
// the item: a booking of it must have ended before the comment is posted.
var ErrCommentWithoutBooking = errors.New("user has no completed booking of this item")

type CommentService interface {
	PostComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingSvc  BookingService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingSvc BookingService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingSvc:  bookingSvc,
	}
}

func (s *commentService) PostComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error) {
	exists, err := s.itemRepo.ExistsByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrItemNotFound
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	completed, err := s.bookingSvc.HasCompletedBooking(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrCommentWithoutBooking
	}

	comment := &models.Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: userID,
		Created:  now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author
	return comment, nil
}
