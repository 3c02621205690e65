package service

import (
	"context"
	"errors"
	"log"
	"time"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrStartAfterEnd     = errors.New("booking start must not be after its end")
	ErrStartEqualsEnd    = errors.New("booking start must not equal its end")
	ErrStartInPast       = errors.New("booking start must be in the future")
	ErrOwnItemBooking    = errors.New("owner cannot book their own item")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrNotItemOwner      = errors.New("user is not the owner of the booked item")
	ErrBookingNotVisible = errors.New("booking is not visible to this user")
	ErrAlreadyDecided    = errors.New("booking has already been approved or rejected")
)

// EventPublisher pushes booking lifecycle events to the message broker.
// A nil publisher disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// BookingEvent is the payload published on booking lifecycle transitions.
type BookingEvent struct {
	BookingID int64                `json:"booking_id"`
	ItemID    int64                `json:"item_id"`
	BookerID  int64                `json:"booker_id"`
	OwnerID   int64                `json:"owner_id"`
	Status    models.BookingStatus `json:"status"`
}

type BookingService interface {
	AddBooking(ctx context.Context, req dto.CreateBookingRequest, userID int64) (*models.Booking, error)
	UpdateBooking(ctx context.Context, userID, bookingID int64, approved bool) (*models.Booking, error)
	FindBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	FindBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, offset, limit int) ([]models.Booking, error)
	FindBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, offset, limit int) ([]models.Booking, error)
	HasCompletedBooking(ctx context.Context, userID, itemID int64, asOf time.Time) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	publisher   EventPublisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) AddBooking(ctx context.Context, req dto.CreateBookingRequest, userID int64) (*models.Booking, error) {
	if err := checkBookingPeriod(req.Start, req.End, time.Now()); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	booker, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if item.OwnerID == userID {
		return nil, ErrOwnItemBooking
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	// Overlapping bookings on the same item are allowed: the owner decides
	// which WAITING booking to approve.
	booking := &models.Booking{
		Start:    req.Start,
		End:      req.End,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	booking.Item = item
	booking.Booker = booker
	s.publish(ctx, "booking.created", booking)

	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if !booking.IsOwner(userID) {
		return nil, ErrNotItemOwner
	}
	if booking.IsDecided() {
		return nil, ErrAlreadyDecided
	}

	status := models.StatusRejected
	routingKey := "booking.rejected"
	if approved {
		status = models.StatusApproved
		routingKey = "booking.approved"
	}

	// Conditional update: if a concurrent decision got there first no row
	// matches and this caller loses.
	rows, err := s.bookingRepo.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyDecided
	}

	booking.Status = status
	s.publish(ctx, routingKey, booking)

	return booking, nil
}

func (s *bookingService) FindBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if !booking.IsOwnerOrBooker(userID) {
		return nil, ErrBookingNotVisible
	}

	return booking, nil
}

func (s *bookingService) FindBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, offset, limit int) ([]models.Booking, error) {
	if err := s.checkUserExists(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.bookingRepo.FindByBookerID(ctx, bookerID, state, time.Now(), offset, limit)
}

func (s *bookingService) FindBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, offset, limit int) ([]models.Booking, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.bookingRepo.FindByOwnerID(ctx, ownerID, state, time.Now(), offset, limit)
}

func (s *bookingService) HasCompletedBooking(ctx context.Context, userID, itemID int64, asOf time.Time) (bool, error) {
	return s.bookingRepo.ExistsCompleted(ctx, userID, itemID, asOf)
}

func checkBookingPeriod(start, end, now time.Time) error {
	if start.After(end) {
		return ErrStartAfterEnd
	}
	if start.Equal(end) {
		return ErrStartEqualsEnd
	}
	if start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

func (s *bookingService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

// publish is fire-and-forget: a lost event never fails the booking
// mutation, but it always leaves a trace in the log.
func (s *bookingService) publish(ctx context.Context, routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	event := BookingEvent{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		Status:    booking.Status,
	}
	if booking.Item != nil {
		event.OwnerID = booking.Item.OwnerID
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("failed to publish %s for booking %d: %v", routingKey, booking.ID, err)
	}
}
