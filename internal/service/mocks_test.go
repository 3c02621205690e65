package service

import (
	"context"
	"time"

	"shareit/internal/models"
	"gorm.io/gorm"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn                func(ctx context.Context, booking *models.Booking) error
	findByIDFn              func(ctx context.Context, id int64) (*models.Booking, error)
	updateStatusIfWaitingFn func(ctx context.Context, id int64, status models.BookingStatus) (int64, error)
	findByBookerIDFn        func(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	findByOwnerIDFn         func(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	existsCompletedFn       func(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error)
	findLastForItemFn       func(ctx context.Context, itemID int64, before time.Time) (*models.Booking, error)
	findNextForItemFn       func(ctx context.Context, itemID int64, after time.Time) (*models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (int64, error) {
	if m.updateStatusIfWaitingFn != nil {
		return m.updateStatusIfWaitingFn(ctx, id, status)
	}
	return 1, nil
}
func (m *mockBookingRepo) FindByBookerID(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	return m.findByBookerIDFn(ctx, bookerID, state, now, offset, limit)
}
func (m *mockBookingRepo) FindByOwnerID(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	return m.findByOwnerIDFn(ctx, ownerID, state, now, offset, limit)
}
func (m *mockBookingRepo) ExistsCompleted(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error) {
	if m.existsCompletedFn != nil {
		return m.existsCompletedFn(ctx, bookerID, itemID, before)
	}
	return false, nil
}
func (m *mockBookingRepo) FindLastForItem(ctx context.Context, itemID int64, before time.Time) (*models.Booking, error) {
	if m.findLastForItemFn != nil {
		return m.findLastForItemFn(ctx, itemID, before)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindNextForItem(ctx context.Context, itemID int64, after time.Time) (*models.Booking, error) {
	if m.findNextForItemFn != nil {
		return m.findNextForItemFn(ctx, itemID, after)
	}
	return nil, gorm.ErrRecordNotFound
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	publishFn func(ctx context.Context, routingKey string, payload any) error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, routingKey, payload)
	}
	return nil
}

// --- Mock ItemRepository ---

type mockItemRepo struct {
	createFn             func(ctx context.Context, item *models.Item) error
	findByIDFn           func(ctx context.Context, id int64) (*models.Item, error)
	findAllByOwnerIDFn   func(ctx context.Context, ownerID int64) ([]models.Item, error)
	findAllByRequestIDFn func(ctx context.Context, requestID int64) ([]models.Item, error)
	searchFn             func(ctx context.Context, text string) ([]models.Item, error)
	saveFn               func(ctx context.Context, item *models.Item) error
	existsByIDFn         func(ctx context.Context, id int64) (bool, error)
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	item.ID = 1
	return nil
}
func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockItemRepo) FindAllByOwnerID(ctx context.Context, ownerID int64) ([]models.Item, error) {
	return m.findAllByOwnerIDFn(ctx, ownerID)
}
func (m *mockItemRepo) FindAllByRequestID(ctx context.Context, requestID int64) ([]models.Item, error) {
	if m.findAllByRequestIDFn != nil {
		return m.findAllByRequestIDFn(ctx, requestID)
	}
	return []models.Item{}, nil
}
func (m *mockItemRepo) Search(ctx context.Context, text string) ([]models.Item, error) {
	return m.searchFn(ctx, text)
}
func (m *mockItemRepo) Save(ctx context.Context, item *models.Item) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, item)
	}
	return nil
}
func (m *mockItemRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return true, nil
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	findByIDFn   func(ctx context.Context, id int64) (*models.User, error)
	findAllFn    func(ctx context.Context) ([]models.User, error)
	saveFn       func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id int64) error
	existsByIDFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}
func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, user)
	}
	return nil
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return true, nil
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	createFn          func(ctx context.Context, comment *models.Comment) error
	findAllByItemIDFn func(ctx context.Context, itemID int64) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}
func (m *mockCommentRepo) FindAllByItemID(ctx context.Context, itemID int64) ([]models.Comment, error) {
	if m.findAllByItemIDFn != nil {
		return m.findAllByItemIDFn(ctx, itemID)
	}
	return []models.Comment{}, nil
}

// --- Mock ItemRequestRepository ---

type mockRequestRepo struct {
	createFn               func(ctx context.Context, request *models.ItemRequest) error
	findByIDFn             func(ctx context.Context, id int64) (*models.ItemRequest, error)
	findAllByRequesterIDFn func(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	findAllOthersFn        func(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
	existsByIDFn           func(ctx context.Context, id int64) (bool, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error {
	if m.createFn != nil {
		return m.createFn(ctx, request)
	}
	request.ID = 1
	return nil
}
func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRequestRepo) FindAllByRequesterID(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	return m.findAllByRequesterIDFn(ctx, requesterID)
}
func (m *mockRequestRepo) FindAllOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	return m.findAllOthersFn(ctx, requesterID, offset, limit)
}
func (m *mockRequestRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return true, nil
}
