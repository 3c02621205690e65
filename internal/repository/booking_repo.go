package repository

import (
	"context"
	"time"

	"shareit/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id int64) (*models.Booking, error)
	// UpdateStatusIfWaiting flips the status only while it is still WAITING
	// and reports how many rows changed, so racing decisions resolve to a
	// single winner inside the database.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (int64, error)
	FindByBookerID(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	FindByOwnerID(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error)
	ExistsCompleted(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error)
	FindLastForItem(ctx context.Context, itemID int64, before time.Time) (*models.Booking, error)
	FindNextForItem(ctx context.Context, itemID int64, after time.Time) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.StatusWaiting).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) FindByBookerID(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID)
	return findWithState(applyStateFilter(q, state, now), offset, limit)
}

func (r *bookingRepository) FindByOwnerID(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return findWithState(applyStateFilter(q, state, now), offset, limit)
}

// applyStateFilter translates a BookingState bucket into its predicate and
// sort. ALL/PAST/FUTURE come back newest-start-first; CURRENT and the two
// status buckets in natural order.
func applyStateFilter(q *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		return q.Where("start_date <= ? AND end_date > ?", now, now)
	case models.StatePast:
		return q.Where("end_date < ?", now).Order("start_date DESC")
	case models.StateFuture:
		return q.Where("start_date > ?", now).Order("start_date DESC")
	case models.StateWaiting:
		return q.Where("bookings.status = ?", models.StatusWaiting)
	case models.StateRejected:
		return q.Where("bookings.status = ?", models.StatusRejected)
	default: // ALL
		return q.Order("start_date DESC")
	}
}

func findWithState(q *gorm.DB, offset, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := q.Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ExistsCompleted(ctx context.Context, bookerID, itemID int64, before time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND end_date < ?", bookerID, itemID, before).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID int64, before time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND end_date < ?", itemID, before).
		Order("end_date DESC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID int64, after time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_date > ?", itemID, after).
		Order("start_date ASC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
