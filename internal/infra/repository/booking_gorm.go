package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// notDeleted keeps rows whose soft-delete flag is false or was never set.
// NULL counts as live so rows that predate the flag stay visible.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ? OR is_deleted IS NULL", false)
}

func bookingProjections(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "category", "price", "duration")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		}).
		Preload("AssignedTo", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		})
}

// --------------------------------------------------
// Service (catalog read at booking time)
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("is_active = ?", true).
		First(&service, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := bookingProjections(r.db.WithContext(ctx)).
		First(&b, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) HardDelete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := bookingProjections(notDeleted(r.db.WithContext(ctx))).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
	status string,
) ([]models.Booking, error) {

	q := bookingProjections(notDeleted(r.db.WithContext(ctx)))
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	err := q.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingGormRepository) ListByAssignee(
	ctx context.Context,
	personnelID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := bookingProjections(notDeleted(r.db.WithContext(ctx))).
		Where("assigned_to_id = ?", personnelID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingGormRepository) ListDeleted(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := bookingProjections(r.db.WithContext(ctx)).
		Where("is_deleted = ?", true).
		Order("deleted_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// --------------------------------------------------
// Aggregation
// --------------------------------------------------

func (r *BookingGormRepository) Stats(
	ctx context.Context,
) (*domain.Stats, error) {

	var perStatus []domain.StatusStat
	if err := notDeleted(r.db.WithContext(ctx).Model(&models.Booking{})).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total_revenue").
		Group("status").
		Find(&perStatus).Error; err != nil {
		return nil, err
	}

	stats := &domain.Stats{Stats: perStatus}
	for _, s := range perStatus {
		stats.TotalBookings += s.Count
		if s.Status == string(domain.StatusCompleted) {
			stats.TotalRevenue += s.TotalRevenue
		}
	}
	return stats, nil
}
