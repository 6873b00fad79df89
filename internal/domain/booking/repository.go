package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

// StatusStat is one per-status aggregation row.
type StatusStat struct {
	Status       string  `json:"status"`
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Stats aggregates non-deleted bookings; TotalRevenue sums completed only.
type Stats struct {
	Stats         []StatusStat `json:"stats"`
	TotalBookings int64        `json:"total_bookings"`
	TotalRevenue  float64      `json:"total_revenue"`
}

type Repository interface {
	// -------- Service (catalog read at booking time) --------
	GetActiveService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Booking (create / fetch / write) --------
	Create(ctx context.Context, b *models.Booking) error

	// GetByID returns the booking with user/service/assignee preloaded,
	// soft-deleted rows included. Callers decide how deletion is handled.
	GetByID(ctx context.Context, id uint) (*models.Booking, error)

	Update(ctx context.Context, b *models.Booking) error
	HardDelete(ctx context.Context, id uint) error

	// -------- Listings (non-deleted unless stated) --------
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListAll(ctx context.Context, status string) ([]models.Booking, error)
	ListByAssignee(ctx context.Context, personnelID uint) ([]models.Booking, error)
	ListDeleted(ctx context.Context) ([]models.Booking, error)

	// -------- Aggregation --------
	Stats(ctx context.Context) (*Stats, error)
}
