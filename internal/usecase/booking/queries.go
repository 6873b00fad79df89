package booking

import (
	"context"

	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

// Queries groups the read side of the engine.
type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

// Get returns one booking to its owner or an admin. Soft-deleted bookings
// read as missing.
func (q *Queries) Get(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := q.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Deleted() {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if !actor.owns(b) && !actor.IsAdmin() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return b, nil
}

// Mine lists the caller's own live bookings, newest first.
func (q *Queries) Mine(ctx context.Context, actor Actor) ([]models.Booking, error) {
	return q.repo.ListByUser(ctx, actor.ID)
}

// All lists every live booking, optionally filtered by status. Admin only
// (enforced at the route).
func (q *Queries) All(ctx context.Context, status string) ([]models.Booking, error) {
	return q.repo.ListAll(ctx, status)
}

// AssignedToMe lists live bookings where the caller is the assignee.
func (q *Queries) AssignedToMe(ctx context.Context, actor Actor) ([]models.Booking, error) {
	return q.repo.ListByAssignee(ctx, actor.ID)
}

// Deleted lists soft-deleted bookings. Admin only (enforced at the route).
func (q *Queries) Deleted(ctx context.Context) ([]models.Booking, error) {
	return q.repo.ListDeleted(ctx)
}

// Stats aggregates live bookings by status.
func (q *Queries) Stats(ctx context.Context) (*domain.Stats, error) {
	return q.repo.Stats(ctx)
}
