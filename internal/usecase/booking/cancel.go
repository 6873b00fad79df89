package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the booking for its owner or an admin. The write is
// unconditional on the current status and idempotent.
func (uc *Cancel) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.owns(b) && !actor.IsAdmin() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	domain.Cancel(b)
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
