package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type Restore struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRestore(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Restore {
	return &Restore{
		repo:  repo,
		audit: audit,
	}
}

// Execute brings a soft-deleted booking back with its status, payment state
// and price snapshot untouched. Admin only (enforced at the route).
func (uc *Restore) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Deleted() {
		return nil, httperr.ErrBusiness(httperr.CodeNotDeleted)
	}

	domain.Restore(b)
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingRestored,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
