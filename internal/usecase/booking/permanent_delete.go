package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
)

type PermanentDelete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPermanentDelete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PermanentDelete {
	return &PermanentDelete{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the row for good, soft-deleted or not. Admin only
// (enforced at the route).
func (uc *PermanentDelete) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) error {

	if err := uc.repo.HardDelete(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingPurged,
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
