package booking

import (
	"context"
	"time"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
)

type SoftDelete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSoftDelete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SoftDelete {
	return &SoftDelete{
		repo:  repo,
		audit: audit,
	}
}

// Execute hides the booking from default listings. Owner or admin only;
// an already hidden booking reads as missing.
func (uc *SoftDelete) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) error {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Deleted() {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if !actor.owns(b) && !actor.IsAdmin() {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	domain.SoftDelete(b, time.Now())
	if err := uc.repo.Update(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingDeleted,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
