package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute writes any member of the status enum. There is no transition
// table; admin writes are unconditional.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	if !domain.ValidStatus(domain.Status(status)) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	b.Status = status
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionStatusUpdated,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"from": previous, "to": status},
	})

	return b, nil
}
