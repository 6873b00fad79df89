package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type Assign struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAssign(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Assign {
	return &Assign{
		repo:  repo,
		audit: audit,
	}
}

// Execute writes the assignee unconditionally. The personnel role and
// availability of the target are not checked here; a capability-check hook
// can layer on later.
func (uc *Assign) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	personnelID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.AssignedToID = &personnelID
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	// Re-read so the assignee projection is attached to the response.
	b, err = uc.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingAssigned,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]uint{"personnel_id": personnelID},
	})

	return b, nil
}
