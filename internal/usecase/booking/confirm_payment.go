package booking

import (
	"context"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/payments"
)

type ConfirmPayment struct {
	repo    domain.Repository
	intents payments.IntentClient
	audit   *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	intents payments.IntentClient,
	audit *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:    repo,
		intents: intents,
		audit:   audit,
	}
}

// Execute re-reads the intent from the provider and settles the booking's
// payment state. A succeeded intent completes the payment and confirms the
// booking in the same write; anything else marks the payment failed. The
// supplied intent id must match the one stored on the booking.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	paymentIntentID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.StripePaymentIntentID == "" || b.StripePaymentIntentID != paymentIntentID {
		return nil, httperr.ErrBusiness(httperr.CodePaymentIntentMismatch)
	}

	intent, err := uc.intents.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != payments.StatusSucceeded {
		domain.MarkPaymentFailed(b)
		if err := uc.repo.Update(ctx, b); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &actor.ID,
			Action:   audit.ActionPaymentFailed,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]string{"intent_status": intent.Status},
		})

		return b, httperr.ErrBusiness(httperr.CodePaymentFailed)
	}

	domain.MarkPaymentSucceeded(b)
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionPaymentConfirmed,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
