package booking

import (
	"context"
	"math"
	"strconv"

	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/payments"
)

type PaymentIntentResult struct {
	ClientSecret string `json:"clientSecret"`
	BookingID    uint   `json:"bookingId"`
}

type CreatePaymentIntent struct {
	repo     domain.Repository
	intents  payments.IntentClient
	currency string
}

func NewCreatePaymentIntent(
	repo domain.Repository,
	intents payments.IntentClient,
	currency string,
) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		repo:     repo,
		intents:  intents,
		currency: currency,
	}
}

// Execute requests a provider intent for the booking's snapshot price and
// stores the intent id on the booking. Only the owning customer may pay.
func (uc *CreatePaymentIntent) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*PaymentIntentResult, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.owns(b) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	// Euros to cents, the provider's minor-unit convention.
	amount := int64(math.Round(b.TotalPrice * 100))

	intent, err := uc.intents.CreateIntent(ctx, amount, uc.currency, map[string]string{
		"bookingId": strconv.FormatUint(uint64(b.ID), 10),
		"userId":    strconv.FormatUint(uint64(actor.ID), 10),
	})
	if err != nil {
		return nil, err
	}

	b.StripePaymentIntentID = intent.ID
	if err := uc.repo.Update(ctx, b); err != nil {
		// The created intent is orphaned here; there is no compensation.
		return nil, err
	}

	return &PaymentIntentResult{
		ClientSecret: intent.ClientSecret,
		BookingID:    b.ID,
	}, nil
}
