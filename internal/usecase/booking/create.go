package booking

import (
	"context"
	"time"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	domain "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/domain/booking"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	Date      time.Time
	Time      string
	Address   string
	Notes     string

	// Optional; defaults to cash.
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a service for the caller. The service price is copied into
// TotalPrice at this moment and never recomputed. No availability check is
// performed against the eventual assignee.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor Actor,
	in CreateBookingInput,
) (*models.Booking, error) {

	service, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = string(domain.MethodCash)
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(method)) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPaymentMethod)
	}

	b := &models.Booking{
		UserID:        actor.ID,
		ServiceID:     service.ID,
		Date:          in.Date,
		Time:          in.Time,
		Address:       in.Address,
		Notes:         in.Notes,
		Status:        string(domain.InitialStatus()),
		TotalPrice:    service.Price,
		PaymentMethod: method,
		PaymentStatus: string(domain.PaymentPending),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
