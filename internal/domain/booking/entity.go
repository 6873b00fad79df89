package booking

import (
	"time"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel forces the booking into cancelled, whatever its current status.
// Cancelling twice is a no-op on an already terminal state.
func Cancel(b *models.Booking) {
	b.Status = string(StatusCancelled)
}

// MarkPaymentSucceeded couples the two state machines: a successful online
// payment both completes the payment and confirms the booking.
func MarkPaymentSucceeded(b *models.Booking) {
	b.PaymentStatus = string(PaymentCompleted)
	b.Status = string(StatusConfirmed)
}

func MarkPaymentFailed(b *models.Booking) {
	b.PaymentStatus = string(PaymentFailed)
}

func SoftDelete(b *models.Booking, now time.Time) {
	deleted := true
	b.IsDeleted = &deleted
	b.DeletedAt = &now
}

// Restore clears the soft-delete pair; status, payment status and the price
// snapshot come back exactly as they were.
func Restore(b *models.Booking) {
	deleted := false
	b.IsDeleted = &deleted
	b.DeletedAt = nil
}
