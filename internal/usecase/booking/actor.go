package booking

import "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"

// Actor is the caller already resolved by the auth middleware.
type Actor struct {
	ID   uint
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// owns reports whether the actor is the customer on the booking.
func (a Actor) owns(b *models.Booking) bool {
	return b.UserID == a.ID
}
