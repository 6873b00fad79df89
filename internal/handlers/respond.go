package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	ucbooking "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/usecase/booking"
)

// respondError maps use-case errors onto the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeBookingNotFound:
		httperr.NotFound(c, "Réservation non trouvée")
	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, "Service non trouvé")
	case httperr.CodeUserNotFound:
		httperr.NotFound(c, "Utilisateur non trouvé")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, "Non autorisé")
	case httperr.CodeInvalidStatus:
		httperr.BadRequest(c, "Statut invalide")
	case httperr.CodeInvalidPaymentMethod:
		httperr.BadRequest(c, "Méthode de paiement invalide")
	case httperr.CodeNotDeleted:
		httperr.BadRequest(c, "Cet enregistrement n'a pas été supprimé")
	case httperr.CodePaymentIntentMismatch:
		httperr.BadRequest(c, "L'identifiant de paiement ne correspond pas à cette réservation")
	case httperr.CodePaymentFailed:
		httperr.BadRequest(c, "Le paiement n'a pas pu être traité")
	default:
		httperr.Internal(c, "Erreur serveur")
	}
}

// actorFrom turns the middleware-resolved user into an engine actor.
func actorFrom(c *gin.Context) ucbooking.Actor {
	u := middleware.CurrentUser(c)
	return ucbooking.Actor{ID: u.ID, Role: u.Role}
}
