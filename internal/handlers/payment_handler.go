package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httpresp"
	ucbooking "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/usecase/booking"
)

type PaymentHandler struct {
	createIntent *ucbooking.CreatePaymentIntent
	confirm      *ucbooking.ConfirmPayment
}

func NewPaymentHandler(
	createIntent *ucbooking.CreatePaymentIntent,
	confirm *ucbooking.ConfirmPayment,
) *PaymentHandler {
	return &PaymentHandler{
		createIntent: createIntent,
		confirm:      confirm,
	}
}

// --------- Requests ---------

type CreatePaymentIntentRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

type ConfirmPaymentRequest struct {
	BookingID       uint   `json:"bookingId" binding:"required"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// --------- Handlers ---------

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	result, err := h.createIntent.Execute(c.Request.Context(), actorFrom(c), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), actorFrom(c), req.BookingID, req.PaymentIntentID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Message(c, "Paiement effectué avec succès", b)
}
