package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httpresp"
	ucbooking "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create          *ucbooking.CreateBooking
	cancel          *ucbooking.Cancel
	updateStatus    *ucbooking.UpdateStatus
	assign          *ucbooking.Assign
	softDelete      *ucbooking.SoftDelete
	restore         *ucbooking.Restore
	permanentDelete *ucbooking.PermanentDelete
	queries         *ucbooking.Queries
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	cancel *ucbooking.Cancel,
	updateStatus *ucbooking.UpdateStatus,
	assign *ucbooking.Assign,
	softDelete *ucbooking.SoftDelete,
	restore *ucbooking.Restore,
	permanentDelete *ucbooking.PermanentDelete,
	queries *ucbooking.Queries,
) *BookingHandler {
	return &BookingHandler{
		create:          create,
		cancel:          cancel,
		updateStatus:    updateStatus,
		assign:          assign,
		softDelete:      softDelete,
		restore:         restore,
		permanentDelete: permanentDelete,
		queries:         queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID     uint   `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Address       string `json:"address" binding:"required,max=255"`
	Notes         string `json:"notes" binding:"max=500"`
	PaymentMethod string `json:"paymentMethod"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignRequest struct {
	PersonnelID uint `json:"personnelId" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "Date invalide")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), actorFrom(c), ucbooking.CreateBookingInput{
		ServiceID:     req.ServiceID,
		Date:          date,
		Time:          req.Time,
		Address:       req.Address,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) GetMine(c *gin.Context) {
	bookings, err := h.queries.Mine(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.queries.Get(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.queries.All(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) GetAssignedToMe(c *gin.Context) {
	bookings, err := h.queries.AssignedToMe(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), actorFrom(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Assign(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	b, err := h.assign.Execute(c.Request.Context(), actorFrom(c), id, req.PersonnelID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.softDelete.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	httpresp.Message(c, "Réservation supprimée avec succès", gin.H{})
}

func (h *BookingHandler) Restore(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.restore.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Message(c, "Réservation restaurée avec succès", b)
}

func (h *BookingHandler) PermanentDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.permanentDelete.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	httpresp.Message(c, "Réservation supprimée définitivement de la base de données", gin.H{})
}

func (h *BookingHandler) ListDeleted(c *gin.Context) {
	bookings, err := h.queries.Deleted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, bookings)
}
