package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/cache"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httpresp"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	audit   *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=500"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    float64 `json:"duration" binding:"required,gt=0"`
	Image       string  `json:"image"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Image       *string  `json:"image,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// --------- Public catalog ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	if services, ok := h.catalog.GetServices(c.Request.Context(), category); ok {
		httpresp.List(c, services)
		return
	}

	q := h.db.Where("is_active = ?", true).
		Where("is_deleted = ? OR is_deleted IS NULL", false)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.catalog.SetServices(c.Request.Context(), category, services)
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, ok := h.findService(c)
	if !ok {
		return
	}
	if service.Deleted() {
		httperr.NotFound(c, "Service non trouvé")
		return
	}
	httpresp.OK(c, service)
}

// --------- Admin ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	category := strings.ToLower(req.Category)
	if !models.ValidCategory(category) {
		httperr.BadRequest(c, "Catégorie invalide")
		return
	}

	image := req.Image
	if image == "" {
		image = models.DefaultServiceImage
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       image,
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "created", service.ID)

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	service, ok := h.findService(c)
	if !ok {
		return
	}
	if service.Deleted() {
		httperr.NotFound(c, "Service non trouvé")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		category := strings.ToLower(*req.Category)
		if !models.ValidCategory(category) {
			httperr.BadRequest(c, "Catégorie invalide")
			return
		}
		service.Category = category
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "Le prix doit être positif")
			return
		}
		service.Price = *req.Price
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			httperr.BadRequest(c, "La durée doit être positive")
			return
		}
		service.Duration = *req.Duration
	}
	if req.Image != nil {
		service.Image = *req.Image
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "updated", service.ID)

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	service, ok := h.findService(c)
	if !ok {
		return
	}
	if service.Deleted() {
		httperr.NotFound(c, "Service non trouvé")
		return
	}

	now := time.Now()
	deleted := true
	service.IsDeleted = &deleted
	service.DeletedAt = &now

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "deleted", service.ID)

	httpresp.Message(c, "Service supprimé avec succès", gin.H{})
}

func (h *ServiceHandler) Restore(c *gin.Context) {
	service, ok := h.findService(c)
	if !ok {
		return
	}
	if !service.Deleted() {
		httperr.BadRequest(c, "Ce service n'a pas été supprimé")
		return
	}

	deleted := false
	service.IsDeleted = &deleted
	service.DeletedAt = nil

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "restored", service.ID)

	httpresp.Message(c, "Service restauré avec succès", service)
}

func (h *ServiceHandler) PermanentDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Service non trouvé")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "purged", id)

	httpresp.Message(c, "Service supprimé définitivement de la base de données", gin.H{})
}

func (h *ServiceHandler) ListAdmin(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_deleted = ? OR is_deleted IS NULL", false).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) ListDeleted(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_deleted = ?", true).
		Order("deleted_at DESC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	httpresp.List(c, services)
}

// --------- Helpers ---------

func (h *ServiceHandler) findService(c *gin.Context) (*models.Service, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service non trouvé")
		} else {
			httperr.Internal(c, "Erreur serveur")
		}
		return nil, false
	}
	return &service, true
}

func (h *ServiceHandler) invalidate(c *gin.Context) {
	h.catalog.Invalidate(c.Request.Context())
}

func (h *ServiceHandler) dispatch(c *gin.Context, op string, serviceID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionServiceChanged,
		Entity:   "service",
		EntityID: &serviceID,
		Metadata: map[string]string{"op": op},
	})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Identifiant invalide")
		return 0, false
	}
	return uint(id), true
}
