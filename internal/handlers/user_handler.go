package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httpresp"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

// UserHandler covers the admin-scoped user management surface.
type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name         *string              `json:"name,omitempty"`
	Phone        *string              `json:"phone,omitempty"`
	Address      *string              `json:"address,omitempty"`
	Role         *string              `json:"role,omitempty"`
	Skills       *[]models.Skill      `json:"skills,omitempty"`
	Availability *models.Availability `json:"availability,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Where("is_deleted = ? OR is_deleted IS NULL", false)
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	httpresp.List(c, users)
}

type userStats struct {
	TotalUsers     int64         `json:"totalUsers"`
	ClientCount    int64         `json:"clientCount"`
	AdminCount     int64         `json:"adminCount"`
	PersonnelCount int64         `json:"personnelCount"`
	RecentUsers    []models.User `json:"recentUsers"`
}

func (h *UserHandler) Stats(c *gin.Context) {
	live := func() *gorm.DB {
		return h.db.Model(&models.User{}).
			Where("is_deleted = ? OR is_deleted IS NULL", false)
	}

	var stats userStats
	if err := live().Count(&stats.TotalUsers).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	roleCounts := []struct {
		role models.Role
		dst  *int64
	}{
		{models.RoleClient, &stats.ClientCount},
		{models.RoleAdmin, &stats.AdminCount},
		{models.RolePersonnel, &stats.PersonnelCount},
	}
	for _, rc := range roleCounts {
		if err := live().Where("role = ?", rc.role).Count(rc.dst).Error; err != nil {
			httperr.Internal(c, "Erreur serveur")
			return
		}
	}

	if err := live().
		Select("id", "name", "email", "created_at").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentUsers).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	httpresp.OK(c, stats)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}
	if user.Deleted() {
		httperr.NotFound(c, "Utilisateur non trouvé")
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}
	if user.Deleted() {
		httperr.NotFound(c, "Utilisateur non trouvé")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			httperr.BadRequest(c, "Rôle invalide")
			return
		}
		user.Role = role
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Availability != nil {
		availability := *req.Availability
		availability.LastUpdated = time.Now()
		user.Availability = availability
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.dispatch(c, "updated", user.ID)
	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}
	if user.Deleted() {
		httperr.NotFound(c, "Utilisateur non trouvé")
		return
	}

	now := time.Now()
	deleted := true
	user.IsDeleted = &deleted
	user.DeletedAt = &now

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.dispatch(c, "deleted", user.ID)
	httpresp.Message(c, "Utilisateur supprimé avec succès", gin.H{})
}

func (h *UserHandler) Restore(c *gin.Context) {
	user, ok := h.findUser(c)
	if !ok {
		return
	}
	if !user.Deleted() {
		httperr.BadRequest(c, "Cet utilisateur n'a pas été supprimé")
		return
	}

	deleted := false
	user.IsDeleted = &deleted
	user.DeletedAt = nil

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	h.dispatch(c, "restored", user.ID)
	httpresp.Message(c, "Utilisateur restauré avec succès", user)
}

func (h *UserHandler) PermanentDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "Utilisateur non trouvé")
		return
	}

	h.dispatch(c, "purged", id)
	httpresp.Message(c, "Utilisateur supprimé définitivement de la base de données", gin.H{})
}

func (h *UserHandler) ListDeleted(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("is_deleted = ?", true).
		Order("deleted_at DESC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}
	httpresp.List(c, users)
}

// --------- Helpers ---------

func (h *UserHandler) findUser(c *gin.Context) (*models.User, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Utilisateur non trouvé")
		} else {
			httperr.Internal(c, "Erreur serveur")
		}
		return nil, false
	}
	return &user, true
}

func (h *UserHandler) dispatch(c *gin.Context, op string, targetID uint) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionUserChanged,
		Entity:   "user",
		EntityID: &targetID,
		Metadata: map[string]string{"op": op},
	})
}
