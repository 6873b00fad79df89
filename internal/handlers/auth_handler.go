package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/config"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httperr"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/httpresp"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// Swappable so tests do not hit DNS.
	checkEmailDomain func(string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:               db,
		config:           cfg,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.checkEmailDomain(email) {
		httperr.BadRequest(c, "Le domaine de l'email ne semble pas valide")
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleClient
	}
	if !role.Valid() {
		httperr.BadRequest(c, "Rôle invalide")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Cet email est déjà utilisé")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         role,
		Address:      req.Address,
		Availability: models.DefaultAvailability(),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The unique index is the last line of defense against a racing
		// duplicate registration.
		httperr.BadRequest(c, "Cet email est déjà utilisé")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	httpresp.Created(c, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email, wrong password and deleted account all answer the same
	// way so the response never reveals whether the email exists.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}
	if user.Deleted() {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdateMeRequest
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

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Données invalides")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "Mot de passe actuel incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "Erreur serveur")
		return
	}

	httpresp.Message(c, "Mot de passe mis à jour", gin.H{})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(h.config.JWTExpire).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
