package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/audit"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/cache"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/config"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/handlers"
	infraRepo "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/infra/repository"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/payments"
	ucbooking "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/usecase/booking"
)

// Deps carries the externally constructed collaborators into the router.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Intents payments.IntentClient
	Catalog *cache.Catalog
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING LIFECYCLE ENGINE
	// ======================================================
	createBookingUC := ucbooking.NewCreateBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucbooking.NewCancel(bookingRepo, auditDispatcher)
	updateStatusUC := ucbooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	assignBookingUC := ucbooking.NewAssign(bookingRepo, auditDispatcher)
	softDeleteUC := ucbooking.NewSoftDelete(bookingRepo, auditDispatcher)
	restoreUC := ucbooking.NewRestore(bookingRepo, auditDispatcher)
	permanentDeleteUC := ucbooking.NewPermanentDelete(bookingRepo, auditDispatcher)
	bookingQueries := ucbooking.NewQueries(bookingRepo)

	createIntentUC := ucbooking.NewCreatePaymentIntent(bookingRepo, deps.Intents, deps.Config.Currency)
	confirmPaymentUC := ucbooking.NewConfirmPayment(bookingRepo, deps.Intents, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config)
	serviceHandler := handlers.NewServiceHandler(deps.DB, deps.Catalog, auditDispatcher)
	userHandler := handlers.NewUserHandler(deps.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		updateStatusUC,
		assignBookingUC,
		softDeleteUC,
		restoreUC,
		permanentDeleteUC,
		bookingQueries,
	)

	paymentHandler := handlers.NewPaymentHandler(createIntentUC, confirmPaymentUC)

	protect := middleware.Protect(deps.DB, deps.Config)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		me := api.Group("/auth")
		me.Use(protect)
		{
			me.GET("/me", authHandler.Me)
			me.PUT("/me", authHandler.UpdateMe)
			me.PUT("/password", authHandler.UpdatePassword)
		}

		// ------------------------------
		// SERVICES (public catalog + admin)
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/admin", protect, adminOnly, serviceHandler.ListAdmin)
			services.GET("/admin/deleted", protect, adminOnly, serviceHandler.ListDeleted)
			services.POST("", protect, adminOnly, serviceHandler.Create)
			services.GET("/:id", serviceHandler.Get)
			services.PUT("/:id", protect, adminOnly, serviceHandler.Update)
			services.DELETE("/:id", protect, adminOnly, serviceHandler.Delete)
			services.PUT("/:id/restore", protect, adminOnly, serviceHandler.Restore)
			services.DELETE("/:id/permanent-delete", protect, adminOnly, serviceHandler.PermanentDelete)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		bookings.Use(protect)
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.GetMine)

			bookings.GET("/admin", adminOnly, bookingHandler.GetAll)
			bookings.GET("/admin/deleted", adminOnly, bookingHandler.ListDeleted)
			bookings.GET("/admin/stats", adminOnly, bookingHandler.Stats)

			bookings.GET("/assigned/me", middleware.Authorize(models.RolePersonnel), bookingHandler.GetAssignedToMe)

			bookings.GET("/:id", bookingHandler.Get)
			bookings.DELETE("/:id", bookingHandler.Delete)
			bookings.PUT("/:id/cancel", bookingHandler.Cancel)

			bookings.PUT("/:id/status", adminOnly, bookingHandler.UpdateStatus)
			bookings.PUT("/:id/assign", adminOnly, bookingHandler.Assign)
			bookings.PUT("/:id/restore", adminOnly, bookingHandler.Restore)
			bookings.DELETE("/:id/permanent-delete", adminOnly, bookingHandler.PermanentDelete)
		}

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		paymentsAPI := api.Group("/payments")
		paymentsAPI.Use(protect)
		{
			paymentsAPI.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
			paymentsAPI.POST("/confirm-payment", paymentHandler.ConfirmPayment)
		}

		// ------------------------------
		// USERS (admin)
		// ------------------------------
		users := api.Group("/users")
		users.Use(protect, adminOnly)
		{
			users.GET("", userHandler.List)
			users.GET("/stats", userHandler.Stats)
			users.GET("/deleted", userHandler.ListDeleted)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.PUT("/:id/restore", userHandler.Restore)
			users.DELETE("/:id/permanent-delete", userHandler.PermanentDelete)
		}

		// ------------------------------
		// AUDIT LOGS (admin)
		// ------------------------------
		api.GET("/audit-logs", protect, adminOnly, auditLogsHandler.List)
	}
}
