package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/cache"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/config"
	dbpkg "github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/db"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/logging"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/middleware"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/payments"
	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New("clean-pro-api", cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	intents, err := payments.NewStripeClient(cfg.StripeSecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize payment client")
	}

	var catalog *cache.Catalog
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		catalog = cache.NewCatalog(rdb, cfg.CatalogCacheTTL, log)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Intents: intents,
		Catalog: catalog,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
