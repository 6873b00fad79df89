package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/Fatma1991-gif/Clean-PRO-final-Project/internal/models"
)

const keyPrefix = "services:catalog:"

// Catalog is a read-through cache for the public service catalog, keyed by
// category. A nil Catalog is a valid no-op cache. Redis failures degrade to
// cache misses and are only logged.
type Catalog struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewCatalog(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Catalog {
	return &Catalog{rdb: rdb, ttl: ttl, log: log}
}

func (c *Catalog) GetServices(ctx context.Context, category string) ([]models.Service, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(category)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupt")
		return nil, false
	}
	return services, true
}

func (c *Catalog) SetServices(ctx context.Context, category string, services []models.Service) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(category), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops every catalog key. Categories form a fixed set, so plain
// DEL beats SCAN here.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	keys := []string{
		key(""),
		key(models.CategoryHouse),
		key(models.CategoryBuilding),
		key(models.CategoryOffice),
		key(models.CategoryVehicle),
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func key(category string) string {
	if category == "" {
		return keyPrefix + "all"
	}
	return keyPrefix + category
}
