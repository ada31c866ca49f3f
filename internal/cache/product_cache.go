// Package cache provides the Redis read-through layer between the request
// context and the product catalog.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	productdomain "github.com/tair/supply-agent/internal/product/domain"
	requestdomain "github.com/tair/supply-agent/internal/request/domain"
	"github.com/tair/supply-agent/pkg/logger"
)

const keyPrefix = "supply_agent:product:"

// ProductCache serves product snapshots for the simulator, caching catalog
// rows in Redis under supply_agent:product:<sku>. With no Redis client it
// degrades to straight repository reads, so the simulation path never depends
// on the cache being up.
type ProductCache struct {
	redis    *redis.Client
	products productdomain.ProductRepository
	ttl      time.Duration
}

// NewProductCache creates a new product snapshot cache
func NewProductCache(redisClient *redis.Client, products productdomain.ProductRepository, ttl time.Duration) *ProductCache {
	return &ProductCache{
		redis:    redisClient,
		products: products,
		ttl:      ttl,
	}
}

// SnapshotBySKU returns the current catalog view of a SKU. A missing product
// maps to the request context's not-found error.
func (c *ProductCache) SnapshotBySKU(ctx context.Context, sku string) (*requestdomain.ProductSnapshot, error) {
	key := keyPrefix + sku

	if c.redis != nil {
		cached, err := c.redis.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			var snapshot requestdomain.ProductSnapshot
			if err := json.Unmarshal(cached, &snapshot); err == nil {
				logger.Logger.Debug().
					Str("sku", sku).
					Msg("Product cache hit")
				return &snapshot, nil
			}
			// corrupt entry, fall through to the repository
			c.redis.Del(ctx, key)
		}
	}

	product, err := c.products.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			return nil, fmt.Errorf("product %s: %w", sku, requestdomain.ErrNotFound)
		}
		return nil, err
	}

	snapshot := &requestdomain.ProductSnapshot{
		SKU:            product.SKU,
		Name:           product.Name,
		OnHand:         product.OnHand,
		ProductionRate: product.ProductionRate,
	}

	if c.redis != nil {
		payload, err := json.Marshal(snapshot)
		if err == nil {
			if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("sku", sku).
					Msg("Failed to cache product snapshot")
			}
		}
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot for a SKU. Catalog mutations call this
// so stock received moments ago shows up in the next simulation.
func (c *ProductCache) Invalidate(ctx context.Context, sku string) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Del(ctx, keyPrefix+sku).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("sku", sku).
			Msg("Failed to invalidate product snapshot")
	}
}
