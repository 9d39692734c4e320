package entitlements

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/velorahq/veloracrm/internal/pkg/cache"
)

const cacheKeyPrefix = "entitlements:company:"
const cacheTTL = 5 * time.Minute

// viewCache is the slice of the cache API resolution needs. The redis
// implementation delegates to internal/pkg/cache.
type viewCache interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
	DeletePattern(pattern string) error
}

type redisViewCache struct{}

func (redisViewCache) Get(key string) (string, error) { return cache.Get(key) }
func (redisViewCache) Set(key string, value interface{}, expiration time.Duration) error {
	return cache.Set(key, value, expiration)
}
func (redisViewCache) Delete(key string) error { return cache.Delete(key) }
func (redisViewCache) DeletePattern(pattern string) error {
	return cache.DeletePattern(pattern)
}

// CachedResolver wraps a Resolver with a Redis-backed view cache. Cache
// errors degrade to a direct resolve; they never fail the request.
//
// Every write path that can change an entitlement must drop the affected
// entries: subscribe, cancel, seat resync and user creation call Invalidate
// for their company, catalog/registry seeding calls InvalidateAll. A stale
// entry here is a correctness bug, not a performance trade-off.
type CachedResolver struct {
	inner *Resolver
	cache viewCache
}

// NewCachedResolver wraps the given resolver.
func NewCachedResolver(inner *Resolver) *CachedResolver {
	return &CachedResolver{inner: inner, cache: redisViewCache{}}
}

func cacheKey(companyID uint) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, companyID)
}

// Resolve returns the cached view when present, otherwise resolves and
// stores it.
func (c *CachedResolver) Resolve(ctx context.Context, companyID uint) (*Entitlement, error) {
	if raw, err := c.cache.Get(cacheKey(companyID)); err == nil && raw != "" {
		var ent Entitlement
		if err := json.Unmarshal([]byte(raw), &ent); err == nil {
			return &ent, nil
		}
	}

	ent, err := c.inner.Resolve(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ent); err == nil {
		if err := c.cache.Set(cacheKey(companyID), raw, cacheTTL); err != nil {
			log.Printf("entitlements: could not cache view for company %d: %v", companyID, err)
		}
	}
	return ent, nil
}

// Invalidate drops the cached view for a company.
func (c *CachedResolver) Invalidate(companyID uint) {
	if err := c.cache.Delete(cacheKey(companyID)); err != nil {
		log.Printf("entitlements: could not invalidate cache for company %d: %v", companyID, err)
	}
}

// InvalidateAll drops every cached view. Seeding the catalog or the feature
// registry changes the core baseline and the unknown-key filter for all
// companies at once, so a per-company drop is not enough there.
func (c *CachedResolver) InvalidateAll() {
	if err := c.cache.DeletePattern(cacheKeyPrefix + "*"); err != nil {
		log.Printf("entitlements: could not flush view cache: %v", err)
	}
}
