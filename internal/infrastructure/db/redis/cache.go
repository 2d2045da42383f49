package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mna-portal/societa-api/internal/api/metrics"
	"github.com/mna-portal/societa-api/internal/core/domain"
)

const (
	publicListKey = "societa:public"
	publicListTTL = time.Minute
)

// PublicListCache caches the censored company listing served to anonymous
// callers. Mutations invalidate the key; a short TTL bounds staleness when an
// invalidation is lost.
type PublicListCache struct {
	client *redis.Client
}

func NewPublicListCache(client *redis.Client) *PublicListCache {
	return &PublicListCache{client: client}
}

// GetPublicList returns the cached listing, or (nil, nil) on a miss.
func (c *PublicListCache) GetPublicList(ctx context.Context) ([]domain.CensoredCompany, error) {
	raw, err := c.client.Get(ctx, publicListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.PublicListCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var list []domain.CensoredCompany
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.PublicListCacheTotal.WithLabelValues("hit").Inc()
	return list, nil
}

func (c *PublicListCache) SetPublicList(ctx context.Context, list []domain.CensoredCompany) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, publicListKey, raw, publicListTTL).Err()
}

func (c *PublicListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, publicListKey).Err()
}
