package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/logger"
)

const (
	restaurantsKey = "catalog:restaurants"
	menuKeyPrefix  = "catalog:menu:"
)

// CatalogService serves the public read-only restaurant listing with a
// cache-aside JSON blob per key. Cache may be nil; everything still works
// straight off the store. Cache errors are logged and swallowed — the
// listing must not fail because Redis did.
type CatalogService struct {
	Store CatalogStore
	Cache *redis.Client
	TTL   time.Duration
}

func NewCatalogService(s CatalogStore, cache *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{Store: s, Cache: cache, TTL: ttl}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, restaurantsKey).Result()
		if err == nil {
			var rests []entity.Restaurant
			if json.Unmarshal([]byte(data), &rests) == nil {
				return rests, nil
			}
		} else if err != redis.Nil {
			logger.Log.Debug("catalog cache read failed", zap.Error(err))
		}
	}

	rests, err := s.Store.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(rests); err == nil {
			if err := s.Cache.Set(ctx, restaurantsKey, data, s.TTL).Err(); err != nil {
				logger.Log.Debug("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return rests, nil
}

func (s *CatalogService) Menu(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	if restaurantID == "" {
		return nil, apperr.ErrValidation
	}

	key := menuKeyPrefix + restaurantID
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var rest entity.Restaurant
			if json.Unmarshal([]byte(data), &rest) == nil {
				return &rest, nil
			}
		} else if err != redis.Nil {
			logger.Log.Debug("catalog cache read failed", zap.Error(err))
		}
	}

	rest, ok, err := s.Store.RestaurantMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Restaurant")
	}

	if s.Cache != nil {
		if data, err := json.Marshal(rest); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.TTL).Err(); err != nil {
				logger.Log.Debug("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return rest, nil
}

// InvalidateRestaurants drops the listing blob after an admin adds a restaurant.
func (s *CatalogService) InvalidateRestaurants(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, restaurantsKey).Err(); err != nil {
		logger.Log.Debug("catalog cache invalidate failed", zap.Error(err))
	}
}

// InvalidateMenu drops one restaurant's menu blob after a menu change.
func (s *CatalogService) InvalidateMenu(ctx context.Context, restaurantID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, menuKeyPrefix+restaurantID).Err(); err != nil {
		logger.Log.Debug("catalog cache invalidate failed", zap.Error(err))
	}
}
