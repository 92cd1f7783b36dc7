package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clothly/internal/config"
	"clothly/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient creates a Redis client from the store configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// CachedClothingRepository serves GetAll from Redis and falls back to the
// wrapped repository on a miss or on any Redis error. Writes invalidate the
// cached listing.
type CachedClothingRepository struct {
	next   ClothingRepository
	client *redis.Client
	key    string
	ttl    time.Duration
	logger logrus.FieldLogger
}

// NewCachedClothingRepository wraps next with a listing cache stored under
// "clothes:<collection>".
func NewCachedClothingRepository(next ClothingRepository, client *redis.Client, collection string, ttl time.Duration, logger logrus.FieldLogger) *CachedClothingRepository {
	return &CachedClothingRepository{
		next:   next,
		client: client,
		key:    "clothes:" + collection,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAll returns the cached listing when present.
func (r *CachedClothingRepository) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	switch {
	case err == nil:
		var items []models.ClothingItem
		if jsonErr := json.Unmarshal(val, &items); jsonErr == nil && items != nil {
			return items, nil
		}
		r.logger.WithField("key", r.key).Warn("Discarding unreadable cached listing")
	case !errors.Is(err, redis.Nil):
		r.logger.WithError(err).WithField("key", r.key).Warn("Listing cache unavailable, reading from store")
	}

	items, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", r.key).Warn("Failed to cache listing")
	}
	return items, nil
}

// Create writes through and invalidates the listing.
func (r *CachedClothingRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// DeleteAll writes through and invalidates the listing.
func (r *CachedClothingRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Ping reports the health of the wrapped store. The cache is optional.
func (r *CachedClothingRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}

// Close closes the store and the Redis client.
func (r *CachedClothingRepository) Close(ctx context.Context) error {
	return errors.Join(r.next.Close(ctx), r.client.Close())
}

func (r *CachedClothingRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.WithError(err).WithField("key", r.key).Warn("Failed to invalidate cached listing")
	}
}
