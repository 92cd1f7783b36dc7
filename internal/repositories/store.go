package repositories

import (
	"context"
	"fmt"

	"clothly/internal/config"

	"github.com/sirupsen/logrus"
)

// OpenStore connects the clothing store selected by cfg.Driver and, when
// configured, puts the Redis listing cache in front of it. The store is
// reachable when OpenStore returns without error.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger logrus.FieldLogger) (ClothingRepository, error) {
	var repo ClothingRepository
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := OpenMongo(ctx, cfg.MongoURI, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		repo = NewMongoClothingRepository(client, cfg.MongoDatabase, cfg.Collection, logger)
		logger.WithField("database", cfg.MongoDatabase).Info("Connected to MongoDB")
	case config.DriverPostgres, config.DriverSQLite:
		db, err := OpenGORM(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		gormRepo, err := NewGORMClothingRepository(db, cfg.Collection)
		if err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close()
			}
			return nil, err
		}
		repo = gormRepo
		logger.WithField("driver", cfg.Driver).Info("Connected to SQL database")
	case config.DriverMemory:
		repo = NewMockClothingRepository()
		logger.Warn("Using in-memory clothing store, data is lost on exit")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if !cfg.CacheEnabled() {
		return repo, nil
	}

	client := NewRedisClient(cfg.Redis)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("Redis unreachable, listing cache disabled")
		client.Close()
		return repo, nil
	}
	logger.WithFields(logrus.Fields{"addr": cfg.Redis.Addr, "ttl": cfg.CacheTTL}).Info("Listing cache enabled")
	return NewCachedClothingRepository(repo, client, cfg.Collection, cfg.CacheTTL, logger), nil
}
