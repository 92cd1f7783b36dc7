package repositories

import (
	"context"
	"fmt"

	"clothly/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GORMClothingRepository is a GORM implementation of ClothingRepository.
// The collection is stored in a table of the same name.
type GORMClothingRepository struct {
	db    *gorm.DB
	table string
}

// OpenGORM connects to a postgres or sqlite database.
func OpenGORM(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	return db, nil
}

// NewGORMClothingRepository creates the repository and migrates its table.
func NewGORMClothingRepository(db *gorm.DB, table string) (*GORMClothingRepository, error) {
	if err := db.Table(table).AutoMigrate(&models.ClothingItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate table %s: %w", table, err)
	}
	return &GORMClothingRepository{
		db:    db,
		table: table,
	}, nil
}

// GetAll retrieves all items from the table.
func (r *GORMClothingRepository) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	items := make([]models.ClothingItem, 0)
	if err := r.db.WithContext(ctx).Table(r.table).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clothes: %w", err)
	}
	return items, nil
}

// Create validates and inserts an item.
func (r *GORMClothingRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	if err := models.ValidateClothingItem(*item); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create clothing item: %w", err)
	}
	return nil
}

// DeleteAll removes every row of the table.
func (r *GORMClothingRepository) DeleteAll(ctx context.Context) error {
	res := r.db.WithContext(ctx).Table(r.table).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ClothingItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete clothes: %w", res.Error)
	}
	return nil
}

// Ping checks the database connection.
func (r *GORMClothingRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (r *GORMClothingRepository) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
